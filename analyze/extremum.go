package analyze

import (
	"github.com/angas/greenplanet-go/hours"
	"github.com/angas/greenplanet-go/prices"
)

// HourPrice is a single-hour result.
type HourPrice struct {
	Hour  int
	Price float64
}

// HighestToday returns today's peak price and the hour it occurs. When
// several hours share the peak, the earliest hour wins. False when today
// has no data at all.
func HighestToday(s prices.Series) (HourPrice, bool) {
	var best HourPrice
	found := false
	for h := 0; h <= 23; h++ {
		price, ok := s.At(hours.Slot{Day: hours.Today, Hour: uint8(h)})
		if !ok {
			continue
		}
		if !found || price > best.Price {
			best = HourPrice{Hour: h, Price: price}
			found = true
		}
	}
	return best, found
}

// LowestInPeriod returns the cheapest single hour of a period. This is the
// one-hour degenerate case of the window search, so ties resolve to the
// earliest hour in the period's scan order (for night that means 18 before
// 19 ... before tomorrow's 0 ... 5).
func LowestInPeriod(s prices.Series, period prices.Period) (HourPrice, bool) {
	w, ok := CheapestWindow(s, period, 1, nil)
	if !ok {
		return HourPrice{}, false
	}
	return HourPrice{Hour: w.StartHour, Price: w.Average}, true
}

// CurrentPrice returns today's price for the given hour. Hours outside 0-23
// are the caller's mistake and are rejected at the service boundary; here
// they simply have no data.
func CurrentPrice(s prices.Series, hour int) (float64, bool) {
	if hour < 0 || hour > 23 {
		return 0, false
	}
	return s.At(hours.Slot{Day: hours.Today, Hour: uint8(hour)})
}
