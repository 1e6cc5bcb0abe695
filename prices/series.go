package prices

import (
	"github.com/angas/greenplanet-go/hours"
)

// Series is the canonical in-memory price snapshot: a sparse mapping from
// slot to price in EUR/kWh. Any subset of the 48 slots may be present,
// tomorrow is often missing until the vendor publishes it in the afternoon.
// A missing slot means "no data for that hour", never price zero.
//
// A Series is never mutated after construction, so it can be shared freely
// between concurrent queries.
type Series map[hours.Slot]float64

// FromKeyed builds a Series from the vendor's string-keyed snapshot
// ("price_HH" and "price_HH_tomorrow"). Keys that don't parse are ignored,
// the vendor feed occasionally carries entries we don't care about.
func FromKeyed(data map[string]float64) Series {
	s := make(Series, len(data))
	for key, price := range data {
		slot, err := hours.ParseKey(key)
		if err != nil {
			continue
		}
		s[slot] = price
	}
	return s
}

// Keyed returns the snapshot in the external wire shape.
func (s Series) Keyed() map[string]float64 {
	m := make(map[string]float64, len(s))
	for slot, price := range s {
		m[slot.Key()] = price
	}
	return m
}

// At looks up the price for a slot. Absence is a first-class result.
func (s Series) At(slot hours.Slot) (float64, bool) {
	price, ok := s[slot]
	return price, ok
}

// Point is one entry of a materialized period sequence.
type Point struct {
	Slot  hours.Slot
	Price float64
}

// Materialize walks the period's hour sequence in chronological order and
// returns the slots that have data, in scan order. Gaps are skipped, not
// zero-filled. When referenceHour is non-nil, today's slots before that hour
// are excluded as already elapsed; tomorrow's slots never are.
//
// The returned order is load-bearing: it is the scan order the sliding
// window search is built over.
func (s Series) Materialize(period Period, referenceHour *int) []Point {
	slots := period.Slots()
	points := make([]Point, 0, len(slots))
	for _, slot := range slots {
		if referenceHour != nil && slot.Day == hours.Today && int(slot.Hour) < *referenceHour {
			continue
		}
		price, ok := s[slot]
		if !ok {
			continue
		}
		points = append(points, Point{Slot: slot, Price: price})
	}
	return points
}
