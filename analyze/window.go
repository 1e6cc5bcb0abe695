package analyze

import (
	"math"

	"github.com/angas/greenplanet-go/prices"
)

// coverageTolerance allows for float rounding when checking that a window
// covers the full requested duration.
const coverageTolerance = 0.01

// Window is a cheapest-window result. StartHour is the hour of the first
// slot of the winning window, Average the duration-weighted average price
// over the window (total cost divided by the requested duration).
type Window struct {
	StartHour int
	Average   float64
}

// CheapestWindow finds the contiguous window of the given duration (hours,
// possibly fractional) within the period that minimizes the duration-weighted
// average price. A non-nil referenceHour excludes today's slots before that
// hour, so "cheapest window from now on" is the same search over a shorter
// sequence.
//
// The search runs over the gap-skipped scan sequence, so a window never
// silently stretches across an hour that has no data; it is instead formed
// from the hours that do. Missing vendor data makes windows contract over
// the remaining hours rather than fail.
//
// A duration <= 0 or a sequence too short for the window yields (zero,
// false); absence of a viable window is an expected result, not an error.
// Ties on the average price keep the earliest-scanned window.
func CheapestWindow(s prices.Series, period prices.Period, duration float64, referenceHour *int) (Window, bool) {
	if duration <= 0 {
		return Window{}, false
	}

	seq := s.Materialize(period, referenceHour)

	fullSlots := int(math.Floor(duration))
	fraction := duration - float64(fullSlots)
	need := fullSlots
	if fraction > 0 {
		need++ // a partial trailing slot must exist too
	}
	if len(seq) < need {
		return Window{}, false
	}

	var best Window
	found := false

	for i := 0; i+need <= len(seq); i++ {
		sum := 0.0
		covered := 0.0
		for j := i; j < i+fullSlots; j++ {
			sum += seq[j].Price
			covered += 1.0
		}
		if fraction > 0 {
			sum += seq[i+fullSlots].Price * fraction
			covered += fraction
		}
		if covered < duration-coverageTolerance {
			continue
		}

		avg := sum / duration
		if !found || avg < best.Average {
			best = Window{StartHour: int(seq[i].Slot.Hour), Average: avg}
			found = true
		}
	}

	return best, found
}

// CheapestWindowDay searches today's day band (hours 6-17).
func CheapestWindowDay(s prices.Series, duration float64, referenceHour *int) (Window, bool) {
	return CheapestWindow(s, prices.PeriodDay, duration, referenceHour)
}

// CheapestWindowNight searches the night band, tonight's hours 18-23
// followed by tomorrow's hours 0-5.
func CheapestWindowNight(s prices.Series, duration float64, referenceHour *int) (Window, bool) {
	return CheapestWindow(s, prices.PeriodNight, duration, referenceHour)
}

// CheapestWindowFull searches the whole two-day horizon.
func CheapestWindowFull(s prices.Series, duration float64, referenceHour *int) (Window, bool) {
	return CheapestWindow(s, prices.PeriodFull, duration, referenceHour)
}
