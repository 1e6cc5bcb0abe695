package prices

import (
	"github.com/angas/greenplanet-go/hours"
)

// Period is a named recurring daily hour band. Night wraps midnight into
// tomorrow's early hours, Full covers the whole two-day horizon.
type Period uint8

const (
	PeriodDay Period = iota
	PeriodNight
	PeriodFull
)

const (
	DayFirstHour  = 6
	DayLastHour   = 17
	NightFromHour = 18
	NightToHour   = 5
)

func (p Period) String() string {
	switch p {
	case PeriodDay:
		return "day"
	case PeriodNight:
		return "night"
	default:
		return "full"
	}
}

// Slots returns the period's fixed slot sequence in chronological order.
func (p Period) Slots() []hours.Slot {
	switch p {
	case PeriodDay:
		return hourRange(hours.Today, DayFirstHour, DayLastHour)
	case PeriodNight:
		return append(
			hourRange(hours.Today, NightFromHour, 23),
			hourRange(hours.Tomorrow, 0, NightToHour)...)
	default:
		return append(
			hourRange(hours.Today, 0, 23),
			hourRange(hours.Tomorrow, 0, 23)...)
	}
}

func hourRange(day hours.Day, from, to uint8) []hours.Slot {
	slots := make([]hours.Slot, 0, to-from+1)
	for h := from; h <= to; h++ {
		slots = append(slots, hours.Slot{Day: day, Hour: h})
	}
	return slots
}
