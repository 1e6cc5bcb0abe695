package hours

import (
	"fmt"
	"strconv"
	"strings"
)

// Day tells which calendar day a slot belongs to. The price horizon is
// always two days: the vendor publishes today's prices in the morning and
// tomorrow's during the afternoon.
type Day uint8

const (
	Today Day = iota
	Tomorrow
)

func (d Day) String() string {
	if d == Tomorrow {
		return "tomorrow"
	}
	return "today"
}

// Slot addresses one hour in the two-day price horizon.
type Slot struct {
	Day  Day
	Hour uint8
}

func (s Slot) Valid() bool {
	return (s.Day == Today || s.Day == Tomorrow) && s.Hour <= 23
}

func (s Slot) String() string {
	return fmt.Sprintf("%s %02d", s.Day, s.Hour)
}

// Key returns the wire key used by the vendor snapshot,
// "price_07" for today and "price_07_tomorrow" for tomorrow.
func (s Slot) Key() string {
	if s.Day == Tomorrow {
		return fmt.Sprintf("price_%02d_tomorrow", s.Hour)
	}
	return fmt.Sprintf("price_%02d", s.Hour)
}

// ParseKey is the inverse of Key. Keys must use a zero-padded
// two-digit hour, anything else is rejected.
func ParseKey(key string) (Slot, error) {
	rest, found := strings.CutPrefix(key, "price_")
	if !found {
		return Slot{}, fmt.Errorf("unknown price key %q", key)
	}

	day := Today
	if hh, found := strings.CutSuffix(rest, "_tomorrow"); found {
		day = Tomorrow
		rest = hh
	}

	if len(rest) != 2 {
		return Slot{}, fmt.Errorf("malformed hour in price key %q", key)
	}
	hour, err := strconv.Atoi(rest)
	if err != nil || hour < 0 || hour > 23 {
		return Slot{}, fmt.Errorf("hour out of range in price key %q", key)
	}

	return Slot{Day: day, Hour: uint8(hour)}, nil
}
