package coaching

import (
	"strings"
	"time"
)

// Date is a calendar date in YYYY-MM-DD form, interpreted in the caller's
// local time zone.
type Date string

// Clock is a local time of day in HH:MM form.
type Clock string

func DateOf(t time.Time) Date {
	return Date(t.Format(time.DateOnly))
}

// In returns local midnight of the date in loc.
func (d Date) In(loc *time.Location) (time.Time, bool) {
	s := strings.TrimSpace(string(d))
	if s == "" {
		return time.Time{}, false
	}

	// Accept full timestamps as well, keeping only the calendar part.
	if len(s) > len(time.DateOnly) {
		s = s[:len(time.DateOnly)]
	}

	t, err := time.ParseInLocation(time.DateOnly, s, loc)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func (d Date) IsZero() bool { return strings.TrimSpace(string(d)) == "" }

// Offset returns the hours and minutes past midnight. An empty or malformed
// clock reads as midnight.
func (c Clock) Offset() time.Duration {
	t, err := time.Parse("15:04", strings.TrimSpace(string(c)))
	if err != nil {
		return 0
	}
	return time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute
}

// At combines a date and a clock into a local instant.
func At(d Date, c Clock, loc *time.Location) (time.Time, bool) {
	day, ok := d.In(loc)
	if !ok {
		return time.Time{}, false
	}
	off := c.Offset()
	return time.Date(day.Year(), day.Month(), day.Day(), int(off/time.Hour), int(off%time.Hour/time.Minute), 0, 0, loc), true
}
