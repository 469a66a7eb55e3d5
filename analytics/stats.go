package analytics

import (
	"math"
	"time"

	"github.com/coachdesk/dashboard/coaching"
)

const (
	week = 7 * 24 * time.Hour

	// TrailingWindow is the look-back used by the monthly figures, the
	// projections and the stale-client check.
	TrailingWindow = 30 * 24 * time.Hour
)

type WeekStats struct {
	WeekHours    float64 `json:"weekHours"`
	WeekEarnings float64 `json:"weekEarnings"`
}

type MonthStats struct {
	MonthHours    float64 `json:"monthHours"`
	MonthEarnings float64 `json:"monthEarnings"`
}

// WeekStart returns local midnight of the Monday starting t's week.
func WeekStart(t time.Time) time.Time {
	back := int(t.Weekday()) - 1
	if t.Weekday() == time.Sunday {
		back = 6
	}
	return time.Date(t.Year(), t.Month(), t.Day()-back, 0, 0, 0, 0, t.Location())
}

func nextWeek(start time.Time) time.Time {
	return time.Date(start.Year(), start.Month(), start.Day()+7, 0, 0, 0, 0, start.Location())
}

// bookingDay parses the booking date in now's zone. Bookings with an
// unreadable date are left out of every figure.
func bookingDay(b coaching.Booking, loc *time.Location) (time.Time, bool) {
	return b.Date.In(loc)
}

func within(t, from, to time.Time) bool {
	return !t.Before(from) && t.Before(to)
}

// WeeklyStats sums the bookings dated in the current Monday-aligned week.
func WeeklyStats(bookings []coaching.Booking, now time.Time) WeekStats {
	start := WeekStart(now)
	end := nextWeek(start)

	var s WeekStats
	for _, b := range bookings {
		day, ok := bookingDay(b, now.Location())
		if !ok || !within(day, start, end) {
			continue
		}
		s.WeekHours += b.Hours()
		s.WeekEarnings += b.Earnings()
	}
	return s
}

// trailing returns the bookings dated on or after now minus 30 days.
// Upcoming bookings count, so the window never reports less than the
// current week.
func trailing(bookings []coaching.Booking, now time.Time) []coaching.Booking {
	from := now.Add(-TrailingWindow)

	var out []coaching.Booking
	for _, b := range bookings {
		day, ok := bookingDay(b, now.Location())
		if !ok || day.Before(from) {
			continue
		}
		out = append(out, b)
	}
	return out
}

// MonthlyStats sums the bookings of the trailing 30-day window. The window
// is not aligned to calendar months.
func MonthlyStats(bookings []coaching.Booking, now time.Time) MonthStats {
	var s MonthStats
	for _, b := range trailing(bookings, now) {
		s.MonthHours += b.Hours()
		s.MonthEarnings += b.Earnings()
	}
	return s
}

// GoalProgress is the rounded percentage of the weekly hour goal reached.
func GoalProgress(weekHours, weeklyGoal float64) int {
	if weeklyGoal <= 0 {
		return 0
	}
	return int(math.Round(weekHours / weeklyGoal * 100))
}

// SessionStreak counts consecutive Monday-aligned weeks with at least one
// booking, ending at the current week. The walk starts at the week of the
// earliest booking; an empty week before the current one resets the count
// and the walk carries on, so only the run reaching the current week counts.
// An empty current week neither counts nor resets.
func SessionStreak(bookings []coaching.Booking, now time.Time) int {
	loc := now.Location()

	var first time.Time
	weeks := make(map[int64]bool, len(bookings))
	for _, b := range bookings {
		day, ok := bookingDay(b, loc)
		if !ok {
			continue
		}
		start := WeekStart(day)
		weeks[start.Unix()] = true
		if first.IsZero() || start.Before(first) {
			first = start
		}
	}
	if first.IsZero() {
		return 0
	}

	current := WeekStart(now)
	streak := 0
	for w := first; !w.After(current); w = nextWeek(w) {
		switch {
		case weeks[w.Unix()]:
			streak++
		case w.Before(current):
			streak = 0
		}
	}
	return streak
}

type MonthEarnings struct {
	Month    string  `json:"month"`
	Earnings float64 `json:"earnings"`
}

// YearToDateEarnings returns one entry per calendar month from January of
// now's year through the current month.
func YearToDateEarnings(bookings []coaching.Booking, now time.Time) []MonthEarnings {
	loc := now.Location()
	months := make([]MonthEarnings, int(now.Month()))
	for i := range months {
		months[i].Month = time.Month(i + 1).String()[:3]
	}

	for _, b := range bookings {
		day, ok := bookingDay(b, loc)
		if !ok || day.Year() != now.Year() || day.Month() > now.Month() {
			continue
		}
		months[day.Month()-1].Earnings += b.Earnings()
	}
	return months
}
