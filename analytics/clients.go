package analytics

import (
	"cmp"
	"slices"
	"time"

	"github.com/coachdesk/dashboard/coaching"
)

type ClientSummary struct {
	coaching.Client
	TotalSessions int           `json:"totalSessions"`
	TotalSpent    float64       `json:"totalSpent"`
	LastSession   coaching.Date `json:"lastSession"`
}

// SummarizeClient totals a client's bookings. A manual session count, when
// set, replaces the counted sessions.
func SummarizeClient(c coaching.Client, bookings []coaching.Booking, loc *time.Location) ClientSummary {
	sum := ClientSummary{Client: c}
	for _, b := range bookings {
		if !b.Belongs(c) {
			continue
		}
		sum.TotalSessions++
		sum.TotalSpent += b.Earnings()
	}

	if c.ManualSessionCount != nil {
		sum.TotalSessions = *c.ManualSessionCount
	}
	if last, ok := lastSession(c, bookings, loc); ok {
		sum.LastSession = coaching.DateOf(last)
	}
	return sum
}

func ClientSummaries(clients []coaching.Client, bookings []coaching.Booking, loc *time.Location) []ClientSummary {
	out := make([]ClientSummary, 0, len(clients))
	for _, c := range clients {
		out = append(out, SummarizeClient(c, bookings, loc))
	}
	return out
}

type CalendarDay struct {
	Date     coaching.Date      `json:"date"`
	Bookings []coaching.Booking `json:"bookings"`
}

// Calendar lays out one entry per day of the month, each holding that
// day's bookings in start order.
func Calendar(bookings []coaching.Booking, year int, month time.Month, loc *time.Location) []CalendarDay {
	first := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	days := first.AddDate(0, 1, -1).Day()

	out := make([]CalendarDay, days)
	for i := range out {
		out[i] = CalendarDay{
			Date:     coaching.DateOf(time.Date(year, month, i+1, 0, 0, 0, 0, loc)),
			Bookings: []coaching.Booking{},
		}
	}

	for _, b := range bookings {
		day, ok := bookingDay(b, loc)
		if !ok || day.Year() != year || day.Month() != month {
			continue
		}
		out[day.Day()-1].Bookings = append(out[day.Day()-1].Bookings, b)
	}

	for i := range out {
		slices.SortStableFunc(out[i].Bookings, func(a, b coaching.Booking) int {
			return cmp.Compare(a.Time.Offset(), b.Time.Offset())
		})
	}
	return out
}
