package analytics

import (
	"time"

	"github.com/coachdesk/dashboard/coaching"
)

type QuickActionType string

const (
	ActionOverdue QuickActionType = "overdue"
	ActionStale   QuickActionType = "stale"
	ActionUnpaid  QuickActionType = "unpaid"
)

type QuickAction struct {
	Type  QuickActionType `json:"type"`
	Count int             `json:"count"`
	Label string          `json:"label"`
}

// QuickActions lists the conditions that need attention, in the fixed
// order overdue, stale, unpaid. Categories with nothing to report are left
// out.
func QuickActions(reminders []coaching.Reminder, clients []coaching.Client, bookings []coaching.Booking, now time.Time) []QuickAction {
	actions := []QuickAction{}

	if n := countOverdue(reminders, now); n > 0 {
		actions = append(actions, QuickAction{Type: ActionOverdue, Count: n, Label: "Overdue Reminders"})
	}
	if n := len(StaleClients(clients, bookings, now)); n > 0 {
		actions = append(actions, QuickAction{Type: ActionStale, Count: n, Label: "Inactive Clients (30+ days)"})
	}
	if n := countUnpaid(bookings); n > 0 {
		actions = append(actions, QuickAction{Type: ActionUnpaid, Count: n, Label: "Unpaid Sessions"})
	}

	return actions
}

// Overdue reports whether an open reminder's due date has passed. Undated
// reminders are never overdue.
func Overdue(r coaching.Reminder, now time.Time) bool {
	if r.Completed {
		return false
	}
	due, ok := r.DueDate.In(now.Location())
	return ok && due.Before(now)
}

func countOverdue(reminders []coaching.Reminder, now time.Time) int {
	n := 0
	for _, r := range reminders {
		if Overdue(r, now) {
			n++
		}
	}
	return n
}

// StaleClients returns the clients whose latest booking is dated more than
// 30 days before now. Clients without bookings are never stale.
func StaleClients(clients []coaching.Client, bookings []coaching.Booking, now time.Time) []coaching.Client {
	cutoff := now.Add(-TrailingWindow)

	var stale []coaching.Client
	for _, c := range clients {
		last, ok := lastSession(c, bookings, now.Location())
		if ok && last.Before(cutoff) {
			stale = append(stale, c)
		}
	}
	return stale
}

func lastSession(c coaching.Client, bookings []coaching.Booking, loc *time.Location) (time.Time, bool) {
	var last time.Time
	found := false
	for _, b := range bookings {
		if !b.Belongs(c) {
			continue
		}
		day, ok := bookingDay(b, loc)
		if !ok {
			continue
		}
		if !found || day.After(last) {
			last, found = day, true
		}
	}
	return last, found
}

func countUnpaid(bookings []coaching.Booking) int {
	n := 0
	for _, b := range bookings {
		if b.PaymentStatus == coaching.PaymentUnpaid {
			n++
		}
	}
	return n
}
