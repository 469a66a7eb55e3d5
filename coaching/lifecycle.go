package coaching

import (
	"cmp"
	"slices"
	"time"
)

type BookingState string

const (
	StateScheduled      BookingState = "scheduled"
	StatePastIncomplete BookingState = "past-incomplete"
	StateCompleted      BookingState = "completed"
)

// StartsAt is the booking's local start instant in loc.
func (b Booking) StartsAt(loc *time.Location) (time.Time, bool) {
	return At(b.Date, b.Time, loc)
}

// IsPast reports whether the booking's start is before now. A booking with
// no readable date is never past.
func (b Booking) IsPast(now time.Time) bool {
	start, ok := b.StartsAt(now.Location())
	return ok && start.Before(now)
}

// StateAt derives the lifecycle state from the completion flag and the wall
// clock. Editing the date or time can move a booking between Scheduled and
// PastIncomplete without touching Completed.
func (b Booking) StateAt(now time.Time) BookingState {
	switch {
	case b.Completed:
		return StateCompleted
	case b.IsPast(now):
		return StatePastIncomplete
	default:
		return StateScheduled
	}
}

type BookingView string

const (
	ViewUpcoming  BookingView = "upcoming"
	ViewCompleted BookingView = "completed"
	ViewAll       BookingView = "all"
)

func (v BookingView) Valid() bool {
	return v == ViewUpcoming || v == ViewCompleted || v == ViewAll
}

// FilterBookings returns the bookings visible in a view, newest first.
// Upcoming: not completed and not yet started. Completed: marked completed or
// already started.
func FilterBookings(bookings []Booking, view BookingView, now time.Time) []Booking {
	out := make([]Booking, 0, len(bookings))
	for _, b := range bookings {
		past := b.IsPast(now)
		switch view {
		case ViewUpcoming:
			if b.Completed || past {
				continue
			}
		case ViewCompleted:
			if !b.Completed && !past {
				continue
			}
		}
		out = append(out, b)
	}

	SortNewestFirst(out, now.Location())
	return out
}

// SortNewestFirst orders bookings by date and time, latest first. Bookings
// without a readable date sort last.
func SortNewestFirst(bookings []Booking, loc *time.Location) {
	slices.SortStableFunc(bookings, func(a, b Booking) int {
		ta, okA := a.StartsAt(loc)
		tb, okB := b.StartsAt(loc)
		switch {
		case !okA && !okB:
			return 0
		case !okA:
			return 1
		case !okB:
			return -1
		}
		return tb.Compare(ta)
	})
}

// PackageProgress counts the completed sub-sessions of a package booking.
// Other services have no progress.
func (b Booking) PackageProgress() int {
	if b.Service != ServicePackage3 {
		return 0
	}
	done := 0
	for _, s := range b.Sessions {
		if s.Completed {
			done++
		}
	}
	return min(done, MaxPackageSessions)
}

// SortReminders puts open reminders first, then orders by due date with
// undated reminders last.
func SortReminders(reminders []Reminder, loc *time.Location) {
	slices.SortStableFunc(reminders, func(a, b Reminder) int {
		if a.Completed != b.Completed {
			if a.Completed {
				return 1
			}
			return -1
		}
		da, okA := a.DueDate.In(loc)
		db, okB := b.DueDate.In(loc)
		switch {
		case !okA && !okB:
			return 0
		case !okA:
			return 1
		case !okB:
			return -1
		}
		return cmp.Compare(da.Unix(), db.Unix())
	})
}
