package dashboard

import (
	"context"
	"slices"
	"strings"

	"github.com/coachdesk/dashboard/coaching"
)

// ListReminders returns open reminders first, each group by due date.
func (s *Service) ListReminders(ctx context.Context) []coaching.Reminder {
	var out []coaching.Reminder
	s.read(func(state *coaching.State) {
		out = slices.Clone(state.Reminders)
	})
	coaching.SortReminders(out, s.location())
	return out
}

func (s *Service) CreateReminder(ctx context.Context, in coaching.ReminderInput) (coaching.Reminder, error) {
	if err := coaching.Validate(in); err != nil {
		return coaching.Reminder{}, err
	}

	r := coaching.Reminder{
		ID:       coaching.NewID(),
		Title:    strings.TrimSpace(in.Title),
		DueDate:  in.DueDate,
		Notes:    in.Notes,
		Priority: in.Priority,
	}
	if r.Priority == "" {
		r.Priority = coaching.PriorityNormal
	}

	err := s.commit(ctx, "reminder", "create", func(next *coaching.State) error {
		next.Reminders = append(next.Reminders, r)
		return nil
	})
	if err != nil {
		return coaching.Reminder{}, err
	}
	return r, nil
}

func (s *Service) ToggleReminder(ctx context.Context, id coaching.ID) (coaching.Reminder, error) {
	var toggled coaching.Reminder
	err := s.commit(ctx, "reminder", "toggle", func(next *coaching.State) error {
		i := next.ReminderIndex(id)
		if i < 0 {
			return coaching.ErrReminderNotFound
		}
		next.Reminders[i].Completed = !next.Reminders[i].Completed
		toggled = next.Reminders[i]
		return nil
	})
	return toggled, err
}

// DeleteReminder removes a reminder right away; reminders need no
// confirmation.
func (s *Service) DeleteReminder(ctx context.Context, id coaching.ID) error {
	return s.commit(ctx, "reminder", "delete", func(next *coaching.State) error {
		i := next.ReminderIndex(id)
		if i < 0 {
			return coaching.ErrReminderNotFound
		}
		next.Reminders = append(next.Reminders[:i], next.Reminders[i+1:]...)
		return nil
	})
}
