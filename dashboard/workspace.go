package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/coachdesk/dashboard/analytics"
	"github.com/coachdesk/dashboard/coaching"
	"github.com/coachdesk/dashboard/storage"
	"go.uber.org/zap"
)

func (s *Service) Notes(ctx context.Context) coaching.Notes {
	var n coaching.Notes
	s.read(func(state *coaching.State) { n = state.Notes })
	return n
}

func (s *Service) UpdateNotes(ctx context.Context, notes coaching.Notes) (coaching.Notes, error) {
	err := s.commit(ctx, "notes", "update", func(next *coaching.State) error {
		next.Notes = notes
		return nil
	})
	if err != nil {
		return coaching.Notes{}, err
	}
	return notes, nil
}

func (s *Service) Settings(ctx context.Context) coaching.Settings {
	var st coaching.Settings
	s.read(func(state *coaching.State) { st = state.Settings })
	return st
}

// UpdateSettings replaces the weekly goal and the price list. Stored
// bookings keep the prices they were created with.
func (s *Service) UpdateSettings(ctx context.Context, in coaching.SettingsInput) (coaching.Settings, error) {
	if err := coaching.Validate(in); err != nil {
		return coaching.Settings{}, err
	}

	settings := in.Settings()
	err := s.commit(ctx, "settings", "update", func(next *coaching.State) error {
		next.Settings = settings
		return nil
	})
	if err != nil {
		return coaching.Settings{}, err
	}
	return settings, nil
}

// Dashboard returns the overview figures as of now.
func (s *Service) Dashboard(ctx context.Context) analytics.Dashboard {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cache.Dashboard(s.version, s.state, s.now())
}

func (s *Service) Projections(ctx context.Context) analytics.Projection {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cache.Projections(s.version, s.state, s.now())
}

func (s *Service) Calendar(ctx context.Context, year int, month time.Month) ([]analytics.CalendarDay, error) {
	if month < time.January || month > time.December {
		return nil, fmt.Errorf("%w: month %d", coaching.ErrInvalidInput, month)
	}

	var days []analytics.CalendarDay
	s.read(func(state *coaching.State) {
		days = analytics.Calendar(state.Bookings, year, month, s.location())
	})
	return days, nil
}

// Export returns the full state as indented JSON with its file name.
func (s *Service) Export(ctx context.Context) ([]byte, string, error) {
	var (
		raw []byte
		err error
	)
	s.read(func(state *coaching.State) {
		raw, err = storage.Encode(*state, true)
	})
	if err != nil {
		return nil, "", err
	}
	return raw, storage.ExportFileName(s.now()), nil
}

// Import replaces the saved state with raw and reloads from storage. A blob
// that does not parse leaves everything untouched.
func (s *Service) Import(ctx context.Context, raw []byte) error {
	state, err := storage.Decode(raw)
	if err != nil {
		s.log.Warn("import rejected", zap.Error(err))
		return err
	}
	coaching.Normalize(&state, s.today())

	err = s.commit(ctx, "workspace", "import", func(next *coaching.State) error {
		*next = state
		return nil
	})
	if err != nil {
		return err
	}

	return s.Reload(ctx)
}
