package dashboard

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/coachdesk/dashboard/analytics"
	"github.com/coachdesk/dashboard/coaching"
	"github.com/coachdesk/dashboard/metrics"
	"go.uber.org/zap"
)

//go:generate mockgen -source=service.go -destination=mocks/mock_repository.go -package=dashboard_mocks

// Repository persists the whole state as one unit.
type Repository interface {
	Load(ctx context.Context) (coaching.State, error)
	Save(ctx context.Context, state coaching.State) error
}

// Service is the single owner of the dashboard state. Reads return copies.
// Every write is applied to a clone, persisted in full, and only then
// swapped in, so a failed save leaves memory untouched.
type Service struct {
	mu      sync.RWMutex
	repo    Repository
	state   coaching.State
	version uint64

	now   func() time.Time
	cache *analytics.Cache
	log   *zap.Logger
}

type Option func(*Service)

func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func WithCache(c *analytics.Cache) Option {
	return func(s *Service) { s.cache = c }
}

func WithLogger(log *zap.Logger) Option {
	return func(s *Service) { s.log = log }
}

// NewService loads the saved state and brings it up to the current
// invariants.
func NewService(ctx context.Context, repo Repository, opts ...Option) (*Service, error) {
	s := &Service{
		repo: repo,
		now:  time.Now,
		log:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With(zap.String("service", "dashboard"))

	if err := s.Reload(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

// Reload replaces the in-memory state with the saved one. Repairs made
// while normalizing are written back so storage and memory agree.
func (s *Service) Reload(ctx context.Context) error {
	state, err := s.repo.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load dashboard: %w", err)
	}
	repaired := coaching.Normalize(&state, s.today())

	s.mu.Lock()
	defer s.mu.Unlock()

	if repaired {
		if err := s.repo.Save(ctx, state); err != nil {
			return fmt.Errorf("failed to save repaired dashboard: %w", err)
		}
		s.log.Info("repaired state saved")
	}

	s.state = state
	s.bump()
	s.cache.Flush()

	s.log.Info("state loaded",
		zap.Int("bookings", len(state.Bookings)),
		zap.Int("clients", len(state.Clients)),
		zap.Uint64("version", s.version),
	)
	return nil
}

// Version increases on every committed write and every reload.
func (s *Service) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

// Snapshot returns a deep copy of the current state.
func (s *Service) Snapshot() coaching.State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Clone()
}

func (s *Service) today() coaching.Date {
	return coaching.DateOf(s.now())
}

func (s *Service) location() *time.Location {
	return s.now().Location()
}

func (s *Service) read(fn func(state *coaching.State)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(&s.state)
}

// commit applies fn to a copy of the state and persists the result. The
// copy replaces the live state only once the save succeeded.
func (s *Service) commit(ctx context.Context, entity, action string, fn func(next *coaching.State) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.state.Clone()
	if err := fn(&next); err != nil {
		metrics.ObserveMutation(entity, action, metrics.OutcomeRejected)
		return err
	}

	start := time.Now()
	if err := s.repo.Save(ctx, next); err != nil {
		metrics.ObserveMutation(entity, action, metrics.OutcomeFailed)
		s.log.Error("failed to persist state",
			zap.String("entity", entity),
			zap.String("action", action),
			zap.Error(err),
		)
		return fmt.Errorf("failed to save %s %s: %w", entity, action, err)
	}
	metrics.ObservePersist(start)

	s.state = next
	s.bump()
	metrics.ObserveMutation(entity, action, metrics.OutcomeOK)

	s.log.Info("state committed",
		zap.String("entity", entity),
		zap.String("action", action),
		zap.Uint64("version", s.version),
	)
	return nil
}

// bump must be called with the write lock held.
func (s *Service) bump() {
	s.version++
	metrics.StateVersion.Set(float64(s.version))
	metrics.Counts(map[string]int{
		"bookings":     len(s.state.Bookings),
		"clients":      len(s.state.Clients),
		"leads":        len(s.state.Leads),
		"reminders":    len(s.state.Reminders),
		"testimonials": len(s.state.Testimonials),
	})
}
