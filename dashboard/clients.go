package dashboard

import (
	"context"
	"fmt"
	"strings"

	"github.com/coachdesk/dashboard/analytics"
	"github.com/coachdesk/dashboard/coaching"
)

// ListClients returns every client with its booking totals.
func (s *Service) ListClients(ctx context.Context) []analytics.ClientSummary {
	var out []analytics.ClientSummary
	s.read(func(state *coaching.State) {
		out = analytics.ClientSummaries(state.Clients, state.Bookings, s.location())
	})
	return out
}

func (s *Service) FindClient(ctx context.Context, id coaching.ID) (analytics.ClientSummary, error) {
	var (
		sum   analytics.ClientSummary
		found bool
	)
	s.read(func(state *coaching.State) {
		if i := state.ClientIndex(id); i >= 0 {
			sum = analytics.SummarizeClient(state.Clients[i], state.Bookings, s.location())
			found = true
		}
	})
	if !found {
		return analytics.ClientSummary{}, coaching.ErrClientNotFound
	}
	return sum, nil
}

// CreateClient adds a client whose history starts at the starting rank.
func (s *Service) CreateClient(ctx context.Context, in coaching.ClientInput) (coaching.Client, error) {
	if err := coaching.Validate(in); err != nil {
		return coaching.Client{}, err
	}

	var created coaching.Client
	err := s.commit(ctx, "client", "create", func(next *coaching.State) error {
		if err := checkUniqueName(next, in.Name, ""); err != nil {
			return err
		}

		starting := orRank(in.StartingRank, coaching.RankBronze)
		c := coaching.Client{
			ID:                 coaching.NewID(),
			Name:               strings.TrimSpace(in.Name),
			Discord:            in.Discord,
			StartingRank:       starting,
			GoalRank:           orRank(in.GoalRank, coaching.RankDiamond),
			Notes:              in.Notes,
			ManualSessionCount: in.ManualSessionCount,
		}
		c.AppendRank(starting, s.today(), "Starting rank")
		if in.CurrentRank != "" && in.CurrentRank != starting {
			c.AppendRank(in.CurrentRank, s.today(), "Current rank")
		}

		next.Clients = append(next.Clients, c)
		created = c
		return nil
	})
	return created, err
}

// UpdateClient edits a client. A new current rank is recorded in the
// history; a new name is carried to the linked bookings and testimonials.
func (s *Service) UpdateClient(ctx context.Context, id coaching.ID, in coaching.ClientInput) (coaching.Client, error) {
	if err := coaching.Validate(in); err != nil {
		return coaching.Client{}, err
	}

	var updated coaching.Client
	err := s.commit(ctx, "client", "update", func(next *coaching.State) error {
		i := next.ClientIndex(id)
		if i < 0 {
			return coaching.ErrClientNotFound
		}
		if err := checkUniqueName(next, in.Name, id); err != nil {
			return err
		}

		c := next.Clients[i]
		c.Name = strings.TrimSpace(in.Name)
		c.Discord = in.Discord
		c.StartingRank = orRank(in.StartingRank, c.StartingRank)
		c.GoalRank = orRank(in.GoalRank, c.GoalRank)
		c.Notes = in.Notes
		c.ManualSessionCount = in.ManualSessionCount

		if in.CurrentRank != "" && in.CurrentRank != c.CurrentRank {
			c.AppendRank(in.CurrentRank, s.today(), "Rank updated")
		}

		renameLinked(next, c)
		next.Clients[i] = c
		updated = c
		return nil
	})
	return updated, err
}

// AddRankUpdate appends a rank to the client's history and makes it current.
func (s *Service) AddRankUpdate(ctx context.Context, id coaching.ID, in coaching.RankUpdateInput) (coaching.Client, error) {
	if err := coaching.Validate(in); err != nil {
		return coaching.Client{}, err
	}

	var updated coaching.Client
	err := s.commit(ctx, "client", "rank", func(next *coaching.State) error {
		i := next.ClientIndex(id)
		if i < 0 {
			return coaching.ErrClientNotFound
		}
		next.Clients[i].AppendRank(in.Rank, s.today(), in.Note)
		updated = next.Clients[i]
		return nil
	})
	return updated, err
}

// DeleteClient removes a client. Its bookings and testimonials stay, keeping
// the display name but no longer linked.
func (s *Service) DeleteClient(ctx context.Context, id coaching.ID, confirmed bool) error {
	return s.commit(ctx, "client", "delete", func(next *coaching.State) error {
		i := next.ClientIndex(id)
		if i < 0 {
			return coaching.ErrClientNotFound
		}
		if !confirmed {
			return coaching.ErrConfirmationRequired
		}

		next.Clients = append(next.Clients[:i], next.Clients[i+1:]...)
		for j := range next.Bookings {
			if next.Bookings[j].ClientID == id {
				next.Bookings[j].ClientID = ""
			}
		}
		for j := range next.Testimonials {
			if next.Testimonials[j].ClientID == id {
				next.Testimonials[j].ClientID = ""
			}
		}
		return nil
	})
}

func checkUniqueName(state *coaching.State, name string, self coaching.ID) error {
	if existing, ok := state.ClientByName(name); ok && existing.ID != self {
		return fmt.Errorf("%w: %q", coaching.ErrDuplicateClient, existing.Name)
	}
	return nil
}

func renameLinked(state *coaching.State, c coaching.Client) {
	for j := range state.Bookings {
		if state.Bookings[j].ClientID == c.ID {
			state.Bookings[j].ClientName = c.Name
		}
	}
	for j := range state.Testimonials {
		if state.Testimonials[j].ClientID == c.ID {
			state.Testimonials[j].ClientName = c.Name
		}
	}
}

func orRank(r, fallback coaching.Rank) coaching.Rank {
	if r == "" {
		return fallback
	}
	return r
}
