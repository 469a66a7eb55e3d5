package dashboard

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/coachdesk/dashboard/coaching"
)

func (s *Service) ListLeads(ctx context.Context) []coaching.Lead {
	var out []coaching.Lead
	s.read(func(state *coaching.State) {
		out = slices.Clone(state.Leads)
	})
	return out
}

func (s *Service) CreateLead(ctx context.Context, in coaching.LeadInput) (coaching.Lead, error) {
	if err := coaching.Validate(in); err != nil {
		return coaching.Lead{}, err
	}

	var created coaching.Lead
	err := s.commit(ctx, "lead", "create", func(next *coaching.State) error {
		l := coaching.Lead{
			ID:        coaching.NewID(),
			CreatedAt: s.now(),
		}
		applyLeadInput(&l, in)

		next.Leads = append(next.Leads, l)
		created = l
		return nil
	})
	return created, err
}

func (s *Service) UpdateLead(ctx context.Context, id coaching.ID, in coaching.LeadInput) (coaching.Lead, error) {
	if err := coaching.Validate(in); err != nil {
		return coaching.Lead{}, err
	}

	var updated coaching.Lead
	err := s.commit(ctx, "lead", "update", func(next *coaching.State) error {
		i := next.LeadIndex(id)
		if i < 0 {
			return coaching.ErrLeadNotFound
		}
		applyLeadInput(&next.Leads[i], in)
		updated = next.Leads[i]
		return nil
	})
	return updated, err
}

// ConvertLead turns a lead into a client and marks it converted. A lead
// whose name already belongs to a client is refused.
func (s *Service) ConvertLead(ctx context.Context, id coaching.ID) (coaching.Client, error) {
	var created coaching.Client
	err := s.commit(ctx, "lead", "convert", func(next *coaching.State) error {
		i := next.LeadIndex(id)
		if i < 0 {
			return coaching.ErrLeadNotFound
		}

		lead := next.Leads[i]
		if _, ok := next.ClientByName(lead.Name); ok {
			return fmt.Errorf("%w: %s", coaching.ErrAlreadyClient, lead.Name)
		}

		c := coaching.NewClient(lead.Name, s.today(), "Converted from lead")
		c.Discord = lead.ContactInfo
		c.Notes = fmt.Sprintf("Converted from lead (%s)", lead.Source)

		next.Clients = append(next.Clients, c)
		next.Leads[i].Status = coaching.LeadConverted
		coaching.LinkClients(next)

		created = c
		return nil
	})
	return created, err
}

func (s *Service) DeleteLead(ctx context.Context, id coaching.ID, confirmed bool) error {
	return s.commit(ctx, "lead", "delete", func(next *coaching.State) error {
		i := next.LeadIndex(id)
		if i < 0 {
			return coaching.ErrLeadNotFound
		}
		if !confirmed {
			return coaching.ErrConfirmationRequired
		}
		next.Leads = append(next.Leads[:i], next.Leads[i+1:]...)
		return nil
	})
}

func applyLeadInput(l *coaching.Lead, in coaching.LeadInput) {
	l.Name = strings.TrimSpace(in.Name)
	l.Source = in.Source
	l.ContactInfo = in.ContactInfo
	l.Notes = in.Notes

	l.Status = in.Status
	if l.Status == "" {
		l.Status = coaching.LeadNew
	}
}
