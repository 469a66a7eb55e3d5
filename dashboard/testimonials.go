package dashboard

import (
	"context"
	"slices"
	"strings"

	"github.com/coachdesk/dashboard/coaching"
)

func (s *Service) ListTestimonials(ctx context.Context) []coaching.Testimonial {
	var out []coaching.Testimonial
	s.read(func(state *coaching.State) {
		out = slices.Clone(state.Testimonials)
	})
	return out
}

// CreateTestimonial stores a testimonial, linked to the client of the same
// name when there is one. An empty date means today.
func (s *Service) CreateTestimonial(ctx context.Context, in coaching.TestimonialInput) (coaching.Testimonial, error) {
	if err := coaching.Validate(in); err != nil {
		return coaching.Testimonial{}, err
	}

	var created coaching.Testimonial
	err := s.commit(ctx, "testimonial", "create", func(next *coaching.State) error {
		t := coaching.Testimonial{
			ID:         coaching.NewID(),
			ClientName: strings.TrimSpace(in.ClientName),
			Text:       in.Text,
			Rating:     in.Rating,
			Date:       in.Date,
		}
		if t.Date.IsZero() {
			t.Date = s.today()
		}
		if c, ok := next.ClientByName(in.ClientName); ok {
			t.ClientID = c.ID
			t.ClientName = c.Name
		}

		next.Testimonials = append(next.Testimonials, t)
		created = t
		return nil
	})
	return created, err
}

func (s *Service) DeleteTestimonial(ctx context.Context, id coaching.ID, confirmed bool) error {
	return s.commit(ctx, "testimonial", "delete", func(next *coaching.State) error {
		i := next.TestimonialIndex(id)
		if i < 0 {
			return coaching.ErrTestimonialNotFound
		}
		if !confirmed {
			return coaching.ErrConfirmationRequired
		}
		next.Testimonials = append(next.Testimonials[:i], next.Testimonials[i+1:]...)
		return nil
	})
}
