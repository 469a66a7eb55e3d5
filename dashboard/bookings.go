package dashboard

import (
	"context"
	"fmt"
	"strings"

	"github.com/coachdesk/dashboard/coaching"
)

// ListBookings returns the bookings of a view, newest first.
func (s *Service) ListBookings(ctx context.Context, view coaching.BookingView) ([]coaching.Booking, error) {
	if view == "" {
		view = coaching.ViewAll
	}
	if !view.Valid() {
		return nil, fmt.Errorf("%w: unknown view %q", coaching.ErrInvalidInput, view)
	}

	var out []coaching.Booking
	s.read(func(state *coaching.State) {
		out = coaching.FilterBookings(state.Bookings, view, s.now())
	})
	return out, nil
}

func (s *Service) FindBooking(ctx context.Context, id coaching.ID) (coaching.Booking, error) {
	var (
		b     coaching.Booking
		found bool
	)
	s.read(func(state *coaching.State) {
		if i := state.BookingIndex(id); i >= 0 {
			b, found = state.Bookings[i], true
		}
	})
	if !found {
		return coaching.Booking{}, coaching.ErrBookingNotFound
	}
	return b, nil
}

// PackageProgress counts the completed sessions of a package booking.
func (s *Service) PackageProgress(ctx context.Context, id coaching.ID) (int, error) {
	b, err := s.FindBooking(ctx, id)
	if err != nil {
		return 0, err
	}
	return b.PackageProgress(), nil
}

// CreateBooking prices and stores a new booking. A client name that matches
// no existing client adds that client.
func (s *Service) CreateBooking(ctx context.Context, in coaching.BookingInput) (coaching.Booking, error) {
	if err := coaching.Validate(in); err != nil {
		return coaching.Booking{}, err
	}

	var created coaching.Booking
	err := s.commit(ctx, "booking", "create", func(next *coaching.State) error {
		b := coaching.Booking{ID: coaching.NewID()}
		if err := applyBookingInput(&b, in, next.Settings.Pricing, true); err != nil {
			return err
		}

		client, ok := next.ClientByName(in.ClientName)
		if !ok {
			client = coaching.NewClient(in.ClientName, s.today(), "Auto-added")
			client.Notes = "Auto-added from booking"
			next.Clients = append(next.Clients, client)
		}
		b.ClientID = client.ID
		b.ClientName = client.Name

		if err := b.CheckPrice(); err != nil {
			return err
		}

		next.Bookings = append(next.Bookings, b)
		created = b
		return nil
	})
	return created, err
}

// UpdateBooking replaces the editable fields of a booking. Without an
// explicit price, a changed service takes its configured price and an
// unchanged service keeps the stored one.
func (s *Service) UpdateBooking(ctx context.Context, id coaching.ID, in coaching.BookingInput) (coaching.Booking, error) {
	if err := coaching.Validate(in); err != nil {
		return coaching.Booking{}, err
	}

	var updated coaching.Booking
	err := s.commit(ctx, "booking", "update", func(next *coaching.State) error {
		i := next.BookingIndex(id)
		if i < 0 {
			return coaching.ErrBookingNotFound
		}

		b := next.Bookings[i]
		if in.Price == nil && in.Service == b.Service {
			price := b.Price
			in.Price = &price
		}
		if err := applyBookingInput(&b, in, next.Settings.Pricing, false); err != nil {
			return err
		}

		b.ClientID = ""
		if client, ok := next.ClientByName(in.ClientName); ok {
			b.ClientID = client.ID
			b.ClientName = client.Name
		}

		if err := b.CheckPrice(); err != nil {
			return err
		}

		next.Bookings[i] = b
		updated = b
		return nil
	})
	return updated, err
}

func (s *Service) ToggleBookingComplete(ctx context.Context, id coaching.ID) (coaching.Booking, error) {
	var toggled coaching.Booking
	err := s.commit(ctx, "booking", "toggle", func(next *coaching.State) error {
		i := next.BookingIndex(id)
		if i < 0 {
			return coaching.ErrBookingNotFound
		}
		next.Bookings[i].Completed = !next.Bookings[i].Completed
		toggled = next.Bookings[i]
		return nil
	})
	return toggled, err
}

func (s *Service) DeleteBooking(ctx context.Context, id coaching.ID, confirmed bool) error {
	return s.commit(ctx, "booking", "delete", func(next *coaching.State) error {
		i := next.BookingIndex(id)
		if i < 0 {
			return coaching.ErrBookingNotFound
		}
		if !confirmed {
			return coaching.ErrConfirmationRequired
		}
		next.Bookings = append(next.Bookings[:i], next.Bookings[i+1:]...)
		return nil
	})
}

func applyBookingInput(b *coaching.Booking, in coaching.BookingInput, pricing coaching.Pricing, create bool) error {
	duration := in.Duration
	if duration == 0 {
		duration = 1
	}

	var unit float64
	if in.Price != nil {
		unit = *in.Price
	} else {
		unit, _ = pricing.For(in.Service)
	}

	quote, err := coaching.ComputePrice(in.Service, unit, duration, in.Discount)
	if err != nil {
		return err
	}

	b.ClientName = strings.TrimSpace(in.ClientName)
	b.Date = in.Date
	b.Time = in.Time
	b.Service = in.Service
	b.Duration = duration
	b.Price = unit
	b.BasePrice = quote.BasePrice
	b.Discount = in.Discount
	b.DiscountReason = in.DiscountReason
	b.FinalPrice = quote.FinalPrice
	b.Completed = in.Completed
	b.Notes = in.Notes
	b.PreSessionNotes = in.PreSessionNotes
	b.DuringSessionNotes = in.DuringSessionNotes
	b.Homework = in.Homework

	if in.PaymentStatus != "" {
		b.PaymentStatus = in.PaymentStatus
	} else if b.PaymentStatus == "" {
		b.PaymentStatus = coaching.PaymentUnpaid
	}

	b.Sessions = [coaching.MaxPackageSessions]coaching.PackageSession{}
	if in.Service == coaching.ServicePackage3 {
		for i, ps := range in.Sessions {
			b.Sessions[i] = coaching.PackageSession{Date: ps.Date, Time: ps.Time, Completed: ps.Completed}
		}
		if create && !b.Sessions[0].Scheduled() {
			b.Sessions[0] = coaching.PackageSession{Date: in.Date, Time: in.Time}
		}
	}
	return nil
}
