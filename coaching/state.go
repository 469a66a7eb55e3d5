package coaching

import (
	"slices"
	"strings"
)

// State is the whole persisted aggregate. It is saved and loaded as a unit.
type State struct {
	Bookings     []Booking     `json:"bookings"`
	Clients      []Client      `json:"clients"`
	Leads        []Lead        `json:"leads"`
	Notes        Notes         `json:"notes"`
	Reminders    []Reminder    `json:"reminders"`
	Testimonials []Testimonial `json:"testimonials"`
	Settings     Settings      `json:"settings"`
}

func NewState() State {
	return State{
		Bookings:     []Booking{},
		Clients:      []Client{},
		Leads:        []Lead{},
		Reminders:    []Reminder{},
		Testimonials: []Testimonial{},
		Settings:     DefaultSettings(),
	}
}

// Clone returns a deep copy; callers may mutate it freely.
func (s State) Clone() State {
	out := s
	out.Bookings = cloneOrEmpty(s.Bookings)
	out.Leads = cloneOrEmpty(s.Leads)
	out.Reminders = cloneOrEmpty(s.Reminders)
	out.Testimonials = cloneOrEmpty(s.Testimonials)

	out.Clients = make([]Client, len(s.Clients))
	for i, c := range s.Clients {
		c.RankHistory = slices.Clone(c.RankHistory)
		if c.ManualSessionCount != nil {
			n := *c.ManualSessionCount
			c.ManualSessionCount = &n
		}
		out.Clients[i] = c
	}
	return out
}

func cloneOrEmpty[T any](in []T) []T {
	if in == nil {
		return []T{}
	}
	return slices.Clone(in)
}

func (s *State) BookingIndex(id ID) int {
	return slices.IndexFunc(s.Bookings, func(b Booking) bool { return b.ID == id })
}

func (s *State) ClientIndex(id ID) int {
	return slices.IndexFunc(s.Clients, func(c Client) bool { return c.ID == id })
}

func (s *State) LeadIndex(id ID) int {
	return slices.IndexFunc(s.Leads, func(l Lead) bool { return l.ID == id })
}

func (s *State) ReminderIndex(id ID) int {
	return slices.IndexFunc(s.Reminders, func(r Reminder) bool { return r.ID == id })
}

func (s *State) TestimonialIndex(id ID) int {
	return slices.IndexFunc(s.Testimonials, func(t Testimonial) bool { return t.ID == id })
}

// ClientByName finds a client by case-insensitive name.
func (s *State) ClientByName(name string) (Client, bool) {
	i := slices.IndexFunc(s.Clients, func(c Client) bool { return SameName(c.Name, name) })
	if i < 0 {
		return Client{}, false
	}
	return s.Clients[i], true
}

func nameKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
