package coaching

// LinkClients fills the clientId of bookings and testimonials that only carry
// a client name, matching names case-insensitively. Records whose name
// matches no client stay unlinked. It returns the number of records linked.
func LinkClients(s *State) int {
	byName := make(map[string]ID, len(s.Clients))
	for _, c := range s.Clients {
		key := nameKey(c.Name)
		if _, dup := byName[key]; !dup {
			byName[key] = c.ID
		}
	}

	linked := 0
	for i := range s.Bookings {
		if s.Bookings[i].ClientID == "" {
			s.Bookings[i].ClientID = byName[nameKey(s.Bookings[i].ClientName)]
			if s.Bookings[i].ClientID != "" {
				linked++
			}
		}
	}
	for i := range s.Testimonials {
		if s.Testimonials[i].ClientID == "" {
			s.Testimonials[i].ClientID = byName[nameKey(s.Testimonials[i].ClientName)]
			if s.Testimonials[i].ClientID != "" {
				linked++
			}
		}
	}
	return linked
}

// Normalize brings a freshly loaded state up to the current invariants:
// missing collections become empty, missing settings get defaults, clients
// are linked by id and every current rank is backed by its history. It
// reports whether anything beyond empty collections was repaired, in which
// case the state differs from what was stored.
func Normalize(s *State, today Date) bool {
	repaired := false
	if s.Bookings == nil {
		s.Bookings = []Booking{}
	}
	if s.Clients == nil {
		s.Clients = []Client{}
	}
	if s.Leads == nil {
		s.Leads = []Lead{}
	}
	if s.Reminders == nil {
		s.Reminders = []Reminder{}
	}
	if s.Testimonials == nil {
		s.Testimonials = []Testimonial{}
	}
	if s.Settings == (Settings{}) {
		s.Settings = DefaultSettings()
		repaired = true
	}

	for i := range s.Clients {
		if s.Clients[i].RankHistory == nil {
			s.Clients[i].RankHistory = []RankEntry{}
		}
		if s.Clients[i].SyncRank(today, "Synced from current rank") {
			repaired = true
		}
	}

	if LinkClients(s) > 0 {
		repaired = true
	}
	return repaired
}

// Belongs reports whether a booking is one of the client's sessions. Linked
// bookings join by id; unlinked legacy bookings fall back to exact name
// equality.
func (b Booking) Belongs(c Client) bool {
	if b.ClientID != "" {
		return b.ClientID == c.ID
	}
	return b.ClientName == c.Name
}
