package coaching

type Pricing struct {
	OneOnOne        float64 `json:"oneOnOne"`
	TeamVod         float64 `json:"teamVod"`
	ScrimCoaching   float64 `json:"scrimCoaching"`
	VodReview       float64 `json:"vodReview"`
	Package3Session float64 `json:"package3Session"`
}

// For returns the configured unit price of a service.
func (p Pricing) For(service ServiceType) (float64, bool) {
	switch service {
	case ServiceOneOnOne:
		return p.OneOnOne, true
	case ServiceTeamVod:
		return p.TeamVod, true
	case ServiceScrimCoaching:
		return p.ScrimCoaching, true
	case ServiceVodReview:
		return p.VodReview, true
	case ServicePackage3:
		return p.Package3Session, true
	}
	return 0, false
}

type Settings struct {
	WeeklyGoal float64 `json:"weeklyGoal"`
	Pricing    Pricing `json:"pricing"`
}

func DefaultSettings() Settings {
	return Settings{
		WeeklyGoal: 10,
		Pricing: Pricing{
			OneOnOne:        35,
			TeamVod:         40,
			ScrimCoaching:   30,
			VodReview:       20,
			Package3Session: 100,
		},
	}
}

type Notes struct {
	Availability string `json:"availability"`
	General      string `json:"general"`
}
