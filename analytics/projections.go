package analytics

import (
	"time"

	"github.com/coachdesk/dashboard/coaching"
)

type Scenario struct {
	Label   string  `json:"label"`
	Hours   float64 `json:"hours"`
	Monthly float64 `json:"monthly"`
	Yearly  float64 `json:"yearly"`
}

// GoalScenarios are the fixed weekly-hour targets shown beside the
// projection.
var GoalScenarios = []struct {
	Label string
	Hours float64
}{
	{"Current Goal", 10},
	{"Stretch Goal", 15},
	{"Full-Time Equivalent", 20},
}

type Projection struct {
	AvgWeeklyHours float64    `json:"avgWeeklyHours"`
	AvgHourlyRate  float64    `json:"avgHourlyRate"`
	Weekly         float64    `json:"weekly"`
	Monthly        float64    `json:"monthly"`
	Yearly         float64    `json:"yearly"`
	Scenarios      []Scenario `json:"scenarios"`
}

// Projections extrapolates earnings from the trailing 30 days, read as four
// weeks. With no recent bookings the hourly rate falls back to the
// configured 1-on-1 price.
func Projections(bookings []coaching.Booking, settings coaching.Settings, now time.Time) Projection {
	var hours, earnings float64
	sample := trailing(bookings, now)
	for _, b := range sample {
		hours += b.Hours()
		earnings += b.Earnings()
	}

	p := Projection{AvgHourlyRate: settings.Pricing.OneOnOne}
	if len(sample) > 0 {
		p.AvgWeeklyHours = hours / 4
		if hours > 0 {
			p.AvgHourlyRate = earnings / hours
		}
	}

	p.Weekly = p.AvgWeeklyHours * p.AvgHourlyRate
	p.Monthly = p.Weekly * 4
	p.Yearly = p.Weekly * 52

	p.Scenarios = make([]Scenario, 0, len(GoalScenarios))
	for _, g := range GoalScenarios {
		p.Scenarios = append(p.Scenarios, Scenario{
			Label:   g.Label,
			Hours:   g.Hours,
			Monthly: g.Hours * p.AvgHourlyRate * 4,
			Yearly:  g.Hours * p.AvgHourlyRate * 52,
		})
	}
	return p
}
