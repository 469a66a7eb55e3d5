package analytics

import (
	"time"

	"github.com/coachdesk/dashboard/coaching"
)

// Dashboard holds every figure on the overview screen.
type Dashboard struct {
	WeekStats
	MonthStats
	WeeklyGoal   float64           `json:"weeklyGoal"`
	GoalProgress int               `json:"goalProgress"`
	Streak       int               `json:"streak"`
	QuickActions []QuickAction     `json:"quickActions"`
	YearToDate   []MonthEarnings   `json:"yearToDate"`
	LeadSources  []LeadSourceStats `json:"leadSources"`
	GeneratedAt  time.Time         `json:"generatedAt"`
}

// Compute derives the dashboard from a state snapshot. It never fails:
// unreadable dates are skipped and missing numbers take their defaults.
func Compute(s coaching.State, now time.Time) Dashboard {
	week := WeeklyStats(s.Bookings, now)

	return Dashboard{
		WeekStats:    week,
		MonthStats:   MonthlyStats(s.Bookings, now),
		WeeklyGoal:   s.Settings.WeeklyGoal,
		GoalProgress: GoalProgress(week.WeekHours, s.Settings.WeeklyGoal),
		Streak:       SessionStreak(s.Bookings, now),
		QuickActions: QuickActions(s.Reminders, s.Clients, s.Bookings, now),
		YearToDate:   YearToDateEarnings(s.Bookings, now),
		LeadSources:  LeadSourceAnalytics(s.Leads),
		GeneratedAt:  now,
	}
}
