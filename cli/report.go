package cli

import (
	"fmt"
	"io"

	"github.com/coachdesk/dashboard/analytics"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(projectionsCmd)
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print this week's and this month's figures",
	Args:  cobra.NoArgs,
	RunE:  withApp(runStats),
}

func runStats(cmd *cobra.Command, args []string, a *app) error {
	printDashboard(cmd.OutOrStdout(), a.service.Dashboard(cmd.Context()))
	return nil
}

var projectionsCmd = &cobra.Command{
	Use:   "projections",
	Short: "Print projected earnings from the last 30 days",
	Args:  cobra.NoArgs,
	RunE:  withApp(runProjections),
}

func runProjections(cmd *cobra.Command, args []string, a *app) error {
	printProjection(cmd.OutOrStdout(), a.service.Projections(cmd.Context()))
	return nil
}

func printDashboard(w io.Writer, d analytics.Dashboard) {
	fmt.Fprintf(w, "This week:   %.1fh  $%.2f\n", d.WeekHours, d.WeekEarnings)
	fmt.Fprintf(w, "Last 30d:    %.1fh  $%.2f\n", d.MonthHours, d.MonthEarnings)
	fmt.Fprintf(w, "Weekly goal: %.1fh  (%d%%)\n", d.WeeklyGoal, d.GoalProgress)
	fmt.Fprintf(w, "Streak:      %d week(s)\n", d.Streak)

	if len(d.QuickActions) > 0 {
		fmt.Fprintln(w, "")
		fmt.Fprintln(w, "Needs attention:")
		for _, qa := range d.QuickActions {
			fmt.Fprintf(w, "  %d  %s\n", qa.Count, qa.Label)
		}
	}

	if len(d.LeadSources) > 0 {
		fmt.Fprintln(w, "")
		fmt.Fprintln(w, "Lead sources:")
		for _, s := range d.LeadSources {
			fmt.Fprintf(w, "  %-16s %d/%d converted (%.1f%%)\n", s.Source, s.Converted, s.Total, s.Rate)
		}
	}
}

func printProjection(w io.Writer, p analytics.Projection) {
	fmt.Fprintf(w, "Average:  %.1fh/week at $%.2f/h\n", p.AvgWeeklyHours, p.AvgHourlyRate)
	fmt.Fprintf(w, "Weekly:   $%.2f\n", p.Weekly)
	fmt.Fprintf(w, "Monthly:  $%.2f\n", p.Monthly)
	fmt.Fprintf(w, "Yearly:   $%.2f\n", p.Yearly)

	if len(p.Scenarios) > 0 {
		fmt.Fprintln(w, "")
		fmt.Fprintln(w, "Scenarios:")
		for _, s := range p.Scenarios {
			fmt.Fprintf(w, "  %-12s %4.1fh  $%.2f/month  $%.2f/year\n", s.Label, s.Hours, s.Monthly, s.Yearly)
		}
	}
}
