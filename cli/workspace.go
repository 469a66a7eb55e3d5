package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/coachdesk/dashboard/charts"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(chartCmd)

	exportCmd.Flags().StringP("dir", "d", ".", "Directory to write the export file to")
	chartCmd.Flags().StringP("out", "o", ".", "Directory to write the chart pages to")
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write all data to a dated JSON file",
	Args:  cobra.NoArgs,
	RunE:  withApp(runExport),
}

func runExport(cmd *cobra.Command, args []string, a *app) error {
	dir, _ := cmd.Flags().GetString("dir")

	raw, name, err := a.service.Export(cmd.Context())
	if err != nil {
		return err
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create export directory: %w", err)
	}

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("write export: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Exported to %s\n", path)
	return nil
}

var importCmd = &cobra.Command{
	Use:   "import FILE",
	Short: "Replace all data with the contents of an export file",
	Long: `Replace all data with the contents of an export file. The file must be
a JSON object; anything else is rejected and the current data is kept.`,
	Args: cobra.ExactArgs(1),
	RunE: withApp(runImport),
}

func runImport(cmd *cobra.Command, args []string, a *app) error {
	raw, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("cannot read import file: %w", err)
	}

	if err := a.service.Import(cmd.Context(), raw); err != nil {
		return err
	}

	s := a.service.Snapshot()
	fmt.Fprintf(cmd.OutOrStdout(), "Imported %d bookings, %d clients, %d leads\n",
		len(s.Bookings), len(s.Clients), len(s.Leads))
	return nil
}

var chartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Render the earnings and lead source charts as HTML pages",
	Args:  cobra.NoArgs,
	RunE:  withApp(runChart),
}

func runChart(cmd *cobra.Command, args []string, a *app) error {
	out, _ := cmd.Flags().GetString("out")
	if err := os.MkdirAll(out, 0o755); err != nil {
		return fmt.Errorf("create chart directory: %w", err)
	}

	d := a.service.Dashboard(cmd.Context())
	config := charts.DefaultConfig()

	earnings := filepath.Join(out, "earnings.html")
	if err := writeChart(earnings, func(f *os.File) error {
		return charts.RenderEarnings(f, d.YearToDate, config)
	}); err != nil {
		return err
	}

	leads := filepath.Join(out, "leads.html")
	if err := writeChart(leads, func(f *os.File) error {
		return charts.RenderLeadSources(f, d.LeadSources, config)
	}); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s and %s\n", earnings, leads)
	return nil
}

func writeChart(path string, render func(f *os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := render(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
