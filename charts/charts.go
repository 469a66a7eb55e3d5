package charts

import (
	"fmt"
	"io"
	"math"

	"github.com/coachdesk/dashboard/analytics"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

type Config struct {
	Width  string
	Height string
	Theme  string
	Colors []string
}

func DefaultConfig() Config {
	return Config{
		Width:  "900px",
		Height: "500px",
		Theme:  "dark",
		Colors: []string{"#F97316", "#5470C6", "#91CC75", "#FAC858", "#EE6666", "#73C0DE"},
	}
}

func (c Config) globalOptions(title, subtitle string) []charts.GlobalOpts {
	return []charts.GlobalOpts{
		charts.WithInitializationOpts(opts.Initialization{
			Width:  c.Width,
			Height: c.Height,
			Theme:  c.Theme,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    title,
			Subtitle: subtitle,
		}),
		charts.WithColorsOpts(opts.Colors(c.Colors)),
	}
}

// RenderEarnings writes a bar chart of the year-to-date monthly earnings as
// a standalone HTML page.
func RenderEarnings(w io.Writer, months []analytics.MonthEarnings, config Config) error {
	bar := charts.NewBar()

	var total float64
	labels := make([]string, len(months))
	data := make([]opts.BarData, len(months))
	for i, m := range months {
		labels[i] = m.Month
		data[i] = opts.BarData{Value: round2(m.Earnings)}
		total += m.Earnings
	}

	bar.SetGlobalOptions(append(config.globalOptions("Earnings this year", fmt.Sprintf("Total $%.2f", total)),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: "axis",
		}),
		charts.WithLegendOpts(opts.Legend{
			Show: opts.Bool(false),
		}),
	)...)

	bar.SetXAxis(labels).
		AddSeries("Earnings", data).
		SetSeriesOptions(
			charts.WithLabelOpts(opts.Label{
				Show:     opts.Bool(true),
				Position: "top",
			}),
		)

	if err := bar.Render(w); err != nil {
		return fmt.Errorf("failed to render earnings chart: %w", err)
	}
	return nil
}

// RenderLeadSources writes a pie chart of leads per source, labelled with
// the conversion rate of each source.
func RenderLeadSources(w io.Writer, sources []analytics.LeadSourceStats, config Config) error {
	pie := charts.NewPie()

	var total int
	data := make([]opts.PieData, len(sources))
	for i, s := range sources {
		data[i] = opts.PieData{
			Name:  fmt.Sprintf("%s (%.1f%% converted)", s.Source, s.Rate),
			Value: s.Total,
		}
		total += s.Total
	}

	pie.SetGlobalOptions(append(config.globalOptions("Lead sources", fmt.Sprintf("%d leads", total)),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: "item",
		}),
		charts.WithLegendOpts(opts.Legend{
			Show: opts.Bool(true),
			Top:  "bottom",
		}),
	)...)

	pie.AddSeries("Leads", data).
		SetSeriesOptions(
			charts.WithLabelOpts(opts.Label{
				Show:      opts.Bool(true),
				Formatter: "{b}: {c}",
			}),
		)

	if err := pie.Render(w); err != nil {
		return fmt.Errorf("failed to render lead chart: %w", err)
	}
	return nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
