package analytics

import (
	"math"
	"slices"

	"github.com/coachdesk/dashboard/coaching"
)

type LeadSourceStats struct {
	Source    coaching.LeadSource `json:"source"`
	Total     int                 `json:"total"`
	Converted int                 `json:"converted"`
	Rate      float64             `json:"rate"`
}

// LeadSourceAnalytics groups leads by source in order of first appearance
// and sorts the groups by conversion rate, highest first. Rates are
// percentages rounded to one decimal.
func LeadSourceAnalytics(leads []coaching.Lead) []LeadSourceStats {
	out := []LeadSourceStats{}
	index := map[coaching.LeadSource]int{}

	for _, l := range leads {
		i, ok := index[l.Source]
		if !ok {
			i = len(out)
			index[l.Source] = i
			out = append(out, LeadSourceStats{Source: l.Source})
		}
		out[i].Total++
		if l.Status == coaching.LeadConverted {
			out[i].Converted++
		}
	}

	for i := range out {
		out[i].Rate = conversionRate(out[i].Converted, out[i].Total)
	}

	slices.SortStableFunc(out, func(a, b LeadSourceStats) int {
		switch {
		case a.Rate > b.Rate:
			return -1
		case a.Rate < b.Rate:
			return 1
		}
		return 0
	})
	return out
}

func conversionRate(converted, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(converted)/float64(total)*1000) / 10
}
