// Package metrics holds the Prometheus collectors of the dashboard.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var Mutations = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "coachdesk",
	Subsystem: "store",
	Name:      "mutations_total",
	Help:      "Committed mutations by entity, action and outcome.",
}, []string{"entity", "action", "outcome"})

var Entities = promauto.NewGaugeVec(prometheus.GaugeOpts{
	Namespace: "coachdesk",
	Subsystem: "store",
	Name:      "entities",
	Help:      "Number of stored records per entity.",
}, []string{"entity"})

var PersistDuration = promauto.NewHistogram(prometheus.HistogramOpts{
	Namespace: "coachdesk",
	Subsystem: "store",
	Name:      "persist_duration_seconds",
	Help:      "Time spent writing the full state blob.",
	Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 14),
})

var StateVersion = promauto.NewGauge(prometheus.GaugeOpts{
	Namespace: "coachdesk",
	Subsystem: "store",
	Name:      "version",
	Help:      "Version of the in-memory state, bumped on every commit.",
})

var HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "coachdesk",
	Subsystem: "http",
	Name:      "requests_total",
	Help:      "HTTP requests by route and status code.",
}, []string{"route", "status"})

type Outcome string

const (
	OutcomeOK       Outcome = "ok"
	OutcomeRejected Outcome = "rejected"
	OutcomeFailed   Outcome = "failed"
)

func ObserveMutation(entity, action string, outcome Outcome) {
	Mutations.WithLabelValues(entity, action, string(outcome)).Inc()
}

func ObservePersist(start time.Time) {
	PersistDuration.Observe(time.Since(start).Seconds())
}

// Counts records the size of each collection.
func Counts(counts map[string]int) {
	for entity, n := range counts {
		Entities.WithLabelValues(entity).Set(float64(n))
	}
}
