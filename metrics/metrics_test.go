package metrics_test

import (
	"testing"

	"github.com/coachdesk/dashboard/metrics"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestObserveMutation(t *testing.T) {
	c := metrics.Mutations.WithLabelValues("booking", "create", "ok")
	before := testutil.ToFloat64(c)

	metrics.ObserveMutation("booking", "create", metrics.OutcomeOK)

	require.Equal(t, before+1, testutil.ToFloat64(c))
}

func TestCounts(t *testing.T) {
	metrics.Counts(map[string]int{"clients": 4, "leads": 0})

	require.Equal(t, 4.0, testutil.ToFloat64(metrics.Entities.WithLabelValues("clients")))
	require.Equal(t, 0.0, testutil.ToFloat64(metrics.Entities.WithLabelValues("leads")))
}
