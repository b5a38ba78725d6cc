package metrics_test

import (
	"debroglie/pkg/metrics"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestNewHTTP(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := metrics.NewHTTP(reg)
	require.NoError(t, err)

	m.Requests.WithLabelValues("GET", "200").Inc()
	m.Duration.WithLabelValues("GET").Observe(0.002)

	require.Equal(t, 1.0, testutil.ToFloat64(m.Requests.WithLabelValues("GET", "200")))
	count, err := testutil.GatherAndCount(reg)
	require.NoError(t, err)
	require.Equal(t, 2, count)

	_, err = metrics.NewHTTP(reg)
	require.Error(t, err, "registering twice must fail")
}

func TestDefaultBucketsSorted(t *testing.T) {
	for i := 1; i < len(metrics.DefaultBuckets); i++ {
		require.Less(t, metrics.DefaultBuckets[i-1], metrics.DefaultBuckets[i])
	}
}
