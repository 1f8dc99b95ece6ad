package infrastructure

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrometheusMetricsCollector_RecordFetch(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewPrometheusMetricsCollector(reg)

	m.RecordFetch("id", "success", 120*time.Millisecond)
	m.RecordFetch("name", "success", 80*time.Millisecond)
	m.RecordFetch("name", "failure", 10*time.Second)

	assert.Equal(t, float64(1), testutil.ToFloat64(m.fetches.WithLabelValues("id", "success")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.fetches.WithLabelValues("name", "failure")))
	assert.Equal(t, 2, testutil.CollectAndCount(m.fetchDuration))

	stats := m.GetStats()
	assert.Equal(t, int64(2), stats["fetch_successes"])
	assert.Equal(t, int64(1), stats["fetch_failures"])
	assert.InDelta(t, 2.0/3.0, stats["success_ratio"], 0.0001)
	assert.Contains(t, stats, "last_fetch")
}

func TestPrometheusMetricsCollector_EventsAndScreens(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewPrometheusMetricsCollector(reg)

	m.RecordEvent("theme-toggle")
	m.RecordEvent("theme-toggle")
	m.RecordEvent("fetch-start")
	m.SetActiveScreens(3)
	m.SetActiveScreens(2)

	assert.Equal(t, float64(2), testutil.ToFloat64(m.events.WithLabelValues("theme-toggle")))
	assert.Equal(t, float64(2), testutil.ToFloat64(m.activeScreens))
	assert.Equal(t, 2, m.GetStats()["active_screens"])

	families, err := reg.Gather()
	require.NoError(t, err)
	names := make([]string, 0, len(families))
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.Contains(t, names, "weatherscreen_events_total")
	assert.Contains(t, names, "weatherscreen_active_screens")
}

func TestPrometheusMetricsCollector_EmptyStats(t *testing.T) {
	m := NewPrometheusMetricsCollector(prometheus.NewRegistry())

	stats := m.GetStats()
	assert.Equal(t, float64(0), stats["success_ratio"])
	assert.NotContains(t, stats, "last_fetch")
}
