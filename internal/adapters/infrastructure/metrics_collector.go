package infrastructure

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"weatherscreen.app/internal/core/weather"
)

// PrometheusMetricsCollector implements the MetricsCollector port.
// Alongside the Prometheus series it keeps plain counters for the health report.
type PrometheusMetricsCollector struct {
	fetches       *prometheus.CounterVec
	fetchDuration *prometheus.HistogramVec
	events        *prometheus.CounterVec
	activeScreens prometheus.Gauge

	mu        sync.RWMutex
	successes int64
	failures  int64
	active    int
	lastFetch time.Time
}

// NewPrometheusMetricsCollector registers the collector's series with reg.
func NewPrometheusMetricsCollector(reg prometheus.Registerer) *PrometheusMetricsCollector {
	factory := promauto.With(reg)

	return &PrometheusMetricsCollector{
		fetches: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "weatherscreen_fetch_total",
				Help: "The total number of weather fetches by query mode and outcome",
			},
			[]string{"mode", "outcome"},
		),
		fetchDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "weatherscreen_fetch_duration_seconds",
				Help:    "Weather fetch duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"mode"},
		),
		events: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "weatherscreen_events_total",
				Help: "The total number of screen events applied",
			},
			[]string{"event"},
		),
		activeScreens: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "weatherscreen_active_screens",
				Help: "Number of mounted screens",
			},
		),
	}
}

func (m *PrometheusMetricsCollector) RecordFetch(mode, outcome string, duration time.Duration) {
	m.fetches.WithLabelValues(mode, outcome).Inc()
	m.fetchDuration.WithLabelValues(mode).Observe(duration.Seconds())

	m.mu.Lock()
	defer m.mu.Unlock()
	if outcome == weather.OutcomeSuccess {
		m.successes++
	} else {
		m.failures++
	}
	m.lastFetch = time.Now()
}

func (m *PrometheusMetricsCollector) RecordEvent(event string) {
	m.events.WithLabelValues(event).Inc()
}

func (m *PrometheusMetricsCollector) SetActiveScreens(count int) {
	m.activeScreens.Set(float64(count))

	m.mu.Lock()
	m.active = count
	m.mu.Unlock()
}

// GetStats summarizes fetch activity for the health endpoint.
func (m *PrometheusMetricsCollector) GetStats() map[string]interface{} {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var successRatio float64
	if total := m.successes + m.failures; total > 0 {
		successRatio = float64(m.successes) / float64(total)
	}

	stats := map[string]interface{}{
		"fetch_successes": m.successes,
		"fetch_failures":  m.failures,
		"success_ratio":   successRatio,
		"active_screens":  m.active,
	}
	if !m.lastFetch.IsZero() {
		stats["last_fetch"] = m.lastFetch.Format(time.RFC3339)
	}
	return stats
}
