package infrastructure

import (
	"context"

	"weatherscreen.app/internal/ports"
)

const (
	statusHealthy   = "healthy"
	statusUnhealthy = "unhealthy"
)

// WeatherAPIHealthChecker reports the weather client configuration.
// It does not call the provider, so health probes never spend API quota.
type WeatherAPIHealthChecker struct {
	provider ports.WeatherProvider
	config   ports.ConfigProvider
}

func NewWeatherAPIHealthChecker(provider ports.WeatherProvider, config ports.ConfigProvider) *WeatherAPIHealthChecker {
	return &WeatherAPIHealthChecker{provider: provider, config: config}
}

func (w *WeatherAPIHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	if w.provider == nil {
		return ports.HealthStatus{
			Component: "weatherAPI",
			Status:    statusUnhealthy,
			Error:     "weather provider not configured",
		}
	}

	cfg := w.config.GetWeatherConfig()
	return ports.HealthStatus{
		Component: "weatherAPI",
		Status:    statusHealthy,
		Details: map[string]interface{}{
			"provider": w.provider.GetProviderName(),
			"timeout":  cfg.Timeout.String(),
		},
	}
}

// SessionCounter is implemented by whatever owns the mounted screens.
type SessionCounter interface {
	ActiveCount() int
}

// ScreenHealthChecker reports mounted screens and fetch statistics.
type ScreenHealthChecker struct {
	sessions SessionCounter
	metrics  *PrometheusMetricsCollector
}

func NewScreenHealthChecker(sessions SessionCounter, metrics *PrometheusMetricsCollector) *ScreenHealthChecker {
	return &ScreenHealthChecker{sessions: sessions, metrics: metrics}
}

func (s *ScreenHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	details := map[string]interface{}{}
	if s.metrics != nil {
		details = s.metrics.GetStats()
	}
	if s.sessions != nil {
		details["active_sessions"] = s.sessions.ActiveCount()
	}

	return ports.HealthStatus{
		Component: "screens",
		Status:    statusHealthy,
		Details:   details,
	}
}
