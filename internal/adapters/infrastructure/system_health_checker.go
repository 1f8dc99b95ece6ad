package infrastructure

import (
	"context"

	"weatherscreen.app/internal/ports"
)

// SystemHealthChecker aggregates all health checks
type SystemHealthChecker struct {
	weatherAPIChecker ports.HealthChecker
	screenChecker     ports.HealthChecker
	configProvider    ports.ConfigProvider
}

// SystemHealthCheckerConfig holds the configuration for creating a system health checker
type SystemHealthCheckerConfig struct {
	WeatherAPIChecker ports.HealthChecker
	ScreenChecker     ports.HealthChecker
	ConfigProvider    ports.ConfigProvider
}

// NewSystemHealthChecker creates a new system health checker
func NewSystemHealthChecker(config SystemHealthCheckerConfig) *SystemHealthChecker {
	return &SystemHealthChecker{
		weatherAPIChecker: config.WeatherAPIChecker,
		screenChecker:     config.ScreenChecker,
		configProvider:    config.ConfigProvider,
	}
}

// CheckAll performs health checks on all components
func (s *SystemHealthChecker) CheckAll(ctx context.Context) map[string]ports.HealthStatus {
	results := make(map[string]ports.HealthStatus)

	if s.weatherAPIChecker != nil {
		results["weatherAPI"] = s.weatherAPIChecker.Check(ctx)
	}

	if s.screenChecker != nil {
		results["screens"] = s.screenChecker.Check(ctx)
	}

	if s.configProvider != nil {
		screenConfig := s.configProvider.GetScreenConfig()
		results["config"] = ports.HealthStatus{
			Component: "config",
			Status:    statusHealthy,
			Details: map[string]interface{}{
				"defaultCity":  screenConfig.DefaultCity,
				"defaultWOEID": screenConfig.DefaultWOEID,
				"shortlist":    len(screenConfig.Shortlist),
			},
		}
	}

	return results
}
