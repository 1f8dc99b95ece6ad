package app

import (
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"weatherscreen.app/internal/adapters/external"
	"weatherscreen.app/internal/adapters/infrastructure"
	"weatherscreen.app/internal/config"
	"weatherscreen.app/internal/ports"
)

type DependencyContainer struct {
	config     *config.Config
	options    DependencyOptions
	metrics    *infrastructure.PrometheusMetricsCollector
	fileLogger *infrastructure.FileLoggerAdapter
	ports      *ports.ApplicationPorts
}

// DependencyOptions overrides process-wide defaults, mainly for tests.
type DependencyOptions struct {
	// Registerer receives the metrics; prometheus.DefaultRegisterer when nil.
	Registerer prometheus.Registerer
	// HTTPClient replaces the weather client's own http.Client when set.
	HTTPClient external.HTTPClient
}

func NewDependencyContainer(cfg *config.Config, opts DependencyOptions) (*DependencyContainer, error) {
	if opts.Registerer == nil {
		opts.Registerer = prometheus.DefaultRegisterer
	}

	container := &DependencyContainer{
		config:  cfg,
		options: opts,
	}

	if err := container.initializePorts(); err != nil {
		return nil, fmt.Errorf("initialize ports: %w", err)
	}

	return container, nil
}

func (c *DependencyContainer) initializePorts() error {
	slog.Info("Initializing ports...")

	var logger ports.Logger = infrastructure.NewSlogLoggerAdapter(slog.Default())

	// The provider gets its own diagnostics file when enabled
	providerLogger := logger
	if c.config.Weather.EnableLogging {
		fileLogger, err := infrastructure.NewFileLoggerAdapter(c.config.Weather.LogFilePath, "weather-client")
		if err != nil {
			slog.Warn("Failed to create file logger, falling back to slog", "error", err)
		} else {
			c.fileLogger = fileLogger
			providerLogger = infrastructure.MultiLogger{logger, fileLogger}
			slog.Info("File logging enabled", "path", c.config.Weather.LogFilePath)
		}
	}

	hgBrasil, err := external.NewHGBrasilProviderAdapter(external.HGBrasilProviderParams{
		APIKey:  c.config.Weather.APIKey,
		BaseURL: c.config.Weather.BaseURL,
		Timeout: c.config.Weather.Timeout(),
		Client:  c.options.HTTPClient,
		Logger:  logger,
	})
	if err != nil {
		return fmt.Errorf("create weather provider: %w", err)
	}

	var provider ports.WeatherProvider = hgBrasil
	if c.config.Weather.EnableLogging {
		provider = external.NewWeatherProviderLoggingDecorator(hgBrasil, providerLogger)
		slog.Info("Weather provider logging enabled")
	}

	c.metrics = infrastructure.NewPrometheusMetricsCollector(c.options.Registerer)

	c.ports = &ports.ApplicationPorts{
		WeatherProvider: provider,
		ConfigProvider:  infrastructure.NewConfigProviderAdapter(c.config),
		Logger:          logger,
		Metrics:         c.metrics,
	}

	slog.Info("Ports initialized successfully")
	return nil
}

func (c *DependencyContainer) ApplicationPorts() *ports.ApplicationPorts {
	return c.ports
}

// Metrics returns the concrete collector, which also feeds the health report.
func (c *DependencyContainer) Metrics() *infrastructure.PrometheusMetricsCollector {
	return c.metrics
}

// Cleanup releases the diagnostics file.
func (c *DependencyContainer) Cleanup() error {
	if c.fileLogger != nil {
		return c.fileLogger.Close()
	}
	return nil
}
