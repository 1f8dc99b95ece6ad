package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"weatherscreen.app/internal/adapters/api"
	"weatherscreen.app/internal/adapters/infrastructure"
	"weatherscreen.app/internal/adapters/tui"
	"weatherscreen.app/internal/config"
	"weatherscreen.app/internal/core/screen"
	"weatherscreen.app/internal/core/weather"
	"weatherscreen.app/internal/ports"
	"weatherscreen.app/pkg/logger"
)

const (
	minJanitorInterval = time.Minute
	fallbackCity       = "São Paulo"
)

type Application struct {
	config *config.Config
	deps   *DependencyContainer

	// Use Cases
	weatherUseCase *weather.UseCase

	// Adapters
	sessions   *api.SessionManager
	httpServer *api.HTTPServerAdapter
	router     *gin.Engine

	// Infrastructure
	ports    *ports.ApplicationPorts
	gatherer prometheus.Gatherer
}

// Options tunes process-level concerns of NewApplication.
type Options struct {
	// LogOutput receives the process logs; os.Stdout when nil.
	LogOutput io.Writer
}

func NewApplication(opts Options) (*Application, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}
	return NewApplicationFromConfig(cfg, opts)
}

// NewApplicationFromConfig builds the application from an already loaded configuration
func NewApplicationFromConfig(cfg *config.Config, opts Options) (*Application, error) {
	out := opts.LogOutput
	if out == nil {
		out = os.Stdout
	}
	logger.NewFromConfig(out, cfg.Log.Level, cfg.Log.Format).SetDefault()

	deps, err := NewDependencyContainer(cfg, DependencyOptions{})
	if err != nil {
		return nil, fmt.Errorf("create dependency container: %w", err)
	}

	return newApplication(cfg, deps, prometheus.DefaultGatherer)
}

// NewApplicationWithDependencies creates an application with provided dependencies (for testing)
func NewApplicationWithDependencies(cfg *config.Config, deps *DependencyContainer, gatherer prometheus.Gatherer) (*Application, error) {
	return newApplication(cfg, deps, gatherer)
}

func newApplication(cfg *config.Config, deps *DependencyContainer, gatherer prometheus.Gatherer) (*Application, error) {
	app := &Application{
		config:   cfg,
		deps:     deps,
		ports:    deps.ApplicationPorts(),
		gatherer: gatherer,
	}

	if err := app.initializeUseCases(); err != nil {
		return nil, fmt.Errorf("initialize use cases: %w", err)
	}

	if err := app.initializeAdapters(); err != nil {
		return nil, fmt.Errorf("initialize adapters: %w", err)
	}

	return app, nil
}

func (a *Application) initializeUseCases() error {
	slog.Info("Initializing use cases...")

	weatherUseCase, err := weather.NewUseCase(weather.UseCaseDependencies{
		WeatherProvider: a.ports.WeatherProvider,
		Config:          a.ports.ConfigProvider,
		Logger:          a.ports.Logger,
		Metrics:         a.ports.Metrics,
	})
	if err != nil {
		return fmt.Errorf("create weather use case: %w", err)
	}
	a.weatherUseCase = weatherUseCase

	slog.Info("Use cases initialized successfully")
	return nil
}

func (a *Application) initializeAdapters() error {
	slog.Info("Initializing adapters...")

	screenConfig := a.ports.ConfigProvider.GetScreenConfig()

	sessions, err := api.NewSessionManager(api.SessionManagerOptions{
		Factory: a.NewScreen,
		Idle:    screenConfig.SessionIdle,
		Logger:  a.ports.Logger,
		Metrics: a.ports.Metrics,
	})
	if err != nil {
		return fmt.Errorf("create session manager: %w", err)
	}
	a.sessions = sessions

	systemHealthChecker := infrastructure.NewSystemHealthChecker(infrastructure.SystemHealthCheckerConfig{
		WeatherAPIChecker: infrastructure.NewWeatherAPIHealthChecker(a.ports.WeatherProvider, a.ports.ConfigProvider),
		ScreenChecker:     infrastructure.NewScreenHealthChecker(sessions, a.deps.Metrics()),
		ConfigProvider:    a.ports.ConfigProvider,
	})

	httpAdapter, err := api.NewHTTPServerAdapter(api.ServerOptions{
		Config: api.ServerConfig{
			Port: a.config.Server.Port,
		},
		Sessions:       sessions,
		HealthChecker:  systemHealthChecker,
		MetricsHandler: promhttp.HandlerFor(a.gatherer, promhttp.HandlerOpts{}),
		Logger:         a.ports.Logger,
	})
	if err != nil {
		return fmt.Errorf("create HTTP adapter: %w", err)
	}

	a.httpServer = httpAdapter
	a.router = httpAdapter.GetRouter()

	slog.Info("Adapters initialized successfully")
	return nil
}

// InitialQuery is the location a fresh screen fetches: the configured city name when set,
// the fixed WOEID otherwise.
func (a *Application) InitialQuery() weather.LocationQuery {
	screenConfig := a.ports.ConfigProvider.GetScreenConfig()
	if screenConfig.DefaultCity != "" {
		return weather.ByName{Name: screenConfig.DefaultCity}
	}
	return weather.ByID{WOEID: screenConfig.DefaultWOEID}
}

// selectedCity is the label a fresh screen starts with.
func (a *Application) selectedCity() string {
	screenConfig := a.ports.ConfigProvider.GetScreenConfig()
	if screenConfig.DefaultCity != "" {
		return screenConfig.DefaultCity
	}
	if len(screenConfig.Shortlist) > 0 {
		return screenConfig.Shortlist[0]
	}
	return fallbackCity
}

func (a *Application) pageOptions() screen.PageOptions {
	screenConfig := a.ports.ConfigProvider.GetScreenConfig()
	return screen.PageOptions{
		IconURLTemplate: a.ports.ConfigProvider.GetWeatherConfig().IconURLTemplate,
		Use24Hour:       screenConfig.Use24Hour,
		Shortlist:       screenConfig.Shortlist,
	}
}

// NewScreen builds an unmounted screen with the configured defaults.
func (a *Application) NewScreen() (*screen.Screen, error) {
	screenConfig := a.ports.ConfigProvider.GetScreenConfig()
	return screen.New(screen.Options{
		Fetcher:  a.weatherUseCase,
		Logger:   a.ports.Logger,
		Metrics:  a.ports.Metrics,
		Initial:  a.InitialQuery(),
		Selected: a.selectedCity(),
		Dark:     screenConfig.DarkTheme,
		Page:     a.pageOptions(),
	})
}

// NewTerminalModel builds the Bubble Tea model with the configured defaults.
func (a *Application) NewTerminalModel(ctx context.Context) (tui.Model, error) {
	screenConfig := a.ports.ConfigProvider.GetScreenConfig()
	return tui.New(tui.Options{
		Context:  ctx,
		Fetcher:  a.weatherUseCase,
		Logger:   a.ports.Logger,
		Metrics:  a.ports.Metrics,
		Initial:  a.InitialQuery(),
		Selected: a.selectedCity(),
		Dark:     screenConfig.DarkTheme,
		Page:     a.pageOptions(),
	})
}

func (a *Application) Start(ctx context.Context) error {
	slog.Info("Starting application...")

	go a.sessions.RunJanitor(ctx, a.janitorInterval())

	return a.httpServer.Start(ctx)
}

func (a *Application) janitorInterval() time.Duration {
	interval := a.ports.ConfigProvider.GetScreenConfig().SessionIdle / 2
	if interval < minJanitorInterval {
		return minJanitorInterval
	}
	return interval
}

func (a *Application) Shutdown(ctx context.Context) error {
	slog.Info("Shutting down application...")

	if err := a.httpServer.Shutdown(ctx); err != nil {
		slog.Error("Error shutting down HTTP server", "error", err)
		return fmt.Errorf("shutdown HTTP server: %w", err)
	}

	a.sessions.CloseAll()

	if err := a.Close(); err != nil {
		slog.Warn("Error closing dependencies", "error", err)
	}

	slog.Info("Application shutdown complete")
	return nil
}

// Close releases dependencies without touching the HTTP server.
func (a *Application) Close() error {
	return a.deps.Cleanup()
}

// Config returns the application configuration
func (a *Application) Config() *config.Config {
	return a.config
}

// GetRouter returns the Gin router for testing
func (a *Application) GetRouter() *gin.Engine {
	return a.router
}

// GetWeatherUseCase returns the weather use case for testing
func (a *Application) GetWeatherUseCase() *weather.UseCase {
	return a.weatherUseCase
}
