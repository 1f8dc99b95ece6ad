// Package api serves the weather screen over HTTP: an HTML page per browser session,
// form actions that dispatch screen events, and a JSON view of the same state.
package api

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"weatherscreen.app/internal/ports"
	"weatherscreen.app/pkg/errors"
)

//go:embed templates/*.html
var templateFS embed.FS

// ServerConfig represents HTTP server configuration
type ServerConfig struct {
	Port int
}

// HTTPServerAdapter implements the web screen using the Gin framework
type HTTPServerAdapter struct {
	router         *gin.Engine
	server         *http.Server
	config         ServerConfig
	sessions       *SessionManager
	healthChecker  ports.SystemHealthChecker
	metricsHandler http.Handler
	logger         ports.Logger
}

// ServerOptions represents options for creating the HTTP server
type ServerOptions struct {
	Config         ServerConfig
	Sessions       *SessionManager
	HealthChecker  ports.SystemHealthChecker
	MetricsHandler http.Handler
	Logger         ports.Logger
}

// Validate checks if all required dependencies are provided
func (opts *ServerOptions) Validate() error {
	if opts.Sessions == nil {
		return errors.NewValidationError("session manager is required")
	}
	if opts.HealthChecker == nil {
		return errors.NewValidationError("health checker is required")
	}
	if opts.MetricsHandler == nil {
		return errors.NewValidationError("metrics handler is required")
	}
	if opts.Logger == nil {
		return errors.NewValidationError("logger is required")
	}
	return nil
}

// NewHTTPServerAdapter creates a new HTTP server adapter
func NewHTTPServerAdapter(opts ServerOptions) (*HTTPServerAdapter, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid server options: %w", err)
	}
	if err := RegisterValidators(); err != nil {
		return nil, fmt.Errorf("register validators: %w", err)
	}

	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.SetHTMLTemplate(tmpl)

	server := &HTTPServerAdapter{
		router:         router,
		config:         opts.Config,
		sessions:       opts.Sessions,
		healthChecker:  opts.HealthChecker,
		metricsHandler: opts.MetricsHandler,
		logger:         opts.Logger,
	}

	server.setupRoutes()
	server.server = &http.Server{
		Addr:         fmt.Sprintf(":%d", opts.Config.Port),
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	return server, nil
}

// setupRoutes configures all HTTP routes
func (s *HTTPServerAdapter) setupRoutes() {
	s.router.GET("/", s.getScreen)
	s.router.POST("/theme", s.toggleTheme)
	s.router.POST("/city", s.submitCity)
	s.router.POST("/city/select", s.selectCity)
	s.router.POST("/city/list", s.toggleCityList)

	api := s.router.Group("/api")
	{
		api.GET("/screen", s.getScreenJSON)
		api.DELETE("/screen", s.releaseScreen)
		api.POST("/city", s.submitCityJSON)
		api.GET("/health", s.getHealth)
	}

	s.router.GET("/metrics", gin.WrapH(s.metricsHandler))
}

// Start listens on the configured port and serves until Shutdown
func (s *HTTPServerAdapter) Start(ctx context.Context) error {
	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, "tcp", s.server.Addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.server.Addr, err)
	}
	return s.Serve(ln)
}

// Serve accepts connections on ln until Shutdown. A graceful stop returns nil.
func (s *HTTPServerAdapter) Serve(ln net.Listener) error {
	slog.Info("Starting HTTP server", "addr", ln.Addr().String())
	if err := s.server.Serve(ln); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("HTTP server error: %w", err)
	}
	return nil
}

// Shutdown stops accepting connections and waits for in-flight requests
func (s *HTTPServerAdapter) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// GetRouter returns the router for testing purposes
func (s *HTTPServerAdapter) GetRouter() *gin.Engine {
	return s.router
}
