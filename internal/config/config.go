package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"weatherscreen.app/pkg/errors"
	"weatherscreen.app/pkg/validation"
)

const (
	maxPortNumber         = 65535
	maxTimeoutSeconds     = 120
	maxSessionIdleMinutes = 1440
)

// Config represents the application configuration structure
type Config struct {
	Server     ServerConfig  `split_words:"true"`
	Weather    WeatherConfig `split_words:"true"`
	Screen     ScreenConfig  `split_words:"true"`
	Log        LogConfig     `split_words:"true"`
	AppBaseURL string        `envconfig:"APP_URL" default:"http://localhost:8080"`
}

type ServerConfig struct {
	Port int `envconfig:"SERVER_PORT" default:"8080"`
}

type WeatherConfig struct {
	APIKey          string `envconfig:"WEATHER_API_KEY"`
	BaseURL         string `envconfig:"WEATHER_API_BASE_URL" default:"https://api.hgbrasil.com"`
	IconURLTemplate string `envconfig:"WEATHER_ICON_URL_TEMPLATE" default:"https://assets.hgbrasil.com/weather/images/%s.png"`
	TimeoutSeconds  int    `envconfig:"WEATHER_API_TIMEOUT_SECONDS" default:"10"`
	EnableLogging   bool   `envconfig:"WEATHER_ENABLE_LOGGING" default:"true"`
	LogFilePath     string `envconfig:"WEATHER_LOG_FILE_PATH" default:"logs/weather_client.log"`
}

// Timeout is the per-request bound for the weather client.
func (w WeatherConfig) Timeout() time.Duration {
	return time.Duration(w.TimeoutSeconds) * time.Second
}

type ScreenConfig struct {
	DefaultCity        string   `envconfig:"SCREEN_DEFAULT_CITY"`
	DefaultWOEID       int      `envconfig:"SCREEN_DEFAULT_WOEID" default:"455824"`
	CityShortlist      []string `envconfig:"SCREEN_CITY_SHORTLIST" default:"São Paulo,Rio de Janeiro,Belo Horizonte,Curitiba,Salvador"`
	Use24Hour          bool     `envconfig:"SCREEN_USE_24_HOUR" default:"false"`
	DarkTheme          bool     `envconfig:"SCREEN_DARK_THEME" default:"false"`
	SessionIdleMinutes int      `envconfig:"SCREEN_SESSION_IDLE_MINUTES" default:"30"`
}

// SessionIdle is how long a web session may stay untouched before its screen is unmounted.
func (s ScreenConfig) SessionIdle() time.Duration {
	return time.Duration(s.SessionIdleMinutes) * time.Minute
}

// Shortlist returns the trimmed, non-empty shortlist entries.
func (s ScreenConfig) Shortlist() []string {
	cities := make([]string, 0, len(s.CityShortlist))
	for _, city := range s.CityShortlist {
		if trimmed, ok := validation.TrimAndValidate(city); ok {
			cities = append(cities, trimmed)
		}
	}
	return cities
}

type LogConfig struct {
	Level  string `envconfig:"LOG_LEVEL" default:"info"`
	Format string `envconfig:"LOG_FORMAT" default:"json"`
	// TUIFilePath receives the process logs of the terminal screen, which owns stdout.
	TUIFilePath string `envconfig:"TUI_LOG_FILE_PATH" default:"logs/weather_tui.log"`
}

func LoadConfig() (*Config, error) {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return nil, errors.NewConfigurationError("error processing config", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c *Config) Validate() error {
	if err := c.Server.Validate(); err != nil {
		return err
	}
	if err := c.Weather.Validate(); err != nil {
		return err
	}
	if err := c.Screen.Validate(); err != nil {
		return err
	}
	if err := c.Log.Validate(); err != nil {
		return err
	}
	if err := c.validateAppBaseURL(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateAppBaseURL() error {
	if c.AppBaseURL == "" {
		return errors.NewConfigurationError("APP_URL cannot be empty", nil)
	}
	if !hasHTTPScheme(c.AppBaseURL) {
		return errors.NewConfigurationError("APP_URL must start with http:// or https://", nil)
	}
	return nil
}

func (s *ServerConfig) Validate() error {
	if s.Port < 1 || s.Port > maxPortNumber {
		return errors.NewConfigurationError("SERVER_PORT must be between 1 and 65535", nil)
	}
	return nil
}

func (w *WeatherConfig) Validate() error {
	if w.APIKey == "" {
		return errors.NewConfigurationError("WEATHER_API_KEY must be configured", nil)
	}
	if w.BaseURL == "" {
		return errors.NewConfigurationError("WEATHER_API_BASE_URL cannot be empty", nil)
	}
	if !hasHTTPScheme(w.BaseURL) {
		return errors.NewConfigurationError("WEATHER_API_BASE_URL must start with http:// or https://", nil)
	}
	if strings.Count(w.IconURLTemplate, "%s") != 1 {
		return errors.NewConfigurationError("WEATHER_ICON_URL_TEMPLATE must contain exactly one %s", nil)
	}
	if w.TimeoutSeconds < 1 || w.TimeoutSeconds > maxTimeoutSeconds {
		return errors.NewConfigurationError(
			fmt.Sprintf("WEATHER_API_TIMEOUT_SECONDS must be between 1 and %d", maxTimeoutSeconds), nil)
	}
	if w.EnableLogging && w.LogFilePath == "" {
		return errors.NewConfigurationError("WEATHER_LOG_FILE_PATH cannot be empty when WEATHER_ENABLE_LOGGING is set", nil)
	}
	return nil
}

func (s *ScreenConfig) Validate() error {
	if s.DefaultCity != "" {
		if !validation.IsValidCityName(s.DefaultCity) {
			return errors.NewConfigurationError("SCREEN_DEFAULT_CITY is not a valid city name", nil)
		}
	} else if s.DefaultWOEID < 1 {
		return errors.NewConfigurationError("SCREEN_DEFAULT_WOEID must be positive when SCREEN_DEFAULT_CITY is empty", nil)
	}

	for _, city := range s.Shortlist() {
		if !validation.IsValidCityName(city) {
			return errors.NewConfigurationError(fmt.Sprintf("invalid city in SCREEN_CITY_SHORTLIST: %q", city), nil)
		}
	}

	if s.SessionIdleMinutes < 1 || s.SessionIdleMinutes > maxSessionIdleMinutes {
		return errors.NewConfigurationError("SCREEN_SESSION_IDLE_MINUTES must be between 1 and 1440 minutes", nil)
	}
	return nil
}

func (l *LogConfig) Validate() error {
	switch strings.ToLower(l.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return errors.NewConfigurationError("LOG_LEVEL must be one of: debug, info, warn, error", nil)
	}
	switch strings.ToLower(l.Format) {
	case "json", "text":
	default:
		return errors.NewConfigurationError("LOG_FORMAT must be one of: json, text", nil)
	}
	if strings.TrimSpace(l.TUIFilePath) == "" {
		return errors.NewConfigurationError("TUI_LOG_FILE_PATH cannot be empty", nil)
	}
	return nil
}

func hasHTTPScheme(u string) bool {
	return strings.HasPrefix(u, "http://") || strings.HasPrefix(u, "https://")
}
