package infrastructure

import (
	"weatherscreen.app/internal/config"
	"weatherscreen.app/internal/ports"
)

// ConfigProviderAdapter implements the ConfigProvider port
type ConfigProviderAdapter struct {
	config *config.Config
}

// NewConfigProviderAdapter creates a new config provider adapter
func NewConfigProviderAdapter(cfg *config.Config) *ConfigProviderAdapter {
	return &ConfigProviderAdapter{
		config: cfg,
	}
}

// GetServerConfig returns server configuration
func (c *ConfigProviderAdapter) GetServerConfig() ports.ServerConfig {
	return ports.ServerConfig{
		Port: c.config.Server.Port,
	}
}

// GetWeatherConfig returns weather client configuration
func (c *ConfigProviderAdapter) GetWeatherConfig() ports.WeatherConfig {
	return ports.WeatherConfig{
		IconURLTemplate: c.config.Weather.IconURLTemplate,
		Timeout:         c.config.Weather.Timeout(),
	}
}

// GetScreenConfig returns the screen defaults
func (c *ConfigProviderAdapter) GetScreenConfig() ports.ScreenConfig {
	return ports.ScreenConfig{
		DefaultCity:  c.config.Screen.DefaultCity,
		DefaultWOEID: c.config.Screen.DefaultWOEID,
		Shortlist:    c.config.Screen.Shortlist(),
		Use24Hour:    c.config.Screen.Use24Hour,
		DarkTheme:    c.config.Screen.DarkTheme,
		SessionIdle:  c.config.Screen.SessionIdle(),
	}
}
