package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"weatherscreen.app/pkg/errors"
)

func validConfig() Config {
	return Config{
		Server: ServerConfig{Port: 8080},
		Weather: WeatherConfig{
			APIKey:          "test-key",
			BaseURL:         "https://api.hgbrasil.com",
			IconURLTemplate: "https://assets.hgbrasil.com/weather/images/%s.png",
			TimeoutSeconds:  10,
			EnableLogging:   true,
			LogFilePath:     "logs/weather_client.log",
		},
		Screen: ScreenConfig{
			DefaultWOEID:       455824,
			CityShortlist:      []string{"São Paulo", "Rio de Janeiro"},
			SessionIdleMinutes: 30,
		},
		Log:        LogConfig{Level: "info", Format: "json", TUIFilePath: "logs/weather_tui.log"},
		AppBaseURL: "http://localhost:8080",
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("WEATHER_API_KEY", "secret")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "https://api.hgbrasil.com", cfg.Weather.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.Weather.Timeout())
	assert.True(t, cfg.Weather.EnableLogging)
	assert.Equal(t, "", cfg.Screen.DefaultCity)
	assert.Equal(t, 455824, cfg.Screen.DefaultWOEID)
	assert.Equal(t, []string{"São Paulo", "Rio de Janeiro", "Belo Horizonte", "Curitiba", "Salvador"}, cfg.Screen.Shortlist())
	assert.False(t, cfg.Screen.Use24Hour)
	assert.False(t, cfg.Screen.DarkTheme)
	assert.Equal(t, 30*time.Minute, cfg.Screen.SessionIdle())
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "logs/weather_tui.log", cfg.Log.TUIFilePath)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("WEATHER_API_KEY", "secret")
	t.Setenv("SCREEN_DEFAULT_CITY", "Curitiba")
	t.Setenv("SCREEN_CITY_SHORTLIST", "Recife, Manaus ,,Natal")
	t.Setenv("SCREEN_USE_24_HOUR", "true")
	t.Setenv("SCREEN_DARK_THEME", "true")
	t.Setenv("WEATHER_API_TIMEOUT_SECONDS", "3")
	t.Setenv("TUI_LOG_FILE_PATH", "/tmp/screen.log")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "Curitiba", cfg.Screen.DefaultCity)
	assert.Equal(t, []string{"Recife", "Manaus", "Natal"}, cfg.Screen.Shortlist())
	assert.True(t, cfg.Screen.Use24Hour)
	assert.True(t, cfg.Screen.DarkTheme)
	assert.Equal(t, 3*time.Second, cfg.Weather.Timeout())
	assert.Equal(t, "/tmp/screen.log", cfg.Log.TUIFilePath)
}

func TestLoadConfig_MissingAPIKey(t *testing.T) {
	t.Setenv("WEATHER_API_KEY", "")

	cfg, err := LoadConfig()
	assert.Nil(t, cfg)
	assert.True(t, errors.IsConfigurationError(err))
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(c *Config) {}, ""},
		{"port out of range", func(c *Config) { c.Server.Port = 70000 }, "SERVER_PORT"},
		{"base url without scheme", func(c *Config) { c.Weather.BaseURL = "api.hgbrasil.com" }, "WEATHER_API_BASE_URL"},
		{"icon template without verb", func(c *Config) { c.Weather.IconURLTemplate = "https://icons.test/x.png" }, "WEATHER_ICON_URL_TEMPLATE"},
		{"zero timeout", func(c *Config) { c.Weather.TimeoutSeconds = 0 }, "WEATHER_API_TIMEOUT_SECONDS"},
		{"logging without path", func(c *Config) { c.Weather.LogFilePath = "" }, "WEATHER_LOG_FILE_PATH"},
		{"no default location", func(c *Config) { c.Screen.DefaultWOEID = 0 }, "SCREEN_DEFAULT_WOEID"},
		{"city overrides woeid", func(c *Config) { c.Screen.DefaultWOEID = 0; c.Screen.DefaultCity = "Salvador" }, ""},
		{"idle out of range", func(c *Config) { c.Screen.SessionIdleMinutes = 0 }, "SCREEN_SESSION_IDLE_MINUTES"},
		{"bad log level", func(c *Config) { c.Log.Level = "verbose" }, "LOG_LEVEL"},
		{"bad log format", func(c *Config) { c.Log.Format = "xml" }, "LOG_FORMAT"},
		{"blank tui log path", func(c *Config) { c.Log.TUIFilePath = " " }, "TUI_LOG_FILE_PATH"},
		{"bad app url", func(c *Config) { c.AppBaseURL = "localhost" }, "APP_URL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.IsConfigurationError(err))
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
