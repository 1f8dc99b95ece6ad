package ports

import "time"

// WeatherConfig represents weather client configuration
type WeatherConfig struct {
	IconURLTemplate string
	Timeout         time.Duration
}

// ScreenConfig represents screen defaults
type ScreenConfig struct {
	DefaultCity  string
	DefaultWOEID int
	Shortlist    []string
	Use24Hour    bool
	DarkTheme    bool
	SessionIdle  time.Duration
}

// ServerConfig represents server configuration
type ServerConfig struct {
	Port int
}

// ConfigProvider defines the contract for configuration management
type ConfigProvider interface {
	GetWeatherConfig() WeatherConfig
	GetScreenConfig() ScreenConfig
	GetServerConfig() ServerConfig
}

// Logger defines the contract for structured logging
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
}

// Field represents a log field
type Field struct {
	Key   string
	Value interface{}
}

// F creates a log field
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

// MetricsCollector defines the contract for metrics collection
type MetricsCollector interface {
	RecordFetch(mode, outcome string, duration time.Duration)
	RecordEvent(event string)
	SetActiveScreens(count int)
}
