package ports

import (
	"context"
	"time"
)

// Location addresses a provider query either by WOEID or by free-text city name.
// Exactly one of the two is set.
type Location struct {
	WOEID    int
	CityName string
}

// WeatherData represents the current conditions returned by a provider
type WeatherData struct {
	City          string
	CityName      string
	Temperature   float64
	Description   string
	IconID        string
	ImageURL      string
	Sunrise       string
	Sunset        string
	WindSpeedy    string
	Humidity      float64
	Date          string
	Time          string
	ConditionSlug string
	Currently     string
	Timestamp     time.Time
}

// WeatherProvider defines the contract for weather data providers
type WeatherProvider interface {
	GetCurrentWeather(ctx context.Context, location Location) (*WeatherData, error)
	GetProviderName() string
}
