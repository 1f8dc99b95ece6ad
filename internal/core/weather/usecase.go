package weather

import (
	"context"
	"fmt"
	"time"

	"weatherscreen.app/internal/ports"
	"weatherscreen.app/pkg/errors"
)

const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

type UseCase struct {
	weatherProvider ports.WeatherProvider
	config          ports.ConfigProvider
	logger          ports.Logger
	metrics         ports.MetricsCollector
}

type UseCaseDependencies struct {
	WeatherProvider ports.WeatherProvider
	Config          ports.ConfigProvider
	Logger          ports.Logger
	Metrics         ports.MetricsCollector
}

func NewUseCase(deps UseCaseDependencies) (*UseCase, error) {
	if deps.WeatherProvider == nil {
		return nil, errors.NewValidationError("weather provider is required")
	}
	if deps.Config == nil {
		return nil, errors.NewValidationError("config is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}
	if deps.Metrics == nil {
		return nil, errors.NewValidationError("metrics is required")
	}

	return &UseCase{
		weatherProvider: deps.WeatherProvider,
		config:          deps.Config,
		logger:          deps.Logger,
		metrics:         deps.Metrics,
	}, nil
}

// Fetch performs exactly one provider call for the query. It never retries.
func (uc *UseCase) Fetch(ctx context.Context, query LocationQuery) (*Result, error) {
	if query == nil {
		return nil, errors.NewValidationError("location query is required")
	}
	if err := query.Validate(); err != nil {
		return nil, errors.NewValidationError("invalid location query: " + err.Error())
	}

	uc.logger.Debug("Fetching current weather",
		ports.F("mode", query.Mode()),
		ports.F("query", query.String()))

	start := time.Now()
	result, err := uc.fetchFromProvider(ctx, query)
	duration := time.Since(start)

	if err != nil {
		uc.metrics.RecordFetch(query.Mode(), OutcomeFailure, duration)
		return nil, fmt.Errorf("fetch weather for %s: %w", query.String(), err)
	}

	uc.metrics.RecordFetch(query.Mode(), OutcomeSuccess, duration)
	uc.logger.Debug("Weather fetched",
		ports.F("query", query.String()),
		ports.F("city", result.City),
		ports.F("temperature", result.Temperature))
	return result, nil
}

func (uc *UseCase) fetchFromProvider(ctx context.Context, query LocationQuery) (*Result, error) {
	data, err := uc.weatherProvider.GetCurrentWeather(ctx, query.Location())
	if err != nil {
		if errors.IsNotFoundError(err) || errors.IsExternalAPIError(err) {
			return nil, err
		}
		return nil, errors.NewExternalAPIError("weather provider failed", err)
	}
	if data == nil {
		return nil, errors.NewExternalAPIError("weather provider returned no data", nil)
	}

	result := convertFromPortsWeather(data)
	if err := result.IsValid(); err != nil {
		return nil, errors.NewExternalAPIError("malformed weather payload: "+err.Error(), nil)
	}
	return result, nil
}

// IconURL resolves the icon for result using the configured template.
func (uc *UseCase) IconURL(result *Result) string {
	if result == nil {
		return ""
	}
	return result.IconURL(uc.config.GetWeatherConfig().IconURLTemplate)
}

// ProviderName reports which provider backs the use case.
func (uc *UseCase) ProviderName() string {
	return uc.weatherProvider.GetProviderName()
}

func convertFromPortsWeather(data *ports.WeatherData) *Result {
	return &Result{
		City:          data.City,
		CityName:      data.CityName,
		Temperature:   data.Temperature,
		Description:   data.Description,
		IconID:        data.IconID,
		ImageURL:      data.ImageURL,
		Sunrise:       data.Sunrise,
		Sunset:        data.Sunset,
		WindSpeedy:    data.WindSpeedy,
		Humidity:      data.Humidity,
		Date:          data.Date,
		Time:          data.Time,
		ConditionSlug: data.ConditionSlug,
		Currently:     data.Currently,
		FetchedAt:     data.Timestamp,
	}
}
