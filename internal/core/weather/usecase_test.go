package weather

import (
	"context"
	stderrors "errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	mocks "weatherscreen.app/internal/mocks"
	"weatherscreen.app/internal/ports"
	"weatherscreen.app/pkg/errors"
)

type useCaseMocks struct {
	provider *mocks.WeatherProvider
	config   *mocks.ConfigProvider
	logger   *mocks.Logger
	metrics  *mocks.MetricsCollector
}

func newTestUseCase(t *testing.T) (*UseCase, useCaseMocks) {
	t.Helper()

	m := useCaseMocks{
		provider: mocks.NewWeatherProvider(t),
		config:   mocks.NewConfigProvider(t),
		logger:   mocks.NewLogger(t),
		metrics:  mocks.NewMetricsCollector(t),
	}

	// Allow logger calls with variadic arguments
	m.logger.EXPECT().Debug(mock.Anything, mock.Anything, mock.Anything).Maybe()
	m.logger.EXPECT().Debug(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Maybe()

	uc, err := NewUseCase(UseCaseDependencies{
		WeatherProvider: m.provider,
		Config:          m.config,
		Logger:          m.logger,
		Metrics:         m.metrics,
	})
	require.NoError(t, err)
	return uc, m
}

func sampleWeatherData() *ports.WeatherData {
	return &ports.WeatherData{
		City:        "São Paulo, SP",
		CityName:    "São Paulo",
		Temperature: 24,
		Description: "Tempo nublado",
		IconID:      "28",
		Sunrise:     "05:52 am",
		Sunset:      "06:17 pm",
		WindSpeedy:  "3.09 km/h",
		Humidity:    83,
		Currently:   "dia",
		Timestamp:   time.Date(2024, 1, 2, 15, 4, 0, 0, time.UTC),
	}
}

func TestNewUseCase_MissingDependencies(t *testing.T) {
	provider := mocks.NewWeatherProvider(t)
	config := mocks.NewConfigProvider(t)
	logger := mocks.NewLogger(t)
	metrics := mocks.NewMetricsCollector(t)

	tests := []struct {
		name string
		deps UseCaseDependencies
	}{
		{"no provider", UseCaseDependencies{Config: config, Logger: logger, Metrics: metrics}},
		{"no config", UseCaseDependencies{WeatherProvider: provider, Logger: logger, Metrics: metrics}},
		{"no logger", UseCaseDependencies{WeatherProvider: provider, Config: config, Metrics: metrics}},
		{"no metrics", UseCaseDependencies{WeatherProvider: provider, Config: config, Logger: logger}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, err := NewUseCase(tt.deps)
			assert.Nil(t, uc)
			assert.True(t, errors.IsValidationError(err))
		})
	}
}

func TestUseCase_Fetch_ByID(t *testing.T) {
	uc, m := newTestUseCase(t)

	m.provider.EXPECT().GetCurrentWeather(mock.Anything, ports.Location{WOEID: 455824}).
		Return(sampleWeatherData(), nil).Once()
	m.metrics.EXPECT().RecordFetch(ModeByID, OutcomeSuccess, mock.AnythingOfType("time.Duration")).Once()

	result, err := uc.Fetch(context.Background(), ByID{WOEID: 455824})

	require.NoError(t, err)
	assert.Equal(t, "São Paulo, SP", result.City)
	assert.Equal(t, 24.0, result.Temperature)
	assert.Equal(t, "05:52 am", result.Sunrise)
	assert.Equal(t, float64(83), result.Humidity)
	assert.Equal(t, time.Date(2024, 1, 2, 15, 4, 0, 0, time.UTC), result.FetchedAt)
}

func TestUseCase_Fetch_ByName(t *testing.T) {
	uc, m := newTestUseCase(t)

	data := sampleWeatherData()
	data.City = "Rio de Janeiro, RJ"
	m.provider.EXPECT().GetCurrentWeather(mock.Anything, ports.Location{CityName: "Rio de Janeiro"}).
		Return(data, nil).Once()
	m.metrics.EXPECT().RecordFetch(ModeByName, OutcomeSuccess, mock.Anything).Once()

	result, err := uc.Fetch(context.Background(), ByName{Name: "Rio de Janeiro"})

	require.NoError(t, err)
	assert.Equal(t, "Rio de Janeiro, RJ", result.City)
}

func TestUseCase_Fetch_InvalidQuery(t *testing.T) {
	uc, _ := newTestUseCase(t)

	_, err := uc.Fetch(context.Background(), nil)
	assert.True(t, errors.IsValidationError(err))

	_, err = uc.Fetch(context.Background(), ByName{Name: " "})
	assert.True(t, errors.IsValidationError(err))

	_, err = uc.Fetch(context.Background(), ByID{WOEID: -1})
	assert.True(t, errors.IsValidationError(err))
}

func TestUseCase_Fetch_ProviderFailures(t *testing.T) {
	tests := []struct {
		name      string
		data      *ports.WeatherData
		err       error
		checkType func(error) bool
	}{
		{
			name:      "transport error is wrapped as external",
			err:       stderrors.New("dial tcp: connection refused"),
			checkType: errors.IsExternalAPIError,
		},
		{
			name:      "not found passes through",
			err:       errors.NewNotFoundError("city not found"),
			checkType: errors.IsNotFoundError,
		},
		{
			name:      "nil payload",
			checkType: errors.IsExternalAPIError,
		},
		{
			name:      "payload without city",
			data:      &ports.WeatherData{Temperature: 24},
			checkType: errors.IsExternalAPIError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, m := newTestUseCase(t)

			m.provider.EXPECT().GetCurrentWeather(mock.Anything, mock.Anything).Return(tt.data, tt.err).Once()
			m.metrics.EXPECT().RecordFetch(ModeByName, OutcomeFailure, mock.Anything).Once()

			result, err := uc.Fetch(context.Background(), ByName{Name: "Atlantis"})

			assert.Nil(t, result)
			require.Error(t, err)
			assert.True(t, tt.checkType(err), "unexpected error type: %v", err)
			assert.Contains(t, err.Error(), "fetch weather for Atlantis")
		})
	}
}

func TestUseCase_IconURL(t *testing.T) {
	uc, m := newTestUseCase(t)

	m.config.EXPECT().GetWeatherConfig().Return(ports.WeatherConfig{
		IconURLTemplate: "https://icons.test/%s.png",
	})

	assert.Equal(t, "https://icons.test/28.png", uc.IconURL(&Result{IconID: "28"}))
	assert.Empty(t, uc.IconURL(nil))
}

func TestUseCase_ProviderName(t *testing.T) {
	uc, m := newTestUseCase(t)
	m.provider.EXPECT().GetProviderName().Return("hgbrasil")

	assert.Equal(t, "hgbrasil", uc.ProviderName())
}
