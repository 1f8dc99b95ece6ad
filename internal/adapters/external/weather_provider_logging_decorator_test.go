package external

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"weatherscreen.app/internal/ports"
)

type logEntry struct {
	level   string
	message string
	fields  map[string]interface{}
}

type testLogger struct {
	mu      sync.Mutex
	entries []logEntry
}

func (l *testLogger) record(level, msg string, fields []ports.Field) {
	l.mu.Lock()
	defer l.mu.Unlock()

	entry := logEntry{level: level, message: msg, fields: map[string]interface{}{}}
	for _, f := range fields {
		entry.fields[f.Key] = f.Value
	}
	l.entries = append(l.entries, entry)
}

func (l *testLogger) Debug(msg string, fields ...ports.Field) { l.record("DEBUG", msg, fields) }
func (l *testLogger) Info(msg string, fields ...ports.Field)  { l.record("INFO", msg, fields) }
func (l *testLogger) Warn(msg string, fields ...ports.Field)  { l.record("WARN", msg, fields) }
func (l *testLogger) Error(msg string, fields ...ports.Field) { l.record("ERROR", msg, fields) }

type testWeatherProvider struct {
	name     string
	response *ports.WeatherData
	err      error
	calls    []ports.Location
}

func (p *testWeatherProvider) GetCurrentWeather(ctx context.Context, location ports.Location) (*ports.WeatherData, error) {
	p.calls = append(p.calls, location)
	if p.err != nil {
		return nil, p.err
	}
	return p.response, nil
}

func (p *testWeatherProvider) GetProviderName() string {
	return p.name
}

func TestWeatherProviderLoggingDecorator_BasicFunctionality(t *testing.T) {
	testProvider := &testWeatherProvider{
		name: "test-provider",
		response: &ports.WeatherData{
			City:        "Rio de Janeiro, RJ",
			Temperature: 29,
			Humidity:    70,
			Description: "Céu limpo",
		},
	}
	logger := &testLogger{}

	decorator := NewWeatherProviderLoggingDecorator(testProvider, logger)
	result, err := decorator.GetCurrentWeather(context.Background(), ports.Location{CityName: "Rio de Janeiro"})

	require.NoError(t, err)
	assert.Equal(t, 29.0, result.Temperature)
	assert.Equal(t, []ports.Location{{CityName: "Rio de Janeiro"}}, testProvider.calls)

	require.Len(t, logger.entries, 2)

	requestLog := logger.entries[0]
	assert.Equal(t, "INFO", requestLog.level)
	assert.Equal(t, "Weather API request started", requestLog.message)
	assert.Equal(t, "test-provider", requestLog.fields["provider"])
	assert.Equal(t, "Rio de Janeiro", requestLog.fields["location"])
	assert.Equal(t, "request", requestLog.fields["event"])

	responseLog := logger.entries[1]
	assert.Equal(t, "Weather API request completed", responseLog.message)
	assert.Equal(t, "response", responseLog.fields["event"])
	assert.Equal(t, "Rio de Janeiro, RJ", responseLog.fields["city"])
	assert.Equal(t, 29.0, responseLog.fields["temperature"])
	assert.Equal(t, 70.0, responseLog.fields["humidity"])
	assert.Contains(t, responseLog.fields, "duration_ms")

	assert.Equal(t, "logged(test-provider)", decorator.GetProviderName())
}

func TestWeatherProviderLoggingDecorator_ErrorHandling(t *testing.T) {
	testProvider := &testWeatherProvider{
		name: "error-provider",
		err:  errors.New("HG Brasil returned status 500"),
	}
	logger := &testLogger{}

	decorator := NewWeatherProviderLoggingDecorator(testProvider, logger)
	result, err := decorator.GetCurrentWeather(context.Background(), ports.Location{WOEID: 455824})

	assert.Nil(t, result)
	assert.EqualError(t, err, "HG Brasil returned status 500")

	require.Len(t, logger.entries, 2)
	errorLog := logger.entries[1]
	assert.Equal(t, "ERROR", errorLog.level)
	assert.Equal(t, "Weather API request failed", errorLog.message)
	assert.Equal(t, "woeid:455824", errorLog.fields["location"])
	assert.Equal(t, "error", errorLog.fields["event"])
	assert.Equal(t, "HG Brasil returned status 500", errorLog.fields["error"])
}
