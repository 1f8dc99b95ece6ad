package infrastructure

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"weatherscreen.app/internal/mocks"
	"weatherscreen.app/internal/ports"
)

func TestSlogLoggerAdapter_WritesFields(t *testing.T) {
	var buf bytes.Buffer
	adapter := NewSlogLoggerAdapter(slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	adapter.Warn("Weather fetch failed", ports.F("mode", "name"), ports.F("query", "Atlantis"))

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "WARN", entry["level"])
	assert.Equal(t, "Weather fetch failed", entry["msg"])
	assert.Equal(t, "name", entry["mode"])
	assert.Equal(t, "Atlantis", entry["query"])
}

func TestSlogLoggerAdapter_NilLoggerUsesDefault(t *testing.T) {
	var buf bytes.Buffer
	previous := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	defer slog.SetDefault(previous)

	(&SlogLoggerAdapter{}).Info("mounted", ports.F("session", "abc"))

	assert.Contains(t, buf.String(), "msg=mounted")
	assert.Contains(t, buf.String(), "session=abc")
}

func TestMultiLogger_FansOut(t *testing.T) {
	first := mocks.NewLogger(t)
	second := mocks.NewLogger(t)
	for _, l := range []*mocks.Logger{first, second} {
		l.EXPECT().Debug("d").Once()
		l.EXPECT().Info("i", mock.Anything).Once()
		l.EXPECT().Warn("w").Once()
		l.EXPECT().Error("e", mock.Anything, mock.Anything).Once()
	}

	multi := MultiLogger{first, second}
	multi.Debug("d")
	multi.Info("i", ports.F("k", 1))
	multi.Warn("w")
	multi.Error("e", ports.F("a", 1), ports.F("b", 2))
}
