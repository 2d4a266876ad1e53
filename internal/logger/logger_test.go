package logger

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogLevelParsing(t *testing.T) {
	tests := []struct {
		level    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"ERROR", slog.LevelError},
		{"bogus", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		cfg := Config{Level: tt.level}
		assert.Equal(t, tt.expected, cfg.LogLevel(), "level %q", tt.level)
	}
}

func TestRequestIDRoundTrip(t *testing.T) {
	ctx := context.Background()

	_, ok := RequestIDFromContext(ctx)
	assert.False(t, ok)

	id := GenerateRequestID()
	require.NotEmpty(t, id)

	ctx = WithRequestID(ctx, id)
	got, ok := RequestIDFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, id, got)
}

func TestFromContextWithoutRequestID(t *testing.T) {
	log := FromContext(context.Background())
	assert.NotNil(t, log)
}
