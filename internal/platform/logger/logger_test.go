package logger

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studyhelper/study-api/internal/config"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		configured string
		want       slog.Level
	}{
		{configured: "debug", want: slog.LevelDebug},
		{configured: "info", want: slog.LevelInfo},
		{configured: "warn", want: slog.LevelWarn},
		{configured: "error", want: slog.LevelError},
		{configured: "WARN", want: slog.LevelWarn},
		{configured: "verbose", want: slog.LevelInfo}, // unknown falls back to info
		{configured: "", want: slog.LevelInfo},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, parseLevel(tc.configured), "level %q", tc.configured)
	}
}

func TestSetupConfiguresDefaultLogger(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	log := Setup(config.ServerConfig{Port: 8000, LogLevel: "debug"})

	require.NotNil(t, log)
	assert.True(t, log.Enabled(context.Background(), slog.LevelDebug))
	assert.Same(t, log, slog.Default())
}
