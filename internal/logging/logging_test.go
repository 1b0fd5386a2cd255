package logging

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"DEBUG", slog.LevelDebug},
		{"debug", slog.LevelDebug},
		{" info ", slog.LevelInfo},
		{"WARN", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"ERROR", slog.LevelError},
		{"", slog.LevelInfo},
		{"bogus", slog.LevelInfo},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, parseLevel(tt.in), "input %q", tt.in)
	}
}

func TestConfigureSetsDefault(t *testing.T) {
	logger := Configure(Config{Level: "DEBUG", JSON: true, ExtraFields: map[string]string{"svc": "test"}})
	require.NotNil(t, logger)
	assert.Same(t, logger, slog.Default())
	assert.True(t, logger.Enabled(t.Context(), slog.LevelDebug))
}
