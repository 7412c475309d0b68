package common

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{input: "debug", want: slog.LevelDebug},
		{input: "info", want: slog.LevelInfo},
		{input: "warn", want: slog.LevelWarn},
		{input: "error", want: slog.LevelError},
		{input: "bogus", want: slog.LevelInfo},
		{input: "", want: slog.LevelInfo},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseLogLevel(tt.input))
	}
}

func TestSetupLogger(t *testing.T) {
	require.NoError(t, SetupLogger(slog.LevelInfo, "json"))
	require.NoError(t, SetupLogger(slog.LevelInfo, "console"))

	err := SetupLogger(slog.LevelInfo, "xml")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}
