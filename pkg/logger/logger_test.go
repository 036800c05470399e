package logger

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	require.Equal(t, slog.LevelDebug, parseLevel("DEBUG", slog.LevelInfo))
	require.Equal(t, slog.LevelError, parseLevel("error", slog.LevelInfo))
	require.Equal(t, slog.LevelWarn, parseLevel("", slog.LevelWarn))
	require.Equal(t, slog.LevelInfo, parseLevel("verbose", slog.LevelInfo))
}

func TestNewCLI_HidesInfoByDefault(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	var buf bytes.Buffer
	log := NewCLI(&buf)

	log.Info("cache warm")
	require.Empty(t, buf.String())

	log.Warn("air quality lookup failed", "city", "Delhi")
	require.Contains(t, buf.String(), "air quality lookup failed")
	require.Contains(t, buf.String(), "city=Delhi")
}
