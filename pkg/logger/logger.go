package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

const serviceName = "weather-assistant"

// New constructs the JSON slog logger used by the service. Every record is
// tagged with the service name.
func New() *slog.Logger {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: parseLevel(os.Getenv("LOG_LEVEL"), slog.LevelInfo)})
	return slog.New(handler).With("service", serviceName)
}

// NewCLI writes human readable records to w. Only warnings and errors are
// shown unless LOG_LEVEL says otherwise.
func NewCLI(w io.Writer) *slog.Logger {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: parseLevel(os.Getenv("LOG_LEVEL"), slog.LevelWarn)})
	return slog.New(handler)
}

func parseLevel(level string, fallback slog.Level) slog.Leveler {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return fallback
	}
}
