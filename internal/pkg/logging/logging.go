package logging

import (
	"io"
	"log/slog"
	"strings"
)

const serviceName = "eventsapi"

// SetupLogger installs the default slog logger. Production writes JSON records
// for the container runtime; every other env writes text. Debug records carry
// their source location.
func SetupLogger(appEnv, logLevel string, out io.Writer) {
	level := parseLevel(logLevel)
	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: level == slog.LevelDebug,
	}

	var handler slog.Handler
	if strings.EqualFold(appEnv, "production") {
		handler = slog.NewJSONHandler(out, opts)
	} else {
		handler = slog.NewTextHandler(out, opts)
	}

	slog.SetDefault(slog.New(handler).With("service", serviceName))
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warning", "warn":
		return slog.LevelWarn
	case "error", "critical":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
