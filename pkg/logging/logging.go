// Package logging configures the process-wide slog logger.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

const (
	jsonEnv  = "HEAVISIDE_JSON_LOG"
	levelEnv = "HEAVISIDE_LOG_LEVEL"
)

// Init installs a default logger writing to stderr, so stdout stays free for
// program output. JSON if HEAVISIDE_JSON_LOG=1/true/json else text.
func Init(service string) *slog.Logger {
	return InitWriter(os.Stderr, service)
}

func InitWriter(w io.Writer, service string) *slog.Logger {
	mode := strings.ToLower(os.Getenv(jsonEnv))
	json := mode == "1" || mode == "true" || mode == "json"

	opts := &slog.HandlerOptions{Level: levelFromEnv()}
	var handler slog.Handler
	if json {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	logger := slog.New(handler).With("service", service)
	slog.SetDefault(logger)
	logger.Debug("logging initialized", "json", json)
	return logger
}

func levelFromEnv() slog.Leveler {
	switch strings.ToLower(os.Getenv(levelEnv)) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
