package core

import (
	"log/slog"
	"os"
	"strings"
)

// InitLogging installs the default slog logger with the level taken from
// the LOG_LEVEL environment variable (debug, info, warn, error).
// Unset or unrecognized values fall back to info.
func InitLogging() {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevelFromEnv(),
	})
	slog.SetDefault(slog.New(handler))
}

func logLevelFromEnv() slog.Level {
	return parseLogLevel(os.Getenv("LOG_LEVEL"))
}

func parseLogLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
