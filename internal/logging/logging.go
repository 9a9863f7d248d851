// Package logging configures the process-wide slog logger for the CLI.
package logging

import (
	"log/slog"
	"os"
	"strings"
)

// Init builds a text handler on stderr at the given level and installs
// it as the default logger. Unknown levels fall back to info.
func Init(level string) *slog.Logger {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})
	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}
