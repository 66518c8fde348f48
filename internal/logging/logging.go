package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Setup creates the application logger, sets it as the default, and returns
// it. Level accepts "debug", "info", "warn", or "error" (case-insensitive);
// anything else means info. A nil writer logs to stderr.
func Setup(level string, w io.Writer) *slog.Logger {
	if w == nil {
		w = os.Stderr
	}

	var lvl slog.Level
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}

	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
	slog.SetDefault(logger)
	return logger
}
