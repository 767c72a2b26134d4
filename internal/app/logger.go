package app

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/sahakar/accounts-backend/internal/config"
)

// NewLogger creates a *slog.Logger from LogConfig, tags it with the build
// version, and installs it as the slog default.
//
// Format "json" produces structured output for production; "text" is
// human-readable and includes source locations. Level is one of debug,
// info, warn, error (case-insensitive) and defaults to info. Output is
// always os.Stderr.
func NewLogger(cfg config.LogConfig) *slog.Logger {
	logger := slog.New(newHandler(os.Stderr, cfg)).With(slog.String("version", Version))
	slog.SetDefault(logger)
	return logger
}

func newHandler(w io.Writer, cfg config.LogConfig) slog.Handler {
	opts := &slog.HandlerOptions{
		Level:     parseLevel(cfg.Level),
		AddSource: strings.EqualFold(cfg.Format, "text"),
	}
	if strings.EqualFold(cfg.Format, "json") {
		return slog.NewJSONHandler(w, opts)
	}
	return slog.NewTextHandler(w, opts)
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
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
