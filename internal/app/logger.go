// Package app holds process-level wiring shared by the commands: logger
// construction and build version metadata.
package app

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/heartmarshall/spellingbee/internal/config"
)

// NewLogger creates a *slog.Logger from LogConfig and sets it as the default
// logger via slog.SetDefault.
//
// Format "json" produces structured JSON output, anything else a
// human-readable text handler. Level is one of debug, info, warn, error
// (case-insensitive); unknown values fall back to info. Logs always go to
// os.Stderr so solver output on stdout stays pipeable.
func NewLogger(cfg config.LogConfig) *slog.Logger {
	logger := slog.New(newHandler(os.Stderr, cfg))
	slog.SetDefault(logger)
	return logger
}

func newHandler(w io.Writer, cfg config.LogConfig) slog.Handler {
	opts := &slog.HandlerOptions{Level: parseLevel(cfg.Level)}
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
