// Package logging configures colored structured logging with tint.
//
// Usage:
//
//	logging.Setup()                          // level from LOG_LEVEL env
//	logging.SetupWithLevel(slog.LevelDebug)  // explicit level override
//
// Environment variables:
//
//	LOG_LEVEL: debug, info, warn, error (default: info)
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

// Setup configures colored logging at the level specified by LOG_LEVEL env var
// (default: INFO). An unknown level falls back to INFO.
func Setup() {
	level, err := ParseLevel(os.Getenv("LOG_LEVEL"))
	SetupWithLevel(level)
	if err != nil {
		slog.Warn("Ignoring LOG_LEVEL", "error", err)
	}
}

// SetupWithLevel configures colored logging at the given level on stderr.
func SetupWithLevel(level slog.Level) {
	slog.SetDefault(New(os.Stderr, level))
}

// New returns a tint logger writing to w. Color is disabled unless w is a
// terminal-backed *os.File.
func New(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(
		tint.NewHandler(w, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
			AddSource:  level == slog.LevelDebug,
			NoColor:    !isTerminal(w),
		}),
	)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	return err == nil && info.Mode()&os.ModeCharDevice != 0
}

// ParseLevel maps debug, info, warn and error to slog levels.
// Empty means info.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
}
