// Package logger is the structured logger shared by the deque diagnostic build
// and the dequebench command.
package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/lmittmann/tint"
)

type LoggerType struct {
	*slog.Logger
}

var (
	logger LoggerType
	level  slog.LevelVar
)

const timeFormat = "2006-01-02 15:04:05.000"

func init() {
	// DEQUE_LOG_LEVEL overrides the default Info level before Configure runs.
	if l, ok := ParseLevel(os.Getenv("DEQUE_LOG_LEVEL")); ok {
		level.Set(l)
	}
	Configure(os.Stderr, level.Level(), false)
}

// Configure replaces the handler. Safe to call before any logging happens;
// later calls race with concurrent loggers.
func Configure(w io.Writer, l slog.Level, noColor bool) {
	level.Set(l)
	handler := tint.NewHandler(w, &tint.Options{
		Level:      &level,
		TimeFormat: timeFormat,
		NoColor:    noColor,
	})
	logger.Logger = slog.New(handler)
}

// SetLevel changes the minimum level without replacing the handler.
func SetLevel(l slog.Level) { level.Set(l) }

// ParseLevel accepts debug, info, warn and error in any case.
func ParseLevel(s string) (slog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	}
	return slog.LevelInfo, false
}

// Enabled reports whether messages at l are emitted.
func Enabled(l slog.Level) bool {
	return logger.Enabled(context.Background(), l)
}

func Info(msg string, args ...any) {
	logger.Info(msg, args...)
}

func Debug(msg string, args ...any) {
	logger.Debug(msg, args...)
}

func Error(msg string, args ...any) {
	logger.Error(msg, args...)
}

func Warn(msg string, args ...any) {
	logger.Warn(msg, args...)
}
