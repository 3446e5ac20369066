// ABOUTME: Leveled logging over log/slog; writes to stderr so it never mixes with the TUI
// ABOUTME: Reporter() adapts the logger into the theme manager's observability sink

package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
)

// Level constants matching slog levels.
const (
	LevelDebug = slog.LevelDebug
	LevelInfo  = slog.LevelInfo
	LevelWarn  = slog.LevelWarn
	LevelError = slog.LevelError
)

var (
	level  = new(slog.LevelVar)
	mu     sync.RWMutex
	logger = newLogger(os.Stderr)
)

func newLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// SetLevel sets the global log level.
func SetLevel(l slog.Level) {
	level.Set(l)
}

// GetLevel returns the current log level.
func GetLevel() slog.Level {
	return level.Level()
}

// ParseLevel maps "debug", "info", "warn"/"warning" and "error" to a level.
func ParseLevel(raw string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "debug":
		return LevelDebug, nil
	case "", "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	}
	return LevelInfo, fmt.Errorf("unknown log level %q", raw)
}

// SetOutput redirects log output. Used by tests and by the CLI to keep the
// alternate screen clean.
func SetOutput(w io.Writer) {
	mu.Lock()
	logger = newLogger(w)
	mu.Unlock()
}

func current() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

// Debug logs a debug message if the level allows it.
func Debug(format string, args ...any) {
	logf(LevelDebug, format, args...)
}

// Info logs an info message if the level allows it.
func Info(format string, args ...any) {
	logf(LevelInfo, format, args...)
}

// Warn logs a warning message if the level allows it.
func Warn(format string, args ...any) {
	logf(LevelWarn, format, args...)
}

// Error logs an error message.
func Error(format string, args ...any) {
	logf(LevelError, format, args...)
}

func logf(l slog.Level, format string, args ...any) {
	if level.Level() > l {
		return
	}
	current().Log(context.Background(), l, fmt.Sprintf(format, args...))
}

// Reporter returns a sink for non-fatal failures. Each error is logged at
// warn level with the given component name.
func Reporter(component string) func(error) {
	return func(err error) {
		if err == nil {
			return
		}
		current().Warn(err.Error(), "component", component)
	}
}
