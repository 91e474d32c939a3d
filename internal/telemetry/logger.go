// Package telemetry provides a small leveled logger for the inference core's
// diagnostic dumps and structural warnings.
//
// It is deliberately thin compared to a service-grade logging package: this
// module has no daemon lifecycle, no log files, and no export destinations.
// It wraps the standard library's log/slog, the same foundation the richer
// logging packages in the reference corpus build on, trimmed down to a
// single stderr destination and a package-level default instance.
package telemetry

import (
	"context"
	"log/slog"
	"os"
	"sync"
)

// Logger wraps an *slog.Logger with a mutable minimum level, so the
// Print* diagnostic dumps can gate on "is debug enabled" without a package
// global boolean.
type Logger struct {
	mu     sync.Mutex
	level  *slog.LevelVar
	logger *slog.Logger
}

// New creates a Logger writing JSON-less text records to standard error
// at the given minimum level.
func New(level slog.Level) *Logger {
	lv := &slog.LevelVar{}
	lv.Set(level)
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lv})
	return &Logger{level: lv, logger: slog.New(handler)}
}

var (
	defaultOnce sync.Once
	defaultLog  *Logger
)

// Default returns the package-wide default Logger, created lazily at
// LevelInfo on first use.
func Default() *Logger {
	defaultOnce.Do(func() {
		defaultLog = New(slog.LevelInfo)
	})
	return defaultLog
}

// SetLevel changes the minimum level a Logger emits at.
func (l *Logger) SetLevel(level slog.Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level.Set(level)
}

// DebugEnabled reports whether Debug-level records would be emitted.
func (l *Logger) DebugEnabled() bool {
	return l.logger.Enabled(context.Background(), slog.LevelDebug)
}

// Debug logs a debug-level diagnostic, used by the Print* dumps.
func (l *Logger) Debug(msg string, args ...any) {
	l.logger.Debug(msg, args...)
}

// Warn logs a structural warning, such as the shortest-path solver hitting
// its iteration cap.
func (l *Logger) Warn(msg string, args ...any) {
	l.logger.Warn(msg, args...)
}
