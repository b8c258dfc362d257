// Package logger adapts log/slog to ports.Logger for the orchestrators'
// operational logging (progress and diagnostics that aren't a fatal CLI
// error and aren't multiplexed child-process output, which goes through a
// shell.LogSink instead).
package logger

import (
	"io"
	"log/slog"
	"os"
	"sync"

	"go.trai.ch/wsu/internal/core/ports"
)

// Logger implements ports.Logger over a *slog.Logger. The mutex is held by
// pointer so a Logger returned from With shares it with its parent: an
// in-flight SetOutput call on either one is visible to both instead of only
// whichever held the lock at the time With was called.
type Logger struct {
	logger *slog.Logger
	mu     *sync.RWMutex
}

// New creates a Logger writing slog's default human-readable text format to
// stderr at info level.
func New() ports.Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})
	return &Logger{logger: slog.New(handler), mu: &sync.RWMutex{}}
}

// SetOutput redirects subsequent records to w (tests redirect this to a buffer).
func (l *Logger) SetOutput(w io.Writer) {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})
	l.mu.Lock()
	defer l.mu.Unlock()
	l.logger = slog.New(handler)
}

// Info logs msg at info level with the given key-value args.
func (l *Logger) Info(msg string, args ...any) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Info(msg, args...)
}

// Warn logs msg at warn level with the given key-value args.
func (l *Logger) Warn(msg string, args ...any) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Warn(msg, args...)
}

// Error logs err's message at error level with the given key-value args.
// This is for operational diagnostics (e.g. a cache write that failed but
// didn't abort the run); a fatal error reaching the CLI boundary is instead
// formatted with "%+v" directly at main, to preserve its zerr stack trace
// and metadata rather than flattening it through a slog record.
func (l *Logger) Error(err error, args ...any) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Error(err.Error(), args...)
}

// With returns a Logger that prefixes every subsequent record with args,
// e.g. a per-package child logger scoped with "package", name.
func (l *Logger) With(args ...any) ports.Logger {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return &Logger{logger: l.logger.With(args...), mu: l.mu}
}
