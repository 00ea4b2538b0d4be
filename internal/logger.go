package internal

import "context"
import "log/slog"
import "sync/atomic"

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled returns false so callers skip message formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var nopLogger = slog.New(nopHandler{})

// loggerPtr stores the active logger. Accessed atomically so that
// SetLogger can be called while other goroutines are measuring text.
var loggerPtr atomic.Pointer[slog.Logger]

// Sets the logger shared by mtxt and all its sub-packages.
// Passing nil restores the default silent logger.
func SetLogger(logger *slog.Logger) {
	if logger == nil { logger = nopLogger }
	loggerPtr.Store(logger)
}

// Returns the current logger. Never nil.
func Logger() *slog.Logger {
	logger := loggerPtr.Load()
	if logger == nil { return nopLogger }
	return logger
}
