package mtxt

import "log/slog"

import "github.com/tinne26/mtxt/internal"

// Sets the logger used by mtxt and its sub-packages. By default,
// nothing is logged. Glyph fallbacks are reported at debug level, and
// clamped configuration values at warn level. Passing nil restores
// the default silent logger.
func SetLogger(logger *slog.Logger) {
	internal.SetLogger(logger)
}

// Returns the current logger. Never nil.
func Logger() *slog.Logger {
	return internal.Logger()
}
