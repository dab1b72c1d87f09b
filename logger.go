package statgo

import (
	"io"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with statgo-specific field helpers. It is used
// on cold paths only; the counter-update path never touches it.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a Logger with the given handler. If handler is nil, a
// text handler to stderr at Info level is used.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{Logger: slog.New(handler)}
}

// NewTextLogger creates a Logger that writes human-readable text to stderr.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewJSONLogger creates a Logger that writes JSON-formatted logs to stderr.
func NewJSONLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger creates a Logger that discards all output.
func NoopLogger() *Logger {
	return &Logger{Logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
}

// WithRegistry tags the logger with a registry identifier (useful when a
// process runs several independent registries).
func (l *Logger) WithRegistry(name string) *Logger {
	return &Logger{Logger: l.Logger.With("registry", name)}
}

// WithArenaCapacity adds the arena capacity field.
func (l *Logger) WithArenaCapacity(capacity int) *Logger {
	return &Logger{Logger: l.Logger.With("capacity", capacity)}
}

// WithFormat adds the dump format field ("text", "yaml").
func (l *Logger) WithFormat(format string) *Logger {
	return &Logger{Logger: l.Logger.With("format", format)}
}
