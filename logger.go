package easyspot

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with easyspot-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithAddr adds a block or ref address field to the logger.
func (l *Logger) WithAddr(addr uintptr) *Logger {
	return &Logger{
		Logger: l.Logger.With("addr", addr),
	}
}

// WithBacking adds the backing source name to the logger.
func (l *Logger) WithBacking(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("backing", name),
	}
}

// LogAllocate logs a block allocation.
func (l *Logger) LogAllocate(addr uintptr, size int, backing string) {
	l.Debug("block allocated",
		"addr", addr,
		"size", size,
		"backing", backing,
	)
}

// LogDrop logs a block drop.
func (l *Logger) LogDrop(addr uintptr, size int) {
	l.Debug("block dropped",
		"addr", addr,
		"size", size,
	)
}

// LogFault logs a fault right before the process terminates.
func (l *Logger) LogFault(f *Fault) {
	attrs := []any{
		"kind", f.Kind.Error(),
		"addr", f.Addr,
	}
	if f.Kind == ErrOutOfBounds {
		attrs = append(attrs, "index", f.Index, "capacity", f.Capacity)
	}
	if f.Size != 0 {
		attrs = append(attrs, "size", f.Size)
	}
	if f.cause != nil {
		attrs = append(attrs, "error", f.cause)
	}
	l.Error(f.Error(), attrs...)
}

// LogLeaks logs the outcome of a leak check.
func (l *Logger) LogLeaks(count, bytes int) {
	if count > 0 {
		l.Warn("undropped blocks",
			"count", count,
			"bytes", bytes,
		)
	} else {
		l.Info("no undropped blocks")
	}
}
