package matgo

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with matgo-specific context.
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
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithShape adds rows/cols fields to the logger.
func (l *Logger) WithShape(rows, cols int) *Logger {
	return &Logger{
		Logger: l.Logger.With("rows", rows, "cols", cols),
	}
}

// LogResize logs a resize operation.
func (l *Logger) LogResize(ctx context.Context, rows, cols int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "resize failed",
			"rows", rows,
			"cols", cols,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "resize completed",
			"rows", rows,
			"cols", cols,
		)
	}
}

// LogSave logs a snapshot save operation.
func (l *Logger) LogSave(ctx context.Context, rows, cols int, bytes int64, err error) {
	if err != nil {
		l.ErrorContext(ctx, "save failed",
			"rows", rows,
			"cols", cols,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "save completed",
			"rows", rows,
			"cols", cols,
			"bytes", bytes,
		)
	}
}

// LogLoad logs a snapshot load operation.
func (l *Logger) LogLoad(ctx context.Context, rows, cols int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "load failed",
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "load completed",
			"rows", rows,
			"cols", cols,
		)
	}
}
