package fielddata

import (
	"context"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with field-data specific context.
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

// WithField adds a field name to the logger.
func (l *Logger) WithField(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("field", name),
	}
}

// WithSegment adds a segment identifier to the logger.
func (l *Logger) WithSegment(id uint64) *Logger {
	return &Logger{
		Logger: l.Logger.With("segment", id),
	}
}

// LogOpen logs that field data became readable.
func (l *Logger) LogOpen(ctx context.Context, docs, ordinals int) {
	l.DebugContext(ctx, "field data opened",
		"docs", docs,
		"ordinals", ordinals,
	)
}

// LogValidate logs the outcome of a structural validation.
func (l *Logger) LogValidate(ctx context.Context, err error) {
	if err != nil {
		l.WarnContext(ctx, "field data validation failed",
			"error", err,
		)
	}
}

// LogCollect logs a facet collection over one or more segments.
func (l *Logger) LogCollect(ctx context.Context, segments, docs int, elapsed time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "facet collection failed",
			"segments", segments,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "facet collection completed",
			"segments", segments,
			"docs", docs,
			"elapsed", elapsed,
		)
	}
}
