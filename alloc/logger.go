package alloc

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with allocator-specific context.
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

// WithHost adds a host field to the logger.
func (l *Logger) WithHost(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("host", name),
	}
}

// WithLayout adds size and align fields to the logger.
func (l *Logger) WithLayout(layout Layout) *Logger {
	return &Logger{
		Logger: l.Logger.With("size", layout.Size, "align", layout.Align),
	}
}

// LogAlloc logs a successful allocation.
func (l *Logger) LogAlloc(ctx context.Context, layout Layout, zeroed bool) {
	if !l.Enabled(ctx, slog.LevelDebug) {
		return
	}
	l.DebugContext(ctx, "allocate",
		"size", layout.Size,
		"align", layout.Align,
		"zeroed", zeroed,
	)
}

// LogRealloc logs a successful reallocation.
func (l *Logger) LogRealloc(ctx context.Context, oldLayout, newLayout Layout, moved bool) {
	if !l.Enabled(ctx, slog.LevelDebug) {
		return
	}
	l.DebugContext(ctx, "reallocate",
		"old_size", oldLayout.Size,
		"new_size", newLayout.Size,
		"align", newLayout.Align,
		"moved", moved,
	)
}

// LogFree logs a deallocation.
func (l *Logger) LogFree(ctx context.Context, layout Layout) {
	if !l.Enabled(ctx, slog.LevelDebug) {
		return
	}
	l.DebugContext(ctx, "deallocate",
		"size", layout.Size,
		"align", layout.Align,
	)
}

// LogFailure logs an allocation failure. The process terminates right after.
func (l *Logger) LogFailure(ctx context.Context, layout Layout, err error) {
	l.WithLayout(layout).ErrorContext(ctx, "memory allocation failed",
		"error", err,
	)
}
