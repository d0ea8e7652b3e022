package alloc

import (
	"log/slog"

	"github.com/RuchDB/ruchdb/internal/resource"
)

type options struct {
	host             Host
	memoryLimit      int64
	metricsCollector MetricsCollector
	logger           *Logger
}

// Option configures an Allocator.
type Option func(*options)

// WithHost configures the host the allocator delegates to.
//
// If nil is passed, GoHeap is used.
func WithHost(h Host) Option {
	return func(o *options) {
		if h == nil {
			h = GoHeap()
		}
		o.host = h
	}
}

// WithMemoryLimit caps the bytes the allocator may hold at once.
// A request that would exceed the limit is treated as exhaustion.
// Zero or a negative value means unlimited.
func WithMemoryLimit(bytes int64) Option {
	return func(o *options) {
		o.memoryLimit = max(bytes, 0)
	}
}

// WithMetricsCollector configures a metrics collector for allocator events.
// Pass nil to disable metrics collection.
//
// Example:
//
//	metrics := &alloc.BasicMetricsCollector{}
//	a := alloc.New(alloc.WithMetricsCollector(metrics))
//	// ... use a ...
//	stats := metrics.GetStats()
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for the allocator.
// Pass nil to disable logging.
//
// Example:
//
//	logger := alloc.NewJSONLogger(slog.LevelDebug)
//	a := alloc.New(alloc.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

func defaultOptions() options {
	return options{
		host:             GoHeap(),
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
}

func (o options) budget() *resource.Controller {
	return resource.NewController(resource.Config{MemoryLimitBytes: o.memoryLimit})
}
