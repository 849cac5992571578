package easyspot

import (
	"io"
)

// Backing selects where block memory comes from.
type Backing int

const (
	// BackingOffHeap maps every block separately outside the Go heap.
	// Drop returns the pages to the OS.
	BackingOffHeap Backing = iota
	// BackingGoHeap allocates blocks on the Go heap. Drop releases the
	// handle's claim; the memory is reclaimed once nothing points into it.
	BackingGoHeap
)

func (b Backing) String() string {
	switch b {
	case BackingOffHeap:
		return "offheap"
	case BackingGoHeap:
		return "goheap"
	default:
		return "unknown"
	}
}

type options struct {
	logger           *Logger
	metricsCollector MetricsCollector
	backing          Backing
	memoryLimit      int64
	diagOutput       io.Writer
}

func defaultOptions() options {
	return options{
		logger:           NoopLogger(),
		metricsCollector: NoopMetricsCollector{},
		backing:          BackingOffHeap,
	}
}

// Option configures the process-wide allocator state.
type Option func(*options)

// WithLogger sets the logger for allocation events and faults.
//
// Allocation and drop events are logged at debug level in debug builds
// only. Faults are logged at error level in every build.
// If nil is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithMetricsCollector sets the collector notified of every allocation,
// drop and fault. If nil is passed, NoopMetricsCollector is used.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithBacking selects the memory source for blocks allocated after the
// call. Blocks allocated earlier are released through the source that
// produced them.
func WithBacking(b Backing) Option {
	return func(o *options) {
		o.backing = b
	}
}

// WithMemoryLimit caps the bytes (headers included) held by live blocks
// allocated after the call. An allocation that would exceed the cap is a
// fatal ErrMemoryLimitExceeded. If bytes <= 0, no limit is enforced.
func WithMemoryLimit(bytes int64) Option {
	return func(o *options) {
		o.memoryLimit = bytes
	}
}

// WithDiagnosticsOutput redirects fault reports. Defaults to os.Stderr.
func WithDiagnosticsOutput(w io.Writer) Option {
	return func(o *options) {
		o.diagOutput = w
	}
}

// Configure replaces the process-wide configuration. Options that are not
// given revert to their defaults. Configure is not safe for concurrent use
// and is meant to run once at program start.
func Configure(opts ...Option) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	apply(o)
}

// Config is a read-only snapshot of the process-wide configuration.
type Config struct {
	Debug       bool
	Backing     Backing
	MemoryLimit int64 // 0 if no limit is configured
}

// Configuration returns the current configuration.
func Configuration() Config {
	return Config{
		Debug:       Debug,
		Backing:     state.backing,
		MemoryLimit: state.budget.MemoryLimit(),
	}
}
