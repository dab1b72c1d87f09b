package statgo

type options struct {
	capacity int
	logger   *Logger
	metrics  MetricsCollector
}

func defaultOptions() options {
	return options{
		capacity: DefaultCapacity,
		logger:   NoopLogger(),
		metrics:  NoopMetricsCollector{},
	}
}

// Option configures a Registry at construction time.
type Option func(*options)

// WithCapacity sets the arena capacity ceiling in bytes. Choose it
// generously at build time: declaring more counter bytes than the ceiling
// is a fatal configuration error. The value is rounded up to a multiple of
// 8 so typed views stay aligned.
func WithCapacity(n int) Option {
	return func(o *options) {
		if n <= 0 {
			n = DefaultCapacity
		}
		o.capacity = (n + 7) &^ 7
	}
}

// WithLogger sets the structured logger used on cold paths (arena
// lifecycle, dump, merge). Counter arithmetic never logs.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithMetricsCollector sets the collector notified of registry operations.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metrics = mc
	}
}
