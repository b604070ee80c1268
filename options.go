package fibheap

import "github.com/davidvella/fibheap/monitoring"

// options defines all configuration options for a heap.
type options struct {
	logger monitoring.Logger // Receives structural trace events, may be nil
}

// Option is a function that configures the heap options.
type Option func(*options)

// WithLogger sets a logger that receives DEBUG events for consolidation,
// cascading cuts, melds and teardown.
func WithLogger(logger monitoring.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// defaultOptions returns the default configuration.
func defaultOptions() options {
	return options{
		logger: nil,
	}
}
