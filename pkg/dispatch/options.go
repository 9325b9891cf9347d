package dispatch

import (
	"log/slog"
	"time"
)

type options struct {
	logger                  *slog.Logger
	emailTimeout            time.Duration
	maxConcurrentDeliveries int
}

func defaultOptions() *options {
	return &options{
		logger:                  slog.Default(),
		emailTimeout:            10 * time.Second,
		maxConcurrentDeliveries: 16,
	}
}

// Option configures a Dispatcher.
type Option func(*options)

// WithLogger sets the logger for trigger and delivery-outcome records.
func WithLogger(log *slog.Logger) Option {
	return func(o *options) {
		if log != nil {
			o.logger = log
		}
	}
}

// WithEmailTimeout bounds each asynchronous delivery attempt so one
// unreachable recipient cannot hold a pool slot indefinitely.
func WithEmailTimeout(timeout time.Duration) Option {
	return func(o *options) {
		if timeout > 0 {
			o.emailTimeout = timeout
		}
	}
}

// WithMaxConcurrentDeliveries caps how many asynchronous deliveries run at
// once. Submissions beyond the cap queue on the pool rather than failing.
func WithMaxConcurrentDeliveries(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxConcurrentDeliveries = n
		}
	}
}
