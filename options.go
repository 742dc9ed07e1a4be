package nativegpu

import "log/slog"

// Option configures an AdapterSelector, a DeviceBringup, or BringUp.
//
// Example:
//
//	sel := nativegpu.NewAdapterSelector(platform, nativegpu.WithLogger(logger))
type Option func(*options)

// options holds optional configuration shared by the bring-up components.
type options struct {
	logger *slog.Logger
	policy Policy
}

func defaultOptions() options {
	return options{
		logger: nil, // resolved to Logger() at call time
		policy: PreferHighPerformance,
	}
}

func buildOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// log returns the injected logger, or the package-wide one.
func (o *options) log() *slog.Logger {
	if o.logger != nil {
		return o.logger
	}
	return Logger()
}

// WithLogger sets the sink for observability output (selected adapter,
// created queue). Logging is not part of the bring-up contract.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithPolicy replaces the adapter selection policy. A nil policy keeps the
// default PreferHighPerformance. Ignored by DeviceBringup.
func WithPolicy(p Policy) Option {
	return func(o *options) {
		if p != nil {
			o.policy = p
		}
	}
}
