package guard

import "log/slog"

// ErrorFactory builds the error returned for a violated precondition.
// It receives the argument name and the effective message.
type ErrorFactory func(name, message string) error

// Option customizes how a failed check reports its error.
// Options are evaluated only when a check fails.
type Option func(*config)

type config struct {
	message string
	factory ErrorFactory
	logger  *slog.Logger
}

// WithMessage replaces the default failure message.
// An empty message keeps the default.
func WithMessage(message string) Option {
	return func(c *config) {
		if message != "" {
			c.message = message
		}
	}
}

// WithErrorFactory makes the check return whatever factory builds instead
// of an *ArgumentError. Nil factories are ignored.
func WithErrorFactory(factory ErrorFactory) Option {
	return func(c *config) {
		if factory != nil {
			c.factory = factory
		}
	}
}

// WithLogger reports each violation to l at debug level.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

func newConfig(opts []Option) *config {
	cfg := &config{}
	for _, opt := range opts {
		if opt != nil {
			opt(cfg)
		}
	}
	return cfg
}
