package bootstrap

import (
	"github.com/tycrek/eye/common/config"
	"github.com/tycrek/eye/common/logger"
)

// Option adjusts how Setup assembles the components.
type Option func(*options)

type options struct {
	skipTelemetry bool
	customLogger  *logger.Logger
	customConfig  *config.Config
}

// WithoutTelemetry skips the pprof listener, for short-lived binaries.
func WithoutTelemetry() Option {
	return func(o *options) {
		o.skipTelemetry = true
	}
}

// WithCustomLogger substitutes a prebuilt logger for the configured one.
func WithCustomLogger(log *logger.Logger) Option {
	return func(o *options) {
		o.customLogger = log
	}
}

// WithCustomConfig bypasses environment loading, for tests that assemble
// their own configuration.
func WithCustomConfig(cfg *config.Config) Option {
	return func(o *options) {
		o.customConfig = cfg
	}
}

func defaultOptions() *options {
	return &options{}
}
