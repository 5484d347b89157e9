package bootstrap

import (
	"context"
	"errors"
	"fmt"

	"github.com/tycrek/eye/common/config"
	"github.com/tycrek/eye/common/kv"
	"github.com/tycrek/eye/common/logger"
	"github.com/tycrek/eye/common/telemetry"
)

// Components carries the shared dependencies Setup initialized.
type Components struct {
	Config    *config.Config
	Logger    *logger.Logger
	KV        kv.Store
	Telemetry *telemetry.Telemetry

	cleanup []func() error
}

// AddCleanup registers a teardown function, run LIFO on Shutdown.
// Services register their own teardown here so one defer covers everything.
func (c *Components) AddCleanup(fn func() error) {
	c.cleanup = append(c.cleanup, fn)
}

// Shutdown tears components down in reverse initialization order. Call it
// with defer after Setup.
func (c *Components) Shutdown(ctx context.Context) error {
	c.Logger.Info("shutting down components")

	var errs []error
	for i := len(c.cleanup) - 1; i >= 0; i-- {
		if err := c.cleanup[i](); err != nil {
			c.Logger.Error("cleanup error", "error", err)
			errs = append(errs, err)
		}
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	c.Logger.Info("shutdown complete")
	return nil
}

// Health reports whether the cache store is reachable, when it can say.
func (c *Components) Health(ctx context.Context) error {
	if checker, ok := c.KV.(interface{ Health(context.Context) error }); ok {
		if err := checker.Health(ctx); err != nil {
			return fmt.Errorf("cache store unhealthy: %w", err)
		}
	}
	return nil
}
