package bootstrap

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/tycrek/eye/common/config"
	"github.com/tycrek/eye/common/kv"
	"github.com/tycrek/eye/common/logger"
	"github.com/tycrek/eye/common/telemetry"
)

// Setup assembles the components every binary starts from: configuration,
// logger, the cache store, and the optional pprof listener.
func Setup(ctx context.Context, serviceName string, opts ...Option) (*Components, error) {
	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}

	components := &Components{}

	// 1. Configuration
	var err error
	if options.customConfig != nil {
		components.Config = options.customConfig
	} else {
		components.Config, err = config.Load(serviceName)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}

	// 2. Logger
	if options.customLogger != nil {
		components.Logger = options.customLogger
	} else {
		components.Logger = logger.New(
			components.Config.Service.LogLevel,
			components.Config.Service.LogFormat,
		)
	}

	components.Logger.Info("initializing service",
		"service", serviceName,
		"environment", components.Config.Service.Environment,
	)

	// 3. Cache store
	components.Logger.Info("initializing cache store",
		"backend", components.Config.Cache.Backend,
	)

	switch components.Config.Cache.Backend {
	case "memory":
		components.KV = kv.NewMemoryStore()
	case "redis":
		store := kv.NewRedisStore(redis.NewClient(&redis.Options{
			Addr:     components.Config.RedisAddr(),
			Password: components.Config.Cache.RedisPassword,
			DB:       components.Config.Cache.RedisDB,
		}), components.Logger)

		if err := store.Health(ctx); err != nil {
			return nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		components.KV = store
	default:
		return nil, fmt.Errorf("unknown cache backend: %s", components.Config.Cache.Backend)
	}

	components.AddCleanup(func() error {
		components.Logger.Info("closing cache store")
		return components.KV.Close()
	})

	// 4. Telemetry
	if !options.skipTelemetry && components.Config.Relay.EnablePprof {
		components.Telemetry = telemetry.New(
			components.Config.Relay.PprofPort,
			components.Logger,
		)

		if err := components.Telemetry.Start(ctx); err != nil {
			components.Logger.Warn("failed to start telemetry", "error", err)
		}
	}

	components.Logger.Info("service initialization complete",
		"service", serviceName,
		"telemetry", components.Telemetry != nil,
	)

	return components, nil
}
