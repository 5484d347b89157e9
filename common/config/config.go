package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all service configuration
type Config struct {
	Service  ServiceConfig
	Upstream UpstreamConfig
	Cache    CacheConfig
	Relay    RelayConfig
}

// ServiceConfig holds service-specific settings
type ServiceConfig struct {
	Name        string
	Port        int
	Environment string
	LogLevel    string
	LogFormat   string
}

// UpstreamConfig holds hosted image service settings. AccountID and APIKey
// may be empty here; the container then falls back to the cache store.
type UpstreamConfig struct {
	AccountID         string
	APIKey            string
	APIBase           string
	RequestsPerSecond float64
	Timeout           time.Duration
}

// CacheConfig holds catalog cache settings
type CacheConfig struct {
	Backend       string // "redis" or "memory"
	TTL           time.Duration
	BatchSize     int
	ExpireLimit   int // allowed /expire-cache calls per minute
	RedisHost     string
	RedisPort     int
	RedisPassword string
	RedisDB       int
}

// RelayConfig holds relay debug settings
type RelayConfig struct {
	EnablePprof bool
	PprofPort   int
}

// Load loads configuration from environment variables
func Load(serviceName string) (*Config, error) {
	cfg := &Config{
		Service: ServiceConfig{
			Name:        serviceName,
			Port:        getEnvInt("PORT", 8080),
			Environment: getEnv("ENVIRONMENT", "development"),
			LogLevel:    getEnv("LOG_LEVEL", "info"),
			LogFormat:   getEnv("LOG_FORMAT", "text"), // Default to text for development
		},
		Upstream: UpstreamConfig{
			AccountID:         getEnv("UPSTREAM_ACCOUNT_ID", ""),
			APIKey:            getEnv("UPSTREAM_API_KEY", ""),
			APIBase:           getEnv("UPSTREAM_API_BASE", "https://api.cloudflare.com/client/v4"),
			RequestsPerSecond: getEnvFloat("UPSTREAM_RPS", 4),
			Timeout:           getEnvDuration("UPSTREAM_TIMEOUT", 30*time.Second),
		},
		Cache: CacheConfig{
			Backend:       getEnv("CACHE_BACKEND", "redis"),
			TTL:           getEnvDuration("CACHE_TTL", 24*time.Hour),
			BatchSize:     getEnvInt("CACHE_BATCH_SIZE", 100),
			ExpireLimit:   getEnvInt("EXPIRE_RATE_LIMIT", 10),
			RedisHost:     getEnv("REDIS_HOST", "localhost"),
			RedisPort:     getEnvInt("REDIS_PORT", 6379),
			RedisPassword: getEnv("REDIS_PASSWORD", ""),
			RedisDB:       getEnvInt("REDIS_DB", 0),
		},
		Relay: RelayConfig{
			EnablePprof: getEnvBool("ENABLE_PPROF", false),
			PprofPort:   getEnvInt("PPROF_PORT", 6060),
		},
	}

	return cfg, cfg.Validate()
}

// Validate checks if configuration is valid
func (c *Config) Validate() error {
	if c.Service.Port < 1 || c.Service.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Service.Port)
	}

	if c.Cache.Backend != "redis" && c.Cache.Backend != "memory" {
		return fmt.Errorf("invalid cache backend: %s", c.Cache.Backend)
	}

	if c.Cache.Backend == "redis" && c.Cache.RedisHost == "" {
		return fmt.Errorf("redis host is required")
	}

	if c.Cache.TTL <= 0 {
		return fmt.Errorf("cache ttl must be positive")
	}

	if c.Cache.BatchSize < 1 {
		return fmt.Errorf("cache batch size must be at least 1")
	}

	if c.Cache.ExpireLimit < 1 {
		return fmt.Errorf("expire rate limit must be at least 1")
	}

	return nil
}

// RedisAddr returns the Redis connection address
func (c *Config) RedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Cache.RedisHost, c.Cache.RedisPort)
}

// Helper functions

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
