package kv

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisStore implements Store on a Redis backend. Values are plain strings
// with no Redis-side expiration: staleness is decided by the expiry policy
// over KeyLastCached, not by the store.
type RedisStore struct {
	redis  *redis.Client
	logger Logger
}

// NewRedisStore creates a new Redis-backed store
func NewRedisStore(redisClient *redis.Client, logger Logger) *RedisStore {
	return &RedisStore{
		redis:  redisClient,
		logger: logger,
	}
}

// Get retrieves a value by key. A missing key is (="", false, nil).
func (s *RedisStore) Get(ctx context.Context, key string) (string, bool, error) {
	val, err := s.redis.Get(ctx, key).Result()
	if err == redis.Nil {
		s.logger.Debug("redis GET key not found", "key", key)
		return "", false, nil
	}
	if err != nil {
		s.logger.Error("redis GET failed", "key", key, "error", err)
		return "", false, fmt.Errorf("failed to get key %s: %w", key, err)
	}
	s.logger.Debug("redis GET", "key", key)
	return val, true, nil
}

// Put sets a key without expiration
func (s *RedisStore) Put(ctx context.Context, key, value string) error {
	err := s.redis.Set(ctx, key, value, 0).Err()
	if err != nil {
		s.logger.Error("redis SET failed", "key", key, "error", err)
		return fmt.Errorf("failed to set key %s: %w", key, err)
	}
	s.logger.Debug("redis SET", "key", key, "bytes", len(value))
	return nil
}

// Delete removes keys
func (s *RedisStore) Delete(ctx context.Context, keys ...string) error {
	err := s.redis.Del(ctx, keys...).Err()
	if err != nil {
		s.logger.Error("redis DEL failed", "keys", keys, "error", err)
		return fmt.Errorf("failed to delete keys: %w", err)
	}
	s.logger.Debug("redis DEL", "keys", keys)
	return nil
}

// Health pings the backend
func (s *RedisStore) Health(ctx context.Context) error {
	if err := s.redis.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}

// Close closes the underlying client
func (s *RedisStore) Close() error {
	return s.redis.Close()
}
