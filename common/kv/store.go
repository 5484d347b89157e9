// Package kv provides the persistent key-value store behind the relay's
// catalog cache, with Redis and in-memory implementations.
package kv

import "context"

// Well-known keys. The catalog pair is written by refreshes and read by
// lookups; the credential pair is seeded by the setup CLI and read when
// credentials are absent from the environment.
const (
	KeyImages     = "KV_IMAGES"      // catalog JSON (array of images)
	KeyLastCached = "KV_LAST_CACHED" // RFC 3339 timestamp of the last refresh
	KeyAccountID  = "KV_ACCOUNT_ID"  // upstream account identifier
	KeyAPIKey     = "KV_API_KEY"     // upstream API token
)

// Store is the key-value port. Get distinguishes a miss (found=false,
// err=nil) from a store failure (err!=nil): callers treat the former as
// absence and the latter as a cache read error.
type Store interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Put(ctx context.Context, key, value string) error
	Delete(ctx context.Context, keys ...string) error
	Close() error
}

// Logger is the logging surface the store implementations need
type Logger interface {
	Info(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
	Warn(msg string, keysAndValues ...interface{})
	Debug(msg string, keysAndValues ...interface{})
}
