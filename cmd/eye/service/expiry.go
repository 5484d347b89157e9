package service

import "time"

// ExpiryPolicy decides when the cached catalog must be refetched
type ExpiryPolicy struct {
	TTL time.Duration
}

// Expired reports whether a catalog cached at lastFetched is stale at now.
// A nil lastFetched means nothing was ever cached, which counts as expired.
// An age of exactly TTL counts as expired.
func (p ExpiryPolicy) Expired(lastFetched *time.Time, now time.Time) bool {
	if lastFetched == nil {
		return true
	}
	return now.Sub(*lastFetched) >= p.TTL
}
