package service

import (
	"testing"
	"time"
)

// TestExpiryPolicy_Expired verifies the staleness decision table
func TestExpiryPolicy_Expired(t *testing.T) {
	ttl := 24 * time.Hour
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	age := func(d time.Duration) *time.Time {
		ts := now.Add(-d)
		return &ts
	}

	tests := []struct {
		name        string
		lastFetched *time.Time
		want        bool
	}{
		{"never cached", nil, true},
		{"just cached", age(0), false},
		{"one hour old", age(time.Hour), false},
		{"just under ttl", age(ttl - time.Second), false},
		{"exactly ttl", age(ttl), true},
		{"beyond ttl", age(48 * time.Hour), true},
	}

	policy := ExpiryPolicy{TTL: ttl}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := policy.Expired(tt.lastFetched, now); got != tt.want {
				t.Errorf("Expired() = %v, want %v", got, tt.want)
			}
		})
	}
}

// TestExpiryPolicy_ShortTTL verifies sub-second TTLs work for local iteration
func TestExpiryPolicy_ShortTTL(t *testing.T) {
	policy := ExpiryPolicy{TTL: 100 * time.Millisecond}
	now := time.Now()
	cached := now.Add(-200 * time.Millisecond)

	if !policy.Expired(&cached, now) {
		t.Errorf("200ms old entry should be expired under a 100ms TTL")
	}
}
