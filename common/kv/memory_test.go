package kv

import (
	"context"
	"fmt"
	"sync"
	"testing"
)

// TestMemoryStore_RoundTrip verifies put/get/delete behavior
func TestMemoryStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	// Absent key is a miss, not an error
	val, found, err := store.Get(ctx, KeyImages)
	if err != nil {
		t.Fatalf("Get on empty store failed: %v", err)
	}
	if found || val != "" {
		t.Errorf("expected miss, got found=%v val=%q", found, val)
	}

	if err := store.Put(ctx, KeyImages, `[{"id":"abc"}]`); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	val, found, err = store.Get(ctx, KeyImages)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !found || val != `[{"id":"abc"}]` {
		t.Errorf("expected stored value, got found=%v val=%q", found, val)
	}

	if err := store.Delete(ctx, KeyImages); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	_, found, _ = store.Get(ctx, KeyImages)
	if found {
		t.Errorf("key should be gone after delete")
	}
}

// TestMemoryStore_DeleteMultiple verifies multi-key delete
func TestMemoryStore_DeleteMultiple(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	store.Put(ctx, KeyImages, "catalog")
	store.Put(ctx, KeyLastCached, "timestamp")
	store.Put(ctx, KeyAccountID, "acct")

	if err := store.Delete(ctx, KeyImages, KeyLastCached); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	if store.Len() != 1 {
		t.Errorf("expected 1 key remaining, got %d", store.Len())
	}
	_, found, _ := store.Get(ctx, KeyAccountID)
	if !found {
		t.Errorf("untouched key should survive")
	}
}

// TestMemoryStore_ConcurrentAccess verifies the store tolerates racing writers
func TestMemoryStore_ConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			key := fmt.Sprintf("key-%d", n%4)
			store.Put(ctx, key, fmt.Sprintf("writer-%d", n))
			store.Get(ctx, key)
		}(i)
	}
	wg.Wait()

	if store.Len() != 4 {
		t.Errorf("expected 4 distinct keys, got %d", store.Len())
	}
}
