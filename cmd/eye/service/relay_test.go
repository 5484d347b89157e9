package service

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	eyeerr "github.com/tycrek/eye/common/errors"
	"github.com/tycrek/eye/common/kv"
	"github.com/tycrek/eye/common/logger"
	"github.com/tycrek/eye/common/models"
)

// fakeFetcher records the fetched URL and plays back a canned response
type fakeFetcher struct {
	gotURL string
	resp   *http.Response
	err    error
	calls  int
}

func (f *fakeFetcher) FetchVariant(ctx context.Context, variantURL string) (*http.Response, error) {
	f.calls++
	f.gotURL = variantURL
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

func imageResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Header:     http.Header{"Content-Type": []string{"image/png"}},
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

func newRelayFixture(t *testing.T, fetcher *fakeFetcher) *RelayService {
	t.Helper()

	store := kv.NewMemoryStore()
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	seedCatalog(t, store, models.Catalog{
		{
			ID:       "7f3a9c",
			Filename: "cat.png",
			Variants: []string{
				"https://cdn.example.com/7f3a9c/public",
				"https://cdn.example.com/7f3a9c/thumbnail",
			},
		},
	}, now.Add(-time.Hour))

	log := logger.New("error", "text")
	catalog := NewCatalogService(&fakeSource{}, store, ExpiryPolicy{TTL: 24 * time.Hour}, 100, log)
	catalog.now = func() time.Time { return now }

	return NewRelayService(catalog, fetcher, log)
}

// TestRelayFetch verifies the resolve-then-fetch chain
func TestRelayFetch(t *testing.T) {
	fetcher := &fakeFetcher{resp: imageResponse(http.StatusOK, "png-bytes")}
	relay := newRelayFixture(t, fetcher)

	entry, resp, err := relay.Fetch(context.Background(), "cat", "")
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	defer resp.Body.Close()

	if entry.Filename != "cat.png" {
		t.Errorf("expected cat.png entry, got %q", entry.Filename)
	}
	if fetcher.gotURL != "https://cdn.example.com/7f3a9c/public" {
		t.Errorf("default variant should fetch the public url, got %s", fetcher.gotURL)
	}
	body, _ := io.ReadAll(resp.Body)
	if string(body) != "png-bytes" {
		t.Errorf("body should pass through, got %q", string(body))
	}
}

// TestRelayFetch_NamedVariant verifies variant selection reaches the fetcher
func TestRelayFetch_NamedVariant(t *testing.T) {
	fetcher := &fakeFetcher{resp: imageResponse(http.StatusOK, "thumb-bytes")}
	relay := newRelayFixture(t, fetcher)

	_, resp, err := relay.Fetch(context.Background(), "cat.png", "thumbnail")
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	resp.Body.Close()

	if fetcher.gotURL != "https://cdn.example.com/7f3a9c/thumbnail" {
		t.Errorf("expected thumbnail url, got %s", fetcher.gotURL)
	}
}

// TestRelayFetch_UnknownImage verifies the miss short-circuits the fetch
func TestRelayFetch_UnknownImage(t *testing.T) {
	fetcher := &fakeFetcher{resp: imageResponse(http.StatusOK, "")}
	relay := newRelayFixture(t, fetcher)

	_, _, err := relay.Fetch(context.Background(), "zebra", "")
	if !eyeerr.IsNotFound(err) {
		t.Errorf("expected not-found kind, got %v", err)
	}
	if fetcher.calls != 0 {
		t.Errorf("unknown image must not reach the fetcher")
	}
}

// TestRelayFetch_UnknownVariant verifies variant misses short-circuit too
func TestRelayFetch_UnknownVariant(t *testing.T) {
	fetcher := &fakeFetcher{resp: imageResponse(http.StatusOK, "")}
	relay := newRelayFixture(t, fetcher)

	_, _, err := relay.Fetch(context.Background(), "cat", "hero")
	if !eyeerr.IsNotFound(err) {
		t.Errorf("expected not-found kind, got %v", err)
	}
	if err == nil || !strings.Contains(err.Error(), "Variant not found") {
		t.Errorf("message should name the variant miss, got %v", err)
	}
	if fetcher.calls != 0 {
		t.Errorf("unknown variant must not reach the fetcher")
	}
}

// TestRelayFetch_UpstreamStatusPassesThrough verifies non-2xx upstream
// responses come back as responses, not errors
func TestRelayFetch_UpstreamStatusPassesThrough(t *testing.T) {
	fetcher := &fakeFetcher{resp: imageResponse(http.StatusNotFound, "no such variant upstream")}
	relay := newRelayFixture(t, fetcher)

	_, resp, err := relay.Fetch(context.Background(), "cat", "")
	if err != nil {
		t.Fatalf("upstream status must pass through, got error %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("expected 404 pass-through, got %d", resp.StatusCode)
	}
}

// TestRelayFetch_TransportFailure verifies transport errors surface as upstream kind
func TestRelayFetch_TransportFailure(t *testing.T) {
	fetcher := &fakeFetcher{err: eyeerr.New(eyeerr.Upstream, "failed to fetch variant: dial tcp: refused")}
	relay := newRelayFixture(t, fetcher)

	_, _, err := relay.Fetch(context.Background(), "cat", "")
	if !eyeerr.IsUpstream(err) {
		t.Errorf("expected upstream kind, got %v", err)
	}
}
