package service

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	eyeerr "github.com/tycrek/eye/common/errors"
	"github.com/tycrek/eye/common/kv"
	"github.com/tycrek/eye/common/logger"
	"github.com/tycrek/eye/common/models"
)

// DefaultVariant is served when a request names no variant
const DefaultVariant = "public"

// persistTimeout bounds the background write of a refreshed catalog
const persistTimeout = 10 * time.Second

// extensionSuffix matches a trailing file extension on a lookup needle
var extensionSuffix = regexp.MustCompile(`\.[A-Za-z]+$`)

// CatalogSource lists pages of the hosted image catalog
type CatalogSource interface {
	ListPage(ctx context.Context, page, perPage int) ([]models.Image, error)
}

// CatalogService handles catalog refresh, lookup and expiry. All state
// lives in the cache store; concurrent requests share nothing in-process,
// so racing refreshes simply overwrite each other whole.
type CatalogService struct {
	source    CatalogSource
	store     kv.Store
	policy    ExpiryPolicy
	batchSize int
	log       *logger.Logger

	now      func() time.Time
	persists sync.WaitGroup
}

// NewCatalogService creates a new catalog service
func NewCatalogService(source CatalogSource, store kv.Store, policy ExpiryPolicy, batchSize int, log *logger.Logger) *CatalogService {
	return &CatalogService{
		source:    source,
		store:     store,
		policy:    policy,
		batchSize: batchSize,
		log:       log,
		now:       time.Now,
	}
}

// Refresh fetches the full catalog from the source and returns it, kicking
// off persistence in the background so the caller never waits on the store.
// Pages are fetched until one comes back short of the batch size; a catalog
// ending exactly on a page boundary costs one extra empty-page request.
// Any page failure aborts the whole refresh.
func (s *CatalogService) Refresh(ctx context.Context) (models.Catalog, error) {
	catalog := make(models.Catalog, 0, s.batchSize)

	for page := 1; ; page++ {
		batch, err := s.source.ListPage(ctx, page, s.batchSize)
		if err != nil {
			return nil, fmt.Errorf("failed to refresh catalog: %w", err)
		}

		catalog = append(catalog, batch...)

		if len(batch) < s.batchSize {
			break
		}
	}

	s.log.Info("refreshed catalog", "images", len(catalog))

	s.persists.Add(1)
	go s.persist(catalog)

	return catalog, nil
}

// persist writes the catalog JSON and the fetch timestamp. It runs detached
// from the request so a client disconnect cannot abort the write; failures
// are logged and never surfaced to the request that triggered the refresh.
func (s *CatalogService) persist(catalog models.Catalog) {
	defer s.persists.Done()

	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()

	payload, err := json.Marshal(catalog)
	if err != nil {
		s.log.Error("failed to marshal catalog for persistence", "error", err)
		return
	}

	fetchedAt := s.now().UTC().Format(time.RFC3339)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return s.store.Put(gctx, kv.KeyImages, string(payload))
	})
	g.Go(func() error {
		return s.store.Put(gctx, kv.KeyLastCached, fetchedAt)
	})

	if err := g.Wait(); err != nil {
		s.log.Error("failed to persist catalog", "error", err, "images", len(catalog))
		return
	}

	s.log.Debug("persisted catalog", "images", len(catalog), "last_cached", fetchedAt)
}

// Close waits for in-flight persistence writes to finish
func (s *CatalogService) Close() error {
	s.persists.Wait()
	return nil
}

// Lookup resolves a needle to a catalog entry. The needle has any file
// extension stripped, then the catalog is scanned once in order: an entry
// matches if its filename or its id starts with the needle, and the first
// match wins. Entry order follows the upstream listing, so which duplicate
// wins may change across refreshes.
func (s *CatalogService) Lookup(ctx context.Context, needle string) (models.Image, error) {
	catalog, err := s.current(ctx)
	if err != nil {
		return models.Image{}, err
	}

	stripped := extensionSuffix.ReplaceAllString(needle, "")
	for _, img := range catalog {
		if img.MatchesNeedle(stripped) {
			return img, nil
		}
	}

	return models.Image{}, eyeerr.Newf(eyeerr.NotFound, "Image not found: %s", needle)
}

// ResolveVariant picks the delivery URL for the requested variant, matching
// the variant name as a suffix of the URL. Empty means the default variant.
func (s *CatalogService) ResolveVariant(entry models.Image, variant string) (string, error) {
	if variant == "" {
		variant = DefaultVariant
	}

	for _, url := range entry.Variants {
		if strings.HasSuffix(url, variant) {
			return url, nil
		}
	}

	return "", eyeerr.Newf(eyeerr.NotFound, "Variant not found: %s", variant)
}

// Expire drops the freshness timestamp so the next lookup refetches.
// With purge the cached catalog itself is dropped too.
func (s *CatalogService) Expire(ctx context.Context, purge bool) error {
	keys := []string{kv.KeyLastCached}
	if purge {
		keys = append(keys, kv.KeyImages)
	}

	if err := s.store.Delete(ctx, keys...); err != nil {
		return fmt.Errorf("failed to expire cache: %w", err)
	}

	s.log.Info("expired catalog cache", "purged", purge)
	return nil
}

// current returns the cached catalog, refreshing when the timestamp is
// absent or beyond the TTL, when the catalog key is missing, or when the
// cached JSON no longer parses.
func (s *CatalogService) current(ctx context.Context) (models.Catalog, error) {
	lastCached, err := s.lastCached(ctx)
	if err != nil {
		return nil, err
	}

	if s.policy.Expired(lastCached, s.now()) {
		return s.Refresh(ctx)
	}

	raw, found, err := s.store.Get(ctx, kv.KeyImages)
	if err != nil {
		return nil, eyeerr.Wrap(eyeerr.CacheRead, err, "failed to read cached catalog")
	}
	if !found {
		// Fresh timestamp but no catalog: someone expired halfway
		return s.Refresh(ctx)
	}

	var catalog models.Catalog
	if err := json.Unmarshal([]byte(raw), &catalog); err != nil {
		s.log.Warn("cached catalog is corrupt, refreshing", "error", err)
		return s.Refresh(ctx)
	}

	return catalog, nil
}

// lastCached reads the refresh timestamp. Absent and unparsable values
// both mean never-cached; only a store failure is an error.
func (s *CatalogService) lastCached(ctx context.Context) (*time.Time, error) {
	raw, found, err := s.store.Get(ctx, kv.KeyLastCached)
	if err != nil {
		return nil, eyeerr.Wrap(eyeerr.CacheRead, err, "failed to read last cached timestamp")
	}
	if !found {
		return nil, nil
	}

	ts, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		s.log.Warn("unparsable last cached timestamp, treating as never cached", "value", raw, "error", err)
		return nil, nil
	}

	return &ts, nil
}
