package service

import (
	"context"
	"net/http"

	"github.com/tycrek/eye/common/logger"
	"github.com/tycrek/eye/common/models"
)

// VariantFetcher performs the pass-through fetch of a variant delivery URL
type VariantFetcher interface {
	FetchVariant(ctx context.Context, variantURL string) (*http.Response, error)
}

// RelayService resolves a request to a delivery URL and fetches it.
// Upstream responses are handed back untouched, success or not, so the
// handler can re-emit exactly what the image service said.
type RelayService struct {
	catalog *CatalogService
	fetcher VariantFetcher
	log     *logger.Logger
}

// NewRelayService creates a new relay service
func NewRelayService(catalog *CatalogService, fetcher VariantFetcher, log *logger.Logger) *RelayService {
	return &RelayService{
		catalog: catalog,
		fetcher: fetcher,
		log:     log,
	}
}

// Fetch resolves needle and variant, then fetches the variant URL.
// The caller owns the response body.
func (s *RelayService) Fetch(ctx context.Context, needle, variant string) (models.Image, *http.Response, error) {
	entry, err := s.catalog.Lookup(ctx, needle)
	if err != nil {
		return models.Image{}, nil, err
	}

	url, err := s.catalog.ResolveVariant(entry, variant)
	if err != nil {
		return models.Image{}, nil, err
	}

	resp, err := s.fetcher.FetchVariant(ctx, url)
	if err != nil {
		return models.Image{}, nil, err
	}

	s.log.Debug("relaying image",
		"id", entry.ID,
		"filename", entry.Filename,
		"url", url,
		"status", resp.StatusCode,
	)

	return entry, resp, nil
}
