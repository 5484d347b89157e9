package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	eyeerr "github.com/tycrek/eye/common/errors"
	"github.com/tycrek/eye/common/models"
)

// ImagesClient handles communication with the hosted image service API.
// Credentials are resolved per call so they can come from the environment
// or from the cache store without rebuilding the client.
type ImagesClient struct {
	apiBase string
	creds   CredentialsProvider
	limiter *rate.Limiter
	http    *HTTPClient
	logger  Logger
}

// NewImagesClient creates a new image service client. requestsPerSecond
// bounds how fast catalog pages are requested; zero or negative disables
// the pacing.
func NewImagesClient(apiBase string, creds CredentialsProvider, requestsPerSecond float64, timeout time.Duration, logger Logger) *ImagesClient {
	limit := rate.Inf
	if requestsPerSecond > 0 {
		limit = rate.Limit(requestsPerSecond)
	}

	httpClient := &http.Client{
		Timeout: timeout,
	}

	return &ImagesClient{
		apiBase: apiBase,
		creds:   creds,
		limiter: rate.NewLimiter(limit, 1),
		http:    NewHTTPClient(httpClient, logger),
		logger:  logger,
	}
}

// ListPage fetches one page of the image catalog. Pages are 1-based.
// Transport failures, non-2xx responses and undecodable payloads all
// surface as upstream-kind errors; no retries happen here.
func (c *ImagesClient) ListPage(ctx context.Context, page, perPage int) ([]models.Image, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, eyeerr.Wrap(eyeerr.Upstream, err, fmt.Sprintf("rate wait aborted for page %d", page))
	}

	creds, err := c.creds.Credentials(ctx)
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/accounts/%s/images/v1?page=%d&per_page=%d", c.apiBase, creds.AccountID, page, perPage)
	headers := map[string]string{
		"Authorization": "Bearer " + creds.APIKey,
	}

	resp, err := c.http.DoRequestWithHeaders(ctx, "GET", url, nil, headers)
	if err != nil {
		return nil, eyeerr.Wrap(eyeerr.Upstream, err, fmt.Sprintf("failed to fetch images page %d", page))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		return nil, eyeerr.Newf(eyeerr.Upstream, "images list request failed: status=%d, body=%s", resp.StatusCode, string(body))
	}

	var listResponse struct {
		Result struct {
			Images []models.Image `json:"images"`
		} `json:"result"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&listResponse); err != nil {
		return nil, eyeerr.Wrap(eyeerr.Upstream, err, "failed to decode images list response")
	}

	c.logger.Debug("fetched images page", "page", page, "count", len(listResponse.Result.Images))

	return listResponse.Result.Images, nil
}

// FetchVariant performs the pass-through GET of a variant delivery URL.
// The caller owns the response body. Non-2xx responses are returned as-is
// so the relay can re-emit both status and body.
func (c *ImagesClient) FetchVariant(ctx context.Context, variantURL string) (*http.Response, error) {
	resp, err := c.http.DoRequest(ctx, "GET", variantURL, nil)
	if err != nil {
		return nil, eyeerr.Wrap(eyeerr.Upstream, err, "failed to fetch variant")
	}
	return resp, nil
}
