package clients

import (
	"context"
	"io"
	"net/http"

	"github.com/google/uuid"
)

// Logger is the logging surface the clients need.
type Logger interface {
	Info(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
	Warn(msg string, keysAndValues ...interface{})
	Debug(msg string, keysAndValues ...interface{})
}

// HTTPClient wraps http.Client so every outbound request carries the
// correlation metadata found in the request context.
type HTTPClient struct {
	client *http.Client
	logger Logger
}

// NewHTTPClient wraps the given client. The underlying client supplies the
// timeout; one shared instance serves both the list and relay paths.
func NewHTTPClient(client *http.Client, logger Logger) *HTTPClient {
	return &HTTPClient{
		client: client,
		logger: logger,
	}
}

// DoRequest builds and executes a request on the wrapped client.
func (c *HTTPClient) DoRequest(ctx context.Context, method, url string, body io.Reader) (*http.Response, error) {
	return c.DoRequestWithHeaders(ctx, method, url, body, nil)
}

// DoRequestWithHeaders is DoRequest with extra request headers (auth tokens
// and the like) set before the context metadata.
func (c *HTTPClient) DoRequestWithHeaders(ctx context.Context, method, url string, body io.Reader, headers map[string]string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, err
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	// Propagate the inbound request ID, or mint one so upstream logs
	// can always be correlated.
	if requestID, ok := GetRequestID(ctx); ok {
		req.Header.Set("X-Request-ID", requestID)
		c.logger.Debug("added X-Request-ID header from context", "request_id", requestID)
	} else {
		req.Header.Set("X-Request-ID", uuid.NewString())
	}

	return c.client.Do(req)
}
