package handlers

import (
	"fmt"
	"io"

	"github.com/labstack/echo/v4"

	"github.com/tycrek/eye/cmd/eye/service"
	"github.com/tycrek/eye/common/logger"
)

// passthroughHeaders are copied from the upstream response when present
var passthroughHeaders = []string{"Content-Type", "Content-Length", "Cache-Control", "ETag"}

// RelayHandler handles image relay requests
type RelayHandler struct {
	relay *service.RelayService
	log   *logger.Logger
}

// NewRelayHandler creates a new relay handler
func NewRelayHandler(relay *service.RelayService, log *logger.Logger) *RelayHandler {
	return &RelayHandler{
		relay: relay,
		log:   log,
	}
}

// Relay serves an image variant through the custom domain
// GET /:image and GET /:image/:variant
func (h *RelayHandler) Relay(c echo.Context) error {
	needle := c.Param("image")
	variant := c.Param("variant")

	entry, resp, err := h.relay.Fetch(requestContext(c), needle, variant)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	// Re-emit what upstream said, status included, with the original
	// filename so browsers render inline instead of downloading
	header := c.Response().Header()
	for _, name := range passthroughHeaders {
		if v := resp.Header.Get(name); v != "" {
			header.Set(name, v)
		}
	}
	header.Set("Content-Disposition", fmt.Sprintf("inline; filename=%q", entry.Filename))

	c.Response().WriteHeader(resp.StatusCode)
	if _, err := io.Copy(c.Response(), resp.Body); err != nil {
		h.log.Warn("relay stream interrupted", "filename", entry.Filename, "error", err)
	}

	return nil
}
