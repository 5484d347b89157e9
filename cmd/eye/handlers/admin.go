package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tycrek/eye/cmd/eye/service"
	"github.com/tycrek/eye/common/logger"
)

// AdminHandler handles cache administration requests
type AdminHandler struct {
	catalog *service.CatalogService
	log     *logger.Logger
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(catalog *service.CatalogService, log *logger.Logger) *AdminHandler {
	return &AdminHandler{
		catalog: catalog,
		log:     log,
	}
}

// ExpireCache forces the next lookup to refetch the catalog. With ?purge=1
// the cached catalog is dropped as well.
// GET /expire-cache
func (h *AdminHandler) ExpireCache(c echo.Context) error {
	purge := c.QueryParam("purge") == "1"

	if err := h.catalog.Expire(requestContext(c), purge); err != nil {
		return err
	}

	if purge {
		return c.String(http.StatusOK, "cache expired and purged")
	}
	return c.String(http.StatusOK, "cache expired")
}
