package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tycrek/eye/cmd/eye/service"
	"github.com/tycrek/eye/common/logger"
)

// LookupHandler handles catalog lookup requests
type LookupHandler struct {
	catalog *service.CatalogService
	log     *logger.Logger
}

// NewLookupHandler creates a new lookup handler
func NewLookupHandler(catalog *service.CatalogService, log *logger.Logger) *LookupHandler {
	return &LookupHandler{
		catalog: catalog,
		log:     log,
	}
}

// Lookup resolves a needle to its catalog entry
// GET /lookup/:needle
func (h *LookupHandler) Lookup(c echo.Context) error {
	needle := c.Param("needle")

	entry, err := h.catalog.Lookup(requestContext(c), needle)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, entry)
}
