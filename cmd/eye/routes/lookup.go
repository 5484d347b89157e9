package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/tycrek/eye/cmd/eye/container"
	"github.com/tycrek/eye/cmd/eye/handlers"
)

// RegisterLookupRoutes registers catalog lookup routes
func RegisterLookupRoutes(e *echo.Echo, c *container.Container) {
	// Create handler with dependencies
	h := handlers.NewLookupHandler(c.Catalog, c.Components.Logger)

	e.GET("/lookup/:needle", h.Lookup) // GET /lookup/cat.png
}
