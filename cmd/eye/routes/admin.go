package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/tycrek/eye/cmd/eye/container"
	"github.com/tycrek/eye/cmd/eye/handlers"
	"github.com/tycrek/eye/common/middleware"
)

// RegisterAdminRoutes registers cache administration routes
func RegisterAdminRoutes(e *echo.Echo, c *container.Container) {
	// Create handler with dependencies
	h := handlers.NewAdminHandler(c.Catalog, c.Components.Logger)

	// Every allowed expiry can trigger a full upstream refetch.
	limit := middleware.RateLimit(c.Components.Config.Cache.ExpireLimit)

	e.GET("/expire-cache", h.ExpireCache, limit) // GET /expire-cache?purge=1
}
