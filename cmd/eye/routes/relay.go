package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/tycrek/eye/cmd/eye/container"
	"github.com/tycrek/eye/cmd/eye/handlers"
)

// RegisterRelayRoutes registers the image relay routes. Static routes like
// /lookup and /expire-cache win over these params in echo's router, so the
// catch-all shape is safe.
func RegisterRelayRoutes(e *echo.Echo, c *container.Container) {
	// Create handler with dependencies
	h := handlers.NewRelayHandler(c.Relay, c.Components.Logger)

	e.GET("/:image", h.Relay)          // GET /cat.png
	e.GET("/:image/:variant", h.Relay) // GET /cat/thumbnail
}
