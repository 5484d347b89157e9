package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/tycrek/eye/cmd/eye/container"
	"github.com/tycrek/eye/cmd/eye/handlers"
	"github.com/tycrek/eye/cmd/eye/routes"
	"github.com/tycrek/eye/common/bootstrap"
	"github.com/tycrek/eye/common/server"
)

func main() {
	// Local development overrides; absent in production
	_ = godotenv.Load(".env.local")

	ctx := context.Background()

	components, err := bootstrap.Setup(ctx, "eye")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to bootstrap eye: %v\n", err)
		os.Exit(1)
	}
	defer components.Shutdown(ctx)

	serviceContainer, err := container.NewContainer(components)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize service container: %v\n", err)
		os.Exit(1)
	}

	e := setupEcho(components)
	setupMiddleware(e)
	setupHealthCheck(e, components)
	registerRoutes(e, serviceContainer)

	srv := server.New("eye", components.Config.Service.Port, e, components.Logger)
	if err := srv.Start(); err != nil {
		components.Logger.Error("server error", "error", err)
	}
}

// setupEcho builds the echo instance with eye's error boundary installed.
func setupEcho(components *bootstrap.Components) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = handlers.NewHTTPErrorHandler(components.Logger)
	return e
}

func setupMiddleware(e *echo.Echo) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(middleware.RequestID())
}

// setupHealthCheck reports ok, or degraded when the cache store is down.
func setupHealthCheck(e *echo.Echo, components *bootstrap.Components) {
	e.GET("/health", func(c echo.Context) error {
		if err := components.Health(c.Request().Context()); err != nil {
			return c.JSON(503, map[string]string{
				"status":  "degraded",
				"service": "eye",
			})
		}
		return c.JSON(200, map[string]string{
			"status":  "ok",
			"service": "eye",
		})
	})
}

func registerRoutes(e *echo.Echo, serviceContainer *container.Container) {
	routes.RegisterLookupRoutes(e, serviceContainer)
	routes.RegisterAdminRoutes(e, serviceContainer)
	routes.RegisterRelayRoutes(e, serviceContainer)
}
