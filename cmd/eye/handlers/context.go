package handlers

import (
	"context"

	"github.com/labstack/echo/v4"

	"github.com/tycrek/eye/common/clients"
)

// requestContext carries the request ID assigned by the middleware into
// the context so outbound calls propagate it
func requestContext(c echo.Context) context.Context {
	ctx := c.Request().Context()
	if rid := c.Response().Header().Get(echo.HeaderXRequestID); rid != "" {
		ctx = clients.WithRequestID(ctx, rid)
	}
	return ctx
}
