package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

// RateLimit admits perMinute requests through a shared token bucket, with
// the full minute available as burst. Excess requests are rejected with a
// 429 through the service error boundary.
func RateLimit(perMinute int) echo.MiddlewareFunc {
	limiter := rate.NewLimiter(rate.Limit(perMinute)/60, perMinute)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !limiter.Allow() {
				return echo.NewHTTPError(http.StatusTooManyRequests,
					"Rate limit exceeded, try again later")
			}
			return next(c)
		}
	}
}
