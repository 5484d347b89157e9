package handlers

import (
	stderrors "errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	eyeerr "github.com/tycrek/eye/common/errors"
	"github.com/tycrek/eye/common/logger"
)

// NewHTTPErrorHandler maps error kinds to plain-text responses: lookup and
// variant misses become 404s, everything else a 500. Bodies carry the error
// message so callers see what failed without a JSON envelope.
func NewHTTPErrorHandler(log *logger.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status := http.StatusInternalServerError
		msg := err.Error()

		var httpErr *echo.HTTPError
		switch {
		case eyeerr.IsNotFound(err):
			status = http.StatusNotFound
		case stderrors.As(err, &httpErr):
			// Router-level errors (unknown route, method not allowed)
			status = httpErr.Code
			msg = fmt.Sprintf("%v", httpErr.Message)
		}

		if status >= http.StatusInternalServerError {
			log.Error("request failed",
				"status", status,
				"path", c.Request().URL.Path,
				"error", err,
			)
		} else {
			log.Warn("request rejected",
				"status", status,
				"path", c.Request().URL.Path,
				"error", err,
			)
		}

		if writeErr := c.String(status, msg); writeErr != nil {
			log.Error("failed to write error response", "error", writeErr)
		}
	}
}
