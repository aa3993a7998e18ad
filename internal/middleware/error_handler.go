package middleware

import (
	"net/http"

	"laptopMart/pkg/logger"

	jsonres "laptopMart/pkg/response"

	"github.com/labstack/echo/v4"
)

// ErrorHandler is the Echo fallback for errors no handler converted itself.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := "Internal server error"

	if he, ok := err.(*echo.HTTPError); ok {
		code = he.Code
		if msg, ok := he.Message.(string); ok {
			message = msg
		}
	}

	if code >= http.StatusInternalServerError {
		logger.Error("unhandled error", "path", c.Request().URL.Path, "error", err)
	}

	if err := c.JSON(code, jsonres.Error(http.StatusText(code), message, nil)); err != nil {
		logger.Error("failed to write error response", "error", err)
	}
}
