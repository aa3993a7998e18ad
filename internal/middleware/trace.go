package middleware

import (
	"laptopMart/business/recommend"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// TraceMiddleware assigns every request a trace id, honoring an incoming
// X-Trace-ID header, and threads it through the request context.
func TraceMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			tid := c.Request().Header.Get("X-Trace-ID")
			if tid == "" {
				tid = uuid.NewString()
			}

			ctx := recommend.WithTraceID(c.Request().Context(), tid)
			c.SetRequest(c.Request().WithContext(ctx))
			c.Response().Header().Set("X-Trace-ID", tid)

			return next(c)
		}
	}
}
