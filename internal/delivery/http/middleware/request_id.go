package middleware

import (
	"log/slog"

	deliverycontext "cookbook/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

// NewRequestScope keeps the caller's X-Request-Id or mints a UUID, echoes it back,
// and opens the request scope (ID plus tagged logger) on the request context.
func NewRequestScope(logger *slog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestIDWithConfig(echomiddleware.RequestIDConfig{
		Generator: uuid.NewString,
		RequestIDHandler: func(c echo.Context, requestID string) {
			ctx := deliverycontext.WithRequestScope(c.Request().Context(), requestID, logger)
			c.SetRequest(c.Request().WithContext(ctx))
		},
	})
}
