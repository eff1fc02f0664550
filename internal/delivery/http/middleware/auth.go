package middleware

import (
	"log/slog"

	deliverycontext "cookbook/internal/delivery/context"
	"cookbook/internal/delivery/http/session"
	domainerrors "cookbook/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthMiddleware rejects requests that carry no authenticated session.
type AuthMiddleware struct {
	sessions session.Manager
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(sessions session.Manager) *AuthMiddleware {
	return &AuthMiddleware{sessions: sessions}
}

// RequireSession answers 401 when the session has no user ID. Otherwise the ID is
// placed on the request context and the request logger is tagged with it.
func (m *AuthMiddleware) RequireSession(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, ok := m.sessions.UserID(c)
		if !ok {
			return errors.WithStack(domainerrors.ErrUnauthorized)
		}

		ctx := deliverycontext.WithSessionUserID(c.Request().Context(), userID)
		if logger, ok := deliverycontext.RequestLogger(ctx); ok {
			ctx = deliverycontext.WithLogger(ctx, logger.With(slog.Int64("user_id", userID)))
		}
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}
