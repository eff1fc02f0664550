// Package session keeps the authenticated user's ID in a signed cookie.
package session

import (
	"net/http"
	"strings"

	"cookbook/config"

	"github.com/gorilla/sessions"
	echosession "github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const userIDKey = "user_id"

// Manager reads and writes the user ID held by the session cookie.
type Manager interface {
	// Middleware attaches the cookie store to every request.
	Middleware() echo.MiddlewareFunc

	// UserID returns the session's user ID, if any.
	UserID(c echo.Context) (int64, bool)

	// Establish binds the session to userID and writes the cookie.
	Establish(c echo.Context, userID int64) error

	// Clear drops the user ID and expires the cookie.
	Clear(c echo.Context) error
}

type cookieManager struct {
	store sessions.Store
	name  string
}

// NewCookieManager builds a Manager on a gorilla CookieStore signed with session.secret.
func NewCookieManager(cfg *config.Config) (Manager, error) {
	if cfg.Session == nil || strings.TrimSpace(cfg.Session.Secret) == "" {
		return nil, errors.New("session secret is not configured")
	}

	store := sessions.NewCookieStore([]byte(cfg.Session.Secret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   cfg.Session.MaxAge,
		HttpOnly: true,
		Secure:   cfg.Session.Secure,
		SameSite: parseSameSite(cfg.Session.SameSite),
	}
	// Keeps the codec's timestamp check in step with the cookie lifetime.
	store.MaxAge(cfg.Session.MaxAge)

	return &cookieManager{store: store, name: cfg.Session.CookieName}, nil
}

func (m *cookieManager) Middleware() echo.MiddlewareFunc {
	return echosession.Middleware(m.store)
}

func (m *cookieManager) UserID(c echo.Context) (int64, bool) {
	sess, err := echosession.Get(m.name, c)
	if err != nil {
		// A cookie that fails verification is treated as no session.
		return 0, false
	}

	userID, ok := sess.Values[userIDKey].(int64)
	if !ok || userID <= 0 {
		return 0, false
	}

	return userID, true
}

func (m *cookieManager) Establish(c echo.Context, userID int64) error {
	sess, err := echosession.Get(m.name, c)
	if err != nil && sess == nil {
		return errors.Wrap(err, "failed to load session")
	}

	sess.Values[userIDKey] = userID

	return errors.Wrap(sess.Save(c.Request(), c.Response()), "failed to save session")
}

func (m *cookieManager) Clear(c echo.Context) error {
	sess, err := echosession.Get(m.name, c)
	if err != nil && sess == nil {
		return errors.Wrap(err, "failed to load session")
	}

	delete(sess.Values, userIDKey)
	sess.Options.MaxAge = -1

	return errors.Wrap(sess.Save(c.Request(), c.Response()), "failed to save session")
}

func parseSameSite(mode string) http.SameSite {
	switch strings.ToLower(mode) {
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
