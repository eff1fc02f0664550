package session

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"cookbook/config"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig() *config.Config {
	return &config.Config{
		Session: &config.SessionConfig{
			CookieName: "cookbook_session",
			Secret:     "test-secret",
			MaxAge:     3600,
			SameSite:   "strict",
		},
	}
}

// serve runs handler behind the session middleware and returns the recorded response.
func serve(t *testing.T, m Manager, handler echo.HandlerFunc, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	e.Use(m.Middleware())
	e.GET("/", handler)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestNewCookieManager_RequiresSecret(t *testing.T) {
	_, err := NewCookieManager(&config.Config{Session: &config.SessionConfig{Secret: "  "}})
	assert.Error(t, err)

	_, err = NewCookieManager(&config.Config{})
	assert.Error(t, err)
}

func TestCookieManager_RoundTrip(t *testing.T) {
	m, err := NewCookieManager(newTestConfig())
	require.NoError(t, err)

	rec := serve(t, m, func(c echo.Context) error {
		_, ok := m.UserID(c)
		assert.False(t, ok)

		return m.Establish(c, 7)
	})
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "cookbook_session", cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)
	assert.Equal(t, http.SameSiteStrictMode, cookies[0].SameSite)

	var got int64
	serve(t, m, func(c echo.Context) error {
		var ok bool
		got, ok = m.UserID(c)
		assert.True(t, ok)

		return nil
	}, cookies[0])
	assert.Equal(t, int64(7), got)
}

func TestCookieManager_Clear(t *testing.T) {
	m, err := NewCookieManager(newTestConfig())
	require.NoError(t, err)

	rec := serve(t, m, func(c echo.Context) error { return m.Establish(c, 7) })
	established := rec.Result().Cookies()[0]

	rec = serve(t, m, func(c echo.Context) error { return m.Clear(c) }, established)
	cleared := rec.Result().Cookies()
	require.Len(t, cleared, 1)
	assert.Negative(t, cleared[0].MaxAge)

	serve(t, m, func(c echo.Context) error {
		_, ok := m.UserID(c)
		assert.False(t, ok)

		return nil
	}, cleared[0])
}

func TestCookieManager_RejectsForeignSignature(t *testing.T) {
	m, err := NewCookieManager(newTestConfig())
	require.NoError(t, err)

	otherCfg := newTestConfig()
	otherCfg.Session.Secret = "another-secret"
	other, err := NewCookieManager(otherCfg)
	require.NoError(t, err)

	rec := serve(t, other, func(c echo.Context) error { return other.Establish(c, 7) })
	forged := rec.Result().Cookies()[0]

	serve(t, m, func(c echo.Context) error {
		_, ok := m.UserID(c)
		assert.False(t, ok)

		return nil
	}, forged)
}

func TestParseSameSite(t *testing.T) {
	assert.Equal(t, http.SameSiteLaxMode, parseSameSite(""))
	assert.Equal(t, http.SameSiteLaxMode, parseSameSite("lax"))
	assert.Equal(t, http.SameSiteStrictMode, parseSameSite("Strict"))
	assert.Equal(t, http.SameSiteNoneMode, parseSameSite("none"))
}
