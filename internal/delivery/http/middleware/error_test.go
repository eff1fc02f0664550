package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "cookbook/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func handle(err error) *httptest.ResponseRecorder {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	NewErrorMiddleware(newDiscardLogger()).HandleHTTPError(err, c)

	return rec
}

func TestHandleHTTPError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		body   string
	}{
		{
			name:   "wrapped app error",
			err:    errors.Wrap(domainerrors.ErrDuplicateTitle, "create recipe failed"),
			status: http.StatusUnprocessableEntity,
			body:   `{"error":"Recipe with this title already exists.","code":"DUPLICATE_TITLE"}`,
		},
		{
			name:   "bad request keeps underlying text",
			err:    domainerrors.NewBadRequestError(errors.Wrap(errors.New("value too long"), "failed to create user")),
			status: http.StatusBadRequest,
			body:   `{"error":"value too long","code":"BAD_REQUEST"}`,
		},
		{
			name:   "echo http error",
			err:    echo.ErrMethodNotAllowed,
			status: http.StatusMethodNotAllowed,
			body:   `{"error":"Method Not Allowed","code":"HTTP_ERROR"}`,
		},
		{
			name:   "unknown error is masked",
			err:    errors.New("dial tcp: connection refused"),
			status: http.StatusInternalServerError,
			body:   `{"error":"Internal server error, please try again later","code":"INTERNAL_ERROR"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := handle(tt.err)

			assert.Equal(t, tt.status, rec.Code)
			assert.JSONEq(t, tt.body, rec.Body.String())
		})
	}
}

func TestHandleHTTPError_CommittedResponse(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	_ = c.NoContent(http.StatusNoContent)

	NewErrorMiddleware(newDiscardLogger()).HandleHTTPError(domainerrors.ErrUnauthorized, c)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}
