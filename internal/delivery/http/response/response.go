// Package response writes JSON bodies in the shapes the API promises.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"` // User-facing message
	Code  string `json:"code"`  // Machine-readable error code, e.g. "DUPLICATE_USERNAME"
}

// Success writes data as the whole response body.
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, data)
}

// NoContent writes an empty 204.
func NoContent(c echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}

// Error returns an error response
func Error(c echo.Context, statusCode int, errorCode, message string) error {
	if c.Request().Method == http.MethodHead {
		return c.NoContent(statusCode)
	}

	return c.JSON(statusCode, ErrorResponse{
		Error: message,
		Code:  errorCode,
	})
}

// InternalServerError returns a 500 error
func InternalServerError(c echo.Context, errorCode, message string) error {
	return Error(c, http.StatusInternalServerError, errorCode, message)
}
