package errors

import (
	"net/http"

	"github.com/pkg/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-facing error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-facing error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// Predefined error types
var (
	// Input errors
	ErrInvalidInput = NewBaseError(
		http.StatusUnprocessableEntity,
		"INVALID_INPUT",
		"Invalid input",
		"",
	)

	// Login rejects missing fields with 400 rather than 422.
	ErrInvalidLoginInput = NewBaseError(
		http.StatusBadRequest,
		"INVALID_INPUT",
		"Invalid input",
		"",
	)

	ErrInvalidRequestBody = NewBaseError(
		http.StatusBadRequest,
		"INVALID_REQUEST_BODY",
		"Invalid request body",
		"",
	)

	ErrInstructionsTooShort = NewBaseError(
		http.StatusUnprocessableEntity,
		"INSTRUCTIONS_TOO_SHORT",
		"Instructions must be at least 50 characters long.",
		"",
	)

	// Conflict errors
	ErrDuplicateUsername = NewBaseError(
		http.StatusUnprocessableEntity,
		"DUPLICATE_USERNAME",
		"Username already exists.",
		"",
	)

	ErrDuplicateTitle = NewBaseError(
		http.StatusUnprocessableEntity,
		"DUPLICATE_TITLE",
		"Recipe with this title already exists.",
		"",
	)

	// Authentication errors
	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Unauthorized",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Invalid credentials",
		"",
	)

	// Lookup errors
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User not found",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error, please try again later",
		"",
	)
)

// BadRequestError is the catch-all for persistence and validation failures that have no
// dedicated kind. Its message is the underlying error text.
type BadRequestError struct {
	err error
}

// NewBadRequestError wraps err as a 400 response carrying err's message verbatim
func NewBadRequestError(err error) AppError {
	return &BadRequestError{err: err}
}

// Error implements the error interface
func (e *BadRequestError) Error() string {
	return e.err.Error()
}

// Unwrap exposes the underlying error to errors.Is and errors.As
func (e *BadRequestError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *BadRequestError) HTTPCode() int {
	return http.StatusBadRequest
}

// ErrorCode returns the business error code
func (e *BadRequestError) ErrorCode() string {
	return "BAD_REQUEST"
}

// Message returns the underlying error text
func (e *BadRequestError) Message() string {
	return errors.Cause(e.err).Error()
}

// Details returns detailed error information
func (e *BadRequestError) Details() string {
	return e.err.Error()
}
