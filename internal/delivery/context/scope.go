// Package context carries request-scoped values between the HTTP layer and the usecases.
package context

import (
	"context"
	"log/slog"
)

type scopeKey int

const (
	requestIDKey scopeKey = iota
	loggerKey
	sessionUserIDKey
)

// WithRequestScope stores the request ID and a logger tagged with it.
func WithRequestScope(ctx context.Context, requestID string, base *slog.Logger) context.Context {
	ctx = context.WithValue(ctx, requestIDKey, requestID)

	return WithLogger(ctx, base.With(slog.String("request_id", requestID)))
}

// RequestID returns the ID of the request ctx belongs to, or "".
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)

	return id
}

// WithLogger replaces the request logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// RequestLogger reports the logger set for the request, if any.
func RequestLogger(ctx context.Context) (*slog.Logger, bool) {
	logger, ok := ctx.Value(loggerKey).(*slog.Logger)

	return logger, ok && logger != nil
}

// LoggerFrom returns the request logger, or fallback outside a request.
func LoggerFrom(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := RequestLogger(ctx); ok {
		return logger
	}

	return fallback
}
