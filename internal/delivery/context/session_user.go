package context

import "context"

// WithSessionUserID returns a new context carrying the authenticated user's ID.
func WithSessionUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, sessionUserIDKey, userID)
}

// SessionUserID returns the authenticated user's ID placed by the auth middleware.
func SessionUserID(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(sessionUserIDKey).(int64)

	return userID, ok && userID > 0
}
