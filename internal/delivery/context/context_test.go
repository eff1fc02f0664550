package context

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSessionUserID(t *testing.T) {
	_, ok := SessionUserID(context.Background())
	assert.False(t, ok)

	_, ok = SessionUserID(WithSessionUserID(context.Background(), 0))
	assert.False(t, ok)

	userID, ok := SessionUserID(WithSessionUserID(context.Background(), 42))
	assert.True(t, ok)
	assert.Equal(t, int64(42), userID)
}

func TestLoggerFrom(t *testing.T) {
	fallback := slog.New(slog.NewTextHandler(io.Discard, nil))
	scoped := fallback.With(slog.String("user_id", "7"))

	assert.Same(t, fallback, LoggerFrom(context.Background(), fallback))
	assert.Same(t, scoped, LoggerFrom(WithLogger(context.Background(), scoped), fallback))

	_, ok := RequestLogger(WithLogger(context.Background(), nil))
	assert.False(t, ok)
}

func TestWithRequestScope(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewTextHandler(&buf, nil))

	ctx := WithRequestScope(context.Background(), "req-2", base)
	assert.Equal(t, "req-2", RequestID(ctx))
	assert.Empty(t, RequestID(context.Background()))

	LoggerFrom(ctx, nil).Info("hello")
	assert.Contains(t, buf.String(), "request_id=req-2")
}
