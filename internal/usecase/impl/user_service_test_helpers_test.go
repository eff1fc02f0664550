package impl

import (
	"io"
	"log/slog"
	"strings"
	"testing"

	"cookbook/internal/domain/entity"

	"github.com/stretchr/testify/require"
)

const (
	testDigest      = "$2a$04$digest"
	testDummyDigest = "$2a$04$dummy"
)

var validInstructions = strings.Repeat("a", entity.MinInstructionsLength)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newStoredUser returns a user as the repository would load it.
func newStoredUser(t *testing.T, id int64, username string) *entity.User {
	t.Helper()

	var digest entity.Digest
	require.NoError(t, digest.Scan(testDigest))

	user := entity.RestoreUser(id, username, digest, "", "")
	user.Recipes = []*entity.Recipe{}

	return user
}

func intPtr(v int) *int {
	return &v
}
