package entity

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"testing"

	mockSvc "cookbook/internal/mocks/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUser_SetPasswordAndAuthenticate(t *testing.T) {
	hasher := mockSvc.NewMockPasswordHasher(t)
	hasher.EXPECT().Hash("pw123").Return("$2a$04$hash", nil)
	hasher.EXPECT().Check("pw123", "$2a$04$hash").Return(true)
	hasher.EXPECT().Check("nope", "$2a$04$hash").Return(false)

	user, err := NewUser("ana", "", "")
	require.NoError(t, err)
	require.NoError(t, user.SetPassword(hasher, "pw123"))

	assert.False(t, user.PasswordDigest().IsZero())
	assert.True(t, user.Authenticate(hasher, "pw123"))
	assert.False(t, user.Authenticate(hasher, "nope"))
}

func TestUser_SetPasswordFailure(t *testing.T) {
	hasher := mockSvc.NewMockPasswordHasher(t)
	hasher.EXPECT().Hash("pw123").Return("", errors.New("boom"))

	user, err := NewUser("ana", "", "")
	require.NoError(t, err)

	assert.Error(t, user.SetPassword(hasher, "pw123"))
	assert.True(t, user.PasswordDigest().IsZero())
}

func TestUser_AuthenticateWithoutDigest(t *testing.T) {
	hasher := mockSvc.NewMockPasswordHasher(t)

	user, err := NewUser("ana", "", "")
	require.NoError(t, err)

	assert.False(t, user.Authenticate(hasher, "anything"))
}

func TestDigest_NeverRevealsHash(t *testing.T) {
	var digest Digest
	require.NoError(t, digest.Scan([]byte("$2a$04$secret")))
	user := RestoreUser(1, "ana", digest, "", "")

	assert.Equal(t, "[REDACTED]", digest.String())
	assert.NotContains(t, fmt.Sprintf("%v %+v %#v", user, user, user), "secret")

	var logs strings.Builder
	slog.New(slog.NewTextHandler(&logs, nil)).Info("user", slog.Any("digest", digest))
	assert.NotContains(t, logs.String(), "secret")

	_, err := json.Marshal(user)
	assert.NoError(t, err, "unexported digest is skipped by encoding/json")
	_, err = json.Marshal(digest)
	assert.ErrorIs(t, err, ErrDigestNotReadable)
}

func TestDigest_DriverRoundTrip(t *testing.T) {
	var digest Digest
	require.NoError(t, digest.Scan("$2a$04$hash"))

	value, err := digest.Value()
	require.NoError(t, err)
	assert.Equal(t, "$2a$04$hash", value)

	_, err = Digest{}.Value()
	assert.ErrorIs(t, err, ErrEmptyDigest)

	assert.Error(t, digest.Scan(42))
	require.NoError(t, digest.Scan(nil))
	assert.True(t, digest.IsZero())
}
