// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"strings"

	"cookbook/internal/domain/service"

	"github.com/pkg/errors"
)

// User is an account that owns recipes. Its password is only ever held as a Digest.
type User struct {
	ID       int64     // Store-generated identifier.
	Username string    // Unique login name, never blank.
	Bio      string    // Optional free-form biography.
	ImageURL string    // Optional avatar URL.
	Recipes  []*Recipe // Recipes owned by this user. Nil when not loaded.

	passwordDigest Digest
}

// NewUser builds a user after running the field validators. The password must be set
// separately through SetPassword before the user can be persisted.
func NewUser(username, bio, imageURL string) (*User, error) {
	if strings.TrimSpace(username) == "" {
		return nil, newValidationError("username", "Username is required.")
	}

	return &User{
		Username: username,
		Bio:      bio,
		ImageURL: imageURL,
		Recipes:  []*Recipe{},
	}, nil
}

// RestoreUser rebuilds a persisted user. Validation and hashing are not re-run.
func RestoreUser(id int64, username string, digest Digest, bio, imageURL string) *User {
	return &User{
		ID:             id,
		Username:       username,
		Bio:            bio,
		ImageURL:       imageURL,
		passwordDigest: digest,
	}
}

// SetPassword hashes plaintext immediately; the plaintext is not retained.
func (u *User) SetPassword(hasher service.PasswordHasher, plaintext string) error {
	hash, err := hasher.Hash(plaintext)
	if err != nil {
		return errors.Wrap(err, "failed to hash password")
	}
	u.passwordDigest = newDigest(hash)

	return nil
}

// Authenticate reports whether plaintext matches the stored digest.
func (u *User) Authenticate(hasher service.PasswordHasher, plaintext string) bool {
	return u.passwordDigest.Verify(hasher, plaintext)
}

// PasswordDigest returns the opaque digest for persistence mappers. The hash itself
// only leaves the value through driver.Valuer.
func (u *User) PasswordDigest() Digest {
	return u.passwordDigest
}
