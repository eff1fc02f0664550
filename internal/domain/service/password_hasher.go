// Package service defines interfaces for stateless domain logic that is backed by infrastructure.
package service

// PasswordHasher turns plaintext passwords into salted one-way digests and verifies them.
// Implementations must be safe for concurrent use.
type PasswordHasher interface {
	// Hash returns a salted digest of password.
	Hash(password string) (string, error)

	// Check reports whether password matches digest.
	Check(password, digest string) bool
}
