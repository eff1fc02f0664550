package entity

import (
	"database/sql/driver"
	"log/slog"

	"cookbook/internal/domain/service"

	"github.com/pkg/errors"
)

const redacted = "[REDACTED]"

var (
	// ErrDigestNotReadable is returned when something tries to serialize a password digest.
	ErrDigestNotReadable = errors.New("password digests may not be accessed directly")

	// ErrEmptyDigest is returned when a user without a password is written to storage.
	ErrEmptyDigest = errors.New("password digest is empty")
)

// Digest is the one-way hash of a password. It redacts itself in every output
// path except the database driver. The hash is held by pointer: fmt prints
// unexported fields without calling String.
type Digest struct {
	hash *string
}

func newDigest(hash string) Digest {
	if hash == "" {
		return Digest{}
	}

	return Digest{hash: &hash}
}

// IsZero reports whether no password has been set.
func (d Digest) IsZero() bool {
	return d.hash == nil
}

// Verify checks plaintext against the digest. An empty digest never verifies.
func (d Digest) Verify(hasher service.PasswordHasher, plaintext string) bool {
	if d.IsZero() {
		return false
	}

	return hasher.Check(plaintext, *d.hash)
}

func (d Digest) String() string {
	return redacted
}

func (d Digest) GoString() string {
	return redacted
}

// LogValue implements slog.LogValuer.
func (d Digest) LogValue() slog.Value {
	return slog.StringValue(redacted)
}

// MarshalJSON always fails so a digest can never end up in a response body.
func (d Digest) MarshalJSON() ([]byte, error) {
	return nil, ErrDigestNotReadable
}

// Value implements driver.Valuer.
func (d Digest) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, ErrEmptyDigest
	}

	return *d.hash, nil
}

// Scan implements sql.Scanner.
func (d *Digest) Scan(src any) error {
	switch v := src.(type) {
	case string:
		*d = newDigest(v)
	case []byte:
		*d = newDigest(string(v))
	case nil:
		*d = Digest{}
	default:
		return errors.Errorf("unsupported digest source type %T", src)
	}

	return nil
}
