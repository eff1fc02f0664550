// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"cookbook/internal/domain/entity"
)

var (
	// ErrUserNotFound is returned when no user matches the lookup.
	ErrUserNotFound = errors.New("user not found")

	// ErrUsernameTaken is returned when a user is created with a username that already exists.
	ErrUsernameTaken = errors.New("username already exists")
)

// UserRepository defines the persistence operations for users.
type UserRepository interface {
	// FindByID retrieves a user together with the recipes it owns.
	FindByID(ctx context.Context, id int64) (*entity.User, error)

	// FindByUsername retrieves a user by exact username, together with the recipes it owns.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// Create persists a new user and assigns its generated ID.
	Create(ctx context.Context, user *entity.User) error
}
