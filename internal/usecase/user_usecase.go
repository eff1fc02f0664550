// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"cookbook/internal/domain/entity"
)

// --- Input DTOs ---

// SignupInput defines the data required to create an account. Fields are trimmed by the usecase.
type SignupInput struct {
	Username string
	Password string
	Bio      string
	ImageURL string
}

// LoginInput defines the credentials for a login attempt. Fields are trimmed by the usecase.
type LoginInput struct {
	Username string
	Password string
}

// UserUsecase defines the account operations the delivery layer depends on.
type UserUsecase interface {
	// Signup creates and persists a new user.
	Signup(ctx context.Context, input *SignupInput) (*entity.User, error)

	// Login returns the user whose credentials match, or ErrInvalidCredentials.
	Login(ctx context.Context, input *LoginInput) (*entity.User, error)

	// CurrentUser loads the user referenced by an established session.
	CurrentUser(ctx context.Context, userID int64) (*entity.User, error)
}
