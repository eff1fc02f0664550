package repository

import (
	"context"
	"errors"

	"cookbook/internal/domain/entity"
)

var (
	// ErrRecipeNotFound is returned when no recipe matches the lookup.
	ErrRecipeNotFound = errors.New("recipe not found")

	// ErrRecipeConflict is returned when a recipe violates a uniqueness constraint.
	ErrRecipeConflict = errors.New("recipe already exists")
)

// RecipeRepository defines the persistence operations for recipes.
type RecipeRepository interface {
	// FindByID retrieves a recipe with its owner loaded.
	FindByID(ctx context.Context, id int64) (*entity.Recipe, error)

	// ListByUserID retrieves every recipe owned by userID, each with its owner loaded.
	ListByUserID(ctx context.Context, userID int64) ([]*entity.Recipe, error)

	// Create persists a new recipe and assigns its generated ID.
	Create(ctx context.Context, recipe *entity.Recipe) error
}
