package usecase

import (
	"context"

	"cookbook/internal/domain/entity"
)

// CreateRecipeInput defines the data required to create a recipe. A nil MinutesToComplete
// means the client did not send one, which is distinct from zero.
type CreateRecipeInput struct {
	Title             string
	Instructions      string
	MinutesToComplete *int
}

// RecipeUsecase defines the recipe operations available to an authenticated user.
type RecipeUsecase interface {
	// ListRecipes returns every recipe owned by userID.
	ListRecipes(ctx context.Context, userID int64) ([]*entity.Recipe, error)

	// CreateRecipe creates a recipe owned by userID.
	CreateRecipe(ctx context.Context, userID int64, input *CreateRecipeInput) (*entity.Recipe, error)
}
