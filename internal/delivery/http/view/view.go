// Package view renders entities as JSON response bodies. A user's recipes never
// embed their owner and a recipe's owner never lists its recipes.
package view

import "cookbook/internal/domain/entity"

// RecipeSummary is a recipe as listed under its owner.
type RecipeSummary struct {
	ID                int64  `json:"id"`
	Title             string `json:"title"`
	Instructions      string `json:"instructions"`
	MinutesToComplete int    `json:"minutes_to_complete"`
	UserID            int64  `json:"user_id"`
}

// Owner is a user as embedded in a recipe.
type Owner struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Bio      string `json:"bio"`
	ImageURL string `json:"image_url"`
}

// UserView is the response body for a user.
type UserView struct {
	Owner
	Recipes []RecipeSummary `json:"recipes"`
}

// RecipeView is the response body for a recipe.
type RecipeView struct {
	RecipeSummary
	User *Owner `json:"user"`
}

// NewUserView renders u with its recipes. Missing recipes render as [].
func NewUserView(u *entity.User) UserView {
	recipes := make([]RecipeSummary, 0, len(u.Recipes))
	for _, recipe := range u.Recipes {
		recipes = append(recipes, newRecipeSummary(recipe))
	}

	return UserView{Owner: newOwner(u), Recipes: recipes}
}

// NewRecipeView renders r with its owner, or a null owner when none was loaded.
func NewRecipeView(r *entity.Recipe) RecipeView {
	v := RecipeView{RecipeSummary: newRecipeSummary(r)}
	if r.User != nil {
		owner := newOwner(r.User)
		v.User = &owner
	}

	return v
}

// NewRecipeViews renders a list. An empty list renders as [].
func NewRecipeViews(recipes []*entity.Recipe) []RecipeView {
	views := make([]RecipeView, 0, len(recipes))
	for _, recipe := range recipes {
		views = append(views, NewRecipeView(recipe))
	}

	return views
}

func newOwner(u *entity.User) Owner {
	return Owner{
		ID:       u.ID,
		Username: u.Username,
		Bio:      u.Bio,
		ImageURL: u.ImageURL,
	}
}

func newRecipeSummary(r *entity.Recipe) RecipeSummary {
	return RecipeSummary{
		ID:                r.ID,
		Title:             r.Title,
		Instructions:      r.Instructions,
		MinutesToComplete: r.MinutesToComplete,
		UserID:            r.UserID,
	}
}
