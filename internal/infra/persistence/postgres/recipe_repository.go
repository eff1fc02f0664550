package postgres

import (
	"context"

	"cookbook/internal/domain/entity"
	"cookbook/internal/domain/repository"
	"cookbook/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type recipeRepository struct {
	db *gorm.DB
}

// NewRecipeRepository is the constructor for recipeRepository.
func NewRecipeRepository(db *gorm.DB) repository.RecipeRepository {
	return &recipeRepository{db: db}
}

// FindByID retrieves a recipe together with its owner.
func (repo *recipeRepository) FindByID(ctx context.Context, id int64) (*entity.Recipe, error) {
	var recipeM model.RecipeModel
	err := repo.db.WithContext(ctx).
		Preload("User").
		Where("recipes.id = ?", id).
		First(&recipeM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRecipeNotFound
		}

		return nil, errors.Wrap(err, "failed to find recipe by id")
	}

	return toRecipeDomain(&recipeM), nil
}

// ListByUserID returns the recipes owned by userID in creation order. Owners are preloaded.
func (repo *recipeRepository) ListByUserID(ctx context.Context, userID int64) ([]*entity.Recipe, error) {
	var recipeMs []model.RecipeModel
	err := repo.db.WithContext(ctx).
		Preload("User").
		Where("recipes.user_id = ?", userID).
		Order("recipes.id ASC").
		Find(&recipeMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list recipes by user id")
	}

	recipes := make([]*entity.Recipe, 0, len(recipeMs))
	for i := range recipeMs {
		recipes = append(recipes, toRecipeDomain(&recipeMs[i]))
	}

	return recipes, nil
}

// Create inserts the recipe and copies the generated ID back onto it.
func (repo *recipeRepository) Create(ctx context.Context, recipe *entity.Recipe) error {
	recipeM := fromRecipeDomain(recipe)

	if err := repo.db.WithContext(ctx).Omit("User").Create(recipeM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return errors.WithStack(repository.ErrRecipeConflict)
		}
		if isForeignKeyConstraintViolation(err) {
			return errors.Wrap(err, "recipe owner does not exist")
		}
		if isNotNullConstraintViolation(err) || isCheckConstraintViolation(err) {
			return errors.Wrap(err, "recipe rejected by table constraints")
		}

		return errors.Wrap(err, "failed to create recipe")
	}

	recipe.ID = recipeM.ID

	return nil
}

// --- Mapper Functions ---

// toRecipeDomain maps a recipe and, when loaded, its owner. The owner's own
// recipes are left unset.
func toRecipeDomain(data *model.RecipeModel) *entity.Recipe {
	if data == nil {
		return nil
	}

	recipe := &entity.Recipe{
		ID:                data.ID,
		Title:             data.Title,
		Instructions:      data.Instructions,
		MinutesToComplete: data.MinutesToComplete,
		UserID:            data.UserID,
	}
	if data.User != nil {
		recipe.User = entity.RestoreUser(data.User.ID, data.User.Username, data.User.PasswordDigest, data.User.Bio, data.User.ImageURL)
	}

	return recipe
}

func fromRecipeDomain(data *entity.Recipe) *model.RecipeModel {
	if data == nil {
		return nil
	}

	return &model.RecipeModel{
		ID:                data.ID,
		Title:             data.Title,
		Instructions:      data.Instructions,
		MinutesToComplete: data.MinutesToComplete,
		UserID:            data.UserID,
	}
}
