package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "cookbook/internal/delivery/context"
	"cookbook/internal/domain/entity"
	domainerrors "cookbook/internal/domain/errors"
	"cookbook/internal/domain/repository"
	"cookbook/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type recipeService struct {
	txManager  repository.TransactionManager
	recipeRepo repository.RecipeRepository
	logger     *slog.Logger
}

// RecipeServiceParams holds dependencies for RecipeService, injected by Fx.
type RecipeServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	RecipeRepo repository.RecipeRepository
	Logger     *slog.Logger
}

// NewRecipeService is the constructor for recipeService.
func NewRecipeService(params RecipeServiceParams) usecase.RecipeUsecase {
	return &recipeService{
		txManager:  params.TxManager,
		recipeRepo: params.RecipeRepo,
		logger:     params.Logger,
	}
}

func (srv *recipeService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.LoggerFrom(ctx, srv.logger)
}

// ListRecipes returns the recipes owned by userID and nobody else.
func (srv *recipeService) ListRecipes(ctx context.Context, userID int64) ([]*entity.Recipe, error) {
	recipes, err := srv.recipeRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list recipes")
	}

	return recipes, nil
}

// CreateRecipe checks the trimmed input, builds the recipe for userID and persists it.
// The owner always comes from the session, never from the request body.
func (srv *recipeService) CreateRecipe(ctx context.Context, userID int64, input *usecase.CreateRecipeInput) (*entity.Recipe, error) {
	title := strings.TrimSpace(input.Title)
	instructions := strings.TrimSpace(input.Instructions)
	if title == "" || instructions == "" || input.MinutesToComplete == nil {
		return nil, errors.WithStack(domainerrors.ErrInvalidInput)
	}

	if !entity.HasMinInstructionsLength(instructions) {
		return nil, errors.WithStack(domainerrors.ErrInstructionsTooShort)
	}

	recipe, err := entity.NewRecipe(userID, title, instructions, *input.MinutesToComplete)
	if err != nil {
		srv.log(ctx).Info("Recipe rejected by validation", slog.Int64("userID", userID), slog.Any("error", err))

		return nil, domainerrors.NewBadRequestError(err)
	}

	var created *entity.Recipe
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		recipeRepo := repoFactory.RecipeRepo()

		if err := recipeRepo.Create(ctx, recipe); err != nil {
			return errors.WithStack(err)
		}

		loaded, err := recipeRepo.FindByID(ctx, recipe.ID)
		if err != nil {
			return errors.Wrap(err, "failed to reload created recipe")
		}
		created = loaded

		return nil
	})
	if err != nil {
		if errors.Is(err, repository.ErrRecipeConflict) {
			return nil, domainerrors.ErrDuplicateTitle.WrapMessage("create recipe failed")
		}

		srv.log(ctx).Error("Failed to execute create recipe transaction", slog.Int64("userID", userID), slog.Any("error", err))

		return nil, domainerrors.NewBadRequestError(err)
	}

	srv.log(ctx).Debug("Recipe created", slog.Int64("userID", userID), slog.Int64("recipeID", created.ID))

	return created, nil
}
