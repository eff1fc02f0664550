package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "cookbook/internal/delivery/context"
	"cookbook/internal/delivery/http/response"
	"cookbook/internal/delivery/http/view"
	domainerrors "cookbook/internal/domain/errors"
	"cookbook/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// createRecipeRequest keeps minutes_to_complete a pointer so absent and 0 differ.
type createRecipeRequest struct {
	Title             string `json:"title" validate:"notblank"`
	Instructions      string `json:"instructions" validate:"notblank"`
	MinutesToComplete *int   `json:"minutes_to_complete" validate:"required"`
}

// RecipeHandler serves the session user's recipes.
type RecipeHandler struct {
	uc     usecase.RecipeUsecase
	logger *slog.Logger
}

// NewRecipeHandler is the constructor for RecipeHandler, injected by Fx.
func NewRecipeHandler(uc usecase.RecipeUsecase, logger *slog.Logger) *RecipeHandler {
	return &RecipeHandler{
		uc:     uc,
		logger: logger,
	}
}

// List returns every recipe owned by the session user.
func (h *RecipeHandler) List(c echo.Context) error {
	userID, ok := deliverycontext.SessionUserID(c.Request().Context())
	if !ok {
		return errors.WithStack(domainerrors.ErrUnauthorized)
	}

	recipes, err := h.uc.ListRecipes(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view.NewRecipeViews(recipes))
}

// Create adds a recipe owned by the session user.
func (h *RecipeHandler) Create(c echo.Context) error {
	userID, ok := deliverycontext.SessionUserID(c.Request().Context())
	if !ok {
		return errors.WithStack(domainerrors.ErrUnauthorized)
	}

	var req createRecipeRequest
	if err := bindAndValidate(c, h.logger, &req, domainerrors.ErrInvalidInput); err != nil {
		return err
	}

	recipe, err := h.uc.CreateRecipe(c.Request().Context(), userID, &usecase.CreateRecipeInput{
		Title:             req.Title,
		Instructions:      req.Instructions,
		MinutesToComplete: req.MinutesToComplete,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, view.NewRecipeView(recipe))
}
