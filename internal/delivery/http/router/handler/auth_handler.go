// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "cookbook/internal/delivery/context"
	"cookbook/internal/delivery/http/response"
	"cookbook/internal/delivery/http/session"
	"cookbook/internal/delivery/http/validator"
	"cookbook/internal/delivery/http/view"
	domainerrors "cookbook/internal/domain/errors"
	"cookbook/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type signupRequest struct {
	Username string `json:"username" validate:"notblank"`
	Password string `json:"password" validate:"notblank"`
	Bio      string `json:"bio"`
	ImageURL string `json:"image_url"`
}

type loginRequest struct {
	Username string `json:"username" validate:"notblank"`
	Password string `json:"password" validate:"notblank"`
}

// AuthHandler serves signup, login, logout and session checks.
type AuthHandler struct {
	uc       usecase.UserUsecase
	sessions session.Manager
	logger   *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.UserUsecase, sessions session.Manager, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		uc:       uc,
		sessions: sessions,
		logger:   logger,
	}
}

// Signup creates an account and logs it in.
func (h *AuthHandler) Signup(c echo.Context) error {
	var req signupRequest
	if err := bindAndValidate(c, h.logger, &req, domainerrors.ErrInvalidInput); err != nil {
		return err
	}

	user, err := h.uc.Signup(c.Request().Context(), &usecase.SignupInput{
		Username: req.Username,
		Password: req.Password,
		Bio:      req.Bio,
		ImageURL: req.ImageURL,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.sessions.Establish(c, user.ID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, view.NewUserView(user))
}

// Login verifies credentials and binds the session to the user.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := bindAndValidate(c, h.logger, &req, domainerrors.ErrInvalidLoginInput); err != nil {
		return err
	}

	user, err := h.uc.Login(c.Request().Context(), &usecase.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.sessions.Establish(c, user.ID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view.NewUserView(user))
}

// CheckSession returns the logged-in user. Must run behind RequireSession.
func (h *AuthHandler) CheckSession(c echo.Context) error {
	userID, ok := deliverycontext.SessionUserID(c.Request().Context())
	if !ok {
		return errors.WithStack(domainerrors.ErrUnauthorized)
	}

	user, err := h.uc.CurrentUser(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view.NewUserView(user))
}

// Logout drops the user from the session. Must run behind RequireSession.
func (h *AuthHandler) Logout(c echo.Context) error {
	if err := h.sessions.Clear(c); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c)
}

// bindAndValidate decodes the JSON body into req. Undecodable bodies are 400
// "Invalid request body"; failed field rules return invalid.
func bindAndValidate(c echo.Context, logger *slog.Logger, req any, invalid *domainerrors.BaseError) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.ErrInvalidRequestBody.WrapMessage(err.Error())
	}

	if err := c.Validate(req); err != nil {
		deliverycontext.LoggerFrom(c.Request().Context(), logger).
			Debug("Request failed validation", slog.Any("fields", validator.FailedFields(err)))

		return invalid.WrapMessage("request validation failed")
	}

	return nil
}
