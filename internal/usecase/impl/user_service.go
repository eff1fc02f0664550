// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "cookbook/internal/delivery/context"
	"cookbook/internal/domain/entity"
	domainerrors "cookbook/internal/domain/errors"
	"cookbook/internal/domain/repository"
	"cookbook/internal/domain/service"
	"cookbook/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	hasher    service.PasswordHasher
	logger    *slog.Logger

	// dummyDigest is checked when a login names an unknown user. It comes from the
	// injected hasher so both rejection paths run at the configured cost.
	dummyDigest string
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	Hasher    service.PasswordHasher
	Logger    *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) (usecase.UserUsecase, error) {
	dummyDigest, err := params.Hasher.Hash(uuid.NewString())
	if err != nil {
		return nil, errors.Wrap(err, "failed to prepare login digest")
	}

	return &userService{
		txManager:   params.TxManager,
		userRepo:    params.UserRepo,
		hasher:      params.Hasher,
		logger:      params.Logger,
		dummyDigest: dummyDigest,
	}, nil
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.LoggerFrom(ctx, srv.logger)
}

// Signup validates the input, hashes the password and persists the user in one transaction.
func (srv *userService) Signup(ctx context.Context, input *usecase.SignupInput) (*entity.User, error) {
	username := strings.TrimSpace(input.Username)
	password := strings.TrimSpace(input.Password)
	if username == "" || password == "" {
		return nil, errors.WithStack(domainerrors.ErrInvalidInput)
	}

	srv.log(ctx).Info("Starting signup", slog.String("username", username))

	user, err := entity.NewUser(username, strings.TrimSpace(input.Bio), strings.TrimSpace(input.ImageURL))
	if err != nil {
		return nil, domainerrors.NewBadRequestError(err)
	}

	if err := user.SetPassword(srv.hasher, password); err != nil {
		srv.log(ctx).Error("Failed to hash password during signup", slog.Any("error", err))

		return nil, domainerrors.NewBadRequestError(err)
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.UserRepo().Create(ctx, user)
	})
	if err != nil {
		if errors.Is(err, repository.ErrUsernameTaken) {
			srv.log(ctx).Warn("Signup rejected, username taken", slog.String("username", username))

			return nil, domainerrors.ErrDuplicateUsername.WrapMessage("signup failed")
		}

		srv.log(ctx).Error("Failed to execute signup transaction", slog.String("username", username), slog.Any("error", err))

		return nil, domainerrors.NewBadRequestError(err)
	}

	srv.log(ctx).Debug("Signup completed", slog.Int64("userID", user.ID))

	return user, nil
}

// Login verifies the credentials. Unknown usernames and wrong passwords return the same error.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*entity.User, error) {
	username := strings.TrimSpace(input.Username)
	password := strings.TrimSpace(input.Password)
	if username == "" || password == "" {
		return nil, errors.WithStack(domainerrors.ErrInvalidLoginInput)
	}

	user, err := srv.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.hasher.Check(password, srv.dummyDigest)
			srv.log(ctx).Info("Login rejected", slog.String("username", username))

			return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
		}

		return nil, errors.Wrap(err, "failed to find user by username")
	}

	if !user.Authenticate(srv.hasher, password) {
		srv.log(ctx).Info("Login rejected", slog.String("username", username))

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
	}

	srv.log(ctx).Debug("Login succeeded", slog.Int64("userID", user.ID))

	return user, nil
}

// CurrentUser loads the user behind a session. A session that outlived its user yields ErrUserNotFound.
func (srv *userService) CurrentUser(ctx context.Context, userID int64) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Session references a missing user", slog.Int64("userID", userID))

			return nil, domainerrors.ErrUserNotFound.WrapMessage("check session failed")
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return user, nil
}
