package postgres

import (
	"context"

	"cookbook/internal/domain/entity"
	"cookbook/internal/domain/repository"
	"cookbook/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// userRepository implements the domain.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// preloadRecipes loads a user's recipes in creation order.
func preloadRecipes(db *gorm.DB) *gorm.DB {
	return db.Preload("Recipes", func(tx *gorm.DB) *gorm.DB {
		return tx.Order("recipes.id ASC")
	})
}

// FindByID retrieves a single user with their recipes.
func (repo *userRepository) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	var userM model.UserModel
	err := preloadRecipes(repo.db.WithContext(ctx)).
		Where("users.id = ?", id).
		First(&userM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return toUserDomain(&userM), nil
}

// FindByUsername retrieves a single user by exact username with their recipes.
func (repo *userRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	var userM model.UserModel
	err := preloadRecipes(repo.db.WithContext(ctx)).
		Where("users.username = ?", username).
		First(&userM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by username")
	}

	return toUserDomain(&userM), nil
}

// Create inserts the user and copies the generated ID back onto it.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Omit("Recipes").Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return errors.WithStack(repository.ErrUsernameTaken)
		}
		if isNotNullConstraintViolation(err) || isCheckConstraintViolation(err) {
			return errors.Wrap(err, "user rejected by table constraints")
		}

		return errors.Wrap(err, "failed to create user")
	}

	user.ID = userM.ID

	return nil
}

// --- Mapper Functions ---

func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	user := entity.RestoreUser(data.ID, data.Username, data.PasswordDigest, data.Bio, data.ImageURL)
	user.Recipes = make([]*entity.Recipe, 0, len(data.Recipes))
	for i := range data.Recipes {
		user.Recipes = append(user.Recipes, toRecipeDomain(&data.Recipes[i]))
	}

	return user
}

func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:             data.ID,
		Username:       data.Username,
		PasswordDigest: data.PasswordDigest(),
		Bio:            data.Bio,
		ImageURL:       data.ImageURL,
	}
}
