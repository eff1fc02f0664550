package postgres

import (
	"context"
	"testing"
	"time"

	"cookbook/internal/domain/entity"
	"cookbook/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const soupInstructions = "Chop the onions, simmer everything for twenty minutes and serve hot."

func newUserWithDigest(t *testing.T, username string) *entity.User {
	t.Helper()

	var digest entity.Digest
	require.NoError(t, digest.Scan("$2a$10$hash"))

	return entity.RestoreUser(0, username, digest, "", "")
}

func TestUserRepository_FindByID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)
	now := time.Now()

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE users.id = \$1`).
		WillReturnRows(userRows().AddRow(1, "ana", "$2a$10$hash", "cook", "", now, now))
	mock.ExpectQuery(`SELECT \* FROM "recipes" WHERE "recipes"."user_id" = \$1 ORDER BY recipes.id ASC`).
		WillReturnRows(recipeRows().AddRow(7, "Soup", soupInstructions, 20, 1, now, now))

	user, err := repo.FindByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), user.ID)
	assert.Equal(t, "ana", user.Username)
	assert.Equal(t, "cook", user.Bio)
	assert.False(t, user.PasswordDigest().IsZero())
	require.Len(t, user.Recipes, 1)
	assert.Equal(t, "Soup", user.Recipes[0].Title)
	assert.Equal(t, int64(1), user.Recipes[0].UserID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindByID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "users"`).WillReturnRows(userRows())

	user, err := repo.FindByID(context.Background(), 99)
	assert.Nil(t, user)
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindByUsername_QueryError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE users.username = \$1`).
		WillReturnError(errors.New("connection reset"))

	user, err := repo.FindByUsername(context.Background(), "ana")
	assert.Nil(t, user)
	require.Error(t, err)
	assert.NotErrorIs(t, err, repository.ErrUserNotFound)
	assert.Contains(t, err.Error(), "connection reset")
}

func TestUserRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)
	user := newUserWithDigest(t, "ana")

	mock.ExpectQuery(`INSERT INTO "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

	require.NoError(t, repo.Create(context.Background(), user))
	assert.Equal(t, int64(1), user.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Create_DuplicateUsername(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(`INSERT INTO "users"`).
		WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "users_username_key"})

	err := repo.Create(context.Background(), newUserWithDigest(t, "ana"))
	assert.ErrorIs(t, err, repository.ErrUsernameTaken)
}

func TestUserRepository_Create_WithoutDigest(t *testing.T) {
	db, _ := newMockDB(t)
	repo := NewUserRepository(db)

	user, err := entity.NewUser("ana", "", "")
	require.NoError(t, err)

	err = repo.Create(context.Background(), user)
	require.Error(t, err)
	assert.Contains(t, err.Error(), entity.ErrEmptyDigest.Error())
	assert.Zero(t, user.ID)
}
