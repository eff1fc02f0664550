package postgres

import (
	"context"
	"strings"
	"testing"
	"time"

	"cookbook/internal/domain/entity"
	"cookbook/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecipeRepository_ListByUserID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRecipeRepository(db)
	now := time.Now()

	mock.ExpectQuery(`SELECT \* FROM "recipes" WHERE recipes.user_id = \$1 ORDER BY recipes.id ASC`).
		WillReturnRows(recipeRows().
			AddRow(3, "Soup", soupInstructions, 20, 1, now, now).
			AddRow(4, "Stew", soupInstructions, 90, 1, now, now))
	mock.ExpectQuery(`SELECT \* FROM "users" WHERE "users"."id" = \$1`).
		WillReturnRows(userRows().AddRow(1, "ana", "$2a$10$hash", "", "", now, now))

	recipes, err := repo.ListByUserID(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, recipes, 2)
	for _, recipe := range recipes {
		assert.Equal(t, int64(1), recipe.UserID)
		require.NotNil(t, recipe.User)
		assert.Equal(t, "ana", recipe.User.Username)
		assert.Nil(t, recipe.User.Recipes)
	}
	assert.Equal(t, "Soup", recipes[0].Title)
	assert.Equal(t, "Stew", recipes[1].Title)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecipeRepository_ListByUserID_Empty(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRecipeRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "recipes"`).WillReturnRows(recipeRows())

	recipes, err := repo.ListByUserID(context.Background(), 2)
	require.NoError(t, err)
	assert.NotNil(t, recipes)
	assert.Empty(t, recipes)
}

func TestRecipeRepository_FindByID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRecipeRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "recipes" WHERE recipes.id = \$1`).WillReturnRows(recipeRows())

	recipe, err := repo.FindByID(context.Background(), 5)
	assert.Nil(t, recipe)
	assert.ErrorIs(t, err, repository.ErrRecipeNotFound)
}

func TestRecipeRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRecipeRepository(db)

	recipe, err := entity.NewRecipe(1, "Soup", soupInstructions, 20)
	require.NoError(t, err)

	mock.ExpectQuery(`INSERT INTO "recipes"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(11))

	require.NoError(t, repo.Create(context.Background(), recipe))
	assert.Equal(t, int64(11), recipe.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecipeRepository_Create_LongTitle(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRecipeRepository(db)
	title := strings.Repeat("t", 300)

	recipe, err := entity.NewRecipe(1, title, soupInstructions, 20)
	require.NoError(t, err)

	mock.ExpectQuery(`INSERT INTO "recipes"`).
		WithArgs(title, soupInstructions, 20, int64(1), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(12))

	require.NoError(t, repo.Create(context.Background(), recipe))
	assert.Equal(t, int64(12), recipe.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecipeRepository_Create_ConstraintErrors(t *testing.T) {
	tests := []struct {
		name         string
		code         string
		wantConflict bool
	}{
		{name: "unique title", code: pgerrcode.UniqueViolation, wantConflict: true},
		{name: "missing owner", code: pgerrcode.ForeignKeyViolation},
		{name: "check constraint", code: pgerrcode.CheckViolation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			repo := NewRecipeRepository(db)

			recipe, err := entity.NewRecipe(1, "Soup", soupInstructions, 20)
			require.NoError(t, err)

			pgErr := &pgconn.PgError{Code: tt.code, Message: "constraint failed"}
			mock.ExpectQuery(`INSERT INTO "recipes"`).WillReturnError(pgErr)

			err = repo.Create(context.Background(), recipe)
			require.Error(t, err)
			if tt.wantConflict {
				assert.ErrorIs(t, err, repository.ErrRecipeConflict)
			} else {
				assert.NotErrorIs(t, err, repository.ErrRecipeConflict)
				assert.ErrorAs(t, err, &pgErr)
			}
			assert.Zero(t, recipe.ID)
		})
	}
}
