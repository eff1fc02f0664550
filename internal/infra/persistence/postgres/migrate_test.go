package postgres

import (
	"context"
	"database/sql"
	"io/fs"
	"regexp"
	"testing"

	"cookbook/internal/infra/persistence/migrations"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubGooseUp(t *testing.T, fn func(ctx context.Context, db *sql.DB, dir string) error) {
	t.Helper()

	orig := gooseUp
	gooseUp = fn
	t.Cleanup(func() { gooseUp = orig })
}

func TestRunMigrations(t *testing.T) {
	sqlDB, _, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	var gotDir string
	stubGooseUp(t, func(_ context.Context, _ *sql.DB, dir string) error {
		gotDir = dir

		return nil
	})

	require.NoError(t, RunMigrations(context.Background(), sqlDB, nil))
	assert.Equal(t, ".", gotDir)
}

func TestRunMigrations_Error(t *testing.T) {
	sqlDB, _, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	stubGooseUp(t, func(context.Context, *sql.DB, string) error {
		return errors.New("boom")
	})

	err = RunMigrations(context.Background(), sqlDB, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
}

func TestMigrationsAreEmbedded(t *testing.T) {
	files, err := fs.Glob(migrations.FS, "*.sql")
	require.NoError(t, err)
	assert.NotEmpty(t, files)
}

func TestMigrations_UnboundedTextColumns(t *testing.T) {
	schema, err := fs.ReadFile(migrations.FS, "00001_create_users_and_recipes.sql")
	require.NoError(t, err)

	for _, column := range []string{"username", "title"} {
		assert.Regexp(t, regexp.MustCompile(`(?m)^\s*`+column+`\s+TEXT\s+NOT NULL`), string(schema))
	}
}
