package view

import (
	"encoding/json"
	"testing"

	"cookbook/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func storedUser(t *testing.T) *entity.User {
	t.Helper()

	var digest entity.Digest
	require.NoError(t, digest.Scan("$2a$04$secret-hash"))

	return entity.RestoreUser(1, "ana", digest, "cook", "http://img")
}

func TestNewUserView_JSON(t *testing.T) {
	user := storedUser(t)
	user.Recipes = []*entity.Recipe{{ID: 2, Title: "Soup", Instructions: "x", MinutesToComplete: 20, UserID: 1, User: user}}

	body, err := json.Marshal(NewUserView(user))
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"id": 1, "username": "ana", "bio": "cook", "image_url": "http://img",
		"recipes": [{"id": 2, "title": "Soup", "instructions": "x", "minutes_to_complete": 20, "user_id": 1}]
	}`, string(body))
	assert.NotContains(t, string(body), "secret-hash")
}

func TestNewUserView_NoRecipes(t *testing.T) {
	body, err := json.Marshal(NewUserView(storedUser(t)))
	require.NoError(t, err)

	assert.Contains(t, string(body), `"recipes":[]`)
}

func TestNewRecipeView_JSON(t *testing.T) {
	user := storedUser(t)
	user.Recipes = []*entity.Recipe{{ID: 9}}

	body, err := json.Marshal(NewRecipeView(&entity.Recipe{
		ID: 2, Title: "Soup", Instructions: "x", MinutesToComplete: 20, UserID: 1, User: user,
	}))
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"id": 2, "title": "Soup", "instructions": "x", "minutes_to_complete": 20, "user_id": 1,
		"user": {"id": 1, "username": "ana", "bio": "cook", "image_url": "http://img"}
	}`, string(body))
}

func TestNewRecipeViews_Empty(t *testing.T) {
	body, err := json.Marshal(NewRecipeViews(nil))
	require.NoError(t, err)

	assert.Equal(t, "[]", string(body))
}
