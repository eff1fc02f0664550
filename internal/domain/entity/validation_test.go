package entity

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	user, err := NewUser("ana", "", "")
	require.NoError(t, err)
	assert.Equal(t, "ana", user.Username)
	assert.Empty(t, user.Recipes)
	assert.NotNil(t, user.Recipes)
	assert.True(t, user.PasswordDigest().IsZero())

	for _, username := range []string{"", "   ", "\t\n"} {
		_, err := NewUser(username, "bio", "")

		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "username", validationErr.Field)
		assert.Equal(t, "Username is required.", err.Error())
	}
}

func TestNewRecipe(t *testing.T) {
	instructions := strings.Repeat("a", MinInstructionsLength)

	tests := []struct {
		name         string
		userID       int64
		title        string
		instructions string
		minutes      int
		wantField    string
		wantMessage  string
	}{
		{name: "valid", userID: 1, title: "Soup", instructions: instructions, minutes: 20},
		{name: "missing owner", userID: 0, title: "Soup", instructions: instructions, minutes: 20, wantField: "user_id", wantMessage: "Recipe must belong to a user."},
		{name: "blank title", userID: 1, title: "  ", instructions: instructions, minutes: 20, wantField: "title", wantMessage: "Title is required."},
		{name: "short instructions", userID: 1, title: "Soup", instructions: instructions[1:], minutes: 20, wantField: "instructions", wantMessage: "Instructions must be at least 50 characters long."},
		{name: "zero minutes", userID: 1, title: "Soup", instructions: instructions, minutes: 0, wantField: "minutes_to_complete", wantMessage: "Minutes to complete must be a positive integer."},
		{name: "negative minutes", userID: 1, title: "Soup", instructions: instructions, minutes: -5, wantField: "minutes_to_complete", wantMessage: "Minutes to complete must be a positive integer."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recipe, err := NewRecipe(tt.userID, tt.title, tt.instructions, tt.minutes)
			if tt.wantField == "" {
				require.NoError(t, err)
				assert.Equal(t, tt.userID, recipe.UserID)
				assert.Equal(t, tt.minutes, recipe.MinutesToComplete)

				return
			}

			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.wantField, validationErr.Field)
			assert.Equal(t, tt.wantMessage, validationErr.Message)
			assert.Nil(t, recipe)
		})
	}
}

func TestNewRecipe_ChecksInstructionsUntrimmed(t *testing.T) {
	padded := "   " + strings.Repeat("b", MinInstructionsLength-3)

	recipe, err := NewRecipe(1, "Soup", padded, 10)
	require.NoError(t, err)
	assert.Equal(t, padded, recipe.Instructions)
}

func TestHasMinInstructionsLength_CountsCharacters(t *testing.T) {
	// 49 two-byte runes are 98 bytes but still too short.
	assert.False(t, HasMinInstructionsLength(strings.Repeat("é", MinInstructionsLength-1)))
	assert.True(t, HasMinInstructionsLength(strings.Repeat("é", MinInstructionsLength)))
}
