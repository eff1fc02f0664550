package entity

import (
	"strings"
	"unicode/utf8"
)

// MinInstructionsLength is the minimum number of characters a recipe's instructions must have.
const MinInstructionsLength = 50

// Recipe is a set of cooking instructions owned by exactly one user.
type Recipe struct {
	ID                int64  // Store-generated identifier.
	Title             string // Display title, never blank.
	Instructions      string // At least MinInstructionsLength characters.
	MinutesToComplete int    // Positive preparation time.
	UserID            int64  // Owner, fixed at creation.
	User              *User  // Owner, when loaded. Its Recipes are never populated through this link.
}

// NewRecipe builds a recipe after running the field validators. Instructions are
// checked as given, without trimming.
func NewRecipe(userID int64, title, instructions string, minutesToComplete int) (*Recipe, error) {
	if userID <= 0 {
		return nil, newValidationError("user_id", "Recipe must belong to a user.")
	}
	if strings.TrimSpace(title) == "" {
		return nil, newValidationError("title", "Title is required.")
	}
	if !HasMinInstructionsLength(instructions) {
		return nil, newValidationError("instructions", "Instructions must be at least 50 characters long.")
	}
	if minutesToComplete < 1 {
		return nil, newValidationError("minutes_to_complete", "Minutes to complete must be a positive integer.")
	}

	return &Recipe{
		Title:             title,
		Instructions:      instructions,
		MinutesToComplete: minutesToComplete,
		UserID:            userID,
	}, nil
}

// HasMinInstructionsLength counts characters, not bytes.
func HasMinInstructionsLength(instructions string) bool {
	return utf8.RuneCountInString(instructions) >= MinInstructionsLength
}
