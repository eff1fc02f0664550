package model

import "time"

// RecipeModel mirrors the 'recipes' table. UserID references users.id.
type RecipeModel struct {
	ID                int64  `gorm:"primaryKey;autoIncrement"`
	Title             string `gorm:"type:text;not null"`
	Instructions      string `gorm:"type:text;not null"`
	MinutesToComplete int    `gorm:"not null"`
	UserID            int64  `gorm:"index;not null"`
	CreatedAt         time.Time
	UpdatedAt         time.Time

	User *UserModel `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (RecipeModel) TableName() string {
	return "recipes"
}
