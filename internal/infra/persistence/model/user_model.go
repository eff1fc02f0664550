// Package model contains the GORM persistence models. They are mapped to and from
// domain entities by the postgres repositories and never leave the infra layer.
package model

import (
	"time"

	"cookbook/internal/domain/entity"
)

// UserModel mirrors the 'users' table.
type UserModel struct {
	ID             int64         `gorm:"primaryKey;autoIncrement"`
	Username       string        `gorm:"type:text;uniqueIndex;not null"`
	PasswordDigest entity.Digest `gorm:"column:password_digest;type:varchar(255);not null"`
	Bio            string        `gorm:"type:text"`
	ImageURL       string        `gorm:"column:image_url;type:text"`
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Recipes []RecipeModel `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
