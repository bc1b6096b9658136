package models

import (
	"time"
)

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"uniqueIndex;size:80;not null" json:"username"`
	Email     *string   `gorm:"uniqueIndex;size:120" json:"email"`
	Password  string    `gorm:"size:200;not null" json:"-"` // bcrypt hash
	Bio       string    `gorm:"type:text" json:"bio"`
	AvatarURL string    `gorm:"size:255" json:"avatar_url"`
	IsAdmin   bool      `gorm:"default:false" json:"is_admin"`
	CreatedAt time.Time `json:"created_at"`
	// No DeletedAt, accounts are never removed
}
