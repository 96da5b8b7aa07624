package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID              uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
	Username        *string        `gorm:"index" json:"username"`
	Name            string         `json:"name"`
	FullName        string         `json:"full_name"`
	Email           string         `gorm:"unique;not null" json:"email"`
	Phone           *string        `gorm:"index" json:"phone"`
	Password        *string        `json:"-"` // Don't expose password in JSON
	Provider        string         `json:"provider"`
	GoogleID        *string        `json:"-"`
	Bio             string         `json:"bio"`
	Website         string         `json:"website"`
	Location        string         `json:"location"`
	DateOfBirth     string         `json:"date_of_birth"`
	ProfileImageKey string         `json:"profile_image_key"`
	IsVerified      bool           `json:"is_verified"`
	JoinedAt        *time.Time     `json:"joined_at"`
	Posts           []Post         `json:"-" gorm:"foreignKey:UserID"`
	Comments        []Comment      `json:"-" gorm:"foreignKey:UserID"`
	Likes           []Like         `json:"-" gorm:"foreignKey:UserID"`
	RefreshTokens   []RefreshToken `json:"-" gorm:"foreignKey:UserID"`
}

// DisplayName is the name shown next to posts and comments:
// full name, then provider name, then email, then "Anonymous".
func (u *User) DisplayName() string {
	if u == nil {
		return "Anonymous"
	}
	if u.FullName != "" {
		return u.FullName
	}
	if u.Name != "" {
		return u.Name
	}
	if u.Email != "" {
		return u.Email
	}
	return "Anonymous"
}
