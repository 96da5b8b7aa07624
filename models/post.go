package models

import (
	"time"

	"github.com/lib/pq"
)

type Post struct {
	ID        uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    uint           `json:"userId" gorm:"not null;index"`
	User      User           `json:"-" gorm:"foreignKey:UserID"`
	ImageKey  string         `json:"imageKey" gorm:"not null"`
	Caption   string         `json:"caption" gorm:"type:text"`
	Hashtags  pq.StringArray `json:"hashtags" gorm:"type:text[]"`
	LikeCount int            `json:"likeCount" gorm:"not null;default:0"`
	Comments  []Comment      `json:"-" gorm:"foreignKey:PostID"`
	Likes     []Like         `json:"-" gorm:"foreignKey:PostID"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}
