package models

import (
	"time"
)

// Follow is a directed edge: follower -> following. At most one edge per
// ordered pair, enforced by lookup-before-insert in the follow handler.
type Follow struct {
	ID              uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	FollowerUserID  uint      `gorm:"not null;index;index:idx_follower_following" json:"followerUserId"`
	FollowingUserID uint      `gorm:"not null;index;index:idx_follower_following" json:"followingUserId"`
	CreatedAt       time.Time `json:"createdAt"`

	FollowerUser  User `json:"-" gorm:"foreignKey:FollowerUserID"`
	FollowingUser User `json:"-" gorm:"foreignKey:FollowingUserID"`
}
