package models

import "time"

type User struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	Name     string `json:"name" gorm:"size:50"`
	Email    string `json:"email" gorm:"size:100;uniqueIndex"`
	Password string `json:"-"`
	Avatar   string `json:"avatar"`
	Bio      string `json:"bio" gorm:"size:200"`

	// 冗余计数，和 user_follows 表在同一事务里维护
	FollowerCount  int `json:"follower_count" gorm:"default:0"`
	FollowingCount int `json:"following_count" gorm:"default:0"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}
