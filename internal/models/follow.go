package models

import "time"

// UserFollow 是关注关系的唯一事实来源，FollowerID 关注了 FollowedID。
// 自己关注自己在 handler 层直接拒绝，不会落表。
type UserFollow struct {
	FollowerID uint `gorm:"primaryKey"`
	FollowedID uint `gorm:"primaryKey;index"`

	CreatedAt time.Time
}

type Bookmark struct {
	UserID uint `gorm:"primaryKey"`
	NoteID uint `gorm:"primaryKey"`

	// 收藏列表按 CreatedAt 升序就是插入顺序
	CreatedAt time.Time
}
