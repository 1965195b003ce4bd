package models

import "time"

type Notification struct {
	ID      uint   `json:"id" gorm:"primaryKey"`
	UserID  uint   `json:"user_id" gorm:"index"`
	Message string `json:"message" gorm:"type:text"`
	Read    bool   `json:"read" gorm:"default:false;index"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}
