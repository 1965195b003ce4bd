package models

import "time"

type Comment struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	NoteID   uint   `json:"note_id" gorm:"index"`
	AuthorID uint   `json:"author_id" gorm:"index"`
	Content  string `json:"content" gorm:"type:text"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}
