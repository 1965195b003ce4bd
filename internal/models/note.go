package models

import "time"

type Note struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	AuthorID    uint   `json:"author_id" gorm:"index"`
	Title       string `json:"title"`
	Description string `json:"description" gorm:"type:text"`

	FilePath string `json:"file_path"`
	FileType string `json:"file_type" gorm:"size:20"`
	FileSize int64  `json:"file_size"`

	Downloads int `json:"downloads" gorm:"default:0"`

	Tags []Tag `json:"tags" gorm:"many2many:note_tags;"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

type Tag struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"size:50;uniqueIndex"`
}

// NoteLike 的复合主键保证同一用户对同一笔记最多点一次赞
type NoteLike struct {
	UserID uint `gorm:"primaryKey"`
	NoteID uint `gorm:"primaryKey;index"`

	CreatedAt time.Time
}
