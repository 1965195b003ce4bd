package models

// 对外返回的固定结构，避免直接把带敏感字段的模型序列化出去

type AuthorBrief struct {
	ID     uint   `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar,omitempty"`
}

type NoteView struct {
	ID          uint        `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	FilePath    string      `json:"file_path"`
	FileType    string      `json:"file_type"`
	FileSize    int64       `json:"file_size"`
	Author      AuthorBrief `json:"author"`
	Tags        []string    `json:"tags"`

	LikesCount    int  `json:"likes_count"`
	Downloads     int  `json:"downloads"`
	CommentsCount int  `json:"comments_count,omitempty"`
	IsLiked       bool `json:"is_liked"`
	IsBookmarked  bool `json:"is_bookmarked"`

	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

type CommentView struct {
	ID        uint        `json:"id"`
	NoteID    uint        `json:"note_id"`
	Content   string      `json:"content"`
	Author    AuthorBrief `json:"author"`
	CreatedAt string      `json:"created_at"`
}

type UserProfile struct {
	ID             uint   `json:"id"`
	Name           string `json:"name"`
	Avatar         string `json:"avatar,omitempty"`
	Bio            string `json:"bio,omitempty"`
	FollowersCount int    `json:"followers_count"`
	FollowingCount int    `json:"following_count"`
	NotesCount     int64  `json:"notes_count"`
	IsFollowing    bool   `json:"is_following"`
}
