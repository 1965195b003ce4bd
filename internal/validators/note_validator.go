package validators

// 上传是 multipart 表单：file 字段单独取，其余走 form 绑定
type CreateNoteRequest struct {
	Title       string `form:"title" binding:"required,max=200"`
	Description string `form:"description" binding:"required"`
	Tags        string `form:"tags"` // 逗号分隔
}

// 更新是 PATCH 语义：只改传了的字段
type UpdateNoteRequest struct {
	Title       *string `json:"title" binding:"omitempty,max=200"`
	Description *string `json:"description"`
	Tags        *string `json:"tags"` // 逗号分隔
}
