package comment

import (
	"noteshare/internal/models"
	"noteshare/internal/svc"
)

type CommentHandler struct {
	svc *svc.ServiceContext
}

func NewCommentHandler(svc *svc.ServiceContext) *CommentHandler {
	return &CommentHandler{svc: svc}
}

func commentView(comment models.Comment, author models.User) models.CommentView {
	return models.CommentView{
		ID:      comment.ID,
		NoteID:  comment.NoteID,
		Content: comment.Content,
		Author: models.AuthorBrief{
			ID:     author.ID,
			Name:   author.Name,
			Avatar: author.Avatar,
		},
		CreatedAt: comment.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
