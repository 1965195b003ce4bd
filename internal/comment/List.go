package comment

import (
	"net/http"
	"strconv"

	"noteshare/internal/models"
	"noteshare/internal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// List 某篇笔记的评论，最新的排前面。笔记被删后遗留的孤儿评论
// 也能照常翻出来，这里不校验笔记还在不在。
func (h *CommentHandler) List(c *gin.Context) {
	noteID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid note id")
		return
	}

	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit < 1 {
		limit = 10
	}

	var total int64
	h.svc.DB.Model(&models.Comment{}).Where("note_id = ?", uint(noteID)).Count(&total)

	var comments []models.Comment
	err = h.svc.DB.Where("note_id = ?", uint(noteID)).
		Order("created_at DESC").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&comments).Error
	if err != nil {
		zap.L().Error("list comments failed", zap.Error(err))
		utils.Error(c, http.StatusInternalServerError, "internal server error")
		return
	}

	authorIDs := make([]uint, 0, len(comments))
	for _, cm := range comments {
		authorIDs = append(authorIDs, cm.AuthorID)
	}
	var authors []models.User
	if len(authorIDs) > 0 {
		h.svc.DB.Where("id IN ?", authorIDs).Find(&authors)
	}
	authorByID := make(map[uint]models.User, len(authors))
	for _, a := range authors {
		authorByID[a.ID] = a
	}

	views := make([]models.CommentView, len(comments))
	for i, cm := range comments {
		views[i] = commentView(cm, authorByID[cm.AuthorID])
	}

	totalPages := (total + int64(limit) - 1) / int64(limit)
	utils.SuccessWith(c, views, gin.H{
		"count":       len(views),
		"total":       total,
		"totalPages":  totalPages,
		"currentPage": page,
	})
}
