package user

import (
	"net/http"
	"strconv"

	"noteshare/internal/models"
	"noteshare/internal/note"
	"noteshare/internal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// MyNotes 当前用户自己的笔记，最新的排前面
func (h *UserHandler) MyNotes(c *gin.Context) {
	userID, err := utils.GetUserID(c)
	if err != nil {
		utils.Error(c, http.StatusUnauthorized, err.Error())
		return
	}

	page, limit := pagination(c)

	var total int64
	h.svc.DB.Model(&models.Note{}).Where("author_id = ?", userID).Count(&total)

	var notes []models.Note
	err = h.svc.DB.Preload("Tags").
		Where("author_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&notes).Error
	if err != nil {
		zap.L().Error("list my notes failed", zap.Error(err))
		utils.Error(c, http.StatusInternalServerError, "internal server error")
		return
	}

	views, err := note.Views(h.svc, notes, userID)
	if err != nil {
		zap.L().Error("annotate notes failed", zap.Error(err))
		utils.Error(c, http.StatusInternalServerError, "internal server error")
		return
	}

	totalPages := (total + int64(limit) - 1) / int64(limit)
	utils.SuccessWith(c, views, gin.H{
		"count":       len(views),
		"total":       total,
		"totalPages":  totalPages,
		"currentPage": page,
	})
}

func pagination(c *gin.Context) (page, limit int) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err = strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit < 1 {
		limit = 10
	}
	return page, limit
}
