package user

import (
	"net/http"

	"noteshare/internal/models"
	"noteshare/internal/note"
	"noteshare/internal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Bookmarks 当前用户收藏的笔记，按收藏先后排序分页
func (h *UserHandler) Bookmarks(c *gin.Context) {
	userID, err := utils.GetUserID(c)
	if err != nil {
		utils.Error(c, http.StatusUnauthorized, err.Error())
		return
	}

	page, limit := pagination(c)

	var total int64
	h.svc.DB.Model(&models.Bookmark{}).Where("user_id = ?", userID).Count(&total)

	// 先按插入顺序取出这一页的收藏行，再按行序取笔记
	var bookmarks []models.Bookmark
	err = h.svc.DB.Where("user_id = ?", userID).
		Order("created_at ASC").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&bookmarks).Error
	if err != nil {
		zap.L().Error("list bookmarks failed", zap.Error(err))
		utils.Error(c, http.StatusInternalServerError, "internal server error")
		return
	}

	noteIDs := make([]uint, len(bookmarks))
	for i, b := range bookmarks {
		noteIDs[i] = b.NoteID
	}

	var notes []models.Note
	if len(noteIDs) > 0 {
		if err := h.svc.DB.Preload("Tags").Where("id IN ?", noteIDs).Find(&notes).Error; err != nil {
			zap.L().Error("load bookmarked notes failed", zap.Error(err))
			utils.Error(c, http.StatusInternalServerError, "internal server error")
			return
		}
	}

	// Find 不保证顺序，按收藏顺序重排（笔记被删的收藏行跳过）
	noteByID := make(map[uint]models.Note, len(notes))
	for _, n := range notes {
		noteByID[n.ID] = n
	}
	ordered := make([]models.Note, 0, len(noteIDs))
	for _, id := range noteIDs {
		if n, ok := noteByID[id]; ok {
			ordered = append(ordered, n)
		}
	}

	views, err := note.Views(h.svc, ordered, userID)
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
