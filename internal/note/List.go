package note

import (
	"net/http"

	"noteshare/internal/models"
	"noteshare/internal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// List 是公共笔记流：分页 + 标题/描述模糊搜索 + 标签 OR 过滤，
// 最新的排前面，登录用户额外拿到 is_liked/is_bookmarked 标注。
func (h *NoteHandler) List(c *gin.Context) {
	page, limit := parsePagination(c)
	search := c.Query("search")
	tagNames := splitTags(c.Query("tags"))
	viewerID := utils.ViewerID(c)

	filtered := h.filteredNotes(search, tagNames)

	var total int64
	if err := filtered.Count(&total).Error; err != nil {
		zap.L().Error("count notes failed", zap.Error(err))
		utils.Error(c, http.StatusInternalServerError, "internal server error")
		return
	}

	var notes []models.Note
	err := h.filteredNotes(search, tagNames).
		Preload("Tags").
		Order("created_at DESC").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&notes).Error
	if err != nil {
		zap.L().Error("list notes failed", zap.Error(err))
		utils.Error(c, http.StatusInternalServerError, "internal server error")
		return
	}

	views, err := h.noteViews(notes, viewerID)
	if err != nil {
		zap.L().Error("annotate notes failed", zap.Error(err))
		utils.Error(c, http.StatusInternalServerError, "internal server error")
		return
	}

	totalPages := (total + int64(limit) - 1) / int64(limit)
	c.JSON(http.StatusOK, gin.H{
		"data":        views,
		"currentPage": page,
		"totalPages":  totalPages,
	})
}

// filteredNotes 构造一次过滤查询；总数和当前页必须用同一套条件，
// 不然 totalPages 会和返回的切片对不上。
func (h *NoteHandler) filteredNotes(search string, tagNames []string) *gorm.DB {
	query := h.svc.DB.Model(&models.Note{})

	if search != "" {
		pattern := "%" + search + "%"
		query = query.Where("title LIKE ? OR description LIKE ?", pattern, pattern)
	}

	if len(tagNames) > 0 {
		sub := h.svc.DB.Table("note_tags").
			Select("note_tags.note_id").
			Joins("JOIN tags ON tags.id = note_tags.tag_id").
			Where("tags.name IN ?", tagNames)
		query = query.Where("notes.id IN (?)", sub)
	}

	return query
}
