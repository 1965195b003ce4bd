package note

import (
	"errors"
	"net/http"
	"strconv"

	"noteshare/internal/models"
	"noteshare/internal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ToggleBookmark 收藏/取消收藏，只动当前用户的收藏列表，没有通知副作用
func (h *NoteHandler) ToggleBookmark(c *gin.Context) {
	noteID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid note id")
		return
	}

	userID, err := utils.GetUserID(c)
	if err != nil {
		utils.Error(c, http.StatusUnauthorized, err.Error())
		return
	}

	var note models.Note
	if err := h.svc.DB.First(&note, uint(noteID)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Error(c, http.StatusNotFound, "note not found")
		} else {
			utils.Error(c, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	var existing int64
	err = h.svc.DB.Model(&models.Bookmark{}).
		Where("user_id = ? AND note_id = ?", userID, note.ID).
		Count(&existing).Error
	if err != nil {
		zap.L().Error("count bookmarks failed", zap.Error(err))
		utils.Error(c, http.StatusInternalServerError, "internal server error")
		return
	}

	isBookmarked := existing == 0
	if isBookmarked {
		bookmark := models.Bookmark{UserID: userID, NoteID: note.ID}
		if err := h.svc.DB.Create(&bookmark).Error; err != nil {
			zap.L().Error("create bookmark failed", zap.Error(err))
			utils.Error(c, http.StatusInternalServerError, "internal server error")
			return
		}
	} else {
		err := h.svc.DB.Where("user_id = ? AND note_id = ?", userID, note.ID).
			Delete(&models.Bookmark{}).Error
		if err != nil {
			zap.L().Error("delete bookmark failed", zap.Error(err))
			utils.Error(c, http.StatusInternalServerError, "internal server error")
			return
		}
	}

	// 收藏列表按插入顺序返回；空列表要序列化成 [] 而不是 null
	bookmarkIDs := []uint{}
	h.svc.DB.Model(&models.Bookmark{}).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Pluck("note_id", &bookmarkIDs)

	utils.Success(c, gin.H{
		"isBookmarked": isBookmarked,
		"bookmarkIds":  bookmarkIDs,
	})
}
