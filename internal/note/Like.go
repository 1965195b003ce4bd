package note

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"noteshare/internal/models"
	"noteshare/internal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ToggleLike 赞/取消赞由当前状态决定。新增赞且不是给自己点才通知作者，
// 取消赞从不通知。
func (h *NoteHandler) ToggleLike(c *gin.Context) {
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
	err = h.svc.DB.Model(&models.NoteLike{}).
		Where("user_id = ? AND note_id = ?", userID, note.ID).
		Count(&existing).Error
	if err != nil {
		zap.L().Error("count likes failed", zap.Error(err))
		utils.Error(c, http.StatusInternalServerError, "internal server error")
		return
	}

	isLiked := existing == 0
	if isLiked {
		like := models.NoteLike{UserID: userID, NoteID: note.ID}
		if err := h.svc.DB.Create(&like).Error; err != nil {
			zap.L().Error("create like failed", zap.Error(err))
			utils.Error(c, http.StatusInternalServerError, "internal server error")
			return
		}

		if note.AuthorID != userID {
			var liker models.User
			if err := h.svc.DB.First(&liker, userID).Error; err == nil {
				h.svc.Notifier.Notify(c.Request.Context(), note.AuthorID,
					fmt.Sprintf("%s liked your note %q", liker.Name, truncateTitle(note.Title)))
			}
		}
	} else {
		err := h.svc.DB.Where("user_id = ? AND note_id = ?", userID, note.ID).
			Delete(&models.NoteLike{}).Error
		if err != nil {
			zap.L().Error("delete like failed", zap.Error(err))
			utils.Error(c, http.StatusInternalServerError, "internal server error")
			return
		}
	}

	var likesCount int64
	h.svc.DB.Model(&models.NoteLike{}).Where("note_id = ?", note.ID).Count(&likesCount)

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"isLiked":    isLiked,
		"likesCount": likesCount,
	})
}
