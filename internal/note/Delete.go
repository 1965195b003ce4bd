package note

import (
	"net/http"

	"noteshare/internal/middleware"
	"noteshare/internal/models"
	"noteshare/internal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Delete 删除笔记记录和点赞/收藏行，文件删除是尽力而为。
// 评论故意不级联删（沿用既有行为，孤儿评论由查询侧容忍）。
func (h *NoteHandler) Delete(c *gin.Context) {
	note, ok := middleware.OwnedNote(c)
	if !ok {
		utils.Error(c, http.StatusInternalServerError, "internal server error")
		return
	}

	err := h.svc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("note_id = ?", note.ID).Delete(&models.NoteLike{}).Error; err != nil {
			return err
		}
		if err := tx.Where("note_id = ?", note.ID).Delete(&models.Bookmark{}).Error; err != nil {
			return err
		}
		if err := tx.Model(note).Association("Tags").Clear(); err != nil {
			return err
		}
		return tx.Delete(note).Error
	})
	if err != nil {
		zap.L().Error("delete note failed", zap.Error(err), zap.Uint("note_id", note.ID))
		utils.Error(c, http.StatusInternalServerError, "internal server error")
		return
	}

	if note.FilePath != "" {
		if err := h.svc.Storage.Remove(c.Request.Context(), note.FilePath); err != nil {
			// 记录已经删了，文件删不掉只记日志
			zap.L().Warn("failed to remove note file", zap.Error(err), zap.String("object", note.FilePath))
		}
	}

	utils.Message(c, "Note deleted successfully")
}
