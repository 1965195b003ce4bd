package note

import (
	"errors"
	"fmt"
	"net/http"
	"path"
	"strconv"

	"noteshare/internal/models"
	"noteshare/internal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Download 公开接口：每次成功下载都给计数器 +1（匿名也算）。
// 记录在而对象不在是孤儿笔记，返回 404 而不是 500。
func (h *NoteHandler) Download(c *gin.Context) {
	noteID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid note id")
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

	info, err := h.svc.Storage.Stat(c.Request.Context(), note.FilePath)
	if err != nil {
		utils.Error(c, http.StatusNotFound, "File not found")
		return
	}

	obj, err := h.svc.Storage.Get(c.Request.Context(), note.FilePath)
	if err != nil {
		zap.L().Error("open object failed", zap.Error(err), zap.String("object", note.FilePath))
		utils.Error(c, http.StatusInternalServerError, "internal server error")
		return
	}
	defer obj.Close()

	err = h.svc.DB.Model(&models.Note{}).
		Where("id = ?", note.ID).
		Update("downloads", gorm.Expr("downloads + 1")).Error
	if err != nil {
		zap.L().Error("increment downloads failed", zap.Error(err), zap.Uint("note_id", note.ID))
	}

	contentType := info.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	extraHeaders := map[string]string{
		"Content-Disposition": fmt.Sprintf("attachment; filename=%q", path.Base(note.FilePath)),
	}
	c.DataFromReader(http.StatusOK, info.Size, contentType, obj, extraHeaders)
}
