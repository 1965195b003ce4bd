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

func (h *NoteHandler) Get(c *gin.Context) {
	noteID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid note id")
		return
	}
	viewerID := utils.ViewerID(c)

	var note models.Note
	if err := h.svc.DB.Preload("Tags").First(&note, uint(noteID)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Error(c, http.StatusNotFound, "note not found")
		} else {
			zap.L().Error("get note failed", zap.Error(err))
			utils.Error(c, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	view, err := h.noteView(note, viewerID)
	if err != nil {
		zap.L().Error("annotate note failed", zap.Error(err))
		utils.Error(c, http.StatusInternalServerError, "internal server error")
		return
	}

	var commentsCount int64
	h.svc.DB.Model(&models.Comment{}).Where("note_id = ?", note.ID).Count(&commentsCount)
	view.CommentsCount = int(commentsCount)

	utils.Success(c, view)
}
