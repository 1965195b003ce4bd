package note

import (
	"net/http"
	"strings"

	"noteshare/internal/middleware"
	"noteshare/internal/utils"
	"noteshare/internal/validators"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Update 只改传了的字段（PATCH 语义），作者校验在 NoteOwner 中间件做完了
func (h *NoteHandler) Update(c *gin.Context) {
	note, ok := middleware.OwnedNote(c)
	if !ok {
		utils.Error(c, http.StatusInternalServerError, "internal server error")
		return
	}

	var req validators.UpdateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid request body")
		return
	}

	updates := make(map[string]interface{})
	if req.Title != nil && strings.TrimSpace(*req.Title) != "" {
		updates["title"] = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		updates["description"] = strings.TrimSpace(*req.Description)
	}

	if len(updates) > 0 {
		if err := h.svc.DB.Model(note).Updates(updates).Error; err != nil {
			zap.L().Error("update note failed", zap.Error(err))
			utils.Error(c, http.StatusInternalServerError, "internal server error")
			return
		}
	}

	if req.Tags != nil {
		tags, err := upsertTags(h.svc.DB, splitTags(*req.Tags))
		if err != nil {
			zap.L().Error("upsert tags failed", zap.Error(err))
			utils.Error(c, http.StatusInternalServerError, "internal server error")
			return
		}
		if err := h.svc.DB.Model(note).Association("Tags").Replace(tags); err != nil {
			zap.L().Error("replace tags failed", zap.Error(err))
			utils.Error(c, http.StatusInternalServerError, "internal server error")
			return
		}
	}

	if err := h.svc.DB.Preload("Tags").First(note, note.ID).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "internal server error")
		return
	}

	view, err := h.noteView(*note, note.AuthorID)
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "internal server error")
		return
	}
	utils.Success(c, view)
}
