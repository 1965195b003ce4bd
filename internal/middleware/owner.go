package middleware

import (
	"errors"
	"net/http"
	"strconv"

	"noteshare/internal/models"
	"noteshare/internal/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const ContextNoteKey = "owned_note"

// NoteOwner 保证 :id 对应的笔记存在且属于当前用户。
// 不存在是 404，不是作者是 403，通过后把笔记放进 context 给 handler 复用。
func NoteOwner(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := utils.GetUserID(c)
		if err != nil {
			utils.Error(c, http.StatusUnauthorized, err.Error())
			return
		}

		noteID, err := strconv.ParseUint(c.Param("id"), 10, 32)
		if err != nil {
			utils.Error(c, http.StatusBadRequest, "invalid note id")
			return
		}

		var note models.Note
		if err := db.First(&note, uint(noteID)).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				utils.Error(c, http.StatusNotFound, "note not found")
			} else {
				utils.Error(c, http.StatusInternalServerError, "internal server error")
			}
			return
		}

		if note.AuthorID != userID {
			utils.Error(c, http.StatusForbidden, "not authorized to perform this action")
			return
		}

		c.Set(ContextNoteKey, &note)
		c.Next()
	}
}

// OwnedNote 取 NoteOwner 放进 context 的笔记
func OwnedNote(c *gin.Context) (*models.Note, bool) {
	raw, exists := c.Get(ContextNoteKey)
	if !exists {
		return nil, false
	}
	note, ok := raw.(*models.Note)
	return note, ok
}
