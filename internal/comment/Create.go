package comment

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"noteshare/internal/models"
	"noteshare/internal/utils"
	"noteshare/internal/validators"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Create 发评论。空白内容直接拒掉；不是自己的笔记才通知作者。
func (h *CommentHandler) Create(c *gin.Context) {
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

	var req validators.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Content) == "" {
		utils.Error(c, http.StatusBadRequest, "Comment content is required")
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

	var author models.User
	if err := h.svc.DB.First(&author, userID).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "internal server error")
		return
	}

	comment := models.Comment{
		NoteID:   note.ID,
		AuthorID: userID,
		Content:  strings.TrimSpace(req.Content),
	}
	if err := h.svc.DB.Create(&comment).Error; err != nil {
		zap.L().Error("create comment failed", zap.Error(err))
		utils.Error(c, http.StatusInternalServerError, "internal server error")
		return
	}

	if note.AuthorID != userID {
		title := []rune(note.Title)
		short := note.Title
		if len(title) > 30 {
			short = string(title[:30]) + "..."
		}
		h.svc.Notifier.Notify(c.Request.Context(), note.AuthorID,
			fmt.Sprintf("%s commented on your note %q", author.Name, short))
	}

	utils.Created(c, commentView(comment, author))
}
