package comment

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

// Delete 只有评论作者本人能删
func (h *CommentHandler) Delete(c *gin.Context) {
	commentID, err := strconv.ParseUint(c.Param("commentId"), 10, 32)
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid comment id")
		return
	}

	userID, err := utils.GetUserID(c)
	if err != nil {
		utils.Error(c, http.StatusUnauthorized, err.Error())
		return
	}

	var comment models.Comment
	if err := h.svc.DB.First(&comment, uint(commentID)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Error(c, http.StatusNotFound, "comment not found")
		} else {
			utils.Error(c, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	if comment.AuthorID != userID {
		utils.Error(c, http.StatusForbidden, "not authorized to delete this comment")
		return
	}

	if err := h.svc.DB.Delete(&comment).Error; err != nil {
		zap.L().Error("delete comment failed", zap.Error(err))
		utils.Error(c, http.StatusInternalServerError, "internal server error")
		return
	}

	utils.Message(c, "Comment deleted successfully")
}
