package user

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

// PublicProfile 公开的用户主页：统计 + 相对 viewer 的 is_following
func (h *UserHandler) PublicProfile(c *gin.Context) {
	targetID64, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid user id")
		return
	}
	targetID := uint(targetID64)
	viewerID := utils.ViewerID(c)

	var target models.User
	if err := h.svc.DB.First(&target, targetID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Error(c, http.StatusNotFound, "user not found")
		} else {
			zap.L().Error("load user failed", zap.Error(err))
			utils.Error(c, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	var notesCount int64
	h.svc.DB.Model(&models.Note{}).Where("author_id = ?", targetID).Count(&notesCount)

	isFollowing := false
	if viewerID > 0 && viewerID != targetID {
		var count int64
		h.svc.DB.Model(&models.UserFollow{}).
			Where("follower_id = ? AND followed_id = ?", viewerID, targetID).
			Count(&count)
		isFollowing = count > 0
	}

	utils.Success(c, gin.H{
		"user": models.UserProfile{
			ID:             target.ID,
			Name:           target.Name,
			Avatar:         target.Avatar,
			Bio:            target.Bio,
			FollowersCount: target.FollowerCount,
			FollowingCount: target.FollowingCount,
			NotesCount:     notesCount,
			IsFollowing:    isFollowing,
		},
	})
}
