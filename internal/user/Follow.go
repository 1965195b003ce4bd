package user

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

// ToggleFollow 关注/取关由当前状态决定。关注自己直接 400，不落任何写。
// 关系行和两边的冗余计数在同一个事务里改，不会出现只写了一半的图。
// 取关也给对方发通知——沿用既有行为。
func (h *UserHandler) ToggleFollow(c *gin.Context) {
	targetID64, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid user id")
		return
	}
	targetID := uint(targetID64)

	me, err := utils.GetUserID(c)
	if err != nil {
		utils.Error(c, http.StatusUnauthorized, err.Error())
		return
	}

	if me == targetID {
		utils.Error(c, http.StatusBadRequest, "You cannot follow yourself")
		return
	}

	var target models.User
	if err := h.svc.DB.First(&target, targetID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Error(c, http.StatusNotFound, "user not found")
		} else {
			utils.Error(c, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	var caller models.User
	if err := h.svc.DB.First(&caller, me).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "internal server error")
		return
	}

	var existing int64
	err = h.svc.DB.Model(&models.UserFollow{}).
		Where("follower_id = ? AND followed_id = ?", me, targetID).
		Count(&existing).Error
	if err != nil {
		zap.L().Error("count follow relation failed", zap.Error(err))
		utils.Error(c, http.StatusInternalServerError, "internal server error")
		return
	}

	isFollowing := existing == 0
	if isFollowing {
		err = h.svc.DB.Transaction(func(tx *gorm.DB) error {
			rel := models.UserFollow{FollowerID: me, FollowedID: targetID}
			if err := tx.Create(&rel).Error; err != nil {
				return err
			}
			if err := tx.Model(&models.User{}).Where("id = ?", me).
				Update("following_count", gorm.Expr("following_count + 1")).Error; err != nil {
				return err
			}
			return tx.Model(&models.User{}).Where("id = ?", targetID).
				Update("follower_count", gorm.Expr("follower_count + 1")).Error
		})
	} else {
		err = h.svc.DB.Transaction(func(tx *gorm.DB) error {
			result := tx.Where("follower_id = ? AND followed_id = ?", me, targetID).
				Delete(&models.UserFollow{})
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return nil
			}
			if err := tx.Model(&models.User{}).Where("id = ?", me).
				Update("following_count", gorm.Expr("following_count - 1")).Error; err != nil {
				return err
			}
			return tx.Model(&models.User{}).Where("id = ?", targetID).
				Update("follower_count", gorm.Expr("follower_count - 1")).Error
		})
	}
	if err != nil {
		zap.L().Error("toggle follow failed", zap.Error(err),
			zap.Uint("me", me), zap.Uint("target", targetID))
		utils.Error(c, http.StatusInternalServerError, "internal server error")
		return
	}

	var message string
	if isFollowing {
		h.svc.Notifier.Notify(c.Request.Context(), targetID,
			fmt.Sprintf("%s has started following you.", caller.Name))
		message = fmt.Sprintf("You are now following %s", target.Name)
	} else {
		h.svc.Notifier.Notify(c.Request.Context(), targetID,
			fmt.Sprintf("%s has unfollowed you.", caller.Name))
		message = fmt.Sprintf("You have unfollowed %s", target.Name)
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"isFollowing": isFollowing,
		"message":     message,
	})
}
