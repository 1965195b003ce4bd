package notification

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

// MarkAsRead 只能标记自己的通知
func (h *NotificationHandler) MarkAsRead(c *gin.Context) {
	notificationID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid notification id")
		return
	}

	userID, err := utils.GetUserID(c)
	if err != nil {
		utils.Error(c, http.StatusUnauthorized, err.Error())
		return
	}

	var notification models.Notification
	if err := h.svc.DB.First(&notification, uint(notificationID)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Error(c, http.StatusNotFound, "notification not found")
		} else {
			utils.Error(c, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	if notification.UserID != userID {
		utils.Error(c, http.StatusForbidden, "not authorized")
		return
	}

	if err := h.svc.DB.Model(&notification).Update("read", true).Error; err != nil {
		zap.L().Error("mark notification read failed", zap.Error(err))
		utils.Error(c, http.StatusInternalServerError, "internal server error")
		return
	}
	notification.Read = true

	utils.Success(c, notification)
}

// MarkAllAsRead 把当前用户所有未读一次性置为已读
func (h *NotificationHandler) MarkAllAsRead(c *gin.Context) {
	userID, err := utils.GetUserID(c)
	if err != nil {
		utils.Error(c, http.StatusUnauthorized, err.Error())
		return
	}

	err = h.svc.DB.Model(&models.Notification{}).
		Where("user_id = ? AND `read` = ?", userID, false).
		Update("read", true).Error
	if err != nil {
		zap.L().Error("mark all notifications read failed", zap.Error(err))
		utils.Error(c, http.StatusInternalServerError, "internal server error")
		return
	}

	utils.Message(c, "All notifications marked as read")
}
