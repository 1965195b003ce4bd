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

// Delete 只能删自己的通知
func (h *NotificationHandler) Delete(c *gin.Context) {
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

	if err := h.svc.DB.Delete(&notification).Error; err != nil {
		zap.L().Error("delete notification failed", zap.Error(err))
		utils.Error(c, http.StatusInternalServerError, "internal server error")
		return
	}

	utils.Message(c, "Notification deleted")
}
