package auth

import (
	"errors"
	"net/http"

	"noteshare/internal/models"
	"noteshare/internal/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func (h *AuthHandler) Me(c *gin.Context) {
	userID, err := utils.GetUserID(c)
	if err != nil {
		utils.Error(c, http.StatusUnauthorized, err.Error())
		return
	}

	var user models.User
	if err := h.svc.DB.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Error(c, http.StatusNotFound, "user not found")
		} else {
			utils.Error(c, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	utils.Success(c, gin.H{
		"id":     user.ID,
		"name":   user.Name,
		"email":  user.Email,
		"avatar": user.Avatar,
		"bio":    user.Bio,
	})
}
