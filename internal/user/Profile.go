package user

import (
	"net/http"
	"path/filepath"
	"strings"

	"noteshare/internal/models"
	"noteshare/internal/utils"
	"noteshare/internal/validators"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// UpdateProfile 改昵称/简介，可选带一个 avatar 文件。
// 新头像传成功后旧的尽力删掉，删不掉不影响本次更新。
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID, err := utils.GetUserID(c)
	if err != nil {
		utils.Error(c, http.StatusUnauthorized, err.Error())
		return
	}

	var user models.User
	if err := h.svc.DB.First(&user, userID).Error; err != nil {
		utils.Error(c, http.StatusNotFound, "user not found")
		return
	}

	var req validators.UpdateProfileRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid request body")
		return
	}

	updates := make(map[string]interface{})
	if req.Name != nil && strings.TrimSpace(*req.Name) != "" {
		updates["name"] = strings.TrimSpace(*req.Name)
	}
	if req.Bio != nil {
		updates["bio"] = strings.TrimSpace(*req.Bio)
	}

	if file, err := c.FormFile("avatar"); err == nil {
		src, err := file.Open()
		if err != nil {
			utils.Error(c, http.StatusInternalServerError, "internal server error")
			return
		}
		defer src.Close()

		objectName := "avatars/" + uuid.NewString() + strings.ToLower(filepath.Ext(file.Filename))
		contentType := file.Header.Get("Content-Type")
		if contentType == "" {
			contentType = "application/octet-stream"
		}
		if _, err := h.svc.Storage.Put(c.Request.Context(), objectName, file.Size, src, contentType); err != nil {
			zap.L().Error("upload avatar failed", zap.Error(err))
			utils.Error(c, http.StatusInternalServerError, "internal server error")
			return
		}

		if user.Avatar != "" {
			if err := h.svc.Storage.Remove(c.Request.Context(), user.Avatar); err != nil {
				zap.L().Warn("failed to remove old avatar", zap.Error(err), zap.String("object", user.Avatar))
			}
		}
		updates["avatar"] = objectName
	}

	if len(updates) > 0 {
		if err := h.svc.DB.Model(&user).Updates(updates).Error; err != nil {
			zap.L().Error("update profile failed", zap.Error(err))
			utils.Error(c, http.StatusInternalServerError, "internal server error")
			return
		}
	}

	utils.Success(c, gin.H{
		"id":     user.ID,
		"name":   user.Name,
		"email":  user.Email,
		"avatar": user.Avatar,
		"bio":    user.Bio,
	})
}
