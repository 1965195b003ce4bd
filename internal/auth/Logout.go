package auth

import (
	"net/http"
	"strings"

	"noteshare/internal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Logout 把当前token的jti拉黑到过期为止。Redis 不可用时登出只在客户端生效。
func (h *AuthHandler) Logout(c *gin.Context) {
	if _, err := utils.GetUserID(c); err != nil {
		utils.Error(c, http.StatusUnauthorized, err.Error())
		return
	}

	if h.svc.Cache == nil {
		utils.Message(c, "logged out")
		return
	}

	tokenString := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
	err := utils.AddTokenToBlacklist(c.Request.Context(), h.svc.Cache.Client(),
		tokenString, h.svc.Config.JWTExpirationTime)
	if err != nil {
		zap.L().Warn("failed to blacklist token", zap.Error(err))
	}

	utils.Message(c, "logged out")
}
