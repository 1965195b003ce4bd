package middleware

import (
	"net/http"
	"strings"

	"noteshare/config"
	"noteshare/internal/infra/cache"
	"noteshare/internal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// JWTAuth 必须登录：解析 Bearer token，把 user_id 放进 context。
// rdb 可以为 nil（Redis 不可用时跳过黑名单检查）。
func JWTAuth(cfg *config.Config, rdb *cache.RedisCache) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := resolveUser(c, cfg, rdb)
		if !ok {
			utils.Error(c, http.StatusUnauthorized, "not authorized to access this route")
			return
		}
		c.Set(utils.ContextUserIDKey, userID)
		c.Next()
	}
}

// OptionalAuth 匿名也放行，登录了就注入 user_id（浏览接口的 viewer 标注用）
func OptionalAuth(cfg *config.Config, rdb *cache.RedisCache) gin.HandlerFunc {
	return func(c *gin.Context) {
		if userID, ok := resolveUser(c, cfg, rdb); ok {
			c.Set(utils.ContextUserIDKey, userID)
		}
		c.Next()
	}
}

func resolveUser(c *gin.Context, cfg *config.Config, rdb *cache.RedisCache) (uint, bool) {
	authHeader := c.GetHeader("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return 0, false
	}
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")

	token, err := utils.ValidateToken(cfg, tokenString)
	if err != nil {
		return 0, false
	}
	claims, err := utils.ExtractClaims(token)
	if err != nil {
		return 0, false
	}

	if rdb != nil {
		blacklisted, err := utils.IsTokenBlacklisted(c.Request.Context(), rdb.Client(), tokenString)
		if err != nil {
			// Redis 挂了降级为只验签名，不拦截
			zap.L().Warn("blacklist check failed, skipping", zap.Error(err))
		} else if blacklisted {
			return 0, false
		}
	}

	// JSON 数字解析出来是 float64
	uidFloat, ok := claims["user_id"].(float64)
	if !ok || uidFloat <= 0 {
		return 0, false
	}
	return uint(uidFloat), true
}
