package utils

import (
	"errors"

	"github.com/gin-gonic/gin"
)

const ContextUserIDKey = "user_id"

// GetUserID 取 JWT 中间件放进 context 的当前用户ID
func GetUserID(c *gin.Context) (uint, error) {
	uidRaw, exists := c.Get(ContextUserIDKey)
	if !exists {
		return 0, errors.New("not authenticated")
	}

	uid, ok := uidRaw.(uint)
	if !ok {
		return 0, errors.New("invalid user id in context")
	}

	return uid, nil
}

// ViewerID 和 GetUserID 一样，但匿名访问返回 0 而不是错误
func ViewerID(c *gin.Context) uint {
	uid, err := GetUserID(c)
	if err != nil {
		return 0
	}
	return uid
}
