package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Success 和 Error 统一响应格式：{"success": bool, ...}
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    data,
	})
}

func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    data,
	})
}

// SuccessWith 在顶层附加额外字段（分页信息等），和 data 平级
func SuccessWith(c *gin.Context, data interface{}, extra gin.H) {
	body := gin.H{
		"success": true,
		"data":    data,
	}
	for k, v := range extra {
		body[k] = v
	}
	c.JSON(http.StatusOK, body)
}

func Message(c *gin.Context, msg string) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": msg,
	})
}

func Error(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, gin.H{
		"success": false,
		"error":   msg,
	})
}
