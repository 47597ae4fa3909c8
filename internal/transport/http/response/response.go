package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// 对外直接用 HTTP 状态码，错误体固定 {"error": msg}

func Err(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"error": msg})
}

// AbortErr 中间件用：写错误体并截断后续 handler
func AbortErr(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, gin.H{"error": msg})
}

func Message(c *gin.Context, msg string) {
	c.JSON(http.StatusOK, gin.H{"message": msg})
}
