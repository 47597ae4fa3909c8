package handler

import (
	"net/http"
	"os"
	"strconv"

	"github.com/gin-gonic/gin"

	"go-shop-services/internal/domain"
)

func Health(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) }

// Whoami 部署诊断：返回实例主机名
func Whoami(c *gin.Context) {
	host, _ := os.Hostname()
	c.JSON(http.StatusOK, gin.H{"hostname": host})
}

func listParamsFromQuery(c *gin.Context) domain.ListParams {
	return domain.ListParams{
		Limit:  atoiDefault(c.Query("limit"), domain.DefaultLimit),
		Offset: atoiDefault(c.Query("offset"), 0),
		Order:  domain.ParseOrder(c.Query("order")),
	}
}

func atoiDefault(s string, def int) int {
	if s == "" {
		return def
	}
	if v, err := strconv.Atoi(s); err == nil {
		return v
	}
	return def
}

// parseID 路径 id 解析；非数字按不存在处理
func parseID(c *gin.Context) (uint, bool) {
	v, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(v), true
}
