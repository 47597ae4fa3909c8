package router

import (
	"time"

	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"go-shop-services/internal/transport/http/handler"
	mdw "go-shop-services/internal/transport/http/middleware"
)

// NewProductsEngine 商品/分类服务
func NewProductsEngine(l *zap.Logger, ph *handler.ProductHandler) *gin.Engine {
	r := gin.New()

	r.Use(
		mdw.RequestID(),
		mdw.MaxBodyBytes(1<<20),
		mdw.Timeout(10*time.Second),
		ginzap.Ginzap(l, time.RFC3339, true),
		ginzap.RecoveryWithZap(l, true),
	)

	r.GET("/health", handler.Health)
	r.GET("/whoami", handler.Whoami)

	r.GET("/products", ph.List)
	r.GET("/products/:id", ph.Get)
	r.POST("/products", ph.Create)
	r.DELETE("/products/:id", ph.Delete)
	r.GET("/categories", ph.Categories)

	return r
}
