package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"go-shop-services/internal/transport/http/handler"
	mdw "go-shop-services/internal/transport/http/middleware"
)

// NewUsersEngine 用户/角色服务：带 CORS 白名单、指标和审计日志
func NewUsersEngine(l *zap.Logger, uh *handler.UserHandler, corsOrigins []string) *gin.Engine {
	r := gin.New()

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowMethods = []string{"GET", "POST", "PUT", "DELETE"}
	if len(corsOrigins) > 0 {
		corsCfg.AllowOrigins = corsOrigins
	} else {
		corsCfg.AllowAllOrigins = true
	}

	r.Use(
		mdw.RequestID(),
		cors.New(corsCfg),
		mdw.ConcurrencyLimit(300),
		mdw.MaxBodyBytes(1<<20),
		mdw.Timeout(10*time.Second),
		mdw.SimpleRecovery(),
		mdw.Metrics(),
		mdw.AccessLog(l),
	)

	r.GET("/health", handler.Health)
	r.GET("/whoami", handler.Whoami)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.GET("/users", uh.List)
	r.GET("/users/:id", uh.Get)
	// 建用户限 5/min/IP
	r.POST("/users", mdw.RateLimitPerIP(rate.Every(time.Minute/5), 5), uh.Create)
	r.PUT("/users/:id", uh.Update)
	r.DELETE("/users/:id", uh.Delete)
	r.GET("/roles", uh.Roles)

	return r
}
