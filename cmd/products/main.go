package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "go.uber.org/automaxprocs"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"go-shop-services/internal/core/cache"
	"go-shop-services/internal/core/config"
	"go-shop-services/internal/core/database"
	"go-shop-services/internal/core/logger"
	"go-shop-services/internal/core/server"
	"go-shop-services/internal/domain"
	"go-shop-services/internal/repo"
	"go-shop-services/internal/service"
	"go-shop-services/internal/transport/http/handler"
	"go-shop-services/internal/transport/http/router"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load(os.Getenv("CONFIG_PATH"))
	log, cleanup := logger.New(cfg.Log.Level, cfg.Log.JSON)
	defer cleanup()

	db := mustOpenDB(cfg, log)
	log.Info("database connected", zap.String("driver", cfg.DB.Driver))

	if cfg.DB.AutoMigrate {
		if err := db.AutoMigrate(&domain.Category{}, &domain.Product{}); err != nil {
			log.Fatal("automigrate failed", zap.Error(err))
		}
		log.Info("automigrate done")
	}

	// 缓存：没配 redis 就用进程内兜底（仅限本地开发）
	var store cache.Store
	if cfg.Redis.Addr != "" {
		store = cache.NewRedis(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		log.Info("redis connected", zap.String("addr", cfg.Redis.Addr))
	} else {
		store = cache.NewMemory()
		log.Warn("redis not configured, using in-process cache")
	}

	ttl := time.Duration(cfg.Cache.ListTTLSec) * time.Second
	svc := service.NewCatalog(repo.NewProductRepo(db), cache.New(store), log, ttl)
	r := router.NewProductsEngine(log, handler.NewProductHandler(svc))

	addr := server.Addr(cfg.App.HTTP.Host, cfg.App.HTTP.Port)
	srv := server.BuildServer(
		addr, r,
		time.Duration(cfg.App.HTTP.ReadTimeoutSec)*time.Second,
		time.Duration(cfg.App.HTTP.WriteTimeoutSec)*time.Second,
		time.Duration(cfg.App.HTTP.IdleTimeoutSec)*time.Second,
	)

	host4human := cfg.App.HTTP.Host
	if host4human == "" || host4human == "0.0.0.0" {
		host4human = "127.0.0.1"
	}
	log.Info("products service starting",
		zap.String("addr", addr),
		zap.String("open", "http://"+host4human+":"+fmt.Sprint(cfg.App.HTTP.Port)),
	)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("products service start FAILED", zap.Error(err))
		}
	}()
	log.Info("products service started")

	// 优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)
	log.Info("products service stopped gracefully")
}

func mustOpenDB(cfg *config.Config, l *zap.Logger) *gorm.DB {
	db, err := database.NewGorm(database.Opts{
		Driver:             cfg.DB.Driver,
		DSN:                cfg.DB.DSN,
		MaxOpenConns:       cfg.DB.MaxOpenConns,
		MaxIdleConns:       cfg.DB.MaxIdleConns,
		ConnMaxLifetimeMin: cfg.DB.ConnMaxLifetimeMin,
		LogLevel:           cfg.DB.LogLevel,
	})
	if err != nil {
		l.Fatal("db open", zap.Error(err))
	}
	return db
}
