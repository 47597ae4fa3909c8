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

	// 配了 Log.File 则审计日志同时落盘切割
	var log *zap.Logger
	var cleanup func()
	if cfg.Log.File != "" {
		log, cleanup = logger.NewWithRotate(cfg.Log.Level, cfg.Log.JSON,
			cfg.Log.File, cfg.Log.MaxSizeMB, cfg.Log.MaxBackups, cfg.Log.MaxAgeDays, cfg.Log.Compress)
	} else {
		log, cleanup = logger.New(cfg.Log.Level, cfg.Log.JSON)
	}
	defer cleanup()

	db := mustOpenDB(cfg, log)
	log.Info("database connected", zap.String("driver", cfg.DB.Driver))

	if cfg.DB.AutoMigrate {
		if err := db.AutoMigrate(&domain.Role{}, &domain.User{}); err != nil {
			log.Fatal("automigrate failed", zap.Error(err))
		}
		log.Info("automigrate done")
	}

	var store cache.Store
	if cfg.Redis.Addr != "" {
		store = cache.NewRedis(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		log.Info("redis connected", zap.String("addr", cfg.Redis.Addr))
	} else {
		store = cache.NewMemory()
		log.Warn("redis not configured, using in-process cache")
	}

	ttl := time.Duration(cfg.Cache.ListTTLSec) * time.Second
	svc := service.NewDirectory(repo.NewUserRepo(db), cache.New(store), log, ttl)
	r := router.NewUsersEngine(log, handler.NewUserHandler(svc), cfg.CORS.Origins)

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
	log.Info("users service starting",
		zap.String("addr", addr),
		zap.String("open", "http://"+host4human+":"+fmt.Sprint(cfg.App.HTTP.Port)),
		zap.String("metrics", "http://"+host4human+":"+fmt.Sprint(cfg.App.HTTP.Port)+"/metrics"),
	)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("users service start FAILED", zap.Error(err))
		}
	}()
	log.Info("users service started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)
	log.Info("users service stopped gracefully")
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
