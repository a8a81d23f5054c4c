package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/sneha-510/smart-coalmine-system/config"
	"github.com/sneha-510/smart-coalmine-system/internal/api/handler"
	"github.com/sneha-510/smart-coalmine-system/internal/api/router"
	"github.com/sneha-510/smart-coalmine-system/internal/repository"
	"github.com/sneha-510/smart-coalmine-system/internal/service"
	"github.com/sneha-510/smart-coalmine-system/pkg/database"
	applogger "github.com/sneha-510/smart-coalmine-system/pkg/logger"
	"github.com/sneha-510/smart-coalmine-system/pkg/redis"
	"github.com/sneha-510/smart-coalmine-system/pkg/session"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config failed: %v\n", err)
		os.Exit(1)
	}

	// 2. Initialize logging
	logger, err := applogger.NewLogger(&cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger failed: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("starting up",
		zap.Int("port", cfg.Server.Port),
		zap.String("log_level", cfg.Log.Level),
	)

	// 3. Connect to the database
	db, err := database.NewDB(&cfg.Database, logger)
	if err != nil {
		logger.Fatal("database connection failed", zap.Error(err))
	}
	logger.Info("database connected")

	// 3.1 Run migrations
	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatal("access underlying sql.DB failed", zap.Error(err))
	}
	if err := database.RunMigrations(sqlDB, logger); err != nil {
		logger.Fatal("database migration failed", zap.Error(err))
	}

	// 3.2 Seed the default accounts on an empty database
	if err := database.Seed(db, logger); err != nil {
		logger.Fatal("database seeding failed", zap.Error(err))
	}

	// 4. Connect to Redis (optional: degrade instead of aborting,
	// session revocation and rate limiting become no-ops)
	rdb, err := redis.NewClient(&cfg.Redis, logger)
	if err != nil {
		logger.Warn("redis connection failed, session revocation disabled", zap.Error(err))
		rdb = nil
	}

	// 5. Session token manager
	sessions := session.NewManager(&cfg.Auth)

	// 6. Dependency wiring: Repository -> Service -> Handler
	repo := repository.NewRepository(db)
	svc := service.NewService(cfg, repo, sessions, rdb, logger)
	h := handler.NewHandler(cfg, svc)

	// 7. Routes
	engine := router.Setup(cfg, h, sessions, rdb, logger)

	// 8. HTTP server with graceful shutdown
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("http server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("http server failed", zap.Error(err))
		}
	}()

	// 9. Wait for a shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	logger.Info("shutdown signal received", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown failed", zap.Error(err))
	}

	if closeDB, _ := db.DB(); closeDB != nil {
		closeDB.Close()
	}

	if rdb != nil {
		rdb.Close()
	}

	logger.Info("server stopped")
}
