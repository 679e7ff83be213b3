package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/akhilkushwaha/portfolio-backend/internal/config"
	"github.com/akhilkushwaha/portfolio-backend/internal/handler"
	"github.com/akhilkushwaha/portfolio-backend/internal/leetcode"
	"github.com/akhilkushwaha/portfolio-backend/internal/logger"
	"github.com/akhilkushwaha/portfolio-backend/internal/repository"
	"github.com/akhilkushwaha/portfolio-backend/internal/repository/mongodb"
	"github.com/akhilkushwaha/portfolio-backend/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Local development keeps MONGO_URI and friends in a .env file.
	_ = godotenv.Load()

	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatalf("config loading failed: %v", err)
	}

	appLogger, err := logger.New(&cfg.Logger)
	if err != nil {
		log.Fatalf("logger initialization failed: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	repo, err := repository.New(ctx, cfg, &appLogger)
	if err != nil {
		appLogger.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		if err := repo.Close(context.Background()); err != nil {
			appLogger.Warn().Err(err).Msg("mongodb disconnect failed")
		}
	}()

	if err := mongodb.EnsureIndexes(ctx, repo.Database()); err != nil {
		appLogger.Warn().Err(err).Msg("contact index creation failed")
	}

	client := leetcode.New(leetcode.Config{
		Endpoint: cfg.LeetCode.Endpoint,
		Timeout:  cfg.LeetCode.Timeout,
	}, appLogger)

	statsSvc := service.NewStatsService(client, service.StatsConfig{
		Username:   cfg.LeetCode.Username,
		Attempts:   cfg.LeetCode.Attempts,
		RetryDelay: cfg.LeetCode.RetryDelay,
	}, appLogger)
	contactSvc := service.NewContactService(
		mongodb.NewContactRepository(repo.Database(), appLogger),
		appLogger,
	)

	if cfg.App.Env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	engine.Use(gin.Recovery())

	staticDir := ""
	if cfg.App.Env == "prod" {
		staticDir = cfg.App.StaticDir
	}
	handler.Register(engine, mongodb.NewPinger(repo.Client()), statsSvc, contactSvc, client, handler.Options{
		Logger:    appLogger,
		StaticDir: staticDir,
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		appLogger.Info().
			Int("port", cfg.App.Port).
			Str("target_user", cfg.LeetCode.Username).
			Msg("server started")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	appLogger.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Error().Err(err).Msg("graceful shutdown failed")
	}
}
