package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/segyhp/islamicfin-engine/internal/app"
	"github.com/segyhp/islamicfin-engine/internal/assistant"
	"github.com/segyhp/islamicfin-engine/internal/config"
	"github.com/segyhp/islamicfin-engine/internal/handler"
	"github.com/segyhp/islamicfin-engine/internal/repository"
	"github.com/segyhp/islamicfin-engine/internal/service"
	"github.com/segyhp/islamicfin-engine/internal/validation"
	"github.com/segyhp/islamicfin-engine/pkg/logger"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zl, err := logger.New(cfg.Logging)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()
	zap.ReplaceGlobals(zl)

	// History is optional
	db, err := app.OpenHistory(context.Background(), cfg)
	if err != nil {
		zl.Fatal("Failed to initialize database", zap.Error(err))
	}
	var historyRepo repository.HistoryRepository
	if db != nil {
		defer db.Close()
		historyRepo = repository.NewHistoryRepository(db)
	}

	// Redis is optional; prices are then cached in process
	redisClient := app.NewRedis(cfg)
	var redisCheck redis.UniversalClient
	if redisClient != nil {
		defer redisClient.Close()
		redisCheck = redisClient
	}

	validator := validation.New()
	calculatorService := service.NewCalculatorService(validator, historyRepo, zl)
	priceService := app.NewPriceService(cfg, app.NewPriceCache(redisClient), zl)
	chatService := service.NewChatService(validator, assistant.NewClientFromConfig(cfg), zl)
	historyService := service.NewHistoryService(historyRepo)

	router := handler.NewRouter(handler.Handlers{
		Calculator: handler.NewCalculatorHandler(calculatorService),
		Prices:     handler.NewPriceHandler(priceService),
		Chat:       handler.NewChatHandler(chatService),
		History:    handler.NewHistoryHandler(historyService),
		Health:     handler.NewHealthHandler(db, redisCheck, cfg.GetHealthTimeout()),
	}, cfg.Server.CORSAllowedOrigin, zl)

	server := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.GetReadTimeout(),
		WriteTimeout: cfg.GetWriteTimeout(),
	}

	// Start server in a goroutine
	go func() {
		zl.Info("Server starting",
			zap.String("addr", server.Addr),
			zap.String("env", cfg.Server.Env),
			zap.Bool("history", db != nil),
			zap.Bool("redis", redisClient != nil),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zl.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zl.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		zl.Fatal("Server forced to shutdown", zap.Error(err))
	}

	zl.Info("Server exited")
}
