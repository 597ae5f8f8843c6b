package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/segyhp/islamicfin-engine/internal/app"
	"github.com/segyhp/islamicfin-engine/internal/config"
	"github.com/segyhp/islamicfin-engine/internal/service"
	"github.com/segyhp/islamicfin-engine/pkg/logger"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zl, err := logger.New(cfg.Logging)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	redisClient := app.NewRedis(cfg)
	if redisClient == nil {
		zl.Warn("REDIS_HOST is not set; refreshed prices stay inside this process")
	} else {
		defer redisClient.Close()
	}

	priceService := app.NewPriceService(cfg, app.NewPriceCache(redisClient), zl)

	location, err := cfg.GetSchedulerLocation()
	if err != nil {
		zl.Fatal("Invalid scheduler timezone", zap.String("timezone", cfg.Scheduler.Timezone), zap.Error(err))
	}
	c := cron.New(cron.WithLocation(location), cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger)))

	if err := setupCronJobs(c, cfg, priceService, zl); err != nil {
		zl.Fatal("Error scheduling jobs", zap.Error(err))
	}

	// Warm the cache before the first tick
	refreshPrices(priceService, cfg.GetPriceFetchTimeout(), zl)

	c.Start()
	zl.Info("Scheduler started", zap.String("interval", cfg.Scheduler.Interval))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zl.Info("Shutting down scheduler...")
	<-c.Stop().Done()
	zl.Info("Scheduler stopped")
}

func setupCronJobs(c *cron.Cron, cfg *config.Config, prices *service.PriceService, zl *zap.Logger) error {
	schedule := fmt.Sprintf("@every %s", cfg.GetSchedulerInterval())

	_, err := c.AddFunc(schedule, func() {
		refreshPrices(prices, cfg.GetPriceFetchTimeout(), zl)
	})
	return err
}

// refreshPrices re-fetches metal prices so API instances sharing the cache
// rarely see a miss.
func refreshPrices(prices *service.PriceService, fetchTimeout time.Duration, zl *zap.Logger) {
	// Every source plus the exchange rate may use its full timeout.
	ctx, cancel := context.WithTimeout(context.Background(), 4*fetchTimeout)
	defer cancel()

	result, err := prices.Refresh(ctx)
	if err != nil {
		zl.Error("price refresh failed", zap.Error(err))
		return
	}
	zl.Info("prices refreshed",
		zap.String("source", result.Source),
		zap.String("gold_per_gram", result.GoldPricePerGram.String()),
		zap.String("silver_per_gram", result.SilverPricePerGram.String()),
		zap.String("currency", result.Currency),
	)
}
