// Package app wires configuration into the services shared by the server,
// the scheduler and the CLI.
package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/segyhp/islamicfin-engine/internal/config"
	"github.com/segyhp/islamicfin-engine/internal/pricing"
	"github.com/segyhp/islamicfin-engine/internal/repository"
	"github.com/segyhp/islamicfin-engine/internal/service"

	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// NewRedis returns nil when no redis host is configured.
func NewRedis(cfg *config.Config) *redis.Client {
	if !cfg.RedisEnabled() {
		return nil
	}
	return redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
}

// NewPriceCache shares prices through redis when available.
func NewPriceCache(client *redis.Client) pricing.PriceCache {
	if client == nil {
		return pricing.NewMemoryCache(nil)
	}
	return pricing.NewRedisCache(client)
}

// NewPriceService builds the source chain: metals.live, then goldapi.io when
// a key is configured.
func NewPriceService(cfg *config.Config, cache pricing.PriceCache, logger *zap.Logger) *service.PriceService {
	client := &http.Client{Timeout: cfg.GetPriceFetchTimeout()}

	spot := []pricing.SpotSource{pricing.NewMetalsLiveSource(cfg.Prices.MetalsLiveURL, client)}
	if cfg.Prices.GoldAPIKey != "" {
		spot = append(spot, pricing.NewGoldAPISource(cfg.Prices.GoldAPIURL, cfg.Prices.GoldAPIKey, client))
	}
	fx := pricing.NewExchangeRateAPISource(cfg.Prices.ExchangeRateURL, client)

	return service.NewPriceService(cache, spot, fx, service.PriceOptionsFromConfig(cfg), logger)
}

// OpenHistory connects the history store. It returns nil, nil when history
// is disabled.
func OpenHistory(ctx context.Context, cfg *config.Config) (*sqlx.DB, error) {
	if !cfg.HistoryEnabled() {
		return nil, nil
	}

	db, err := repository.Open(cfg)
	if err != nil {
		return nil, fmt.Errorf("connect %s: %w", cfg.Database.Driver, err)
	}
	if err := repository.EnsureSchema(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}
	return db, nil
}
