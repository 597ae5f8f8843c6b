package service

import (
	"context"
	"strings"
	"time"

	"github.com/segyhp/islamicfin-engine/internal/config"
	"github.com/segyhp/islamicfin-engine/internal/domain"
	"github.com/segyhp/islamicfin-engine/internal/metrics"
	"github.com/segyhp/islamicfin-engine/internal/pricing"
	"github.com/segyhp/islamicfin-engine/pkg/utils"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// PriceOptions tunes the PriceService.
type PriceOptions struct {
	Currency       string
	CacheTTL       time.Duration
	FetchTimeout   time.Duration
	FallbackGold   decimal.Decimal
	FallbackSilver decimal.Decimal
	FallbackFXRate decimal.Decimal
	Now            func() time.Time
}

// PriceOptionsFromConfig maps the prices configuration section.
func PriceOptionsFromConfig(cfg *config.Config) PriceOptions {
	return PriceOptions{
		Currency:       cfg.Prices.Currency,
		CacheTTL:       cfg.GetPriceCacheTTL(),
		FetchTimeout:   cfg.GetPriceFetchTimeout(),
		FallbackGold:   cfg.GetFallbackGold(),
		FallbackSilver: cfg.GetFallbackSilver(),
		FallbackFXRate: cfg.GetFallbackFXRate(),
	}
}

// PriceService serves gold and silver prices per gram in the local currency.
// A reading is reused while younger than the cache TTL; otherwise the spot
// sources are tried in order and, when all fail, fixed fallback prices are
// used. Concurrent misses may each fetch; the last write wins.
type PriceService struct {
	cache  pricing.PriceCache
	spot   []pricing.SpotSource
	fx     pricing.FXSource
	opts   PriceOptions
	logger *zap.Logger
}

func NewPriceService(
	cache pricing.PriceCache,
	spot []pricing.SpotSource,
	fx pricing.FXSource,
	opts PriceOptions,
	logger *zap.Logger,
) *PriceService {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Currency == "" {
		opts.Currency = "PKR"
	}
	opts.Currency = strings.ToUpper(opts.Currency)
	if logger == nil {
		logger = zap.NewNop()
	}

	return &PriceService{
		cache:  cache,
		spot:   spot,
		fx:     fx,
		opts:   opts,
		logger: logger,
	}
}

// MetalPrices returns the cached reading when it is still fresh, or fetches
// a new one. Source failures never surface as errors.
func (s *PriceService) MetalPrices(ctx context.Context) (*domain.MetalPrices, error) {
	key := pricing.CacheKey(s.opts.Currency)

	cached, err := s.cache.Get(ctx, key)
	if err != nil {
		s.logger.Warn("price cache read failed", zap.String("key", key), zap.Error(err))
	}

	now := s.opts.Now()
	switch {
	case cached.FreshAt(now, s.opts.CacheTTL):
		metrics.PriceCacheLookups.WithLabelValues(metrics.CacheHit).Inc()
		return cached, nil
	case cached != nil:
		metrics.PriceCacheLookups.WithLabelValues(metrics.CacheStale).Inc()
	default:
		metrics.PriceCacheLookups.WithLabelValues(metrics.CacheMiss).Inc()
	}

	return s.Refresh(ctx)
}

// Refresh fetches a new reading regardless of the cache and stores it.
func (s *PriceService) Refresh(ctx context.Context) (*domain.MetalPrices, error) {
	quote := s.fetchSpot(ctx)
	rate, _ := s.fetchRate(ctx)

	prices := &domain.MetalPrices{
		GoldPricePerGram:    perGram(quote.GoldUSD, rate),
		SilverPricePerGram:  perGram(quote.SilverUSD, rate),
		GoldPricePerOunce:   utils.RoundMoney(quote.GoldUSD),
		SilverPricePerOunce: utils.RoundMoney(quote.SilverUSD),
		Currency:            s.opts.Currency,
		LastUpdated:         s.opts.Now().UTC(),
		Source:              quote.Source,
	}

	key := pricing.CacheKey(s.opts.Currency)
	if err := s.cache.Set(ctx, key, prices, s.opts.CacheTTL); err != nil {
		s.logger.Warn("price cache write failed", zap.String("key", key), zap.Error(err))
	}

	return prices, nil
}

// ExchangeRate returns the live USD rate of the configured currency, or the
// fallback rate.
func (s *PriceService) ExchangeRate(ctx context.Context) (*domain.ExchangeRate, error) {
	rate, source := s.fetchRate(ctx)

	return &domain.ExchangeRate{
		Rate:         rate,
		CurrencyPair: "USD/" + s.opts.Currency,
		Source:       source,
		Timestamp:    s.opts.Now().UTC(),
	}, nil
}

func (s *PriceService) fetchSpot(ctx context.Context) pricing.SpotQuote {
	for _, source := range s.spot {
		fetchCtx, cancel := s.withTimeout(ctx)
		quote, err := source.FetchSpot(fetchCtx)
		cancel()

		if err == nil {
			metrics.PriceFetches.WithLabelValues(source.Name(), metrics.OutcomeSuccess).Inc()
			return quote
		}

		metrics.PriceFetches.WithLabelValues(source.Name(), metrics.OutcomeError).Inc()
		s.logger.Warn("spot price source failed",
			zap.String("source", source.Name()),
			zap.Error(err),
		)
	}

	return pricing.SpotQuote{
		GoldUSD:   s.opts.FallbackGold,
		SilverUSD: s.opts.FallbackSilver,
		Source:    domain.SourceFallback,
	}
}

func (s *PriceService) fetchRate(ctx context.Context) (decimal.Decimal, string) {
	if s.fx == nil {
		return s.opts.FallbackFXRate, domain.SourceFallback
	}

	fetchCtx, cancel := s.withTimeout(ctx)
	defer cancel()

	rate, err := s.fx.FetchRate(fetchCtx, s.opts.Currency)
	if err != nil {
		metrics.PriceFetches.WithLabelValues(s.fx.Name(), metrics.OutcomeError).Inc()
		s.logger.Warn("exchange rate source failed",
			zap.String("source", s.fx.Name()),
			zap.String("currency", s.opts.Currency),
			zap.Error(err),
		)
		return s.opts.FallbackFXRate, domain.SourceFallback
	}

	metrics.PriceFetches.WithLabelValues(s.fx.Name(), metrics.OutcomeSuccess).Inc()
	return rate, s.fx.Name()
}

func (s *PriceService) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.opts.FetchTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.opts.FetchTimeout)
}

// perGram converts USD per troy ounce into local currency per gram.
func perGram(usdPerOunce, rate decimal.Decimal) decimal.Decimal {
	return utils.RoundMoney(usdPerOunce.Div(pricing.GramsPerTroyOunce).Mul(rate))
}
