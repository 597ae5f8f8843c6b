package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SourceFallback tags readings synthesized when every price source failed.
const SourceFallback = "fallback"

// MetalPrices is both the cached entry and the wire response of the metal
// price lookup. Per gram values are in the local currency, per ounce in USD.
type MetalPrices struct {
	GoldPricePerGram    decimal.Decimal `json:"gold_price_per_gram"`
	SilverPricePerGram  decimal.Decimal `json:"silver_price_per_gram"`
	GoldPricePerOunce   decimal.Decimal `json:"gold_price_per_ounce"`
	SilverPricePerOunce decimal.Decimal `json:"silver_price_per_ounce"`
	Currency            string          `json:"currency"`
	LastUpdated         time.Time       `json:"last_updated"`
	Source              string          `json:"source"`
}

// FreshAt reports whether the entry is still inside its time to live.
func (p *MetalPrices) FreshAt(now time.Time, ttl time.Duration) bool {
	if p == nil || p.LastUpdated.IsZero() {
		return false
	}
	return now.Sub(p.LastUpdated) < ttl
}

type ExchangeRate struct {
	Rate         decimal.Decimal `json:"rate"`
	CurrencyPair string          `json:"currency_pair"`
	Source       string          `json:"source"`
	Timestamp    time.Time       `json:"timestamp"`
}
