// Package pricing talks to the external metal and currency price providers
// and stores their readings.
package pricing

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/segyhp/islamicfin-engine/internal/domain"

	"github.com/shopspring/decimal"
)

// GramsPerTroyOunce converts USD per troy ounce quotes to per gram.
var GramsPerTroyOunce = decimal.RequireFromString("31.1035")

// SpotQuote is one spot reading in USD per troy ounce.
type SpotQuote struct {
	GoldUSD   decimal.Decimal
	SilverUSD decimal.Decimal
	Source    string
}

// SpotSource returns gold and silver spot prices.
type SpotSource interface {
	Name() string
	FetchSpot(ctx context.Context) (SpotQuote, error)
}

// FXSource returns how many units of currency one USD buys.
type FXSource interface {
	Name() string
	FetchRate(ctx context.Context, currency string) (decimal.Decimal, error)
}

// PriceCache stores metal price readings. Get returns nil, nil on a miss.
type PriceCache interface {
	Get(ctx context.Context, key string) (*domain.MetalPrices, error)
	Set(ctx context.Context, key string, prices *domain.MetalPrices, ttl time.Duration) error
}

// CacheKey names the cache entry of the gold/silver pair in a currency.
func CacheKey(currency string) string {
	return "metals:XAU-XAG:" + strings.ToUpper(currency)
}

// StatusError is returned when a provider answers with a non 2xx status.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("GET %s: unexpected status %d", e.URL, e.StatusCode)
}

func getJSON(ctx context.Context, client *http.Client, url string, headers map[string]string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return &StatusError{URL: url, StatusCode: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s: %w", url, err)
	}
	return nil
}

func defaultClient(client *http.Client) *http.Client {
	if client != nil {
		return client
	}
	return &http.Client{Timeout: 10 * time.Second}
}
