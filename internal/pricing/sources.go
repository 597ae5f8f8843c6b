package pricing

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/shopspring/decimal"
)

// Source names reported on the metal price response.
const (
	SourceMetalsLive   = "metals.live"
	SourceGoldAPI      = "goldapi.io"
	SourceExchangeRate = "exchangerate-api.com"
)

// ErrIncompleteQuote is returned when a provider omits gold or silver.
var ErrIncompleteQuote = errors.New("quote is missing gold or silver")

// MetalsLiveSource reads the keyless /v1/spot endpoint, which answers with
// an array of {metal, price} entries.
type MetalsLiveSource struct {
	baseURL string
	client  *http.Client
}

func NewMetalsLiveSource(baseURL string, client *http.Client) *MetalsLiveSource {
	return &MetalsLiveSource{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  defaultClient(client),
	}
}

func (s *MetalsLiveSource) Name() string { return SourceMetalsLive }

func (s *MetalsLiveSource) FetchSpot(ctx context.Context) (SpotQuote, error) {
	var entries []struct {
		Metal string          `json:"metal"`
		Price decimal.Decimal `json:"price"`
	}
	if err := getJSON(ctx, s.client, s.baseURL+"/v1/spot", nil, &entries); err != nil {
		return SpotQuote{}, err
	}

	quote := SpotQuote{Source: SourceMetalsLive}
	for _, e := range entries {
		switch strings.ToLower(e.Metal) {
		case "gold":
			quote.GoldUSD = e.Price
		case "silver":
			quote.SilverUSD = e.Price
		}
	}
	if !quote.GoldUSD.IsPositive() || !quote.SilverUSD.IsPositive() {
		return SpotQuote{}, ErrIncompleteQuote
	}
	return quote, nil
}

// GoldAPISource needs an access token and one call per metal.
type GoldAPISource struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

func NewGoldAPISource(baseURL, apiKey string, client *http.Client) *GoldAPISource {
	return &GoldAPISource{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		client:  defaultClient(client),
	}
}

func (s *GoldAPISource) Name() string { return SourceGoldAPI }

func (s *GoldAPISource) FetchSpot(ctx context.Context) (SpotQuote, error) {
	gold, err := s.fetch(ctx, "XAU")
	if err != nil {
		return SpotQuote{}, err
	}
	silver, err := s.fetch(ctx, "XAG")
	if err != nil {
		return SpotQuote{}, err
	}
	if !gold.IsPositive() || !silver.IsPositive() {
		return SpotQuote{}, ErrIncompleteQuote
	}
	return SpotQuote{GoldUSD: gold, SilverUSD: silver, Source: SourceGoldAPI}, nil
}

func (s *GoldAPISource) fetch(ctx context.Context, symbol string) (decimal.Decimal, error) {
	var body struct {
		Price decimal.Decimal `json:"price"`
	}
	url := fmt.Sprintf("%s/api/%s/USD", s.baseURL, symbol)
	headers := map[string]string{"x-access-token": s.apiKey}
	if err := getJSON(ctx, s.client, url, headers, &body); err != nil {
		return decimal.Zero, err
	}
	return body.Price, nil
}

// ExchangeRateAPISource reads USD based rates from /v4/latest/USD.
type ExchangeRateAPISource struct {
	baseURL string
	client  *http.Client
}

func NewExchangeRateAPISource(baseURL string, client *http.Client) *ExchangeRateAPISource {
	return &ExchangeRateAPISource{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  defaultClient(client),
	}
}

func (s *ExchangeRateAPISource) Name() string { return SourceExchangeRate }

func (s *ExchangeRateAPISource) FetchRate(ctx context.Context, currency string) (decimal.Decimal, error) {
	var body struct {
		Rates map[string]decimal.Decimal `json:"rates"`
	}
	if err := getJSON(ctx, s.client, s.baseURL+"/v4/latest/USD", nil, &body); err != nil {
		return decimal.Zero, err
	}

	rate, ok := body.Rates[strings.ToUpper(currency)]
	if !ok || !rate.IsPositive() {
		return decimal.Zero, fmt.Errorf("no USD/%s rate in response", strings.ToUpper(currency))
	}
	return rate, nil
}
