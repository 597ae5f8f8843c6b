package pricing

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetalsLiveSource_FetchSpot(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/spot", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"metal":"gold","price":2700.5},{"metal":"silver","price":32.25},{"metal":"platinum","price":950}]`))
	}))
	defer server.Close()

	quote, err := NewMetalsLiveSource(server.URL+"/", server.Client()).FetchSpot(context.Background())
	require.NoError(t, err)

	assert.True(t, quote.GoldUSD.Equal(decimal.RequireFromString("2700.5")))
	assert.True(t, quote.SilverUSD.Equal(decimal.RequireFromString("32.25")))
	assert.Equal(t, SourceMetalsLive, quote.Source)
}

func TestMetalsLiveSource_MissingSilver(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"metal":"gold","price":2700.5}]`))
	}))
	defer server.Close()

	_, err := NewMetalsLiveSource(server.URL, server.Client()).FetchSpot(context.Background())
	assert.ErrorIs(t, err, ErrIncompleteQuote)
}

func TestMetalsLiveSource_BadStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	_, err := NewMetalsLiveSource(server.URL, server.Client()).FetchSpot(context.Background())

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusBadGateway, statusErr.StatusCode)
}

func TestGoldAPISource_FetchSpot(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("x-access-token") != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		switch r.URL.Path {
		case "/api/XAU/USD":
			_, _ = w.Write([]byte(`{"metal":"XAU","currency":"USD","price":2655.1}`))
		case "/api/XAG/USD":
			_, _ = w.Write([]byte(`{"metal":"XAG","currency":"USD","price":30.9}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	quote, err := NewGoldAPISource(server.URL, "secret", server.Client()).FetchSpot(context.Background())
	require.NoError(t, err)
	assert.True(t, quote.GoldUSD.Equal(decimal.RequireFromString("2655.1")))
	assert.True(t, quote.SilverUSD.Equal(decimal.RequireFromString("30.9")))
	assert.Equal(t, SourceGoldAPI, quote.Source)

	_, err = NewGoldAPISource(server.URL, "wrong", server.Client()).FetchSpot(context.Background())
	assert.Error(t, err)
}

func TestExchangeRateAPISource_FetchRate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v4/latest/USD", r.URL.Path)
		_, _ = w.Write([]byte(`{"base":"USD","rates":{"PKR":281.75,"EUR":0.92}}`))
	}))
	defer server.Close()

	source := NewExchangeRateAPISource(server.URL, server.Client())

	rate, err := source.FetchRate(context.Background(), "pkr")
	require.NoError(t, err)
	assert.True(t, rate.Equal(decimal.RequireFromString("281.75")))

	_, err = source.FetchRate(context.Background(), "GBP")
	assert.Error(t, err)
}

func TestSource_RespectsContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewExchangeRateAPISource(server.URL, server.Client()).FetchRate(ctx, "PKR")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCacheKey(t *testing.T) {
	assert.Equal(t, "metals:XAU-XAG:PKR", CacheKey("pkr"))
}
