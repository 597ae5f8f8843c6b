package mocks

import (
	"context"
	"time"

	"github.com/segyhp/islamicfin-engine/internal/domain"
	"github.com/segyhp/islamicfin-engine/internal/pricing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

type MockSpotSource struct {
	mock.Mock
	SourceName string
}

func (m *MockSpotSource) Name() string {
	return m.SourceName
}

func (m *MockSpotSource) FetchSpot(ctx context.Context) (pricing.SpotQuote, error) {
	args := m.Called(ctx)
	return args.Get(0).(pricing.SpotQuote), args.Error(1)
}

type MockFXSource struct {
	mock.Mock
	SourceName string
}

func (m *MockFXSource) Name() string {
	return m.SourceName
}

func (m *MockFXSource) FetchRate(ctx context.Context, currency string) (decimal.Decimal, error) {
	args := m.Called(ctx, currency)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

type MockPriceCache struct {
	mock.Mock
}

func (m *MockPriceCache) Get(ctx context.Context, key string) (*domain.MetalPrices, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MetalPrices), args.Error(1)
}

func (m *MockPriceCache) Set(ctx context.Context, key string, prices *domain.MetalPrices, ttl time.Duration) error {
	args := m.Called(ctx, key, prices, ttl)
	return args.Error(0)
}
