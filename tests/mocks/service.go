package mocks

import (
	"context"

	"github.com/segyhp/islamicfin-engine/internal/domain"

	"github.com/stretchr/testify/mock"
)

type MockCalculatorService struct {
	mock.Mock
}

func (m *MockCalculatorService) Zakat(ctx context.Context, req *domain.ZakatRequest) (*domain.ZakatResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ZakatResult), args.Error(1)
}

func (m *MockCalculatorService) Leasing(ctx context.Context, req *domain.LeasingRequest) (*domain.LeasingResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LeasingResult), args.Error(1)
}

func (m *MockCalculatorService) ConvertRate(ctx context.Context, req *domain.RateConversionRequest) (*domain.RateConversion, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RateConversion), args.Error(1)
}

func (m *MockCalculatorService) Mudarabah(ctx context.Context, req *domain.MudarabahRequest) (*domain.MudarabahResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MudarabahResult), args.Error(1)
}

func (m *MockCalculatorService) CheckRatios(ctx context.Context, req *domain.RatioCheckRequest) (*domain.RatioCheck, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RatioCheck), args.Error(1)
}

func (m *MockCalculatorService) Murabaha(ctx context.Context, req *domain.MurabahaRequest) (*domain.MurabahaResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MurabahaResult), args.Error(1)
}

func (m *MockCalculatorService) Istisna(ctx context.Context, req *domain.IstisnaRequest) (*domain.IstisnaResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.IstisnaResult), args.Error(1)
}

func (m *MockCalculatorService) QardHasan(ctx context.Context, req *domain.QardHasanRequest) (*domain.QardHasanResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.QardHasanResult), args.Error(1)
}

func (m *MockCalculatorService) Takaful(ctx context.Context, req *domain.TakafulRequest) (*domain.TakafulResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TakafulResult), args.Error(1)
}

func (m *MockCalculatorService) Pension(ctx context.Context, req *domain.PensionRequest) (*domain.PensionResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PensionResult), args.Error(1)
}

func (m *MockCalculatorService) Partnership(ctx context.Context, req *domain.PartnershipRequest) (*domain.PartnershipResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PartnershipResult), args.Error(1)
}

type MockPriceService struct {
	mock.Mock
}

func (m *MockPriceService) MetalPrices(ctx context.Context) (*domain.MetalPrices, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MetalPrices), args.Error(1)
}

func (m *MockPriceService) ExchangeRate(ctx context.Context) (*domain.ExchangeRate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExchangeRate), args.Error(1)
}

type MockChatService struct {
	mock.Mock
}

func (m *MockChatService) Chat(ctx context.Context, req *domain.ChatRequest) (*domain.ChatReply, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ChatReply), args.Error(1)
}

type MockHistoryService struct {
	mock.Mock
}

func (m *MockHistoryService) List(ctx context.Context, userID string, limit int) (*domain.HistoryResponse, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.HistoryResponse), args.Error(1)
}

func (m *MockHistoryService) Get(ctx context.Context, userID, id string) (*domain.CalculationRecord, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CalculationRecord), args.Error(1)
}
