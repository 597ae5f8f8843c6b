package mocks

import (
	"context"

	"github.com/segyhp/islamicfin-engine/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockHistoryRepository struct {
	mock.Mock
}

func (m *MockHistoryRepository) Create(ctx context.Context, record *domain.CalculationRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockHistoryRepository) ListByUser(ctx context.Context, userID string, limit int) ([]*domain.CalculationRecord, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.CalculationRecord), args.Error(1)
}

func (m *MockHistoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.CalculationRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CalculationRecord), args.Error(1)
}
