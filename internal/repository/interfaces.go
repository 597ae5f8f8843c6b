package repository

import (
	"context"

	"github.com/segyhp/islamicfin-engine/internal/domain"

	"github.com/google/uuid"
)

// HistoryRepository defines the interface for calculation history operations
type HistoryRepository interface {
	// Create appends a calculation record
	Create(ctx context.Context, record *domain.CalculationRecord) error

	// ListByUser returns a user's records, newest first
	ListByUser(ctx context.Context, userID string, limit int) ([]*domain.CalculationRecord, error)

	// GetByID retrieves a record by its ID
	GetByID(ctx context.Context, id uuid.UUID) (*domain.CalculationRecord, error)
}
