package service

import (
	"context"
	"errors"

	"github.com/segyhp/islamicfin-engine/internal/domain"
	"github.com/segyhp/islamicfin-engine/internal/repository"
	customError "github.com/segyhp/islamicfin-engine/pkg/errors"

	"github.com/google/uuid"
)

// HistoryService reads back recorded calculations for their owner.
type HistoryService struct {
	repo repository.HistoryRepository
}

func NewHistoryService(repo repository.HistoryRepository) *HistoryService {
	return &HistoryService{repo: repo}
}

func (s *HistoryService) List(ctx context.Context, userID string, limit int) (*domain.HistoryResponse, error) {
	if s.repo == nil {
		return nil, customError.WrapNotConfigured("Calculation history", "DATABASE_URL")
	}
	if userID == "" {
		return nil, customError.WrapValidation("X-User-ID", "X-User-ID header is required")
	}

	records, err := s.repo.ListByUser(ctx, userID, limit)
	if err != nil {
		return nil, customError.WrapDatabaseError(err)
	}

	return &domain.HistoryResponse{UserID: userID, Records: records}, nil
}

// Get returns one record. Records of other users are reported as missing.
func (s *HistoryService) Get(ctx context.Context, userID, id string) (*domain.CalculationRecord, error) {
	if s.repo == nil {
		return nil, customError.WrapNotConfigured("Calculation history", "DATABASE_URL")
	}
	if userID == "" {
		return nil, customError.WrapValidation("X-User-ID", "X-User-ID header is required")
	}

	recordID, err := uuid.Parse(id)
	if err != nil {
		return nil, customError.WrapValidation("id", "id must be a valid UUID")
	}

	record, err := s.repo.GetByID(ctx, recordID)
	if errors.Is(err, customError.ErrRecordNotFound) {
		return nil, err
	}
	if err != nil {
		return nil, customError.WrapDatabaseError(err)
	}

	if record.UserID != userID {
		return nil, customError.WrapRecordNotFound("calculation", id)
	}
	return record, nil
}
