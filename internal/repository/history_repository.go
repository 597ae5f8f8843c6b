package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/segyhp/islamicfin-engine/internal/domain"
	customError "github.com/segyhp/islamicfin-engine/pkg/errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// DefaultHistoryLimit caps listings when the caller gives no limit.
const DefaultHistoryLimit = 50

type historyRepository struct {
	db *sqlx.DB
}

func NewHistoryRepository(db *sqlx.DB) HistoryRepository {
	return &historyRepository{db: db}
}

func (r *historyRepository) Create(ctx context.Context, record *domain.CalculationRecord) error {
	query := r.db.Rebind(`
		INSERT INTO calculation_history (id, user_id, calculator, input, output, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`)

	// JSON columns are sent as text so both jsonb and sqlite TEXT accept them.
	_, err := r.db.ExecContext(ctx, query,
		record.ID,
		record.UserID,
		record.Calculator,
		string(record.Input),
		string(record.Output),
		record.CreatedAt,
	)

	return err
}

func (r *historyRepository) ListByUser(ctx context.Context, userID string, limit int) ([]*domain.CalculationRecord, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}

	query := r.db.Rebind(`
		SELECT id, user_id, calculator, input, output, created_at
		FROM calculation_history
		WHERE user_id = ?
		ORDER BY created_at DESC
		LIMIT ?
	`)

	records := []*domain.CalculationRecord{}
	if err := r.db.SelectContext(ctx, &records, query, userID, limit); err != nil {
		return nil, err
	}

	return records, nil
}

func (r *historyRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.CalculationRecord, error) {
	query := r.db.Rebind(`
		SELECT id, user_id, calculator, input, output, created_at
		FROM calculation_history
		WHERE id = ?
	`)

	var record domain.CalculationRecord
	err := r.db.GetContext(ctx, &record, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, customError.WrapRecordNotFound("calculation", id.String())
	}
	if err != nil {
		return nil, err
	}

	return &record, nil
}
