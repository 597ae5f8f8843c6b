package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx/types"
)

// CalculationRecord is an audit entry of one successful calculation.
type CalculationRecord struct {
	ID         uuid.UUID      `json:"id" db:"id"`
	UserID     string         `json:"user_id" db:"user_id"`
	Calculator string         `json:"calculator" db:"calculator"`
	Input      types.JSONText `json:"input" db:"input"`
	Output     types.JSONText `json:"output" db:"output"`
	CreatedAt  time.Time      `json:"created_at" db:"created_at"`
}

type HistoryResponse struct {
	UserID  string               `json:"user_id"`
	Records []*CalculationRecord `json:"records"`
}
