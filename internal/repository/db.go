package repository

import (
	"context"
	"fmt"

	"github.com/segyhp/islamicfin-engine/internal/config"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// Supported database drivers.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

func init() {
	sqlx.BindDriver(DriverSQLite, sqlx.QUESTION)
}

var schemas = map[string]string{
	DriverPostgres: `
		CREATE TABLE IF NOT EXISTS calculation_history (
			id         UUID PRIMARY KEY,
			user_id    TEXT NOT NULL,
			calculator TEXT NOT NULL,
			input      JSONB NOT NULL,
			output     JSONB NOT NULL,
			created_at TIMESTAMPTZ NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_calculation_history_user
			ON calculation_history (user_id, created_at DESC);
	`,
	DriverSQLite: `
		CREATE TABLE IF NOT EXISTS calculation_history (
			id         TEXT PRIMARY KEY,
			user_id    TEXT NOT NULL,
			calculator TEXT NOT NULL,
			input      TEXT NOT NULL,
			output     TEXT NOT NULL,
			created_at TIMESTAMP NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_calculation_history_user
			ON calculation_history (user_id, created_at DESC);
	`,
}

// Open connects to the history database and applies the pool settings.
func Open(cfg *config.Config) (*sqlx.DB, error) {
	db, err := sqlx.Connect(cfg.Database.Driver, cfg.Database.URL)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.GetConnMaxLifetime())

	return db, nil
}

// EnsureSchema creates the history table when it does not exist yet.
func EnsureSchema(ctx context.Context, db *sqlx.DB) error {
	schema, ok := schemas[db.DriverName()]
	if !ok {
		return fmt.Errorf("unsupported database driver %q", db.DriverName())
	}

	_, err := db.ExecContext(ctx, schema)
	return err
}
