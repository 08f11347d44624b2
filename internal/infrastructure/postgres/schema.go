package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS consultant_profile (
		id         SMALLINT PRIMARY KEY DEFAULT 1 CHECK (id = 1),
		name       TEXT NOT NULL,
		phone      TEXT NOT NULL DEFAULT '',
		email      TEXT NOT NULL,
		passcode_hash TEXT NOT NULL DEFAULT '',
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS proposals (
		id            TEXT PRIMARY KEY,
		number        TEXT NOT NULL UNIQUE,
		product       TEXT NOT NULL,
		client_name   TEXT NOT NULL,
		consultant    JSONB NOT NULL,
		form_state    JSONB NOT NULL,
		monthly_final NUMERIC(14,2) NOT NULL,
		setup_final   NUMERIC(14,2) NOT NULL,
		created_at    TIMESTAMPTZ NOT NULL,
		updated_at    TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_proposals_created_at ON proposals (created_at DESC)`,
}

// EnsureSchema crea las tablas si no existen (idempotente).
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	return inTx(ctx, pool, func(tx pgx.Tx) error {
		for _, stmt := range schemaStatements {
			if _, err := tx.Exec(ctx, stmt); err != nil {
				return fmt.Errorf("schema: %w", err)
			}
		}
		return nil
	})
}
