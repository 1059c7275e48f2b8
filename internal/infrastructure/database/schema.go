package database

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
)

// Schema statements are idempotent so they can run on every startup.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id            BIGSERIAL PRIMARY KEY,
		email         TEXT NOT NULL,
		password_hash TEXT NOT NULL,
		full_name     TEXT NOT NULL DEFAULT '',
		created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
		CONSTRAINT users_email_key UNIQUE (email)
	)`,
	`CREATE TABLE IF NOT EXISTS books (
		id             BIGSERIAL PRIMARY KEY,
		title          TEXT NOT NULL,
		author         TEXT NOT NULL,
		price          NUMERIC(12,2) NOT NULL DEFAULT 0,
		published_date TIMESTAMPTZ NOT NULL DEFAULT now(),
		created_at     TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at     TIMESTAMPTZ NOT NULL DEFAULT now(),
		owner_id       BIGINT NOT NULL REFERENCES users(id)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_books_owner_id ON books (owner_id)`,
}

// Migrate applies the schema. Safe to call on every boot.
func (db *PostgresDB) Migrate(ctx context.Context) error {
	if db.Pool == nil {
		return fmt.Errorf("database pool is not initialized")
	}

	for _, stmt := range schemaStatements {
		if _, err := db.Pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}

	log.Info().Msg("Database schema up to date")
	return nil
}
