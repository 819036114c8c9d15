package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func New(connStr string) (*sql.DB, error) {
	db, err := sql.Open("pgx", connStr)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	return db, nil
}

// Migrate creates the schema if it does not exist yet. The app is
// single-tenant and self-hosted, so idempotent bootstrap beats a
// migration tool.
func Migrate(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS records (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			provider TEXT NOT NULL,
			template TEXT NOT NULL,
			amount NUMERIC,
			amount_raw TEXT,
			currency TEXT NOT NULL DEFAULT '',
			counterparty TEXT,
			incoming BOOLEAN NOT NULL DEFAULT FALSE,
			recognized BOOLEAN NOT NULL DEFAULT FALSE,
			sender_id TEXT NOT NULL DEFAULT '',
			title TEXT NOT NULL DEFAULT '',
			body TEXT NOT NULL,
			received_at TIMESTAMPTZ NOT NULL,
			read BOOLEAN NOT NULL DEFAULT FALSE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ,
			deleted_at TIMESTAMPTZ
		)`,
		`CREATE INDEX IF NOT EXISTS idx_records_received_at ON records (received_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_records_provider_amount ON records (provider, amount, received_at)`,
		`CREATE TABLE IF NOT EXISTS counterparty_aliases (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			pattern TEXT NOT NULL,
			label TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
	}

	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("running migration: %w", err)
		}
	}

	return nil
}
