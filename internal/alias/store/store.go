package store

import (
	"context"
	"database/sql"
	"fmt"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// FindLabel returns the preferred label whose pattern matches the
// counterparty. Longer patterns win so "77 star 23 Awa" beats "77 star".
func (s *Store) FindLabel(ctx context.Context, counterparty string) (string, error) {
	query := `
		SELECT label
		FROM counterparty_aliases
		WHERE $1 ILIKE '%' || pattern || '%'
		ORDER BY LENGTH(pattern) DESC, created_at DESC
		LIMIT 1
	`

	var label string

	err := s.db.QueryRowContext(ctx, query, counterparty).Scan(&label)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", nil
		}

		return "", fmt.Errorf("finding alias: %w", err)
	}

	return label, nil
}

func (s *Store) CreateAlias(ctx context.Context, pattern, label string) error {
	query := `
		INSERT INTO counterparty_aliases (pattern, label, created_at)
		VALUES ($1, $2, NOW())
	`

	_, err := s.db.ExecContext(ctx, query, pattern, label)
	if err != nil {
		return fmt.Errorf("creating alias: %w", err)
	}

	return nil
}
