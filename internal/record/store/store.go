package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pndiaye/xaalis/internal/engine"
	"github.com/pndiaye/xaalis/internal/record"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

const selectRecordColumns = `
	id, provider, template, amount, amount_raw, currency, counterparty,
	incoming, recognized, sender_id, title, body, received_at,
	read, created_at, updated_at, deleted_at
`

// scanRecord reads one record row in selectRecordColumns order.
func scanRecord(s scanner) (*record.Record, error) {
	var rec record.Record

	var providerStr, templateStr string

	var amount decimal.NullDecimal

	var amountRaw, counterparty sql.NullString

	if err := s.Scan(
		&rec.ID, &providerStr, &templateStr, &amount, &amountRaw, &rec.Currency, &counterparty,
		&rec.Incoming, &rec.Recognized, &rec.SenderID, &rec.Title, &rec.Body, &rec.ReceivedAt,
		&rec.Read, &rec.CreatedAt, &rec.UpdatedAt, &rec.DeletedAt,
	); err != nil {
		return nil, err
	}

	rec.Provider = engine.Provider(providerStr)
	rec.Template = engine.Template(templateStr)
	rec.AmountRaw = amountRaw.String
	rec.Counterparty = counterparty.String

	if amount.Valid {
		rec.Amount = &amount.Decimal
	}

	return &rec, nil
}

func (s *Store) CreateRecord(ctx context.Context, rec *record.Record) error {
	query := `
		INSERT INTO records (
			provider, template, amount, amount_raw, currency, counterparty,
			incoming, recognized, sender_id, title, body, received_at,
			read, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, FALSE, NOW(), NOW())
		RETURNING id, read, created_at, updated_at
	`

	err := s.db.QueryRowContext(ctx, query,
		rec.Provider,
		rec.Template,
		nullDecimal(rec.Amount),
		nullString(rec.AmountRaw),
		rec.Currency,
		nullString(rec.Counterparty),
		rec.Incoming,
		rec.Recognized,
		rec.SenderID,
		rec.Title,
		rec.Body,
		rec.ReceivedAt,
	).Scan(&rec.ID, &rec.Read, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating record: %w", err)
	}

	return nil
}

func (s *Store) GetRecord(ctx context.Context, id uuid.UUID) (*record.Record, error) {
	query := `SELECT ` + selectRecordColumns + `
		FROM records
		WHERE id = $1 AND deleted_at IS NULL`

	rec, err := scanRecord(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, record.ErrNotFound
		}

		return nil, fmt.Errorf("getting record: %w", err)
	}

	return rec, nil
}

func (s *Store) ListRecords(ctx context.Context, filter record.ListFilter) ([]*record.Record, error) {
	query := `SELECT ` + selectRecordColumns + ` FROM records`

	if filter.Trashed {
		query += " WHERE deleted_at IS NOT NULL"
	} else {
		query += " WHERE deleted_at IS NULL"
	}

	var args []any

	argIdx := 1

	if filter.Provider != nil {
		query += fmt.Sprintf(" AND provider = $%d", argIdx)

		args = append(args, *filter.Provider)
		argIdx++
	}

	if filter.Unread != nil {
		query += fmt.Sprintf(" AND read = $%d", argIdx)

		args = append(args, !*filter.Unread)
		argIdx++
	}

	if filter.StartDate != nil {
		query += fmt.Sprintf(" AND received_at >= $%d", argIdx)

		args = append(args, *filter.StartDate)
		argIdx++
	}

	if filter.EndDate != nil {
		query += fmt.Sprintf(" AND received_at <= $%d", argIdx)

		args = append(args, *filter.EndDate)
		argIdx++
	}

	query += " ORDER BY received_at DESC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing records: %w", err)
	}
	defer rows.Close()

	var recs []*record.Record

	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning record: %w", err)
		}

		recs = append(recs, rec)
	}

	return recs, rows.Err()
}

func (s *Store) MarkRead(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE records
		SET read = TRUE, updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
	`

	_, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("marking record read: %w", err)
	}

	return nil
}

// FindDuplicate returns the most recent active record with the same
// provider and amount received within +/- window of receivedAt, nil when
// there is none.
func (s *Store) FindDuplicate(ctx context.Context, provider engine.Provider, amount decimal.Decimal, receivedAt time.Time, window time.Duration) (*record.Record, error) {
	query := `SELECT ` + selectRecordColumns + `
		FROM records
		WHERE provider = $1 AND amount = $2
		  AND received_at BETWEEN $3 AND $4
		  AND deleted_at IS NULL
		ORDER BY received_at DESC
		LIMIT 1`

	rec, err := scanRecord(s.db.QueryRowContext(ctx, query,
		provider, amount, receivedAt.Add(-window), receivedAt.Add(window),
	))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}

		return nil, fmt.Errorf("finding duplicate: %w", err)
	}

	return rec, nil
}

func (s *Store) TrashRecord(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE records
		SET deleted_at = NOW(), updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
	`

	_, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("trashing record: %w", err)
	}

	return nil
}

func (s *Store) RestoreRecord(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE records
		SET deleted_at = NULL, updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NOT NULL
	`

	_, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("restoring record: %w", err)
	}

	return nil
}

// PurgeTrash hard-deletes records trashed before the cutoff.
func (s *Store) PurgeTrash(ctx context.Context, olderThan time.Time) (int64, error) {
	query := `DELETE FROM records WHERE deleted_at IS NOT NULL AND deleted_at < $1`

	res, err := s.db.ExecContext(ctx, query, olderThan)
	if err != nil {
		return 0, fmt.Errorf("purging trash: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("counting purged rows: %w", err)
	}

	return n, nil
}

// ListBySender returns every record, trashed included, captured from one
// sender channel. The repair pass walks this set.
func (s *Store) ListBySender(ctx context.Context, senderID string) ([]*record.Record, error) {
	query := `SELECT ` + selectRecordColumns + `
		FROM records
		WHERE sender_id = $1
		ORDER BY received_at ASC`

	rows, err := s.db.QueryContext(ctx, query, senderID)
	if err != nil {
		return nil, fmt.Errorf("listing records by sender: %w", err)
	}
	defer rows.Close()

	var recs []*record.Record

	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning record: %w", err)
		}

		recs = append(recs, rec)
	}

	return recs, rows.Err()
}

// UpdateAmount overwrites only the amount fields of a record; the repair
// pass never touches anything else.
func (s *Store) UpdateAmount(ctx context.Context, id uuid.UUID, amount decimal.Decimal, amountRaw string) error {
	query := `
		UPDATE records
		SET amount = $1, amount_raw = $2, updated_at = NOW()
		WHERE id = $3
	`

	_, err := s.db.ExecContext(ctx, query, amount, nullString(amountRaw), id)
	if err != nil {
		return fmt.Errorf("updating record amount: %w", err)
	}

	return nil
}

func nullDecimal(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}

	return decimal.NullDecimal{Decimal: *d, Valid: true}
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
