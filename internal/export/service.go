package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/pndiaye/xaalis/internal/record"
)

var columns = []string{
	"id",
	"received_at",
	"provider",
	"template",
	"amount",
	"currency",
	"counterparty",
	"direction",
	"body",
}

// Service writes extracted records as CSV for spreadsheet analysis.
type Service struct {
	records *record.Service
}

func NewService(records *record.Service) *Service {
	return &Service{records: records}
}

// WriteCSV streams records matching the filter to w, newest first.
func (s *Service) WriteCSV(ctx context.Context, w io.Writer, filter record.ListFilter) error {
	records, err := s.records.List(ctx, filter)
	if err != nil {
		return fmt.Errorf("listing records: %w", err)
	}

	cw := csv.NewWriter(w)

	if err := cw.Write(columns); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for _, r := range records {
		if err := cw.Write(toRow(r)); err != nil {
			return fmt.Errorf("writing record %s: %w", r.ID, err)
		}
	}

	cw.Flush()

	if err := cw.Error(); err != nil {
		return fmt.Errorf("flushing csv: %w", err)
	}

	return nil
}

func toRow(r *record.Record) []string {
	amount := ""
	if r.Amount != nil {
		amount = r.Amount.String()
	}

	direction := "out"
	if r.Incoming {
		direction = "in"
	}

	return []string{
		r.ID.String(),
		r.ReceivedAt.UTC().Format(time.RFC3339),
		string(r.Provider),
		string(r.Template),
		amount,
		r.Currency,
		r.Counterparty,
		direction,
		r.Body,
	}
}
