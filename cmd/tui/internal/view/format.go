package view

import (
	"context"
	"time"

	"github.com/pndiaye/xaalis/internal/record"
)

const dbTimeout = 5 * time.Second

// FormatAmount renders a record amount, falling back to the raw capture
// when normalization failed.
func FormatAmount(rec *record.Record) string {
	if rec.Amount != nil {
		return rec.Amount.String() + " F"
	}

	if rec.AmountRaw != "" {
		return rec.AmountRaw + " (raw)"
	}

	return "-"
}

// FormatDirection renders the money flow as seen from the wallet owner.
func FormatDirection(rec *record.Record) string {
	if rec.Incoming {
		return "in"
	}

	return "out"
}

// FormatDate formats a time.Time into YYYY-MM-DD HH:MM.
func FormatDate(t time.Time) string {
	return t.Format("2006-01-02 15:04")
}

// DbCtx returns a context with a standard timeout for database operations.
func DbCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), dbTimeout)
}
