package record

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pndiaye/xaalis/internal/engine"
)

// ErrNotFound is returned when a record does not exist or sits in the
// trash while an active record was requested.
var ErrNotFound = errors.New("record not found")

// Record is one persisted financial event extracted from a notification.
// The raw notification fields are retained verbatim: they are the audit
// trail and the input for the repair pass, which re-derives the amount
// from the stored body under the current rule set.
type Record struct {
	ID uuid.UUID

	Provider     engine.Provider
	Template     engine.Template
	Amount       *decimal.Decimal // nil when extraction failed
	AmountRaw    string           // matched substring before normalization
	Currency     string
	Counterparty string
	Incoming     bool
	Recognized   bool

	SenderID   string
	Title      string
	Body       string
	ReceivedAt time.Time

	Read      bool
	CreatedAt time.Time
	UpdatedAt *time.Time
	DeletedAt *time.Time
}

// Trashed reports whether the record is soft-deleted.
func (r *Record) Trashed() bool {
	return r.DeletedAt != nil
}
