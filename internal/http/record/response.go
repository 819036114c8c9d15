package record

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pndiaye/xaalis/internal/engine"
	"github.com/pndiaye/xaalis/internal/record"
)

type recordResponse struct {
	ID           uuid.UUID        `json:"id"`
	Provider     engine.Provider  `json:"provider"`
	Template     engine.Template  `json:"template"`
	Amount       *decimal.Decimal `json:"amount,omitempty"`
	AmountRaw    string           `json:"amount_raw,omitempty"`
	Currency     string           `json:"currency,omitempty"`
	Counterparty string           `json:"counterparty,omitempty"`
	Incoming     bool             `json:"incoming"`
	Recognized   bool             `json:"recognized"`
	Title        string           `json:"title,omitempty"`
	Body         string           `json:"body"`
	ReceivedAt   time.Time        `json:"received_at"`
	Read         bool             `json:"read"`
	CreatedAt    time.Time        `json:"created_at"`
	DeletedAt    *time.Time       `json:"deleted_at,omitempty"`
}

func toResponse(rec *record.Record) recordResponse {
	return recordResponse{
		ID:           rec.ID,
		Provider:     rec.Provider,
		Template:     rec.Template,
		Amount:       rec.Amount,
		AmountRaw:    rec.AmountRaw,
		Currency:     rec.Currency,
		Counterparty: rec.Counterparty,
		Incoming:     rec.Incoming,
		Recognized:   rec.Recognized,
		Title:        rec.Title,
		Body:         rec.Body,
		ReceivedAt:   rec.ReceivedAt,
		Read:         rec.Read,
		CreatedAt:    rec.CreatedAt,
		DeletedAt:    rec.DeletedAt,
	}
}

func toResponseList(recs []*record.Record) []recordResponse {
	resp := make([]recordResponse, len(recs))
	for i, rec := range recs {
		resp[i] = toResponse(rec)
	}

	return resp
}
