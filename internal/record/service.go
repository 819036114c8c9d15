package record

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pndiaye/xaalis/internal/engine"
)

// DefaultDuplicateWindow is how close together two notifications with the
// same provider and amount must arrive to be treated as one redelivery.
const DefaultDuplicateWindow = 3 * time.Second

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=record
type Repository interface {
	CreateRecord(ctx context.Context, rec *Record) error
	GetRecord(ctx context.Context, id uuid.UUID) (*Record, error)
	ListRecords(ctx context.Context, filter ListFilter) ([]*Record, error)
	MarkRead(ctx context.Context, id uuid.UUID) error

	FindDuplicate(ctx context.Context, provider engine.Provider, amount decimal.Decimal, receivedAt time.Time, window time.Duration) (*Record, error)

	TrashRecord(ctx context.Context, id uuid.UUID) error
	RestoreRecord(ctx context.Context, id uuid.UUID) error
	PurgeTrash(ctx context.Context, olderThan time.Time) (int64, error)

	ListBySender(ctx context.Context, senderID string) ([]*Record, error)
	UpdateAmount(ctx context.Context, id uuid.UUID, amount decimal.Decimal, amountRaw string) error
}

// Suggester resolves a preferred display label for a raw counterparty.
// Satisfied by the alias service; optional.
type Suggester interface {
	Suggest(ctx context.Context, counterparty string) (string, error)
}

type ListFilter struct {
	Provider  *engine.Provider
	Unread    *bool
	Trashed   bool
	StartDate *time.Time
	EndDate   *time.Time
}

type Service struct {
	repo      Repository
	engine    *engine.Engine
	aliases   Suggester
	dupWindow time.Duration
}

// NewService wires the extraction engine to its storage collaborator.
// aliases may be nil; window <= 0 falls back to DefaultDuplicateWindow.
func NewService(repo Repository, eng *engine.Engine, aliases Suggester, window time.Duration) *Service {
	if window <= 0 {
		window = DefaultDuplicateWindow
	}

	return &Service{repo: repo, engine: eng, aliases: aliases, dupWindow: window}
}

// IngestResult reports whether a notification produced a new record or
// hit the duplicate guard.
type IngestResult struct {
	Record    *Record
	Duplicate bool
}

// Ingest runs the extraction engine over a raw notification and persists
// the result. Same provider and same extracted amount within the
// duplicate window means the notification is a redelivery: the existing
// record is returned and no second one is created. Records with no
// extractable amount skip the guard; there is nothing to compare.
func (s *Service) Ingest(ctx context.Context, n engine.RawNotification) (*IngestResult, error) {
	ex := s.engine.Extract(n)

	if ex.Amount != nil {
		dup, err := s.repo.FindDuplicate(ctx, ex.Provider, *ex.Amount, n.ReceivedAt, s.dupWindow)
		if err != nil {
			return nil, fmt.Errorf("checking duplicate: %w", err)
		}

		if dup != nil {
			return &IngestResult{Record: dup, Duplicate: true}, nil
		}
	}

	counterparty := ex.Counterparty
	if s.aliases != nil && counterparty != "" {
		if preferred, err := s.aliases.Suggest(ctx, counterparty); err == nil && preferred != "" {
			counterparty = preferred
		}
	}

	rec := &Record{
		Provider:     ex.Provider,
		Template:     ex.Template,
		Amount:       ex.Amount,
		AmountRaw:    ex.AmountRaw,
		Currency:     ex.Currency,
		Counterparty: counterparty,
		Incoming:     ex.Incoming,
		Recognized:   ex.Recognized,
		SenderID:     n.SenderID,
		Title:        n.Title,
		Body:         n.Body,
		ReceivedAt:   n.ReceivedAt,
	}

	if err := s.repo.CreateRecord(ctx, rec); err != nil {
		return nil, fmt.Errorf("creating record: %w", err)
	}

	return &IngestResult{Record: rec}, nil
}

// BatchResult summarizes an IngestBatch run.
type BatchResult struct {
	Created    []*Record
	Duplicates int
}

// IngestBatch feeds a backup dump through the same pipeline and guard as
// live notifications.
func (s *Service) IngestBatch(ctx context.Context, ns []engine.RawNotification) (*BatchResult, error) {
	res := &BatchResult{}

	for _, n := range ns {
		out, err := s.Ingest(ctx, n)
		if err != nil {
			return nil, err
		}

		if out.Duplicate {
			res.Duplicates++
			continue
		}

		res.Created = append(res.Created, out.Record)
	}

	return res, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Record, error) {
	return s.repo.GetRecord(ctx, id)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Record, error) {
	return s.repo.ListRecords(ctx, filter)
}

func (s *Service) MarkRead(ctx context.Context, id uuid.UUID) error {
	return s.repo.MarkRead(ctx, id)
}

func (s *Service) Trash(ctx context.Context, id uuid.UUID) error {
	return s.repo.TrashRecord(ctx, id)
}

func (s *Service) Restore(ctx context.Context, id uuid.UUID) error {
	return s.repo.RestoreRecord(ctx, id)
}

// PurgeTrash hard-deletes records that have been in the trash longer
// than retention. Returns the number of rows removed.
func (s *Service) PurgeTrash(ctx context.Context, retention time.Duration) (int64, error) {
	return s.repo.PurgeTrash(ctx, time.Now().Add(-retention))
}

// RepairResult reports one repair pass.
type RepairResult struct {
	Scanned int
	Updated int
}

// Repair re-runs amount extraction over stored aggregator-family records
// with the current rule set and overwrites amounts that now normalize
// differently. Only the amount fields change; identity and every other
// field stay as they are. A record whose body no longer yields an amount
// keeps its stored value. Running the pass twice yields no further
// updates.
//
// Callers must not run two repair passes concurrently: the per-record
// read-modify-write is not atomic against a second pass. Concurrent
// ingestion of new notifications is fine.
func (s *Service) Repair(ctx context.Context) (*RepairResult, error) {
	recs, err := s.repo.ListBySender(ctx, engine.SenderMessages)
	if err != nil {
		return nil, fmt.Errorf("listing repair candidates: %w", err)
	}

	res := &RepairResult{}

	for _, rec := range recs {
		// Re-classify from the stored pair; provider tags are never
		// trusted from disk.
		provider := engine.ClassifyProvider(rec.SenderID, rec.Title)
		if !provider.Aggregator() {
			continue
		}

		res.Scanned++

		ex := s.engine.Extract(engine.RawNotification{
			SenderID:   rec.SenderID,
			Title:      rec.Title,
			Body:       rec.Body,
			ReceivedAt: rec.ReceivedAt,
		})

		if ex.Amount == nil {
			continue
		}

		if rec.Amount != nil && rec.Amount.Equal(*ex.Amount) {
			continue
		}

		if err := s.repo.UpdateAmount(ctx, rec.ID, *ex.Amount, ex.AmountRaw); err != nil {
			return nil, fmt.Errorf("updating amount for %s: %w", rec.ID, err)
		}

		res.Updated++
	}

	return res, nil
}
