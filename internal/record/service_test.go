package record_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/pndiaye/xaalis/internal/engine"
	"github.com/pndiaye/xaalis/internal/record"
)

func newService(repo record.Repository) *record.Service {
	return record.NewService(repo, engine.New(), nil, 0)
}

func TestService_Ingest(t *testing.T) {
	payment := engine.RawNotification{
		SenderID:   engine.SenderWave,
		Title:      "Paiement réussi!",
		Body:       "Vous avez payé 15.500F à Boutique Fatou. Solde Wave: 40.000F",
		ReceivedAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}

	type testCase struct {
		name      string
		input     engine.RawNotification
		setupMock func(m *record.MockRepository)
		verify    func(t *testing.T, got *record.IngestResult)
		wantErr   bool
	}

	tests := []testCase{
		{
			name:  "NewRecord",
			input: payment,
			setupMock: func(m *record.MockRepository) {
				m.EXPECT().
					FindDuplicate(gomock.Any(), engine.ProviderWave, gomock.Any(), payment.ReceivedAt, record.DefaultDuplicateWindow).
					Return(nil, nil)
				m.EXPECT().
					CreateRecord(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, rec *record.Record) error {
						rec.ID = uuid.New()
						rec.CreatedAt = time.Now()
						return nil
					})
			},
			verify: func(t *testing.T, got *record.IngestResult) {
				assert.False(t, got.Duplicate)
				require.NotNil(t, got.Record.Amount)
				assert.Equal(t, "15500", got.Record.Amount.String())
				assert.Equal(t, "Boutique Fatou", got.Record.Counterparty)
				assert.Equal(t, engine.TemplatePaymentMade, got.Record.Template)
				assert.True(t, got.Record.Recognized)
				assert.NotEmpty(t, got.Record.ID)
			},
		},
		{
			name:  "DuplicateWithinWindow",
			input: payment,
			setupMock: func(m *record.MockRepository) {
				existing := &record.Record{ID: uuid.New(), Provider: engine.ProviderWave}

				m.EXPECT().
					FindDuplicate(gomock.Any(), engine.ProviderWave, gomock.Any(), payment.ReceivedAt, record.DefaultDuplicateWindow).
					Return(existing, nil)
				// No CreateRecord: the redelivery must not produce a second
				// record.
			},
			verify: func(t *testing.T, got *record.IngestResult) {
				assert.True(t, got.Duplicate)
				assert.NotNil(t, got.Record)
			},
		},
		{
			name: "NoAmountSkipsGuard",
			input: engine.RawNotification{
				SenderID:   engine.SenderWave,
				Title:      "Bienvenue",
				Body:       "Merci d'utiliser Wave.",
				ReceivedAt: time.Now(),
			},
			setupMock: func(m *record.MockRepository) {
				m.EXPECT().
					CreateRecord(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, rec *record.Record) error {
						rec.ID = uuid.New()
						return nil
					})
			},
			verify: func(t *testing.T, got *record.IngestResult) {
				assert.False(t, got.Duplicate)
				assert.Nil(t, got.Record.Amount)
				assert.False(t, got.Record.Recognized)
			},
		},
		{
			name:  "RepoError",
			input: payment,
			setupMock: func(m *record.MockRepository) {
				m.EXPECT().
					FindDuplicate(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, errors.New("db error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := record.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			got, err := newService(repo).Ingest(context.Background(), tt.input)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)

			if tt.verify != nil {
				tt.verify(t, got)
			}
		})
	}
}

func TestService_IngestAppliesAlias(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := record.NewMockRepository(ctrl)
	aliases := record.NewMockSuggester(ctrl)

	repo.EXPECT().
		FindDuplicate(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, nil)
	aliases.EXPECT().
		Suggest(gomock.Any(), "77 star 23").
		Return("Maman", nil)
	repo.EXPECT().
		CreateRecord(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, rec *record.Record) error {
			assert.Equal(t, "Maman", rec.Counterparty)
			return nil
		})

	svc := record.NewService(repo, engine.New(), aliases, 0)

	_, err := svc.Ingest(context.Background(), engine.RawNotification{
		SenderID:   engine.SenderWave,
		Title:      "Transfert reçu",
		Body:       "Vous avez reçu 5.000F de 77*****23. Nouveau solde: 10.000F",
		ReceivedAt: time.Now(),
	})
	require.NoError(t, err)
}

func TestService_Repair(t *testing.T) {
	// Historical aggregator records parsed under the old rule that treated
	// "." as a thousands separator, inflating "1500.00" into 150000.
	wrong := decimal.NewFromInt(150000)
	right := decimal.NewFromInt(1500)

	stale := &record.Record{
		ID:       uuid.New(),
		SenderID: engine.SenderMessages,
		Title:    "OrangeMoney",
		Body:     "Vous avez recu un transfert de 1500.00F de Awa. Votre solde est 9000.00F",
		Amount:   &wrong,
	}
	correct := &record.Record{
		ID:       uuid.New(),
		SenderID: engine.SenderMessages,
		Title:    "Mixx",
		Body:     "Vous avez recu un transfert de 1500.00F de Omar. Votre solde est 100.00F",
		Amount:   &right,
	}
	unparsable := &record.Record{
		ID:       uuid.New(),
		SenderID: engine.SenderMessages,
		Title:    "OrangeMoney",
		Body:     "Message illisible sans montant.",
		Amount:   &right,
	}
	foreign := &record.Record{
		ID:       uuid.New(),
		SenderID: engine.SenderMessages,
		Title:    "Banque Atlantique",
		Body:     "Solde: 500.00F",
	}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := record.NewMockRepository(ctrl)

	repo.EXPECT().
		ListBySender(gomock.Any(), engine.SenderMessages).
		Return([]*record.Record{stale, correct, unparsable, foreign}, nil)
	repo.EXPECT().
		UpdateAmount(gomock.Any(), stale.ID, gomock.Any(), "1500.00").
		DoAndReturn(func(_ context.Context, _ uuid.UUID, amount decimal.Decimal, _ string) error {
			assert.Equal(t, "1500", amount.String())
			return nil
		})

	got, err := newService(repo).Repair(context.Background())
	require.NoError(t, err)

	// The brand-less record never reaches the engine; the unparsable body
	// keeps its stored amount.
	assert.Equal(t, 3, got.Scanned)
	assert.Equal(t, 1, got.Updated)
}

// A second pass over already-repaired records must change nothing.
func TestService_RepairIdempotent(t *testing.T) {
	repaired := decimal.NewFromInt(1500)

	rec := &record.Record{
		ID:        uuid.New(),
		SenderID:  engine.SenderMessages,
		Title:     "OrangeMoney",
		Body:      "Vous avez recu un transfert de 1500.00F de Awa. Votre solde est 9000.00F",
		Amount:    &repaired,
		AmountRaw: "1500.00",
	}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := record.NewMockRepository(ctrl)
	repo.EXPECT().
		ListBySender(gomock.Any(), engine.SenderMessages).
		Return([]*record.Record{rec}, nil)

	got, err := newService(repo).Repair(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, got.Scanned)
	assert.Zero(t, got.Updated)
}

func TestService_PurgeTrash(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := record.NewMockRepository(ctrl)
	repo.EXPECT().
		PurgeTrash(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, olderThan time.Time) (int64, error) {
			// 30 days of retention puts the cutoff in the past.
			assert.True(t, olderThan.Before(time.Now()))
			return 4, nil
		})

	n, err := newService(repo).PurgeTrash(context.Background(), 30*24*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, int64(4), n)
}
