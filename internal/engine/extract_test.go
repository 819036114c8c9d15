package engine_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pndiaye/xaalis/internal/engine"
)

func TestExtractFields(t *testing.T) {
	type args struct {
		template engine.Template
		body     string
	}

	type testCase struct {
		name             string
		args             args
		wantAmountRaw    string
		wantCounterparty string
	}

	tests := []testCase{
		{
			name: "PaymentAnchoredAmountAndRecipient",
			args: args{
				template: engine.TemplatePaymentMade,
				body:     "Vous avez payé 15.500F à Boutique Fatou. Solde Wave: 40.000F",
			},
			wantAmountRaw:    "15.500",
			wantCounterparty: "Boutique Fatou",
		},
		{
			name: "TransferSentAnchored",
			args: args{
				template: engine.TemplateTransferSent,
				body:     "Vous avez envoyé 5.000F à 77*****23. Frais: 0F. Nouveau solde: 12.000F",
			},
			wantAmountRaw:    "5.000",
			wantCounterparty: "77*****23",
		},
		{
			name: "TransferReceivedWithRefAndBalance",
			args: args{
				template: engine.TemplateTransferReceived,
				body:     "Vous avez recu un transfert de 5000F de 771234**89 Ref:123. Votre solde est 12345.00F",
			},
			wantAmountRaw:    "5000",
			wantCounterparty: "771234**89",
		},
		{
			name: "RemotePaymentColonSeparated",
			args: args{
				template: engine.TemplateRemotePayment,
				body:     "Paiement A DISTANCE recu: 25.000F de Client Pro. Frais: 0F",
			},
			wantAmountRaw:    "25.000",
			wantCounterparty: "Client Pro",
		},
		{
			name: "ZeroFeeReceipt",
			args: args{
				template: engine.TemplateZeroFeeReceipt,
				body:     "Vous avez reçu 10.000F de Client X. Nouveau solde: 50.000F",
			},
			wantAmountRaw:    "10.000",
			wantCounterparty: "Client X",
		},
		{
			name: "LooseFallbackWhenWordingDrifts",
			args: args{
				template: engine.TemplateTransferSent,
				body:     "Transfert envoye: 2.500 au 771234567",
			},
			wantAmountRaw: "2.500",
		},
		{
			name: "GenericTierForUnrecognized",
			args: args{
				template: engine.TemplateUnrecognized,
				body:     "Operation de 3.000F effectuee.",
			},
			wantAmountRaw: "3.000",
		},
		{
			name: "AccentedCapitalCounterparty",
			args: args{
				template: engine.TemplatePaymentMade,
				body:     "Vous avez payé 2.000 à École Yacine.",
			},
			wantAmountRaw:    "2.000",
			wantCounterparty: "École Yacine",
		},
		{
			name: "LowercaseProseAfterDeNotACounterparty",
			args: args{
				template: engine.TemplateTransferReceived,
				body:     "Le code de votre operation a expire.",
			},
		},
		{
			name: "NoNumberAtAll",
			args: args{
				template: engine.TemplatePaymentMade,
				body:     "Votre paiement a ete annule.",
			},
		},
		{
			name: "AmountAfterMarkerRejected",
			args: args{
				template: engine.TemplatePaymentMade,
				body:     "Nouveau solde: 9.999F",
			},
		},
		{
			name: "BalanceOnlyExtractsNothing",
			args: args{
				template: engine.TemplateBalanceOnly,
				body:     "Votre solde est 12345.00F",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := engine.ExtractFields(tt.args.template, tt.args.body)

			assert.Equal(t, tt.wantAmountRaw, got.AmountRaw)
			assert.Equal(t, tt.wantCounterparty, got.Counterparty)
		})
	}
}

// The transaction amount must win over any figure that appears after a
// balance or fee marker, whatever the marker wording.
func TestExtractFields_SectionGuard(t *testing.T) {
	markers := []string{"Nouveau solde", "New balance", "Solde Wave", "Frais"}

	for _, marker := range markers {
		t.Run(marker, func(t *testing.T) {
			body := fmt.Sprintf("Vous avez payé 1.234F %s 9.999F", marker)

			got := engine.ExtractFields(engine.TemplatePaymentMade, body)
			assert.Equal(t, "1.234", got.AmountRaw)

			amount, ok := engine.NormalizeAmount(got.AmountRaw, engine.ProviderWave)
			assert.True(t, ok)
			assert.Equal(t, "1234", amount.String())
		})
	}
}

// Lowercasing can change a rune's byte width (Kelvin sign → k). The
// guard must cut at the marker's position in the original string, not
// in a case-folded copy, or the region loses its trailing bytes.
func TestExtractFields_SectionGuardRuneWidth(t *testing.T) {
	body := "Reçu Kiosque 1.500F frais: 100F"

	got := engine.ExtractFields(engine.TemplateUnrecognized, body)
	assert.Equal(t, "1.500", got.AmountRaw)
}
