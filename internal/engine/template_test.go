package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pndiaye/xaalis/internal/engine"
)

func TestRuleSet_Match(t *testing.T) {
	type args struct {
		provider engine.Provider
		title    string
		body     string
	}

	type testCase struct {
		name string
		args args
		want engine.Template
	}

	tests := []testCase{
		{
			name: "WavePayment",
			args: args{provider: engine.ProviderWave, title: "Paiement réussi!", body: "Vous avez payé 15.500F à Boutique Fatou."},
			want: engine.TemplatePaymentMade,
		},
		{
			name: "WaveTransferSent",
			args: args{provider: engine.ProviderWave, title: "Transfert réussi", body: "Vous avez envoyé 5.000F à 77*****23."},
			want: engine.TemplateTransferSent,
		},
		{
			name: "WaveTransferSentAlternateWording",
			args: args{provider: engine.ProviderWave, title: "Transfert envoyé", body: ""},
			want: engine.TemplateTransferSent,
		},
		{
			name: "WaveTransferReceived",
			args: args{provider: engine.ProviderWave, title: "Transfert reçu", body: "Vous avez reçu 10.000F de Awa."},
			want: engine.TemplateTransferReceived,
		},
		{
			name: "WaveAccentsDropped",
			args: args{provider: engine.ProviderWave, title: "Paiement reussi", body: ""},
			want: engine.TemplatePaymentMade,
		},
		{
			name: "BusinessZeroFee",
			args: args{provider: engine.ProviderWaveBusiness, title: "Zéro frais", body: "Vous avez reçu 25.000F de Client X."},
			want: engine.TemplateZeroFeeReceipt,
		},
		{
			name: "BusinessRemotePaymentViaBodyFallback",
			args: args{provider: engine.ProviderWaveBusiness, title: "Notification", body: "Paiement À DISTANCE reçu: 25.000F de Client Pro."},
			want: engine.TemplateRemotePayment,
		},
		{
			name: "BusinessTitleRuleBeatsBodyFallback",
			args: args{provider: engine.ProviderWaveBusiness, title: "Transfert envoyé", body: "Paiement A DISTANCE recu: 1.000F"},
			want: engine.TemplateTransferSent,
		},
		{
			name: "AggregatorTransferReceived",
			args: args{provider: engine.ProviderOrangeMoney, title: "OrangeMoney", body: "Vous avez recu un transfert de 5000F de 771234**89 Ref:123. Votre solde est 12345.00F"},
			want: engine.TemplateTransferReceived,
		},
		{
			name: "AggregatorTransferSent",
			args: args{provider: engine.ProviderMixx, title: "Mixx", body: "Vous avez envoye 2000F au 771234567. Votre solde est 500.00F"},
			want: engine.TemplateTransferSent,
		},
		{
			name: "AggregatorPayment",
			args: args{provider: engine.ProviderOrangeMoney, title: "OrangeMoney", body: "Paiement reussi de 1500F chez SEN EAU. Votre solde est 200.00F"},
			want: engine.TemplatePaymentMade,
		},
		{
			name: "AggregatorBalanceOnly",
			args: args{provider: engine.ProviderOrangeMoney, title: "OrangeMoney", body: "Votre solde est 12345.00F au 12/05."},
			want: engine.TemplateBalanceOnly,
		},
		{
			name: "NoMatchIsUnrecognized",
			args: args{provider: engine.ProviderWave, title: "Bienvenue", body: "Merci d'utiliser Wave."},
			want: engine.TemplateUnrecognized,
		},
		{
			name: "UnknownProviderHasNoRules",
			args: args{provider: engine.ProviderUnknown, title: "Paiement réussi", body: ""},
			want: engine.TemplateUnrecognized,
		},
	}

	rules := engine.DefaultRules()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, rules.Match(tt.args.provider, tt.args.title, tt.args.body))
		})
	}
}
