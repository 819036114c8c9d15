package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pndiaye/xaalis/internal/engine"
)

func TestClassifyProvider(t *testing.T) {
	type args struct {
		senderID string
		title    string
	}

	type testCase struct {
		name string
		args args
		want engine.Provider
	}

	tests := []testCase{
		{
			name: "WavePersonal",
			args: args{senderID: engine.SenderWave, title: "Paiement réussi!"},
			want: engine.ProviderWave,
		},
		{
			name: "WaveBusinessByTitle",
			args: args{senderID: engine.SenderWave, title: "Wave Business - Transfert reçu"},
			want: engine.ProviderWaveBusiness,
		},
		{
			name: "WaveBusinessCaseInsensitive",
			args: args{senderID: engine.SenderWave, title: "BUSINESS: Zéro frais"},
			want: engine.ProviderWaveBusiness,
		},
		{
			name: "OrangeMoneyByBrandKeyword",
			args: args{senderID: engine.SenderMessages, title: "OrangeMoney"},
			want: engine.ProviderOrangeMoney,
		},
		{
			name: "MixxByBrandKeyword",
			args: args{senderID: engine.SenderMessages, title: "Mixx by Yas"},
			want: engine.ProviderMixx,
		},
		{
			name: "AggregatorWithoutBrandKeyword",
			args: args{senderID: engine.SenderMessages, title: "Banque Atlantique"},
			want: engine.ProviderUnknown,
		},
		{
			name: "UnknownSender",
			args: args{senderID: "com.whatsapp", title: "Paiement réussi"},
			want: engine.ProviderUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, engine.ClassifyProvider(tt.args.senderID, tt.args.title))
		})
	}
}

func TestProvider_Aggregator(t *testing.T) {
	assert.True(t, engine.ProviderOrangeMoney.Aggregator())
	assert.True(t, engine.ProviderMixx.Aggregator())
	assert.False(t, engine.ProviderWave.Aggregator())
	assert.False(t, engine.ProviderWaveBusiness.Aggregator())
	assert.False(t, engine.ProviderUnknown.Aggregator())
}

func TestProvider_DisplayName(t *testing.T) {
	assert.Equal(t, "Wave", engine.ProviderWave.DisplayName())
	assert.Equal(t, "Wave Business", engine.ProviderWaveBusiness.DisplayName())
	assert.Equal(t, "Orange Money", engine.ProviderOrangeMoney.DisplayName())
	assert.Equal(t, "Mixx by Yas", engine.ProviderMixx.DisplayName())
	assert.Empty(t, engine.ProviderUnknown.DisplayName())
}
