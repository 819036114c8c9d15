package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pndiaye/xaalis/internal/engine"
)

func TestNormalizeAmount(t *testing.T) {
	type args struct {
		raw      string
		provider engine.Provider
	}

	type testCase struct {
		name   string
		args   args
		want   string
		wantOK bool
	}

	tests := []testCase{
		{
			name:   "WaveThousandsSeparator",
			args:   args{raw: "15.500", provider: engine.ProviderWave},
			want:   "15500",
			wantOK: true,
		},
		{
			name: "WavePeriodIsNeverDecimal",
			// The same text that an aggregator message would truncate is a
			// plain thousands-grouped integer for the Wave family.
			args:   args{raw: "1234.56F", provider: engine.ProviderWave},
			want:   "123456",
			wantOK: true,
		},
		{
			name:   "AggregatorTruncatesAtDecimal",
			args:   args{raw: "1234.56F", provider: engine.ProviderOrangeMoney},
			want:   "1234",
			wantOK: true,
		},
		{
			name:   "AggregatorSpuriousDoubleZero",
			args:   args{raw: "5000.00", provider: engine.ProviderMixx},
			want:   "5000",
			wantOK: true,
		},
		{
			name:   "AggregatorCommaThousands",
			args:   args{raw: "1,234,567.00", provider: engine.ProviderOrangeMoney},
			want:   "1234567",
			wantOK: true,
		},
		{
			name:   "CurrencySuffixFCFA",
			args:   args{raw: "2.500FCFA", provider: engine.ProviderWaveBusiness},
			want:   "2500",
			wantOK: true,
		},
		{
			name:   "SpacesAndNonBreakingSpaces",
			args:   args{raw: "5 000 F", provider: engine.ProviderWave},
			want:   "5000",
			wantOK: true,
		},
		{
			name:   "PlainDigits",
			args:   args{raw: "700", provider: engine.ProviderOrangeMoney},
			want:   "700",
			wantOK: true,
		},
		{
			name:   "LeadingDecimalPointAggregator",
			args:   args{raw: ".50F", provider: engine.ProviderOrangeMoney},
			wantOK: false,
		},
		{
			name:   "SignCharacterRejected",
			args:   args{raw: "-500", provider: engine.ProviderWave},
			wantOK: false,
		},
		{
			name:   "NotANumber",
			args:   args{raw: "solde", provider: engine.ProviderWave},
			wantOK: false,
		},
		{
			name:   "Empty",
			args:   args{raw: "", provider: engine.ProviderWave},
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := engine.NormalizeAmount(tt.args.raw, tt.args.provider)

			if !tt.wantOK {
				assert.False(t, ok)
				return
			}

			require.True(t, ok)
			assert.Equal(t, tt.want, got.String())
		})
	}
}
