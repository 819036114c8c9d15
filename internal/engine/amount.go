package engine

import (
	"strings"

	"github.com/shopspring/decimal"
)

// currencySuffixes in stripping order; "F" must come last so "FCFA" is
// not left half-stripped.
var currencySuffixes = []string{"FCFA", "CFA", "XOF", "F"}

// NormalizeAmount parses a captured amount substring into a canonical
// decimal value.
//
// The Wave apps format amounts with "." (and occasionally ",") as
// thousands separators: "15.500F" is fifteen thousand five hundred. The
// aggregator SMS gateway instead appends a spurious decimal part
// ("5000.00F"), and neither brand uses sub-unit currency, so there the
// integer part before the first "." is kept and "," thousands separators
// are stripped from it.
//
// Never errors: anything that does not reduce to a plain run of digits
// (including any sign character) reports ok=false.
func NormalizeAmount(raw string, p Provider) (decimal.Decimal, bool) {
	s := strings.TrimSpace(raw)
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, " ", "")

	upper := strings.ToUpper(s)
	for _, suffix := range currencySuffixes {
		if strings.HasSuffix(upper, suffix) {
			s = s[:len(s)-len(suffix)]
			break
		}
	}

	if p.Aggregator() {
		if i := strings.IndexByte(s, '.'); i >= 0 {
			s = s[:i]
		}

		s = strings.ReplaceAll(s, ",", "")
	} else {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", "")
	}

	if !digitsOnly(s) {
		return decimal.Decimal{}, false
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, false
	}

	return d, true
}

func digitsOnly(s string) bool {
	if s == "" {
		return false
	}

	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}

	return true
}
