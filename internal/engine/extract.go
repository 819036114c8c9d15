package engine

import (
	"regexp"
	"strings"
)

// Fields is the raw extraction result for one notification body. Either
// field may be empty when no pattern tier matched; that is a normal,
// representable outcome.
type Fields struct {
	AmountRaw    string
	Counterparty string
}

// sectionMarkers open the trailing balance/fee sections of a message.
// The transaction amount always precedes them; any number after the
// first marker belongs to another field and must never be captured.
// All marker phrases are plain ASCII.
var sectionMarkers = []string{
	"nouveau solde",
	"new balance",
	"solde wave",
	"votre solde",
	"frais",
}

var sectionMarkerRe = regexp.MustCompile(`(?i)` + strings.Join(sectionMarkers, "|"))

// searchRegion returns the prefix of body that precedes the earliest
// section marker. All pattern tiers are constrained to this region,
// which is what keeps a "Nouveau solde: 40.000F" figure from being
// mistaken for the transaction amount. The match runs on the original
// string; indexing through a ToLower copy shifts offsets when a rune's
// lowercase form has a different UTF-8 length.
func searchRegion(body string) string {
	if loc := sectionMarkerRe.FindStringIndex(body); loc != nil {
		return body[:loc[0]]
	}

	return body
}

// num captures one locale-formatted number: digits with optional "." or
// "," separators, never a sign character.
const num = `([0-9](?:[0-9.,]*[0-9])?)`

// fieldSpec is the ordered pattern cascade for one template. Tiers run
// in order against the guarded search region and the first capture wins:
// a tight pattern anchored to the template's wording first, then a loose
// keyword fallback, then a generic currency-anchored number.
type fieldSpec struct {
	amount       []*regexp.Regexp
	counterparty []*regexp.Regexp
}

var (
	genericAmount = regexp.MustCompile(`(?i)` + num + `\s*(?:FCFA|CFA|XOF|F\b)`)

	// counterpartyAfterAmountTo captures the recipient that follows the
	// amount's currency token, e.g. "payé 15.500F à Boutique Fatou."
	counterpartyAfterAmountTo   = regexp.MustCompile(`(?i)F(?:CFA)?\s+[àa]\s+([^.,:]+?)(?:\s+Ref\b|\s*[.,:]|$)`)
	counterpartyAfterAmountFrom = regexp.MustCompile(`(?i)F(?:CFA)?\s+de\s+([^.,:]+?)(?:\s+Ref\b|\s*[.,:]|$)`)

	// Loose fallbacks: preposition followed by a capitalized or numeric
	// token, unanchored to the amount. Case-sensitive on purpose: the
	// uppercase first character is the discriminator that keeps ordinary
	// prose ("a ete annule") from being captured as a counterparty.
	counterpartyLooseTo   = regexp.MustCompile(`\s[àa]\s+([0-9A-ZÀ-Ý][^.,:]*?)(?:\s+Ref\b|\s*[.,:]|$)`)
	counterpartyLooseFrom = regexp.MustCompile(`\bde\s+([0-9A-ZÀ-Ý][^.,:]*?)(?:\s+Ref\b|\s*[.,:]|$)`)
)

// fieldSpecs maps each template to its extraction cascade. BalanceOnly
// is deliberately absent: informational messages carry no transaction
// amount, so every field stays empty.
var fieldSpecs = map[Template]fieldSpec{
	TemplatePaymentMade: {
		amount: []*regexp.Regexp{
			regexp.MustCompile(`(?i)vous avez pay[ée]\s*:?\s*` + num + `\s*F`),
			regexp.MustCompile(`(?i)pay[ée]\D{0,12}?` + num),
			genericAmount,
		},
		counterparty: []*regexp.Regexp{counterpartyAfterAmountTo, counterpartyLooseTo},
	},
	TemplateTransferSent: {
		amount: []*regexp.Regexp{
			regexp.MustCompile(`(?i)vous avez envoy[ée]\s+` + num + `\s*F`),
			regexp.MustCompile(`(?i)envoy[ée]\D{0,12}?` + num),
			genericAmount,
		},
		counterparty: []*regexp.Regexp{counterpartyAfterAmountTo, counterpartyLooseTo},
	},
	TemplateTransferReceived: {
		amount: []*regexp.Regexp{
			regexp.MustCompile(`(?i)vous avez re[cç]u(?:\s+un\s+transfert)?(?:\s+de)?\s+` + num + `\s*F`),
			regexp.MustCompile(`(?i)re[cç]u\D{0,16}?` + num),
			genericAmount,
		},
		counterparty: []*regexp.Regexp{counterpartyAfterAmountFrom, counterpartyLooseFrom},
	},
	TemplateZeroFeeReceipt: {
		amount: []*regexp.Regexp{
			regexp.MustCompile(`(?i)re[cç]u\s+` + num + `\s*F`),
			genericAmount,
		},
		counterparty: []*regexp.Regexp{counterpartyAfterAmountFrom, counterpartyLooseFrom},
	},
	TemplateRemotePayment: {
		amount: []*regexp.Regexp{
			regexp.MustCompile(`(?i)[àa]\s+distance\s+re[cç]u\s*:?\s*` + num),
			regexp.MustCompile(`(?i)re[cç]u\D{0,16}?` + num),
			genericAmount,
		},
		counterparty: []*regexp.Regexp{counterpartyAfterAmountFrom, counterpartyLooseFrom},
	},
	// Unrecognized messages still get a best-effort generic number search
	// so the stored record is not completely blank.
	TemplateUnrecognized: {
		amount: []*regexp.Regexp{genericAmount},
	},
}

// ExtractFields runs the template's pattern cascade over the guarded
// region of body.
func ExtractFields(t Template, body string) Fields {
	spec, ok := fieldSpecs[t]
	if !ok {
		return Fields{}
	}

	region := searchRegion(body)

	var f Fields

	for _, re := range spec.amount {
		if m := re.FindStringSubmatch(region); m != nil {
			f.AmountRaw = m[1]
			break
		}
	}

	for _, re := range spec.counterparty {
		m := re.FindStringSubmatch(region)
		if m == nil {
			continue
		}

		if c := strings.TrimSpace(m[1]); c != "" {
			f.Counterparty = c
			break
		}
	}

	return f
}
