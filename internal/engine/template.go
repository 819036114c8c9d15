package engine

import "strings"

// Template identifies the recognized message shape within a provider.
type Template string

const (
	TemplatePaymentMade      Template = "payment_made"
	TemplateTransferSent     Template = "transfer_sent"
	TemplateTransferReceived Template = "transfer_received"
	TemplateZeroFeeReceipt   Template = "zero_fee_receipt"
	TemplateRemotePayment    Template = "remote_payment_received"
	TemplateBalanceOnly      Template = "balance_only"
	TemplateUnrecognized     Template = "unrecognized"
)

// Rule is one template-selection entry. It matches when the folded title
// contains any of TitleAny and the folded body contains any of BodyAny;
// an empty list places no constraint on that field.
type Rule struct {
	TitleAny []string
	BodyAny  []string
	Template Template
}

func (r Rule) matches(title, body string) bool {
	if len(r.TitleAny) == 0 && len(r.BodyAny) == 0 {
		return false
	}

	if len(r.TitleAny) > 0 && !containsAny(title, r.TitleAny) {
		return false
	}

	if len(r.BodyAny) > 0 && !containsAny(body, r.BodyAny) {
		return false
	}

	return true
}

// RuleSet holds the per-provider template rules. Order matters: keyword
// sets overlap, so the more specific rule must be listed first and the
// first matching rule wins.
type RuleSet map[Provider][]Rule

// Match selects the message template for a classified notification.
// No match yields TemplateUnrecognized, which is a valid terminal state
// (the record is still persisted with best-effort fields), not an error.
func (rs RuleSet) Match(p Provider, title, body string) Template {
	t, b := Fold(title), Fold(body)

	for _, r := range rs[p] {
		if r.matches(t, b) {
			return r.Template
		}
	}

	return TemplateUnrecognized
}

// DefaultRules returns the shipped rule tables. Keywords are written
// lowercase and accent-free; inputs are folded before testing. The
// tables are plain data so a corrected set can be swapped in (see
// NewWithRules) without touching the matching logic.
func DefaultRules() RuleSet {
	return RuleSet{
		ProviderWave: {
			{TitleAny: []string{"paiement reussi"}, Template: TemplatePaymentMade},
			{TitleAny: []string{"transfert reussi", "transfert envoye"}, Template: TemplateTransferSent},
			{TitleAny: []string{"transfert recu"}, Template: TemplateTransferReceived},
		},
		ProviderWaveBusiness: {
			{TitleAny: []string{"transfert reussi", "transfert envoye"}, Template: TemplateTransferSent},
			{TitleAny: []string{"zero frais"}, Template: TemplateZeroFeeReceipt},
			// Remote payments announce themselves in the body only; this
			// tier runs after every title rule has failed.
			{BodyAny: []string{"a distance recu"}, Template: TemplateRemotePayment},
		},
		ProviderOrangeMoney: aggregatorRules(),
		ProviderMixx:        aggregatorRules(),
	}
}

// aggregatorRules covers templates delivered over the shared SMS channel.
// Titles there carry only the brand keyword, so selection reads the body.
// A transfer body ends with a balance line, which is why the balance-only
// rule must come last.
func aggregatorRules() []Rule {
	return []Rule{
		{BodyAny: []string{"vous avez envoye", "transfert envoye", "transfert reussi"}, Template: TemplateTransferSent},
		{BodyAny: []string{"paiement reussi", "vous avez paye", "paiement"}, Template: TemplatePaymentMade},
		{BodyAny: []string{"vous avez recu", "transfert recu"}, Template: TemplateTransferReceived},
		{BodyAny: []string{"votre solde", "solde actuel"}, Template: TemplateBalanceOnly},
	}
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}

	return false
}
