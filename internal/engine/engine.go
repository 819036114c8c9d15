// Package engine turns raw mobile-money notifications into structured
// financial events. The pipeline is classification (provider, then
// template), tiered regex field extraction behind a positional section
// guard, locale number normalization and counterparty redaction. Every
// stage is a pure function: a miss at any point is a representable
// absent value, never an error.
package engine

import (
	"time"

	"github.com/shopspring/decimal"
)

// CurrencyLabel is the display currency for all recognized providers.
const CurrencyLabel = "Franc CFA"

// RawNotification is one captured notification as delivered by the OS
// listener. Immutable; the engine consumes it without retaining it.
type RawNotification struct {
	SenderID   string
	Title      string
	Body       string
	ReceivedAt time.Time
}

// Extraction is the engine's structured result for one notification.
type Extraction struct {
	Provider     Provider
	Template     Template
	Amount       *decimal.Decimal
	AmountRaw    string
	Currency     string
	Counterparty string
	Incoming     bool
	Recognized   bool
}

// Engine runs the extraction pipeline. Stateless and safe for concurrent
// use; the rule tables are fixed at construction.
type Engine struct {
	rules RuleSet
}

// New returns an engine with the shipped rule tables.
func New() *Engine {
	return &Engine{rules: DefaultRules()}
}

// NewWithRules builds an engine over a custom rule table. The repair
// pass uses this to run a corrected rule set against stored records
// without redeploying the default one.
func NewWithRules(rules RuleSet) *Engine {
	return &Engine{rules: rules}
}

// Extract classifies n and pulls the structured financial fields out of
// its body. Running it twice on the same input yields identical results.
func (e *Engine) Extract(n RawNotification) Extraction {
	provider := ClassifyProvider(n.SenderID, n.Title)
	if provider == ProviderUnknown {
		// Upstream filtering should prevent this; short-circuit to an
		// all-absent result rather than guessing at fields.
		return Extraction{Provider: ProviderUnknown, Template: TemplateUnrecognized}
	}

	template := e.rules.Match(provider, n.Title, n.Body)
	fields := ExtractFields(template, n.Body)

	ex := Extraction{
		Provider:   provider,
		Template:   template,
		AmountRaw:  fields.AmountRaw,
		Currency:   CurrencyLabel,
		Incoming:   ClassifyDirection(provider, n.Title, n.Body),
		Recognized: template != TemplateUnrecognized,
	}

	if fields.AmountRaw != "" {
		if amount, ok := NormalizeAmount(fields.AmountRaw, provider); ok {
			ex.Amount = &amount
		}
	}

	if fields.Counterparty != "" {
		ex.Counterparty = FormatCounterparty(fields.Counterparty)
	}

	return ex
}
