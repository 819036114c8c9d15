package engine

import "strings"

// Known notification sender identifiers. The OS listener forwards only
// notifications coming from these senders, so anything else is already
// filtered out before it reaches the engine.
const (
	// SenderWave is the Wave app's notification channel. Personal and
	// business wallets share it and differ only in title wording.
	SenderWave = "com.wave.personal"
	// SenderMessages is the SMS app through which both aggregator brands
	// (Orange Money, Mixx) deliver their messages.
	SenderMessages = "com.google.android.apps.messaging"
)

// Provider identifies which mobile-money source produced a notification.
// It is always recomputed from sender id and title, never stored on its
// own, so historical records can be re-classified after rule updates.
type Provider string

const (
	ProviderWave         Provider = "wave"
	ProviderWaveBusiness Provider = "wave_business"
	ProviderOrangeMoney  Provider = "orange_money"
	ProviderMixx         Provider = "mixx"
	ProviderUnknown      Provider = "unknown"
)

// ClassifyProvider maps a sender id and notification title to a Provider.
// Total function: unknown senders and aggregator titles without a brand
// keyword yield ProviderUnknown rather than an error.
func ClassifyProvider(senderID, title string) Provider {
	folded := Fold(title)

	switch senderID {
	case SenderWave:
		if strings.Contains(folded, "business") {
			return ProviderWaveBusiness
		}

		return ProviderWave
	case SenderMessages:
		switch {
		case strings.Contains(folded, "orange"):
			return ProviderOrangeMoney
		case strings.Contains(folded, "mixx"):
			return ProviderMixx
		}
	}

	return ProviderUnknown
}

// Aggregator reports whether p is one of the SMS-aggregator brands.
// Their upstream gateway formats amounts differently from the Wave apps,
// see NormalizeAmount.
func (p Provider) Aggregator() bool {
	return p == ProviderOrangeMoney || p == ProviderMixx
}

// DisplayName returns the user-facing provider tag, empty for unknown.
func (p Provider) DisplayName() string {
	switch p {
	case ProviderWave:
		return "Wave"
	case ProviderWaveBusiness:
		return "Wave Business"
	case ProviderOrangeMoney:
		return "Orange Money"
	case ProviderMixx:
		return "Mixx by Yas"
	}

	return ""
}
