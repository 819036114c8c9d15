package engine

import "strings"

// ClassifyDirection derives the money-flow direction for a notification.
// Receipts, incoming transfers and remote payments are incoming; every
// other recognized shape is money leaving the account. The tests here are
// independent of template selection but use the same folded keywords, so
// the two stay consistent.
func ClassifyDirection(p Provider, title, body string) bool {
	t, b := Fold(title), Fold(body)

	switch {
	case strings.Contains(t, "transfert recu"):
		return true
	case strings.Contains(t, "zero frais"):
		return true
	case strings.Contains(b, "a distance recu"):
		return true
	case strings.Contains(b, "vous avez recu"):
		return true
	}

	return false
}
