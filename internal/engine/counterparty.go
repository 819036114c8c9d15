package engine

import (
	"fmt"
	"strings"
)

// FormatCounterparty normalizes an extracted counterparty label for
// display. Providers partially mask phone numbers for privacy and the
// masking format varies ("77*****23", "771234567 Awa Ndiaye",
// "77123456**89(Jean Dupont)"); every variant is reduced to one spoken
// redacted form, "NN star NN", keeping any attached human name.
func FormatCounterparty(label string) string {
	label = strings.TrimSpace(label)

	if i := strings.IndexByte(label, '('); i >= 0 {
		return formatParenthesized(label[:i], label[i+1:])
	}

	if strings.ContainsRune(label, '*') {
		return formatMasked(label)
	}

	if lead := leadingDigits(label); len(lead) >= 7 {
		return firstLast(lead) + label[len(lead):]
	}

	return label
}

// formatParenthesized handles labels carrying a parenthetical: usually a
// name followed by a masked number, "Jean Dupont(77*****23)", but some
// providers invert it and put the name inside, "77123456**89(Jean Dupont)".
func formatParenthesized(before, paren string) string {
	name := strings.TrimSpace(before)
	paren = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(paren), ")"))

	if strings.ContainsRune(paren, '*') {
		lead := leadingDigits(paren)
		trail := trailingDigits(paren)

		if len(lead) >= 2 && len(trail) >= 2 {
			return fmt.Sprintf("%s, %s star %s", name, lead[:2], trail[len(trail)-2:])
		}

		return name
	}

	if digitsOnly(paren) && len(paren) >= 9 {
		return fmt.Sprintf("%s, %s star %s", name, paren[:2], paren[len(paren)-2:])
	}

	// Inverted variant: the masked number sits before the parenthesis and
	// the parenthetical is the name.
	if strings.ContainsRune(name, '*') || len(leadingDigits(name)) >= 7 {
		return FormatCounterparty(name) + " (" + paren + ")"
	}

	return name
}

// formatMasked handles bare masked numbers like "771234*89" or
// "77*****23 Awa Ndiaye": digit run before the first asterisk, digit run
// after the last one, optional trailing name.
func formatMasked(label string) string {
	token := label
	rest := ""

	if i := strings.IndexByte(label, ' '); i >= 0 {
		token, rest = label[:i], label[i:]
	}

	first := strings.IndexByte(token, '*')
	last := strings.LastIndexByte(token, '*')

	lead := leadingDigits(token[:first])
	trail := trailingDigits(token[last+1:])

	if lead == "" || trail == "" {
		// No clean digit runs around the asterisks; spell the masking out
		// literally instead of dropping the label.
		spelled := strings.ReplaceAll(label, "*", " star ")
		return strings.Join(strings.Fields(spelled), " ")
	}

	return lead + " star " + trail + rest
}

func firstLast(digits string) string {
	if len(digits) < 4 {
		return digits
	}

	return digits[:2] + " star " + digits[len(digits)-2:]
}

func leadingDigits(s string) string {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}

	return s[:i]
}

func trailingDigits(s string) string {
	i := len(s)
	for i > 0 && s[i-1] >= '0' && s[i-1] <= '9' {
		i--
	}

	return s[i:]
}
