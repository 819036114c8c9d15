package engine

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks decomposes and drops combining marks, turning "reçu" into
// "recu" and "envoyé" into "envoye".
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Fold lowercases s and strips diacritics so keyword tests treat
// "Transfert reçu" and "TRANSFERT RECU" the same. Providers are not
// consistent about accents and SMS gateways sometimes drop them entirely.
func Fold(s string) string {
	out, _, err := transform.String(stripMarks, s)
	if err != nil {
		out = s
	}

	return strings.ToLower(out)
}
