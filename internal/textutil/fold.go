// Package textutil normalizes free-text account names and type hints so that
// keyword matching survives accents, case, and punctuation ("Depreciación
// Acumulada" -> "DEPRECIACION ACUMULADA").
package textutil

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

	nonAlphanumeric = regexp.MustCompile(`[^A-Z0-9 ]+`)
	whitespace      = regexp.MustCompile(`\s+`)
)

// Fold upper-cases s, strips diacritics, and collapses punctuation and runs
// of whitespace to single spaces.
func Fold(s string) string {
	folded, _, err := transform.String(stripMarks, s)
	if err != nil {
		folded = s
	}
	folded = strings.ToUpper(folded)
	folded = nonAlphanumeric.ReplaceAllString(folded, " ")
	folded = whitespace.ReplaceAllString(folded, " ")
	return strings.TrimSpace(folded)
}

// ContainsAny reports whether folded contains any of the given folded
// keywords.
func ContainsAny(folded string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(folded, kw) {
			return true
		}
	}
	return false
}
