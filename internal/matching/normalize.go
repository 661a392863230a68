// Package matching implements the address comparison core: string
// normalization, edit-distance similarity, country code resolution,
// component extraction, and weighted confidence scoring. Everything in this
// package is pure and safe for concurrent use.
package matching

import (
	"strings"
	"unicode"
)

// stopWords are street-suffix tokens that carry no meaning for comparison:
// "Main Street" and "Main St" should match exactly.
var stopWords = map[string]struct{}{
	"street": {}, "st": {}, "avenue": {}, "ave": {},
	"road": {}, "rd": {}, "boulevard": {}, "blvd": {},
	"lane": {}, "ln": {}, "drive": {}, "dr": {},
}

// NormalizeString canonicalizes a free-text address token for comparison:
// lowercase, collapse whitespace, drop everything that is not a letter,
// digit or space, and remove street-suffix stop words. The output is lossy
// and must never be shown to users.
func NormalizeString(s string) string {
	s = strings.ToLower(s)

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteByte(' ')
		}
	}

	words := strings.Fields(b.String())
	kept := words[:0]
	for _, w := range words {
		if _, skip := stopWords[w]; !skip {
			kept = append(kept, w)
		}
	}
	return strings.Join(kept, " ")
}
