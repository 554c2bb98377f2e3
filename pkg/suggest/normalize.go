package suggest

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalize folds a word into its trie key: NFD decomposition with combining
// marks stripped, then lowercased. Ёлка and елка collapse to the same key
// (Ё decomposes to Е plus a combining diaeresis), as do café and cafe.
func Normalize(word string) string {
	stripMarks := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)))
	folded, _, err := transform.String(stripMarks, word)
	if err != nil {
		folded = word
	}
	return strings.ToLower(folded)
}
