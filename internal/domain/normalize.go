package domain

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// IsApostrophe reports whether r is an ASCII or typographic apostrophe.
func IsApostrophe(r rune) bool {
	switch r {
	case '\'', '’', '‘', 'ʼ', '`':
		return true
	}
	return false
}

// NormalizeWord produces the dictionary key for a word:
//   - diacritics are folded (Café -> CAFE)
//   - typographic apostrophes become '
//   - everything except letters, digits, ' and - is dropped
//   - leading/trailing ' and - are trimmed
//   - the result is uppercased
//
// The same function keys dictionary lines and lookups, so "cat", "Cat" and
// "CAT" all resolve to one entry.
func NormalizeWord(word string) string {
	word = strings.TrimSpace(word)
	if word == "" {
		return ""
	}

	// Transformers and casers carry state; build them per call.
	fold := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(fold, word)
	if err != nil {
		folded = word
	}

	var b strings.Builder
	b.Grow(len(folded))
	for _, r := range folded {
		switch {
		case IsApostrophe(r):
			b.WriteByte('\'')
		case r == '-' || unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		}
	}

	key := strings.Trim(b.String(), "'-")
	if key == "" {
		return ""
	}
	return cases.Upper(language.Und).String(key)
}
