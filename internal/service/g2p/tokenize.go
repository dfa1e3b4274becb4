package g2p

import (
	"strings"
	"unicode"

	"github.com/heartmarshall/myenglish-g2p/internal/domain"
)

// Tokenize splits text into words. Within each whitespace-separated field only
// letters, digits, apostrophes and hyphens survive; apostrophes and hyphens
// at either end of a word are trimmed. Empty words are dropped.
func Tokenize(text string) []string {
	fields := strings.Fields(text)
	words := make([]string, 0, len(fields))

	var b strings.Builder
	for _, f := range fields {
		b.Reset()
		for _, r := range f {
			switch {
			case domain.IsApostrophe(r):
				b.WriteByte('\'')
			case r == '-' || unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.Is(unicode.Mn, r):
				b.WriteRune(r)
			}
		}
		if w := strings.Trim(b.String(), "'-"); w != "" {
			words = append(words, w)
		}
	}

	return words
}
