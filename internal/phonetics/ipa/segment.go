package ipa

import (
	"strings"
	"unicode"
)

// Token is one segmented IPA unit.
type Token struct {
	Symbol string
	Kind   Kind
}

// Segment splits a complete IPA string into atomic phoneme symbols.
// See SegmentTokens for the matching rules.
func Segment(s string) []string {
	tokens := SegmentTokens(s)
	out := make([]string, len(tokens))
	for i, t := range tokens {
		out[i] = t.Symbol
	}
	return out
}

// SegmentTokens splits s by maximal munch over the inventory. An affricate
// candidate is split back into stop + fricative when a stress mark directly
// precedes it and the rune before that mark is the same stop ("tˈtʃ"): the
// stress mark there sits on a morpheme boundary, so the stop closes the
// previous syllable and the fricative opens the next.
//
// Whitespace is skipped. Any other unmatched rune becomes a KindUnknown token.
func SegmentTokens(s string) []Token {
	rs := []rune(s)
	tokens := make([]Token, 0, len(rs))

	for i := 0; i < len(rs); {
		if unicode.IsSpace(rs[i]) {
			i++
			continue
		}

		best, ok := longestMatch(rs, i)
		if !ok {
			tokens = append(tokens, Token{Symbol: string(rs[i]), Kind: KindUnknown})
			i++
			continue
		}

		if best.kind == KindAffricate && splitsAtBoundary(rs, i, affricates[best.symbol]) {
			tokens = append(tokens, Token{Symbol: string(rs[i]), Kind: KindConsonant})
			i++
			continue
		}

		tokens = append(tokens, Token{Symbol: best.symbol, Kind: best.kind})
		i += len(best.runes)
	}

	return tokens
}

// Join concatenates segmented symbols back into an IPA string.
func Join(symbols []string) string {
	return strings.Join(symbols, "")
}

func longestMatch(rs []rune, at int) (entry, bool) {
	for _, e := range inventory {
		if hasPrefixAt(rs, at, e.runes) {
			return e, true
		}
	}
	return entry{}, false
}

func hasPrefixAt(rs []rune, at int, prefix []rune) bool {
	if at+len(prefix) > len(rs) {
		return false
	}
	for j, r := range prefix {
		if rs[at+j] != r {
			return false
		}
	}
	return true
}

func splitsAtBoundary(rs []rune, at int, stop rune) bool {
	return at >= 2 && isStressRune(rs[at-1]) && rs[at-2] == stop
}
