// Package lts is the rule-based letter-to-sound fallback used for words
// missing from the pronunciation dictionary. Output is best-effort IPA.
package lts

import (
	"strings"

	"github.com/heartmarshall/myenglish-g2p/internal/phonetics/ipa"
)

// Generate converts an English spelling to IPA symbols. It never fails and
// is deterministic: characters without a rule pass through verbatim.
func Generate(word string) []string {
	w := []rune(strings.ToLower(word))
	out := make([]string, 0, len(w))

	for i := 0; i < len(w); {
		if phones, n, ok := matchPattern(w, i); ok {
			out = append(out, phones...)
			i += n
			continue
		}
		if sym, ok := letter(w, i); ok {
			out = append(out, sym)
		}
		i++
	}

	if len(w) > 1 && w[len(w)-1] == 'x' {
		out = append(out, "s")
	}

	return collapseGeminates(out)
}

func matchPattern(w []rune, i int) ([]string, int, bool) {
	for _, table := range patternTables {
		if i+table.size > len(w) {
			continue
		}
		rules, ok := table.rules[string(w[i:i+table.size])]
		if !ok {
			continue
		}
		for _, r := range rules {
			if r.when == nil || r.when(w, i, table.size) {
				return r.phones, table.size, true
			}
		}
	}
	return nil, 0, false
}

// letter maps the single rune at i. ok is false when the rune is silent.
func letter(w []rune, i int) (string, bool) {
	r := w[i]

	if isVowelLetter(r) {
		if r == 'e' && silentFinalE(w, i) {
			return "", false
		}
		if closedByMagicE(w, i) {
			return tense[r], true
		}
		return lax[r], true
	}

	switch r {
	case 'y':
		if i == len(w)-1 {
			return "aɪ", true
		}
		return "j", true
	case 'c':
		if i+1 < len(w) && isFrontVowel(w[i+1]) {
			return "s", true
		}
	case 'g':
		if i+1 < len(w) && isFrontVowel(w[i+1]) {
			return "dʒ", true
		}
	case 'x':
		if i == 0 {
			return "z", true
		}
	case 'n':
		if velarFollows(w, i) {
			return "ŋ", true
		}
	}

	if sym, ok := consonants[r]; ok {
		return sym, true
	}
	return string(r), true
}

// silentFinalE: a word-final e after a consonant, with a vowel earlier in the word.
func silentFinalE(w []rune, i int) bool {
	last := len(w) - 1
	if i != last || last < 2 || !isConsonantLetter(w[last-1]) {
		return false
	}
	for _, r := range w[:last-1] {
		if isVowelLetter(r) {
			return true
		}
	}
	return false
}

// closedByMagicE: vowel + one consonant + silent final e, as in "make".
func closedByMagicE(w []rune, i int) bool {
	last := len(w) - 1
	return i == last-2 && w[last] == 'e' && isConsonantLetter(w[i+1]) && silentFinalE(w, last)
}

func velarFollows(w []rune, i int) bool {
	if i+1 >= len(w) {
		return false
	}
	switch w[i+1] {
	case 'k':
		return true
	case 'c':
		return i+2 >= len(w) || !isFrontVowel(w[i+2])
	}
	return false
}

// collapseGeminates merges adjacent identical consonant phonemes.
func collapseGeminates(phones []string) []string {
	out := phones[:0]
	for _, p := range phones {
		if n := len(out); n > 0 && out[n-1] == p && ipa.IsConsonant(p) {
			continue
		}
		out = append(out, p)
	}
	return out
}
