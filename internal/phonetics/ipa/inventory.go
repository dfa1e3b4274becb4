// Package ipa holds the static IPA symbol inventory and the phoneme segmenter
// that splits a complete IPA transcription into atomic tokens.
package ipa

import "sort"

// Kind classifies an inventory symbol.
type Kind int

const (
	KindUnknown Kind = iota
	KindConsonant
	KindVowel
	KindDiphthong
	KindAffricate
	KindStress
	KindLength
)

var kindNames = [...]string{
	KindUnknown:   "unknown",
	KindConsonant: "consonant",
	KindVowel:     "vowel",
	KindDiphthong: "diphthong",
	KindAffricate: "affricate",
	KindStress:    "stress",
	KindLength:    "length",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// Stress and length marks.
const (
	PrimaryStress   = "ˈ"
	SecondaryStress = "ˌ"
	LengthMark      = "ː"
)

var consonants = []string{
	"p", "b", "t", "d", "k", "ɡ", "g", "ʔ",
	"f", "v", "θ", "ð", "s", "z", "ʃ", "ʒ", "h", "x", "ç",
	"m", "n", "ŋ", "l", "ɫ", "ɹ", "r", "ɾ", "j", "w", "ʍ",
	// syllabic consonants and the nasal flap
	"l̩", "m̩", "n̩", "ɾ̃",
}

var vowels = []string{
	"i", "ɪ", "e", "ɛ", "æ", "a", "ɑ", "ɒ", "ɔ", "o", "ʊ", "u",
	"ʌ", "ə", "ɚ", "ɝ", "ɜ", "ɨ", "ʉ", "ɐ",
	"iː", "uː", "ɑː", "ɔː", "ɜː",
}

var diphthongs = []string{"eɪ", "aɪ", "ɔɪ", "aʊ", "oʊ", "əʊ", "ɪə", "eə", "ʊə"}

var affricates = map[string]rune{
	"tʃ": 't',
	"dʒ": 'd',
}

type entry struct {
	symbol string
	runes  []rune
	kind   Kind
}

var (
	// inventory is sorted by descending rune length for maximal munch.
	inventory []entry
	kinds     map[string]Kind
)

func init() {
	kinds = make(map[string]Kind)
	add := func(kind Kind, symbols ...string) {
		for _, s := range symbols {
			kinds[s] = kind
		}
	}
	add(KindConsonant, consonants...)
	add(KindVowel, vowels...)
	add(KindDiphthong, diphthongs...)
	for s := range affricates {
		add(KindAffricate, s)
	}
	add(KindStress, PrimaryStress, SecondaryStress)
	add(KindLength, LengthMark)

	inventory = make([]entry, 0, len(kinds))
	for s, k := range kinds {
		inventory = append(inventory, entry{symbol: s, runes: []rune(s), kind: k})
	}
	sort.Slice(inventory, func(i, j int) bool {
		li, lj := len(inventory[i].runes), len(inventory[j].runes)
		if li != lj {
			return li > lj
		}
		return inventory[i].symbol < inventory[j].symbol
	})
}

// Classify returns the kind of an inventory symbol, or KindUnknown.
func Classify(symbol string) Kind {
	return kinds[symbol]
}

// IsVowel reports whether symbol is a syllable nucleus vowel (plain, long or diphthong).
func IsVowel(symbol string) bool {
	k := kinds[symbol]
	return k == KindVowel || k == KindDiphthong
}

// IsConsonant reports whether symbol is a consonant or affricate.
func IsConsonant(symbol string) bool {
	k := kinds[symbol]
	return k == KindConsonant || k == KindAffricate
}

// IsStress reports whether symbol is a primary or secondary stress mark.
func IsStress(symbol string) bool {
	return kinds[symbol] == KindStress
}

// Symbols returns every inventory symbol, longest first.
func Symbols() []string {
	out := make([]string, len(inventory))
	for i, e := range inventory {
		out[i] = e.symbol
	}
	return out
}

func isStressRune(r rune) bool {
	return r == 'ˈ' || r == 'ˌ'
}
