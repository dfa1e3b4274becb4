package arpabet

import "github.com/heartmarshall/myenglish-g2p/internal/phonetics/ipa"

// Convert maps phones to IPA symbols and splices stress marks in front of
// stressed syllables.
//
// Words with fewer than two nuclei get no stress marks whatever their digits
// say. Otherwise the first digit-1 vowel gets ˈ, later digit-1 vowels are left
// unmarked, and digit-2 vowels get ˌ. A mark is placed after the preceding
// nucleus and at most one consonant that closes it; a word-initial syllable is
// marked at index 0. Unknown bases pass through unchanged.
func Convert(phones []Phone) []string {
	if len(phones) == 0 {
		return []string{}
	}

	marks := stressMarks(phones)

	out := make([]string, 0, len(phones)+len(marks))
	for i, p := range phones {
		out = append(out, marks[i]...)
		sym, ok := ToIPA(p)
		if !ok {
			sym = p.Base
		}
		out = append(out, sym)
	}
	return out
}

// ConvertString parses and converts a space-separated phone string.
func ConvertString(s string) []string {
	return Convert(ParsePhones(s))
}

// stressMarks returns the marks to insert before each phone index. Several
// marks sharing an index keep the order of their vowels.
func stressMarks(phones []Phone) map[int][]string {
	var positions []int
	for i, p := range phones {
		if p.IsNucleus() {
			positions = append(positions, i)
		}
	}
	if len(positions) < 2 {
		return nil
	}

	marks := make(map[int][]string)
	primarySeen := false
	for n, pos := range positions {
		var mark string
		switch phones[pos].Stress {
		case StressPrimary:
			if primarySeen {
				continue
			}
			primarySeen = true
			mark = ipa.PrimaryStress
		case StressSecondary:
			mark = ipa.SecondaryStress
		default:
			continue
		}

		at := 0
		if n > 0 {
			prev := positions[n-1]
			at = prev + 1
			if at < pos {
				at++ // one-consonant coda stays with the previous syllable
			}
		}
		marks[at] = append(marks[at], mark)
	}
	return marks
}
