package lts

// rule maps a spelling to phonemes. A rule with a when condition only applies
// at positions where the condition holds; rules for one spelling are tried in
// order.
type rule struct {
	phones []string
	when   func(w []rune, i, n int) bool
}

func atStart(_ []rune, i, _ int) bool { return i == 0 }

func atEnd(w []rune, i, n int) bool { return i+n == len(w) }

func atStartOrEnd(w []rune, i, n int) bool { return atStart(w, i, n) || atEnd(w, i, n) }

func beforeFrontVowel(w []rune, i, n int) bool {
	return i+n < len(w) && isFrontVowel(w[i+n])
}

func isFrontVowel(r rune) bool { return r == 'e' || r == 'i' || r == 'y' }

// quadgraphs hold the few four-letter spellings worth matching before trigraphs.
var quadgraphs = map[string][]rule{
	"eigh": {{phones: []string{"eɪ"}}},
	"tion": {{phones: []string{"ʃ", "ə", "n"}}},
	"sion": {{phones: []string{"ʒ", "ə", "n"}}},
}

var trigraphs = map[string][]rule{
	"igh": {{phones: []string{"aɪ"}}},
	"tch": {{phones: []string{"tʃ"}}},
	"dge": {{phones: []string{"dʒ"}}},
	"sch": {{phones: []string{"s", "k"}}},
	"eau": {{phones: []string{"oʊ"}}},
}

var digraphs = map[string][]rule{
	// consonant digraphs
	"th": {{phones: []string{"θ"}}},
	"ch": {{phones: []string{"tʃ"}}},
	"sh": {{phones: []string{"ʃ"}}},
	"ph": {{phones: []string{"f"}}},
	"wh": {{phones: []string{"w"}}},
	"gh": {
		{phones: []string{"ɡ"}, when: atStart},
		{phones: []string{}},
	},
	"ck": {{phones: []string{"k"}}},
	"ng": {{phones: []string{"ŋ"}}},
	"qu": {{phones: []string{"k", "w"}}},

	// vowel digraphs
	"ea": {{phones: []string{"i"}}},
	"ee": {{phones: []string{"i"}}},
	"ie": {
		{phones: []string{"aɪ"}, when: atEnd},
		{phones: []string{"i"}},
	},
	"oe": {{phones: []string{"oʊ"}}},
	"ue": {{phones: []string{"u"}}},
	"ai": {{phones: []string{"eɪ"}}},
	"ay": {{phones: []string{"eɪ"}}},
	"oi": {{phones: []string{"ɔɪ"}}},
	"oy": {{phones: []string{"ɔɪ"}}},
	"ou": {{phones: []string{"aʊ"}}},
	"ow": {{phones: []string{"aʊ"}}},
	"oo": {{phones: []string{"u"}}},
	"au": {{phones: []string{"ɔ"}}},
	"aw": {{phones: []string{"ɔ"}}},

	// silent letters
	"kn": {{phones: []string{"n"}, when: atStart}},
	"wr": {{phones: []string{"ɹ"}, when: atStart}},
	"mb": {{phones: []string{"m"}, when: atEnd}},
	"gn": {{phones: []string{"n"}, when: atStartOrEnd}},
	"ps": {{phones: []string{"s"}, when: atStart}},
	"sc": {{phones: []string{"s"}, when: beforeFrontVowel}},
}

// patternTables are tried longest first.
var patternTables = []struct {
	size  int
	rules map[string][]rule
}{
	{4, quadgraphs},
	{3, trigraphs},
	{2, digraphs},
}

var lax = map[rune]string{
	'a': "æ",
	'e': "ɛ",
	'i': "ɪ",
	'o': "ɑ",
	'u': "ʌ",
}

// tense is used for a vowel closed by consonant + silent final e.
var tense = map[rune]string{
	'a': "eɪ",
	'e': "i",
	'i': "aɪ",
	'o': "oʊ",
	'u': "uː",
}

var consonants = map[rune]string{
	'b': "b",
	'c': "k",
	'd': "d",
	'f': "f",
	'g': "ɡ",
	'h': "h",
	'j': "dʒ",
	'k': "k",
	'l': "l",
	'm': "m",
	'n': "n",
	'p': "p",
	'q': "k",
	'r': "ɹ",
	's': "s",
	't': "t",
	'v': "v",
	'w': "w",
	'x': "k",
	'z': "z",
}

func isVowelLetter(r rune) bool {
	_, ok := lax[r]
	return ok
}

func isConsonantLetter(r rune) bool {
	_, ok := consonants[r]
	return ok || r == 'y'
}
