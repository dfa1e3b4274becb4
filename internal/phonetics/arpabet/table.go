package arpabet

// ipaTable maps ARPAbet bases (stress stripped) to IPA symbols.
var ipaTable = map[string]string{
	"AA":  "\u0251",  // ɑ
	"AE":  "\u00e6",  // æ
	"AH":  "\u028c",  // ʌ
	"AO":  "\u0254",  // ɔ
	"AW":  "a\u028a", // aʊ
	"AX":  "\u0259",  // ə
	"AXR": "\u025a",  // ɚ
	"AY":  "a\u026a", // aɪ
	"B":   "b",
	"CH":  "t\u0283", // tʃ
	"D":   "d",
	"DH":  "\u00f0",  // ð
	"DX":  "\u027e",  // ɾ
	"EH":  "\u025b",  // ɛ
	"EL":  "l\u0329", // l̩
	"EM":  "m\u0329", // m̩
	"EN":  "n\u0329", // n̩
	"ER":  "\u025d",  // ɝ
	"EY":  "e\u026a", // eɪ
	"F":   "f",
	"G":   "\u0261", // ɡ
	"HH":  "h",
	"IH":  "\u026a", // ɪ
	"IX":  "\u0268", // ɨ
	"IY":  "i",
	"JH":  "d\u0292", // dʒ
	"K":   "k",
	"L":   "l",
	"M":   "m",
	"N":   "n",
	"NG":  "\u014b",       // ŋ
	"NX":  "\u027e\u0303", // ɾ̃
	"OW":  "o\u028a",      // oʊ
	"OY":  "\u0254\u026a", // ɔɪ
	"P":   "p",
	"Q":   "\u0294", // ʔ
	"R":   "\u0279", // ɹ
	"S":   "s",
	"SH":  "\u0283", // ʃ
	"T":   "t",
	"TH":  "\u03b8", // θ
	"UH":  "\u028a", // ʊ
	"UW":  "u",
	"UX":  "\u0289", // ʉ
	"V":   "v",
	"W":   "w",
	"WH":  "\u028d", // ʍ
	"Y":   "j",
	"Z":   "z",
	"ZH":  "\u0292", // ʒ
}

// reduced overrides the table for unstressed central vowels.
var reduced = map[string]string{
	"AH": "\u0259", // ə
	"ER": "\u025a", // ɚ
}

// ToIPA maps a single phone to IPA. ok is false for unknown bases, in which
// case the caller decides the pass-through value.
func ToIPA(p Phone) (string, bool) {
	if p.Stress == StressUnstressed {
		if sym, ok := reduced[p.Base]; ok {
			return sym, true
		}
	}
	sym, ok := ipaTable[p.Base]
	return sym, ok
}

// IsKnown reports whether base has an IPA mapping.
func IsKnown(base string) bool {
	_, ok := ipaTable[base]
	return ok
}
