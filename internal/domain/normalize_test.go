package domain

import "testing"

func TestNormalizeWord(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "lowercase", input: "cat", want: "CAT"},
		{name: "mixed case", input: "Hello", want: "HELLO"},
		{name: "already upper", input: "ABANDON", want: "ABANDON"},
		{name: "trim spaces", input: "  hello  ", want: "HELLO"},
		{name: "diacritics folded", input: "Café", want: "CAFE"},
		{name: "naive", input: "naïve", want: "NAIVE"},
		{name: "hyphen preserved", input: "well-known", want: "WELL-KNOWN"},
		{name: "apostrophe preserved", input: "don't", want: "DON'T"},
		{name: "typographic apostrophe", input: "don’t", want: "DON'T"},
		{name: "leading apostrophe trimmed", input: "'bout", want: "BOUT"},
		{name: "trailing punctuation dropped", input: "a.", want: "A"},
		{name: "symbol prefix dropped", input: "&ampersand", want: "AMPERSAND"},
		{name: "digits kept", input: "3d", want: "3D"},
		{name: "empty", input: "", want: ""},
		{name: "only punctuation", input: "--", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := NormalizeWord(tt.input); got != tt.want {
				t.Errorf("NormalizeWord(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestIsApostrophe(t *testing.T) {
	t.Parallel()

	for _, r := range []rune{'\'', '’', '‘', 'ʼ'} {
		if !IsApostrophe(r) {
			t.Errorf("IsApostrophe(%q) = false, want true", r)
		}
	}
	for _, r := range []rune{'a', '-', '"'} {
		if IsApostrophe(r) {
			t.Errorf("IsApostrophe(%q) = true, want false", r)
		}
	}
}
