// Package arpabet models CMU ARPAbet phones and converts phone sequences to
// IPA symbols with stress marks placed at syllable onsets.
package arpabet

import (
	"strings"
)

// Stress is the stress digit carried by an ARPAbet vowel.
type Stress int8

const (
	StressNone       Stress = -1 // no digit
	StressUnstressed Stress = 0
	StressPrimary    Stress = 1
	StressSecondary  Stress = 2
)

// Class is the derived syllabic class of a phone.
type Class int

const (
	ClassConsonant Class = iota
	ClassNucleus
)

// nuclei lists the vowel bases plus the syllabic consonants EL, EM, EN.
var nuclei = map[string]bool{
	"AA": true, "AE": true, "AH": true, "AO": true, "AW": true, "AY": true,
	"EH": true, "ER": true, "EY": true, "IH": true, "IY": true, "OW": true,
	"OY": true, "UH": true, "UW": true, "AX": true, "AXR": true, "IX": true,
	"UX": true,
	"EL": true, "EM": true, "EN": true,
}

// Phone is one parsed ARPAbet token such as "AE1" or "K".
type Phone struct {
	Base   string
	Stress Stress
}

// ParsePhone splits a trailing stress digit (0, 1, 2) from the base symbol.
// Anything else is kept verbatim as the base.
func ParsePhone(s string) Phone {
	s = strings.TrimSpace(s)
	if n := len(s); n > 1 {
		switch s[n-1] {
		case '0', '1', '2':
			return Phone{Base: s[:n-1], Stress: Stress(s[n-1] - '0')}
		}
	}
	return Phone{Base: s, Stress: StressNone}
}

// ParsePhones parses a whitespace-separated phone string ("HH AH0 L OW1").
func ParsePhones(s string) []Phone {
	fields := strings.Fields(s)
	phones := make([]Phone, len(fields))
	for i, f := range fields {
		phones[i] = ParsePhone(f)
	}
	return phones
}

// Class reports whether p is a syllable nucleus. Unrecognized bases are consonants.
func (p Phone) Class() Class {
	if nuclei[p.Base] {
		return ClassNucleus
	}
	return ClassConsonant
}

// IsNucleus is shorthand for p.Class() == ClassNucleus.
func (p Phone) IsNucleus() bool {
	return p.Class() == ClassNucleus
}

// String renders the phone back in ARPAbet form.
func (p Phone) String() string {
	if p.Stress == StressNone {
		return p.Base
	}
	return p.Base + string(rune('0'+p.Stress))
}

// FormatPhones joins phones with single spaces.
func FormatPhones(phones []Phone) string {
	parts := make([]string, len(phones))
	for i, p := range phones {
		parts[i] = p.String()
	}
	return strings.Join(parts, " ")
}
