package dictionary

import (
	"slices"

	"github.com/heartmarshall/myenglish-g2p/internal/domain"
	"github.com/heartmarshall/myenglish-g2p/internal/phonetics/arpabet"
)

// Pronunciation is one variant of a word: an ordered ARPAbet phone sequence.
type Pronunciation []arpabet.Phone

// String renders the pronunciation in ARPAbet form ("K AE1 T").
func (p Pronunciation) String() string {
	return arpabet.FormatPhones(p)
}

// Dictionary is an immutable word -> variants map. The first variant of each
// word is the default pronunciation.
type Dictionary struct {
	entries map[string][]Pronunciation
	stats   Stats
}

// add appends phones to word's variants unless an identical variant exists.
func (d *Dictionary) add(word string, phones Pronunciation) bool {
	for _, existing := range d.entries[word] {
		if slices.Equal(existing, phones) {
			return false
		}
	}
	d.entries[word] = append(d.entries[word], phones)
	return true
}

// Lookup returns all variants for word, case-insensitively, or domain.ErrNotFound.
// The returned slices are shared with the dictionary and must not be modified.
func (d *Dictionary) Lookup(word string) ([]Pronunciation, error) {
	key := domain.NormalizeWord(word)
	if key == "" {
		return nil, domain.ErrNotFound
	}
	variants, ok := d.entries[key]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return variants, nil
}

// Len returns the number of distinct words.
func (d *Dictionary) Len() int {
	return len(d.entries)
}

// Stats returns the statistics collected while parsing.
func (d *Dictionary) Stats() Stats {
	return d.stats
}
