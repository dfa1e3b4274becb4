// Package dictionary parses CMU-style pronunciation dictionaries and holds the
// loaded result in a Store shared read-only across requests.
package dictionary

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/heartmarshall/myenglish-g2p/internal/domain"
	"github.com/heartmarshall/myenglish-g2p/internal/phonetics/arpabet"
)

// maxLineBytes bounds a single dictionary line.
const maxLineBytes = 64 * 1024

var (
	// errSkipLine signals a comment or blank line.
	errSkipLine = errors.New("skip line")
	// errBadLine signals a line that is neither a comment nor a valid entry.
	errBadLine = errors.New("bad line")
)

// Stats holds parser statistics for logging.
type Stats struct {
	TotalLines        int `json:"total_lines"`
	CommentLines      int `json:"comment_lines"`
	ParsedLines       int `json:"parsed_lines"`
	RejectedLines     int `json:"rejected_lines"`
	DuplicateVariants int `json:"duplicate_variants"`
	UniqueWords       int `json:"unique_words"`
}

// Parse reads a CMU-format dictionary: one `WORD[(N)]  PHONE PHONE ...` entry
// per line, `;` or `#` comment lines. Variants of one word accumulate in file
// order; exact duplicates are counted and dropped. Zero parsed lines yields
// domain.ErrDictionaryMalformed.
func Parse(r io.Reader) (*Dictionary, error) {
	d := &Dictionary{entries: make(map[string][]Pronunciation)}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), maxLineBytes)
	for scanner.Scan() {
		d.stats.TotalLines++
		line := scanner.Text()

		word, phones, err := parseLine(line)
		if errors.Is(err, errSkipLine) {
			if isComment(strings.TrimSpace(line)) {
				d.stats.CommentLines++
			}
			continue
		}
		if err != nil {
			d.stats.RejectedLines++
			continue
		}

		d.stats.ParsedLines++
		if !d.add(word, phones) {
			d.stats.DuplicateVariants++
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("dictionary: scan line %d: %w", d.stats.TotalLines+1, err)
	}

	if d.stats.ParsedLines == 0 {
		return nil, fmt.Errorf("dictionary: %w: no parseable entries in %d lines",
			domain.ErrDictionaryMalformed, d.stats.TotalLines)
	}

	d.stats.UniqueWords = len(d.entries)
	return d, nil
}

// stripInlineComment drops a trailing "# comment" annotation, as carried by
// newer cmudict.dict files. The '#' must follow whitespace of any kind.
func stripInlineComment(line string) string {
	for i := 1; i < len(line); i++ {
		if line[i] == '#' && unicode.IsSpace(rune(line[i-1])) {
			return line[:i]
		}
	}
	return line
}

// parseLine returns the normalized word and its phones, errSkipLine for
// comments/blank lines, or errBadLine.
func parseLine(line string) (string, Pronunciation, error) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || isComment(trimmed) {
		return "", nil, errSkipLine
	}

	trimmed = stripInlineComment(trimmed)

	fields := strings.Fields(trimmed)
	if len(fields) < 2 {
		return "", nil, errBadLine
	}

	word := domain.NormalizeWord(stripVariant(fields[0]))
	if word == "" {
		return "", nil, errBadLine
	}

	phones := make(Pronunciation, 0, len(fields)-1)
	for _, f := range fields[1:] {
		f = strings.ToUpper(f)
		if !validPhone(f) {
			return "", nil, errBadLine
		}
		phones = append(phones, arpabet.ParsePhone(f))
	}

	return word, phones, nil
}

func isComment(line string) bool {
	return strings.HasPrefix(line, ";") || strings.HasPrefix(line, "#")
}

// stripVariant removes an alternate-pronunciation suffix: "HOUSE(2)" -> "HOUSE".
func stripVariant(raw string) string {
	if !strings.HasSuffix(raw, ")") {
		return raw
	}
	open := strings.LastIndexByte(raw, '(')
	if open <= 0 {
		return raw
	}
	num := raw[open+1 : len(raw)-1]
	if num == "" {
		return raw
	}
	for _, c := range num {
		if c < '0' || c > '9' {
			return raw
		}
	}
	return raw[:open]
}

// validPhone accepts [A-Z]+ with an optional trailing stress digit 0-2.
func validPhone(s string) bool {
	n := len(s)
	if n == 0 {
		return false
	}
	if c := s[n-1]; c >= '0' && c <= '2' {
		s = s[:n-1]
	}
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < 'A' || s[i] > 'Z' {
			return false
		}
	}
	return true
}
