// Package source provides dictionary text sources: HTTP(S), local file and
// in-memory. Their only contract with the dictionary store is "return text or fail".
package source

import (
	"log/slog"
	"strings"
	"time"

	"github.com/heartmarshall/myenglish-g2p/internal/dictionary"
)

// Compile-time interface assertions.
var (
	_ dictionary.Source = (*HTTPSource)(nil)
	_ dictionary.Source = (*FileSource)(nil)
	_ dictionary.Source = (*StaticSource)(nil)
)

// New picks an HTTPSource for http:// and https:// locations and a
// FileSource for everything else.
func New(location string, timeout time.Duration, maxBytes int64, logger *slog.Logger) dictionary.Source {
	lower := strings.ToLower(location)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		return NewHTTPSource(location, timeout, maxBytes, logger)
	}
	return NewFileSource(LocalPath(location), maxBytes)
}

// LocalPath strips an optional file:// scheme from a local location.
func LocalPath(location string) string {
	return strings.TrimPrefix(location, "file://")
}
