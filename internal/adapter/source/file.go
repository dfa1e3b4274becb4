package source

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/heartmarshall/myenglish-g2p/internal/domain"
)

// FileSource reads dictionary text from local disk.
type FileSource struct {
	path     string
	maxBytes int64
}

// NewFileSource creates a FileSource for path.
func NewFileSource(path string, maxBytes int64) *FileSource {
	return &FileSource{path: path, maxBytes: maxBytes}
}

// Path returns the file path.
func (s *FileSource) Path() string {
	return s.path
}

// Open opens the file after checking it is a regular file within the size cap.
func (s *FileSource) Open(ctx context.Context) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("file source: %w", err)
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("file source: stat %s: %w", s.path, err)
	}
	if !info.Mode().IsRegular() {
		f.Close()
		return nil, fmt.Errorf("file source: %w: %s is not a regular file", domain.ErrDictionaryUnavailable, s.path)
	}
	if s.maxBytes > 0 && info.Size() > s.maxBytes {
		f.Close()
		return nil, fmt.Errorf("file source: %w (%d bytes)", domain.ErrDictionaryTooLarge, info.Size())
	}

	return f, nil
}
