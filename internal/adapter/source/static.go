package source

import (
	"context"
	"io"
	"strings"
)

// StaticSource serves dictionary text held in memory, e.g. an embedded file.
type StaticSource struct {
	text string
}

// NewStaticSource creates a StaticSource.
func NewStaticSource(text string) *StaticSource {
	return &StaticSource{text: text}
}

func (s *StaticSource) Open(ctx context.Context) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return io.NopCloser(strings.NewReader(s.text)), nil
}
