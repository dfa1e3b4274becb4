// Package g2p orchestrates grapheme-to-phoneme transcription: dictionary
// lookup first, the letter-to-sound rules for everything the dictionary lacks.
package g2p

import (
	"context"
	"errors"
	"log/slog"

	"github.com/heartmarshall/myenglish-g2p/internal/dictionary"
	"github.com/heartmarshall/myenglish-g2p/internal/domain"
	"github.com/heartmarshall/myenglish-g2p/internal/phonetics/arpabet"
	"github.com/heartmarshall/myenglish-g2p/internal/phonetics/ipa"
	"github.com/heartmarshall/myenglish-g2p/internal/phonetics/lts"
)

type pronunciationStore interface {
	Load(ctx context.Context) error
	Lookup(word string) ([]dictionary.Pronunciation, error)
}

// Service transcribes English text to IPA phonemes.
type Service struct {
	log   *slog.Logger
	store pronunciationStore
}

// NewService creates a G2P service backed by store.
func NewService(logger *slog.Logger, store pronunciationStore) *Service {
	return &Service{
		log:   logger.With("service", "g2p"),
		store: store,
	}
}

// Transcribe returns one result per word of text, in input order. It never
// fails: when the dictionary cannot be loaded every word goes through the
// letter-to-sound fallback. Empty text yields an empty slice.
func (s *Service) Transcribe(ctx context.Context, text string) []domain.G2PResult {
	words := Tokenize(text)
	results := make([]domain.G2PResult, 0, len(words))
	if len(words) == 0 {
		return results
	}

	useDictionary := true
	if err := s.store.Load(ctx); err != nil {
		useDictionary = false
		s.log.WarnContext(ctx, "dictionary unavailable, using fallback for all words",
			slog.Int("words", len(words)),
			slog.String("error", err.Error()),
		)
	}

	fallbacks := 0
	for _, w := range words {
		res, err := s.transcribeWord(ctx, w, useDictionary)
		if err != nil {
			// Defensive: once loaded, dictionary.Store only reports misses, but
			// other pronunciationStore implementations may fail Lookup after a
			// successful Load. The remaining words skip the dictionary.
			useDictionary = false
			s.log.WarnContext(ctx, "dictionary lookup failed, using fallback for remaining words",
				slog.String("word", w),
				slog.String("error", err.Error()),
			)
		}
		if res.Source == domain.SourceFallback {
			fallbacks++
		}
		results = append(results, res)
	}

	s.log.DebugContext(ctx, "transcribed",
		slog.Int("words", len(words)),
		slog.Int("fallbacks", fallbacks),
	)

	return results
}

// transcribeWord returns the dictionary transcription of word when available
// and the fallback otherwise. The error is non-nil only when the dictionary
// tier itself failed, as opposed to a plain miss.
func (s *Service) transcribeWord(ctx context.Context, word string, useDictionary bool) (domain.G2PResult, error) {
	var dictErr error
	if useDictionary {
		variants, err := s.store.Lookup(word)
		switch {
		case err == nil && len(variants) > 0:
			return domain.G2PResult{
				Word:     word,
				Phonemes: arpabet.Convert(variants[0]),
				Source:   domain.SourceDictionary,
			}, nil
		case domain.IsDictionaryFailure(err):
			dictErr = err
		case err != nil && !errors.Is(err, domain.ErrNotFound):
			s.log.WarnContext(ctx, "dictionary lookup failed",
				slog.String("word", word),
				slog.String("error", err.Error()),
			)
		}
	}

	return domain.G2PResult{
		Word:     word,
		Phonemes: lts.Generate(word),
		Source:   domain.SourceFallback,
	}, dictErr
}

// Segment splits an IPA transcription into phonemes and counts characters
// outside the inventory, logging them when present.
func (s *Service) Segment(ctx context.Context, transcription string) domain.Segmentation {
	tokens := ipa.SegmentTokens(transcription)

	seg := domain.Segmentation{Phonemes: make([]string, 0, len(tokens))}
	var unknown []string
	for _, t := range tokens {
		seg.Phonemes = append(seg.Phonemes, t.Symbol)
		if t.Kind == ipa.KindUnknown {
			unknown = append(unknown, t.Symbol)
		}
	}
	seg.Unknown = len(unknown)

	if seg.Unknown > 0 {
		s.log.WarnContext(ctx, "unknown symbols in IPA input",
			slog.Int("count", seg.Unknown),
			slog.Any("symbols", unknown),
		)
	}

	return seg
}
