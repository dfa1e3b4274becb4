package dictionary

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/heartmarshall/myenglish-g2p/internal/domain"
)

// Defaults and hard limits for loading.
const (
	DefaultMaxBytes   int64 = 10 << 20
	DefaultTimeout          = 10 * time.Second
	DefaultRetryAfter       = time.Minute
)

// Source supplies raw dictionary text. Implementations should honour ctx.
type Source interface {
	Open(ctx context.Context) (io.ReadCloser, error)
}

// Options tunes a Store. Zero values select the defaults.
type Options struct {
	MaxBytes   int64
	Timeout    time.Duration
	RetryAfter time.Duration
}

func (o Options) withDefaults() Options {
	if o.MaxBytes <= 0 || o.MaxBytes > DefaultMaxBytes {
		o.MaxBytes = DefaultMaxBytes
	}
	if o.Timeout <= 0 || o.Timeout > DefaultTimeout {
		o.Timeout = DefaultTimeout
	}
	if o.RetryAfter <= 0 {
		o.RetryAfter = DefaultRetryAfter
	}
	return o
}

// StoreStats describes the store for health reporting.
type StoreStats struct {
	Loaded    bool      `json:"loaded"`
	Words     int       `json:"words"`
	Parse     Stats     `json:"parse"`
	Fetches   int       `json:"fetches"`
	LoadedAt  time.Time `json:"loaded_at,omitzero"`
	LastError string    `json:"last_error,omitempty"`
}

// Store owns the lifecycle of one loaded Dictionary.
//
// Load and Reload are single-flight on separate keys: concurrent loads share
// one fetch and concurrent reloads share another. Fetches run one at a time, so
// a reload issued during the first load still reads the source after it. The dictionary is published through an atomic pointer, so lookups
// never lock and never observe a partially built map. A failed fetch leaves
// the previous state untouched.
type Store struct {
	source Source
	log    *slog.Logger
	opts   Options
	group  singleflight.Group
	dict   atomic.Pointer[Dictionary]

	// fetchMu serializes fetches from the load and reload flights.
	fetchMu sync.Mutex

	mu          sync.Mutex
	attempted   bool
	lastErr     error
	lastAttempt time.Time
	loadedAt    time.Time
	fetches     int

	now func() time.Time
}

// NewStore creates an unloaded Store reading from source.
func NewStore(source Source, logger *slog.Logger, opts Options) *Store {
	return &Store{
		source: source,
		log:    logger.With("component", "dictionary"),
		opts:   opts.withDefaults(),
		now:    time.Now,
	}
}

// Load fetches and parses the dictionary once. It returns nil immediately when
// already loaded. After a failure, the same error is returned without a new
// fetch until RetryAfter has passed.
//
// The fetch is bounded by the store timeout, not by ctx: a caller whose ctx
// ends stops waiting and gets ctx.Err(), while other waiters still receive
// the shared result.
func (s *Store) Load(ctx context.Context) error {
	if s.dict.Load() != nil {
		return nil
	}
	if err := s.recentFailure(); err != nil {
		return err
	}
	return s.run(ctx, false)
}

// Reload fetches the dictionary again and atomically replaces the loaded one.
// On failure the previous dictionary stays in place.
func (s *Store) Reload(ctx context.Context) error {
	return s.run(ctx, true)
}

// IsLoaded reports whether a dictionary has been published.
func (s *Store) IsLoaded() bool {
	return s.dict.Load() != nil
}

// Lookup returns the variants for word. It fails with domain.ErrNotFound on a
// miss, domain.ErrNotLoaded before any load attempt, or the last load error
// when every attempt so far has failed.
func (s *Store) Lookup(word string) ([]Pronunciation, error) {
	if d := s.dict.Load(); d != nil {
		return d.Lookup(word)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.attempted || s.lastErr == nil {
		return nil, domain.ErrNotLoaded
	}
	return nil, s.lastErr
}

// Stats returns a snapshot of the store state.
func (s *Store) Stats() StoreStats {
	var st StoreStats
	if d := s.dict.Load(); d != nil {
		st.Loaded = true
		st.Words = d.Len()
		st.Parse = d.Stats()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	st.Fetches = s.fetches
	st.LoadedAt = s.loadedAt
	if s.lastErr != nil {
		st.LastError = s.lastErr.Error()
	}
	return st
}

func (s *Store) run(ctx context.Context, force bool) error {
	key := "load"
	if force {
		key = "reload"
	}
	ch := s.group.DoChan(key, func() (any, error) {
		return nil, s.fetch(context.WithoutCancel(ctx), force)
	})

	select {
	case <-ctx.Done():
		return fmt.Errorf("dictionary: wait for load: %w", ctx.Err())
	case res := <-ch:
		return res.Err
	}
}

func (s *Store) recentFailure() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.lastErr != nil && s.now().Sub(s.lastAttempt) < s.opts.RetryAfter {
		return s.lastErr
	}
	return nil
}

func (s *Store) fetch(ctx context.Context, force bool) error {
	s.fetchMu.Lock()
	defer s.fetchMu.Unlock()

	if !force && s.dict.Load() != nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, s.opts.Timeout)
	defer cancel()

	start := s.now()
	d, err := s.read(ctx)

	if err == nil {
		s.dict.Store(d)
	}

	s.mu.Lock()
	s.attempted = true
	s.fetches++
	s.lastAttempt = s.now()
	s.lastErr = err
	if err == nil {
		s.loadedAt = s.lastAttempt
	}
	s.mu.Unlock()

	if err != nil {
		s.log.WarnContext(ctx, "dictionary load failed",
			slog.Bool("reload", force),
			slog.String("error", err.Error()),
		)
		return err
	}

	st := d.Stats()
	s.log.InfoContext(ctx, "dictionary loaded",
		slog.Bool("reload", force),
		slog.Int("words", st.UniqueWords),
		slog.Int("parsed_lines", st.ParsedLines),
		slog.Int("rejected_lines", st.RejectedLines),
		slog.Int("duplicate_variants", st.DuplicateVariants),
		slog.Duration("duration", s.now().Sub(start)),
	)
	return nil
}

func (s *Store) read(ctx context.Context) (*Dictionary, error) {
	rc, err := s.source.Open(ctx)
	if err != nil {
		return nil, unavailable("open source", err)
	}
	defer rc.Close()

	data, err := io.ReadAll(io.LimitReader(rc, s.opts.MaxBytes+1))
	if err != nil {
		return nil, unavailable("read source", err)
	}
	if int64(len(data)) > s.opts.MaxBytes {
		return nil, fmt.Errorf("dictionary: read source: %w (limit %d bytes)", domain.ErrDictionaryTooLarge, s.opts.MaxBytes)
	}
	// A source that ignores ctx must still not publish after the deadline.
	if err := ctx.Err(); err != nil {
		return nil, unavailable("read source", err)
	}

	if ct := http.DetectContentType(data); !strings.HasPrefix(ct, "text/") {
		return nil, fmt.Errorf("dictionary: %w: non-text content (%s)", domain.ErrDictionaryUnavailable, ct)
	}

	return Parse(bytes.NewReader(data))
}

func unavailable(op string, err error) error {
	if errors.Is(err, domain.ErrDictionaryUnavailable) {
		return fmt.Errorf("dictionary: %s: %w", op, err)
	}
	return fmt.Errorf("dictionary: %s: %w: %w", op, domain.ErrDictionaryUnavailable, err)
}
