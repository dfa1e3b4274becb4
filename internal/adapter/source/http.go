package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"strings"
	"time"

	"github.com/sony/gobreaker"

	"github.com/heartmarshall/myenglish-g2p/internal/domain"
)

// Store reloads bypass the store's failure back-off, so the breaker is what
// keeps a dead upstream from being hit on every reload.
const (
	breakerFailures = 3
	breakerCooldown = 30 * time.Second
)

// HTTPSource downloads dictionary text over HTTP(S).
type HTTPSource struct {
	url        string
	maxBytes   int64
	httpClient *http.Client
	retryDelay time.Duration
	breaker    *gobreaker.CircuitBreaker
	log        *slog.Logger
}

// NewHTTPSource creates an HTTPSource. The client timeout matches the store's
// fetch timeout so a stalled server cannot hold a load open.
func NewHTTPSource(url string, timeout time.Duration, maxBytes int64, logger *slog.Logger) *HTTPSource {
	log := logger.With("adapter", "dictionary_http")
	return &HTTPSource{
		url:        url,
		maxBytes:   maxBytes,
		httpClient: &http.Client{Timeout: timeout},
		retryDelay: 500 * time.Millisecond,
		breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:        "dictionary_http",
			MaxRequests: 1,
			Timeout:     breakerCooldown,
			ReadyToTrip: func(c gobreaker.Counts) bool {
				return c.ConsecutiveFailures >= breakerFailures
			},
			OnStateChange: func(name string, from, to gobreaker.State) {
				log.Warn("dictionary source breaker state changed",
					slog.String("from", from.String()),
					slog.String("to", to.String()),
				)
			},
		}),
		log: log,
	}
}

// Open issues the GET and returns the response body on 200 with a text or
// octet-stream content type. After repeated failures the circuit opens and
// Open fails fast until the cooldown passes.
func (s *HTTPSource) Open(ctx context.Context) (io.ReadCloser, error) {
	s.log.DebugContext(ctx, "dictionary download", slog.String("url", s.url))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("http source: create request: %w", err)
	}
	req.Header.Set("Accept", "text/plain")

	res, err := s.breaker.Execute(func() (interface{}, error) {
		resp, err := s.doWithRetry(ctx, req)
		if err != nil {
			return nil, err
		}
		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
		}
		return resp, nil
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return nil, fmt.Errorf("http source: %w: %w", domain.ErrDictionaryUnavailable, err)
	}
	if err != nil {
		return nil, fmt.Errorf("http source: request failed: %w", err)
	}
	resp := res.(*http.Response)

	if ct := resp.Header.Get("Content-Type"); !acceptableContentType(ct) {
		resp.Body.Close()
		return nil, fmt.Errorf("http source: %w: content type %q", domain.ErrDictionaryUnavailable, ct)
	}

	if s.maxBytes > 0 && resp.ContentLength > s.maxBytes {
		resp.Body.Close()
		return nil, fmt.Errorf("http source: %w (%d bytes advertised)", domain.ErrDictionaryTooLarge, resp.ContentLength)
	}

	s.log.DebugContext(ctx, "dictionary download started",
		slog.Int("status", resp.StatusCode),
		slog.Int64("content_length", resp.ContentLength),
	)

	return resp.Body, nil
}

// doWithRetry executes the request with a single retry on 5xx or network errors.
func (s *HTTPSource) doWithRetry(ctx context.Context, req *http.Request) (*http.Response, error) {
	resp, err := s.httpClient.Do(req)

	shouldRetry := err != nil || (resp != nil && resp.StatusCode >= 500)
	if !shouldRetry {
		return resp, err
	}

	// Don't retry if context is already cancelled.
	if ctx.Err() != nil {
		return resp, err
	}

	reason := "network error"
	if err == nil && resp != nil {
		reason = fmt.Sprintf("status %d", resp.StatusCode)
	}
	s.log.WarnContext(ctx, "dictionary download retry", slog.String("reason", reason))

	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(s.retryDelay):
	}

	return s.httpClient.Do(req)
}

func acceptableContentType(ct string) bool {
	if ct == "" {
		return true
	}
	mt, _, err := mime.ParseMediaType(ct)
	if err != nil {
		return false
	}
	return strings.HasPrefix(mt, "text/") || mt == "application/octet-stream"
}
