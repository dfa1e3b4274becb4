package rest

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/myenglish-g2p/internal/domain"
)

type transcriberMock struct {
	TranscribeFunc func(ctx context.Context, text string) []domain.G2PResult
	SegmentFunc    func(ctx context.Context, transcription string) domain.Segmentation

	transcribeCalls []string
}

func (m *transcriberMock) Transcribe(ctx context.Context, text string) []domain.G2PResult {
	m.transcribeCalls = append(m.transcribeCalls, text)
	return m.TranscribeFunc(ctx, text)
}

func (m *transcriberMock) Segment(ctx context.Context, transcription string) domain.Segmentation {
	return m.SegmentFunc(ctx, transcription)
}

func newTestG2PHandler(svc transcriber, maxBody int64) *G2PHandler {
	return NewG2PHandler(svc, slog.New(slog.NewTextHandler(io.Discard, nil)), maxBody)
}

func catResult() []domain.G2PResult {
	return []domain.G2PResult{{
		Word:     "cat",
		Phonemes: []string{"k", "æ", "t"},
		Source:   domain.SourceDictionary,
	}}
}

func TestG2PHandler_Transcribe_OK(t *testing.T) {
	t.Parallel()

	svc := &transcriberMock{
		TranscribeFunc: func(_ context.Context, text string) []domain.G2PResult { return catResult() },
	}
	h := newTestG2PHandler(svc, 0)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/transcribe", strings.NewReader(`{"text":"cat"}`))
	rec := httptest.NewRecorder()

	h.Transcribe(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp transcribeResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, catResult(), resp.Results)
	assert.Equal(t, []string{"cat"}, svc.transcribeCalls)
}

func TestG2PHandler_Transcribe_WireFormat(t *testing.T) {
	t.Parallel()

	svc := &transcriberMock{
		TranscribeFunc: func(context.Context, string) []domain.G2PResult { return catResult() },
	}
	h := newTestG2PHandler(svc, 0)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/transcribe", strings.NewReader(`{"text":"cat"}`))
	rec := httptest.NewRecorder()
	h.Transcribe(rec, req)

	assert.JSONEq(t,
		`{"results":[{"word":"cat","phonemes":["k","æ","t"],"source":"dictionary"}]}`,
		rec.Body.String(),
	)
}

func TestG2PHandler_Transcribe_BadRequests(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
		want int
	}{
		{name: "invalid json", body: `{"text":`, want: http.StatusBadRequest},
		{name: "too large", body: `{"text":"` + strings.Repeat("a", 200) + `"}`, want: http.StatusRequestEntityTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := &transcriberMock{
				TranscribeFunc: func(context.Context, string) []domain.G2PResult {
					t.Error("service must not be called")
					return nil
				},
			}
			h := newTestG2PHandler(svc, 100)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/transcribe", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			h.Transcribe(rec, req)

			assert.Equal(t, tt.want, rec.Code)

			var resp map[string]string
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
			assert.NotEmpty(t, resp["error"])
		})
	}
}

func TestG2PHandler_Transcribe_BlankText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
	}{
		{name: "empty text", body: `{"text":""}`},
		{name: "whitespace text", body: `{"text":"   "}`},
		{name: "missing text", body: `{}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := &transcriberMock{
				TranscribeFunc: func(context.Context, string) []domain.G2PResult { return []domain.G2PResult{} },
			}
			h := newTestG2PHandler(svc, 0)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/transcribe", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			h.Transcribe(rec, req)

			require.Equal(t, http.StatusOK, rec.Code)
			assert.JSONEq(t, `{"results":[]}`, rec.Body.String())
		})
	}
}

func TestG2PHandler_Transcribe_NilResultsEncodeAsEmptyList(t *testing.T) {
	t.Parallel()

	svc := &transcriberMock{
		TranscribeFunc: func(context.Context, string) []domain.G2PResult { return nil },
	}
	h := newTestG2PHandler(svc, 0)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/transcribe", strings.NewReader(`{"text":"!!!"}`))
	rec := httptest.NewRecorder()
	h.Transcribe(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"results":[]}`, rec.Body.String())
}

func TestG2PHandler_TranscribeQuery(t *testing.T) {
	t.Parallel()

	svc := &transcriberMock{
		TranscribeFunc: func(context.Context, string) []domain.G2PResult { return catResult() },
	}
	h := newTestG2PHandler(svc, 0)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/transcribe?text="+url.QueryEscape("the cat"), nil)
	rec := httptest.NewRecorder()
	h.TranscribeQuery(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"the cat"}, svc.transcribeCalls)
}

func TestG2PHandler_TranscribeQuery_Missing(t *testing.T) {
	t.Parallel()

	svc := &transcriberMock{
		TranscribeFunc: func(context.Context, string) []domain.G2PResult { return []domain.G2PResult{} },
	}
	h := newTestG2PHandler(svc, 0)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/transcribe", nil)
	rec := httptest.NewRecorder()
	h.TranscribeQuery(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"results":[]}`, rec.Body.String())
	assert.Equal(t, []string{""}, svc.transcribeCalls)
}

func TestG2PHandler_Segment(t *testing.T) {
	t.Parallel()

	svc := &transcriberMock{
		SegmentFunc: func(_ context.Context, s string) domain.Segmentation {
			assert.Equal(t, "naɪt", s)
			return domain.Segmentation{Phonemes: []string{"n", "aɪ", "t"}}
		},
	}
	h := newTestG2PHandler(svc, 0)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/segment", strings.NewReader(`{"ipa":"naɪt"}`))
	rec := httptest.NewRecorder()
	h.Segment(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"phonemes":["n","aɪ","t"],"unknown":0}`, rec.Body.String())
}

func TestG2PHandler_Segment_Empty(t *testing.T) {
	t.Parallel()

	h := newTestG2PHandler(&transcriberMock{}, 0)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/segment", strings.NewReader(`{"ipa":""}`))
	rec := httptest.NewRecorder()
	h.Segment(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
