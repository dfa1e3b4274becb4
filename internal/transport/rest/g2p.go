package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/heartmarshall/myenglish-g2p/internal/domain"
	"github.com/heartmarshall/myenglish-g2p/pkg/ctxutil"
)

// DefaultMaxBodyBytes bounds request bodies when no limit is configured.
const DefaultMaxBodyBytes int64 = 64 << 10

// transcriber defines the minimal interface needed by G2PHandler.
type transcriber interface {
	Transcribe(ctx context.Context, text string) []domain.G2PResult
	Segment(ctx context.Context, transcription string) domain.Segmentation
}

// G2PHandler serves transcription REST endpoints.
type G2PHandler struct {
	svc          transcriber
	log          *slog.Logger
	maxBodyBytes int64
}

// NewG2PHandler creates a G2PHandler. A non-positive maxBodyBytes selects
// DefaultMaxBodyBytes.
func NewG2PHandler(svc transcriber, logger *slog.Logger, maxBodyBytes int64) *G2PHandler {
	if maxBodyBytes <= 0 {
		maxBodyBytes = DefaultMaxBodyBytes
	}
	return &G2PHandler{
		svc:          svc,
		log:          logger.With("handler", "g2p"),
		maxBodyBytes: maxBodyBytes,
	}
}

type transcribeRequest struct {
	Text string `json:"text"`
}

type transcribeResponse struct {
	Results []domain.G2PResult `json:"results"`
}

type segmentRequest struct {
	IPA string `json:"ipa"`
}

// Transcribe handles POST /api/v1/transcribe.
func (h *G2PHandler) Transcribe(w http.ResponseWriter, r *http.Request) {
	var req transcribeRequest
	if !h.decode(w, r, &req) {
		return
	}
	h.transcribe(w, r, req.Text)
}

// TranscribeQuery handles GET /api/v1/transcribe?text=...
func (h *G2PHandler) TranscribeQuery(w http.ResponseWriter, r *http.Request) {
	text := r.URL.Query().Get("text")
	if int64(len(text)) > h.maxBodyBytes {
		writeError(w, http.StatusRequestEntityTooLarge, "text too large")
		return
	}
	h.transcribe(w, r, text)
}

// Segment handles POST /api/v1/segment.
func (h *G2PHandler) Segment(w http.ResponseWriter, r *http.Request) {
	var req segmentRequest
	if !h.decode(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.IPA) == "" {
		h.handleError(w, r, domain.NewValidationError("ipa", "required"))
		return
	}

	writeJSON(w, http.StatusOK, h.svc.Segment(r.Context(), req.IPA))
}

// transcribe answers empty or blank text with an empty result list.
func (h *G2PHandler) transcribe(w http.ResponseWriter, r *http.Request, text string) {
	results := h.svc.Transcribe(r.Context(), text)
	if results == nil {
		results = []domain.G2PResult{}
	}
	writeJSON(w, http.StatusOK, transcribeResponse{Results: results})
}

// decode reads a JSON body into v, writing the error response itself on
// failure.
func (h *G2PHandler) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
			return false
		}
		writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

func (h *G2PHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		ctxutil.Logger(r.Context(), h.log).ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
