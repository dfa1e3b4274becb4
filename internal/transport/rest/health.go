package rest

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/heartmarshall/myenglish-g2p/internal/dictionary"
)

// dictionaryStatus defines the minimal interface for dictionary health checks.
type dictionaryStatus interface {
	Stats() dictionary.StoreStats
}

// HealthHandler serves health check endpoints.
type HealthHandler struct {
	dict    dictionaryStatus
	version string
}

// NewHealthHandler creates a HealthHandler.
func NewHealthHandler(dict dictionaryStatus, version string) *HealthHandler {
	return &HealthHandler{dict: dict, version: version}
}

// HealthResponse is the JSON response for /health and /ready.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of an individual component.
type CompStatus struct {
	Status   string    `json:"status"`
	Words    int       `json:"words,omitempty"`
	LoadedAt time.Time `json:"loadedAt,omitzero"`
	Error    string    `json:"error,omitempty"`
}

// Live is the liveness probe. Always returns 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
	})
}

// Ready is the readiness probe: 200 once the dictionary is loaded, 503 before.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	if !h.dict.Stats().Loaded {
		writeJSON(w, http.StatusServiceUnavailable, HealthResponse{
			Status:    "down",
			Timestamp: time.Now(),
		})
		return
	}

	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
	})
}

// Health is the full health check. The service keeps answering from the
// fallback rules without a dictionary, so an unloaded dictionary reports
// "degraded" with 200.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	stats := h.dict.Stats()

	comp := CompStatus{
		Status:   "ok",
		Words:    stats.Words,
		LoadedAt: stats.LoadedAt,
		Error:    stats.LastError,
	}
	overallStatus := "ok"
	if !stats.Loaded {
		comp.Status = "not_loaded"
		overallStatus = "degraded"
	}

	writeJSON(w, http.StatusOK, HealthResponse{
		Status:     overallStatus,
		Version:    h.version,
		Components: map[string]CompStatus{"dictionary": comp},
		Timestamp:  time.Now(),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
