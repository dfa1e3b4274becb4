package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"slices"
	"strings"
	"testing"
)

func TestChain_Order(t *testing.T) {
	var order []string

	tag := func(name string) Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name+"-before")
				next.ServeHTTP(w, r)
				order = append(order, name+"-after")
			})
		}
	}

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		order = append(order, "handler")
	})

	Chain(tag("outer"), tag("inner"))(handler).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	expected := []string{"outer-before", "inner-before", "handler", "inner-after", "outer-after"}
	if !slices.Equal(order, expected) {
		t.Fatalf("order = %v, want %v", order, expected)
	}
}

func TestChain_Empty(t *testing.T) {
	called := false

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusNoContent)
	})

	rec := httptest.NewRecorder()
	Chain()(handler).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if !called {
		t.Error("expected handler to be called")
	}
	if rec.Code != http.StatusNoContent {
		t.Errorf("expected status %d, got %d", http.StatusNoContent, rec.Code)
	}
}

// The server stack: request ID outermost so both the access log and the
// panic log carry it.
func TestChain_ServerStack_PanicCarriesRequestID(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})

	stack := Chain(RequestID(), Logger(logger), Recovery(logger))(handler)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/transcribe", nil)
	req.Header.Set(RequestIDHeader, "req-42")
	rec := httptest.NewRecorder()

	stack.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", rec.Code)
	}
	if got := rec.Header().Get(RequestIDHeader); got != "req-42" {
		t.Errorf("expected request id header %q, got %q", "req-42", got)
	}

	var lines []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		var entry map[string]any
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			t.Fatalf("invalid log line %q: %v", line, err)
		}
		lines = append(lines, entry)
	}
	if len(lines) != 2 {
		t.Fatalf("expected 2 log lines, got %d: %s", len(lines), buf.String())
	}
	if lines[0]["msg"] != "panic recovered" || lines[1]["msg"] != "http.request" {
		t.Errorf("unexpected log order: %v, %v", lines[0]["msg"], lines[1]["msg"])
	}
	for _, entry := range lines {
		if entry["request_id"] != "req-42" {
			t.Errorf("expected request_id in %v", entry)
		}
	}
	if lines[1]["status"] != float64(http.StatusInternalServerError) {
		t.Errorf("expected access log status 500, got %v", lines[1]["status"])
	}
}
