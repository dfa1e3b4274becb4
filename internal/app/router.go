package app

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/myenglish-g2p/internal/config"
	"github.com/heartmarshall/myenglish-g2p/internal/dictionary"
	"github.com/heartmarshall/myenglish-g2p/internal/domain"
	"github.com/heartmarshall/myenglish-g2p/internal/transport/middleware"
	"github.com/heartmarshall/myenglish-g2p/internal/transport/rest"
)

type g2pService interface {
	Transcribe(ctx context.Context, text string) []domain.G2PResult
	Segment(ctx context.Context, transcription string) domain.Segmentation
}

type dictionaryStats interface {
	Stats() dictionary.StoreStats
}

// NewRouter wires the REST handlers behind the middleware stack.
func NewRouter(svc g2pService, dict dictionaryStats, cfg config.ServerConfig, logger *slog.Logger) http.Handler {
	health := rest.NewHealthHandler(dict, Version)
	g2p := rest.NewG2PHandler(svc, logger, cfg.MaxBodyBytes)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /live", health.Live)
	mux.HandleFunc("GET /ready", health.Ready)
	mux.HandleFunc("GET /health", health.Health)
	mux.HandleFunc("POST /api/v1/transcribe", g2p.Transcribe)
	mux.HandleFunc("GET /api/v1/transcribe", g2p.TranscribeQuery)
	mux.HandleFunc("POST /api/v1/segment", g2p.Segment)

	return middleware.Chain(
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.Recovery(logger),
	)(mux)
}
