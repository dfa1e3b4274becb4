package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/myenglish-g2p/internal/adapter/source"
	"github.com/heartmarshall/myenglish-g2p/internal/config"
	"github.com/heartmarshall/myenglish-g2p/internal/dictionary"
	"github.com/heartmarshall/myenglish-g2p/internal/service/g2p"
)

// Run is the application entry point. It loads configuration, builds the
// dictionary store and G2P service, serves HTTP until ctx is cancelled and
// then shuts down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("dictionary_source", cfg.Dictionary.Source),
	)

	store := NewStore(cfg.Dictionary, logger)
	svc := g2p.NewService(logger, store)

	srv := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           NewRouter(svc, store, cfg.Server, logger),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	if !cfg.Dictionary.LazyLoad {
		g.Go(func() error {
			preload(gctx, store, logger)
			return nil
		})
	}

	if cfg.Dictionary.Watch {
		if cfg.Dictionary.IsRemote() {
			logger.Warn("dictionary watch ignored for remote source")
		} else {
			w := dictionary.NewWatcher(store, source.LocalPath(cfg.Dictionary.Source), logger).
				WithDebounce(cfg.Dictionary.WatchDebounce)
			g.Go(func() error {
				if err := w.Run(gctx); err != nil {
					logger.Error("dictionary watcher stopped", slog.String("error", err.Error()))
				}
				return nil
			})
		}
	}

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("app: http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.Server.ShutdownTimeout)
		defer cancel()
		logger.Info("shutting down http server")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("app: shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error("application stopped with error", slog.String("error", err.Error()))
		return err
	}

	logger.Info("application stopped")
	return nil
}

// NewStore builds a dictionary store for cfg with the source chosen by
// its location.
func NewStore(cfg config.DictionaryConfig, logger *slog.Logger) *dictionary.Store {
	src := source.New(cfg.Source, cfg.FetchTimeout, cfg.MaxBytes, logger)
	return dictionary.NewStore(src, logger, dictionary.Options{
		MaxBytes:   cfg.MaxBytes,
		Timeout:    cfg.FetchTimeout,
		RetryAfter: cfg.RetryAfter,
	})
}

// preload warms the store in the background. Failures are logged and left to
// the store's retry back-off; requests are served from the fallback rules
// meanwhile.
func preload(ctx context.Context, store *dictionary.Store, logger *slog.Logger) {
	start := time.Now()
	if err := store.Load(ctx); err != nil {
		if ctx.Err() == nil {
			logger.Warn("dictionary preload failed", slog.String("error", err.Error()))
		}
		return
	}
	stats := store.Stats()
	logger.Info("dictionary preloaded",
		slog.Int("words", stats.Words),
		slog.Duration("duration", time.Since(start)),
	)
}
