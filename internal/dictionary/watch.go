package dictionary

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

const defaultDebounce = 500 * time.Millisecond

type reloader interface {
	Reload(ctx context.Context) error
}

// Watcher reloads a store whenever its local dictionary file changes.
type Watcher struct {
	store    reloader
	path     string
	debounce time.Duration
	log      *slog.Logger
}

// NewWatcher creates a Watcher for the dictionary file at path.
func NewWatcher(store reloader, path string, logger *slog.Logger) *Watcher {
	return &Watcher{
		store:    store,
		path:     filepath.Clean(path),
		debounce: defaultDebounce,
		log:      logger.With("component", "dictionary_watcher"),
	}
}

// WithDebounce sets how long the watcher waits for writes to settle before
// reloading. Non-positive values are ignored.
func (w *Watcher) WithDebounce(d time.Duration) *Watcher {
	if d > 0 {
		w.debounce = d
	}
	return w
}

// Run watches the file's directory (editors often replace files rather than
// write them in place) and triggers a debounced Reload on every write or
// create of the file. It blocks until ctx is done.
func (w *Watcher) Run(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("dictionary watcher: create: %w", err)
	}
	defer watcher.Close()

	dir := filepath.Dir(w.path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("dictionary watcher: watch dir %q: %w", dir, err)
	}

	w.log.InfoContext(ctx, "watching dictionary file", slog.String("path", w.path))

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C
		case <-fire:
			fire = nil
			if err := w.store.Reload(ctx); err != nil {
				w.log.WarnContext(ctx, "dictionary reload failed", slog.String("error", err.Error()))
				continue
			}
			w.log.InfoContext(ctx, "dictionary reloaded after file change")
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("dictionary watcher: %w", err)
		}
	}
}
