// Package watch re-runs an action whenever a file is written.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// FileWatcher monitors a single file via fsnotify on its directory, so that
// editors replacing the file by rename are still seen.
type FileWatcher struct {
	path     string
	debounce time.Duration
	action   func(ctx context.Context) error
	logger   zerolog.Logger

	// due is signalled when the debounce timer expires and consumed by Run.
	due chan struct{}

	mu    sync.Mutex
	timer *time.Timer
}

// New creates a FileWatcher calling action after path settles for debounce.
func New(path string, debounce time.Duration, action func(ctx context.Context) error, logger zerolog.Logger) *FileWatcher {
	return &FileWatcher{
		path:     filepath.Clean(path),
		debounce: debounce,
		action:   action,
		logger:   logger,
		due:      make(chan struct{}, 1),
	}
}

// Run calls the action once, then again after every change to the file.
// Actions run one at a time on the calling goroutine. Run blocks until ctx
// is canceled and returns after the current action, if any, has finished.
func (w *FileWatcher) Run(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	dir := filepath.Dir(w.path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	w.fire(ctx)

	for {
		select {
		case <-ctx.Done():
			w.stop()
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			w.logger.Debug().Str("file", event.Name).Str("op", event.Op.String()).Msg("change detected")
			w.schedule()

		case <-w.due:
			w.fire(ctx)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn().Err(err).Msg("watcher error")
		}
	}
}

// schedule restarts the debounce timer. Expiry only signals due, so changes
// that arrive while an action runs collapse into one follow-up run.
func (w *FileWatcher) schedule() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, func() {
		select {
		case w.due <- struct{}{}:
		default:
		}
	})
}

func (w *FileWatcher) stop() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer != nil {
		w.timer.Stop()
	}
}

func (w *FileWatcher) fire(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}
	if err := w.action(ctx); err != nil {
		w.logger.Error().Err(err).Str("file", w.path).Msg("evaluation failed")
	}
}
