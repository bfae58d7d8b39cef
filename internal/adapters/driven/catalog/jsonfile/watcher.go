package jsonfile

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/time/rate"

	"github.com/custodia-labs/catalog-search/internal/core/domain"
	"github.com/custodia-labs/catalog-search/internal/logger"
)

// Watcher defaults.
const (
	DefaultDebounce    = 250 * time.Millisecond
	DefaultMinInterval = time.Second
)

// ChangeFunc receives the freshly read sections after the file changes.
type ChangeFunc func(ctx context.Context, sections []domain.Section) error

// Watcher re-reads a catalog file whenever it changes on disk.
// Bursts of events are coalesced, and reloads are spaced at least
// MinInterval apart.
type Watcher struct {
	reader   *Reader
	onChange ChangeFunc
	onError  func(error)
	debounce time.Duration
	limiter  *rate.Limiter
}

// WatcherOption configures a Watcher.
type WatcherOption func(*Watcher)

// WithDebounce sets how long the watcher waits for events to settle.
func WithDebounce(d time.Duration) WatcherOption {
	return func(w *Watcher) {
		w.debounce = d
	}
}

// WithMinInterval sets the minimum time between two reloads.
func WithMinInterval(d time.Duration) WatcherOption {
	return func(w *Watcher) {
		w.limiter = rate.NewLimiter(rate.Every(d), 1)
	}
}

// WithErrorHandler receives read and handler errors. The watcher keeps
// running after reporting them.
func WithErrorHandler(fn func(error)) WatcherOption {
	return func(w *Watcher) {
		w.onError = fn
	}
}

// NewWatcher creates a watcher for the file at path.
func NewWatcher(path string, onChange ChangeFunc, opts ...WatcherOption) *Watcher {
	w := &Watcher{
		reader:   NewReader(path),
		onChange: onChange,
		onError:  func(err error) { logger.Warn("Watch: %v", err) },
		debounce: DefaultDebounce,
		limiter:  rate.NewLimiter(rate.Every(DefaultMinInterval), 1),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Run watches until ctx is cancelled. The file's directory is watched so
// that editors which replace the file by rename are seen.
func (w *Watcher) Run(ctx context.Context) error {
	if w.onChange == nil {
		return ErrNoCallback
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer fsw.Close()

	dir := filepath.Dir(w.reader.Source())
	if err := fsw.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	logger.Info("Watching %s", w.reader.Source())

	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if w.relevant(event) {
				logger.Debug("Watch event: %s", event)
				timer.Reset(w.debounce)
			}

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			w.onError(fmt.Errorf("watcher: %w", err))

		case <-timer.C:
			if err := w.limiter.Wait(ctx); err != nil {
				if ctx.Err() != nil {
					return nil
				}
				w.onError(fmt.Errorf("throttle: %w", err))
				continue
			}
			w.reload(ctx)
		}
	}
}

// relevant reports whether the event may have changed the watched file.
func (w *Watcher) relevant(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != filepath.Clean(w.reader.Source()) {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename)
}

func (w *Watcher) reload(ctx context.Context) {
	sections, err := w.reader.Read(ctx)
	if err != nil {
		w.onError(err)
		return
	}
	if err := w.onChange(ctx, sections); err != nil {
		w.onError(err)
	}
}
