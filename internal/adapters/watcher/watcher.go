package watcher

import (
	"context"
	"iter"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.trai.ch/buildfy/internal/core/domain"
	"go.trai.ch/buildfy/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Watcher = (*Watcher)(nil)

const (
	// DefaultDebounceWindow is the default time window for debouncing file events.
	DefaultDebounceWindow = 200 * time.Millisecond

	eventChannelBuffer = 16
)

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounce overrides the debounce window.
func WithDebounce(window time.Duration) Option {
	return func(w *Watcher) {
		w.window = window
	}
}

// Watcher reports content changes of individual files. It watches their
// parent directories so that editors replacing a file on save are handled.
type Watcher struct {
	logger       ports.Logger
	window       time.Duration
	fingerprints *Fingerprints

	fsWatcher *fsnotify.Watcher
	debouncer *Debouncer
	targets   map[string]struct{}

	events    chan ports.WatchEvent
	done      chan struct{}
	closeOnce sync.Once
	mu        sync.Mutex
	closed    bool
}

// NewWatcher creates a new file watcher.
func NewWatcher(logger ports.Logger, opts ...Option) *Watcher {
	w := &Watcher{
		logger:       logger,
		window:       DefaultDebounceWindow,
		fingerprints: NewFingerprints(),
		targets:      make(map[string]struct{}),
		events:       make(chan ports.WatchEvent, eventChannelBuffer),
		done:         make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Start begins watching the given files. Events stop when ctx is done or
// Stop is called.
func (w *Watcher) Start(ctx context.Context, paths ...string) error {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return zerr.Wrap(err, domain.ErrWatcherStartFailed.Error())
	}

	dirs := make(map[string]struct{})
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			_ = fsWatcher.Close()
			return zerr.With(zerr.Wrap(err, domain.ErrWatcherStartFailed.Error()), "path", p)
		}
		w.targets[abs] = struct{}{}
		w.fingerprints.Record(abs)
		dirs[filepath.Dir(abs)] = struct{}{}
	}

	for dir := range dirs {
		if err := fsWatcher.Add(dir); err != nil {
			_ = fsWatcher.Close()
			return zerr.With(zerr.Wrap(err, domain.ErrWatcherStartFailed.Error()), "path", dir)
		}
	}

	w.fsWatcher = fsWatcher
	w.debouncer = NewDebouncer(w.window, w.flush)

	go w.processEvents(ctx)

	return nil
}

// Stop stops the watcher and releases all resources.
func (w *Watcher) Stop() error {
	if w.fsWatcher == nil {
		w.shutdown()
		return nil
	}
	err := w.fsWatcher.Close()
	w.shutdown()
	return err
}

// Events returns an iterator of content changes. It ends when the watcher stops.
func (w *Watcher) Events() iter.Seq[ports.WatchEvent] {
	return func(yield func(ports.WatchEvent) bool) {
		for event := range w.events {
			if !yield(event) {
				return
			}
		}
	}
}

func (w *Watcher) processEvents(ctx context.Context) {
	defer w.shutdown()

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.done:
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
				!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
				continue
			}
			path := filepath.Clean(event.Name)
			if _, ok := w.targets[path]; ok {
				w.debouncer.Add(path)
			}
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			if w.logger != nil {
				w.logger.Warn("watcher: " + err.Error())
			}
		}
	}
}

// flush runs once per debounce window with the files that saw activity.
func (w *Watcher) flush(paths []string) {
	for _, path := range paths {
		changed, exists := w.fingerprints.Changed(path)
		if !changed {
			continue
		}
		op := ports.OpWrite
		if !exists {
			op = ports.OpRemove
		}
		w.emit(ports.WatchEvent{Path: path, Operation: op})
	}
}

func (w *Watcher) emit(event ports.WatchEvent) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return
	}
	select {
	case w.events <- event:
	case <-w.done:
	}
}

func (w *Watcher) shutdown() {
	w.closeOnce.Do(func() {
		close(w.done)
		if w.debouncer != nil {
			w.debouncer.Stop()
		}
		w.mu.Lock()
		w.closed = true
		close(w.events)
		w.mu.Unlock()
	})
}
