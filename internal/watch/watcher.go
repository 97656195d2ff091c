// Package watch reports edits to a single file, such as the gallery's
// options file, so the UI can reload it without a restart.
package watch

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/MikeBiancalana/widgetkit/internal/logger"
)

// DefaultDebounce groups the bursts of events editors emit on save.
const DefaultDebounce = 100 * time.Millisecond

// FileChangeEvent reports that the watched file was written, created or
// renamed into place.
type FileChangeEvent struct {
	Path string
}

// Watcher watches one file. Editors often replace files instead of writing
// them, so the parent directory is watched and events are filtered by name.
type Watcher struct {
	watcher  *fsnotify.Watcher
	path     string
	debounce time.Duration
	log      *slog.Logger

	changes chan FileChangeEvent
	done    chan struct{}

	mu        sync.Mutex
	timer     *time.Timer
	stopped   bool
	closeOnce sync.Once
}

// NewWatcher creates a watcher for path. Start begins delivering events.
func NewWatcher(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", path, err)
	}
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	return &Watcher{
		watcher:  fsWatcher,
		path:     abs,
		debounce: DefaultDebounce,
		log:      logger.GetLogger().With("component", "watch", "path", abs),
		changes:  make(chan FileChangeEvent, 1),
		done:     make(chan struct{}),
	}, nil
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string { return w.path }

// Start begins watching the file's directory
func (w *Watcher) Start() error {
	if err := w.watcher.Add(filepath.Dir(w.path)); err != nil {
		return fmt.Errorf("failed to watch directory: %w", err)
	}
	go w.watch()
	return nil
}

// Stop stops the watcher. It is safe to call more than once.
func (w *Watcher) Stop() {
	w.closeOnce.Do(func() {
		w.mu.Lock()
		w.stopped = true
		if w.timer != nil {
			w.timer.Stop()
		}
		w.mu.Unlock()

		close(w.done)
		w.watcher.Close()
	})
}

// Changes returns the channel of change notifications. Notifications that
// arrive while one is still pending are merged.
func (w *Watcher) Changes() <-chan FileChangeEvent {
	return w.changes
}

// Done is closed by Stop.
func (w *Watcher) Done() <-chan struct{} {
	return w.done
}

// watch is the main event loop
func (w *Watcher) watch() {
	for {
		select {
		case <-w.done:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			w.schedule()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Warn("watcher error", "error", err)
		}
	}
}

// schedule restarts the debounce timer.
func (w *Watcher) schedule() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.stopped {
		return
	}
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, w.notify)
}

func (w *Watcher) notify() {
	w.mu.Lock()
	stopped := w.stopped
	w.mu.Unlock()
	if stopped {
		return
	}

	w.log.Debug("file changed")
	select {
	case w.changes <- FileChangeEvent{Path: w.path}:
	default:
	}
}
