package config

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"

	"github.com/dshills/bindkit/internal/logging"
)

// Watcher marks a controls file dirty when it changes on disk.
//
// It watches the file's directory rather than the file itself so that
// editors that save by renaming a temp file over the original are seen.
type Watcher struct {
	mu sync.Mutex

	watcher *fsnotify.Watcher
	path    string
	logger  *logging.Logger

	pending     atomic.Bool
	totalEvents atomic.Int64
	totalErrors atomic.Int64

	// Lifecycle
	closed   bool
	closeCh  chan struct{}
	closedWg sync.WaitGroup
}

// NewWatcher starts watching path. The file does not need to exist yet, but
// its directory does.
func NewWatcher(path string, logger *logging.Logger) (*Watcher, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	dir := filepath.Dir(absPath)
	if _, err := os.Stat(dir); err != nil {
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		return nil, err
	}

	w := &Watcher{
		watcher: fsw,
		path:    absPath,
		logger:  logging.OrNull(logger).WithComponent("config-watcher"),
		closeCh: make(chan struct{}),
	}

	w.closedWg.Add(1)
	go w.processLoop()

	return w, nil
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string {
	return w.path
}

// Pending reports whether the file changed since the last Take.
func (w *Watcher) Pending() bool {
	return w.pending.Load()
}

// Take reports whether the file changed and clears the flag.
func (w *Watcher) Take() bool {
	return w.pending.Swap(false)
}

// Events returns the number of relevant file events seen.
func (w *Watcher) Events() int64 {
	return w.totalEvents.Load()
}

// Errors returns the number of watch errors reported by the OS.
func (w *Watcher) Errors() int64 {
	return w.totalErrors.Load()
}

// Close stops the watcher. It is safe to call more than once.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	close(w.closeCh)
	w.mu.Unlock()

	// Wait for processLoop to finish
	w.closedWg.Wait()

	return w.watcher.Close()
}

// processLoop handles incoming fsnotify events.
func (w *Watcher) processLoop() {
	defer w.closedWg.Done()

	for {
		select {
		case <-w.closeCh:
			return

		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(ev)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.totalErrors.Add(1)
			if errors.Is(err, fsnotify.ErrEventOverflow) {
				// Events were lost; the file may have changed.
				w.pending.Store(true)
			}
			w.logger.Warn("watch error: %v", err)
		}
	}
}

func (w *Watcher) handleEvent(ev fsnotify.Event) {
	if filepath.Clean(ev.Name) != w.path {
		return
	}
	if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) && !ev.Has(fsnotify.Remove) {
		return
	}
	w.totalEvents.Add(1)
	w.pending.Store(true)
	w.logger.Debug("%s changed (%s)", w.path, ev.Op)
}
