package pipeline

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/opsline/switchboard/internal/errors"
)

// snapshotDebounce absorbs the burst of filesystem events most editors
// emit for a single save.
const snapshotDebounce = 100 * time.Millisecond

// Watcher watches a snapshot file and delivers freshly parsed state
// through a callback whenever the file changes. Parse failures are
// delivered too so the caller can surface them instead of silently
// keeping stale state.
type Watcher struct {
	watcher  *fsnotify.Watcher
	path     string
	onReload func(*State, error)
	stopCh   chan struct{}
	stopOnce sync.Once
}

// NewWatcher creates a watcher for the snapshot file at path. The watch
// is registered on the file's directory: editors that save via
// rename-and-replace would otherwise detach a watch on the file itself.
func NewWatcher(path string, onReload func(*State, error)) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create file watcher")
	}

	if err := fw.Add(filepath.Dir(path)); err != nil {
		fw.Close()
		return nil, errors.NewSnapshotError("failed to watch snapshot directory", err).WithPath(path)
	}

	return &Watcher{
		watcher:  fw,
		path:     path,
		onReload: onReload,
		stopCh:   make(chan struct{}),
	}, nil
}

// Start begins watching in a background goroutine.
func (w *Watcher) Start() {
	go w.watchLoop()
}

// Stop ends the watch. Safe to call more than once.
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() {
		close(w.stopCh)
		w.watcher.Close()
	})
}

// Path returns the watched snapshot path.
func (w *Watcher) Path() string {
	return w.path
}

func (w *Watcher) watchLoop() {
	targetFile := filepath.Base(w.path)
	debounceTimer := time.NewTimer(0)
	<-debounceTimer.C // drain initial timer

	for {
		select {
		case <-w.stopCh:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}

			if filepath.Base(event.Name) != targetFile {
				continue
			}

			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}

			// Debounce to avoid reparsing on every partial write
			debounceTimer.Reset(snapshotDebounce)

		case <-debounceTimer.C:
			state, err := LoadSnapshot(w.path)
			if w.onReload != nil {
				w.onReload(state, err)
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			_ = err
		}
	}
}
