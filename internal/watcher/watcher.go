// Package watcher reports changes to a single source file.
package watcher

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/watchfire-io/scratchpad/internal/log"
)

// DefaultDebounce coalesces bursts of writes from editors.
const DefaultDebounce = 100 * time.Millisecond

// Event is a debounced change to the watched file.
type Event struct {
	Path string
	Op   fsnotify.Op
}

// Watcher watches one file. The parent directory is watched so that
// atomic saves (write tmp, rename over target) are still observed.
type Watcher struct {
	fsWatcher  *fsnotify.Watcher
	path       string
	debounce   time.Duration
	eventsChan chan Event
	done       chan struct{}
	stopOnce   sync.Once
	timerMu    sync.Mutex
	timer      *time.Timer
	lastOp     fsnotify.Op
}

// New creates a watcher for path. Call Start to begin delivering events.
func New(path string, debounce time.Duration) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Watcher{
		fsWatcher:  fsWatcher,
		path:       abs,
		debounce:   debounce,
		eventsChan: make(chan Event, 16),
		done:       make(chan struct{}),
	}, nil
}

// Events returns the channel for receiving events.
func (w *Watcher) Events() <-chan Event {
	return w.eventsChan
}

// Start starts the watcher.
func (w *Watcher) Start() error {
	if err := w.fsWatcher.Add(filepath.Dir(w.path)); err != nil {
		return err
	}
	log.GetLogger().Debugf("[watcher] Watching %s", w.path)
	go w.processEvents()
	return nil
}

// Stop stops the watcher. It is safe to call more than once.
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() {
		close(w.done)
		_ = w.fsWatcher.Close()
		w.timerMu.Lock()
		if w.timer != nil {
			w.timer.Stop()
		}
		w.timerMu.Unlock()
	})
}

func (w *Watcher) processEvents() {
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			log.GetLogger().Warnf("Watcher error: %v", err)
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if filepath.Clean(event.Name) != w.path {
		return
	}
	// Rename covers atomic writes that replace the target.
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
		return
	}
	log.GetLogger().Debugf("[watcher] fsnotify: %s %s", event.Op, event.Name)

	w.timerMu.Lock()
	defer w.timerMu.Unlock()
	w.lastOp |= event.Op
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, w.fire)
}

func (w *Watcher) fire() {
	w.timerMu.Lock()
	op := w.lastOp
	w.lastOp = 0
	w.timer = nil
	w.timerMu.Unlock()

	select {
	case w.eventsChan <- Event{Path: w.path, Op: op}:
	case <-w.done:
	}
}
