package config

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const watchDebounce = 100 * time.Millisecond

// Watcher reports changes to a tuning file. Events carries the changed path;
// the receiver decides when to reload so overrides are applied on the game
// goroutine.
type Watcher struct {
	watcher *fsnotify.Watcher
	target  string
	Events  chan string
	Errors  chan error
	closeCh chan struct{}
	once    sync.Once
}

// WatchOverrides watches the directory holding path. Editors often replace
// files instead of writing them, so the directory is watched and events are
// filtered by name.
func WatchOverrides(path string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		_ = w.Close()
		return nil, err
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		_ = w.Close()
		return nil, err
	}

	watcher := &Watcher{
		watcher: w,
		target:  abs,
		Events:  make(chan string, 16),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
	}
	go watcher.run()
	return watcher, nil
}

func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
	})
	return err
}

func (w *Watcher) run() {
	defer close(w.Events)
	defer close(w.Errors)

	var last time.Time
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if name, err := filepath.Abs(event.Name); err != nil || name != w.target {
				continue
			}
			now := time.Now()
			if now.Sub(last) < watchDebounce {
				continue
			}
			last = now
			select {
			case w.Events <- w.target:
			case <-w.closeCh:
				return
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
			}
		case <-w.closeCh:
			return
		}
	}
}
