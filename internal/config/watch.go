package config

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher calls back when the config file changes on disk. It watches the
// containing directory so editors that save by renaming are noticed too.
type Watcher struct {
	path      string
	fs        *fsnotify.Watcher
	debouncer *Debouncer
	onChange  func()
}

// NewWatcher starts watching path. onChange runs on a timer goroutine once
// per burst of changes.
func NewWatcher(path string, debounce time.Duration, onChange func()) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(path)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(path), err)
	}
	return &Watcher{
		path:      filepath.Clean(path),
		fs:        fw,
		debouncer: NewDebouncer(debounce),
		onChange:  onChange,
	}, nil
}

// Run forwards file events until ctx is done, then closes the watcher
func (w *Watcher) Run(ctx context.Context) error {
	defer w.fs.Close()
	defer w.debouncer.Cancel()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.fs.Events:
			if !ok {
				return nil
			}
			if w.relevant(ev) {
				w.debouncer.Trigger(w.onChange)
			}
		case err, ok := <-w.fs.Errors:
			if !ok {
				return nil
			}
			log.Printf("config watcher error: %v", err)
		}
	}
}

func (w *Watcher) relevant(ev fsnotify.Event) bool {
	if filepath.Clean(ev.Name) != w.path {
		return false
	}
	return ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename)
}
