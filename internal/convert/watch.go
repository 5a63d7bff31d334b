// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"context"
	"fmt"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
)

// DefaultDebounce is the quiet period after the last event on a file before
// it is handed to the callback.
const DefaultDebounce = 300 * time.Millisecond

// Watcher reports convertible files in a directory as they are written.
type Watcher struct {
	dir      string
	debounce time.Duration
	fsw      *fsnotify.Watcher
}

// NewWatcher starts watching dir. Events that arrive after NewWatcher
// returns are delivered by Run.
func NewWatcher(dir string, debounce time.Duration) (*Watcher, error) {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating file watcher: %w", err)
	}
	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watching %s: %w", dir, err)
	}
	return &Watcher{dir: dir, debounce: debounce, fsw: fsw}, nil
}

// Run calls fn for each convertible file created or written under the
// directory, once per burst of events. Calls to fn are serialized on the
// Run goroutine. Run closes the watcher and returns nil when ctx is done.
func (w *Watcher) Run(ctx context.Context, fn func(path string)) error {
	defer w.fsw.Close()

	pending := make(map[string]*time.Timer)
	fire := make(chan string)
	defer func() {
		for _, t := range pending {
			t.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 || !IsConvertible(ev.Name) {
				continue
			}
			if t, ok := pending[ev.Name]; ok {
				t.Stop()
			}
			name := ev.Name
			pending[name] = time.AfterFunc(w.debounce, func() {
				select {
				case fire <- name:
				case <-ctx.Done():
				}
			})

		case path := <-fire:
			delete(pending, path)
			logrus.WithField("path", path).Debug("source changed")
			fn(path)

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			logrus.WithError(err).WithField("dir", w.dir).Warn("file watcher error")
		}
	}
}
