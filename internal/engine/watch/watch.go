// Package watch reports changes to a fixed set of asset files.
//
// Parent directories are watched rather than the files themselves, so files
// replaced by an editor's write-to-temp-and-rename keep being reported.
package watch

import (
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/Faultbox/trajectory/internal/logger"
)

// Watcher delivers the path of every watched file that was written, created
// or renamed into place.
type Watcher struct {
	fs      *fsnotify.Watcher
	files   map[string]struct{}
	changes chan string
	done    chan struct{}
	log     *zap.Logger
}

// New starts watching paths. The parent directory of each path must exist;
// the file itself may not.
func New(paths ...string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}

	w := &Watcher{
		fs:      fw,
		files:   make(map[string]struct{}, len(paths)),
		changes: make(chan string, 16),
		done:    make(chan struct{}),
		log:     logger.Named("watch"),
	}

	dirs := make(map[string]struct{})
	for _, p := range paths {
		p = filepath.Clean(p)
		w.files[p] = struct{}{}

		dir := filepath.Dir(p)
		if _, ok := dirs[dir]; ok {
			continue
		}
		if err := fw.Add(dir); err != nil {
			fw.Close()
			return nil, fmt.Errorf("watching %s: %w", dir, err)
		}
		dirs[dir] = struct{}{}
	}

	go w.run()
	return w, nil
}

// Changes returns the channel of changed paths, as passed to New. It is
// closed after Close.
func (w *Watcher) Changes() <-chan string {
	return w.changes
}

// Close stops watching and waits for the event loop to exit.
func (w *Watcher) Close() error {
	err := w.fs.Close()
	<-w.done
	return err
}

func (w *Watcher) run() {
	defer close(w.done)
	defer close(w.changes)

	for {
		select {
		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			name := filepath.Clean(ev.Name)
			if _, ok := w.files[name]; !ok {
				continue
			}
			select {
			case w.changes <- name:
			default:
				w.log.Debug("change dropped, reader is behind", zap.String("path", name))
			}

		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			w.log.Warn("watch error", zap.Error(err))
		}
	}
}
