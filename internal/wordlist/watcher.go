package wordlist

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher invokes a callback when any watched word list file changes.
// Events are debounced: editors typically emit several writes per save, and
// rebuilding the identifier database once per burst is enough.
//
// Directories are watched rather than the files themselves, so atomic
// saves (write to temp file, rename over the original) are picked up too.
type Watcher struct {
	fs       *fsnotify.Watcher
	files    map[string]struct{}
	onChange func()
	debounce time.Duration

	mu    sync.Mutex
	timer *time.Timer

	done chan struct{}
}

// NewWatcher watches the given files and calls onChange after changes
// settle for the debounce interval. Close must be called to release the
// underlying watcher.
func NewWatcher(paths []string, debounce time.Duration, onChange func()) (*Watcher, error) {
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		fs:       fs,
		files:    make(map[string]struct{}, len(paths)),
		onChange: onChange,
		debounce: debounce,
		done:     make(chan struct{}),
	}

	dirs := make(map[string]struct{})
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			fs.Close()
			return nil, err
		}
		w.files[abs] = struct{}{}
		dirs[filepath.Dir(abs)] = struct{}{}
	}
	for dir := range dirs {
		if err := fs.Add(dir); err != nil {
			fs.Close()
			return nil, err
		}
	}

	go w.loop()
	return w, nil
}

// Close stops the watcher and any pending debounce timer.
func (w *Watcher) Close() error {
	err := w.fs.Close()
	<-w.done

	w.mu.Lock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.mu.Unlock()
	return err
}

func (w *Watcher) loop() {
	defer close(w.done)
	for {
		select {
		case event, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if !event.Op.Has(fsnotify.Write) &&
				!event.Op.Has(fsnotify.Create) &&
				!event.Op.Has(fsnotify.Rename) {
				continue
			}
			abs, err := filepath.Abs(event.Name)
			if err != nil {
				continue
			}
			if _, watched := w.files[abs]; watched {
				w.schedule()
			}
		case _, ok := <-w.fs.Errors:
			if !ok {
				return
			}
		}
	}
}

func (w *Watcher) schedule() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, w.onChange)
}
