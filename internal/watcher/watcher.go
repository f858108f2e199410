// Package watcher provides file system watching with debouncing for the
// format command's watch mode.
package watcher

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/arames/vim-sem-tabs/internal/log"
)

// Watcher monitors a set of source files and reports which ones changed.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	files     map[string]struct{}
	debounce  time.Duration
	onChange  chan []string
	done      chan struct{}
}

// Config holds watcher configuration options.
type Config struct {
	Files       []string
	DebounceDur time.Duration
}

// DefaultConfig returns sensible defaults for watching the given files.
func DefaultConfig(files []string) Config {
	return Config{
		Files:       files,
		DebounceDur: 500 * time.Millisecond,
	}
}

// New creates a watcher over the files in cfg. Watches are registered on
// the parent directories; editors that replace files via rename would
// otherwise detach a direct file watch.
func New(cfg Config) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating fsnotify watcher: %w", err)
	}

	files := make(map[string]struct{}, len(cfg.Files))
	for _, f := range cfg.Files {
		abs, err := filepath.Abs(f)
		if err != nil {
			_ = fsw.Close()
			return nil, fmt.Errorf("resolving %s: %w", f, err)
		}
		files[abs] = struct{}{}
	}

	return &Watcher{
		fsWatcher: fsw,
		files:     files,
		debounce:  cfg.DebounceDur,
		onChange:  make(chan []string, 1),
		done:      make(chan struct{}),
	}, nil
}

// Start begins watching. The returned channel receives, after each
// debounced burst of events, the batch of watched files that changed.
func (w *Watcher) Start() (<-chan []string, error) {
	dirs := make(map[string]struct{})
	for f := range w.files {
		dirs[filepath.Dir(f)] = struct{}{}
	}
	for dir := range dirs {
		if err := w.fsWatcher.Add(dir); err != nil {
			return nil, fmt.Errorf("watching directory %s: %w", dir, err)
		}
	}

	go w.loop()

	return w.onChange, nil
}

// Stop terminates the watcher and releases resources.
func (w *Watcher) Stop() error {
	close(w.done)
	return w.fsWatcher.Close()
}

// loop processes file system events with debouncing. Changes arriving
// within one debounce window are coalesced into a single batch.
func (w *Watcher) loop() {
	var (
		timer   *time.Timer
		pending = make(map[string]struct{})
	)

	for {
		select {
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}

			name, relevant := w.relevantFile(event)
			if !relevant {
				continue
			}
			pending[name] = struct{}{}

			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				if !timer.Stop() {
					// Drain the timer channel if it already fired
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(w.debounce)
			}

		case <-func() <-chan time.Time {
			if timer != nil {
				return timer.C
			}
			return nil
		}():
			if len(pending) > 0 {
				batch := make([]string, 0, len(pending))
				for f := range pending {
					batch = append(batch, f)
				}
				pending = make(map[string]struct{})

				// Non-blocking send - drop if channel full
				select {
				case w.onChange <- batch:
				default:
				}
			}

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			log.ErrorErr(log.CatWatcher, "fsnotify error", err)

		case <-w.done:
			if timer != nil {
				timer.Stop()
			}
			return
		}
	}
}

// relevantFile reports whether the event touches a watched file, and
// which one. Writes, creates and renames all count; a rename is how
// most editors save.
func (w *Watcher) relevantFile(event fsnotify.Event) (string, bool) {
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
		return "", false
	}

	abs, err := filepath.Abs(event.Name)
	if err != nil {
		return "", false
	}
	if _, ok := w.files[abs]; !ok {
		return "", false
	}
	return abs, true
}
