package services

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher calls onChange once a burst of accepted file events has been quiet
// for the debounce period. onChange runs on the Run goroutine, so runs never
// overlap.
type Watcher struct {
	watcher  *fsnotify.Watcher
	debounce time.Duration
	accept   func(path string) bool
	onChange func()
}

func NewWatcher(debounce time.Duration, accept func(path string) bool, onChange func()) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}
	if accept == nil {
		accept = func(string) bool { return true }
	}
	return &Watcher{
		watcher:  fw,
		debounce: debounce,
		accept:   accept,
		onChange: onChange,
	}, nil
}

// Add watches a single directory.
func (w *Watcher) Add(dir string) error {
	if err := w.watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	return nil
}

// AddRecursive watches root and every directory below it.
func (w *Watcher) AddRecursive(root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		return w.Add(path)
	})
}

func (w *Watcher) Close() error {
	return w.watcher.Close()
}

// Run processes events until ctx is done or the watcher is closed.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.watcher.Close()

	var timer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if event.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err := w.AddRecursive(event.Name); err != nil {
						slog.Warn("cannot watch new directory", "path", event.Name, "error", err)
					}
				}
			}
			if event.Op == fsnotify.Chmod || !w.accept(event.Name) {
				continue
			}
			slog.Debug("change detected", "path", event.Name, "op", event.Op.String())
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			slog.Warn("file watcher error", "error", err)

		case <-fire:
			fire = nil
			w.onChange()
		}
	}
}
