// Package watch re-runs a build when files under the repository root
// change. Events are debounced so a burst of saves triggers one build.
package watch

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"git.home.luguber.info/inful/docsite/internal/logfields"
)

// RebuildFunc runs one full build. Errors are logged and the watcher
// keeps going; a broken state on disk is fixed by the next rebuild.
type RebuildFunc func(ctx context.Context) error

// Watcher triggers rebuilds on filesystem changes below a root.
type Watcher struct {
	root     string
	debounce time.Duration
	rebuild  RebuildFunc
	watcher  *fsnotify.Watcher
}

// New creates a watcher over root. The default debounce window is two
// seconds, matching how long a typical save burst lasts.
func New(root string, rebuild RebuildFunc) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		fsw.Close()
		return nil, fmt.Errorf("failed to resolve watch root: %w", err)
	}

	return &Watcher{
		root:     absRoot,
		debounce: 2 * time.Second,
		rebuild:  rebuild,
		watcher:  fsw,
	}, nil
}

// Run watches until the context is canceled. It builds once at
// startup, then once per settled burst of changes.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.watcher.Close()

	if err := w.addRecursive(w.root); err != nil {
		return err
	}
	slog.Info("Watching for source changes", logfields.Path(w.root))

	if err := w.rebuild(ctx); err != nil {
		slog.Error("Initial build failed", logfields.Error(err))
	}

	var timer *time.Timer
	fire := make(chan struct{}, 1)

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			// New directories need watching too.
			if event.Op&fsnotify.Create != 0 {
				_ = w.addRecursive(event.Name)
			}
			if timer == nil {
				timer = time.AfterFunc(w.debounce, func() {
					select {
					case fire <- struct{}{}:
					default:
					}
				})
			} else {
				timer.Reset(w.debounce)
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			slog.Warn("File watcher error", logfields.Error(err))
		case <-fire:
			timer = nil
			slog.Info("Source changes settled, rebuilding")
			if err := w.rebuild(ctx); err != nil {
				slog.Error("Rebuild failed", logfields.Error(err))
			}
		}
	}
}

// addRecursive watches path and every directory below it. Non-directory
// paths are ignored; fsnotify watches the containing directory already.
func (w *Watcher) addRecursive(path string) error {
	return filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil // Transient entries can vanish mid-walk.
		}
		if !d.IsDir() {
			return nil
		}
		if d.Name() == ".git" {
			return filepath.SkipDir
		}
		if err := w.watcher.Add(p); err != nil {
			slog.Warn("Failed to watch directory", logfields.Path(p), logfields.Error(err))
		}
		return nil
	})
}
