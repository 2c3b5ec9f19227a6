package site

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// DefaultDebounce is the quiet period after the last change before fn runs.
const DefaultDebounce = 500 * time.Millisecond

// Watch calls fn once changes under dirs have settled for debounce. Missing
// directories are skipped; directories created later are added to the watch.
// Watch blocks until ctx is done and never runs fn after it returns.
func Watch(ctx context.Context, dirs []string, debounce time.Duration, log *zap.Logger, fn func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer watcher.Close()

	watched := 0
	for _, root := range dirs {
		if _, err := os.Stat(root); errors.Is(err, fs.ErrNotExist) {
			log.Info("directory not found, not watching", zap.String("dir", root))
			continue
		}
		watched += addTree(watcher, root, log)
	}
	log.Debug("watching for changes", zap.Int("directories", watched))

	var timer *time.Timer
	fire := make(chan struct{}, 1)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
				!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
				continue
			}
			log.Debug("change detected", zap.String("path", event.Name), zap.String("op", event.Op.String()))
			if event.Has(fsnotify.Create) && isDir(event.Name) {
				addTree(watcher, event.Name, log)
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(debounce, func() {
				select {
				case fire <- struct{}{}:
				default:
				}
			})
		case <-fire:
			fn()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Warn("watcher error", zap.Error(err))
		}
	}
}

// addTree watches root and every directory below it.
func addTree(w *fsnotify.Watcher, root string, log *zap.Logger) int {
	n := 0
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			log.Warn("error walking directory", zap.String("path", path), zap.Error(err))
			return nil
		}
		if d.IsDir() {
			if err := w.Add(path); err != nil {
				log.Warn("failed to watch directory", zap.String("path", path), zap.Error(err))
				return nil
			}
			n++
		}
		return nil
	})
	if err != nil {
		log.Warn("error during directory walk", zap.String("root", root), zap.Error(err))
	}
	return n
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
