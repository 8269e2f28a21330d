package watcher

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/billie-coop/scribe/internal/logging"
	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// FileWatcher monitors file changes with debouncing.
// It collects rapid changes and triggers a single callback after things settle.
type FileWatcher struct {
	// Configuration
	debounceDelay time.Duration
	ignorePaths   []string

	// Debouncing state
	timer        *time.Timer
	timerMu      sync.Mutex
	pendingPaths map[string]struct{}

	// fsnotify state, created by the first Watch
	fsw     *fsnotify.Watcher
	dirs    map[string]struct{}
	watched map[string]struct{}

	// Callback when changes are ready
	onChange func([]string)

	// Lifecycle
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	log *zap.Logger
}

// NewWatcher creates a file watcher with the specified debounce delay.
// The onChange callback is called with changed paths after debouncing.
func NewWatcher(debounceDelay time.Duration, onChange func([]string)) *FileWatcher {
	ctx, cancel := context.WithCancel(context.Background())

	return &FileWatcher{
		debounceDelay: debounceDelay,
		ignorePaths:   defaultIgnorePaths(),
		pendingPaths:  make(map[string]struct{}),
		dirs:          make(map[string]struct{}),
		watched:       make(map[string]struct{}),
		onChange:      onChange,
		ctx:           ctx,
		cancel:        cancel,
		log:           logging.Named("watcher"),
	}
}

// FileChanged notifies the watcher of a file change.
// Multiple rapid calls are debounced into a single onChange callback.
func (w *FileWatcher) FileChanged(path string) {
	w.FilesChanged([]string{path})
}

// FilesChanged notifies the watcher of multiple file changes.
func (w *FileWatcher) FilesChanged(paths []string) {
	if w.ctx.Err() != nil {
		return
	}

	w.timerMu.Lock()
	defer w.timerMu.Unlock()

	added := false
	for _, path := range paths {
		if !w.shouldIgnore(path) {
			w.pendingPaths[path] = struct{}{}
			added = true
		}
	}

	if !added {
		return // All paths ignored
	}

	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounceDelay, w.processPending)
}

// SetIgnorePaths updates the path fragments to ignore.
func (w *FileWatcher) SetIgnorePaths(paths []string) {
	w.timerMu.Lock()
	defer w.timerMu.Unlock()
	w.ignorePaths = paths
}

// Watch reports changes to path until Stop is called. The file's directory
// is watched, so a file that does not exist yet is reported when it appears
// and editors that save by renaming over the file are still seen.
func (w *FileWatcher) Watch(path string) error {
	if path == "" {
		return errors.New("watcher: empty path")
	}
	if w.ctx.Err() != nil {
		return errors.New("watcher: stopped")
	}

	path = filepath.Clean(path)
	dir := filepath.Dir(path)

	w.timerMu.Lock()
	defer w.timerMu.Unlock()

	if w.fsw == nil {
		fsw, err := fsnotify.NewWatcher()
		if err != nil {
			return fmt.Errorf("watcher: %w", err)
		}
		w.fsw = fsw
		w.wg.Add(1)
		go w.run(fsw)
	}

	if _, ok := w.dirs[dir]; !ok {
		if err := w.fsw.Add(dir); err != nil {
			return fmt.Errorf("watcher: failed to watch %s: %w", dir, err)
		}
		w.dirs[dir] = struct{}{}
	}
	w.watched[path] = struct{}{}

	w.log.Debug("watching", zap.String("path", path))
	return nil
}

// run forwards fsnotify events for watched paths into the debounce.
func (w *FileWatcher) run(fsw *fsnotify.Watcher) {
	defer w.wg.Done()

	for {
		select {
		case <-w.ctx.Done():
			return
		case event, ok := <-fsw.Events:
			if !ok {
				return
			}
			// permission and timestamp touches leave the content alone
			if event.Op == fsnotify.Chmod {
				continue
			}
			if w.isWatched(event.Name) {
				w.FileChanged(filepath.Clean(event.Name))
			}
		case err, ok := <-fsw.Errors:
			if !ok {
				return
			}
			w.log.Warn("watch error", zap.Error(err))
		}
	}
}

func (w *FileWatcher) isWatched(path string) bool {
	w.timerMu.Lock()
	defer w.timerMu.Unlock()
	_, ok := w.watched[filepath.Clean(path)]
	return ok
}

// Stop shuts down the watcher. Pending changes are dropped.
func (w *FileWatcher) Stop() {
	w.cancel()

	w.timerMu.Lock()
	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
	w.pendingPaths = make(map[string]struct{})
	fsw := w.fsw
	w.fsw = nil
	w.timerMu.Unlock()

	if fsw != nil {
		if err := fsw.Close(); err != nil {
			w.log.Warn("close failed", zap.Error(err))
		}
	}
	w.wg.Wait()
}

// processPending is called after debounce delay.
func (w *FileWatcher) processPending() {
	w.timerMu.Lock()

	if w.ctx.Err() != nil {
		w.timerMu.Unlock()
		return
	}

	paths := make([]string, 0, len(w.pendingPaths))
	for path := range w.pendingPaths {
		paths = append(paths, path)
	}

	w.pendingPaths = make(map[string]struct{})
	w.timer = nil

	w.timerMu.Unlock()

	// Trigger callback (outside lock)
	if len(paths) > 0 && w.onChange != nil {
		w.log.Debug("changes settled", zap.Strings("paths", paths))
		w.onChange(paths)
	}
}

// shouldIgnore filters out common non-source files. Callers hold timerMu.
func (w *FileWatcher) shouldIgnore(path string) bool {
	if _, ok := w.watched[path]; ok {
		return false
	}

	for _, ignore := range w.ignorePaths {
		if strings.Contains(path, ignore) {
			return true
		}
	}

	base := filepath.Base(path)

	// Ignore hidden files
	if strings.HasPrefix(base, ".") {
		return true
	}

	switch filepath.Ext(base) {
	case ".log", ".tmp", ".swp", ".swo":
		return true
	}

	return false
}

// defaultIgnorePaths returns standard paths to ignore.
func defaultIgnorePaths() []string {
	return []string{
		"node_modules",
		".git",
		"vendor",
		"build",
		"dist",
		"target",
		"__pycache__",
		".scribe",
	}
}

// Config holds watcher configuration.
type Config struct {
	DebounceDelay time.Duration
	IgnorePaths   []string
}

// NewWatcherWithConfig creates a watcher with custom configuration.
func NewWatcherWithConfig(cfg Config, onChange func([]string)) *FileWatcher {
	if cfg.DebounceDelay == 0 {
		cfg.DebounceDelay = 300 * time.Millisecond
	}
	if len(cfg.IgnorePaths) == 0 {
		cfg.IgnorePaths = defaultIgnorePaths()
	}

	watcher := NewWatcher(cfg.DebounceDelay, onChange)
	watcher.ignorePaths = cfg.IgnorePaths
	return watcher
}
