// Package document tracks the file being edited: its saved content, the
// latest text delivered by the editor, and whether the two differ.
package document

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/billie-coop/scribe/internal/logging"
	"github.com/natefinch/atomic"
	"go.uber.org/zap"
)

// ErrNoPath is returned when saving a document that has no file behind it.
var ErrNoPath = errors.New("document: no path to save to")

// Document is safe for concurrent use; saves run in background commands.
type Document struct {
	mu      sync.RWMutex
	path    string
	saved   string
	text    string
	modTime time.Time
	exists  bool

	log *zap.Logger
}

// Open loads path. A missing file yields an empty, clean document that will
// be created on first save. An empty path gives an untitled scratch buffer.
func Open(path string) (*Document, error) {
	d := &Document{path: path, log: logging.Named("document")}
	if path == "" {
		return d, nil
	}

	data, info, err := readFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		d.log.Info("new file", zap.String("path", path))
		return d, nil
	}
	if err != nil {
		return nil, err
	}

	d.saved = string(data)
	d.text = d.saved
	d.modTime = info.ModTime()
	d.exists = true
	return d, nil
}

func readFile(path string) ([]byte, fs.FileInfo, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, nil, err
	}
	if info.IsDir() {
		return nil, nil, fmt.Errorf("document: %s is a directory", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return data, info, nil
}

func (d *Document) Path() string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.path
}

// Name is the file's base name, or "untitled".
func (d *Document) Name() string {
	if p := d.Path(); p != "" {
		return filepath.Base(p)
	}
	return "untitled"
}

// Text returns the latest text handed to SetText.
func (d *Document) Text() string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.text
}

// SetText records the editor's latest content.
func (d *Document) SetText(text string) {
	d.mu.Lock()
	d.text = text
	d.mu.Unlock()
}

// Dirty reports whether the latest text differs from what is on disk.
func (d *Document) Dirty() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.text != d.saved
}

// Save writes the latest text atomically. An existing file keeps its mode;
// a new one is created 0644.
func (d *Document) Save() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.path == "" {
		return ErrNoPath
	}

	_, statErr := os.Stat(d.path)
	created := errors.Is(statErr, fs.ErrNotExist)

	if err := atomic.WriteFile(d.path, strings.NewReader(d.text)); err != nil {
		return fmt.Errorf("failed to save %s: %w", d.path, err)
	}
	if created {
		if err := os.Chmod(d.path, 0o644); err != nil {
			return fmt.Errorf("failed to set mode on %s: %w", d.path, err)
		}
	}

	d.saved = d.text
	d.exists = true
	if info, err := os.Stat(d.path); err == nil {
		d.modTime = info.ModTime()
	}

	d.log.Info("saved", zap.String("path", d.path), zap.Int("bytes", len(d.saved)))
	return nil
}

// Reload rereads the file and reports whether its content changed. Unsaved
// edits are discarded; callers check Dirty first.
func (d *Document) Reload() (string, bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.path == "" {
		return d.text, false, ErrNoPath
	}
	data, info, err := readFile(d.path)
	if err != nil {
		return d.text, false, err
	}

	text := string(data)
	changed := text != d.saved
	d.saved = text
	d.text = text
	d.modTime = info.ModTime()
	d.exists = true
	return text, changed, nil
}

// ModTime is the modification time observed at the last load or save.
func (d *Document) ModTime() time.Time {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.modTime
}
