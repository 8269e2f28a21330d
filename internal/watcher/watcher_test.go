package watcher

import (
	"os"
	"path/filepath"
	"sort"
	"testing"
	"time"
)

func collect(t *testing.T) (func([]string), <-chan []string) {
	t.Helper()
	ch := make(chan []string, 10)
	return func(paths []string) {
		sort.Strings(paths)
		ch <- paths
	}, ch
}

func waitFor(t *testing.T, ch <-chan []string) []string {
	t.Helper()
	select {
	case paths := <-ch:
		return paths
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for change callback")
		return nil
	}
}

func TestFileWatcher_DebouncesBurst(t *testing.T) {
	onChange, ch := collect(t)
	w := NewWatcher(20*time.Millisecond, onChange)
	defer w.Stop()

	w.FileChanged("a.go")
	w.FileChanged("b.go")
	w.FileChanged("a.go")

	paths := waitFor(t, ch)
	if len(paths) != 2 || paths[0] != "a.go" || paths[1] != "b.go" {
		t.Fatalf("unexpected paths %v", paths)
	}

	select {
	case extra := <-ch:
		t.Fatalf("expected a single callback, got another: %v", extra)
	case <-time.After(60 * time.Millisecond):
	}
}

func TestFileWatcher_ShouldIgnore(t *testing.T) {
	w := NewWatcher(time.Second, nil)
	defer w.Stop()

	tests := []struct {
		path string
		want bool
	}{
		{"src/main.go", false},
		{"node_modules/x/index.js", true},
		{".hidden", true},
		{"notes.swp", true},
		{".scribe/scribe.log", true},
		{"README.md", false},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := w.shouldIgnore(tt.path); got != tt.want {
				t.Errorf("shouldIgnore(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestFileWatcher_StopDropsPending(t *testing.T) {
	onChange, ch := collect(t)
	w := NewWatcher(20*time.Millisecond, onChange)

	w.FileChanged("a.go")
	w.Stop()
	w.FileChanged("b.go")

	select {
	case paths := <-ch:
		t.Fatalf("callback after Stop: %v", paths)
	case <-time.After(80 * time.Millisecond):
	}
}

func TestFileWatcher_WatchDetectsWrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("A=1"), 0o644); err != nil {
		t.Fatal(err)
	}

	onChange, ch := collect(t)
	w := NewWatcherWithConfig(Config{DebounceDelay: 10 * time.Millisecond}, onChange)
	defer w.Stop()

	if err := w.Watch(path); err != nil {
		t.Fatalf("Watch: %v", err)
	}

	// hidden files are normally ignored; a watched path is always reported
	if err := os.WriteFile(path, []byte("A=1\nB=2"), 0o644); err != nil {
		t.Fatal(err)
	}

	paths := waitFor(t, ch)
	if len(paths) != 1 || paths[0] != path {
		t.Fatalf("unexpected paths %v", paths)
	}
}

func TestFileWatcher_WatchEvents(t *testing.T) {
	tests := []struct {
		name   string
		exists bool
		change func(t *testing.T, path string)
	}{
		{
			name:   "rename over file",
			exists: true,
			change: func(t *testing.T, path string) {
				tmp := path + ".new"
				if err := os.WriteFile(tmp, []byte("replaced"), 0o644); err != nil {
					t.Fatal(err)
				}
				if err := os.Rename(tmp, path); err != nil {
					t.Fatal(err)
				}
			},
		},
		{
			name: "file appears",
			change: func(t *testing.T, path string) {
				if err := os.WriteFile(path, []byte("new"), 0o644); err != nil {
					t.Fatal(err)
				}
			},
		},
		{
			name:   "file removed",
			exists: true,
			change: func(t *testing.T, path string) {
				if err := os.Remove(path); err != nil {
					t.Fatal(err)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "main.go")
			if tt.exists {
				if err := os.WriteFile(path, []byte("package main"), 0o644); err != nil {
					t.Fatal(err)
				}
			}

			onChange, ch := collect(t)
			w := NewWatcherWithConfig(Config{DebounceDelay: 10 * time.Millisecond}, onChange)
			defer w.Stop()
			if err := w.Watch(path); err != nil {
				t.Fatalf("Watch: %v", err)
			}

			tt.change(t, path)

			// the temp file and other siblings are never reported
			paths := waitFor(t, ch)
			if len(paths) != 1 || paths[0] != path {
				t.Fatalf("unexpected paths %v", paths)
			}
		})
	}
}

func TestFileWatcher_WatchIgnoresSiblings(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "main.go")
	if err := os.WriteFile(path, []byte("package main"), 0o644); err != nil {
		t.Fatal(err)
	}

	onChange, ch := collect(t)
	w := NewWatcherWithConfig(Config{DebounceDelay: 10 * time.Millisecond}, onChange)
	defer w.Stop()
	if err := w.Watch(path); err != nil {
		t.Fatalf("Watch: %v", err)
	}

	if err := os.WriteFile(filepath.Join(dir, "other.go"), []byte("package main"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case paths := <-ch:
		t.Fatalf("sibling reported: %v", paths)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestFileWatcher_WatchErrors(t *testing.T) {
	w := NewWatcher(time.Millisecond, nil)
	if err := w.Watch(""); err == nil {
		t.Error("expected error for empty path")
	}
	if err := w.Watch(filepath.Join(t.TempDir(), "missing", "a.go")); err == nil {
		t.Error("expected error for a missing directory")
	}
	w.Stop()
	if err := w.Watch("a.go"); err == nil {
		t.Error("expected error after Stop")
	}
}
