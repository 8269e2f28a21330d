package document

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestOpen_MissingFileIsCleanAndEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "new.go")
	d, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if d.Text() != "" || d.Dirty() {
		t.Errorf("expected empty clean document, got text=%q dirty=%v", d.Text(), d.Dirty())
	}
	if d.Name() != "new.go" {
		t.Errorf("Name() = %q", d.Name())
	}
}

func TestOpen_Directory(t *testing.T) {
	if _, err := Open(t.TempDir()); err == nil {
		t.Fatal("expected error opening a directory")
	}
}

func TestDocument_DirtyAndSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.md")
	os.WriteFile(path, []byte("# hi"), 0o600)

	d, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if d.Text() != "# hi" {
		t.Fatalf("Text() = %q", d.Text())
	}

	d.SetText("# hi there")
	if !d.Dirty() {
		t.Fatal("expected dirty after SetText")
	}
	if err := d.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if d.Dirty() {
		t.Error("expected clean after Save")
	}

	data, _ := os.ReadFile(path)
	if string(data) != "# hi there" {
		t.Errorf("file content = %q", data)
	}
	info, _ := os.Stat(path)
	if info.Mode().Perm() != 0o600 {
		t.Errorf("mode not preserved: %v", info.Mode().Perm())
	}

	entries, _ := os.ReadDir(filepath.Dir(path))
	if len(entries) != 1 {
		t.Errorf("temp files left behind: %d entries", len(entries))
	}
}

func TestDocument_SaveCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "new.txt")
	d, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	d.SetText("first")
	if err := d.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("file not created: %v", err)
	}
	if info.Mode().Perm() != 0o644 {
		t.Errorf("new file mode = %v, want 0644", info.Mode().Perm())
	}
	if !d.ModTime().Equal(info.ModTime()) {
		t.Errorf("ModTime() = %v, file says %v", d.ModTime(), info.ModTime())
	}
}

func TestDocument_SaveUntitled(t *testing.T) {
	d, _ := Open("")
	d.SetText("x")
	if err := d.Save(); !errors.Is(err, ErrNoPath) {
		t.Fatalf("expected ErrNoPath, got %v", err)
	}
	if d.Name() != "untitled" {
		t.Errorf("Name() = %q", d.Name())
	}
}

func TestDocument_Reload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.txt")
	os.WriteFile(path, []byte("one"), 0o644)
	d, _ := Open(path)

	os.WriteFile(path, []byte("two"), 0o644)
	text, changed, err := d.Reload()
	if err != nil {
		t.Fatalf("Reload: %v", err)
	}
	if !changed || text != "two" || d.Text() != "two" || d.Dirty() {
		t.Errorf("reload mismatch: text=%q changed=%v dirty=%v", text, changed, d.Dirty())
	}

	_, changed, _ = d.Reload()
	if changed {
		t.Error("second reload should report no change")
	}
}
