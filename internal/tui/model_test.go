package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/billie-coop/scribe/internal/config"
	"github.com/billie-coop/scribe/internal/tui/components/dialog"
	"github.com/billie-coop/scribe/internal/tui/events"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"
)

func ctrl(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Mod: tea.ModCtrl}
}

func newTestModel(t *testing.T, name, content string) (*Model, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if content != "" {
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	cfg := config.DefaultConfig()
	cfg.DebounceMS = 0
	cfg.WatchDebounceMS = 60_000

	m, err := New(Options{Path: path, Config: cfg})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	m.Init()
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 30})
	t.Cleanup(m.Close)
	return m, path
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestModel_DetectsLanguageAndMountsEditor(t *testing.T) {
	m, _ := newTestModel(t, "main.go", "package main\n")

	if m.Language() != "go" {
		t.Errorf("Language() = %q", m.Language())
	}
	model := m.ref.Current()
	if model == nil {
		t.Fatal("expected a live model after Init")
	}
	if model.Value() != "package main\n" {
		t.Errorf("model value = %q", model.Value())
	}
}

func TestModel_OnChangeProducesDeliveryMsg(t *testing.T) {
	m, _ := newTestModel(t, "a.txt", "")
	msg := m.onChange("hello")()
	if got, ok := msg.(contentDeliveredMsg); !ok || got.text != "hello" {
		t.Fatalf("unexpected msg %#v", msg)
	}
}

func TestModel_DeliveryUpdatesDocumentAndPreview(t *testing.T) {
	m, _ := newTestModel(t, "notes.md", "# one")
	broker := m.eventBroker
	changes := broker.Subscribe(events.DocumentChangedEvent)

	m.Update(contentDeliveredMsg{text: "# two"})

	if !m.doc.Dirty() {
		t.Error("expected dirty document")
	}
	if m.preview.Text() != "# two" {
		t.Errorf("preview text = %q", m.preview.Text())
	}
	if m.editor.Props().Code != "# two" {
		t.Errorf("Code prop = %q", m.editor.Props().Code)
	}
	if m.editor.Generation() != 1 {
		t.Errorf("delivery recreated the editor: generation %d", m.editor.Generation())
	}

	select {
	case e := <-changes:
		if p := e.Payload.(events.DocumentPayload); !p.Dirty || p.Bytes != 5 {
			t.Errorf("payload = %+v", p)
		}
	case <-time.After(time.Second):
		t.Fatal("no DocumentChangedEvent")
	}
}

func TestModel_SaveWritesLiveText(t *testing.T) {
	m, path := newTestModel(t, "a.txt", "old")

	// a pending edit not yet delivered is still saved
	m.ref.Current().SetValue("new")

	_, cmd := m.Update(ctrl('s'))
	if cmd == nil {
		t.Fatal("expected save command")
	}
	msg := cmd()
	saved, ok := msg.(savedMsg)
	if !ok || saved.err != nil {
		t.Fatalf("unexpected save result %#v", msg)
	}
	data, _ := os.ReadFile(path)
	if string(data) != "new" {
		t.Errorf("file = %q", data)
	}
	if m.doc.Dirty() {
		t.Error("document still dirty after save")
	}
}

func TestModel_QuitWhenClean(t *testing.T) {
	m, _ := newTestModel(t, "a.txt", "same")
	_, cmd := m.Update(ctrl('q'))
	if !isQuit(cmd) {
		t.Fatal("expected immediate quit for a clean document")
	}
}

func TestModel_QuitWithUnsavedChanges(t *testing.T) {
	tests := []struct {
		name     string
		action   string
		wantQuit bool
	}{
		{"discard", dialog.ActionDiscard, true},
		{"cancel", dialog.ActionCancel, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := newTestModel(t, "a.txt", "old")
			m.ref.Current().SetValue("edited")

			_, cmd := m.Update(ctrl('q'))
			if isQuit(cmd) {
				t.Fatal("quit without confirmation")
			}
			if !m.quitDialog.IsOpen() {
				t.Fatal("expected quit dialog")
			}

			_, cmd = m.Update(dialog.ResultMsg{Action: tt.action})
			if got := isQuit(cmd); got != tt.wantQuit {
				t.Errorf("quit = %v, want %v", got, tt.wantQuit)
			}
		})
	}
}

func TestModel_SaveAndQuit(t *testing.T) {
	m, path := newTestModel(t, "a.txt", "old")
	m.ref.Current().SetValue("kept")
	m.Update(ctrl('q'))

	_, cmd := m.Update(dialog.ResultMsg{Action: dialog.ActionSave})
	saved := cmd().(savedMsg)
	if saved.err != nil || !saved.quit {
		t.Fatalf("unexpected save result %+v", saved)
	}
	_, cmd = m.Update(saved)
	if !isQuit(cmd) {
		t.Error("expected quit after successful save")
	}
	data, _ := os.ReadFile(path)
	if string(data) != "kept" {
		t.Errorf("file = %q", data)
	}
}

func TestModel_CycleLanguageRecreatesWithLiveText(t *testing.T) {
	m, _ := newTestModel(t, "main.go", "package main")
	m.ref.Current().SetValue("package main // edited")

	m.Update(ctrl('t'))

	if m.Language() == "go" {
		t.Fatal("language did not change")
	}
	if m.editor.Generation() != 2 {
		t.Errorf("generation = %d, want 2", m.editor.Generation())
	}
	model := m.ref.Current()
	if model.LanguageID() != m.Language() {
		t.Errorf("model language %q, model tracks %q", model.LanguageID(), m.Language())
	}
	if model.Value() != "package main // edited" {
		t.Errorf("edit lost across recreation: %q", model.Value())
	}
}

func TestModel_DiskChangeReloadsCleanDocument(t *testing.T) {
	m, path := newTestModel(t, "a.txt", "one")

	if err := os.WriteFile(path, []byte("two"), 0o644); err != nil {
		t.Fatal(err)
	}
	later := time.Now().Add(time.Hour)
	os.Chtimes(path, later, later)

	m.Update(events.Event{
		Type:    events.FileChangedOnDisk,
		Payload: events.FileChangedPayload{Path: path, ModTime: later},
	})

	if got := m.ref.Current().Value(); got != "two" {
		t.Errorf("editor value = %q", got)
	}
	if m.doc.Dirty() {
		t.Error("reloaded document should be clean")
	}
}

func TestModel_DiskChangeKeepsUnsavedEdits(t *testing.T) {
	m, path := newTestModel(t, "a.txt", "one")
	m.ref.Current().SetValue("mine")

	os.WriteFile(path, []byte("theirs"), 0o644)
	m.Update(events.Event{
		Type:    events.FileChangedOnDisk,
		Payload: events.FileChangedPayload{Path: path, ModTime: time.Now().Add(time.Hour)},
	})

	if got := m.ref.Current().Value(); got != "mine" {
		t.Errorf("unsaved edits overwritten: %q", got)
	}
	if msg := m.statusBar.Message(); msg == nil {
		t.Error("expected a warning in the status bar")
	}
}

func TestModel_OwnSaveIsNotReloaded(t *testing.T) {
	m, path := newTestModel(t, "a.txt", "one")
	m.ref.Current().SetValue("two")
	m.save(false)()

	// same instant in another location still counts as our own save
	m.Update(events.Event{
		Type:    events.FileChangedOnDisk,
		Payload: events.FileChangedPayload{Path: path, ModTime: m.doc.ModTime().UTC()},
	})
	if msg := m.statusBar.Message(); msg != nil {
		t.Errorf("unexpected status %q", msg.Content)
	}
	if m.editor.Generation() != 1 || m.ref.Current().Value() != "two" {
		t.Errorf("own save reloaded the editor: %q", m.ref.Current().Value())
	}
}

func TestModel_TogglePreviewResizesEditor(t *testing.T) {
	m, _ := newTestModel(t, "a.md", "# hi")

	editorWidth, previewWidth, _ := m.paneSizes()
	if previewWidth == 0 || editorWidth != 60 {
		t.Fatalf("split sizes = %d/%d", editorWidth, previewWidth)
	}

	m.Update(ctrl('p'))
	editorWidth, previewWidth, _ = m.paneSizes()
	if previewWidth != 0 || editorWidth != 120 {
		t.Errorf("sizes after toggle = %d/%d", editorWidth, previewWidth)
	}
	if m.editor.Generation() != 1 {
		t.Error("resizing recreated the editor")
	}
}

func TestModel_Render(t *testing.T) {
	m, _ := newTestModel(t, "a.txt", "hello")
	view := ansi.Strip(m.render())
	for _, want := range []string{"scribe", "a.txt", "hello", "ctrl+s save"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}

	m.ref.Current().SetValue("hello!")
	m.Update(ctrl('q'))
	if !strings.Contains(ansi.Strip(m.render()), "Unsaved changes") {
		t.Error("quit dialog not rendered")
	}
}
