package styles

import (
	"strings"
	"testing"
)

func TestManager_SetTheme(t *testing.T) {
	m := NewManager("missing")
	if m.Current().Name != "scribe" {
		t.Errorf("unknown default should fall back to scribe, got %s", m.Current().Name)
	}
	if err := m.SetTheme("paper"); err != nil {
		t.Fatalf("SetTheme: %v", err)
	}
	if m.Current().IsDark {
		t.Error("paper is a light theme")
	}
	if err := m.SetTheme("nope"); err == nil {
		t.Error("expected error for unknown theme")
	}
	if got := strings.Join(m.List(), ","); got != "midnight,paper,scribe" {
		t.Errorf("List() = %s", got)
	}
}

func TestContainer_FrameSizes(t *testing.T) {
	tests := []struct {
		class string
		w, h  int
	}{
		{class: "", w: 0, h: 0},
		{class: ClassPlain, w: 0, h: 0},
		{class: ClassBordered, w: 2, h: 2},
		{class: ClassCompact, w: 1, h: 0},
	}
	for _, tt := range tests {
		w, h := Container(tt.class, false).GetFrameSize()
		if w != tt.w || h != tt.h {
			t.Errorf("Container(%q) frame = %dx%d, want %dx%d", tt.class, w, h, tt.w, tt.h)
		}
	}
}

func TestColorToHex(t *testing.T) {
	if got := colorToHex(ParseHex("#2E86AB")); got != "#2e86ab" {
		t.Errorf("colorToHex = %s", got)
	}
}

func TestChromaStyle_Builds(t *testing.T) {
	if ChromaStyle() == nil {
		t.Fatal("expected a chroma style")
	}
}

func TestMarkdownRenderer(t *testing.T) {
	r, err := GetMarkdownRenderer(40)
	if err != nil {
		t.Fatalf("GetMarkdownRenderer: %v", err)
	}
	out, err := r.Render("# Title\n\nbody")
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(out, "Title") {
		t.Errorf("rendered markdown missing heading: %q", out)
	}
}
