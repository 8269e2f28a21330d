package editor

import (
	"sync"
	"time"

	"github.com/billie-coop/scribe/internal/textwidget"
	tea "github.com/charmbracelet/bubbletea/v2"
)

// CodeFontFamily is the default font stack handed to the widget.
const CodeFontFamily = `Menlo, Monaco, Consolas, "Droid Sans Mono", "Courier New", monospace`

// ChangeFunc receives the document text after a (debounced) change. The
// returned command is run by the host program.
type ChangeFunc func(text string) tea.Cmd

// Props configure the editor. Language, Filename, EditorOptions and ModelRef
// are structural: changing any of them recreates the widget and its model.
// Code only seeds a model when one is created.
type Props struct {
	Width     int
	Height    int
	ClassName string

	Code     string
	Language string
	Filename string

	// DebounceTime delays OnChange until edits pause for this long.
	// Zero delivers every change synchronously.
	DebounceTime  time.Duration
	EditorOptions textwidget.Options
	OnChange      ChangeFunc

	// ModelRef, when set, receives the live model while mounted.
	ModelRef *ModelRef
}

func structuralChange(prev, next Props) bool {
	return prev.Language != next.Language ||
		prev.Filename != next.Filename ||
		prev.EditorOptions != next.EditorOptions ||
		prev.ModelRef != next.ModelRef
}

// ModelRef is a slot holding the editor's live text model. It is empty
// before mount and after teardown. Holders may read or edit the model but
// never dispose it; the editor owns its lifecycle.
type ModelRef struct {
	mu      sync.RWMutex
	current textwidget.Model
}

// Current returns the live model, or nil when the editor is not mounted.
func (r *ModelRef) Current() textwidget.Model {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.current
}

func (r *ModelRef) set(m textwidget.Model) {
	r.mu.Lock()
	r.current = m
	r.mu.Unlock()
}

// settings is the refreshed-on-every-SetProps cell read by the content
// change handler at event time.
type settings struct {
	onChange ChangeFunc
	debounce time.Duration
}
