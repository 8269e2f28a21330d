package textwidget

import (
	"strings"

	"github.com/charmbracelet/bubbles/v2/textarea"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
)

// Container is the stable box an instance draws into. The host owns it and
// keeps it across instance recreation; instances read its size on Layout.
type Container struct {
	Width  int
	Height int
}

// Instance is a live, on-screen editing surface bound to one model.
type Instance interface {
	ID() string
	Model() Model
	Options() Options

	// OnDidChangeModelContent registers fn to run after every content
	// mutation of the bound model, whether typed or set programmatically.
	OnDidChangeModelContent(fn func()) Subscription

	Update(msg tea.Msg) tea.Cmd
	View() string
	Layout()

	Focus() tea.Cmd
	Blur()
	Focused() bool

	CursorLine() int
	LineCount() int

	IsDisposed() bool
	Dispose()
}

type textareaInstance struct {
	id        string
	container *Container
	opts      Options
	model     *textModel

	ta       textarea.Model
	changes  listeners
	modelSub Subscription
	disposed bool
}

var _ Instance = (*textareaInstance)(nil)

func newTextareaInstance(id string, container *Container, opts Options, model *textModel) *textareaInstance {
	ta := textarea.New()
	ta.Prompt = ""
	ta.ShowLineNumbers = opts.LineNumbers
	ta.Placeholder = opts.Placeholder
	ta.MaxHeight = 0
	ta.MaxWidth = 0
	ta.CharLimit = -1
	if opts.CharLimit > 0 {
		ta.CharLimit = opts.CharLimit
	}
	ta.KeyMap.InsertNewline.SetEnabled(!opts.ReadOnly)
	ta.SetValue(model.Value())

	inst := &textareaInstance{
		id:        id,
		container: container,
		opts:      opts,
		model:     model,
		ta:        ta,
	}
	inst.modelSub = model.onDidChangeContent(inst.handleModelChange)
	inst.Layout()
	return inst
}

func (i *textareaInstance) ID() string       { return i.id }
func (i *textareaInstance) Model() Model     { return i.model }
func (i *textareaInstance) Options() Options { return i.opts }

func (i *textareaInstance) OnDidChangeModelContent(fn func()) Subscription {
	return i.changes.add(fn)
}

// handleModelChange keeps the textarea in step with the model and relays
// the change to instance listeners.
func (i *textareaInstance) handleModelChange() {
	if i.disposed {
		return
	}
	if v := i.model.Value(); i.ta.Value() != v {
		i.ta.SetValue(v)
	}
	i.changes.fire()
}

func (i *textareaInstance) Update(msg tea.Msg) tea.Cmd {
	if i.disposed {
		return nil
	}

	if i.opts.ReadOnly {
		return i.updateReadOnly(msg)
	}

	if key, ok := msg.(tea.KeyPressMsg); ok {
		if key.String() == "tab" && i.opts.TabSize > 0 {
			i.ta.InsertString(strings.Repeat(" ", i.opts.TabSize))
			i.syncFromWidget()
			return nil
		}
	}

	var cmd tea.Cmd
	i.ta, cmd = i.ta.Update(msg)
	i.syncFromWidget()
	return cmd
}

// updateReadOnly lets navigation and blink through and never writes to the
// model.
func (i *textareaInstance) updateReadOnly(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.PasteMsg:
		return nil
	case tea.KeyPressMsg:
		if !isNavigationKey(msg.String()) {
			return nil
		}
	}

	var cmd tea.Cmd
	i.ta, cmd = i.ta.Update(msg)
	// clipboard results come back as textarea-private messages
	if v := i.model.Value(); i.ta.Value() != v {
		i.ta.SetValue(v)
	}
	return cmd
}

// syncFromWidget pushes edits made in the textarea into the model, which
// notifies every attached instance.
func (i *textareaInstance) syncFromWidget() {
	if v := i.ta.Value(); v != i.model.Value() {
		i.model.applyValue(v)
	}
}

func (i *textareaInstance) View() string {
	if i.disposed {
		return ""
	}
	body := i.ta.View()
	if !i.opts.Minimap.Enabled {
		return body
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, body, i.minimap())
}

// minimap renders a one-column overview with a marker at the cursor's
// relative position in the document.
func (i *textareaInstance) minimap() string {
	h := i.container.Height
	if h <= 0 {
		return ""
	}
	total := max(i.ta.LineCount(), 1)
	marker := i.ta.Line() * h / total
	if marker >= h {
		marker = h - 1
	}

	track := lipgloss.NewStyle().Faint(true)
	rows := make([]string, h)
	for r := range rows {
		if r == marker {
			rows[r] = "█"
			continue
		}
		rows[r] = track.Render("│")
	}
	return strings.Join(rows, "\n")
}

func (i *textareaInstance) Layout() {
	w := i.container.Width
	if i.opts.Minimap.Enabled && w > 1 {
		w--
	}
	i.ta.SetWidth(max(w, 0))
	i.ta.SetHeight(max(i.container.Height, 0))
}

func (i *textareaInstance) Focus() tea.Cmd {
	if i.disposed {
		return nil
	}
	return i.ta.Focus()
}

func (i *textareaInstance) Blur()         { i.ta.Blur() }
func (i *textareaInstance) Focused() bool { return i.ta.Focused() }

func (i *textareaInstance) CursorLine() int { return i.ta.Line() + 1 }
func (i *textareaInstance) LineCount() int  { return i.ta.LineCount() }

func (i *textareaInstance) IsDisposed() bool { return i.disposed }

func (i *textareaInstance) Dispose() {
	if i.disposed {
		return
	}
	i.disposed = true
	i.modelSub.Dispose()
	i.changes.clear()
	i.ta.Blur()
}

func isNavigationKey(k string) bool {
	switch k {
	case "up", "down", "left", "right", "home", "end", "pgup", "pgdown",
		"ctrl+a", "ctrl+e", "ctrl+home", "ctrl+end":
		return true
	}
	return false
}
