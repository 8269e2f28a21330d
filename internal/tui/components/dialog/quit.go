package dialog

import (
	"github.com/billie-coop/scribe/internal/tui/styles"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
)

// Quit dialog actions.
const (
	ActionSave    = "save"
	ActionDiscard = "discard"
	ActionCancel  = "cancel"
)

var quitActions = []string{ActionSave, ActionDiscard, ActionCancel}

var quitLabels = map[string]string{
	ActionSave:    "Save & quit",
	ActionDiscard: "Discard",
	ActionCancel:  "Cancel",
}

// QuitDialog asks what to do with unsaved changes before quitting
type QuitDialog struct {
	*BaseDialog

	filename string
	selected int
}

var _ Dialog = (*QuitDialog)(nil)

// NewQuitDialog creates a new quit confirmation dialog
func NewQuitDialog() *QuitDialog {
	return &QuitDialog{
		BaseDialog: NewBaseDialog("Unsaved changes"),
		selected:   len(quitActions) - 1, // Cancel is the safe default
	}
}

// OpenFor opens the dialog naming the file with pending changes.
func (d *QuitDialog) OpenFor(filename string) tea.Cmd {
	d.filename = filename
	d.selected = len(quitActions) - 1
	return d.Open()
}

// Selected returns the highlighted action.
func (d *QuitDialog) Selected() string {
	return quitActions[d.selected]
}

func (d *QuitDialog) Init() tea.Cmd {
	return nil
}

func (d *QuitDialog) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if !d.isOpen {
		return d, nil
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "ctrl+c":
			// Ctrl+C while dialog is open discards (double Ctrl+C pattern)
			return d, d.choose(ActionDiscard)
		case "esc", "n", "N":
			return d, d.choose(ActionCancel)
		case "y", "Y", "s", "S":
			return d, d.choose(ActionSave)
		case "d", "D":
			return d, d.choose(ActionDiscard)
		case "right", "tab", "l":
			d.selected = (d.selected + 1) % len(quitActions)
		case "left", "shift+tab", "h":
			d.selected = (d.selected + len(quitActions) - 1) % len(quitActions)
		case "enter", "space", " ":
			return d, d.choose(quitActions[d.selected])
		}
	}

	return d, nil
}

func (d *QuitDialog) choose(action string) tea.Cmd {
	d.SetResult(action)
	closeCmd := d.Close()
	if action == ActionCancel {
		d.cancelled = true
	}
	result := ResultMsg{Action: action, Cancelled: action == ActionCancel}
	return tea.Batch(closeCmd, func() tea.Msg { return result })
}

func (d *QuitDialog) View() string {
	if !d.isOpen {
		return ""
	}

	s := styles.CurrentTheme().S()

	name := d.filename
	if name == "" {
		name = "untitled"
	}
	question := s.Bold.Render(name + " has unsaved changes.")

	buttons := make([]string, 0, len(quitActions)*2)
	for i, action := range quitActions {
		style := s.Button
		if i == d.selected {
			style = s.ButtonFocused
		}
		if i > 0 {
			buttons = append(buttons, "  ")
		}
		buttons = append(buttons, style.Render(quitLabels[action]))
	}
	row := lipgloss.JoinHorizontal(lipgloss.Center, buttons...)

	help := s.Subtle.Italic(true).Render("s save • d discard • esc cancel")

	content := lipgloss.JoinVertical(
		lipgloss.Center,
		question,
		"",
		row,
		"",
		help,
	)
	return d.RenderDialog(content)
}
