package dialog

import (
	"github.com/billie-coop/scribe/internal/tui/components/core"
	"github.com/billie-coop/scribe/internal/tui/styles"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
)

// BaseDialog provides common dialog functionality
type BaseDialog struct {
	core.FocusableBase
	core.SizeableBase

	title     string
	isOpen    bool
	result    interface{}
	cancelled bool
}

// NewBaseDialog creates a new base dialog
func NewBaseDialog(title string) *BaseDialog {
	return &BaseDialog{title: title}
}

func (d *BaseDialog) IsOpen() bool {
	return d.isOpen
}

// Open opens the dialog and clears any previous result
func (d *BaseDialog) Open() tea.Cmd {
	d.isOpen = true
	d.cancelled = false
	d.result = nil
	return d.Focus()
}

func (d *BaseDialog) Close() tea.Cmd {
	d.isOpen = false
	return d.Blur()
}

// Cancel closes the dialog as cancelled
func (d *BaseDialog) Cancel() tea.Cmd {
	d.cancelled = true
	return d.Close()
}

func (d *BaseDialog) GetResult() interface{} {
	return d.result
}

func (d *BaseDialog) IsCancelled() bool {
	return d.cancelled
}

func (d *BaseDialog) SetResult(result interface{}) {
	d.result = result
}

// RenderDialog renders the dialog centred over the full area
func (d *BaseDialog) RenderDialog(content string) string {
	if !d.isOpen {
		return ""
	}

	s := styles.CurrentTheme().S()

	dialogContent := content
	if d.title != "" {
		title := s.Title.MarginBottom(1).Render(d.title)
		dialogContent = lipgloss.JoinVertical(lipgloss.Left, title, content)
	}

	box := s.Dialog.Render(dialogContent)
	if d.Width == 0 || d.Height == 0 {
		return box
	}
	return lipgloss.Place(d.Width, d.Height, lipgloss.Center, lipgloss.Center, box)
}

// HandleEscape handles the escape key
func (d *BaseDialog) HandleEscape() tea.Cmd {
	if d.isOpen {
		return d.Cancel()
	}
	return nil
}
