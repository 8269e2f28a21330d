package tui

import (
	"strings"

	"github.com/billie-coop/scribe/internal/tui/styles"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
)

const (
	titleHeight  = 1
	statusHeight = 1

	// Below this width the preview is hidden even when enabled
	minSplitWidth = 60
)

// splitActive reports whether the preview pane is on screen.
func (m *Model) splitActive() bool {
	return m.showPreview && m.width >= minSplitWidth
}

// paneSizes returns the editor and preview widths and the shared body height.
func (m *Model) paneSizes() (editorWidth, previewWidth, bodyHeight int) {
	bodyHeight = max(m.height-titleHeight-statusHeight, 0)
	if !m.splitActive() {
		return m.width, 0, bodyHeight
	}
	editorWidth = m.width / 2
	return editorWidth, m.width - editorWidth, bodyHeight
}

// resizeComponents resizes all components based on current window size
func (m *Model) resizeComponents() tea.Cmd {
	var cmds []tea.Cmd

	editorWidth, previewWidth, bodyHeight := m.paneSizes()
	cmds = append(cmds, m.editor.SetSize(editorWidth, bodyHeight))

	if previewWidth > 0 {
		frameW, frameH := styles.Container(styles.ClassBordered, m.previewFocused).GetFrameSize()
		cmds = append(cmds, m.preview.SetSize(max(previewWidth-frameW, 0), max(bodyHeight-frameH, 0)))
	}

	cmds = append(cmds, m.statusBar.SetSize(m.width, statusHeight))
	cmds = append(cmds, m.quitDialog.SetSize(m.width, m.height))

	return tea.Batch(cmds...)
}

// View renders the title bar, the panes and the status bar
func (m *Model) View() tea.View {
	return tea.NewView(m.render())
}

func (m *Model) render() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	if m.quitDialog.IsOpen() {
		return m.quitDialog.View()
	}

	body := m.editor.View()
	if m.splitActive() {
		_, previewWidth, bodyHeight := m.paneSizes()
		frame := styles.Container(styles.ClassBordered, m.previewFocused)
		frameW, frameH := frame.GetFrameSize()
		previewView := frame.
			Width(max(previewWidth-frameW, 0)).
			Height(max(bodyHeight-frameH, 0)).
			Render(m.preview.View())
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, previewView)
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderTitle(),
		body,
		m.statusBar.View(),
	)
}

func (m *Model) renderTitle() string {
	s := styles.CurrentTheme().S()

	title := styles.RenderThemeGradient("scribe") + " " + s.Muted.Render(m.doc.Name())

	help := make([]string, 0, len(m.keys.ShortHelp()))
	for _, b := range m.keys.ShortHelp() {
		h := b.Help()
		help = append(help, h.Key+" "+h.Desc)
	}
	hints := s.Subtle.Render(strings.Join(help, " • "))

	gap := m.width - lipgloss.Width(title) - lipgloss.Width(hints)
	if gap < 1 {
		return lipgloss.NewStyle().MaxWidth(m.width).Render(title)
	}
	return title + strings.Repeat(" ", gap) + hints
}
