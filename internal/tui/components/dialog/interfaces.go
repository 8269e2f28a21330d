package dialog

import (
	tea "github.com/charmbracelet/bubbletea/v2"
)

// Dialog represents a modal dialog component
type Dialog interface {
	Init() tea.Cmd
	Update(tea.Msg) (tea.Model, tea.Cmd)
	View() string

	SetSize(width, height int) tea.Cmd
	IsOpen() bool
	Open() tea.Cmd
	Close() tea.Cmd
	Focus() tea.Cmd
	Blur() tea.Cmd
	Focused() bool

	GetResult() interface{}
	IsCancelled() bool
}

// ResultMsg is emitted when a dialog closes with a choice.
type ResultMsg struct {
	Action    string
	Cancelled bool
}
