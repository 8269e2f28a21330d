package core

import tea "github.com/charmbracelet/bubbletea/v2"

// FocusableBase implements Focusable for embedding components.
type FocusableBase struct {
	focused bool
}

func (f *FocusableBase) Focused() bool { return f.focused }

func (f *FocusableBase) Focus() tea.Cmd {
	f.focused = true
	return nil
}

func (f *FocusableBase) Blur() tea.Cmd {
	f.focused = false
	return nil
}

// SizeableBase implements Sizeable for embedding components.
type SizeableBase struct {
	Width  int
	Height int
}

func (s *SizeableBase) SetSize(width, height int) tea.Cmd {
	s.Width = width
	s.Height = height
	return nil
}

var (
	_ Focusable = (*FocusableBase)(nil)
	_ Sizeable  = (*SizeableBase)(nil)
)
