package styles

import "github.com/charmbracelet/lipgloss/v2"

// Container class names understood by Container.
const (
	ClassPlain    = "plain"
	ClassBordered = "bordered"
	ClassCompact  = "compact"
)

// Container returns the box style for a class name. Unknown and empty
// names render without decoration.
func Container(className string, focused bool) lipgloss.Style {
	t := CurrentTheme()
	switch className {
	case ClassBordered:
		if focused {
			return t.S().BorderFocused
		}
		return t.S().Border
	case ClassCompact:
		border := t.Border
		if focused {
			border = t.BorderFocus
		}
		return lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderLeft(true).
			BorderForeground(border)
	default:
		return lipgloss.NewStyle()
	}
}
