package status

import (
	"fmt"
	"strings"
	"time"

	"github.com/billie-coop/scribe/internal/tui/styles"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
)

// MessageType represents the type of status message
type MessageType int

const (
	Info MessageType = iota
	Warning
	Error
	Success
)

// StatusMessage represents a status bar message
type StatusMessage struct {
	Content   string
	Type      MessageType
	Timestamp time.Time
}

// DocumentInfo is the editor state shown on the left of the bar.
type DocumentInfo struct {
	Name      string
	Language  string
	Dirty     bool
	Line      int
	LineCount int
}

// Component implements a status bar that shows the document and temporary messages
type Component struct {
	message *StatusMessage
	width   int
	doc     DocumentInfo

	// Timer for clearing messages
	clearAfter time.Duration
}

// New creates a new status bar component
func New() *Component {
	return &Component{
		clearAfter: 4 * time.Second,
	}
}

// SetMessage sets a status message with the given type
func (c *Component) SetMessage(content string, msgType MessageType) tea.Cmd {
	ts := time.Now()
	c.message = &StatusMessage{
		Content:   content,
		Type:      msgType,
		Timestamp: ts,
	}

	return tea.Tick(c.clearAfter, func(time.Time) tea.Msg {
		return clearMessageMsg{timestamp: ts}
	})
}

func (c *Component) ShowInfo(message string) tea.Cmd {
	return c.SetMessage(message, Info)
}

func (c *Component) ShowWarning(message string) tea.Cmd {
	return c.SetMessage(message, Warning)
}

func (c *Component) ShowError(message string) tea.Cmd {
	return c.SetMessage(message, Error)
}

func (c *Component) ShowSuccess(message string) tea.Cmd {
	return c.SetMessage(message, Success)
}

// Message returns the message currently on display, if any.
func (c *Component) Message() *StatusMessage {
	return c.message
}

// SetDocument updates the document summary.
func (c *Component) SetDocument(info DocumentInfo) {
	c.doc = info
}

// SetSize implements the Sizeable interface
func (c *Component) SetSize(width, height int) tea.Cmd {
	c.width = width
	return nil
}

// clearMessageMsg is sent when a status message should be cleared
type clearMessageMsg struct {
	timestamp time.Time
}

func (c *Component) Init() tea.Cmd {
	return nil
}

func (c *Component) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case clearMessageMsg:
		// Only clear if this is for the current message
		if c.message != nil && msg.timestamp.Equal(c.message.Timestamp) {
			c.message = nil
		}
	}

	return c, nil
}

func (c *Component) View() string {
	if c.width == 0 {
		return ""
	}

	s := styles.CurrentTheme().S()
	statusStyle := s.StatusBar.Width(c.width).Height(1)

	left := c.formatDocument(s)
	right := c.formatMessage(s)
	if right == "" {
		right = c.formatPosition(s)
	}

	// Account for padding
	available := c.width - 2
	if available <= 0 {
		return statusStyle.Render("")
	}

	if lipgloss.Width(left)+lipgloss.Width(right)+1 > available {
		if lipgloss.Width(right) > available/2 {
			right = ansi.Truncate(right, available/2, "…")
		}
		left = ansi.Truncate(left, available-lipgloss.Width(right)-1, "…")
	}

	gap := available - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return statusStyle.Render(left + strings.Repeat(" ", gap) + right)
}

func (c *Component) formatDocument(s *styles.Styles) string {
	name := c.doc.Name
	if name == "" {
		name = "untitled"
	}
	marker := s.Muted.Render(styles.CleanIcon)
	if c.doc.Dirty {
		marker = s.Warning.Render(styles.DirtyIcon)
	}
	parts := []string{marker, s.Bold.Render(name)}
	if c.doc.Language != "" {
		parts = append(parts, s.Badge.Render(c.doc.Language))
	}
	return strings.Join(parts, " ")
}

func (c *Component) formatPosition(s *styles.Styles) string {
	if c.doc.LineCount == 0 {
		return ""
	}
	return s.Muted.Render(fmt.Sprintf("Ln %d/%d", max(c.doc.Line, 1), c.doc.LineCount))
}

// formatMessage formats the status message with appropriate styling
func (c *Component) formatMessage(s *styles.Styles) string {
	if c.message == nil {
		return ""
	}

	switch c.message.Type {
	case Success:
		return s.Success.Render(styles.CheckIcon + " " + c.message.Content)
	case Warning:
		return s.Warning.Render(styles.WarningIcon + " " + c.message.Content)
	case Error:
		return s.Error.Render(styles.ErrorIcon + " " + c.message.Content)
	default:
		return s.Info.Render(c.message.Content)
	}
}
