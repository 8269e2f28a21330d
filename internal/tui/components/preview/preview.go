// Package preview renders the editor's last delivered text: markdown through
// glamour, everything else highlighted by chroma.
package preview

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/billie-coop/scribe/internal/languages"
	"github.com/billie-coop/scribe/internal/tui/components/core"
	"github.com/billie-coop/scribe/internal/tui/styles"
	"github.com/charmbracelet/bubbles/v2/viewport"
	tea "github.com/charmbracelet/bubbletea/v2"
)

// Component is a scrollable, read-only view of the document.
type Component struct {
	core.SizeableBase
	core.FocusableBase

	viewport viewport.Model
	text     string
	language string
	rendered string
	renders  int
}

var (
	_ core.Component = (*Component)(nil)
	_ core.Sizeable  = (*Component)(nil)
	_ core.Focusable = (*Component)(nil)
)

func New() *Component {
	vp := viewport.New()
	vp.MouseWheelEnabled = true
	return &Component{viewport: vp}
}

func (c *Component) Init() tea.Cmd {
	return nil
}

// Update scrolls the viewport while the pane has focus.
func (c *Component) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if !c.Focused() {
		return c, nil
	}
	var cmd tea.Cmd
	c.viewport, cmd = c.viewport.Update(msg)
	return c, cmd
}

func (c *Component) SetSize(width, height int) tea.Cmd {
	c.SizeableBase.SetSize(width, height)
	c.viewport = viewport.New(
		viewport.WithWidth(width),
		viewport.WithHeight(height),
	)
	c.viewport.MouseWheelEnabled = true
	c.refresh()
	return nil
}

// SetContent replaces the previewed text. Identical input is not re-rendered.
func (c *Component) SetContent(text, language string) {
	if text == c.text && language == c.language && c.rendered != "" {
		return
	}
	c.text = text
	c.language = language
	c.refresh()
}

// Refresh re-renders the current text, e.g. after a theme change.
func (c *Component) Refresh() {
	c.refresh()
}

// Text is the most recent text handed to SetContent.
func (c *Component) Text() string {
	return c.text
}

// Renders counts full renders; used to check that unchanged input is cached.
func (c *Component) Renders() int {
	return c.renders
}

func (c *Component) View() string {
	if c.text == "" {
		return styles.CurrentTheme().S().PreviewEmpty.
			Width(c.Width).
			Height(c.Height).
			Render("nothing to preview")
	}
	return c.viewport.View()
}

func (c *Component) refresh() {
	if c.text == "" {
		c.rendered = ""
		c.viewport.SetContent("")
		return
	}
	c.renders++
	if languages.IsMarkdown(c.language) {
		c.rendered = renderMarkdown(c.text, c.Width)
	} else {
		c.rendered = Highlight(c.text, c.language)
	}
	c.viewport.SetContent(c.rendered)
}

func renderMarkdown(text string, width int) string {
	if width <= 0 {
		width = 80
	}
	r, err := styles.GetMarkdownRenderer(width)
	if err != nil {
		return text
	}
	out, err := r.Render(text)
	if err != nil {
		return text
	}
	return strings.TrimRight(out, "\n")
}

// Highlight colours text with the lexer for language using the current
// theme. On any chroma failure the text is returned unchanged.
func Highlight(text, language string) string {
	lex := chroma.Coalesce(languages.Lexer(language))
	fmtr := formatters.Get("terminal16m")
	if fmtr == nil {
		fmtr = formatters.Fallback
	}
	it, err := lex.Tokenise(nil, text)
	if err != nil {
		return text
	}
	var buf strings.Builder
	if err := fmtr.Format(&buf, styles.ChromaStyle(), it); err != nil {
		return text
	}
	return strings.TrimRight(buf.String(), "\n")
}
