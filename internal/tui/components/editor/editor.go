// Package editor wraps a textwidget instance as a Bubble Tea component.
//
// The component owns one model and one widget instance at a time. It
// recreates both when a structural prop changes and forwards content changes
// to Props.OnChange through a trailing debounce built on tea.Tick.
package editor

import (
	"sync/atomic"
	"time"

	"github.com/billie-coop/scribe/internal/languages"
	"github.com/billie-coop/scribe/internal/logging"
	"github.com/billie-coop/scribe/internal/textwidget"
	"github.com/billie-coop/scribe/internal/tui/components/core"
	"github.com/billie-coop/scribe/internal/tui/styles"
	tea "github.com/charmbracelet/bubbletea/v2"
	"go.uber.org/zap"
)

var lastID atomic.Int64

// debounceMsg is delivered when a debounce timer elapses. Only the tick
// whose seq matches the component's pending seq is honoured.
type debounceMsg struct {
	id  int64
	seq uint64
}

// MountErrorMsg reports a failed mount from Init.
type MountErrorMsg struct {
	Err error
}

// Component is the editor widget adapter.
type Component struct {
	id        int64
	lib       textwidget.Library
	container *textwidget.Container
	props     Props
	settings  settings
	backupRef ModelRef

	mounted   bool
	model     textwidget.Model
	widget    textwidget.Instance
	activeRef *ModelRef
	focused   bool

	// debounce state: at most one pending delivery
	seq     uint64
	pending uint64

	// commands produced by content changes, drained by Flush
	queued []tea.Cmd

	generation int
	log        *zap.Logger
}

var _ core.Component = (*Component)(nil)
var _ core.Sizeable = (*Component)(nil)
var _ core.Focusable = (*Component)(nil)

// New creates an unmounted editor.
func New(lib textwidget.Library, props Props) *Component {
	c := &Component{
		id:        lastID.Add(1),
		lib:       lib,
		container: &textwidget.Container{},
		log:       logging.Named("editor"),
	}
	c.applyProps(props)
	return c
}

// Init mounts the editor. A failure is reported as a MountErrorMsg.
func (c *Component) Init() tea.Cmd {
	if c.mounted {
		return nil
	}
	cmd, err := c.Mount()
	if err != nil {
		return func() tea.Msg { return MountErrorMsg{Err: err} }
	}
	return cmd
}

// Mount creates the model and widget. Calling it on a mounted editor is a
// no-op.
func (c *Component) Mount() (tea.Cmd, error) {
	if c.mounted {
		return nil, nil
	}
	if err := c.create(); err != nil {
		return nil, err
	}
	c.mounted = true
	return c.Flush(), nil
}

// Unmount tears down the model and widget. Pending deliveries are dropped.
func (c *Component) Unmount() {
	if !c.mounted {
		return
	}
	c.teardown()
	c.mounted = false
	c.log.Debug("unmounted", zap.Int64("editor", c.id))
}

// SetProps applies new props, the equivalent of a re-render. Callback and
// debounce changes take effect on the next content change; structural
// changes tear down and recreate the widget with the current Code.
func (c *Component) SetProps(props Props) (tea.Cmd, error) {
	prev := c.props
	c.applyProps(props)

	if !c.mounted {
		return nil, nil
	}
	if !structuralChange(prev, props) {
		c.widget.Layout()
		return nil, nil
	}

	c.log.Debug("recreating",
		zap.Int64("editor", c.id),
		zap.String("language", props.Language),
		zap.String("filename", props.Filename))

	c.teardown()
	if err := c.create(); err != nil {
		c.mounted = false
		return nil, err
	}
	return c.Flush(), nil
}

func (c *Component) applyProps(props Props) {
	c.props = props
	c.settings = settings{onChange: props.OnChange, debounce: props.DebounceTime}

	frameW, frameH := styles.Container(props.ClassName, c.focused).GetFrameSize()
	c.container.Width = max(props.Width-frameW, 0)
	c.container.Height = max(props.Height-frameH, 0)
}

func (c *Component) ref() *ModelRef {
	if c.props.ModelRef != nil {
		return c.props.ModelRef
	}
	return &c.backupRef
}

// create builds a fresh model and widget. It is all-or-nothing: when the
// widget fails, the new model is disposed before returning.
func (c *Component) create() error {
	var uri *textwidget.URI
	if c.props.Filename != "" {
		u, err := textwidget.ParseURI(c.props.Filename)
		if err != nil {
			return err
		}
		uri = &u
	}

	language := languages.Resolve(c.props.Language, c.props.Filename)
	model, err := c.lib.CreateModel(c.props.Code, language, uri)
	if err != nil {
		c.log.Error("model creation failed", zap.Int64("editor", c.id), zap.Error(err))
		return err
	}

	opts := defaultOptions().Merge(c.props.EditorOptions)
	opts.Model = model

	widget, err := c.lib.Create(c.container, opts)
	if err != nil {
		model.Dispose()
		c.log.Error("widget creation failed", zap.Int64("editor", c.id), zap.Error(err))
		return err
	}

	c.model = model
	c.widget = widget
	c.activeRef = c.ref()
	c.activeRef.set(model)
	c.generation++

	if c.focused {
		c.queued = append(c.queued, widget.Focus())
	}
	if onChange := c.settings.onChange; onChange != nil {
		c.queued = append(c.queued, onChange(model.Value()))
	}
	widget.OnDidChangeModelContent(c.handleContentChange)

	c.log.Debug("created",
		zap.Int64("editor", c.id),
		zap.String("uri", model.URI().String()),
		zap.String("language", language),
		zap.Int("generation", c.generation))
	return nil
}

// teardown cancels any pending delivery, disposes model then widget, and
// clears the reference slot. Commands queued by the old pair are dropped.
func (c *Component) teardown() {
	c.cancelPending()
	if c.model != nil {
		c.model.Dispose()
	}
	if c.widget != nil {
		c.widget.Dispose()
	}
	if c.activeRef != nil {
		c.activeRef.set(nil)
	}
	c.model = nil
	c.widget = nil
	c.activeRef = nil
	c.queued = nil
}

func (c *Component) handleContentChange() {
	s := c.settings
	if s.onChange == nil {
		return
	}

	c.cancelPending()
	if s.debounce > 0 {
		c.seq++
		c.pending = c.seq
		c.queued = append(c.queued, c.tick(c.seq, s.debounce))
		return
	}
	c.queued = append(c.queued, s.onChange(c.model.Value()))
}

func (c *Component) tick(seq uint64, d time.Duration) tea.Cmd {
	id := c.id
	return tea.Tick(d, func(time.Time) tea.Msg {
		return debounceMsg{id: id, seq: seq}
	})
}

func (c *Component) cancelPending() {
	c.pending = 0
}

// deliver fires the pending callback if seq is still the armed one. The
// callback is read when the timer fires, so one swapped or removed while the
// timer was pending is honoured.
func (c *Component) deliver(seq uint64) tea.Cmd {
	if !c.mounted || c.pending == 0 || seq != c.pending || c.model == nil {
		return nil
	}
	c.cancelPending()
	if c.settings.onChange == nil {
		return nil
	}
	return c.settings.onChange(c.model.Value())
}

// Flush returns the commands queued by content changes since the last call.
// Update flushes on its own; call Flush after editing the model through a
// ModelRef from outside Update.
func (c *Component) Flush() tea.Cmd {
	if len(c.queued) == 0 {
		return nil
	}
	cmds := c.queued
	c.queued = nil
	return tea.Batch(cmds...)
}

// Update routes debounce ticks and forwards everything else to the widget.
func (c *Component) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(debounceMsg); ok {
		if msg.id != c.id {
			return c, nil
		}
		return c, c.deliver(msg.seq)
	}

	if c.widget == nil {
		return c, nil
	}
	cmd := c.widget.Update(msg)
	return c, tea.Batch(cmd, c.Flush())
}

// View renders the container box with the widget inside it.
func (c *Component) View() string {
	body := ""
	if c.widget != nil {
		body = c.widget.View()
	}
	return styles.Container(c.props.ClassName, c.focused).Render(body)
}

// SetSize resizes the container without recreating the widget.
func (c *Component) SetSize(width, height int) tea.Cmd {
	props := c.props
	props.Width, props.Height = width, height
	c.applyProps(props)
	if c.widget != nil {
		c.widget.Layout()
	}
	return nil
}

func (c *Component) Focus() tea.Cmd {
	c.focused = true
	if c.widget == nil {
		return nil
	}
	return c.widget.Focus()
}

func (c *Component) Blur() tea.Cmd {
	c.focused = false
	if c.widget != nil {
		c.widget.Blur()
	}
	return nil
}

func (c *Component) Focused() bool { return c.focused }

// Mounted reports whether a model and widget are live.
func (c *Component) Mounted() bool { return c.mounted }

// Props returns the props last applied.
func (c *Component) Props() Props { return c.props }

// ModelRef returns the slot holding the live model.
func (c *Component) ModelRef() *ModelRef { return c.ref() }

// Widget returns the live widget instance, or nil when unmounted.
func (c *Component) Widget() textwidget.Instance { return c.widget }

// Generation counts how many model/widget pairs have been created.
func (c *Component) Generation() int { return c.generation }

// Pending reports whether a debounced delivery is armed.
func (c *Component) Pending() bool { return c.pending != 0 }

func defaultOptions() textwidget.Options {
	return textwidget.Options{
		Minimap:    textwidget.MinimapOptions{Enabled: false},
		FontFamily: CodeFontFamily,
	}
}
