// Package tui is the scribe application: an editor pane, an optional
// preview pane and a status bar, wired to the open document.
package tui

import (
	"errors"

	"github.com/billie-coop/scribe/internal/config"
	"github.com/billie-coop/scribe/internal/document"
	"github.com/billie-coop/scribe/internal/languages"
	"github.com/billie-coop/scribe/internal/logging"
	"github.com/billie-coop/scribe/internal/textwidget"
	"github.com/billie-coop/scribe/internal/tui/components/dialog"
	"github.com/billie-coop/scribe/internal/tui/components/editor"
	"github.com/billie-coop/scribe/internal/tui/components/preview"
	"github.com/billie-coop/scribe/internal/tui/components/status"
	"github.com/billie-coop/scribe/internal/tui/events"
	"github.com/billie-coop/scribe/internal/tui/styles"
	"github.com/billie-coop/scribe/internal/watcher"
	"github.com/charmbracelet/bubbles/v2/key"
	tea "github.com/charmbracelet/bubbletea/v2"
	"go.uber.org/zap"
)

// Options configure a new Model.
type Options struct {
	// Path of the file to edit. Empty opens an untitled buffer.
	Path string
	// Language overrides detection from the file name.
	Language string
	ReadOnly bool

	Config *config.Config

	// Library defaults to the textarea-backed widget library.
	Library textwidget.Library
	// Broker defaults to a private broker.
	Broker *events.Broker
}

// Model is the root Bubble Tea model.
type Model struct {
	width  int
	height int

	cfg  *config.Config
	keys KeyMap
	doc  *document.Document

	// Components
	editor     *editor.Component
	preview    *preview.Component
	statusBar  *status.Component
	quitDialog *dialog.QuitDialog

	ref            editor.ModelRef
	language       string
	showPreview    bool
	previewFocused bool

	// Event system
	eventBroker *events.Broker
	eventSub    <-chan events.Event

	watcher *watcher.FileWatcher
	log     *zap.Logger
}

// New opens the document and builds the component tree. The editor is
// mounted by Init.
func New(opts Options) (*Model, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	lib := opts.Library
	if lib == nil {
		lib = textwidget.NewTextarea()
	}
	broker := opts.Broker
	if broker == nil {
		broker = events.NewBroker()
	}

	styles.SetDefaultManager(styles.NewManager(cfg.Theme))

	doc, err := document.Open(opts.Path)
	if err != nil {
		return nil, err
	}

	m := &Model{
		cfg:         cfg,
		keys:        DefaultKeyMap(),
		doc:         doc,
		preview:     preview.New(),
		statusBar:   status.New(),
		quitDialog:  dialog.NewQuitDialog(),
		language:    languages.Resolve(opts.Language, opts.Path),
		showPreview: cfg.Preview,
		eventBroker: broker,
		log:         logging.Named("tui"),
	}

	m.editor = editor.New(lib, editor.Props{
		ClassName:    styles.ClassBordered,
		Code:         doc.Text(),
		Language:     languages.Normalize(opts.Language),
		Filename:     opts.Path,
		DebounceTime: cfg.Debounce(),
		EditorOptions: textwidget.Options{
			Minimap:     textwidget.MinimapOptions{Enabled: cfg.Minimap},
			LineNumbers: cfg.LineNumbers,
			TabSize:     cfg.TabSize,
			ReadOnly:    opts.ReadOnly,
		},
		OnChange: m.onChange,
		ModelRef: &m.ref,
	})

	m.eventSub = broker.Subscribe(
		events.FileChangedOnDisk,
		events.DocumentSavedEvent,
		events.StatusMessageEvent,
		events.ErrorMessageEvent,
	)
	m.syncStatus()
	return m, nil
}

// onChange is the editor's debounced callback.
func (m *Model) onChange(text string) tea.Cmd {
	return func() tea.Msg {
		return contentDeliveredMsg{text: text}
	}
}

// Init mounts the editor, starts the file watcher and begins listening
// for broker events.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		m.editor.Init(),
		m.editor.Focus(),
		m.listenForEvents(),
	}

	if path := m.doc.Path(); path != "" {
		if err := m.startWatcher(path); err != nil {
			m.log.Warn("watcher not started", zap.Error(err))
			cmds = append(cmds, m.statusBar.ShowWarning("not watching file: "+err.Error()))
		}
	}

	return tea.Batch(cmds...)
}

func (m *Model) startWatcher(path string) error {
	m.watcher = watcher.NewWatcherWithConfig(watcher.Config{
		DebounceDelay: m.cfg.WatchDebounce(),
	}, m.publishDiskChanges)
	return m.watcher.Watch(path)
}

// Close stops background work. Call it after the program exits.
func (m *Model) Close() {
	if m.watcher != nil {
		m.watcher.Stop()
	}
	m.editor.Unmount()
	m.eventBroker.Unsubscribe(m.eventSub)
}

// Update handles all TUI updates and routes to components
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle events that come as messages
	if event, ok := msg.(events.Event); ok {
		return m, tea.Batch(m.handleEvent(event), m.listenForEvents())
	}

	// If the dialog is open, it owns the keyboard
	if m.quitDialog.IsOpen() {
		if _, ok := msg.(tea.KeyMsg); ok {
			_, cmd := m.quitDialog.Update(msg)
			return m, cmd
		}
	}

	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		cmds = append(cmds, m.resizeComponents())

	case contentDeliveredMsg:
		return m, m.handleDelivered(msg.text)

	case savedMsg:
		return m, m.handleSaved(msg)

	case dialog.ResultMsg:
		return m, m.handleQuitChoice(msg)

	case editor.MountErrorMsg:
		m.log.Error("editor mount failed", zap.Error(msg.Err))
		return m, m.statusBar.ShowError(msg.Err.Error())

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Save):
			return m, m.save(false)
		case key.Matches(msg, m.keys.Quit):
			return m, m.requestQuit()
		case key.Matches(msg, m.keys.TogglePreview):
			return m, m.togglePreview()
		case key.Matches(msg, m.keys.SwitchFocus):
			return m, m.switchFocus()
		case key.Matches(msg, m.keys.CycleLanguage):
			return m, m.cycleLanguage()
		case key.Matches(msg, m.keys.CycleTheme):
			return m, m.cycleTheme()
		}

		// Keys go to the focused pane only
		var cmd tea.Cmd
		if m.previewFocused {
			_, cmd = m.preview.Update(msg)
		} else {
			_, cmd = m.editor.Update(msg)
		}
		m.syncStatus()
		return m, cmd
	}

	var cmd tea.Cmd
	_, cmd = m.editor.Update(msg)
	cmds = append(cmds, cmd)

	_, cmd = m.preview.Update(msg)
	cmds = append(cmds, cmd)

	_, cmd = m.statusBar.Update(msg)
	cmds = append(cmds, cmd)

	m.syncStatus()
	return m, tea.Batch(cmds...)
}

// handleDelivered records a debounced value: the document, the preview and
// the editor's Code prop all follow it.
func (m *Model) handleDelivered(text string) tea.Cmd {
	m.doc.SetText(text)
	m.preview.SetContent(text, m.language)

	props := m.editor.Props()
	props.Code = text
	cmd, err := m.editor.SetProps(props)
	if err != nil {
		return m.statusBar.ShowError(err.Error())
	}

	m.eventBroker.Publish(events.Event{
		Type: events.DocumentChangedEvent,
		Payload: events.DocumentPayload{
			Path:  m.doc.Path(),
			Bytes: len(text),
			Dirty: m.doc.Dirty(),
		},
	})
	m.syncStatus()

	if m.cfg.Autosave && m.doc.Path() != "" && m.doc.Dirty() {
		return tea.Batch(cmd, m.save(false))
	}
	return cmd
}

// liveText is the widget model's current value, which may be ahead of the
// last delivered value while a debounce is pending.
func (m *Model) liveText() string {
	if model := m.ref.Current(); model != nil {
		return model.Value()
	}
	return m.doc.Text()
}

// syncDocument pushes undelivered edits into the document before saving or
// checking for unsaved changes.
func (m *Model) syncDocument() {
	m.doc.SetText(m.liveText())
}

func (m *Model) save(quit bool) tea.Cmd {
	m.syncDocument()
	doc := m.doc
	broker := m.eventBroker

	return func() tea.Msg {
		if err := doc.Save(); err != nil {
			return savedMsg{err: err, quit: quit}
		}
		broker.Publish(events.Event{
			Type: events.DocumentSavedEvent,
			Payload: events.DocumentPayload{
				Path:  doc.Path(),
				Bytes: len(doc.Text()),
			},
		})
		return savedMsg{quit: quit}
	}
}

func (m *Model) handleSaved(msg savedMsg) tea.Cmd {
	m.syncStatus()
	if msg.err != nil {
		m.log.Error("save failed", zap.Error(msg.err))
		if errors.Is(msg.err, document.ErrNoPath) {
			return m.statusBar.ShowError("untitled buffer: start scribe with a file name to save")
		}
		return m.statusBar.ShowError("save failed: " + msg.err.Error())
	}
	if msg.quit {
		return tea.Quit
	}
	return nil
}

func (m *Model) requestQuit() tea.Cmd {
	m.syncDocument()
	if !m.doc.Dirty() {
		return tea.Quit
	}
	m.editor.Blur()
	return m.quitDialog.OpenFor(m.doc.Name())
}

func (m *Model) handleQuitChoice(msg dialog.ResultMsg) tea.Cmd {
	switch msg.Action {
	case dialog.ActionSave:
		return m.save(true)
	case dialog.ActionDiscard:
		return tea.Quit
	default:
		return m.focusEditor()
	}
}

func (m *Model) togglePreview() tea.Cmd {
	m.showPreview = !m.showPreview
	var cmd tea.Cmd
	if !m.showPreview && m.previewFocused {
		cmd = m.focusEditor()
	}
	return tea.Batch(cmd, m.resizeComponents())
}

func (m *Model) switchFocus() tea.Cmd {
	if !m.showPreview || m.previewFocused {
		return m.focusEditor()
	}
	m.previewFocused = true
	m.editor.Blur()
	return m.preview.Focus()
}

func (m *Model) focusEditor() tea.Cmd {
	m.previewFocused = false
	m.preview.Blur()
	return m.editor.Focus()
}

// cycleLanguage recreates the editor under the next language, seeded with
// the live text so no keystrokes are lost.
func (m *Model) cycleLanguage() tea.Cmd {
	next := languages.Next(m.language)

	props := m.editor.Props()
	props.Language = next
	props.Code = m.liveText()

	cmd, err := m.editor.SetProps(props)
	if err != nil {
		m.log.Error("language change failed", zap.String("language", next), zap.Error(err))
		return m.statusBar.ShowError(err.Error())
	}

	m.language = next
	m.eventBroker.Publish(events.Event{
		Type:    events.LanguageChangedEvent,
		Payload: events.LanguagePayload{Language: next},
	})
	m.syncStatus()
	return tea.Batch(cmd, m.statusBar.ShowInfo("language: "+next))
}

func (m *Model) cycleTheme() tea.Cmd {
	manager := styles.DefaultManager()
	names := manager.List()
	current := manager.Current().Name

	next := names[0]
	for i, name := range names {
		if name == current {
			next = names[(i+1)%len(names)]
			break
		}
	}
	if err := manager.SetTheme(next); err != nil {
		return m.statusBar.ShowError(err.Error())
	}

	m.preview.Refresh()
	m.eventBroker.Publish(events.Event{
		Type:    events.ThemeChangedEvent,
		Payload: events.ThemePayload{Name: next},
	})
	return m.statusBar.ShowInfo("theme: " + next)
}

func (m *Model) syncStatus() {
	info := status.DocumentInfo{
		Name:     m.doc.Name(),
		Language: m.language,
		Dirty:    m.doc.Dirty(),
	}
	if w := m.editor.Widget(); w != nil {
		info.Line = w.CursorLine()
		info.LineCount = w.LineCount()
	}
	m.statusBar.SetDocument(info)
}

// Language is the resolved language of the live editor.
func (m *Model) Language() string {
	return m.language
}

// Document returns the open document.
func (m *Model) Document() *document.Document {
	return m.doc
}
