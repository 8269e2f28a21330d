package tui

import (
	"os"

	"github.com/billie-coop/scribe/internal/tui/events"
	tea "github.com/charmbracelet/bubbletea/v2"
	"go.uber.org/zap"
)

// listenForEvents listens for events from the event broker
func (m *Model) listenForEvents() tea.Cmd {
	ch := m.eventSub
	return func() tea.Msg {
		event, ok := <-ch
		if !ok {
			return nil
		}
		return event
	}
}

// publishDiskChanges runs on the watcher's goroutine.
func (m *Model) publishDiskChanges(paths []string) {
	for _, path := range paths {
		payload := events.FileChangedPayload{Path: path}
		if info, err := os.Stat(path); err == nil {
			payload.ModTime = info.ModTime()
		}
		m.eventBroker.Publish(events.Event{Type: events.FileChangedOnDisk, Payload: payload})
	}
}

// handleEvent processes events from the event broker
func (m *Model) handleEvent(event events.Event) tea.Cmd {
	switch event.Type {
	case events.FileChangedOnDisk:
		if payload, ok := event.Payload.(events.FileChangedPayload); ok {
			return m.handleDiskChange(payload)
		}

	case events.DocumentSavedEvent:
		m.syncStatus()
		return m.statusBar.ShowSuccess("saved " + m.doc.Name())

	case events.StatusMessageEvent:
		if payload, ok := event.Payload.(events.StatusMessagePayload); ok {
			switch payload.Type {
			case "error":
				return m.statusBar.ShowError(payload.Message)
			case "warning":
				return m.statusBar.ShowWarning(payload.Message)
			case "success":
				return m.statusBar.ShowSuccess(payload.Message)
			default:
				return m.statusBar.ShowInfo(payload.Message)
			}
		}

	case events.ErrorMessageEvent:
		if payload, ok := event.Payload.(events.StatusMessagePayload); ok {
			return m.statusBar.ShowError(payload.Message)
		}
	}
	return nil
}

// handleDiskChange reloads the document when it has no unsaved edits.
// Changes written by our own save are recognised by their mtime.
func (m *Model) handleDiskChange(payload events.FileChangedPayload) tea.Cmd {
	if payload.Path != m.doc.Path() {
		return nil
	}
	if !payload.ModTime.IsZero() && payload.ModTime.Equal(m.doc.ModTime()) {
		return nil
	}

	m.syncDocument()
	if m.doc.Dirty() {
		m.log.Info("disk change ignored, document dirty", zap.String("path", payload.Path))
		return m.statusBar.ShowWarning(m.doc.Name() + " changed on disk; keeping your edits")
	}

	text, changed, err := m.doc.Reload()
	if err != nil {
		m.log.Warn("reload failed", zap.String("path", payload.Path), zap.Error(err))
		return m.statusBar.ShowError("reload failed: " + err.Error())
	}
	if !changed {
		return nil
	}

	// The edit goes through the model so the normal debounced delivery
	// updates the preview.
	if model := m.ref.Current(); model != nil {
		model.SetValue(text)
	}
	m.eventBroker.Publish(events.Event{
		Type:    events.DocumentReloadedEvent,
		Payload: events.DocumentPayload{Path: payload.Path, Bytes: len(text)},
	})
	m.log.Info("reloaded", zap.String("path", payload.Path))
	m.syncStatus()
	return tea.Batch(m.editor.Flush(), m.statusBar.ShowInfo("reloaded "+m.doc.Name()))
}
