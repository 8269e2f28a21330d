package events

import "time"

// EventType identifies the type of event
type EventType string

const (
	// Document events
	DocumentChangedEvent  EventType = "document.changed"
	DocumentSavedEvent    EventType = "document.saved"
	DocumentReloadedEvent EventType = "document.reloaded"
	FileChangedOnDisk     EventType = "document.disk_changed"

	// Editor events
	LanguageChangedEvent EventType = "editor.language"

	// UI events
	StatusMessageEvent EventType = "ui.status"
	ErrorMessageEvent  EventType = "ui.error"
	ThemeChangedEvent  EventType = "ui.theme"
)

// Event represents an event in the system
type Event struct {
	Type    EventType
	Payload interface{}
}

// Event payload types

type DocumentPayload struct {
	Path  string
	Bytes int
	Dirty bool
}

type FileChangedPayload struct {
	Path    string
	ModTime time.Time
}

type LanguagePayload struct {
	Language string
}

type StatusMessagePayload struct {
	Message string
	Type    string // "info", "warning", "error", "success"
}

type ThemePayload struct {
	Name string
}
