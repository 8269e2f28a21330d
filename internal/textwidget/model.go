package textwidget

import (
	"strings"
	"sync"
)

// Model is the in-memory document backing one or more instances.
type Model interface {
	URI() URI
	LanguageID() string
	Value() string
	// SetValue replaces the whole content and notifies attached instances.
	SetValue(text string)
	VersionID() int
	IsDisposed() bool
	Dispose()
}

// Subscription detaches a listener when disposed.
type Subscription interface {
	Dispose()
}

type subscription struct {
	once    sync.Once
	dispose func()
}

func (s *subscription) Dispose() {
	s.once.Do(s.dispose)
}

// listeners is an ordered listener set. Removal keeps registration order.
type listeners struct {
	mu     sync.Mutex
	nextID int
	fns    map[int]func()
	order  []int
}

func (l *listeners) add(fn func()) Subscription {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.fns == nil {
		l.fns = make(map[int]func())
	}
	id := l.nextID
	l.nextID++
	l.fns[id] = fn
	l.order = append(l.order, id)
	return &subscription{dispose: func() { l.remove(id) }}
}

func (l *listeners) remove(id int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.fns, id)
	for i, oid := range l.order {
		if oid == id {
			l.order = append(l.order[:i], l.order[i+1:]...)
			break
		}
	}
}

func (l *listeners) clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.fns = nil
	l.order = nil
}

func (l *listeners) len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.order)
}

// fire calls every listener outside the lock, so listeners may subscribe or
// dispose while being notified.
func (l *listeners) fire() {
	l.mu.Lock()
	fns := make([]func(), 0, len(l.order))
	for _, id := range l.order {
		fns = append(fns, l.fns[id])
	}
	l.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

type textModel struct {
	uri        URI
	languageID string

	mu       sync.RWMutex
	value    string
	version  int
	disposed bool

	changes   listeners
	onDispose func()
}

func newTextModel(text, languageID string, uri URI, onDispose func()) *textModel {
	return &textModel{
		uri:        uri,
		languageID: languageID,
		value:      normalizeEOL(text),
		version:    1,
		onDispose:  onDispose,
	}
}

func (m *textModel) URI() URI           { return m.uri }
func (m *textModel) LanguageID() string { return m.languageID }

func (m *textModel) Value() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.value
}

func (m *textModel) VersionID() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.version
}

func (m *textModel) IsDisposed() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.disposed
}

func (m *textModel) SetValue(text string) {
	m.applyValue(normalizeEOL(text))
}

// applyValue stores text and notifies listeners when it actually changed.
func (m *textModel) applyValue(text string) {
	m.mu.Lock()
	if m.disposed || m.value == text {
		m.mu.Unlock()
		return
	}
	m.value = text
	m.version++
	m.mu.Unlock()

	m.changes.fire()
}

func (m *textModel) onDidChangeContent(fn func()) Subscription {
	return m.changes.add(fn)
}

func (m *textModel) Dispose() {
	m.mu.Lock()
	if m.disposed {
		m.mu.Unlock()
		return
	}
	m.disposed = true
	m.mu.Unlock()

	m.changes.clear()
	if m.onDispose != nil {
		m.onDispose()
	}
}

func normalizeEOL(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}
