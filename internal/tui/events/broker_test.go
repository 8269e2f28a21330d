package events

import (
	"testing"
	"time"
)

func receive(t *testing.T, ch <-chan Event) Event {
	t.Helper()
	select {
	case e := <-ch:
		return e
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for event")
		return Event{}
	}
}

func TestBroker_TypedAndWildcard(t *testing.T) {
	b := NewBroker()
	saved := b.Subscribe(DocumentSavedEvent)
	all := b.Subscribe()

	b.Publish(Event{Type: DocumentSavedEvent, Payload: DocumentPayload{Path: "a.go"}})

	if e := receive(t, saved); e.Payload.(DocumentPayload).Path != "a.go" {
		t.Errorf("unexpected payload %+v", e.Payload)
	}
	if e := receive(t, all); e.Type != DocumentSavedEvent {
		t.Errorf("wildcard got %s", e.Type)
	}

	b.Publish(Event{Type: StatusMessageEvent})
	select {
	case e := <-saved:
		t.Fatalf("typed subscriber received %s", e.Type)
	default:
	}
	receive(t, all)
}

func TestBroker_FullChannelDropsEvents(t *testing.T) {
	b := NewBroker()
	ch := b.Subscribe(FileChangedOnDisk)

	for i := 0; i < b.bufferSize+5; i++ {
		b.Publish(Event{Type: FileChangedOnDisk})
	}
	if len(ch) != b.bufferSize {
		t.Errorf("expected %d buffered events, got %d", b.bufferSize, len(ch))
	}
}

func TestBroker_UnsubscribeClosesChannel(t *testing.T) {
	b := NewBroker()
	ch := b.Subscribe(ThemeChangedEvent)
	b.Unsubscribe(ch)

	if _, ok := <-ch; ok {
		t.Fatal("expected closed channel")
	}
	b.Publish(Event{Type: ThemeChangedEvent})
}

func TestBroker_MultiTypeSubscriptionClosesOnce(t *testing.T) {
	b := NewBroker()
	ch := b.Subscribe(DocumentSavedEvent, DocumentReloadedEvent)

	b.Unsubscribe(ch, DocumentSavedEvent)
	b.Publish(Event{Type: DocumentReloadedEvent})
	if e := receive(t, ch); e.Type != DocumentReloadedEvent {
		t.Fatalf("got %s", e.Type)
	}

	b.Unsubscribe(ch)
	if _, ok := <-ch; ok {
		t.Fatal("expected closed channel")
	}

	other := b.Subscribe(StatusMessageEvent, ErrorMessageEvent)
	b.Clear()
	if _, ok := <-other; ok {
		t.Fatal("expected Clear to close the channel")
	}
}
