package events

import (
	"sync"
)

// Broker fans document and UI events out to subscribers. Delivery never
// blocks: a full subscriber channel drops the event.
type Broker struct {
	subscribers map[EventType][]chan Event
	mu          sync.RWMutex
	bufferSize  int
}

// wildcard subscribes to every event type.
const wildcard EventType = "*"

// NewBroker creates a new event broker
func NewBroker() *Broker {
	return &Broker{
		subscribers: make(map[EventType][]chan Event),
		bufferSize:  10,
	}
}

// Subscribe creates a subscription to specific event types
func (b *Broker) Subscribe(eventTypes ...EventType) <-chan Event {
	b.mu.Lock()
	defer b.mu.Unlock()

	ch := make(chan Event, b.bufferSize)

	// If no specific types provided, subscribe to all
	if len(eventTypes) == 0 {
		eventTypes = []EventType{wildcard}
	}

	for _, eventType := range eventTypes {
		b.subscribers[eventType] = append(b.subscribers[eventType], ch)
	}

	return ch
}

// Unsubscribe removes a subscription. The channel is closed once it is no
// longer registered under any event type.
func (b *Broker) Unsubscribe(ch <-chan Event, eventTypes ...EventType) {
	b.mu.Lock()
	defer b.mu.Unlock()

	// If no specific types provided, unsubscribe from all
	if len(eventTypes) == 0 {
		for eventType := range b.subscribers {
			eventTypes = append(eventTypes, eventType)
		}
	}

	var removed chan Event
	for _, eventType := range eventTypes {
		if c := b.removeChannel(eventType, ch); c != nil {
			removed = c
		}
	}
	if removed != nil && !b.registered(removed) {
		close(removed)
	}
}

// Publish sends an event to subscribers of its type and to wildcard
// subscribers. It never blocks.
func (b *Broker) Publish(event Event) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	send(b.subscribers[event.Type], event)
	send(b.subscribers[wildcard], event)
}

func send(subscribers []chan Event, event Event) {
	for _, ch := range subscribers {
		select {
		case ch <- event:
		default:
			// Channel full, drop
		}
	}
}

// removeChannel removes a channel from a specific event type's subscribers
// and returns it, or nil when it was not registered there.
func (b *Broker) removeChannel(eventType EventType, target <-chan Event) chan Event {
	var removed chan Event
	subscribers := b.subscribers[eventType]
	for i, ch := range subscribers {
		if ch == target {
			b.subscribers[eventType] = append(subscribers[:i], subscribers[i+1:]...)
			removed = ch
			break
		}
	}

	// Clean up empty subscriber lists
	if len(b.subscribers[eventType]) == 0 {
		delete(b.subscribers, eventType)
	}
	return removed
}

func (b *Broker) registered(target chan Event) bool {
	for _, subscribers := range b.subscribers {
		for _, ch := range subscribers {
			if ch == target {
				return true
			}
		}
	}
	return false
}

// Clear removes all subscriptions
func (b *Broker) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()

	closed := make(map[chan Event]struct{})
	for _, subscribers := range b.subscribers {
		for _, ch := range subscribers {
			if _, ok := closed[ch]; ok {
				continue
			}
			closed[ch] = struct{}{}
			close(ch)
		}
	}

	b.subscribers = make(map[EventType][]chan Event)
}
