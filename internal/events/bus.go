package events

import (
	"log"
	"sync"
)

// Event is the closed set of cross-component notifications.
type Event interface {
	isEvent()
}

// BadgeUpdated fires when the pending-requests count changes.
type BadgeUpdated struct {
	Count int
}

// ConnectionSynced fires when a queued remote mutation is confirmed.
type ConnectionSynced struct {
	ConnectionID string
}

// SyncFailed fires when a queued remote mutation goes terminal.
type SyncFailed struct {
	ConnectionID string
	Err          error
}

func (BadgeUpdated) isEvent()     {}
func (ConnectionSynced) isEvent() {}
func (SyncFailed) isEvent()       {}

// Bus delivers events to subscribers over buffered channels. Publish never
// blocks: a subscriber that stops draining loses events rather than
// stalling the publisher.
type Bus struct {
	mu          sync.RWMutex
	nextID      int
	subscribers map[int]chan Event
	bufferSize  int
	closed      bool
}

func NewBus(bufferSize int) *Bus {
	if bufferSize <= 0 {
		bufferSize = 16
	}
	return &Bus{
		subscribers: make(map[int]chan Event),
		bufferSize:  bufferSize,
	}
}

// Subscribe registers a listener and returns its channel plus an
// unsubscribe func. Unsubscribing closes the channel. Subscribing to a
// closed bus yields an already-closed channel.
func (b *Bus) Subscribe() (<-chan Event, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		ch := make(chan Event)
		close(ch)
		return ch, func() {}
	}

	id := b.nextID
	b.nextID++
	ch := make(chan Event, b.bufferSize)
	b.subscribers[id] = ch

	unsubscribe := func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		if sub, ok := b.subscribers[id]; ok {
			delete(b.subscribers, id)
			close(sub)
		}
	}

	return ch, unsubscribe
}

func (b *Bus) Publish(event Event) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed {
		return
	}

	for _, ch := range b.subscribers {
		select {
		case ch <- event:
		default:
			log.Printf("event subscriber buffer full, dropping %T", event)
		}
	}
}

// Close shuts the bus down and closes every subscriber channel.
func (b *Bus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}
	b.closed = true
	for id, ch := range b.subscribers {
		delete(b.subscribers, id)
		close(ch)
	}
}
