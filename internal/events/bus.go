package events

import (
	"sync"
	"time"
)

// Action describes the kind of mutation that happened.
type Action string

const (
	ActionCreated Action = "created"
	ActionUpdated Action = "updated"
	ActionDeleted Action = "deleted"
)

// Event is broadcast after a collection mutation has been persisted.
// Listeners re-read the named collection; the event itself carries no
// record payload beyond the id.
type Event struct {
	Collection string    `json:"collection"`
	Action     Action    `json:"action"`
	ID         string    `json:"id"`
	Timestamp  time.Time `json:"timestamp"`
}

// Bus fans mutation events out to in-process subscribers. Delivery is
// best-effort, at-most-once: a subscriber whose buffer is full misses
// the event rather than blocking the mutating call.
type Bus struct {
	mu     sync.RWMutex
	subs   map[int]chan Event
	nextID int
}

// NewBus creates an event bus with no subscribers.
func NewBus() *Bus {
	return &Bus{subs: make(map[int]chan Event)}
}

// Subscribe registers a listener. The returned cancel func removes the
// subscription and closes the channel; it is safe to call twice.
func (b *Bus) Subscribe(buffer int) (<-chan Event, func()) {
	if buffer < 1 {
		buffer = 1
	}
	ch := make(chan Event, buffer)

	b.mu.Lock()
	id := b.nextID
	b.nextID++
	b.subs[id] = ch
	b.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			b.mu.Lock()
			_, live := b.subs[id]
			delete(b.subs, id)
			b.mu.Unlock()
			if live {
				close(ch)
			}
		})
	}
	return ch, cancel
}

// Close removes all subscriptions and closes their channels, which
// terminates listener loops ranging over them.
func (b *Bus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	for id, ch := range b.subs {
		delete(b.subs, id)
		close(ch)
	}
}

// Publish delivers the event to every subscriber without blocking.
// Callers must only publish after the corresponding write is durable,
// so any listener reacting to the event observes the new state.
func (b *Bus) Publish(e Event) {
	if e.Timestamp.IsZero() {
		e.Timestamp = time.Now()
	}

	b.mu.RLock()
	defer b.mu.RUnlock()
	for _, ch := range b.subs {
		select {
		case ch <- e:
		default:
		}
	}
}
