package events

import (
	"testing"
	"time"
)

func TestPublishDeliversToSubscribers(t *testing.T) {
	bus := NewBus()
	first, cancelFirst := bus.Subscribe(4)
	defer cancelFirst()
	second, cancelSecond := bus.Subscribe(4)
	defer cancelSecond()

	bus.Publish(Event{Collection: "faculties", Action: ActionCreated, ID: "f1"})

	for name, ch := range map[string]<-chan Event{"first": first, "second": second} {
		select {
		case event := <-ch:
			if event.Collection != "faculties" || event.Action != ActionCreated || event.ID != "f1" {
				t.Fatalf("%s subscriber got unexpected event: %+v", name, event)
			}
			if event.Timestamp.IsZero() {
				t.Fatalf("%s subscriber got event without timestamp", name)
			}
		default:
			t.Fatalf("%s subscriber received nothing", name)
		}
	}
}

func TestPublishDoesNotBlockOnFullSubscriber(t *testing.T) {
	bus := NewBus()
	ch, cancel := bus.Subscribe(1)
	defer cancel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		// Second and third publishes overflow the buffer; they must be
		// dropped, not block the caller.
		for i := 0; i < 3; i++ {
			bus.Publish(Event{Collection: "books", Action: ActionUpdated, ID: "b1"})
		}
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Publish blocked on a full subscriber")
	}

	if len(ch) != 1 {
		t.Fatalf("expected exactly 1 buffered event, got %d", len(ch))
	}
}

func TestCancelIsIdempotent(t *testing.T) {
	bus := NewBus()
	ch, cancel := bus.Subscribe(1)

	cancel()
	cancel() // must not panic

	if _, ok := <-ch; ok {
		t.Fatal("expected channel to be closed after cancel")
	}

	// Publishing after cancel reaches nobody but must not panic
	bus.Publish(Event{Collection: "theme", Action: ActionUpdated, ID: "dark"})
}

func TestCloseTerminatesSubscribers(t *testing.T) {
	bus := NewBus()
	ch, cancel := bus.Subscribe(1)

	bus.Close()

	if _, ok := <-ch; ok {
		t.Fatal("expected channel to be closed after bus Close")
	}

	// Cancel after Close must not double-close
	cancel()
}

func TestSubscribeMinimumBuffer(t *testing.T) {
	bus := NewBus()
	ch, cancel := bus.Subscribe(0)
	defer cancel()

	bus.Publish(Event{Collection: "semesters", Action: ActionDeleted, ID: "s1"})

	select {
	case event := <-ch:
		if event.ID != "s1" {
			t.Fatalf("unexpected event: %+v", event)
		}
	default:
		t.Fatal("expected buffer to hold at least one event")
	}
}
