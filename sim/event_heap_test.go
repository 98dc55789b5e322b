package sim

import (
	"testing"
)

// TestEventQueue_TimestampOrdering tests that events are processed in timestamp order
func TestEventQueue_TimestampOrdering(t *testing.T) {
	q := NewEventQueue()

	// Add events with different timestamps in random order
	q.Schedule(NewArrivalEvent(100, 0))
	q.Schedule(NewArrivalEvent(50, 1))
	q.Schedule(NewCompletionEvent(150, 2))

	// Should be popped in timestamp order: 50, 100, 150
	for _, want := range []int64{50, 100, 150} {
		got := q.PopNext()
		if got.Timestamp() != want {
			t.Errorf("event timestamp = %d, want %d", got.Timestamp(), want)
		}
	}

	if !q.Empty() {
		t.Errorf("queue should be empty, len = %d", q.Len())
	}
}

// TestEventQueue_CompletionBeforeArrival tests same-timestamp events use type priority
func TestEventQueue_CompletionBeforeArrival(t *testing.T) {
	q := NewEventQueue()

	// Arrival pushed first, completion second, same instant
	q.Schedule(NewArrivalEvent(100, 1))
	q.Schedule(NewCompletionEvent(100, 2))

	first := q.PopNext()
	if first.Type() != EventTypeCompletion {
		t.Errorf("first event type = %s, want Completion", first.Type())
	}
	second := q.PopNext()
	if second.Type() != EventTypeArrival {
		t.Errorf("second event type = %s, want Arrival", second.Type())
	}
}

// TestEventQueue_InsertionOrderTieBreak tests equal (time, type) pairs pop in push order
func TestEventQueue_InsertionOrderTieBreak(t *testing.T) {
	q := NewEventQueue()
	for h := 9; h >= 0; h-- {
		q.Schedule(NewArrivalEvent(7, Handle(h)))
	}
	for want := 9; want >= 0; want-- {
		got := q.PopNext()
		if got.Handle() != Handle(want) {
			t.Fatalf("handle = %d, want %d", got.Handle(), want)
		}
	}
}

func TestEventQueue_InterleavedTieBreak(t *testing.T) {
	q := NewEventQueue()
	q.Schedule(NewArrivalEvent(5, 0))
	q.Schedule(NewCompletionEvent(5, 1))
	q.Schedule(NewArrivalEvent(5, 2))
	q.Schedule(NewCompletionEvent(5, 3))
	q.Schedule(NewCompletionEvent(4, 4))

	want := []Handle{4, 1, 3, 0, 2}
	for i, h := range want {
		got := q.PopNext()
		if got.Handle() != h {
			t.Errorf("pop %d: handle = %d, want %d", i, got.Handle(), h)
		}
	}
}

func TestEventQueue_Empty_PopAndPeekReturnNil(t *testing.T) {
	q := NewEventQueue()
	if q.PopNext() != nil {
		t.Error("PopNext on empty queue should return nil")
	}
	if q.Peek() != nil {
		t.Error("Peek on empty queue should return nil")
	}
}

func TestEventQueue_Peek_DoesNotRemove(t *testing.T) {
	q := NewEventQueue()
	q.Schedule(NewArrivalEvent(3, 0))
	q.Schedule(NewArrivalEvent(1, 1))

	if got := q.Peek(); got.Timestamp() != 1 {
		t.Errorf("Peek timestamp = %d, want 1", got.Timestamp())
	}
	if q.Len() != 2 {
		t.Errorf("Peek modified queue length: got %d, want 2", q.Len())
	}
}
