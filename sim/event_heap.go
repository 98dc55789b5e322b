package sim

import "container/heap"

type scheduledEvent struct {
	ev  Event
	seq uint64
}

// EventQueue implements a priority queue with deterministic ordering.
// Ordering: timestamp → type priority → insertion sequence.
// The sequence counter is local to the queue, so two runs over the same input
// pop events in exactly the same order.
type EventQueue struct {
	events  []scheduledEvent
	nextSeq uint64
}

// NewEventQueue creates an empty event queue.
func NewEventQueue() *EventQueue {
	q := &EventQueue{
		events: make([]scheduledEvent, 0),
	}
	heap.Init(q)
	return q
}

// Len implements heap.Interface
func (q *EventQueue) Len() int {
	return len(q.events)
}

// Less implements heap.Interface with deterministic ordering
func (q *EventQueue) Less(i, j int) bool {
	ei, ej := q.events[i], q.events[j]

	// Primary: timestamp (lower first)
	if ei.ev.Timestamp() != ej.ev.Timestamp() {
		return ei.ev.Timestamp() < ej.ev.Timestamp()
	}

	// Secondary: type priority (completions before arrivals)
	priI := EventTypePriority[ei.ev.Type()]
	priJ := EventTypePriority[ej.ev.Type()]
	if priI != priJ {
		return priI < priJ
	}

	// Tertiary: insertion order
	return ei.seq < ej.seq
}

// Swap implements heap.Interface
func (q *EventQueue) Swap(i, j int) {
	q.events[i], q.events[j] = q.events[j], q.events[i]
}

// Push implements heap.Interface
func (q *EventQueue) Push(x any) {
	q.events = append(q.events, x.(scheduledEvent))
}

// Pop implements heap.Interface
func (q *EventQueue) Pop() any {
	old := q.events
	n := len(old)
	item := old[n-1]
	q.events = old[0 : n-1]
	return item
}

// Schedule adds an event to the queue.
func (q *EventQueue) Schedule(e Event) {
	heap.Push(q, scheduledEvent{ev: e, seq: q.nextSeq})
	q.nextSeq++
}

// PopNext removes and returns the next event, or nil when the queue is empty.
func (q *EventQueue) PopNext() Event {
	if q.Len() == 0 {
		return nil
	}
	return heap.Pop(q).(scheduledEvent).ev
}

// Peek returns the next event without removing it.
func (q *EventQueue) Peek() Event {
	if q.Len() == 0 {
		return nil
	}
	return q.events[0].ev
}

// Empty reports whether no events remain.
func (q *EventQueue) Empty() bool {
	return q.Len() == 0
}
