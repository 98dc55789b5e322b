package sim

import "github.com/sirupsen/logrus"

// EventType identifies the kind of a simulation event.
type EventType string

const (
	EventTypeArrival    EventType = "Arrival"
	EventTypeCompletion EventType = "Completion"
)

// EventTypePriority ranks event types that share a timestamp (lower runs first).
// A completion frees its slot and drains the wait queue before a same-instant
// arrival is evaluated, so that arrival can take the slot just vacated.
var EventTypePriority = map[EventType]int{
	EventTypeCompletion: 0,
	EventTypeArrival:    1,
}

// Event defines the interface for all simulation events.
// Each event must have a Timestamp (in ticks) and an Execute method
// that advances simulation state when invoked.
type Event interface {
	Timestamp() int64
	Type() EventType
	Handle() Handle
	Execute(*Simulator)
}

// BaseEvent provides common event fields.
type BaseEvent struct {
	time      int64
	eventType EventType
	handle    Handle
}

func (e *BaseEvent) Timestamp() int64 {
	return e.time
}

func (e *BaseEvent) Type() EventType {
	return e.eventType
}

func (e *BaseEvent) Handle() Handle {
	return e.handle
}

// ArrivalEvent represents a request arriving at the device scheduler.
type ArrivalEvent struct {
	BaseEvent
}

// NewArrivalEvent creates the arrival of the request behind h at time t.
func NewArrivalEvent(t int64, h Handle) *ArrivalEvent {
	return &ArrivalEvent{BaseEvent{time: t, eventType: EventTypeArrival, handle: h}}
}

// Execute asks admission control for a slot, or parks the request in the wait queue.
func (e *ArrivalEvent) Execute(sim *Simulator) {
	req := sim.Arena.Get(e.handle)
	logrus.Debugf("<< Arrival: request %d (%s) at %d ticks", req.ID, req.Op, e.time)
	sim.handleArrival(e.handle, e.time)
}

// CompletionEvent represents an active request finishing its service.
type CompletionEvent struct {
	BaseEvent
}

// NewCompletionEvent creates the completion of the request behind h at time t.
func NewCompletionEvent(t int64, h Handle) *CompletionEvent {
	return &CompletionEvent{BaseEvent{time: t, eventType: EventTypeCompletion, handle: h}}
}

// Execute releases the slot and re-admits from the head of the wait queue.
func (e *CompletionEvent) Execute(sim *Simulator) {
	req := sim.Arena.Get(e.handle)
	logrus.Debugf("<< Completion: request %d (%s) at %d ticks", req.ID, req.Op, e.time)
	sim.handleCompletion(e.handle, e.time)
}
