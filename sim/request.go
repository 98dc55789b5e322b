// Defines the Request struct that models one storage operation in the simulation.
// Tracks the trace inputs (arrival, kind, address range) and the scheduling outcomes.

package sim

import (
	"fmt"
)

// Unset marks a scheduling timestamp that has not been written yet.
const Unset int64 = -1

// OpKind is the operation token carried by a trace record.
// Only the exact token "WRITE" is a write; every other token schedules like a read.
type OpKind string

const (
	OpRead  OpKind = "READ"
	OpWrite OpKind = "WRITE"
)

// RequestState represents the lifecycle state of a request.
// Transitions only move forward: new → pending → active → completed,
// with pending skipped when a request is admitted on arrival.
type RequestState string

const (
	StateNew       RequestState = "new"
	StatePending   RequestState = "pending"
	StateActive    RequestState = "active"
	StateCompleted RequestState = "completed"
)

// Request models a single request's lifecycle in the simulation.
type Request struct {
	ID          int64  // Identifier from the trace
	ArrivalTime int64  // Trace timestamp in ticks (µs)
	Op          OpKind // READ, WRITE, or any other token (treated as non-write)
	Address     int64  // First logical unit touched
	Size        int64  // Number of logical units

	State     RequestState
	StartTime int64 // Set once, on admission
	EndTime   int64 // Set once, on completion
}

// NewRequest creates a Request in StateNew with unset scheduling outputs.
func NewRequest(id, arrivalTime int64, op OpKind, address, size int64) Request {
	return Request{
		ID:          id,
		ArrivalTime: arrivalTime,
		Op:          op,
		Address:     address,
		Size:        size,
		State:       StateNew,
		StartTime:   Unset,
		EndTime:     Unset,
	}
}

// IsWrite reports whether the request is a WRITE.
func (req Request) IsWrite() bool {
	return req.Op == OpWrite
}

// Range returns the inclusive address range [first, last] occupied by the request.
func (req Request) Range() (first, last int64) {
	return req.Address, req.Address + req.Size - 1
}

// Latency returns the sojourn time (completion minus arrival).
// Only meaningful once the request is completed.
func (req Request) Latency() int64 {
	return req.EndTime - req.ArrivalTime
}

// ServiceTime returns the time the request spent occupying a slot.
func (req Request) ServiceTime() int64 {
	return req.EndTime - req.StartTime
}

// Reset clears scheduling outputs so the request can be replayed.
func (req *Request) Reset() {
	req.State = StateNew
	req.StartTime = Unset
	req.EndTime = Unset
}

// This method returns a human-readable string representation of a Request.
func (req Request) String() string {
	return fmt.Sprintf("Request: (ID: %d, Op: %s, Range: [%d,%d], State: %s, ArrivalTime: %d)",
		req.ID, req.Op, req.Address, req.Address+req.Size-1, req.State, req.ArrivalTime)
}
