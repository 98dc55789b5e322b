// Package sim provides the discrete-event simulation engine for a storage
// device scheduler with a fixed number of concurrency slots.
//
// # Reading Guide
//
// Start with these files to understand the simulation kernel:
//   - request.go: Request lifecycle (new → pending → active → completed)
//   - event.go, event_heap.go: Arrival and Completion events and their ordering
//   - admission.go: the slot limit and write-exclusion admission rule
//   - simulator.go: the event loop and wait-queue drain on completion
//
// # Ordering
//
// Events pop by time, then completions before arrivals, then insertion order.
// A completion therefore frees its slot and drains the wait queue before a
// same-instant arrival is considered. The wait queue is strictly head-of-line:
// a refused head stops the drain even if later entries could run.
//
// # Architecture
//
//   - sim/trace/: decision trace recording
//   - sim/workload/: trace file parsing and synthetic trace generation
//
// Requests live in a RequestArena for the duration of a run; events, the
// active set, the wait queue and the completed list refer to them by Handle.
package sim
