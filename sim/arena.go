package sim

import (
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"
)

// Handle addresses one request inside a RequestArena.
type Handle int

// RequestArena is the fixed, index-addressed store of requests for a single run.
// The active set, wait queue, completed list and events all hold Handles into it;
// the backing slice is allocated once and never grows, so handles stay valid.
type RequestArena struct {
	requests []Request
}

// NewRequestArena copies requests into a new arena, stable-sorted by arrival time.
// Requests with equal arrival times keep their input order.
// Scheduling outputs are reset and negative sizes are clamped to 0;
// the caller's slice is not modified.
func NewRequestArena(requests []Request) *RequestArena {
	store := make([]Request, len(requests))
	copy(store, requests)
	sort.SliceStable(store, func(i, j int) bool {
		return store[i].ArrivalTime < store[j].ArrivalTime
	})
	for i := range store {
		store[i].Reset()
		if store[i].Size < 0 {
			logrus.Warnf("Request %d has negative size %d; treating it as 0", store[i].ID, store[i].Size)
			store[i].Size = 0
		}
	}
	return &RequestArena{requests: store}
}

// Len returns the number of requests in the arena.
func (a *RequestArena) Len() int {
	return len(a.requests)
}

// Get returns a pointer to the request behind h. The pointer is valid for the
// lifetime of the arena.
func (a *RequestArena) Get(h Handle) *Request {
	if int(h) < 0 || int(h) >= len(a.requests) {
		panic(fmt.Sprintf("RequestArena.Get: handle %d out of range [0,%d)", h, len(a.requests)))
	}
	return &a.requests[h]
}

// Snapshot copies the requests behind handles, in handle order.
func (a *RequestArena) Snapshot(handles []Handle) []Request {
	out := make([]Request, len(handles))
	for i, h := range handles {
		out[i] = a.requests[h]
	}
	return out
}

// All returns a copy of every request in the arena, in arrival order.
func (a *RequestArena) All() []Request {
	out := make([]Request, len(a.requests))
	copy(out, a.requests)
	return out
}
