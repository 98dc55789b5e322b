// Implements the WaitQueue, which holds requests that arrived but could not be admitted.
// Requests are enqueued on refused arrival and leave only from the front.

package sim

import (
	"fmt"
	"strings"
)

// WaitQueue represents a FIFO queue of requests waiting for a slot.
// Only the head is ever considered for admission.
type WaitQueue struct {
	queue []Handle
}

// Enqueue adds a request to the back of the wait queue.
func (wq *WaitQueue) Enqueue(h Handle) {
	wq.queue = append(wq.queue, h)
}

func (wq *WaitQueue) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, h := range wq.queue {
		sb.WriteString(fmt.Sprint(int(h)))
		if i < len(wq.queue)-1 {
			sb.WriteString(" ")
		}
	}
	sb.WriteString("]")
	return sb.String()
}

// Len returns the number of requests in the queue.
func (wq *WaitQueue) Len() int {
	return len(wq.queue)
}

// Peek returns the handle at the front of the queue without removing it.
// ok is false when the queue is empty.
func (wq *WaitQueue) Peek() (h Handle, ok bool) {
	if len(wq.queue) == 0 {
		return 0, false
	}
	return wq.queue[0], true
}

// Dequeue removes the handle at the front of the queue.
func (wq *WaitQueue) Dequeue() (h Handle, ok bool) {
	if len(wq.queue) == 0 {
		return 0, false
	}
	h = wq.queue[0]
	wq.queue = wq.queue[1:]
	return h, true
}

// Items returns the queue contents in FIFO order.
// The returned slice is the queue's internal storage; callers MUST NOT modify it.
func (wq *WaitQueue) Items() []Handle {
	return wq.queue
}
