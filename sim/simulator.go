// sim/simulator.go
package sim

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/iosched-sim/iosched-sim/sim/trace"
)

// Result is the outcome of a finished run.
type Result struct {
	Limit int
	// Completed holds finished requests in completion order.
	Completed []Request
	// Pending holds requests the run could never admit, in wait-queue order.
	Pending []Request
	// PeakActive is the largest number of simultaneously occupied slots.
	PeakActive int
	// MaxQueueDepth is the longest the wait queue ever grew.
	MaxQueueDepth int
	// EndTime is the clock value of the last processed event.
	EndTime int64
	Trace   *trace.SimulationTrace
}

// Simulator is the core object that holds simulation time, system state, and the event loop.
// A Simulator is good for exactly one run.
type Simulator struct {
	Clock int64
	Limit int
	// Arena owns every request of the run; all other collections hold handles into it.
	Arena *RequestArena
	// EventQueue has all the simulator events, arrivals and completions
	EventQueue *EventQueue
	// Active holds requests occupying a slot
	Active *ActiveSet
	// WaitQ aka requests refused on arrival, in FIFO order
	WaitQ *WaitQueue
	// Completed is append-only, in completion order
	Completed []Handle

	Latency   LatencyModel
	Admission AdmissionPolicy
	Trace     *trace.SimulationTrace

	PeakActive    int
	MaxQueueDepth int
}

// NewSimulator copies requests into a fresh arena and schedules one arrival per request.
// The caller's slice is not modified.
func NewSimulator(requests []Request, cfg Config) *Simulator {
	cfg = cfg.withDefaults()
	if err := cfg.checkSlotLimit(); err != nil {
		panic(fmt.Sprintf("NewSimulator: %v", err))
	}
	s := &Simulator{
		Clock:      0,
		Limit:      cfg.Limit,
		Arena:      NewRequestArena(requests),
		EventQueue: NewEventQueue(),
		Active:     NewActiveSet(),
		WaitQ:      &WaitQueue{},
		Completed:  make([]Handle, 0, len(requests)),
		Latency:    cfg.Latency,
		Admission:  cfg.Admission,
	}
	if (trace.TraceConfig{Level: cfg.TraceLevel}).Enabled() {
		s.Trace = trace.NewSimulationTrace(trace.TraceConfig{Level: cfg.TraceLevel})
	}

	// the arena is already stable-sorted by arrival time
	for i := 0; i < s.Arena.Len(); i++ {
		h := Handle(i)
		s.Schedule(NewArrivalEvent(s.Arena.Get(h).ArrivalTime, h))
	}
	return s
}

// Schedule pushes an event into the simulator's EventQueue.
func (sim *Simulator) Schedule(ev Event) {
	sim.EventQueue.Schedule(ev)
}

// Step processes the next event. It returns false once the queue is drained.
func (sim *Simulator) Step() bool {
	ev := sim.EventQueue.PopNext()
	if ev == nil {
		return false
	}
	// advance the clock
	sim.Clock = ev.Timestamp()
	logrus.Debugf("[tick %07d] Executing %T", sim.Clock, ev)
	ev.Execute(sim)
	return true
}

// Run processes events until none remain.
func (sim *Simulator) Run() {
	for sim.Step() {
	}
	if n := sim.WaitQ.Len(); n > 0 {
		logrus.Warnf("[tick %07d] Simulation ended with %d unresolved pending requests (limit=%d)", sim.Clock, n, sim.Limit)
	}
	logrus.Debugf("[tick %07d] Simulation ended", sim.Clock)
}

// Result snapshots the run's outcome.
func (sim *Simulator) Result() Result {
	return Result{
		Limit:         sim.Limit,
		Completed:     sim.Arena.Snapshot(sim.Completed),
		Pending:       sim.Arena.Snapshot(sim.WaitQ.Items()),
		PeakActive:    sim.PeakActive,
		MaxQueueDepth: sim.MaxQueueDepth,
		EndTime:       sim.Clock,
		Trace:         sim.Trace,
	}
}

// Simulate replays requests through a device with limit slots and returns the outcome.
func Simulate(requests []Request, limit int) Result {
	s := NewSimulator(requests, Config{Limit: limit})
	s.Run()
	return s.Result()
}

// handleArrival admits the request immediately or parks it at the tail of the wait queue.
// Arrivals never look at the wait queue, so an admissible arrival may overtake it.
func (sim *Simulator) handleArrival(h Handle, now int64) {
	req := sim.Arena.Get(h)
	admitted, reason := sim.Admission.Admit(req, sim.Active, sim.Arena)
	sim.recordAdmission(req, now, trace.SourceArrival, admitted, reason)
	if admitted {
		sim.start(h, now)
		return
	}
	req.State = StatePending
	sim.WaitQ.Enqueue(h)
	sim.MaxQueueDepth = max(sim.MaxQueueDepth, sim.WaitQ.Len())
	logrus.Debugf("Request %d queued (%s), wait queue %v", req.ID, reason, sim.WaitQ)
}

// handleCompletion frees the slot of h and then admits from the head of the wait queue
// until a slot runs out or the head is refused. A refused head stalls everything behind it.
func (sim *Simulator) handleCompletion(h Handle, now int64) {
	req := sim.Arena.Get(h)
	if !sim.Active.Remove(h) {
		panic("handleCompletion: completed request was not active")
	}
	req.EndTime = now
	req.State = StateCompleted
	sim.Completed = append(sim.Completed, h)
	if sim.Trace != nil {
		sim.Trace.RecordCompletion(trace.CompletionRecord{
			RequestID: req.ID,
			Clock:     now,
			Latency:   req.Latency(),
			Waited:    req.StartTime - req.ArrivalTime,
		})
	}

	for sim.Active.Len() < sim.Limit {
		next, ok := sim.WaitQ.Peek()
		if !ok {
			break
		}
		nextReq := sim.Arena.Get(next)
		admitted, reason := sim.Admission.Admit(nextReq, sim.Active, sim.Arena)
		sim.recordAdmission(nextReq, now, trace.SourceQueue, admitted, reason)
		if !admitted {
			logrus.Debugf("Wait queue head %d blocked (%s)", nextReq.ID, reason)
			break
		}
		sim.WaitQ.Dequeue()
		sim.start(next, now)
	}
}

// start places h into a slot at time now and schedules its completion.
func (sim *Simulator) start(h Handle, now int64) {
	req := sim.Arena.Get(h)
	req.StartTime = now
	req.State = StateActive
	sim.Active.Add(h)
	sim.PeakActive = max(sim.PeakActive, sim.Active.Len())
	// a completion never lands before the admission instant
	sim.Schedule(NewCompletionEvent(now+max(0, sim.Latency.ServiceTime(req)), h))
}

func (sim *Simulator) recordAdmission(req *Request, now int64, source string, admitted bool, reason string) {
	if sim.Trace == nil {
		return
	}
	sim.Trace.RecordAdmission(trace.AdmissionRecord{
		RequestID:   req.ID,
		Clock:       now,
		Source:      source,
		Admitted:    admitted,
		Reason:      reason,
		ActiveCount: sim.Active.Len(),
	})
}
