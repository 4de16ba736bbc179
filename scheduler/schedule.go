// Package scheduler implements the emulator's central time source: a
// monotonic master-cycle counter plus a min-heap of timed events that lets
// the CPU run a slice of instructions without consulting the event queue on
// every cycle.
package scheduler

import "container/heap"

// Time is a count of master clock cycles since power-on.
type Time uint64

// EventKind identifies which subsystem owns a scheduled event.
type EventKind int

const (
	EventPpu EventKind = iota
	EventHvIrq
	EventControllers
	EventUpdateApu
)

// Event is a tagged variant carrying whatever sub-event data the owning
// component needs to interpret it. Sub is opaque to the scheduler; it's
// defined and consumed entirely by the owning package (ppu, controllers,
// ...).
type Event struct {
	Kind EventKind
	Sub  int
}

type pendingEvent struct {
	event Event
	time  Time
	seq   uint64
}

// pendingHeap is a min-heap ordered by (time, seq) so that events scheduled
// for the same timestamp fire in the order they were inserted.
type pendingHeap []pendingEvent

func (h pendingHeap) Len() int { return len(h) }
func (h pendingHeap) Less(i, j int) bool {
	if h[i].time != h[j].time {
		return h[i].time < h[j].time
	}
	return h[i].seq < h[j].seq
}
func (h pendingHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *pendingHeap) Push(x any)   { *h = append(*h, x.(pendingEvent)) }
func (h *pendingHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// Schedule is the event queue plus the emulator's simulated-time state.
// cur_time is advanced by components as they simulate work; target_time is
// a soft deadline the CPU runs toward, cutting short a slice when a
// component needs to preempt it (via SetTargetToCur) or when the next event
// is due sooner than the CPU would otherwise stop.
type Schedule struct {
	curTime      Time
	lastPollTime Time
	targetTime   Time
	queue        pendingHeap
	seq          uint64
}

// maxTime is the sentinel used for target_time before anything has ever
// been scheduled: no deadline, so the CPU would run unbounded until some
// component either schedules an event or explicitly preempts it.
const maxTime = Time(^uint64(0))

// New creates an empty schedule with all clocks at zero and no pending
// deadline.
func New() *Schedule {
	return &Schedule{targetTime: maxTime}
}

// CurTime returns the current master-cycle count.
func (s *Schedule) CurTime() Time { return s.curTime }

// SetCurTime forces the current time forward (or, in the WAI fast-forward
// case, up to the target). Callers must never move it backwards.
func (s *Schedule) SetCurTime(t Time) { s.curTime = t }

// AdvanceCurTime adds d master cycles to the current time.
func (s *Schedule) AdvanceCurTime(d Time) { s.curTime += d }

// LastPollTime returns the cur_time snapshot taken the last time the event
// queue was drained; components use it to compute delta-time since their
// last poll.
func (s *Schedule) LastPollTime() Time { return s.lastPollTime }

// SetLastPollTime updates the last-poll snapshot.
func (s *Schedule) SetLastPollTime(t Time) { s.lastPollTime = t }

// TargetTime returns the current soft deadline for the CPU's run slice.
func (s *Schedule) TargetTime() Time { return s.targetTime }

// SetTargetToCur forces target_time down to cur_time, which the CPU's
// run-slice loop observes at the next instruction boundary. Components
// that need to preempt the CPU mid-slice (a newly pending IRQ, an NMI
// request, ...) call this.
func (s *Schedule) SetTargetToCur() {
	s.targetTime = s.curTime
}

// ScheduleAt enqueues event to fire at time t. If t is earlier than the
// current target_time, the target is pulled in to match — target_time must
// never exceed the time of the earliest queued event.
func (s *Schedule) ScheduleAt(event Event, t Time) {
	heap.Push(&s.queue, pendingEvent{event: event, time: t, seq: s.seq})
	s.seq++
	if t < s.targetTime {
		s.targetTime = t
	}
}

// PopPendingEvent removes and returns the earliest queued event if its time
// has arrived (<= cur_time). While due events remain, target_time is only
// lowered to the new head of the queue, so a preemption set via
// SetTargetToCur during the drain stays in force; once no event is due,
// target_time is re-derived from the head of the queue (or reset to "no
// deadline" when the queue is empty) for the CPU's next run slice.
func (s *Schedule) PopPendingEvent() (Event, Time, bool) {
	if len(s.queue) == 0 {
		s.targetTime = maxTime
		return Event{}, 0, false
	}
	head := s.queue[0]
	if head.time > s.curTime {
		s.targetTime = head.time
		return Event{}, 0, false
	}
	heap.Pop(&s.queue)
	if len(s.queue) > 0 && s.queue[0].time < s.targetTime {
		s.targetTime = s.queue[0].time
	}
	return head.event, head.time, true
}

// NextEventTime reports the time of the earliest queued event, if any.
func (s *Schedule) NextEventTime() (Time, bool) {
	if len(s.queue) == 0 {
		return 0, false
	}
	return s.queue[0].time, true
}
