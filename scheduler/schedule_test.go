package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduleAtLowersTarget(t *testing.T) {
	s := New()
	s.ScheduleAt(Event{Kind: EventPpu}, 1000)
	assert.Equal(t, Time(1000), s.TargetTime())

	s.ScheduleAt(Event{Kind: EventHvIrq}, 500)
	assert.Equal(t, Time(500), s.TargetTime(), "scheduling an earlier event must pull target_time in")
}

func TestPopPendingEventOrdersByTimeThenInsertion(t *testing.T) {
	s := New()
	s.ScheduleAt(Event{Kind: EventPpu, Sub: 1}, 100)
	s.ScheduleAt(Event{Kind: EventPpu, Sub: 2}, 50)
	s.ScheduleAt(Event{Kind: EventPpu, Sub: 3}, 50) // same time, later insertion

	s.SetCurTime(200)

	e, tm, ok := s.PopPendingEvent()
	require.True(t, ok)
	assert.Equal(t, 2, e.Sub)
	assert.Equal(t, Time(50), tm)

	e, _, ok = s.PopPendingEvent()
	require.True(t, ok)
	assert.Equal(t, 3, e.Sub, "equal timestamps must fire in insertion order")

	e, _, ok = s.PopPendingEvent()
	require.True(t, ok)
	assert.Equal(t, 1, e.Sub)

	_, _, ok = s.PopPendingEvent()
	assert.False(t, ok)
}

func TestPopPendingEventRespectsCurTime(t *testing.T) {
	s := New()
	s.ScheduleAt(Event{Kind: EventPpu}, 1000)
	s.SetCurTime(500)

	_, _, ok := s.PopPendingEvent()
	assert.False(t, ok, "an event scheduled in the future must not pop before cur_time reaches it")

	s.SetCurTime(1000)
	_, _, ok = s.PopPendingEvent()
	assert.True(t, ok)
}

func TestSetTargetToCurPreemptsCPU(t *testing.T) {
	s := New()
	s.ScheduleAt(Event{Kind: EventPpu}, 1000)
	s.SetCurTime(500)
	s.SetTargetToCur()
	assert.Equal(t, Time(500), s.TargetTime(), "a component preempting the CPU must pull target_time to cur_time")
}

func TestPopPendingEventMonotoneNonDecreasing(t *testing.T) {
	s := New()
	times := []Time{300, 100, 700, 200, 50}
	for i, tm := range times {
		s.ScheduleAt(Event{Kind: EventPpu, Sub: i}, tm)
	}
	s.SetCurTime(1000)

	var last Time
	first := true
	for {
		_, tm, ok := s.PopPendingEvent()
		if !ok {
			break
		}
		if !first {
			assert.GreaterOrEqual(t, tm, last)
		}
		last = tm
		first = false
	}
}
