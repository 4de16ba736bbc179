package apu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bdwalton/gosnes/scheduler"
)

func TestNewSchedulesFirstUpdate(t *testing.T) {
	sched := scheduler.New()
	New(sched, 512, false)

	tm, ok := sched.NextEventTime()
	require.True(t, ok)
	assert.Equal(t, cyclesPerSample, tm)
}

func TestHandleUpdateDropsSamplesWhenFullInAsyncMode(t *testing.T) {
	sched := scheduler.New()
	a := New(sched, 1, false) // chunkSamples 1 gives a ring of 4 stereo slots

	for i := 0; i < 100; i++ {
		a.HandleUpdate()
	}
	assert.LessOrEqual(t, a.Ring().Available(), int(a.ring.mask+1))
}

func TestHandleUpdateReschedulesItself(t *testing.T) {
	sched := scheduler.New()
	a := New(sched, 512, false)

	first, _ := sched.NextEventTime()
	sched.SetCurTime(first)
	sched.PopPendingEvent()
	a.HandleUpdate()

	second, ok := sched.NextEventTime()
	require.True(t, ok)
	assert.Equal(t, first+cyclesPerSample, second)
}
