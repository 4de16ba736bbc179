package controllers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bdwalton/gosnes/scheduler"
)

type fakeSource struct {
	state [2]Bitmask
}

func (f *fakeSource) Poll(port int) Bitmask { return f.state[port] }

func TestStrobeHighContinuouslyReloadsFromPoll(t *testing.T) {
	sched := scheduler.New()
	src := &fakeSource{}
	c := New(sched, src)

	src.state[0] = ButtonA
	c.HandlePoll()
	c.WriteStrobe(1)
	assert.Equal(t, uint8(0), c.ReadPort(0), "button A is bit 8; strobe-high reload means bit 0 reads B (unpressed)")

	src.state[0] = ButtonB
	c.HandlePoll()
	assert.Equal(t, uint8(1), c.ReadPort(0), "reload happens on every read while strobe is held high")
}

func TestStrobeLowLatchesThenShiftsSerially(t *testing.T) {
	sched := scheduler.New()
	src := &fakeSource{}
	c := New(sched, src)

	src.state[0] = ButtonB | ButtonStart
	c.HandlePoll()
	c.WriteStrobe(1)
	c.WriteStrobe(0)

	require.Equal(t, uint8(1), c.ReadPort(0), "bit 0: B")
	assert.Equal(t, uint8(0), c.ReadPort(0), "bit 1: Y, not pressed")
	assert.Equal(t, uint8(0), c.ReadPort(0), "bit 2: Select, not pressed")
	assert.Equal(t, uint8(1), c.ReadPort(0), "bit 3: Start")
}

func TestHandlePollReloadsShiftRegOnlyWhenStrobeHigh(t *testing.T) {
	sched := scheduler.New()
	src := &fakeSource{}
	c := New(sched, src)

	c.WriteStrobe(0)
	src.state[0] = ButtonX
	c.HandlePoll()
	assert.NotEqual(t, ButtonX, c.shiftReg[0], "shift register must not reload mid-read while strobe is low")
}

func TestHandlePollReschedulesItself(t *testing.T) {
	sched := scheduler.New()
	c := New(sched, &fakeSource{})

	first, ok := sched.NextEventTime()
	require.True(t, ok)
	sched.SetCurTime(first)
	sched.PopPendingEvent()
	c.HandlePoll()

	second, ok := sched.NextEventTime()
	require.True(t, ok)
	assert.Equal(t, first+pollInterval, second)
}
