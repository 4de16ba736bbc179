package ppu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bdwalton/gosnes/scheduler"
)

type fakeIrqs struct {
	nmiRequested     bool
	hvTimerRequested bool
}

func (f *fakeIrqs) RequestNmi(sched *scheduler.Schedule) {
	f.nmiRequested = true
	sched.SetTargetToCur()
}

func (f *fakeIrqs) SetHvTimerIrqRequested(value bool, sched *scheduler.Schedule) {
	f.hvTimerRequested = value
	if value {
		sched.SetTargetToCur()
	}
}

func newTestPpu() (*Ppu, *fakeIrqs, *scheduler.Schedule) {
	sched := scheduler.New()
	irqs := &fakeIrqs{}
	p := New(ModelNTSC, irqs, sched)
	return p, irqs, sched
}

func runScanlines(p *Ppu, sched *scheduler.Schedule, n int) {
	for i := 0; i < n; i++ {
		t, ok := sched.NextEventTime()
		if !ok {
			return
		}
		sched.SetCurTime(t)
		sched.PopPendingEvent()
		p.HandleScanline()
	}
}

func TestVblankScanlineRaisesNmi(t *testing.T) {
	p, irqs, sched := newTestPpu()
	runScanlines(p, sched, vblankScanline)
	assert.True(t, irqs.nmiRequested)
}

func TestFrameWrapsAndRendersTestPattern(t *testing.T) {
	p, _, sched := newTestPpu()
	scanlinesPerFrame := int(p.model.CyclesPerFrame() / cyclesPerScanline)
	runScanlines(p, sched, scanlinesPerFrame)
	assert.True(t, p.FrameFinished())
	assert.Equal(t, uint8(0xFF), p.Framebuffer()[3], "alpha channel of first pixel should be opaque")
}

func TestClearFrameFinishedResetsFlag(t *testing.T) {
	p, _, sched := newTestPpu()
	scanlinesPerFrame := int(p.model.CyclesPerFrame() / cyclesPerScanline)
	runScanlines(p, sched, scanlinesPerFrame)
	require.True(t, p.FrameFinished())
	p.ClearFrameFinished()
	assert.False(t, p.FrameFinished())
}

func TestHvIrqFiresAtProgrammedScanline(t *testing.T) {
	p, irqs, sched := newTestPpu()
	p.SetHvIrqTarget(0, 10, true)
	runScanlines(p, sched, 10)
	assert.True(t, irqs.hvTimerRequested)
}

func TestHvIrqDisabledNeverFires(t *testing.T) {
	p, irqs, sched := newTestPpu()
	p.SetHvIrqTarget(0, 10, false)
	runScanlines(p, sched, 10)
	assert.False(t, irqs.hvTimerRequested)
}

func TestPalModelHasLongerFrame(t *testing.T) {
	assert.Greater(t, ModelPAL.CyclesPerFrame(), ModelNTSC.CyclesPerFrame())
}
