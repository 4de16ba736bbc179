// Package apu stubs the SNES audio unit's timing and sample boundary. The
// SPC-700/DSP core itself is out of scope; Apu owns the fixed 32,000 Hz
// sample-rate bookkeeping and the lock-free ring buffer that would carry
// real samples to a frontend.
package apu

import "github.com/bdwalton/gosnes/scheduler"

const SampleRate = 32000

// cyclesPerSample is the (rounded) number of master cycles between
// successive audio samples at the fixed 32,000 Hz SPC rate, derived from
// the ~21.477MHz master clock the scheduler's Time counts in.
const cyclesPerSample = scheduler.Time(671)

// Backend is a sample sink a frontend may implement; Apu itself never
// calls it. In "sync" mode HandleUpdate spins until the ring buffer has
// room rather than dropping samples.
type Backend interface {
	Push(left, right int16) bool
}

// Apu advances a cycle counter and reschedules its own update event; it
// does not synthesize audio, only the timing and queuing scaffolding a
// real DSP would plug into.
type Apu struct {
	sched *scheduler.Schedule
	ring  *RingBuffer
	sync  bool
}

// New constructs an Apu with a ring buffer of four chunks: chunkSamples*4
// stereo samples, rounded up to a power of two.
func New(sched *scheduler.Schedule, chunkSamples int, syncMode bool) *Apu {
	a := &Apu{sched: sched, ring: NewRingBuffer(chunkSamples * 4), sync: syncMode}
	a.scheduleNext()
	return a
}

func (a *Apu) scheduleNext() {
	a.sched.ScheduleAt(scheduler.Event{Kind: scheduler.EventUpdateApu}, a.sched.CurTime()+cyclesPerSample)
}

// HandleUpdate is called when the scheduled UpdateApu event fires. With
// no DSP core to mix, it pushes silence to keep the ring buffer's
// producer side alive for frontends that expect a steady sample rate,
// and reschedules itself.
func (a *Apu) HandleUpdate() {
	if a.sync {
		for !a.ring.Push(0, 0) {
		}
	} else {
		a.ring.Push(0, 0)
	}
	a.scheduleNext()
}

// Ring exposes the sample queue for a frontend's audio callback to drain.
func (a *Apu) Ring() *RingBuffer { return a.ring }

// ReadReg and WriteReg stub the SPC-700 communication port window
// ($2140-$2143); real handshake semantics are out of scope.
func (a *Apu) ReadReg(reg uint16) uint8     { _ = reg; return 0 }
func (a *Apu) WriteReg(reg uint16, v uint8) { _ = reg; _ = v }
