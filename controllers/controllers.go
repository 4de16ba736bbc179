// Package controllers implements the event-driven controller poller: a
// recurring scheduler event that latches button state from a frontend
// input source into the shift registers the CPU reads via $4016/$4017.
package controllers

import "github.com/bdwalton/gosnes/scheduler"

const pollInterval = scheduler.Time(256)

// Button bits match the standard SNES controller report order.
const (
	ButtonB Bitmask = 1 << iota
	ButtonY
	ButtonSelect
	ButtonStart
	ButtonUp
	ButtonDown
	ButtonLeft
	ButtonRight
	ButtonA
	ButtonX
	ButtonL
	ButtonR
)

type Bitmask uint16

// InputSource is implemented by the frontend: it reports the current
// button state for one controller port.
type InputSource interface {
	Poll(port int) Bitmask
}

// Controllers owns the two controller ports' shift registers and the
// recurring poll event that refreshes them.
type Controllers struct {
	sched  *scheduler.Schedule
	source InputSource

	latched  [2]Bitmask
	shiftReg [2]Bitmask
	strobe   bool
}

func New(sched *scheduler.Schedule, source InputSource) *Controllers {
	c := &Controllers{sched: sched, source: source}
	c.schedulePoll()
	return c
}

func (c *Controllers) schedulePoll() {
	c.sched.ScheduleAt(scheduler.Event{Kind: scheduler.EventControllers}, c.sched.CurTime()+pollInterval)
}

// HandlePoll latches fresh button state from the input source. While
// strobe is held high, the shift registers continuously reload from the
// latch (real hardware behavior for auto-read).
func (c *Controllers) HandlePoll() {
	for port := 0; port < 2; port++ {
		c.latched[port] = c.source.Poll(port)
		if c.strobe {
			c.shiftReg[port] = c.latched[port]
		}
	}
	c.schedulePoll()
}

// WriteStrobe handles a write to $4016: bit 0 controls the strobe line.
func (c *Controllers) WriteStrobe(val uint8) {
	c.strobe = val&1 != 0
	if c.strobe {
		c.shiftReg[0] = c.latched[0]
		c.shiftReg[1] = c.latched[1]
	}
}

// ReadPort shifts the next button bit out of the given port's register
// ($4016 for port 0, $4017 for port 1), matching the serial-read protocol
// real software uses.
func (c *Controllers) ReadPort(port int) uint8 {
	if c.strobe {
		c.shiftReg[port] = c.latched[port]
	}
	bit := uint8(c.shiftReg[port] & 1)
	c.shiftReg[port] >>= 1
	return bit
}
