package cpu

// TODO: IRQ delay emulation, especially interacting with WAI and pending
// DMA is not modeled; revisit against hardware traces before claiming
// cycle accuracy here (spec.md §9).

import "github.com/bdwalton/gosnes/scheduler"

// Irqs is the interrupt unit: it tracks the NMI latch, the timer-IRQ line,
// the global IRQ-enable, and the WAI halt state, and preempts the
// scheduler whenever a newly pending interrupt should cut short the CPU's
// current run slice.
type Irqs struct {
	irqsEnabled         bool
	waitingForException bool
	hvTimerIrqRequested bool
	processingIrq       bool
	processingNmi       bool
}

// NewIrqs returns an interrupt unit in its power-on state: IRQs enabled,
// nothing pending.
func NewIrqs() *Irqs {
	return &Irqs{irqsEnabled: true}
}

func (i *Irqs) IrqsEnabled() bool         { return i.irqsEnabled }
func (i *Irqs) WaitingForException() bool { return i.waitingForException }
func (i *Irqs) HvTimerIrqRequested() bool { return i.hvTimerIrqRequested }
func (i *Irqs) ProcessingIrq() bool       { return i.processingIrq }
func (i *Irqs) ProcessingNmi() bool       { return i.processingNmi }

func (i *Irqs) updateIrqs(sched *scheduler.Schedule) {
	i.processingIrq = i.hvTimerIrqRequested && i.irqsEnabled
	if i.processingIrq {
		sched.SetTargetToCur()
	}
}

// SetIrqsEnabled updates the software IRQ-enable flag and recomputes
// processing_irq; a transition to true that newly unmasks a pending timer
// IRQ preempts the CPU.
func (i *Irqs) SetIrqsEnabled(value bool, sched *scheduler.Schedule) {
	i.irqsEnabled = value
	i.updateIrqs(sched)
}

// SetWaitingForException transitions into WAI, but only when neither an
// NMI nor a timer IRQ is already pending — requesting WAI while an
// interrupt is already latched is a no-op (spec.md §3 invariant).
func (i *Irqs) SetWaitingForException(value bool) {
	i.waitingForException = value && !(i.processingNmi || i.hvTimerIrqRequested)
}

// SetHvTimerIrqRequested sets or clears the timer-IRQ line. Raising it
// also clears WAI; lowering it leaves WAI unchanged.
func (i *Irqs) SetHvTimerIrqRequested(value bool, sched *scheduler.Schedule) {
	i.hvTimerIrqRequested = value
	if value {
		i.waitingForException = false
	}
	i.updateIrqs(sched)
}

// RequestNmi latches the edge-triggered NMI line, preempts the CPU, and
// clears WAI. NMI is non-maskable and is therefore never gated by
// irqs_enabled.
func (i *Irqs) RequestNmi(sched *scheduler.Schedule) {
	i.processingNmi = true
	sched.SetTargetToCur()
	i.waitingForException = false
}

// AcknowledgeNmi clears the NMI latch. Only the CPU calls this, and only
// after it has vectored to the NMI handler — the interrupt unit never
// clears processing_nmi on its own.
func (i *Irqs) AcknowledgeNmi() {
	i.processingNmi = false
}
