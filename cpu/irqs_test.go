package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bdwalton/gosnes/scheduler"
)

func TestIrqsEnabledUnmaskingPendingTimerPreempts(t *testing.T) {
	sched := scheduler.New()
	irqs := NewIrqs()

	irqs.SetIrqsEnabled(false, sched)
	irqs.SetHvTimerIrqRequested(true, sched)
	assert.False(t, irqs.ProcessingIrq(), "masked timer IRQ must not assert processing_irq")

	sched.SetCurTime(100)
	irqs.SetIrqsEnabled(true, sched)
	assert.True(t, irqs.ProcessingIrq())
	assert.Equal(t, scheduler.Time(100), sched.TargetTime(), "unmasking a pending IRQ preempts the CPU slice")
}

func TestWaitingForExceptionIgnoredWhileNmiPending(t *testing.T) {
	sched := scheduler.New()
	irqs := NewIrqs()

	irqs.RequestNmi(sched)
	irqs.SetWaitingForException(true)
	assert.False(t, irqs.WaitingForException(), "WAI must not re-halt while an NMI is already latched")
}

func TestAcknowledgeNmiClearsOnlyNmi(t *testing.T) {
	sched := scheduler.New()
	irqs := NewIrqs()

	irqs.RequestNmi(sched)
	irqs.SetHvTimerIrqRequested(true, sched)
	irqs.AcknowledgeNmi()

	assert.False(t, irqs.ProcessingNmi())
	assert.True(t, irqs.ProcessingIrq(), "acknowledging NMI must not clear an independently pending timer IRQ")
}
