// Package cpu implements the 65C816 fetch/decode/execute loop: the full
// addressing-mode set, the ~256-entry opcode table, and the interrupt entry
// sequence that ties into the interrupt unit and scheduler.
package cpu

import "github.com/bdwalton/gosnes/scheduler"

// Cpu is the 65C816 core. It holds no back-pointer to the owning Emu —
// only the Bus and Schedule handles it needs to fetch/decode/execute and
// to account for cycles (spec.md §9's "mutable graph of subsystems" note).
type Cpu struct {
	Regs *Regs
	Irqs *Irqs

	bus   Bus
	sched *scheduler.Schedule

	stopped bool // STP: halted permanently until hardware reset
}

// New constructs a CPU wired to the given bus and schedule. Callers must
// still call Reset (typically via Emu's soft-reset sequence) before
// running it.
func New(bus Bus, sched *scheduler.Schedule) *Cpu {
	return &Cpu{
		Regs:  NewRegs(),
		Irqs:  NewIrqs(),
		bus:   bus,
		sched: sched,
	}
}

// Stopped reports whether the CPU has executed STP and will never fetch
// another instruction until a hardware reset.
func (c *Cpu) Stopped() bool { return c.stopped }

// Reset performs the 65C816 reset sequence: emulation mode, 8-bit A and
// index registers, IRQs masked, decimal cleared, PC loaded from the reset
// vector at bank 0.
func (c *Cpu) Reset() {
	c.stopped = false
	c.Regs.A, c.Regs.X, c.Regs.Y = 0, 0, 0
	c.Regs.D = 0
	c.Regs.PB, c.Regs.DB = 0, 0
	c.Regs.SP = 0x01FF
	_ = c.Regs.SetEmulationMode(true, true)
	c.Regs.SetPSW(FlagIrqDisable | FlagIndex8 | FlagA8)
	c.Regs.PC = c.readWord(0, vecResetEmu)
}

// advance spends n master cycles: the bus-access and internal-operation
// cost model the spec calls "accumulating cycles" rather than a static
// per-opcode cycle count.
func (c *Cpu) advance(n scheduler.Time) {
	c.sched.AdvanceCurTime(n)
}

func (c *Cpu) readByte(bank uint8, addr uint16) uint8 {
	c.advance(c.bus.Cycles(bank, addr))
	return c.bus.Read(bank, addr)
}

func (c *Cpu) writeByte(bank uint8, addr uint16, val uint8) {
	c.advance(c.bus.Cycles(bank, addr))
	c.bus.Write(bank, addr, val)
}

func (c *Cpu) readWord(bank uint8, addr uint16) uint16 {
	lo := c.readByte(bank, addr)
	hi := c.readByte(bank, addr+1)
	return uint16(lo) | uint16(hi)<<8
}

func (c *Cpu) writeWord(bank uint8, addr uint16, val uint16) {
	c.writeByte(bank, addr, uint8(val))
	c.writeByte(bank, addr+1, uint8(val>>8))
}

func (c *Cpu) readLong(bank uint8, addr uint16) uint32 {
	lo := c.readWord(bank, addr)
	hi := c.readByte(bank, addr+2)
	return uint32(lo) | uint32(hi)<<16
}

// fetchByte reads the next byte of the instruction stream at PB:PC and
// advances PC.
func (c *Cpu) fetchByte() uint8 {
	v := c.readByte(c.Regs.PB, c.Regs.PC)
	c.Regs.PC++
	return v
}

func (c *Cpu) fetchWord() uint16 {
	lo := c.fetchByte()
	hi := c.fetchByte()
	return uint16(lo) | uint16(hi)<<8
}

func (c *Cpu) fetchLong() uint32 {
	lo := c.fetchWord()
	hi := c.fetchByte()
	return uint32(lo) | uint32(hi)<<16
}

// internalCycle spends one internal (non-bus) cycle, as RMW shifts and
// increment/decrement instructions do (spec.md §4.4).
func (c *Cpu) internalCycle() { c.advance(1) }

const (
	vecResetEmu = 0xFFFC
	vecNmiEmu   = 0xFFFA
	vecIrqEmu   = 0xFFFE
	vecNmiNat   = 0xFFEA
	vecIrqNat   = 0xFFEE
	vecBrkNat   = 0xFFE6
	vecCopNat   = 0xFFE4
	vecCopEmu   = 0xFFF4
)

// pushByte pushes val and decrements SP, honoring the emulation-mode
// page-1 stack confinement.
func (c *Cpu) pushByte(val uint8) {
	c.writeByte(0, c.Regs.StackAddr(), val)
	if c.Regs.EmulationMode() {
		c.Regs.SP = 0x0100 | ((c.Regs.SP - 1) & 0xFF)
	} else {
		c.Regs.SP--
	}
}

func (c *Cpu) pushWord(val uint16) {
	c.pushByte(uint8(val >> 8))
	c.pushByte(uint8(val))
}

func (c *Cpu) pullByte() uint8 {
	if c.Regs.EmulationMode() {
		c.Regs.SP = 0x0100 | ((c.Regs.SP + 1) & 0xFF)
	} else {
		c.Regs.SP++
	}
	return c.readByte(0, c.Regs.StackAddr())
}

func (c *Cpu) pullWord() uint16 {
	lo := c.pullByte()
	hi := c.pullByte()
	return uint16(lo) | uint16(hi)<<8
}

// Step fetches and executes a single instruction, then services a pending
// interrupt if one is waiting (spec.md §4.4's interrupt-entry-sequence
// contract: taken at instruction boundaries). Returns ErrUnimplemented for
// decimal-mode ADC/SBC and for XCE into emulation mode; STP halts the CPU
// (see Stopped) and is not reported as an error.
func (c *Cpu) Step() error {
	if c.stopped {
		c.internalCycle()
		return nil
	}

	if c.Irqs.WaitingForException() {
		c.internalCycle()
		return nil
	}

	// A just-latched NMI/IRQ (including one that woke the CPU from WAI
	// this very call) is serviced before the next opcode fetch, not
	// after it — WAI resumes directly into the interrupt handler.
	if c.Irqs.ProcessingNmi() || c.Irqs.ProcessingIrq() {
		return c.serviceInterruptIfPending()
	}

	op := c.fetchByte()
	entry := opcodeTable[op]
	if err := entry.exec(c); err != nil {
		return err
	}

	return c.serviceInterruptIfPending()
}

// serviceInterruptIfPending implements spec.md §4.4's interrupt entry
// sequence: NMI takes priority over the maskable timer IRQ.
func (c *Cpu) serviceInterruptIfPending() error {
	switch {
	case c.Irqs.ProcessingNmi():
		c.enterException(vecNmiNat, vecNmiEmu)
		c.Irqs.AcknowledgeNmi()
	case c.Irqs.ProcessingIrq():
		c.enterException(vecIrqNat, vecIrqEmu)
	}
	return nil
}

// enterException pushes PB, PC, P (native mode) or PC, P (emulation mode),
// clears the decimal flag, sets irqs-disabled, then loads PC from the
// appropriate vector with PB forced to bank 0.
func (c *Cpu) enterException(nativeVector, emuVector uint16) {
	if !c.Regs.EmulationMode() {
		c.pushByte(c.Regs.PB)
		c.pushWord(c.Regs.PC)
		c.pushByte(uint8(c.Regs.PSW()))
		c.Regs.PB = 0
		c.Regs.SetPSW(c.Regs.PSW().SetDecimal(false).SetIrqDisable(true))
		c.Regs.PC = c.readWord(0, nativeVector)
	} else {
		c.pushWord(c.Regs.PC)
		c.pushByte(uint8(c.Regs.PSW()))
		c.Regs.PB = 0
		c.Regs.SetPSW(c.Regs.PSW().SetDecimal(false).SetIrqDisable(true))
		c.Regs.PC = c.readWord(0, emuVector)
	}
	c.internalCycle()
}

// RunUntilNextEvent executes instructions until the schedule's cur_time
// reaches target_time, fast-forwarding instead of executing while the CPU
// is halted in WAI (spec.md §4.4's main-loop contract).
func (c *Cpu) RunUntilNextEvent() error {
	for c.sched.CurTime() < c.sched.TargetTime() {
		if c.Irqs.WaitingForException() && !c.stopped {
			c.sched.SetCurTime(c.sched.TargetTime())
			return nil
		}
		if err := c.Step(); err != nil {
			return err
		}
	}
	return nil
}
