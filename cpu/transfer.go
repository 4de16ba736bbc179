package cpu

func (c *Cpu) tax() {
	c.internalCycle()
	c.writeX(c.Regs.A)
	if c.Regs.IWidthIs16() {
		c.setNZ16(c.Regs.X)
	} else {
		c.setNZ8(uint8(c.Regs.X))
	}
}

func (c *Cpu) tay() {
	c.internalCycle()
	c.writeY(c.Regs.A)
	if c.Regs.IWidthIs16() {
		c.setNZ16(c.Regs.Y)
	} else {
		c.setNZ8(uint8(c.Regs.Y))
	}
}

func (c *Cpu) txa() {
	c.internalCycle()
	if c.Regs.AWidthIs16() {
		c.Regs.A = c.Regs.X
		c.setNZ16(c.Regs.A)
	} else {
		c.Regs.SetA8Low(uint8(c.Regs.X))
		c.setNZ8(uint8(c.Regs.X))
	}
}

func (c *Cpu) tya() {
	c.internalCycle()
	if c.Regs.AWidthIs16() {
		c.Regs.A = c.Regs.Y
		c.setNZ16(c.Regs.A)
	} else {
		c.Regs.SetA8Low(uint8(c.Regs.Y))
		c.setNZ8(uint8(c.Regs.Y))
	}
}

// tsx/txs operate on the full 16-bit stack pointer; only the index-width
// flag governs what gets loaded into X, matching real hardware (SP itself
// is always 16 bits, confined to page 1 by StackAddr in emulation mode).
func (c *Cpu) tsx() {
	c.internalCycle()
	c.writeX(c.Regs.SP)
	if c.Regs.IWidthIs16() {
		c.setNZ16(c.Regs.X)
	} else {
		c.setNZ8(uint8(c.Regs.X))
	}
}

func (c *Cpu) txs() {
	c.internalCycle()
	c.Regs.SP = c.Regs.X
	if c.Regs.EmulationMode() {
		c.Regs.SP = 0x0100 | (c.Regs.SP & 0xFF)
	}
}

func (c *Cpu) txy() {
	c.internalCycle()
	c.writeY(c.Regs.X)
	if c.Regs.IWidthIs16() {
		c.setNZ16(c.Regs.Y)
	} else {
		c.setNZ8(uint8(c.Regs.Y))
	}
}

func (c *Cpu) tyx() {
	c.internalCycle()
	c.writeX(c.Regs.Y)
	if c.Regs.IWidthIs16() {
		c.setNZ16(c.Regs.X)
	} else {
		c.setNZ8(uint8(c.Regs.X))
	}
}

func (c *Cpu) tcd() {
	c.internalCycle()
	c.Regs.D = c.Regs.A
	c.setNZ16(c.Regs.D)
}

func (c *Cpu) tdc() {
	c.internalCycle()
	c.Regs.A = c.Regs.D
	c.setNZ16(c.Regs.A)
}

func (c *Cpu) tcs() {
	c.internalCycle()
	c.Regs.SP = c.Regs.A
	if c.Regs.EmulationMode() {
		c.Regs.SP = 0x0100 | (c.Regs.SP & 0xFF)
	}
}

func (c *Cpu) tsc() {
	c.internalCycle()
	c.Regs.A = c.Regs.SP
	c.setNZ16(c.Regs.A)
}

// xba exchanges A's high and low bytes; flags are set from the new low
// byte (now the old high byte), independent of the A-width flag.
func (c *Cpu) xba() {
	c.internalCycle()
	c.internalCycle()
	lo, hi := uint8(c.Regs.A), uint8(c.Regs.A>>8)
	c.Regs.A = uint16(lo)<<8 | uint16(hi)
	c.setNZ8(hi)
}

// xce exchanges the carry flag with the emulation-mode flag: the
// documented way to enter/leave native mode. Re-entering emulation mode
// this way (carry set while already native) is unimplemented outside of
// reset and reports ErrUnimplemented rather than silently accepting it.
func (c *Cpu) xce() error {
	carry := c.Regs.PSW().Carry()
	wasEmu := c.Regs.EmulationMode()
	if err := c.Regs.SetEmulationMode(carry, false); err != nil {
		return err
	}
	c.Regs.SetPSW(c.Regs.PSW().SetCarry(wasEmu))
	if c.Regs.EmulationMode() {
		c.Regs.SetPSW(c.Regs.PSW().SetIndex8(true).SetA8(true))
		c.Regs.X &= 0xFF
		c.Regs.Y &= 0xFF
		c.Regs.SP = 0x0100 | (c.Regs.SP & 0xFF)
	}
	return nil
}

func (c *Cpu) clc() { c.Regs.SetPSW(c.Regs.PSW().SetCarry(false)) }
func (c *Cpu) sec() { c.Regs.SetPSW(c.Regs.PSW().SetCarry(true)) }
func (c *Cpu) cld() { c.Regs.SetPSW(c.Regs.PSW().SetDecimal(false)) }
func (c *Cpu) sed() { c.Regs.SetPSW(c.Regs.PSW().SetDecimal(true)) }
func (c *Cpu) clv() { c.Regs.SetPSW(c.Regs.PSW().SetOverflow(false)) }

func (c *Cpu) cli() { c.Irqs.SetIrqsEnabled(true, c.sched) }
func (c *Cpu) sei() { c.Irqs.SetIrqsEnabled(false, c.sched) }

// rep clears the status bits set in the immediate mask; setting index-8
// clear (going 16-bit) leaves X/Y's current contents as-is, matching
// hardware (widening never synthesizes high bytes from nowhere).
func (c *Cpu) rep(mask uint8) {
	c.Regs.SetPSW(c.Regs.PSW() &^ PSW(mask))
}

func (c *Cpu) sep(mask uint8) {
	c.Regs.SetPSW(c.Regs.PSW() | PSW(mask))
}

func (c *Cpu) wai() {
	c.Irqs.SetWaitingForException(true)
}

func (c *Cpu) stp() {
	c.stopped = true
}

func (c *Cpu) nop() {}

// mvp/mvn implement the block-move instructions: each moves one byte and
// pays 7 cycles, continuing until the accumulator (treated as a 16-bit
// byte count) is exhausted. Both set DB to the destination bank.
func (c *Cpu) mvp() {
	dstBank := c.fetchByte()
	srcBank := c.fetchByte()
	c.Regs.DB = dstBank
	v := c.readByte(srcBank, c.Regs.X)
	c.writeByte(dstBank, c.Regs.Y, v)
	c.internalCycle()
	c.internalCycle()
	c.Regs.X--
	c.Regs.Y--
	c.Regs.A--
	if c.Regs.A != 0xFFFF {
		c.Regs.PC -= 3
	}
}

func (c *Cpu) mvn() {
	dstBank := c.fetchByte()
	srcBank := c.fetchByte()
	c.Regs.DB = dstBank
	v := c.readByte(srcBank, c.Regs.X)
	c.writeByte(dstBank, c.Regs.Y, v)
	c.internalCycle()
	c.internalCycle()
	c.Regs.X++
	c.Regs.Y++
	c.Regs.A--
	if c.Regs.A != 0xFFFF {
		c.Regs.PC -= 3
	}
}
