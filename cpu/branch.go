package cpu

// branchIf implements the eight Bcc instructions: an 8-bit signed
// displacement taken only when cond holds, with a one-cycle penalty for
// the branch itself and a second when it crosses a page boundary in
// emulation mode (spec.md §4.4).
func (c *Cpu) branchIf(cond bool) {
	disp := int8(c.fetchByte())
	if !cond {
		return
	}
	c.internalCycle()
	oldPC := c.Regs.PC
	c.Regs.PC = uint16(int32(c.Regs.PC) + int32(disp))
	if c.Regs.EmulationMode() && (oldPC&0xFF00) != (c.Regs.PC&0xFF00) {
		c.internalCycle()
	}
}

func (c *Cpu) bra() {
	disp := int8(c.fetchByte())
	c.internalCycle()
	c.Regs.PC = uint16(int32(c.Regs.PC) + int32(disp))
}

func (c *Cpu) brl() {
	disp := int16(c.fetchWord())
	c.internalCycle()
	c.Regs.PC = uint16(int32(c.Regs.PC) + int32(disp))
}

func (c *Cpu) jmpAbsolute() {
	c.Regs.PC = c.fetchWord()
}

func (c *Cpu) jmpAbsoluteLong() {
	a24 := c.fetchLong()
	c.Regs.PC = uint16(a24)
	c.Regs.PB = uint8(a24 >> 16)
}

func (c *Cpu) jmpIndirect() {
	op := c.addrAbsoluteIndirect()
	c.Regs.PC = op.addr
}

func (c *Cpu) jmpIndirectX() {
	op := c.addrAbsoluteIndirectX()
	c.Regs.PC = op.addr
}

func (c *Cpu) jmlIndirectLong() {
	op := c.addrAbsoluteIndirectLong()
	c.Regs.PC = op.addr
	c.Regs.PB = op.bank
}

func (c *Cpu) jsr() {
	target := c.fetchWord()
	c.internalCycle()
	c.pushWord(c.Regs.PC - 1)
	c.Regs.PC = target
}

func (c *Cpu) jsrIndirectX() {
	op := c.addrAbsoluteIndirectX()
	ret := c.Regs.PC - 1
	target := op.addr
	c.internalCycle()
	c.pushWord(ret)
	c.Regs.PC = target
}

func (c *Cpu) jsl() {
	a24 := c.fetchLong()
	c.internalCycle()
	c.pushByte(c.Regs.PB)
	c.pushWord(c.Regs.PC - 1)
	c.Regs.PC = uint16(a24)
	c.Regs.PB = uint8(a24 >> 16)
}

func (c *Cpu) rts() {
	c.internalCycle()
	c.internalCycle()
	c.Regs.PC = c.pullWord() + 1
}

func (c *Cpu) rtl() {
	c.internalCycle()
	c.internalCycle()
	c.Regs.PC = c.pullWord() + 1
	c.Regs.PB = c.pullByte()
}

func (c *Cpu) rti() {
	c.internalCycle()
	c.Regs.SetPSW(PSW(c.pullByte()))
	c.Regs.PC = c.pullWord()
	if !c.Regs.EmulationMode() {
		c.Regs.PB = c.pullByte()
	}
}

// brk executes the software-interrupt entry sequence BRK shares with the
// hardware IRQ path, but always sets the break-flag-equivalent bit in the
// pushed status (bit 4, the X/break bit) in emulation mode.
func (c *Cpu) brk() {
	c.fetchByte() // signature byte, discarded by hardware too
	if !c.Regs.EmulationMode() {
		c.pushByte(c.Regs.PB)
		c.pushWord(c.Regs.PC)
		c.pushByte(uint8(c.Regs.PSW()))
		c.Regs.PB = 0
		c.Regs.SetPSW(c.Regs.PSW().SetDecimal(false).SetIrqDisable(true))
		c.Regs.PC = c.readWord(0, vecBrkNat)
	} else {
		c.pushWord(c.Regs.PC)
		c.pushByte(uint8(c.Regs.PSW()) | 0x10)
		c.Regs.SetPSW(c.Regs.PSW().SetDecimal(false).SetIrqDisable(true))
		c.Regs.PC = c.readWord(0, vecIrqEmu)
	}
}

func (c *Cpu) cop() {
	c.fetchByte()
	if !c.Regs.EmulationMode() {
		c.pushByte(c.Regs.PB)
		c.pushWord(c.Regs.PC)
		c.pushByte(uint8(c.Regs.PSW()))
		c.Regs.PB = 0
		c.Regs.SetPSW(c.Regs.PSW().SetDecimal(false).SetIrqDisable(true))
		c.Regs.PC = c.readWord(0, vecCopNat)
	} else {
		c.pushWord(c.Regs.PC)
		c.pushByte(uint8(c.Regs.PSW()))
		c.Regs.SetPSW(c.Regs.PSW().SetDecimal(false).SetIrqDisable(true))
		c.Regs.PC = c.readWord(0, vecCopEmu)
	}
}
