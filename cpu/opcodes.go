package cpu

// opcodeEntry is one row of the dispatch table: every opcode byte maps to
// a closure that resolves its addressing mode and performs the
// instruction. This plays the role the teacher's mode/cycle opcode table
// plays, but since 65C816 instructions are width-generic (8 or 16 bits,
// decided at run time by the m/x flags) rather than fixed-width, the
// table stores executable behavior directly instead of a (name, mode)
// pair resolved by reflection.
type opcodeEntry struct {
	exec func(*Cpu) error
}

var opcodeTable [256]opcodeEntry

func plain(f func(*Cpu)) func(*Cpu) error {
	return func(c *Cpu) error { f(c); return nil }
}

func memALU(addr func(*Cpu) operand, apply func(*Cpu, uint16) error) func(*Cpu) error {
	return func(c *Cpu) error {
		v := c.readOperandValue(addr(c), c.Regs.AWidthIs16())
		return apply(c, v)
	}
}

func memALUNoErr(addr func(*Cpu) operand, apply func(*Cpu, uint16)) func(*Cpu) error {
	return func(c *Cpu) error {
		v := c.readOperandValue(addr(c), c.Regs.AWidthIs16())
		apply(c, v)
		return nil
	}
}

func immALU(apply func(*Cpu, uint16) error) func(*Cpu) error {
	return func(c *Cpu) error { return apply(c, c.fetchImmValue()) }
}

func immALUNoErr(apply func(*Cpu, uint16)) func(*Cpu) error {
	return func(c *Cpu) error { apply(c, c.fetchImmValue()); return nil }
}

func memALUIndex(addr func(*Cpu) operand, apply func(*Cpu, uint16)) func(*Cpu) error {
	return func(c *Cpu) error {
		v := c.readOperandValue(addr(c), c.Regs.IWidthIs16())
		apply(c, v)
		return nil
	}
}

func immALUIndex(apply func(*Cpu, uint16)) func(*Cpu) error {
	return func(c *Cpu) error { apply(c, c.fetchImmIndex()); return nil }
}

func storeAt(addr func(*Cpu) operand, store func(*Cpu, operand)) func(*Cpu) error {
	return func(c *Cpu) error { store(c, addr(c)); return nil }
}

func shiftMemAt(addr func(*Cpu) operand, sop shiftOp) func(*Cpu) error {
	return func(c *Cpu) error { c.applyShiftMemory(addr(c), sop); return nil }
}

func shiftAcc(sop shiftOp) func(*Cpu) error {
	return func(c *Cpu) error { c.applyShiftAccumulator(sop); return nil }
}

func rmwAt(addr func(*Cpu) operand, apply func(*Cpu, operand)) func(*Cpu) error {
	return func(c *Cpu) error { apply(c, addr(c)); return nil }
}

func bitAt(addr func(*Cpu) operand, immediate bool) func(*Cpu) error {
	return func(c *Cpu) error {
		v := c.readOperandValue(addr(c), c.Regs.AWidthIs16())
		c.bit(v, immediate)
		return nil
	}
}

func bitImm() func(*Cpu) error {
	return func(c *Cpu) error { c.bit(c.fetchImmValue(), true); return nil }
}

func cmpAAt(addr func(*Cpu) operand) func(*Cpu) error {
	return func(c *Cpu) error {
		width := c.Regs.AWidthIs16()
		v := c.readOperandValue(addr(c), width)
		c.cmp(c.Regs.A, v, width)
		return nil
	}
}

func cmpAImm() func(*Cpu) error {
	return func(c *Cpu) error {
		width := c.Regs.AWidthIs16()
		c.cmp(c.Regs.A, c.fetchImmValue(), width)
		return nil
	}
}

func cmpIndexAt(reg func(*Cpu) uint16, addr func(*Cpu) operand) func(*Cpu) error {
	return func(c *Cpu) error {
		width := c.Regs.IWidthIs16()
		v := c.readOperandValue(addr(c), width)
		c.cmp(reg(c), v, width)
		return nil
	}
}

func cmpIndexImm(reg func(*Cpu) uint16) func(*Cpu) error {
	return func(c *Cpu) error {
		width := c.Regs.IWidthIs16()
		c.cmp(reg(c), c.fetchImmIndex(), width)
		return nil
	}
}

func init() {
	for i := range opcodeTable {
		opcodeTable[i] = opcodeEntry{exec: plain((*Cpu).nop)}
	}

	set := func(op uint8, f func(*Cpu) error) { opcodeTable[op] = opcodeEntry{exec: f} }

	// ADC
	set(0x69, immALU((*Cpu).adc))
	set(0x6D, memALU((*Cpu).addrAbsolute, (*Cpu).adc))
	set(0x6F, memALU((*Cpu).addrAbsoluteLong, (*Cpu).adc))
	set(0x65, memALU((*Cpu).addrDirect, (*Cpu).adc))
	set(0x72, memALU((*Cpu).addrDirectIndirect, (*Cpu).adc))
	set(0x67, memALU((*Cpu).addrDirectIndirectLong, (*Cpu).adc))
	set(0x7D, memALU((*Cpu).addrAbsoluteX, (*Cpu).adc))
	set(0x7F, memALU((*Cpu).addrAbsoluteLongX, (*Cpu).adc))
	set(0x79, memALU((*Cpu).addrAbsoluteY, (*Cpu).adc))
	set(0x75, memALU((*Cpu).addrDirectX, (*Cpu).adc))
	set(0x61, memALU((*Cpu).addrDirectIndirectX, (*Cpu).adc))
	set(0x71, memALU((*Cpu).addrDirectIndirectY, (*Cpu).adc))
	set(0x77, memALU((*Cpu).addrDirectIndirectLongY, (*Cpu).adc))
	set(0x63, memALU((*Cpu).addrStackRelative, (*Cpu).adc))
	set(0x73, memALU((*Cpu).addrStackRelativeIndirectY, (*Cpu).adc))

	// SBC
	set(0xE9, immALU((*Cpu).sbc))
	set(0xED, memALU((*Cpu).addrAbsolute, (*Cpu).sbc))
	set(0xEF, memALU((*Cpu).addrAbsoluteLong, (*Cpu).sbc))
	set(0xE5, memALU((*Cpu).addrDirect, (*Cpu).sbc))
	set(0xF2, memALU((*Cpu).addrDirectIndirect, (*Cpu).sbc))
	set(0xE7, memALU((*Cpu).addrDirectIndirectLong, (*Cpu).sbc))
	set(0xFD, memALU((*Cpu).addrAbsoluteX, (*Cpu).sbc))
	set(0xFF, memALU((*Cpu).addrAbsoluteLongX, (*Cpu).sbc))
	set(0xF9, memALU((*Cpu).addrAbsoluteY, (*Cpu).sbc))
	set(0xF5, memALU((*Cpu).addrDirectX, (*Cpu).sbc))
	set(0xE1, memALU((*Cpu).addrDirectIndirectX, (*Cpu).sbc))
	set(0xF1, memALU((*Cpu).addrDirectIndirectY, (*Cpu).sbc))
	set(0xF7, memALU((*Cpu).addrDirectIndirectLongY, (*Cpu).sbc))
	set(0xE3, memALU((*Cpu).addrStackRelative, (*Cpu).sbc))
	set(0xF3, memALU((*Cpu).addrStackRelativeIndirectY, (*Cpu).sbc))

	// AND / ORA / EOR
	and, ora, eor := func(c *Cpu, v uint16) { c.and(v) }, func(c *Cpu, v uint16) { c.ora(v) }, func(c *Cpu, v uint16) { c.eor(v) }
	set(0x29, immALUNoErr(and))
	set(0x2D, memALUNoErr((*Cpu).addrAbsolute, and))
	set(0x2F, memALUNoErr((*Cpu).addrAbsoluteLong, and))
	set(0x25, memALUNoErr((*Cpu).addrDirect, and))
	set(0x32, memALUNoErr((*Cpu).addrDirectIndirect, and))
	set(0x27, memALUNoErr((*Cpu).addrDirectIndirectLong, and))
	set(0x3D, memALUNoErr((*Cpu).addrAbsoluteX, and))
	set(0x3F, memALUNoErr((*Cpu).addrAbsoluteLongX, and))
	set(0x39, memALUNoErr((*Cpu).addrAbsoluteY, and))
	set(0x35, memALUNoErr((*Cpu).addrDirectX, and))
	set(0x21, memALUNoErr((*Cpu).addrDirectIndirectX, and))
	set(0x31, memALUNoErr((*Cpu).addrDirectIndirectY, and))
	set(0x37, memALUNoErr((*Cpu).addrDirectIndirectLongY, and))
	set(0x23, memALUNoErr((*Cpu).addrStackRelative, and))
	set(0x33, memALUNoErr((*Cpu).addrStackRelativeIndirectY, and))

	set(0x09, immALUNoErr(ora))
	set(0x0D, memALUNoErr((*Cpu).addrAbsolute, ora))
	set(0x0F, memALUNoErr((*Cpu).addrAbsoluteLong, ora))
	set(0x05, memALUNoErr((*Cpu).addrDirect, ora))
	set(0x12, memALUNoErr((*Cpu).addrDirectIndirect, ora))
	set(0x07, memALUNoErr((*Cpu).addrDirectIndirectLong, ora))
	set(0x1D, memALUNoErr((*Cpu).addrAbsoluteX, ora))
	set(0x1F, memALUNoErr((*Cpu).addrAbsoluteLongX, ora))
	set(0x19, memALUNoErr((*Cpu).addrAbsoluteY, ora))
	set(0x15, memALUNoErr((*Cpu).addrDirectX, ora))
	set(0x01, memALUNoErr((*Cpu).addrDirectIndirectX, ora))
	set(0x11, memALUNoErr((*Cpu).addrDirectIndirectY, ora))
	set(0x17, memALUNoErr((*Cpu).addrDirectIndirectLongY, ora))
	set(0x03, memALUNoErr((*Cpu).addrStackRelative, ora))
	set(0x13, memALUNoErr((*Cpu).addrStackRelativeIndirectY, ora))

	set(0x49, immALUNoErr(eor))
	set(0x4D, memALUNoErr((*Cpu).addrAbsolute, eor))
	set(0x4F, memALUNoErr((*Cpu).addrAbsoluteLong, eor))
	set(0x45, memALUNoErr((*Cpu).addrDirect, eor))
	set(0x52, memALUNoErr((*Cpu).addrDirectIndirect, eor))
	set(0x47, memALUNoErr((*Cpu).addrDirectIndirectLong, eor))
	set(0x5D, memALUNoErr((*Cpu).addrAbsoluteX, eor))
	set(0x5F, memALUNoErr((*Cpu).addrAbsoluteLongX, eor))
	set(0x59, memALUNoErr((*Cpu).addrAbsoluteY, eor))
	set(0x55, memALUNoErr((*Cpu).addrDirectX, eor))
	set(0x41, memALUNoErr((*Cpu).addrDirectIndirectX, eor))
	set(0x51, memALUNoErr((*Cpu).addrDirectIndirectY, eor))
	set(0x57, memALUNoErr((*Cpu).addrDirectIndirectLongY, eor))
	set(0x43, memALUNoErr((*Cpu).addrStackRelative, eor))
	set(0x53, memALUNoErr((*Cpu).addrStackRelativeIndirectY, eor))

	// CMP / CPX / CPY
	set(0xC9, cmpAImm())
	set(0xCD, cmpAAt((*Cpu).addrAbsolute))
	set(0xCF, cmpAAt((*Cpu).addrAbsoluteLong))
	set(0xC5, cmpAAt((*Cpu).addrDirect))
	set(0xD2, cmpAAt((*Cpu).addrDirectIndirect))
	set(0xC7, cmpAAt((*Cpu).addrDirectIndirectLong))
	set(0xDD, cmpAAt((*Cpu).addrAbsoluteX))
	set(0xDF, cmpAAt((*Cpu).addrAbsoluteLongX))
	set(0xD9, cmpAAt((*Cpu).addrAbsoluteY))
	set(0xD5, cmpAAt((*Cpu).addrDirectX))
	set(0xC1, cmpAAt((*Cpu).addrDirectIndirectX))
	set(0xD1, cmpAAt((*Cpu).addrDirectIndirectY))
	set(0xD7, cmpAAt((*Cpu).addrDirectIndirectLongY))
	set(0xC3, cmpAAt((*Cpu).addrStackRelative))
	set(0xD3, cmpAAt((*Cpu).addrStackRelativeIndirectY))

	regX := func(c *Cpu) uint16 { return c.Regs.X }
	regY := func(c *Cpu) uint16 { return c.Regs.Y }
	set(0xE0, cmpIndexImm(regX))
	set(0xEC, cmpIndexAt(regX, (*Cpu).addrAbsolute))
	set(0xE4, cmpIndexAt(regX, (*Cpu).addrDirect))
	set(0xC0, cmpIndexImm(regY))
	set(0xCC, cmpIndexAt(regY, (*Cpu).addrAbsolute))
	set(0xC4, cmpIndexAt(regY, (*Cpu).addrDirect))

	// BIT
	set(0x89, bitImm())
	set(0x2C, bitAt((*Cpu).addrAbsolute, false))
	set(0x24, bitAt((*Cpu).addrDirect, false))
	set(0x3C, bitAt((*Cpu).addrAbsoluteX, false))
	set(0x34, bitAt((*Cpu).addrDirectX, false))

	// TSB / TRB
	set(0x0C, rmwAt((*Cpu).addrAbsolute, (*Cpu).tsb))
	set(0x04, rmwAt((*Cpu).addrDirect, (*Cpu).tsb))
	set(0x1C, rmwAt((*Cpu).addrAbsolute, (*Cpu).trb))
	set(0x14, rmwAt((*Cpu).addrDirect, (*Cpu).trb))

	// Shifts
	set(0x0A, shiftAcc(aslOp))
	set(0x0E, shiftMemAt((*Cpu).addrAbsolute, aslOp))
	set(0x06, shiftMemAt((*Cpu).addrDirect, aslOp))
	set(0x1E, shiftMemAt((*Cpu).addrAbsoluteX, aslOp))
	set(0x16, shiftMemAt((*Cpu).addrDirectX, aslOp))

	set(0x4A, shiftAcc(lsrOp))
	set(0x4E, shiftMemAt((*Cpu).addrAbsolute, lsrOp))
	set(0x46, shiftMemAt((*Cpu).addrDirect, lsrOp))
	set(0x5E, shiftMemAt((*Cpu).addrAbsoluteX, lsrOp))
	set(0x56, shiftMemAt((*Cpu).addrDirectX, lsrOp))

	set(0x2A, shiftAcc(rolOp))
	set(0x2E, shiftMemAt((*Cpu).addrAbsolute, rolOp))
	set(0x26, shiftMemAt((*Cpu).addrDirect, rolOp))
	set(0x3E, shiftMemAt((*Cpu).addrAbsoluteX, rolOp))
	set(0x36, shiftMemAt((*Cpu).addrDirectX, rolOp))

	set(0x6A, shiftAcc(rorOp))
	set(0x6E, shiftMemAt((*Cpu).addrAbsolute, rorOp))
	set(0x66, shiftMemAt((*Cpu).addrDirect, rorOp))
	set(0x7E, shiftMemAt((*Cpu).addrAbsoluteX, rorOp))
	set(0x76, shiftMemAt((*Cpu).addrDirectX, rorOp))

	// INC / DEC on memory
	set(0xEE, rmwAt((*Cpu).addrAbsolute, (*Cpu).incMemory))
	set(0xE6, rmwAt((*Cpu).addrDirect, (*Cpu).incMemory))
	set(0xFE, rmwAt((*Cpu).addrAbsoluteX, (*Cpu).incMemory))
	set(0xF6, rmwAt((*Cpu).addrDirectX, (*Cpu).incMemory))
	set(0xCE, rmwAt((*Cpu).addrAbsolute, (*Cpu).decMemory))
	set(0xC6, rmwAt((*Cpu).addrDirect, (*Cpu).decMemory))
	set(0xDE, rmwAt((*Cpu).addrAbsoluteX, (*Cpu).decMemory))
	set(0xD6, rmwAt((*Cpu).addrDirectX, (*Cpu).decMemory))

	// INC/DEC on A, X, Y
	set(0x1A, plain(func(c *Cpu) {
		c.internalCycle()
		if c.Regs.AWidthIs16() {
			c.Regs.A++
			c.setNZ16(c.Regs.A)
		} else {
			v := uint8(c.Regs.A) + 1
			c.Regs.SetA8Low(v)
			c.setNZ8(v)
		}
	}))
	set(0x3A, plain(func(c *Cpu) {
		c.internalCycle()
		if c.Regs.AWidthIs16() {
			c.Regs.A--
			c.setNZ16(c.Regs.A)
		} else {
			v := uint8(c.Regs.A) - 1
			c.Regs.SetA8Low(v)
			c.setNZ8(v)
		}
	}))
	set(0xE8, plain(func(c *Cpu) {
		c.internalCycle()
		c.writeX(c.Regs.X + 1)
		if c.Regs.IWidthIs16() {
			c.setNZ16(c.Regs.X)
		} else {
			c.setNZ8(uint8(c.Regs.X))
		}
	}))
	set(0xCA, plain(func(c *Cpu) {
		c.internalCycle()
		c.writeX(c.Regs.X - 1)
		if c.Regs.IWidthIs16() {
			c.setNZ16(c.Regs.X)
		} else {
			c.setNZ8(uint8(c.Regs.X))
		}
	}))
	set(0xC8, plain(func(c *Cpu) {
		c.internalCycle()
		c.writeY(c.Regs.Y + 1)
		if c.Regs.IWidthIs16() {
			c.setNZ16(c.Regs.Y)
		} else {
			c.setNZ8(uint8(c.Regs.Y))
		}
	}))
	set(0x88, plain(func(c *Cpu) {
		c.internalCycle()
		c.writeY(c.Regs.Y - 1)
		if c.Regs.IWidthIs16() {
			c.setNZ16(c.Regs.Y)
		} else {
			c.setNZ8(uint8(c.Regs.Y))
		}
	}))

	// LDA / LDX / LDY
	set(0xA9, immALUNoErr(func(c *Cpu, v uint16) { c.lda(v) }))
	set(0xAD, memALUNoErr((*Cpu).addrAbsolute, func(c *Cpu, v uint16) { c.lda(v) }))
	set(0xAF, memALUNoErr((*Cpu).addrAbsoluteLong, func(c *Cpu, v uint16) { c.lda(v) }))
	set(0xA5, memALUNoErr((*Cpu).addrDirect, func(c *Cpu, v uint16) { c.lda(v) }))
	set(0xB2, memALUNoErr((*Cpu).addrDirectIndirect, func(c *Cpu, v uint16) { c.lda(v) }))
	set(0xA7, memALUNoErr((*Cpu).addrDirectIndirectLong, func(c *Cpu, v uint16) { c.lda(v) }))
	set(0xBD, memALUNoErr((*Cpu).addrAbsoluteX, func(c *Cpu, v uint16) { c.lda(v) }))
	set(0xBF, memALUNoErr((*Cpu).addrAbsoluteLongX, func(c *Cpu, v uint16) { c.lda(v) }))
	set(0xB9, memALUNoErr((*Cpu).addrAbsoluteY, func(c *Cpu, v uint16) { c.lda(v) }))
	set(0xB5, memALUNoErr((*Cpu).addrDirectX, func(c *Cpu, v uint16) { c.lda(v) }))
	set(0xA1, memALUNoErr((*Cpu).addrDirectIndirectX, func(c *Cpu, v uint16) { c.lda(v) }))
	set(0xB1, memALUNoErr((*Cpu).addrDirectIndirectY, func(c *Cpu, v uint16) { c.lda(v) }))
	set(0xB7, memALUNoErr((*Cpu).addrDirectIndirectLongY, func(c *Cpu, v uint16) { c.lda(v) }))
	set(0xA3, memALUNoErr((*Cpu).addrStackRelative, func(c *Cpu, v uint16) { c.lda(v) }))
	set(0xB3, memALUNoErr((*Cpu).addrStackRelativeIndirectY, func(c *Cpu, v uint16) { c.lda(v) }))

	set(0xA2, immALUIndex((*Cpu).ldx))
	set(0xAE, memALUIndex((*Cpu).addrAbsolute, (*Cpu).ldx))
	set(0xA6, memALUIndex((*Cpu).addrDirect, (*Cpu).ldx))
	set(0xBE, memALUIndex((*Cpu).addrAbsoluteY, (*Cpu).ldx))
	set(0xB6, memALUIndex((*Cpu).addrDirectY, (*Cpu).ldx))

	set(0xA0, immALUIndex((*Cpu).ldy))
	set(0xAC, memALUIndex((*Cpu).addrAbsolute, (*Cpu).ldy))
	set(0xA4, memALUIndex((*Cpu).addrDirect, (*Cpu).ldy))
	set(0xBC, memALUIndex((*Cpu).addrAbsoluteX, (*Cpu).ldy))
	set(0xB4, memALUIndex((*Cpu).addrDirectX, (*Cpu).ldy))

	// STA / STX / STY / STZ
	set(0x8D, storeAt((*Cpu).addrAbsolute, (*Cpu).sta))
	set(0x8F, storeAt((*Cpu).addrAbsoluteLong, (*Cpu).sta))
	set(0x85, storeAt((*Cpu).addrDirect, (*Cpu).sta))
	set(0x92, storeAt((*Cpu).addrDirectIndirect, (*Cpu).sta))
	set(0x87, storeAt((*Cpu).addrDirectIndirectLong, (*Cpu).sta))
	set(0x9D, storeAt((*Cpu).addrAbsoluteX, (*Cpu).sta))
	set(0x9F, storeAt((*Cpu).addrAbsoluteLongX, (*Cpu).sta))
	set(0x99, storeAt((*Cpu).addrAbsoluteY, (*Cpu).sta))
	set(0x95, storeAt((*Cpu).addrDirectX, (*Cpu).sta))
	set(0x81, storeAt((*Cpu).addrDirectIndirectX, (*Cpu).sta))
	set(0x91, storeAt((*Cpu).addrDirectIndirectY, (*Cpu).sta))
	set(0x97, storeAt((*Cpu).addrDirectIndirectLongY, (*Cpu).sta))
	set(0x83, storeAt((*Cpu).addrStackRelative, (*Cpu).sta))
	set(0x93, storeAt((*Cpu).addrStackRelativeIndirectY, (*Cpu).sta))

	set(0x8E, storeAt((*Cpu).addrAbsolute, (*Cpu).stx))
	set(0x86, storeAt((*Cpu).addrDirect, (*Cpu).stx))
	set(0x96, storeAt((*Cpu).addrDirectY, (*Cpu).stx))

	set(0x8C, storeAt((*Cpu).addrAbsolute, (*Cpu).sty))
	set(0x84, storeAt((*Cpu).addrDirect, (*Cpu).sty))
	set(0x94, storeAt((*Cpu).addrDirectX, (*Cpu).sty))

	set(0x9C, storeAt((*Cpu).addrAbsolute, (*Cpu).stz))
	set(0x64, storeAt((*Cpu).addrDirect, (*Cpu).stz))
	set(0x9E, storeAt((*Cpu).addrAbsoluteX, (*Cpu).stz))
	set(0x74, storeAt((*Cpu).addrDirectX, (*Cpu).stz))

	// Branches / jumps / subroutines
	set(0x90, plain(func(c *Cpu) { c.branchIf(!c.Regs.PSW().Carry()) }))
	set(0xB0, plain(func(c *Cpu) { c.branchIf(c.Regs.PSW().Carry()) }))
	set(0xF0, plain(func(c *Cpu) { c.branchIf(c.Regs.PSW().Zero()) }))
	set(0xD0, plain(func(c *Cpu) { c.branchIf(!c.Regs.PSW().Zero()) }))
	set(0x30, plain(func(c *Cpu) { c.branchIf(c.Regs.PSW().Negative()) }))
	set(0x10, plain(func(c *Cpu) { c.branchIf(!c.Regs.PSW().Negative()) }))
	set(0x50, plain(func(c *Cpu) { c.branchIf(!c.Regs.PSW().Overflow()) }))
	set(0x70, plain(func(c *Cpu) { c.branchIf(c.Regs.PSW().Overflow()) }))
	set(0x80, plain((*Cpu).bra))
	set(0x82, plain((*Cpu).brl))

	set(0x4C, plain((*Cpu).jmpAbsolute))
	set(0x5C, plain((*Cpu).jmpAbsoluteLong))
	set(0x6C, plain((*Cpu).jmpIndirect))
	set(0x7C, plain((*Cpu).jmpIndirectX))
	set(0xDC, plain((*Cpu).jmlIndirectLong))
	set(0x20, plain((*Cpu).jsr))
	set(0xFC, plain((*Cpu).jsrIndirectX))
	set(0x22, plain((*Cpu).jsl))
	set(0x60, plain((*Cpu).rts))
	set(0x6B, plain((*Cpu).rtl))
	set(0x40, plain((*Cpu).rti))
	set(0x00, plain((*Cpu).brk))
	set(0x02, plain((*Cpu).cop))
	set(0x42, plain(func(c *Cpu) { c.fetchByte() })) // WDM: reserved 2-byte NOP

	// Stack
	set(0x48, plain((*Cpu).pha))
	set(0x68, plain((*Cpu).pla))
	set(0xDA, plain((*Cpu).phx))
	set(0xFA, plain((*Cpu).plx))
	set(0x5A, plain((*Cpu).phy))
	set(0x7A, plain((*Cpu).ply))
	set(0x08, plain((*Cpu).php))
	set(0x28, plain((*Cpu).plp))
	set(0xF4, plain((*Cpu).pea))
	set(0xD4, plain((*Cpu).pei))
	set(0x62, plain((*Cpu).per))
	set(0x8B, plain((*Cpu).phb))
	set(0xAB, plain((*Cpu).plb))
	set(0x0B, plain((*Cpu).phd))
	set(0x2B, plain((*Cpu).pld))
	set(0x4B, plain((*Cpu).phk))

	// Transfers / flags / misc
	set(0xAA, plain((*Cpu).tax))
	set(0xA8, plain((*Cpu).tay))
	set(0x8A, plain((*Cpu).txa))
	set(0x98, plain((*Cpu).tya))
	set(0xBA, plain((*Cpu).tsx))
	set(0x9A, plain((*Cpu).txs))
	set(0x9B, plain((*Cpu).txy))
	set(0xBB, plain((*Cpu).tyx))
	set(0x5B, plain((*Cpu).tcd))
	set(0x7B, plain((*Cpu).tdc))
	set(0x1B, plain((*Cpu).tcs))
	set(0x3B, plain((*Cpu).tsc))
	set(0xEB, plain((*Cpu).xba))
	set(0xFB, (*Cpu).xce)

	set(0x18, plain((*Cpu).clc))
	set(0x38, plain((*Cpu).sec))
	set(0x58, plain((*Cpu).cli))
	set(0x78, plain((*Cpu).sei))
	set(0xD8, plain((*Cpu).cld))
	set(0xF8, plain((*Cpu).sed))
	set(0xB8, plain((*Cpu).clv))
	set(0xC2, plain(func(c *Cpu) { c.rep(c.fetchByte()) }))
	set(0xE2, plain(func(c *Cpu) { c.sep(c.fetchByte()) }))
	set(0xCB, plain((*Cpu).wai))
	set(0xDB, plain((*Cpu).stp))
	set(0xEA, plain((*Cpu).nop))
	set(0x44, plain((*Cpu).mvp))
	set(0x54, plain((*Cpu).mvn))
}
