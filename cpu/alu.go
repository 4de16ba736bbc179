package cpu

// This file implements the 65C816 data-movement and arithmetic/logic
// instruction classes. Each instruction is width-generic: it reads the
// m/x flag off Regs.PSW() at execution time rather than being
// monomorphized per width (spec.md §9, option (b) dispatch strategy).

// fetchImmValue reads an immediate operand sized to the accumulator
// width.
func (c *Cpu) fetchImmValue() uint16 {
	if c.Regs.AWidthIs16() {
		return c.fetchWord()
	}
	return uint16(c.fetchByte())
}

// fetchImmIndex reads an immediate operand sized to the index-register
// width.
func (c *Cpu) fetchImmIndex() uint16 {
	if c.Regs.IWidthIs16() {
		return c.fetchWord()
	}
	return uint16(c.fetchByte())
}

func (c *Cpu) setNZ8(v uint8) {
	p := c.Regs.PSW()
	p = p.SetZero(v == 0).SetNegative(v&0x80 != 0)
	c.Regs.SetPSW(p)
}

func (c *Cpu) setNZ16(v uint16) {
	p := c.Regs.PSW()
	p = p.SetZero(v == 0).SetNegative(v&0x8000 != 0)
	c.Regs.SetPSW(p)
}

func (c *Cpu) writeX(v uint16) {
	if c.Regs.IWidthIs16() {
		c.Regs.X = v
	} else {
		c.Regs.X = v & 0xFF
	}
}

func (c *Cpu) writeY(v uint16) {
	if c.Regs.IWidthIs16() {
		c.Regs.Y = v
	} else {
		c.Regs.Y = v & 0xFF
	}
}

// readOperandValue reads an 8- or 16-bit value from op depending on
// width16.
func (c *Cpu) readOperandValue(op operand, width16 bool) uint16 {
	if width16 {
		return c.readOperandWord(op)
	}
	return uint16(c.readOperandByte(op))
}

func (c *Cpu) writeOperandValue(op operand, v uint16, width16 bool) {
	if width16 {
		c.writeOperandWord(op, v)
	} else {
		c.writeOperandByte(op, uint8(v))
	}
}

// adc adds m plus carry into A, honoring the A-width flag. Decimal mode is
// out of scope (spec.md §7): with the decimal flag set, adc returns
// ErrUnimplemented and leaves A and the flags unchanged.
func (c *Cpu) adc(m uint16) error {
	if c.Regs.PSW().Decimal() {
		return ErrUnimplemented
	}
	p := c.Regs.PSW()
	carryIn := uint32(0)
	if p.Carry() {
		carryIn = 1
	}
	if c.Regs.AWidthIs16() {
		sum := uint32(c.Regs.A) + uint32(m) + carryIn
		result := uint16(sum)
		overflow := (^(c.Regs.A ^ m) & (c.Regs.A ^ result) & 0x8000) != 0
		p = p.SetCarry(sum > 0xFFFF).SetOverflow(overflow)
		c.Regs.A = result
		c.setNZ16(result)
	} else {
		a8 := uint8(c.Regs.A)
		m8 := uint8(m)
		sum := uint32(a8) + uint32(m8) + carryIn
		result := uint8(sum)
		overflow := (^(a8 ^ m8) & (a8 ^ result) & 0x80) != 0
		p = p.SetCarry(sum > 0xFF).SetOverflow(overflow)
		c.Regs.SetA8Low(result)
		c.setNZ8(result)
	}
	c.Regs.SetPSW(p)
	return nil
}

// sbc subtracts m (with borrow) from A; implemented as adc against the
// ones' complement of m, the classic 6502/65816 identity.
func (c *Cpu) sbc(m uint16) error {
	if c.Regs.AWidthIs16() {
		return c.adc(^m)
	}
	return c.adc(^m & 0xFF)
}

func (c *Cpu) cmp(reg uint16, m uint16, width16 bool) {
	if width16 {
		c.Regs.SetPSW(c.Regs.PSW().SetCarry(reg >= m))
		c.setNZ16(reg - m)
	} else {
		r8, m8 := uint8(reg), uint8(m)
		c.Regs.SetPSW(c.Regs.PSW().SetCarry(r8 >= m8))
		c.setNZ8(r8 - m8)
	}
}

func (c *Cpu) and(m uint16) {
	if c.Regs.AWidthIs16() {
		c.Regs.A &= m
		c.setNZ16(c.Regs.A)
	} else {
		v := uint8(c.Regs.A) & uint8(m)
		c.Regs.SetA8Low(v)
		c.setNZ8(v)
	}
}

func (c *Cpu) ora(m uint16) {
	if c.Regs.AWidthIs16() {
		c.Regs.A |= m
		c.setNZ16(c.Regs.A)
	} else {
		v := uint8(c.Regs.A) | uint8(m)
		c.Regs.SetA8Low(v)
		c.setNZ8(v)
	}
}

func (c *Cpu) eor(m uint16) {
	if c.Regs.AWidthIs16() {
		c.Regs.A ^= m
		c.setNZ16(c.Regs.A)
	} else {
		v := uint8(c.Regs.A) ^ uint8(m)
		c.Regs.SetA8Low(v)
		c.setNZ8(v)
	}
}

// bit tests A & m. Non-immediate addressing additionally copies the top
// two bits of m into N and V (bits 7 and 6 at 8-bit width, bits 15 and 14
// at 16-bit width; spec.md §4.4); immediate addressing affects only Z.
func (c *Cpu) bit(m uint16, immediate bool) {
	p := c.Regs.PSW()
	if c.Regs.AWidthIs16() {
		p = p.SetZero(c.Regs.A&m == 0)
		if !immediate {
			p = p.SetNegative(m&0x8000 != 0).SetOverflow(m&0x4000 != 0)
		}
	} else {
		a8, m8 := uint8(c.Regs.A), uint8(m)
		p = p.SetZero(a8&m8 == 0)
		if !immediate {
			p = p.SetNegative(m8&0x80 != 0).SetOverflow(m8&0x40 != 0)
		}
	}
	c.Regs.SetPSW(p)
}

func (c *Cpu) tsb(op operand) {
	width16 := c.Regs.AWidthIs16()
	m := c.readOperandValue(op, width16)
	c.internalCycle()
	if width16 {
		c.Regs.SetPSW(c.Regs.PSW().SetZero(m&c.Regs.A == 0))
		c.writeOperandValue(op, m|c.Regs.A, true)
	} else {
		a8 := uint8(c.Regs.A)
		c.Regs.SetPSW(c.Regs.PSW().SetZero(uint8(m)&a8 == 0))
		c.writeOperandValue(op, uint16(uint8(m)|a8), false)
	}
}

func (c *Cpu) trb(op operand) {
	width16 := c.Regs.AWidthIs16()
	m := c.readOperandValue(op, width16)
	c.internalCycle()
	if width16 {
		c.Regs.SetPSW(c.Regs.PSW().SetZero(m&c.Regs.A == 0))
		c.writeOperandValue(op, m&^c.Regs.A, true)
	} else {
		a8 := uint8(c.Regs.A)
		c.Regs.SetPSW(c.Regs.PSW().SetZero(uint8(m)&a8 == 0))
		c.writeOperandValue(op, uint16(uint8(m)&^a8), false)
	}
}

// shiftOp is any of ASL/LSR/ROL/ROR's core transform on a width-generic
// value, returning the result and the new carry.
type shiftOp func(v uint16, width16 bool, carryIn bool) (result uint16, carryOut bool)

func aslOp(v uint16, width16 bool, _ bool) (uint16, bool) {
	if width16 {
		return v << 1, v&0x8000 != 0
	}
	return uint16(uint8(v) << 1), v&0x80 != 0
}

func lsrOp(v uint16, width16 bool, _ bool) (uint16, bool) {
	if width16 {
		return v >> 1, v&1 != 0
	}
	return uint16(uint8(v) >> 1), v&1 != 0
}

func rolOp(v uint16, width16 bool, carryIn bool) (uint16, bool) {
	r, carryOut := aslOp(v, width16, carryIn)
	if carryIn {
		r |= 1
	}
	return r, carryOut
}

func rorOp(v uint16, width16 bool, carryIn bool) (uint16, bool) {
	carryOut := v&1 != 0
	var r uint16
	if width16 {
		r = v >> 1
		if carryIn {
			r |= 0x8000
		}
	} else {
		r = uint16(uint8(v) >> 1)
		if carryIn {
			r |= 0x80
		}
	}
	return r, carryOut
}

// applyShiftAccumulator runs op against A in place, paying the one
// internal cycle real hardware spends on the accumulator-mode RMW path.
func (c *Cpu) applyShiftAccumulator(op shiftOp) {
	c.internalCycle()
	width16 := c.Regs.AWidthIs16()
	result, carryOut := op(c.Regs.A, width16, c.Regs.PSW().Carry())
	c.Regs.SetPSW(c.Regs.PSW().SetCarry(carryOut))
	if width16 {
		c.Regs.A = result
		c.setNZ16(result)
	} else {
		c.Regs.SetA8Low(uint8(result))
		c.setNZ8(uint8(result))
	}
}

// applyShiftMemory runs op against the operand's memory location,
// performing the classic read-modify-write bus sequence.
func (c *Cpu) applyShiftMemory(addr operand, op shiftOp) {
	width16 := c.Regs.AWidthIs16()
	v := c.readOperandValue(addr, width16)
	c.internalCycle()
	result, carryOut := op(v, width16, c.Regs.PSW().Carry())
	c.Regs.SetPSW(c.Regs.PSW().SetCarry(carryOut))
	c.writeOperandValue(addr, result, width16)
	if width16 {
		c.setNZ16(result)
	} else {
		c.setNZ8(uint8(result))
	}
}

func (c *Cpu) incMemory(addr operand) {
	width16 := c.Regs.AWidthIs16()
	v := c.readOperandValue(addr, width16)
	c.internalCycle()
	v++
	c.writeOperandValue(addr, v, width16)
	if width16 {
		c.setNZ16(v)
	} else {
		c.setNZ8(uint8(v))
	}
}

func (c *Cpu) decMemory(addr operand) {
	width16 := c.Regs.AWidthIs16()
	v := c.readOperandValue(addr, width16)
	c.internalCycle()
	v--
	c.writeOperandValue(addr, v, width16)
	if width16 {
		c.setNZ16(v)
	} else {
		c.setNZ8(uint8(v))
	}
}

func (c *Cpu) lda(m uint16) {
	if c.Regs.AWidthIs16() {
		c.Regs.A = m
		c.setNZ16(m)
	} else {
		c.Regs.SetA8Low(uint8(m))
		c.setNZ8(uint8(m))
	}
}

func (c *Cpu) ldx(m uint16) {
	c.writeX(m)
	if c.Regs.IWidthIs16() {
		c.setNZ16(m)
	} else {
		c.setNZ8(uint8(m))
	}
}

func (c *Cpu) ldy(m uint16) {
	c.writeY(m)
	if c.Regs.IWidthIs16() {
		c.setNZ16(m)
	} else {
		c.setNZ8(uint8(m))
	}
}

func (c *Cpu) sta(op operand) { c.writeOperandValue(op, c.Regs.A, c.Regs.AWidthIs16()) }
func (c *Cpu) stx(op operand) { c.writeOperandValue(op, c.Regs.X, c.Regs.IWidthIs16()) }
func (c *Cpu) sty(op operand) { c.writeOperandValue(op, c.Regs.Y, c.Regs.IWidthIs16()) }
func (c *Cpu) stz(op operand) { c.writeOperandValue(op, 0, c.Regs.AWidthIs16()) }
