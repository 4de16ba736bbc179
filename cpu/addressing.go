package cpu

// AddrMode identifies one of the 65C816 addressing modes named in the
// addressing-mode table (spec.md §4.4).
type AddrMode int

const (
	AddrImplied AddrMode = iota
	AddrAccumulator
	AddrImmediate8
	AddrImmediate16 // width depends on the m/x flag of the instruction class
	AddrDirect
	AddrDirectX
	AddrDirectY
	AddrDirectIndirect
	AddrDirectIndirectLong
	AddrDirectIndirectX
	AddrDirectIndirectY
	AddrDirectIndirectLongY
	AddrAbsolute
	AddrAbsoluteX
	AddrAbsoluteY
	AddrAbsoluteLong
	AddrAbsoluteLongX
	AddrAbsoluteIndirect
	AddrAbsoluteIndirectX
	AddrAbsoluteIndirectLong
	AddrStackRelative
	AddrStackRelativeIndirectY
	AddrRelative8
	AddrRelative16
	AddrBlockMove
)

// operand is a resolved effective address. Register-only modes
// (Accumulator, Implied, Immediate) are handled by the instruction itself
// rather than through operand.
type operand struct {
	bank uint8
	addr uint16
}

func (c *Cpu) readOperandByte(op operand) uint8               { return c.readByte(op.bank, op.addr) }
func (c *Cpu) writeOperandByte(op operand, v uint8)            { c.writeByte(op.bank, op.addr, v) }
func (c *Cpu) readOperandWord(op operand) uint16               { return c.readWord(op.bank, op.addr) }
func (c *Cpu) writeOperandWord(op operand, v uint16)            { c.writeWord(op.bank, op.addr, v) }

// directPageExtraCycle accounts for the one-cycle penalty direct-page
// addressing pays whenever D's low byte is nonzero (spec.md §4.4).
func (c *Cpu) directPageExtraCycle() {
	if uint8(c.Regs.D) != 0 {
		c.internalCycle()
	}
}

// directBase resolves the bare d8 operand against D, applying the
// emulation-mode/DL=0 zero-page wraparound quirk.
func (c *Cpu) directBase(d8 uint8) uint16 {
	return c.Regs.D + uint16(d8)
}

// directIndexed resolves d8 indexed by idx. In emulation mode with DL=0,
// hardware adds d8+idx with 8-bit wraparound before adding D, instead of a
// full 16-bit addition (a documented 65C816 quirk).
func (c *Cpu) directIndexed(d8 uint8, idx uint16) uint16 {
	if c.Regs.EmulationMode() && uint8(c.Regs.D) == 0 {
		low := d8 + uint8(idx)
		return c.Regs.D + uint16(low)
	}
	return c.Regs.D + uint16(d8) + idx
}

func (c *Cpu) addrDirect() operand {
	d8 := c.fetchByte()
	c.directPageExtraCycle()
	return operand{bank: 0, addr: c.directBase(d8)}
}

func (c *Cpu) addrDirectX() operand {
	d8 := c.fetchByte()
	c.directPageExtraCycle()
	c.internalCycle()
	return operand{bank: 0, addr: c.directIndexed(d8, c.Regs.X)}
}

func (c *Cpu) addrDirectY() operand {
	d8 := c.fetchByte()
	c.directPageExtraCycle()
	c.internalCycle()
	return operand{bank: 0, addr: c.directIndexed(d8, c.Regs.Y)}
}

// addrDirectIndirect resolves (d8): a 16-bit pointer in bank 0 combined
// with the current data bank.
func (c *Cpu) addrDirectIndirect() operand {
	d8 := c.fetchByte()
	c.directPageExtraCycle()
	ptr := c.readWord(0, c.directBase(d8))
	return operand{bank: c.Regs.DB, addr: ptr}
}

// addrDirectIndirectLong resolves [d8]: a 24-bit pointer in bank 0.
func (c *Cpu) addrDirectIndirectLong() operand {
	d8 := c.fetchByte()
	c.directPageExtraCycle()
	base := c.directBase(d8)
	lo := c.readWord(0, base)
	bank := c.readByte(0, base+2)
	return operand{bank: bank, addr: lo}
}

// addrDirectIndirectX resolves (d8,X): index applied before the
// indirection, within bank 0.
func (c *Cpu) addrDirectIndirectX() operand {
	d8 := c.fetchByte()
	c.directPageExtraCycle()
	c.internalCycle()
	ptr := c.readWord(0, c.directIndexed(d8, c.Regs.X))
	return operand{bank: c.Regs.DB, addr: ptr}
}

// addrDirectIndirectY resolves (d8),Y: index applied after the
// indirection, against the data bank.
func (c *Cpu) addrDirectIndirectY() operand {
	d8 := c.fetchByte()
	c.directPageExtraCycle()
	base := c.readWord(0, c.directBase(d8))
	return operand{bank: c.Regs.DB, addr: base + c.Regs.Y}
}

// addrDirectIndirectLongY resolves [d8],Y: 24-bit pointer plus Y, no data
// bank involved since the pointer already carries its own bank byte.
func (c *Cpu) addrDirectIndirectLongY() operand {
	d8 := c.fetchByte()
	c.directPageExtraCycle()
	base := c.directBase(d8)
	lo := c.readWord(0, base)
	bank := c.readByte(0, base+2)
	sum := uint32(lo) + uint32(c.Regs.Y)
	return operand{bank: bank + uint8(sum>>16), addr: uint16(sum)}
}

func (c *Cpu) addrAbsolute() operand {
	a16 := c.fetchWord()
	return operand{bank: c.Regs.DB, addr: a16}
}

// indexCrossPenalty spends an extra cycle when adding idx to base crosses
// a page boundary, for instructions whose timing depends on it.
func (c *Cpu) indexCrossPenalty(base, idx uint16) {
	if (base & 0xFF00) != ((base + idx) & 0xFF00) {
		c.internalCycle()
	}
}

func (c *Cpu) addrAbsoluteX() operand {
	a16 := c.fetchWord()
	c.indexCrossPenalty(a16, c.Regs.X)
	return operand{bank: c.Regs.DB, addr: a16 + c.Regs.X}
}

func (c *Cpu) addrAbsoluteY() operand {
	a16 := c.fetchWord()
	c.indexCrossPenalty(a16, c.Regs.Y)
	return operand{bank: c.Regs.DB, addr: a16 + c.Regs.Y}
}

func (c *Cpu) addrAbsoluteLong() operand {
	a24 := c.fetchLong()
	return operand{bank: uint8(a24 >> 16), addr: uint16(a24)}
}

func (c *Cpu) addrAbsoluteLongX() operand {
	a24 := c.fetchLong()
	sum := uint32(uint16(a24)) + uint32(c.Regs.X)
	return operand{bank: uint8(a24>>16) + uint8(sum>>16), addr: uint16(sum)}
}

func (c *Cpu) addrStackRelative() operand {
	d8 := c.fetchByte()
	c.internalCycle()
	return operand{bank: 0, addr: c.Regs.SP + uint16(d8)}
}

func (c *Cpu) addrStackRelativeIndirectY() operand {
	d8 := c.fetchByte()
	c.internalCycle()
	base := c.readWord(0, c.Regs.SP+uint16(d8))
	c.internalCycle()
	return operand{bank: c.Regs.DB, addr: base + c.Regs.Y}
}

// addrAbsoluteIndirect resolves (a) for JMP: a 16-bit pointer in bank 0.
func (c *Cpu) addrAbsoluteIndirect() operand {
	a16 := c.fetchWord()
	ptr := c.readWord(0, a16)
	return operand{bank: c.Regs.PB, addr: ptr}
}

// addrAbsoluteIndirectX resolves (a,X) for JMP/JSR, indexed within PB
// before indirection.
func (c *Cpu) addrAbsoluteIndirectX() operand {
	a16 := c.fetchWord()
	c.internalCycle()
	ptr := c.readWord(c.Regs.PB, a16+c.Regs.X)
	return operand{bank: c.Regs.PB, addr: ptr}
}

// addrAbsoluteIndirectLong resolves [a] for JML: a 24-bit pointer in bank
// 0.
func (c *Cpu) addrAbsoluteIndirectLong() operand {
	a16 := c.fetchWord()
	lo := c.readWord(0, a16)
	bank := c.readByte(0, a16+2)
	return operand{bank: bank, addr: lo}
}
