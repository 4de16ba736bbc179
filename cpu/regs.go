package cpu

// PSW is the 65C816 processor status word. Bit layout matches the real
// hardware register: carry, zero, irqs-disabled, decimal, index-8, a-8,
// overflow, negative, from bit 0 to bit 7.
type PSW uint8

const (
	FlagCarry      PSW = 1 << 0
	FlagZero       PSW = 1 << 1
	FlagIrqDisable PSW = 1 << 2
	FlagDecimal    PSW = 1 << 3
	FlagIndex8     PSW = 1 << 4
	FlagA8         PSW = 1 << 5
	FlagOverflow   PSW = 1 << 6
	FlagNegative   PSW = 1 << 7
)

func (p PSW) Carry() bool      { return p&FlagCarry != 0 }
func (p PSW) Zero() bool       { return p&FlagZero != 0 }
func (p PSW) IrqDisable() bool { return p&FlagIrqDisable != 0 }
func (p PSW) Decimal() bool    { return p&FlagDecimal != 0 }
func (p PSW) Index8() bool     { return p&FlagIndex8 != 0 }
func (p PSW) A8() bool         { return p&FlagA8 != 0 }
func (p PSW) Overflow() bool   { return p&FlagOverflow != 0 }
func (p PSW) Negative() bool   { return p&FlagNegative != 0 }

func (p PSW) with(flag PSW, set bool) PSW {
	if set {
		return p | flag
	}
	return p &^ flag
}

func (p PSW) SetCarry(v bool) PSW      { return p.with(FlagCarry, v) }
func (p PSW) SetZero(v bool) PSW       { return p.with(FlagZero, v) }
func (p PSW) SetIrqDisable(v bool) PSW { return p.with(FlagIrqDisable, v) }
func (p PSW) SetDecimal(v bool) PSW    { return p.with(FlagDecimal, v) }
func (p PSW) SetIndex8(v bool) PSW     { return p.with(FlagIndex8, v) }
func (p PSW) SetA8(v bool) PSW         { return p.with(FlagA8, v) }
func (p PSW) SetOverflow(v bool) PSW   { return p.with(FlagOverflow, v) }
func (p PSW) SetNegative(v bool) PSW   { return p.with(FlagNegative, v) }

// Regs is the 65C816 register file.
type Regs struct {
	A  uint16
	X  uint16
	Y  uint16
	SP uint16
	PC uint16
	D  uint16 // direct-page offset

	PB uint8 // code bank
	DB uint8 // data bank

	psw            PSW
	emulationMode  bool
}

// NewRegs returns a register file in its post-construction (pre-reset)
// state; Cpu.Reset establishes the actual power-on/reset values.
func NewRegs() *Regs {
	return &Regs{SP: 0x01FC}
}

func (r *Regs) PSW() PSW { return r.psw }

// SetPSW installs a new status word. Setting index-8 immediately masks X
// and Y to 8 bits (spec.md §3 invariant).
func (r *Regs) SetPSW(p PSW) {
	r.psw = p
	if r.psw.Index8() {
		r.X &= 0xFF
		r.Y &= 0xFF
	}
}

func (r *Regs) EmulationMode() bool { return r.emulationMode }

// SetEmulationMode transitions into or out of 6502-compatible emulation
// mode. Only the reset path may set it true; entering emulation mode any
// other way (XCE with carry set while already in native mode) is reported
// as ErrUnimplemented rather than silently accepted (spec.md §7).
func (r *Regs) SetEmulationMode(value, isReset bool) error {
	if value && !r.emulationMode && !isReset {
		return ErrUnimplemented
	}
	r.emulationMode = value
	return nil
}

// SetA8Low writes only the low byte of A, leaving the high byte intact —
// the 8-bit-accumulator-width update rule (spec.md §4.3).
func (r *Regs) SetA8Low(v uint8) {
	r.A = r.A&0xFF00 | uint16(v)
}

// AWidthIs16 reports whether the accumulator currently operates in 16-bit
// mode.
func (r *Regs) AWidthIs16() bool { return !r.psw.A8() }

// IWidthIs16 reports whether the index registers currently operate in
// 16-bit mode.
func (r *Regs) IWidthIs16() bool { return !r.psw.Index8() }

// StackAddr returns the bank-zero address the stack pointer currently
// references. In emulation mode SP is confined to page 1 ($0100-$01FF);
// spec.md §3's emulation_mode invariant is enforced by SoftReset and by
// every stack push/pop, never by this accessor alone.
func (r *Regs) StackAddr() uint16 {
	if r.emulationMode {
		return 0x0100 | (r.SP & 0xFF)
	}
	return r.SP
}
