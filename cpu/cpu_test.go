package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bdwalton/gosnes/scheduler"
)

// fakeBus is a flat 24-bit address space backing store for CPU tests,
// indexed the same way the addressing-mode helpers compute effective
// addresses.
type fakeBus struct {
	mem [0x1000000]byte
}

func (b *fakeBus) Read(bank uint8, addr uint16) uint8 { return b.mem[uint32(bank)<<16|uint32(addr)] }
func (b *fakeBus) Write(bank uint8, addr uint16, v uint8) {
	b.mem[uint32(bank)<<16|uint32(addr)] = v
}
func (b *fakeBus) Cycles(bank uint8, addr uint16) scheduler.Time { return 2 }

func newTestCpu() (*Cpu, *fakeBus) {
	bus := &fakeBus{}
	sched := scheduler.New()
	c := New(bus, sched)
	c.Reset()
	// The CPU is left in emulation mode; tests that need native mode call
	// enterNative (XCE with carry clear).
	return c, bus
}

func enterNative(t *testing.T, c *Cpu) {
	t.Helper()
	c.Regs.SetPSW(c.Regs.PSW().SetCarry(false))
	require.NoError(t, c.xce())
}

func TestAdcBinary8BitCarryAndOverflow(t *testing.T) {
	c, _ := newTestCpu()
	enterNative(t, c)
	c.Regs.SetPSW(c.Regs.PSW().SetA8(true).SetCarry(false))
	c.Regs.A = 0x50
	require.NoError(t, c.adc(0x50))
	assert.Equal(t, uint16(0xA0), c.Regs.A)
	assert.True(t, c.Regs.PSW().Overflow(), "signed overflow: 0x50+0x50 crosses into negative range")
	assert.False(t, c.Regs.PSW().Carry())
}

func TestAdcBinary16Bit(t *testing.T) {
	c, _ := newTestCpu()
	enterNative(t, c)
	c.Regs.SetPSW(c.Regs.PSW().SetA8(false).SetCarry(false))
	c.Regs.A = 0xFFFF
	require.NoError(t, c.adc(1))
	assert.Equal(t, uint16(0), c.Regs.A)
	assert.True(t, c.Regs.PSW().Carry())
	assert.True(t, c.Regs.PSW().Zero())
}

func TestAdcDecimalModeUnimplemented(t *testing.T) {
	c, _ := newTestCpu()
	enterNative(t, c)
	c.Regs.SetPSW(c.Regs.PSW().SetDecimal(true))
	assert.ErrorIs(t, c.adc(1), ErrUnimplemented)
}

func TestCmpCarrySetOnEquality(t *testing.T) {
	c, _ := newTestCpu()
	enterNative(t, c)
	c.Regs.A = 0x10
	c.cmp(c.Regs.A, 0x10, c.Regs.AWidthIs16())
	assert.True(t, c.Regs.PSW().Carry())
	assert.True(t, c.Regs.PSW().Zero())
}

func TestRepClearsRequestedBits(t *testing.T) {
	c, _ := newTestCpu()
	enterNative(t, c)
	c.Regs.SetPSW(c.Regs.PSW().SetCarry(true).SetA8(true))
	c.rep(uint8(FlagCarry | FlagA8))
	assert.False(t, c.Regs.PSW().Carry())
	assert.False(t, c.Regs.PSW().A8())
}

func TestXceLeavesEmulationModeOnFirstCall(t *testing.T) {
	c, _ := newTestCpu()
	require.True(t, c.Regs.EmulationMode(), "Reset always starts in emulation mode")
	require.NoError(t, c.xce())
	assert.False(t, c.Regs.EmulationMode())
}

func TestXceCannotReturnToEmulationModeOutsideReset(t *testing.T) {
	c, _ := newTestCpu()
	require.NoError(t, c.xce()) // emulation -> native
	c.Regs.SetPSW(c.Regs.PSW().SetCarry(true))
	assert.ErrorIs(t, c.xce(), ErrUnimplemented)
}

func TestPhaPlaRoundTrip(t *testing.T) {
	c, _ := newTestCpu()
	enterNative(t, c)
	c.Regs.SetPSW(c.Regs.PSW().SetA8(false))
	c.Regs.A = 0x1234
	c.pha()
	c.Regs.A = 0
	c.pla()
	assert.Equal(t, uint16(0x1234), c.Regs.A)
}

func TestWaiWakesOnNmi(t *testing.T) {
	c, bus := newTestCpu()
	enterNative(t, c)
	c.Regs.PC = 0x8000
	bus.Write(0, 0xFFEA, 0x00)
	bus.Write(0, 0xFFEB, 0x90) // native NMI vector -> $9000

	c.wai()
	assert.True(t, c.Irqs.WaitingForException())

	c.Irqs.RequestNmi(c.sched)
	assert.False(t, c.Irqs.WaitingForException())

	require.NoError(t, c.Step())
	assert.Equal(t, uint16(0x9000), c.Regs.PC)
	assert.False(t, c.Irqs.ProcessingNmi())
}

func TestRolRorRoundTrip(t *testing.T) {
	c, _ := newTestCpu()
	enterNative(t, c)
	c.Regs.SetPSW(c.Regs.PSW().SetA8(true).SetCarry(false))
	c.Regs.SetA8Low(0x81)
	c.applyShiftAccumulator(rolOp)
	assert.True(t, c.Regs.PSW().Carry(), "bit 7 of 0x81 shifts into carry")
	c.applyShiftAccumulator(rorOp)
	assert.Equal(t, uint8(0x81), uint8(c.Regs.A))
}

func TestDirectIndexedWraparoundQuirkInEmulationMode(t *testing.T) {
	c, _ := newTestCpu()
	// Still in emulation mode (post Reset): D is 0.
	require.True(t, c.Regs.EmulationMode())
	require.Equal(t, uint16(0), c.Regs.D)

	got := c.directIndexed(0xF0, 0x20)
	assert.Equal(t, uint16(0x10), got, "d8+X wraps within the page when D low byte is zero in emulation mode")
}
