package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPhxPlxRespectsIndexWidth(t *testing.T) {
	c, _ := newTestCpu()
	enterNative(t, c)
	c.Regs.SetPSW(c.Regs.PSW().SetIndex8(true))
	c.Regs.X = 0x42
	c.phx()
	c.Regs.X = 0
	c.plx()
	assert.Equal(t, uint16(0x42), c.Regs.X)
}

func TestPhpPlpRoundTrip(t *testing.T) {
	c, _ := newTestCpu()
	enterNative(t, c)
	c.Regs.SetPSW(c.Regs.PSW().SetCarry(true).SetNegative(true))
	saved := c.Regs.PSW()
	c.php()
	c.Regs.SetPSW(0)
	c.plp()
	assert.Equal(t, saved, c.Regs.PSW())
}

func TestPhbPlbRoundTrip(t *testing.T) {
	c, _ := newTestCpu()
	enterNative(t, c)
	c.Regs.DB = 0x7E
	c.phb()
	c.Regs.DB = 0
	c.plb()
	assert.Equal(t, uint8(0x7E), c.Regs.DB)
}

func TestPeaPushesImmediateWord(t *testing.T) {
	c, bus := newTestCpu()
	enterNative(t, c)
	c.Regs.PB, c.Regs.PC = 0, 0x8000
	bus.Write(0, 0x8000, 0x34)
	bus.Write(0, 0x8001, 0x12)

	c.pea()
	assert.Equal(t, uint16(0x1234), c.pullWord())
}

func TestPerPushesPcRelativeAddress(t *testing.T) {
	c, bus := newTestCpu()
	enterNative(t, c)
	c.Regs.PB, c.Regs.PC = 0, 0x8000
	bus.Write(0, 0x8000, 0x10)
	bus.Write(0, 0x8001, 0x00) // +0x10 displacement

	c.per()
	assert.Equal(t, uint16(0x8012), c.pullWord(), "PER's address is relative to PC after the operand is fetched")
}
