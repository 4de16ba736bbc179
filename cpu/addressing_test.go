package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddrDirectIndirectLongResolvesPointerBank(t *testing.T) {
	c, bus := newTestCpu()
	enterNative(t, c)
	c.Regs.PB, c.Regs.PC = 0, 0x8000
	bus.Write(0, 0x8000, 0x10) // d8 operand

	// Pointer stored at direct-page address $0010: bank $7E, addr $1234.
	bus.Write(0, 0x0010, 0x34)
	bus.Write(0, 0x0011, 0x12)
	bus.Write(0, 0x0012, 0x7E)

	op := c.addrDirectIndirectLong()
	assert.Equal(t, uint8(0x7E), op.bank)
	assert.Equal(t, uint16(0x1234), op.addr)
}

func TestAddrAbsoluteXAppliesDataBank(t *testing.T) {
	c, bus := newTestCpu()
	enterNative(t, c)
	c.Regs.DB = 0x01
	c.Regs.X = 0x0005
	c.Regs.PB, c.Regs.PC = 0, 0x8000
	bus.Write(0, 0x8000, 0x00)
	bus.Write(0, 0x8001, 0x10) // absolute $1000

	op := c.addrAbsoluteX()
	assert.Equal(t, uint8(0x01), op.bank)
	assert.Equal(t, uint16(0x1005), op.addr)
}

func TestAddrAbsoluteLongXCarriesIntoBank(t *testing.T) {
	c, bus := newTestCpu()
	enterNative(t, c)
	c.Regs.X = 0x0010
	c.Regs.PB, c.Regs.PC = 0, 0x8000
	bus.Write(0, 0x8000, 0xF8)
	bus.Write(0, 0x8001, 0xFF)
	bus.Write(0, 0x8002, 0x7E) // $7EFFF8

	op := c.addrAbsoluteLongX()
	assert.Equal(t, uint8(0x7F), op.bank, "index past $FFFF must carry into the bank byte")
	assert.Equal(t, uint16(0x0008), op.addr)
}

func TestDirectPageNonzeroDlPaysExtraCycle(t *testing.T) {
	c, bus := newTestCpu()
	enterNative(t, c)
	c.Regs.D = 0x0003 // nonzero low byte (DL)
	c.Regs.PB, c.Regs.PC = 0, 0x8000
	bus.Write(0, 0x8000, 0x10)

	afterFetch := c.sched.CurTime() // not yet fetched; captured for comparison below
	op := c.addrDirect()
	withPenalty := c.sched.CurTime() - afterFetch

	c2, bus2 := newTestCpu()
	enterNative(t, c2)
	c2.Regs.D = 0x0000
	c2.Regs.PB, c2.Regs.PC = 0, 0x8000
	bus2.Write(0, 0x8000, 0x10)
	before2 := c2.sched.CurTime()
	c2.addrDirect()
	withoutPenalty := c2.sched.CurTime() - before2

	assert.Greater(t, withPenalty, withoutPenalty, "nonzero DL pays the direct-page cycle penalty")
	assert.Equal(t, uint16(0x0013), op.addr)
}

func TestIndexCrossPenaltyOnlyWhenPageCrossed(t *testing.T) {
	c, bus := newTestCpu()
	enterNative(t, c)
	c.Regs.PB, c.Regs.PC = 0, 0x8000
	bus.Write(0, 0x8000, 0xF0)
	bus.Write(0, 0x8001, 0x10) // $10F0
	c.Regs.X = 0x20            // $10F0+$20 = $1110, crossing from page $10 into page $11

	// Each addrAbsoluteX call pays for its two operand-byte reads.
	fetchCost := 2 * bus.Cycles(0, 0x8000)

	before := c.sched.CurTime()
	c.addrAbsoluteX()
	afterCross := c.sched.CurTime()
	require.Greater(t, afterCross-before, fetchCost, "page crossed, penalty cycle charged on top of the fetches")

	c.Regs.PB, c.Regs.PC = 0, 0x8000
	bus.Write(0, 0x8000, 0x00)
	bus.Write(0, 0x8001, 0x10) // $1000
	c.Regs.X = 0x05            // stays within the same page

	beforeSame := c.sched.CurTime()
	c.addrAbsoluteX()
	assert.Equal(t, beforeSame+fetchCost, c.sched.CurTime(), "no page crossed, no penalty cycle charged")
}
