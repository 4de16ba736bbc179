package emu

import (
	"github.com/bdwalton/gosnes/cpu"
	"github.com/bdwalton/gosnes/scheduler"
)

// Read implements cpu.Bus: dispatches a 24-bit address to WRAM, the
// cartridge, or a subsystem's MMIO register window. Every successfully
// driven byte updates lastBusValue; addresses with nothing actually wired
// to drive them (unmapped cartridge space, unimplemented register windows)
// return that latch instead of a synthesized value — "open bus" semantics
// software relies on (spec.md §7).
func (e *Emu) Read(bank uint8, addr uint16) uint8 {
	if bank == 0x7E || bank == 0x7F {
		e.lastBusValue = e.wram[uint32(bank&1)<<16|uint32(addr)]
		return e.lastBusValue
	}

	lowBank := bank <= 0x3F || (bank >= 0x80 && bank <= 0xBF)
	if lowBank && addr < 0x2000 {
		e.lastBusValue = e.wram[addr]
		return e.lastBusValue
	}
	if lowBank {
		switch {
		case addr >= 0x2100 && addr <= 0x213F:
			e.lastBusValue = e.Ppu.ReadReg(addr)
			return e.lastBusValue
		case addr >= 0x2140 && addr <= 0x217F:
			e.lastBusValue = e.Apu.ReadReg(addr)
			return e.lastBusValue
		case addr == 0x2180:
			e.lastBusValue = e.wram[e.wramPtr%wramSize]
			e.wramPtr++
			return e.lastBusValue
		case addr == 0x4016:
			e.lastBusValue = e.Ctrl.ReadPort(0)
			return e.lastBusValue
		case addr == 0x4017:
			e.lastBusValue = e.Ctrl.ReadPort(1)
			return e.lastBusValue
		case addr >= 0x4200 && addr <= 0x421F:
			return e.lastBusValue
		case addr >= 0x4300 && addr <= 0x437F:
			return e.lastBusValue
		}
	}

	if v, ok := e.Cart.ReadRom(bank, addr); ok {
		e.lastBusValue = v
		return e.lastBusValue
	}
	if v, ok := e.Cart.ReadRam(bank, addr); ok {
		e.lastBusValue = v
		return e.lastBusValue
	}
	return e.lastBusValue
}

// Write implements cpu.Bus. Every write, mapped or not, drives val onto
// the bus and updates lastBusValue — the latch Read falls back to for
// open-bus addresses (spec.md §7).
func (e *Emu) Write(bank uint8, addr uint16, val uint8) {
	e.lastBusValue = val

	if bank == 0x7E || bank == 0x7F {
		e.wram[uint32(bank&1)<<16|uint32(addr)] = val
		return
	}

	lowBank := bank <= 0x3F || (bank >= 0x80 && bank <= 0xBF)
	if lowBank && addr < 0x2000 {
		e.wram[addr] = val
		return
	}
	if lowBank {
		switch {
		case addr >= 0x2100 && addr <= 0x213F:
			e.Ppu.WriteReg(addr, val)
			return
		case addr >= 0x2140 && addr <= 0x217F:
			e.Apu.WriteReg(addr, val)
			return
		case addr == 0x2181:
			e.wramPtr = e.wramPtr&0xFFFF00 | uint32(val)
			return
		case addr == 0x2182:
			e.wramPtr = e.wramPtr&0xFF00FF | uint32(val)<<8
			return
		case addr == 0x2183:
			e.wramPtr = e.wramPtr&0x00FFFF | uint32(val&1)<<16
			return
		case addr == 0x2180:
			e.wram[e.wramPtr%wramSize] = val
			e.wramPtr++
			return
		case addr == 0x4016:
			e.Ctrl.WriteStrobe(val)
			return
		case addr == 0x4207:
			e.hTarget = e.hTarget&0xFF00 | uint16(val)
			return
		case addr == 0x4208:
			e.hTarget = e.hTarget&0x00FF | uint16(val&1)<<8
			return
		case addr == 0x4209:
			e.vTarget = e.vTarget&0xFF00 | uint16(val)
			e.Ppu.SetHvIrqTarget(e.hTarget, e.vTarget, e.hvIrqEnabled)
			return
		case addr == 0x420A:
			e.vTarget = e.vTarget&0x00FF | uint16(val&1)<<8
			e.Ppu.SetHvIrqTarget(e.hTarget, e.vTarget, e.hvIrqEnabled)
			return
		case addr == 0x4200:
			e.hvIrqEnabled = val&0x30 != 0
			e.Ppu.SetHvIrqTarget(e.hTarget, e.vTarget, e.hvIrqEnabled)
			return
		case addr >= 0x4300 && addr <= 0x437F:
			return
		}
	}

	e.Cart.WriteRam(bank, addr, val)
}

// Cycles implements cpu.Bus.
func (e *Emu) Cycles(bank uint8, addr uint16) scheduler.Time {
	return cpu.BusCycles(bank, addr, e.Cart.IsFastRom(bank))
}
