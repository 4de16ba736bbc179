package cpu

import "github.com/bdwalton/gosnes/scheduler"

// Bus is the CPU's view of the 24-bit SNES address space. The owning Emu
// implements it by dispatching to WRAM, cartridge ROM/RAM, and the
// PPU/APU/controller register windows; the CPU holds no back-pointer to
// Emu, only this interface (per spec.md §9's "mutable graph of
// subsystems" design note).
type Bus interface {
	Read(bank uint8, addr uint16) uint8
	Write(bank uint8, addr uint16, val uint8)
	// Cycles reports how many master cycles an access to (bank, addr)
	// costs, accounting for WRAM/IO/ROM access-speed regions and the
	// cartridge's FastROM flag (spec.md §4.4).
	Cycles(bank uint8, addr uint16) scheduler.Time
}

const (
	cycleFast = scheduler.Time(6)
	cycleSlow = scheduler.Time(8)
	cycleJoy  = scheduler.Time(12)
)

// BusCycles implements the standard SNES bus-speed table: banks $00-$3F /
// $80-$BF mirror WRAM and I/O below $8000 and ROM (FastROM-eligible only in
// $80-$BF) above it; banks $40-$7D / $C0-$FF are ROM/RAM across the whole
// bank and slow, except $C0-$FF when FastROM is enabled. Components embedding a
// cpu.Bus call this helper from their own Cycles implementation rather than
// duplicating the table.
func BusCycles(bank uint8, addr uint16, fastRomEnabled bool) scheduler.Time {
	lowBank := bank <= 0x3F || (bank >= 0x80 && bank <= 0xBF)

	switch {
	case lowBank && addr < 0x2000:
		return cycleSlow // WRAM mirror
	case lowBank && addr < 0x4000:
		return cycleFast // PPU/APU/CPU registers
	case lowBank && addr < 0x4200:
		return cycleJoy // old-style joypad registers
	case lowBank && addr < 0x6000:
		return cycleFast // DMA/other fast registers
	case lowBank && addr < 0x8000:
		return cycleSlow // expansion / SRAM window
	case lowBank:
		// $8000-$FFFF: ROM, FastROM-eligible only for banks $80-$BF.
		if fastRomEnabled && bank >= 0x80 {
			return cycleFast
		}
		return cycleSlow
	default:
		// Banks $40-$7D, $C0-$FF: always addressable as ROM/RAM banks.
		if fastRomEnabled && bank >= 0xC0 {
			return cycleFast
		}
		return cycleSlow
	}
}
