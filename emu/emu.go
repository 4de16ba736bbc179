// Package emu wires the CPU, cartridge, PPU, APU, and controllers
// together: it implements cpu.Bus by dispatching the 24-bit address space
// to the right subsystem, and drives the frame loop the frontend calls
// into (spec.md §9's top-level "mutable graph of subsystems" design,
// resolved via interface injection rather than back-pointers).
package emu

import (
	"github.com/bdwalton/gosnes/apu"
	"github.com/bdwalton/gosnes/cart"
	"github.com/bdwalton/gosnes/controllers"
	"github.com/bdwalton/gosnes/cpu"
	"github.com/bdwalton/gosnes/ppu"
	"github.com/bdwalton/gosnes/scheduler"
)

const wramSize = 128 * 1024

// Emu is the top-level console: it owns every subsystem and is the sole
// implementation of cpu.Bus, so the CPU never needs a back-pointer to it.
type Emu struct {
	Cpu   *cpu.Cpu
	Ppu   *ppu.Ppu
	Apu   *apu.Apu
	Ctrl  *controllers.Controllers
	Cart  *cart.Cart
	Sched *scheduler.Schedule

	wram    [wramSize]byte
	wramPtr uint32 // $2180 WMDATA auto-increment pointer

	hTarget, vTarget uint16 // $4207-$420A H/V-IRQ position latches
	hvIrqEnabled     bool   // $4200 bits 4/5

	// lastBusValue is the "open bus" latch: the last byte actually driven
	// onto the address/data bus by any successful read or write. Reads of
	// unmapped cartridge space or an unimplemented register window return
	// this rather than a synthesized 0 (spec.md §7).
	lastBusValue uint8
}

// New constructs a console for the given ROM image, model, audio chunk
// size, and sync-audio mode (spec.md §2's top-level constructor
// parameters).
func New(rom []byte, model ppu.Model, audioChunkSamples int, syncAudio bool, input controllers.InputSource) (*Emu, error) {
	c, err := cart.New(rom)
	if err != nil {
		return nil, err
	}

	e := &Emu{Cart: c, Sched: scheduler.New()}
	e.Cpu = cpu.New(e, e.Sched)
	e.Ppu = ppu.New(model, e.Cpu.Irqs, e.Sched)
	e.Apu = apu.New(e.Sched, audioChunkSamples, syncAudio)
	e.Ctrl = controllers.New(e.Sched, input)
	e.Cpu.Reset()
	return e, nil
}

// SoftReset re-runs the CPU reset sequence without recreating the other
// subsystems (spec.md §5 — distinct from the cartridge/SRAM-preserving
// power-on path New provides).
func (e *Emu) SoftReset() {
	e.Cpu.Reset()
}

// RunFrame drives the console until the PPU reports a finished frame,
// draining scheduled events by kind after each CPU run slice — the same
// dispatch loop shape the original's run_frame uses (spec.md §5).
func (e *Emu) RunFrame() error {
	e.Ppu.ClearFrameFinished()
	for !e.Ppu.FrameFinished() {
		if err := e.Cpu.RunUntilNextEvent(); err != nil {
			return err
		}
		for {
			ev, _, ok := e.Sched.PopPendingEvent()
			if !ok {
				break
			}
			switch ev.Kind {
			case scheduler.EventPpu:
				e.Ppu.HandleScanline()
			case scheduler.EventUpdateApu:
				e.Apu.HandleUpdate()
			case scheduler.EventControllers:
				e.Ctrl.HandlePoll()
			}
		}
	}
	return nil
}
