// Package ppu stubs the SNES picture unit: it tracks H/V position against
// the selected console model's frame-cycle count, raises the vblank NMI
// and the programmable H/V-IRQ, and exposes a framebuffer, without
// implementing actual pixel generation (out of scope for this core).
package ppu

import "github.com/bdwalton/gosnes/scheduler"

// Model selects the console's video timing.
type Model int

const (
	ModelNTSC Model = iota
	ModelPAL
)

// CyclesPerFrame is the master-cycle length of one frame for each model.
func (m Model) CyclesPerFrame() scheduler.Time {
	if m == ModelPAL {
		return 425568
	}
	return 357366
}

const (
	cyclesPerScanline = scheduler.Time(1364)
	vblankScanline    = 225
	screenWidth       = 256
	screenHeight      = 224
)

// Irqs is the subset of the interrupt unit the PPU drives: vblank NMI and
// the programmable H/V timer IRQ line.
type Irqs interface {
	RequestNmi(sched *scheduler.Schedule)
	SetHvTimerIrqRequested(value bool, sched *scheduler.Schedule)
}

// Ppu tracks scanline position and fires the events a real PPU would
// generate, backing them with a fixed test-pattern framebuffer rather
// than actual rendering.
type Ppu struct {
	model Model
	irqs  Irqs
	sched *scheduler.Schedule

	scanline      int
	frameFinished bool
	hTimerTarget  uint16
	vTimerTarget  uint16
	hvIrqEnabled  bool

	frame []byte
}

// New constructs a Ppu for the given model, wired to the interrupt unit
// and schedule it will post events against.
func New(model Model, irqs Irqs, sched *scheduler.Schedule) *Ppu {
	p := &Ppu{
		model: model,
		irqs:  irqs,
		sched: sched,
		frame: make([]byte, screenWidth*screenHeight*4),
	}
	p.scheduleNextScanline()
	return p
}

// SetHvIrqTarget programs the H/V-IRQ position (writes to $4207-$420A)
// and whether it's enabled (bits 4/5 of $4200). The H target is stored
// but HandleScanline compares only the V target.
func (p *Ppu) SetHvIrqTarget(h, v uint16, enabled bool) {
	p.hTimerTarget, p.vTimerTarget, p.hvIrqEnabled = h, v, enabled
}

// HandleScanline advances to the next scanline, firing vblank NMI at the
// configured boundary and the H/V-IRQ at the start of the programmed V
// scanline; the H position is not compared.
func (p *Ppu) HandleScanline() {
	p.scanline++
	if p.scanline == vblankScanline {
		p.irqs.RequestNmi(p.sched)
	}
	if p.scanline >= int(p.model.CyclesPerFrame()/cyclesPerScanline) {
		p.scanline = 0
		p.frameFinished = true
		p.renderTestPattern()
	}
	if p.hvIrqEnabled && uint16(p.scanline) == p.vTimerTarget {
		p.irqs.SetHvTimerIrqRequested(true, p.sched)
	}
	p.scheduleNextScanline()
}

func (p *Ppu) scheduleNextScanline() {
	p.sched.ScheduleAt(scheduler.Event{Kind: scheduler.EventPpu}, p.sched.CurTime()+cyclesPerScanline)
}

// renderTestPattern fills the framebuffer with a static pattern: real
// pixel composition is out of scope, but Emu.RunFrame needs something
// drivable end-to-end for the frontend to blit.
func (p *Ppu) renderTestPattern() {
	for y := 0; y < screenHeight; y++ {
		for x := 0; x < screenWidth; x++ {
			i := (y*screenWidth + x) * 4
			p.frame[i+0] = uint8(x)
			p.frame[i+1] = uint8(y)
			p.frame[i+2] = uint8(x ^ y)
			p.frame[i+3] = 0xFF
		}
	}
}

// Framebuffer returns the current frame as tightly packed RGBA8888.
func (p *Ppu) Framebuffer() []byte { return p.frame }

func (p *Ppu) Width() int  { return screenWidth }
func (p *Ppu) Height() int { return screenHeight }

// FrameFinished reports whether a full frame has completed since the last
// ClearFrameFinished.
func (p *Ppu) FrameFinished() bool { return p.frameFinished }

func (p *Ppu) ClearFrameFinished() { p.frameFinished = false }

// ReadReg and WriteReg stub the PPU's MMIO register window ($2100-$213F);
// full register semantics are out of scope, but reads must not panic the
// bus dispatch.
func (p *Ppu) ReadReg(reg uint16) uint8     { _ = reg; return 0 }
func (p *Ppu) WriteReg(reg uint16, v uint8) { _ = reg; _ = v }
