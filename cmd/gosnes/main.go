package main

import (
	"flag"
	"image"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/bdwalton/gosnes/cmd/gosnes/monitor"
	"github.com/bdwalton/gosnes/controllers"
	"github.com/bdwalton/gosnes/emu"
	"github.com/bdwalton/gosnes/ppu"
)

var (
	romFile      = flag.String("rom", "", "Path to SNES ROM to run.")
	palMode      = flag.Bool("pal", false, "Run with PAL timing instead of NTSC.")
	audioChunk   = flag.Int("audio_chunk_samples", 512, "Audio sample chunk length for the ring buffer.")
	syncAudio    = flag.Bool("sync_audio", false, "Block the CPU thread instead of dropping samples when the audio ring is full.")
	interactive  = flag.Bool("monitor", false, "Run the interactive bubbletea monitor instead of the ebiten frontend.")
)

// ebitenInput reads keyboard state into controller port 0; port 1 is
// never connected by this frontend.
type ebitenInput struct{}

func (ebitenInput) Poll(port int) controllers.Bitmask {
	if port != 0 {
		return 0
	}
	var b controllers.Bitmask
	press := func(key ebiten.Key, bit controllers.Bitmask) {
		if ebiten.IsKeyPressed(key) {
			b |= bit
		}
	}
	press(ebiten.KeyZ, controllers.ButtonB)
	press(ebiten.KeyX, controllers.ButtonA)
	press(ebiten.KeyA, controllers.ButtonY)
	press(ebiten.KeyS, controllers.ButtonX)
	press(ebiten.KeyQ, controllers.ButtonL)
	press(ebiten.KeyW, controllers.ButtonR)
	press(ebiten.KeyEnter, controllers.ButtonStart)
	press(ebiten.KeyBackspace, controllers.ButtonSelect)
	press(ebiten.KeyUp, controllers.ButtonUp)
	press(ebiten.KeyDown, controllers.ButtonDown)
	press(ebiten.KeyLeft, controllers.ButtonLeft)
	press(ebiten.KeyRight, controllers.ButtonRight)
	return b
}

// frontend adapts *emu.Emu to ebiten.Game, driving one console frame per
// ebiten Update tick (grounded on gintendo's console.Bus Layout/Draw/
// Update).
type frontend struct {
	console *emu.Emu
}

func (f *frontend) Update() error {
	return f.console.RunFrame()
}

func (f *frontend) Draw(screen *ebiten.Image) {
	fb := f.console.Ppu.Framebuffer()
	img := image.NewRGBA(image.Rect(0, 0, f.console.Ppu.Width(), f.console.Ppu.Height()))
	copy(img.Pix, fb)
	screen.WritePixels(img.Pix)
}

func (f *frontend) Layout(outsideWidth, outsideHeight int) (int, int) {
	return f.console.Ppu.Width(), f.console.Ppu.Height()
}

func main() {
	flag.Parse()

	rom, err := os.ReadFile(*romFile)
	if err != nil {
		log.Fatalf("reading ROM: %v", err)
	}

	model := ppu.ModelNTSC
	if *palMode {
		model = ppu.ModelPAL
	}

	console, err := emu.New(rom, model, *audioChunk, *syncAudio, ebitenInput{})
	if err != nil {
		log.Fatalf("invalid ROM: %v", err)
	}

	if *interactive {
		if _, err := tea.NewProgram(monitor.New(console)).Run(); err != nil {
			log.Fatalf("monitor: %v", err)
		}
		return
	}

	ebiten.SetWindowSize(console.Ppu.Width()*2, console.Ppu.Height()*2)
	ebiten.SetWindowTitle("gosnes")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(&frontend{console: console}); err != nil {
		log.Fatal(err)
	}
}
