// Package video implements the ebiten-backed presentation layer: the
// ebiten.Game that drives the machine one frame per Update and blits the
// PPU's framebuffer on Draw.
package video

import (
	"image/color"

	"github.com/bdwalton/gintendo/console"
	"github.com/bdwalton/gintendo/ppu"
	"github.com/hajimehoshi/ebiten/v2"
)

// Frontend adapts a console.Machine to ebiten.Game.
type Frontend struct {
	m     *console.Machine
	scale int
}

// New returns a Frontend that renders the machine's PPU output at the
// given integer pixel scale.
func New(m *console.Machine, scale int) *Frontend {
	if scale < 1 {
		scale = 1
	}
	return &Frontend{m: m, scale: scale}
}

// Update advances the machine one frame. The CPU normally paces this tick
// by tick; with it out of scope, one ebiten frame equals one PPU frame.
func (f *Frontend) Update() error {
	f.m.StepFrame()
	return nil
}

// Draw blits the PPU's framebuffer, one DMG pixel per scale*scale block.
func (f *Frontend) Draw(screen *ebiten.Image) {
	fb := f.m.PPU().FrameBuffer()
	w, h := ppu.Resolution()

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := fb.At(x, y)
			clr := color.RGBA{R: c[0], G: c[1], B: c[2], A: c[3]}
			for sy := 0; sy < f.scale; sy++ {
				for sx := 0; sx < f.scale; sx++ {
					screen.Set(x*f.scale+sx, y*f.scale+sy, clr)
				}
			}
		}
	}
}

// Layout returns the fixed DMG resolution scaled by the configured factor.
func (f *Frontend) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := ppu.Resolution()
	return w * f.scale, h * f.scale
}
