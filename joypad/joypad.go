// Package joypad implements the DMG P1 register (0xFF00) as a bus device,
// adapted from an NES shift-register controller to the Game Boy's
// select-nibble action/direction matrix.
package joypad

import "github.com/hajimehoshi/ebiten/v2"

// P1Addr is the joypad input register address.
const P1Addr uint16 = 0xFF00

const (
	selectDirection uint8 = 1 << 4
	selectAction    uint8 = 1 << 5
)

var directionKeys = []ebiten.Key{
	ebiten.KeyRight,
	ebiten.KeyLeft,
	ebiten.KeyUp,
	ebiten.KeyDown,
}

var actionKeys = []ebiten.Key{
	ebiten.KeyZ,     // A
	ebiten.KeyX,     // B
	ebiten.KeyShift, // Select
	ebiten.KeyEnter, // Start
}

// Joypad holds the two select lines the game writes and reports the
// corresponding nibble of (inverted, per hardware convention) button state
// on read.
type Joypad struct {
	selectBits uint8
}

// New returns a Joypad with neither select line asserted.
func New() *Joypad {
	return &Joypad{selectBits: selectDirection | selectAction}
}

func (j *Joypad) poll(keys []ebiten.Key) uint8 {
	var nibble uint8
	for i, k := range keys {
		if ebiten.IsKeyPressed(k) {
			nibble |= 1 << i
		}
	}
	return nibble
}

// Read8 returns the P1 byte: bits 5-4 echo the select lines, bits 3-0 are
// the active-low state of whichever button group is selected (0 = pressed).
func (j *Joypad) Read8(addr uint16) uint8 {
	var pressed uint8
	switch {
	case j.selectBits&selectDirection == 0:
		pressed = j.poll(directionKeys)
	case j.selectBits&selectAction == 0:
		pressed = j.poll(actionKeys)
	}
	return j.selectBits | (^pressed & 0x0F)
}

// Write8 latches which button group (direction or action) the next read
// will report; only bits 5-4 are writable.
func (j *Joypad) Write8(addr uint16, value uint8) {
	j.selectBits = (j.selectBits &^ (selectDirection | selectAction)) | (value & (selectDirection | selectAction))
}
