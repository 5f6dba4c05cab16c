// Package console wires the bus fabric, PPU, cartridge, joypad, and
// interrupt latch into a single runnable machine, and hosts the
// interactive debug console.
package console

import (
	"github.com/bdwalton/gintendo/bus"
	"github.com/bdwalton/gintendo/cartridge"
	"github.com/bdwalton/gintendo/interrupt"
	"github.com/bdwalton/gintendo/joypad"
	"github.com/bdwalton/gintendo/memory"
	"github.com/bdwalton/gintendo/ppu"
)

const (
	wramBase = 0xC000
	wramSize = 0x2000
	hramBase = 0xFF80
	hramSize = 0x7F

	// ticksPerFrame is one full 456*154 DMG scanline sweep.
	ticksPerFrame = 456 * 154

	// stepGranularity is how many ticks StepFrame feeds execute_ticks at
	// a time. execute_ticks's line-advance/mode-reclassification logic
	// assumes the caller crosses at most one 456-tick boundary per call,
	// same as a real CPU feeding it one instruction's worth of ticks; a
	// single whole-frame call would only ever advance line_y by one.
	stepGranularity = 4
)

// Machine owns every bus-attached device and the shared bus they're
// registered on.
type Machine struct {
	bus        *bus.Bus
	ppu        *ppu.PPU
	cart       *cartridge.ROM
	joypad     *joypad.Joypad
	interrupts *interrupt.Status
	wram       *memory.RAM
	hram       *memory.RAM
}

// New builds a Machine around the given cartridge, registering every
// device on one bus.Bus in the order the real hardware would see them.
func New(cart *cartridge.ROM) *Machine {
	m := &Machine{
		bus:        bus.New(),
		ppu:        ppu.New(),
		cart:       cart,
		joypad:     joypad.New(),
		interrupts: interrupt.New(),
		wram:       memory.New(wramBase, wramSize),
		hram:       memory.New(hramBase, hramSize),
	}

	m.bus.AddItem(0x0000, 0x7FFF, m.cart)       // ROM, banked
	m.bus.AddItem(0xA000, 0xBFFF, m.cart)       // external cartridge RAM
	m.bus.AddItem(0x8000, 0x9FFF, m.ppu)        // tile RAM + tile maps
	m.bus.AddItem(0xFE00, 0xFE9F, m.ppu)        // OAM
	m.bus.AddItem(0xFF40, 0xFF4B, m.ppu)        // PPU register plane
	m.bus.AddItem(0xC000, 0xDFFF, m.wram)
	m.bus.AddItem(0xFF00, 0xFF00, m.joypad)
	m.bus.AddItem(0xFF0F, 0xFF0F, m.interrupts)
	m.bus.AddItem(0xFFFF, 0xFFFF, m.interrupts)
	m.bus.AddItem(hramBase, hramBase+hramSize-1, m.hram)

	return m
}

// Bus returns the shared address bus, for the debug console.
func (m *Machine) Bus() *bus.Bus { return m.bus }

// PPU returns the PPU, for the video frontend's framebuffer reads.
func (m *Machine) PPU() *ppu.PPU { return m.ppu }

// Cartridge returns the loaded ROM and its header.
func (m *Machine) Cartridge() *cartridge.ROM { return m.cart }

// StepFrame advances the PPU one full frame's worth of ticks, in small
// batches so every scanline and mode transition execute_ticks would fire
// for a real instruction stream still fires here. This stands in for the
// instruction-accurate CPU tick loop spec.md treats as an external
// collaborator.
func (m *Machine) StepFrame() {
	for remaining := ticksPerFrame; remaining > 0; {
		n := stepGranularity
		if n > remaining {
			n = remaining
		}
		m.ppu.ExecuteTicks(uint16(n), m.bus, m.interrupts)
		remaining -= n
	}
}

// StepTicks advances the PPU exactly n ticks, for the debug console's
// single-step command.
func (m *Machine) StepTicks(n uint16) {
	m.ppu.ExecuteTicks(n, m.bus, m.interrupts)
}

// Interrupts returns the interrupt latch, for the debug console's status
// dump.
func (m *Machine) Interrupts() *interrupt.Status { return m.interrupts }
