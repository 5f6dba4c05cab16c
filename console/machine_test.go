package console

import (
	"os"
	"testing"

	"github.com/bdwalton/gintendo/cartridge"
	"github.com/stretchr/testify/require"
)

func buildTestROM(t *testing.T) *cartridge.ROM {
	t.Helper()

	raw := make([]byte, 0x8000)
	copy(raw[0x134:], "TESTROM")
	raw[0x147] = 0x00 // MBC0
	raw[0x148] = 0x00
	raw[0x149] = 0x00

	var sum uint8
	for _, b := range raw[0x134:0x14D] {
		sum = sum - b - 1
	}
	raw[0x14D] = sum

	path := t.TempDir() + "/test.gb"
	require.NoError(t, os.WriteFile(path, raw, 0o644))

	rom, err := cartridge.Load(path)
	require.NoError(t, err)
	return rom
}

func TestMachineWiringRoutesToPPU(t *testing.T) {
	m := New(buildTestROM(t))

	m.Bus().Write8(0xFF40, 0x91) // LCDC: enable + bg on
	require.Equal(t, uint8(0x91), m.PPU().Read8(0xFF40))
	require.Equal(t, uint8(0x91), m.Bus().Read8(0xFF40))
}

func TestMachineWiringRoutesToWRAM(t *testing.T) {
	m := New(buildTestROM(t))

	m.Bus().Write8(0xC010, 0x42)
	require.Equal(t, uint8(0x42), m.Bus().Read8(0xC010))
}

func TestMachineStepFrameAdvancesPPU(t *testing.T) {
	m := New(buildTestROM(t))
	m.Bus().Write8(0xFF40, 0x80) // lcd_enabled only

	m.StepFrame()

	// A full frame (456*154 ticks) should return the PPU to line_y=0,
	// mode=SPRITE_SEARCH having already wrapped past VBLANK once.
	require.Equal(t, uint8(0), m.PPU().Read8(0xFF44))
}
