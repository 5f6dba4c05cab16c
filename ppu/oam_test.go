package ppu

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestOAMWriteInvariant covers invariant 2: for every OAM entry and field,
// write then read agree, and the decoded entry reflects the attribute
// decoding of §3.
func TestOAMWriteInvariant(t *testing.T) {
	p := New()

	const entry = 3
	base := uint16(oamStart + entry*4)

	p.Write8(base+0, 0x50) // y
	p.Write8(base+1, 0x28) // x
	p.Write8(base+2, 0x07) // tile index
	p.Write8(base+3, 0xF0) // attribute byte: all four flags set

	require.Equal(t, uint8(0x50), p.Read8(base+0))
	require.Equal(t, uint8(0x28), p.Read8(base+1))
	require.Equal(t, uint8(0x07), p.Read8(base+2))
	require.Equal(t, uint8(0xF0), p.Read8(base+3))

	got := p.sprites[entry]
	require.Equal(t, uint8(0x50), got.y)
	require.Equal(t, uint8(0x28), got.x)
	require.Equal(t, uint8(0x07), got.tile)
	require.True(t, got.behindBackground)
	require.True(t, got.yFlip)
	require.True(t, got.xFlip)
	require.True(t, got.paletteSelect)
}

func TestOAMAttributeDecodeIsExclusive(t *testing.T) {
	p := New()
	p.Write8(oamStart+3, 1<<5) // x_flip only

	got := p.sprites[0]
	require.False(t, got.behindBackground)
	require.True(t, got.xFlip)
	require.False(t, got.yFlip)
	require.False(t, got.paletteSelect)
}
