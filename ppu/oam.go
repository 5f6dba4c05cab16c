package ppu

// oamEntry is the decoded form of one of the 40 sprite-attribute table
// entries: position, tile index, and the four booleans packed into the
// attribute byte.
type oamEntry struct {
	y   uint8
	x   uint8
	tile uint8

	// These four fields are all packed into a single attribute byte.
	behindBackground bool
	xFlip            bool
	yFlip            bool
	paletteSelect    bool
}

const (
	attribPaletteMask    uint8 = 1 << 4
	attribXFlipMask      uint8 = 1 << 5
	attribYFlipMask      uint8 = 1 << 6
	attribBehindBGMask   uint8 = 1 << 7
)

func (o *oamEntry) setAttribByte(data uint8) {
	o.behindBackground = data&attribBehindBGMask != 0
	o.xFlip = data&attribXFlipMask != 0
	o.yFlip = data&attribYFlipMask != 0
	o.paletteSelect = data&attribPaletteMask != 0
}
