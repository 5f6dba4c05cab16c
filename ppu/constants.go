// Package ppu implements the DMG pixel-processing unit: the tile decoder,
// tile-map RAM, OAM and its DMA engine, the LCDC/LCDS/scroll/palette
// register plane, the mode/scanline timing state machine, and a
// fully-realized pixel renderer.
package ppu

const (
	tilesetRAMSize  = 0x1800
	tilesetCount    = 0x180
	tilesetStart    = 0x8000
	tilesetEnd      = tilesetStart + tilesetRAMSize - 1

	tileDimension = 8
	tileSize      = 16

	tilemapDimension  = 32
	tilemapItemCount  = tilemapDimension * tilemapDimension
	tilemapsCount     = 2
	tilemapsSize      = tilemapsCount * tilemapItemCount
	tilemapStart      = 0x9800
	tilemapAStart     = 0x9800
	tilemapAEnd       = 0x9BFF
	tilemapBStart     = 0x9C00
	tilemapBEnd       = 0x9FFF
	tilemapEnd        = 0x9FFF

	oamSpriteCount = 40
	oamSpriteSize  = 4
	oamRAMSize     = oamSpriteCount * oamSpriteSize
	oamStart       = 0xFE00
	oamEnd         = oamStart + oamRAMSize - 1 // inclusive, 0xFE9F — see §9 open question

	lcdcAddr = 0xFF40
	lcdsAddr = 0xFF41
	scyAddr  = 0xFF42
	scxAddr  = 0xFF43
	lyAddr   = 0xFF44
	lycAddr  = 0xFF45
	dmaAddr  = 0xFF46
	bgpAddr  = 0xFF47
	obp0Addr = 0xFF48
	obp1Addr = 0xFF49
	wyAddr   = 0xFF4A
	wxAddr   = 0xFF4B

	oamDMATicks = 160

	lineTicks          = 456
	lineVBlankStart    = 144
	lineVBlankEnd      = 153

	mode2Ticks = 80  // SPRITE_SEARCH window: 0..=79
	mode3Ticks = 172 // LCD_TRANSFER window: 80..=251, fixed per the source's simplification

	screenWidth  = 160
	screenHeight = 144
)

// Mode is the PPU's current scanline phase.
type Mode uint8

const (
	HBLANK Mode = iota
	VBLANK
	SPRITE_SEARCH
	LCD_TRANSFER
)
