package ppu

// InterruptSink is the external collaborator the PPU raises interrupts
// through. Both methods must be idempotent: multiple requests between CPU
// servicings collapse into one pending flag.
type InterruptSink interface {
	RequestVBlank()
	RequestLCDStat()
}

// Bus is the subset of bus access the DMA engine needs: a source read from
// wherever in the address space oam_dma_src points.
type Bus interface {
	Read8(addr uint16) uint8
}

// PPU is the DMG pixel-processing unit: tile RAM, tile-map RAM, OAM, the
// register plane, the timing/mode state machine, and the pixel renderer.
type PPU struct {
	tileData [tilesetRAMSize]uint8
	tiles    [tilesetCount]tile

	tilemaps [tilemapsSize]uint8

	sprites    [oamSpriteCount]oamEntry
	spriteData [oamRAMSize]uint8

	// LCDC
	lcdc                     uint8
	lcdEnabled               bool
	windowTilesHigh          bool
	windowEnabled            bool
	bgWindowSignedAddressing bool
	bgTilesHigh              bool
	objDoubleSprites         bool
	objEnabled               bool
	bgWindowEnable           bool

	// LCDS
	lineCompareIs bool
	mode2Is       bool
	mode1Is       bool
	mode0Is       bool
	lineCompare   bool
	mode          Mode

	scrollY          uint8
	scrollX          uint8
	lineY            uint8
	lineCompareValue uint8
	windowY          uint8
	windowX          uint8

	bgPalette    palette
	objPalette1  palette
	objPalette2  palette

	oamDMATicks uint8
	oamDMASrc   uint16

	tickCounter uint16

	frame          FrameBuffer
	bgPixelBuffer  [screenWidth]uint8 // background color index, for sprite behind_background tests
	priorityBuffer spritePriorityBuffer
	windowLine     int
}

const (
	lcdcEnableMask            uint8 = 1 << 7
	lcdcWindowTileMapMask     uint8 = 1 << 6
	lcdcWindowDisplayMask     uint8 = 1 << 5
	lcdcBGWindowTileSelMask   uint8 = 1 << 4
	lcdcBGTileMapSelMask      uint8 = 1 << 3
	lcdcObjSizeMask           uint8 = 1 << 2
	lcdcObjDisplayMask        uint8 = 1 << 1
	lcdcBGWindowPriorityMask  uint8 = 1 << 0

	lcdsLineCmpISMask uint8 = 1 << 6
	lcdsMode2ISMask   uint8 = 1 << 5
	lcdsMode1ISMask   uint8 = 1 << 4
	lcdsMode0ISMask   uint8 = 1 << 3
)

// New returns a PPU in its post-reset state: mode HBLANK, line 0, all
// registers and memory zeroed.
func New() *PPU {
	p := &PPU{mode: HBLANK}
	return p
}

// FrameBuffer returns the current rendered frame.
func (p *PPU) FrameBuffer() *FrameBuffer {
	return &p.frame
}

func (p *PPU) dmaActive() bool {
	return p.oamDMATicks != 0
}

func (p *PPU) updateDMA(ticks uint16, b Bus) {
	if p.oamDMATicks == 0 {
		return
	}

	if p.oamDMATicks == oamDMATicks {
		p.dmaTransfer(b)
	}

	if uint16(p.oamDMATicks) > ticks {
		p.oamDMATicks -= uint8(ticks)
	} else {
		p.oamDMATicks = 0
	}
}

func (p *PPU) dmaStart(target uint8) {
	p.oamDMASrc = uint16(target) << 8
	p.oamDMATicks = oamDMATicks
}

func (p *PPU) dmaTransfer(b Bus) {
	src := p.oamDMASrc
	for x := 0; x < oamRAMSize; x++ {
		p.spriteWrite(b.Read8(src+uint16(x)), oamStart+x)
	}
}

// ExecuteTicks runs ticks worth of PPU timing, in the fixed order: (1) DMA
// accounting, (2) line advance if the scanline crossed, (3) intra-line
// mode reclassification. Interrupt requests may fire in either (2) or (3).
func (p *PPU) ExecuteTicks(ticks uint16, b Bus, is InterruptSink) {
	p.updateDMA(ticks, b)

	if !p.lcdEnabled {
		return
	}

	p.tickCounter += ticks

	if p.tickCounter >= lineTicks {
		p.tickCounter -= lineTicks
		p.lineY++
		p.lineCompare = p.lineCompareValue == p.lineY
		if p.lineCompare && p.lineCompareIs {
			is.RequestLCDStat()
		}

		if p.lineY == lineVBlankStart {
			p.mode = VBLANK
			is.RequestVBlank()
			if p.mode1Is {
				is.RequestLCDStat()
			}
		}

		if p.lineY > lineVBlankEnd {
			p.lineY = 0
			p.mode = SPRITE_SEARCH
		}

		p.drawLine()
	}

	if p.lineY < lineVBlankStart {
		var newMode Mode
		switch {
		case p.tickCounter < mode2Ticks:
			newMode = SPRITE_SEARCH
		case p.tickCounter < mode2Ticks+mode3Ticks:
			newMode = LCD_TRANSFER
		default:
			newMode = HBLANK
		}

		if newMode != p.mode {
			p.mode = newMode
			switch newMode {
			case SPRITE_SEARCH:
				if p.mode2Is {
					is.RequestLCDStat()
				}
			case HBLANK:
				if p.mode0Is {
					is.RequestLCDStat()
				}
			}
		}
	}
}

func (p *PPU) tileWrite(data uint8, addr int) {
	index := (addr - tilesetStart) / tileSize
	row := (addr >> 1) & 0x7
	highPlane := addr&0x01 != 0

	p.tileData[addr-tilesetStart] = data
	p.tiles[index].updateRow(data, row, highPlane)
}

func (p *PPU) spriteWrite(data uint8, addr int) {
	index := (addr - oamStart) / oamSpriteSize
	field := addr & 0b11

	switch field {
	case 0:
		p.sprites[index].y = data
	case 1:
		p.sprites[index].x = data
	case 2:
		p.sprites[index].tile = data
	case 3:
		p.sprites[index].setAttribByte(data)
	default:
		panic("ppu: invalid sprite field write")
	}

	p.spriteData[addr-oamStart] = data
}

func (p *PPU) lcdcWrite(data uint8) {
	p.lcdc = data

	p.lcdEnabled = data&lcdcEnableMask != 0
	p.windowTilesHigh = data&lcdcWindowTileMapMask != 0
	p.windowEnabled = data&lcdcWindowDisplayMask != 0
	p.bgWindowSignedAddressing = data&lcdcBGWindowTileSelMask != 0
	p.bgTilesHigh = data&lcdcBGTileMapSelMask != 0
	p.objDoubleSprites = data&lcdcObjSizeMask != 0
	p.objEnabled = data&lcdcObjDisplayMask != 0
	p.bgWindowEnable = data&lcdcBGWindowPriorityMask != 0
}

func (p *PPU) lcdsWrite(data uint8) {
	p.lineCompareIs = data&lcdsLineCmpISMask != 0
	p.mode2Is = data&lcdsMode2ISMask != 0
	p.mode1Is = data&lcdsMode1ISMask != 0
	p.mode0Is = data&lcdsMode0ISMask != 0
}

func (p *PPU) lcdsRead() uint8 {
	var v uint8
	v |= b2u8(p.lineCompareIs)
	v <<= 1
	v |= b2u8(p.mode2Is)
	v <<= 1
	v |= b2u8(p.mode1Is)
	v <<= 1
	v |= b2u8(p.mode0Is)
	v <<= 1
	v |= b2u8(p.lineCompare)
	v <<= 2
	v |= uint8(p.mode)
	return v
}

func b2u8(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}

// Read8 implements bus.Device over the PPU's declared address coverage.
func (p *PPU) Read8(addr uint16) uint8 {
	a := int(addr)
	switch {
	case a >= tilesetStart && a <= tilesetEnd:
		return p.tileData[a-tilesetStart]
	case a >= tilemapStart && a <= tilemapEnd:
		return p.tilemaps[a-tilemapStart]
	case a >= oamStart && a <= oamEnd:
		return p.spriteData[a-oamStart]
	case addr == lcdcAddr:
		return p.lcdc
	case addr == lcdsAddr:
		return p.lcdsRead()
	case addr == scyAddr:
		return p.scrollY
	case addr == scxAddr:
		return p.scrollX
	case addr == lyAddr:
		return p.lineY
	case addr == lycAddr:
		return p.lineCompareValue
	case addr == wyAddr:
		return p.windowY
	case addr == wxAddr:
		return p.windowX
	case addr == bgpAddr:
		return p.bgPalette.raw
	case addr == obp0Addr:
		return p.objPalette1.raw
	case addr == obp1Addr:
		return p.objPalette2.raw
	case addr == dmaAddr:
		return uint8(p.oamDMASrc >> 8)
	}

	panic("ppu: read at unmapped address")
}

// Write8 implements bus.Device over the PPU's declared address coverage.
func (p *PPU) Write8(addr uint16, value uint8) {
	a := int(addr)
	switch {
	case a >= tilesetStart && a <= tilesetEnd:
		p.tileWrite(value, a)
	case a >= tilemapStart && a <= tilemapEnd:
		p.tilemaps[a-tilemapStart] = value
	case a >= oamStart && a <= oamEnd:
		p.spriteWrite(value, a)
	case addr == lcdcAddr:
		p.lcdcWrite(value)
	case addr == lcdsAddr:
		p.lcdsWrite(value)
	case addr == scyAddr:
		p.scrollY = value
	case addr == scxAddr:
		p.scrollX = value
	case addr == lyAddr:
		// dead write
	case addr == lycAddr:
		p.lineCompareValue = value
	case addr == wyAddr:
		p.windowY = value
	case addr == wxAddr:
		p.windowX = value
	case addr == bgpAddr:
		p.bgPalette.update(value)
	case addr == obp0Addr:
		p.objPalette1.update(value)
	case addr == obp1Addr:
		p.objPalette2.update(value)
	case addr == dmaAddr:
		p.dmaStart(value)
	default:
		panic("ppu: write at unmapped address")
	}
}
