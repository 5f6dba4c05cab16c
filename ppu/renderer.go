package ppu

// drawLine realizes the standard DMG compositing pipeline for the scanline
// that line_y just became. The pixel-renderer algorithm is left as a
// design note, not a mandate, so the tile-data/tile-map base-selection and
// sprite-priority rules below follow hardware behavior rather than any
// single reference's field naming.
func (p *PPU) drawLine() {
	if p.lineY >= screenHeight {
		if p.lineY == lineVBlankStart {
			p.windowLine = 0
		}
		return
	}

	p.drawBackground()
	if p.windowEnabled {
		p.drawWindow()
	}
	if p.objEnabled {
		p.drawSprites()
	}
}

func (p *PPU) tileDataBase() (base int, signed bool) {
	// LCDC bit 4 is decoded into bgWindowSignedAddressing (see lcdcWrite),
	// but hardware ties that bit to the *unsigned* 0x8000 method when set;
	// the field's name is the inverse of what the bit selects.
	if p.bgWindowSignedAddressing {
		return 0, false // 0x8000 unsigned method, tile indices 0..255
	}
	return 256, true // 0x8800 signed method, tile indices -128..127 relative to 0x9000
}

func (p *PPU) tileIndexAt(tilemapBase int, col, row int) int {
	off := row*tilemapDimension + col
	raw := p.tilemaps[tilemapBase-tilemapStart+off]

	base, signed := p.tileDataBase()
	if signed {
		return base + int(int8(raw))
	}
	return base + int(raw)
}

func (p *PPU) drawBackground() {
	y := int(p.lineY)

	if !p.bgWindowEnable {
		for x := 0; x < screenWidth; x++ {
			p.frame.set(x, y, 0)
			p.bgPixelBuffer[x] = 0
		}
		return
	}

	tilemapBase := tilemapAStart
	if p.bgTilesHigh {
		tilemapBase = tilemapBStart
	}

	scrolledY := (y + int(p.scrollY)) & 0xFF
	tileRow := scrolledY / tileDimension
	pixelRow := scrolledY % tileDimension

	for x := 0; x < screenWidth; x++ {
		scrolledX := (x + int(p.scrollX)) & 0xFF
		tileCol := scrolledX / tileDimension
		pixelCol := scrolledX % tileDimension

		idx := p.tileIndexAt(tilemapBase, tileCol, tileRow)
		shade := p.tiles[idx].pixel[pixelRow][pixelCol]

		p.bgPixelBuffer[x] = shade
		p.frame.set(x, y, p.bgPalette.table[shade])
	}
}

func (p *PPU) drawWindow() {
	y := int(p.lineY)
	wy := int(p.windowY)
	wx := int(p.windowX) - 7

	if y < wy {
		return
	}

	tilemapBase := tilemapAStart
	if p.windowTilesHigh {
		tilemapBase = tilemapBStart
	}

	winLine := p.windowLine
	tileRow := winLine / tileDimension
	pixelRow := winLine % tileDimension

	drewAny := false
	for x := 0; x < screenWidth; x++ {
		wxOff := x - wx
		if wxOff < 0 {
			continue
		}
		drewAny = true

		tileCol := wxOff / tileDimension
		pixelCol := wxOff % tileDimension

		idx := p.tileIndexAt(tilemapBase, tileCol, tileRow)
		shade := p.tiles[idx].pixel[pixelRow][pixelCol]

		p.bgPixelBuffer[x] = shade
		p.frame.set(x, y, p.bgPalette.table[shade])
	}

	if drewAny {
		p.windowLine++
	}
}

func (p *PPU) drawSprites() {
	y := int(p.lineY)

	height := 8
	if p.objDoubleSprites {
		height = 16
	}

	p.priorityBuffer.clear()

	type visibleSprite struct {
		idx    int
		sprite oamEntry
		spriteY int
	}

	var visible []visibleSprite
	for i := 0; i < oamSpriteCount; i++ {
		s := p.sprites[i]
		spriteY := int(s.y) - 16
		if y < spriteY || y >= spriteY+height {
			continue
		}

		visible = append(visible, visibleSprite{idx: i, sprite: s, spriteY: spriteY})

		spriteX := int(s.x) - 8
		for px := 0; px < 8; px++ {
			p.priorityBuffer.tryClaimPixel(spriteX+px, i, spriteX)
		}

		if len(visible) >= 10 {
			break
		}
	}

	for _, v := range visible {
		spriteX := int(v.sprite.x) - 8
		row := y - v.spriteY
		if v.sprite.yFlip {
			row = height - 1 - row
		}

		tileIdx := int(v.sprite.tile)
		if height == 16 {
			tileIdx &^= 1
			if row >= 8 {
				tileIdx++
				row -= 8
			}
		}

		pal := &p.objPalette1
		if v.sprite.paletteSelect {
			pal = &p.objPalette2
		}

		for px := 0; px < 8; px++ {
			screenX := spriteX + px
			if screenX < 0 || screenX >= screenWidth {
				continue
			}
			if p.priorityBuffer.getPriority(screenX) != v.idx {
				continue
			}

			col := px
			if v.sprite.xFlip {
				col = 7 - px
			}

			shade := p.tiles[tileIdx].pixel[row][col]
			if shade == 0 {
				continue // sprite color 0 is always transparent
			}

			if v.sprite.behindBackground && p.bgPixelBuffer[screenX] != 0 {
				continue
			}

			p.frame.set(screenX, y, pal.table[shade])
		}
	}
}
