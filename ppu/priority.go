package ppu

// spritePriorityBuffer resolves, per screen-x pixel, which sprite (by OAM
// index) wins when more than one sprite covers that pixel on a scanline.
// DMG hardware priority is by X coordinate (lower wins), and by OAM index
// when X coordinates tie (lower index wins).
type spritePriorityBuffer struct {
	owner [screenWidth]int
	ownerX [screenWidth]int
}

func (b *spritePriorityBuffer) clear() {
	for i := range b.owner {
		b.owner[i] = -1
		b.ownerX[i] = 0
	}
}

// tryClaimPixel lets sprite oamIndex (at screen x-coordinate spriteX) claim
// pixel bufferX if no sprite holds it yet, or if it beats the current
// holder by the X/OAM-index tie-break rule.
func (b *spritePriorityBuffer) tryClaimPixel(bufferX, oamIndex, spriteX int) {
	if bufferX < 0 || bufferX >= screenWidth {
		return
	}

	cur := b.owner[bufferX]
	if cur == -1 {
		b.owner[bufferX] = oamIndex
		b.ownerX[bufferX] = spriteX
		return
	}

	if spriteX < b.ownerX[bufferX] || (spriteX == b.ownerX[bufferX] && oamIndex < cur) {
		b.owner[bufferX] = oamIndex
		b.ownerX[bufferX] = spriteX
	}
}

func (b *spritePriorityBuffer) getPriority(bufferX int) int {
	if bufferX < 0 || bufferX >= screenWidth {
		return -1
	}
	return b.owner[bufferX]
}
