package ppu

// color is a tiny RGBA tuple, matching the teacher's own palette idiom
// (a flat byte slice rather than image/color.RGBA) so video.Frontend can
// blit it directly.
type color []uint8

func newColor(v uint8) color {
	return []uint8{v, v, v, 0xff}
}

// shadeRamp maps the DMG's 2-bit shade indices to the classic four-gray
// palette, shrunk from the teacher's 64-entry NES SYSTEM_PALETTE.
var shadeRamp = [4]color{
	newColor(0xFF), // lightest
	newColor(0xAA),
	newColor(0x55),
	newColor(0x00), // darkest
}

// FrameBuffer is the 160x144 visible DMG screen, one shade index per pixel.
type FrameBuffer struct {
	pixels [screenWidth * screenHeight]uint8
}

// Resolution returns the fixed DMG screen dimensions.
func Resolution() (int, int) {
	return screenWidth, screenHeight
}

// At returns the RGBA color for the shade stored at (x, y).
func (f *FrameBuffer) At(x, y int) color {
	return shadeRamp[f.pixels[y*screenWidth+x]]
}

func (f *FrameBuffer) set(x, y int, shade uint8) {
	f.pixels[y*screenWidth+x] = shade
}
