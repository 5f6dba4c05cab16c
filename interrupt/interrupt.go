// Package interrupt implements the DMG interrupt enable/flag latch pair
// that the PPU requests V-blank and LCD-STAT interrupts through. The CPU
// that services these is out of scope here; this package stands in as the
// external collaborator the PPU core actually writes to.
package interrupt

const (
	// IEAddr is the interrupt-enable register address.
	IEAddr uint16 = 0xFFFF
	// IFAddr is the interrupt-flag (request) register address.
	IFAddr uint16 = 0xFF0F
)

// Bit positions shared by IE and IF, grounded in the DMG's five interrupt
// sources. Only VBlank and LCDStat are ever raised by this repository's
// PPU; Timer/Serial/Joypad exist so the latch is a faithful collaborator.
const (
	VBlank uint8 = 1 << 0
	LCDStat uint8 = 1 << 1
	Timer uint8 = 1 << 2
	Serial uint8 = 1 << 3
	Joypad uint8 = 1 << 4
)

// Status is the IE/IF register pair, addressable as two bus.Device-shaped
// bytes (see Read8/Write8) and also consumed directly by the PPU via
// RequestVBlank/RequestLCDStat.
type Status struct {
	enable uint8
	flags  uint8
}

// New returns a zeroed interrupt latch.
func New() *Status {
	return &Status{}
}

// RequestVBlank sets the V-blank flag bit. Idempotent: requesting twice
// before the flag is serviced and cleared has the same effect as once.
func (s *Status) RequestVBlank() {
	s.flags |= VBlank
}

// RequestLCDStat sets the LCD-STAT flag bit. Idempotent for the same reason.
func (s *Status) RequestLCDStat() {
	s.flags |= LCDStat
}

// Pending returns the interrupt bits that are both enabled and flagged
// (zero when none is pending).
func (s *Status) Pending() uint8 {
	return s.enable & s.flags
}

// Clear clears the given flag bits, as a CPU would after servicing them.
func (s *Status) Clear(bits uint8) {
	s.flags &^= bits
}

// Read8 implements bus.Device over the IE/IF addresses.
func (s *Status) Read8(addr uint16) uint8 {
	switch addr {
	case IEAddr:
		return s.enable
	case IFAddr:
		return s.flags
	}
	panic("interrupt: read at unmapped address")
}

// Write8 implements bus.Device over the IE/IF addresses.
func (s *Status) Write8(addr uint16, value uint8) {
	switch addr {
	case IEAddr:
		s.enable = value
	case IFAddr:
		s.flags = value
	default:
		panic("interrupt: write at unmapped address")
	}
}
