// Package bus implements the generic address-bus fabric that lets the PPU
// and the rest of the machine share a single 16-bit memory space.
package bus

// Device is the capability every bus-attached component exposes: an 8-bit
// read/write pair, plus a default little-endian 16-bit composition that
// callers may override when a device needs something smarter.
type Device interface {
	Read8(addr uint16) uint8
	Write8(addr uint16, value uint8)
}

// Read16 is the default 16-bit read: low byte at addr, high byte at addr+1.
func Read16(d Device, addr uint16) uint16 {
	lo := uint16(d.Read8(addr))
	hi := uint16(d.Read8(addr + 1))
	return (hi << 8) | lo
}

// Write16 is the default 16-bit write: low byte at addr, high byte at addr+1.
func Write16(d Device, addr uint16, value uint16) {
	d.Write8(addr, uint8(value&0xFF))
	d.Write8(addr+1, uint8(value>>8))
}

// BusItem binds a device to the inclusive address range it answers for.
type BusItem struct {
	Start  uint16
	End    uint16
	Device Device
}

func (bi BusItem) inRange(addr uint16) bool {
	return addr >= bi.Start && addr <= bi.End
}

// Bus is an ordered sequence of BusItems. Lookups return the first item
// whose range contains the address; overlapping ranges are resolved by
// registration order, not by error.
type Bus struct {
	items []BusItem
}

// New returns an empty bus.
func New() *Bus {
	return &Bus{}
}

// AddItem registers a range-to-device binding. No uniqueness check is
// performed; a later, overlapping registration is simply never reached if
// an earlier one already claims the address.
func (b *Bus) AddItem(start, end uint16, d Device) {
	b.items = append(b.items, BusItem{Start: start, End: end, Device: d})
}

func (b *Bus) find(addr uint16) Device {
	for _, it := range b.items {
		if it.inRange(addr) {
			return it.Device
		}
	}
	return nil
}

// Read8 returns 0xFF for any address no registered device claims (open bus).
func (b *Bus) Read8(addr uint16) uint8 {
	if d := b.find(addr); d != nil {
		return d.Read8(addr)
	}
	return 0xFF
}

// Write8 silently drops writes to unmapped addresses.
func (b *Bus) Write8(addr uint16, value uint8) {
	if d := b.find(addr); d != nil {
		d.Write8(addr, value)
	}
}

// Read16 composes two Read8 calls through whichever device(s) own addr and
// addr+1 (normally the same device).
func (b *Bus) Read16(addr uint16) uint16 {
	return Read16(b, addr)
}

// Write16 composes two Write8 calls through whichever device(s) own addr
// and addr+1 (normally the same device).
func (b *Bus) Write16(addr uint16, value uint16) {
	Write16(b, addr, value)
}
