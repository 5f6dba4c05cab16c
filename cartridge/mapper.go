package cartridge

import "fmt"

// Mapper is the bus.Device-shaped capability a cartridge exposes over
// 0x0000-0x7FFF (ROM, possibly banked) and 0xA000-0xBFFF (external RAM,
// possibly banked or absent).
type Mapper interface {
	Read8(addr uint16) uint8
	Write8(addr uint16, value uint8)
}

// factory builds a Mapper from a parsed header and raw ROM image.
type factory func(h *Header, rom []byte) Mapper

var registry = map[uint8]factory{}

func registerMapper(id uint8, f factory) {
	if _, ok := registry[id]; ok {
		panic(fmt.Sprintf("cartridge: mapper id %#02x already registered", id))
	}
	registry[id] = f
}

// Get returns the mapper appropriate for the header's cartridge type.
func Get(h *Header, rom []byte) (Mapper, error) {
	f, ok := registry[h.Type]
	if !ok {
		return nil, fmt.Errorf("cartridge: unsupported cartridge type %#02x", h.Type)
	}
	return f(h, rom), nil
}

func init() {
	registerMapper(0x00, newMBC0)
	registerMapper(0x01, newMBC1)
	registerMapper(0x02, newMBC1)
	registerMapper(0x03, newMBC1)
}
