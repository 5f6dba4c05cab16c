package cartridge

import (
	"fmt"
	"os"
)

// ROM is a loaded cartridge image: its decoded header plus the mapper that
// serves reads and writes against it.
type ROM struct {
	Header *Header
	Mapper Mapper
}

// Load reads a DMG ROM image from path, parses its header, and constructs
// the mapper its cartridge type calls for.
func Load(path string) (*ROM, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cartridge: couldn't read %q: %w", path, err)
	}

	h, err := parseHeader(raw)
	if err != nil {
		return nil, fmt.Errorf("cartridge: %q: %w", path, err)
	}

	m, err := Get(h, raw)
	if err != nil {
		return nil, fmt.Errorf("cartridge: %q: %w", path, err)
	}

	return &ROM{Header: h, Mapper: m}, nil
}

func (r *ROM) Read8(addr uint16) uint8 {
	return r.Mapper.Read8(addr)
}

func (r *ROM) Write8(addr uint16, value uint8) {
	r.Mapper.Write8(addr, value)
}
