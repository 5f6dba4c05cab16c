package cartridge

// mbc1 implements basic ROM banking: a fixed bank 0 at 0x0000-0x3FFF and a
// switchable bank at 0x4000-0x7FFF, selected by a 5-bit register latched
// through 0x2000-0x3FFF. External RAM (0xA000-0xBFFF), if present, is a
// single fixed bank; RAM banking and the MBC1 mode-select register are not
// modeled, matching the "basic ROM banking" scope this cartridge package
// commits to.
type mbc1 struct {
	rom      []byte
	ram      []byte
	romBank  uint8
	ramOn    bool
}

func newMBC1(h *Header, rom []byte) Mapper {
	return &mbc1{
		rom:     rom,
		ram:     make([]byte, h.ramBytes()),
		romBank: 1,
	}
}

func (m *mbc1) bankBase() int {
	bank := m.romBank
	if bank == 0 {
		bank = 1
	}
	return int(bank) * 0x4000
}

func (m *mbc1) Read8(addr uint16) uint8 {
	switch {
	case addr < 0x4000:
		return m.rom[addr]
	case addr < 0x8000:
		off := m.bankBase() + int(addr-0x4000)
		if off < len(m.rom) {
			return m.rom[off]
		}
		return 0xFF
	case addr >= 0xA000 && addr < 0xC000:
		if !m.ramOn || len(m.ram) == 0 {
			return 0xFF
		}
		off := int(addr - 0xA000)
		if off < len(m.ram) {
			return m.ram[off]
		}
		return 0xFF
	}
	return 0xFF
}

func (m *mbc1) Write8(addr uint16, value uint8) {
	switch {
	case addr < 0x2000:
		m.ramOn = value&0x0F == 0x0A
	case addr < 0x4000:
		bank := value & 0x1F
		if bank == 0 {
			bank = 1
		}
		m.romBank = bank
	case addr >= 0xA000 && addr < 0xC000:
		if m.ramOn && len(m.ram) > 0 {
			off := int(addr - 0xA000)
			if off < len(m.ram) {
				m.ram[off] = value
			}
		}
	}
}
