package cartridge

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func buildHeader(title string, cartType, romSize, ramSize uint8) []byte {
	raw := make([]byte, 0x150)
	copy(raw[titleStart:titleEnd+1], title)
	raw[cartTypeAddr] = cartType
	raw[romSizeAddr] = romSize
	raw[ramSizeAddr] = ramSize

	var sum uint8
	for _, b := range raw[titleStart:checksumAddr] {
		sum = sum - b - 1
	}
	raw[checksumAddr] = sum

	return raw
}

func TestParseHeaderRoundTrip(t *testing.T) {
	raw := buildHeader("TESTGAME", 0x00, 0x01, 0x02)

	h, err := parseHeader(raw)
	require.NoError(t, err)
	require.Equal(t, "TESTGAME", h.Title)
	require.Equal(t, uint8(0x00), h.Type)
	require.Equal(t, 4, h.romBanks())
	require.Equal(t, 8192, h.ramBytes())
}

func TestParseHeaderBadChecksum(t *testing.T) {
	raw := buildHeader("TESTGAME", 0x00, 0x00, 0x00)
	raw[checksumAddr] ^= 0xFF

	_, err := parseHeader(raw)
	require.Error(t, err)
}

func TestMBC0FlatMapping(t *testing.T) {
	rom := make([]byte, 0x8000)
	rom[0x4000] = 0x42
	m := newMBC0(&Header{}, rom)

	require.Equal(t, uint8(0x42), m.Read8(0x4000))
}

func TestMBC1BankSwitch(t *testing.T) {
	rom := make([]byte, 0x4000*4)
	rom[0x4000*2] = 0xAB // start of bank 2

	m := newMBC1(&Header{}, rom).(*mbc1)
	m.Write8(0x2000, 0x02) // select bank 2

	require.Equal(t, uint8(0xAB), m.Read8(0x4000))
}

func TestMBC1BankZeroAliasesToOne(t *testing.T) {
	rom := make([]byte, 0x4000*2)
	rom[0x4000] = 0x99

	m := newMBC1(&Header{}, rom).(*mbc1)
	m.Write8(0x2000, 0x00)

	require.Equal(t, uint8(0x99), m.Read8(0x4000))
}
