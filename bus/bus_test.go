package bus

import "testing"

type fakeDevice struct {
	mem [16]uint8
}

func (f *fakeDevice) Read8(addr uint16) uint8 {
	return f.mem[addr]
}

func (f *fakeDevice) Write8(addr uint16, value uint8) {
	f.mem[addr] = value
}

func TestOpenBusRead(t *testing.T) {
	b := New()
	if got := b.Read8(0x1234); got != 0xFF {
		t.Errorf("Read8(unmapped) = %#02x, wanted 0xff", got)
	}
}

func TestWriteToUnmappedIsSilentlyDropped(t *testing.T) {
	b := New()
	b.Write8(0x1234, 0x42) // must not panic
}

func TestFirstMatchWins(t *testing.T) {
	a := &fakeDevice{}
	b := &fakeDevice{}
	a.mem[0] = 1
	b.mem[0] = 2

	bs := New()
	bs.AddItem(0x00, 0x0F, a)
	bs.AddItem(0x00, 0x0F, b)

	if got := bs.Read8(0x00); got != 1 {
		t.Errorf("Read8 = %d, wanted 1 (first registered device wins)", got)
	}
}

func TestInclusiveRangeBoundaries(t *testing.T) {
	d := &fakeDevice{}
	bs := New()
	bs.AddItem(0x04, 0x08, d)

	cases := []struct {
		addr   uint16
		mapped bool
	}{
		{0x03, false},
		{0x04, true},
		{0x08, true},
		{0x09, false},
	}

	for i, tc := range cases {
		got := bs.Read8(tc.addr)
		mapped := got != 0xFF
		if mapped != tc.mapped {
			t.Errorf("case %d: addr %#04x mapped=%v, wanted %v", i, tc.addr, mapped, tc.mapped)
		}
	}
}

func Test16BitComposition(t *testing.T) {
	d := &fakeDevice{}
	bs := New()
	bs.AddItem(0x00, 0x0F, d)

	bs.Write16(0x02, 0xBEEF)
	if got := bs.Read8(0x02); got != 0xEF {
		t.Errorf("low byte = %#02x, wanted 0xef", got)
	}
	if got := bs.Read8(0x03); got != 0xBE {
		t.Errorf("high byte = %#02x, wanted 0xbe", got)
	}
	if got := bs.Read16(0x02); got != 0xBEEF {
		t.Errorf("Read16 = %#04x, wanted 0xbeef", got)
	}
}
