package memory

import "testing"

func TestRAMReadWrite(t *testing.T) {
	r := New(0xC000, 0x2000)

	r.Write8(0xC000, 0x11)
	r.Write8(0xDFFF, 0x22)

	if got := r.Read8(0xC000); got != 0x11 {
		t.Errorf("Read8(0xC000) = %#02x, wanted 0x11", got)
	}
	if got := r.Read8(0xDFFF); got != 0x22 {
		t.Errorf("Read8(0xDFFF) = %#02x, wanted 0x22", got)
	}
}

func TestRAMOutOfRangePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic on out-of-range access")
		}
	}()

	r := New(0xFF80, 0x7F)
	r.Read8(0xFFFF)
}
