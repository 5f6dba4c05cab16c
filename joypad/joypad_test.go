package joypad

import "testing"

func TestSelectBitsEchoedOnRead(t *testing.T) {
	j := New()
	j.Write8(P1Addr, 0x20) // bit4=0: select direction keys

	got := j.Read8(P1Addr)
	if got&0x30 != 0x20 {
		t.Errorf("select bits = %#02x, wanted 0x20", got&0x30)
	}
}

func TestNoKeysPressedReadsAllOnes(t *testing.T) {
	j := New()
	j.Write8(P1Addr, 0x10) // bit5=0: select action keys

	if got := j.Read8(P1Addr); got&0x0F != 0x0F {
		t.Errorf("button nibble = %#02x, wanted 0x0f (nothing pressed)", got&0x0F)
	}
}
