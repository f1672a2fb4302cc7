package bits

import "testing"

func TestBits(t *testing.T) {
	for i := uint8(0); i < 8; i++ {
		if !Test(Set(0, i), i) {
			t.Errorf("expected bit %d to be set", i)
		}
		if Test(Reset(0xFF, i), i) {
			t.Errorf("expected bit %d to be reset", i)
		}
		if Val(1<<i, i) != 1 {
			t.Errorf("expected value of bit %d to be 1", i)
		}
	}
}

func TestHalfCarry(t *testing.T) {
	if !HalfCarryAdd(0x0F, 0x01, 0) {
		t.Errorf("expected half carry for 0x0F + 0x01")
	}
	if HalfCarryAdd(0x0E, 0x01, 0) {
		t.Errorf("expected no half carry for 0x0E + 0x01")
	}
	if !HalfCarryAdd(0x0E, 0x01, 1) {
		t.Errorf("expected half carry for 0x0E + 0x01 + 1")
	}
	if !HalfCarrySub(0x10, 0x01, 0) {
		t.Errorf("expected half borrow for 0x10 - 0x01")
	}
	if HalfCarrySub(0x11, 0x01, 0) {
		t.Errorf("expected no half borrow for 0x11 - 0x01")
	}
	if !HalfCarrySub(0x11, 0x01, 1) {
		t.Errorf("expected half borrow for 0x11 - 0x01 - 1")
	}
}
