package interrupts

import "testing"

func TestNext(t *testing.T) {
	tests := []struct {
		pending uint8
		flag    uint8
		vector  uint16
	}{
		{VBlankFlag, VBlankFlag, 0x40},
		{LCDFlag, LCDFlag, 0x48},
		{TimerFlag, TimerFlag, 0x50},
		{SerialFlag, SerialFlag, 0x58},
		{JoypadFlag, JoypadFlag, 0x60},
		{VBlankFlag | LCDFlag, VBlankFlag, 0x40},
		{LCDFlag | JoypadFlag, LCDFlag, 0x48},
		{TimerFlag | SerialFlag | JoypadFlag, TimerFlag, 0x50},
		{Mask, VBlankFlag, 0x40},
	}
	for _, tt := range tests {
		flag, vector, ok := Next(tt.pending)
		if !ok {
			t.Errorf("expected an interrupt for pending 0b%05b", tt.pending)
			continue
		}
		if flag != tt.flag || vector != tt.vector {
			t.Errorf("pending 0b%05b: expected %s at 0x%04X, got %s at 0x%04X",
				tt.pending, Name(tt.flag), tt.vector, Name(flag), vector)
		}
	}

	if _, _, ok := Next(0); ok {
		t.Errorf("expected no interrupt for pending 0")
	}
	if _, _, ok := Next(0xE0); ok {
		t.Errorf("expected unused bits to never select an interrupt")
	}
}

func TestService(t *testing.T) {
	s := NewService()

	s.WriteFlag(0xFF)
	if s.Flag != Mask {
		t.Errorf("expected IF to store only 5 bits, got 0b%08b", s.Flag)
	}
	if s.ReadFlag() != 0xFF {
		t.Errorf("expected IF to read 0xFF, got 0x%02X", s.ReadFlag())
	}

	s.WriteEnable(0x15)
	if s.ReadEnable() != 0x15 {
		t.Errorf("expected IE to read back 0x15, got 0x%02X", s.ReadEnable())
	}

	s.Reset()
	if s.HasInterrupts() {
		t.Errorf("expected no interrupts after reset")
	}
	s.Request(TimerFlag)
	if s.HasInterrupts() {
		t.Errorf("expected requested but disabled timer to not be pending")
	}
	s.WriteEnable(TimerFlag)
	if !s.HasInterrupts() {
		t.Errorf("expected enabled timer request to be pending")
	}
}
