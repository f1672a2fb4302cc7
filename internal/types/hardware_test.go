package types

import "testing"

func TestHardwareRegisters(t *testing.T) {
	t.Run("unmapped", func(t *testing.T) {
		h := &HardwareRegisters{}
		h.Write(0xFF03, 0x12)
		if v := h.Read(0xFF03); v != 0xFF {
			t.Errorf("expected unmapped register to read 0xFF, got 0x%02X", v)
		}
	})
	t.Run("read write", func(t *testing.T) {
		h := &HardwareRegisters{}
		var value uint8
		h.Register(SCX, func(v uint8) { value = v }, func() uint8 { return value })
		h.Write(SCX, 0x42)
		if v := h.Read(SCX); v != 0x42 {
			t.Errorf("expected 0x42, got 0x%02X", v)
		}
	})
	t.Run("write only", func(t *testing.T) {
		h := &HardwareRegisters{}
		written := false
		h.Register(DIV, func(v uint8) { written = true }, nil)
		h.Write(DIV, 0x01)
		if !written {
			t.Errorf("expected write function to be called")
		}
		if v := h.Read(DIV); v != 0xFF {
			t.Errorf("expected write only register to read 0xFF, got 0x%02X", v)
		}
	})
	t.Run("register twice", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Errorf("expected registering an address twice to panic")
			}
		}()
		h := &HardwareRegisters{}
		h.Register(LY, nil, nil)
		h.Register(LY, nil, nil)
	})
}
