package cartridge

import (
	"errors"
	"testing"
)

// newROM creates a ROM of the given size, with a valid header
// declaring cartridgeType.
func newROM(size int, cartridgeType Type, romCode, ramCode uint8) []byte {
	rom := make([]byte, size)
	copy(rom[0x134:], "TESTGAME")
	rom[0x147] = uint8(cartridgeType)
	rom[0x148] = romCode
	rom[0x149] = ramCode
	rom[0x14D] = headerChecksum(rom[0x100:0x150])

	// mark every bank with its number
	for bank := 0; bank*0x4000 < size; bank++ {
		rom[bank*0x4000+0x200] = uint8(bank)
	}
	return rom
}

func TestNew(t *testing.T) {
	t.Run("too small", func(t *testing.T) {
		_, err := New(make([]byte, 0x14F))
		if !errors.Is(err, ErrTooSmall) {
			t.Errorf("expected ErrTooSmall, got %v", err)
		}
	})
	t.Run("unsupported", func(t *testing.T) {
		_, err := New(newROM(0x8000, MBC3, 0, 0))
		if !errors.Is(err, ErrUnsupportedType) {
			t.Errorf("expected ErrUnsupportedType, got %v", err)
		}
	})
	t.Run("header", func(t *testing.T) {
		c, err := New(newROM(0x8000, ROM, 0, 0))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		h := c.Header()
		if h.Title != "TESTGAME" {
			t.Errorf("expected title TESTGAME, got %q", h.Title)
		}
		if h.ROMSize != 32*1024 {
			t.Errorf("expected 32kB of ROM, got %d", h.ROMSize)
		}
		if !h.ChecksumValid {
			t.Errorf("expected header checksum to be valid")
		}
	})
	t.Run("bad checksum", func(t *testing.T) {
		rom := newROM(0x8000, ROM, 0, 0)
		rom[0x14D]++
		c, err := New(rom)
		if err != nil {
			t.Fatalf("expected a bad checksum not to be fatal, got %v", err)
		}
		if c.Header().ChecksumValid {
			t.Errorf("expected header checksum to be invalid")
		}
	})
	t.Run("fingerprint", func(t *testing.T) {
		a, _ := New(newROM(0x8000, ROM, 0, 0))
		b := newROM(0x8000, ROM, 0, 0)
		b[0x7FFF] = 1
		c, _ := New(b)
		if a.Fingerprint() == c.Fingerprint() {
			t.Errorf("expected different ROMs to have different fingerprints")
		}
	})
}

func TestROMCartridge(t *testing.T) {
	c, _ := New(newROM(0x8000, ROMRAM, 0, 0x02))

	if c.Read(0x4200) != 1 {
		t.Errorf("expected bank 1 to be mapped at 0x4000, got %d", c.Read(0x4200))
	}
	c.Write(0x0200, 0x55)
	if c.Read(0x0200) != 0 {
		t.Errorf("expected writes to ROM to be ignored")
	}
	c.Write(0xA010, 0x42)
	if c.Read(0xA010) != 0x42 {
		t.Errorf("expected external RAM to hold 0x42, got 0x%02X", c.Read(0xA010))
	}

	plain, _ := New(newROM(0x8000, ROM, 0, 0))
	if plain.Read(0xA000) != 0xFF {
		t.Errorf("expected missing RAM to read 0xFF")
	}
}

func TestMemoryBankedCartridge1(t *testing.T) {
	// 512kB, 32 banks, 32kB RAM
	c, err := New(newROM(0x80000, MBC1RAM, 0x04, 0x03))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if c.Read(0x4200) != 1 {
		t.Errorf("expected bank 1 to be selected at power on, got %d", c.Read(0x4200))
	}

	c.Write(0x2000, 0x05)
	if c.Read(0x4200) != 5 {
		t.Errorf("expected bank 5, got %d", c.Read(0x4200))
	}
	c.Write(0x2000, 0x00)
	if c.Read(0x4200) != 1 {
		t.Errorf("expected bank 0 to select bank 1, got %d", c.Read(0x4200))
	}
	c.Write(0x2000, 0x1F)
	if c.Read(0x4200) != 31 {
		t.Errorf("expected bank 31, got %d", c.Read(0x4200))
	}
	if c.Read(0x0200) != 0 {
		t.Errorf("expected bank 0 to stay fixed, got %d", c.Read(0x0200))
	}

	// RAM is disabled at power on
	c.Write(0xA000, 0x11)
	if c.Read(0xA000) != 0xFF {
		t.Errorf("expected disabled RAM to read 0xFF")
	}

	c.Write(0x0000, 0x0A)
	c.Write(0x6000, 0x01)
	for bank := uint8(0); bank < 4; bank++ {
		c.Write(0x4000, bank)
		c.Write(0xA000, 0x10+bank)
	}
	for bank := uint8(0); bank < 4; bank++ {
		c.Write(0x4000, bank)
		if got := c.Read(0xA000); got != 0x10+bank {
			t.Errorf("expected RAM bank %d to hold 0x%02X, got 0x%02X", bank, 0x10+bank, got)
		}
	}

	c.Write(0x0000, 0x00)
	if c.Read(0xA000) != 0xFF {
		t.Errorf("expected RAM to read 0xFF once disabled")
	}
}

func TestMemoryBankedCartridge1_LargeROM(t *testing.T) {
	// 1MB, 64 banks
	c, _ := New(newROM(0x100000, MBC1, 0x05, 0))

	c.Write(0x2000, 0x02)
	c.Write(0x4000, 0x01)
	if c.Read(0x4200) != 0x22 {
		t.Errorf("expected bank 0x22, got 0x%02X", c.Read(0x4200))
	}

	// mode 1 maps the upper bits into the first bank too
	c.Write(0x6000, 0x01)
	if c.Read(0x0200) != 0x20 {
		t.Errorf("expected bank 0x20 at 0x0000 in mode 1, got 0x%02X", c.Read(0x0200))
	}
}

func TestHeader_String(t *testing.T) {
	rom := newROM(0x10000, MBC1RAMBATT, 1, 2)
	c, err := New(rom)
	if err != nil {
		t.Fatal(err)
	}
	h := c.Header()
	if h.GameboyColor() {
		t.Errorf("expected a DMG cartridge")
	}
	if expected := "TESTGAME Mode: DMG | Type: MBC1+RAM+BATTERY | ROM Size: 64kB | RAM Size: 8kB"; h.String() != expected {
		t.Errorf("expected %q, got %q", expected, h.String())
	}

	rom[0x143] = 0x80
	c, err = New(rom)
	if err != nil {
		t.Fatal(err)
	}
	h = c.Header()
	if !h.GameboyColor() || h.Hardware() != "CGB" {
		t.Errorf("expected a CGB compatible cartridge, got %s", h.Hardware())
	}
}
