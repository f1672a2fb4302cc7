package cartridge

// MemoryBankedCartridge1 represents a MemoryBankedCartridge1 cartridge. This cartridge
// type supports up to 2MB of ROM in 16kB banks and up to 32kB of RAM in 8kB banks.
type MemoryBankedCartridge1 struct {
	baseCartridge

	ram        []byte
	ramEnabled bool

	// bank1 holds the lower 5 bits of the ROM bank, bank2 either the
	// upper 2 bits of the ROM bank or the RAM bank depending on mode.
	bank1 uint8
	bank2 uint8
	mode  bool

	romBanks int
}

// NewMemoryBankedCartridge1 returns a new MemoryBankedCartridge1 cartridge.
func NewMemoryBankedCartridge1(base baseCartridge) *MemoryBankedCartridge1 {
	m := &MemoryBankedCartridge1{
		baseCartridge: base,
		bank1:         1,
		romBanks:      int(base.header.ROMSize / 0x4000),
	}
	if base.header.CartridgeType != MBC1 {
		m.ram = make([]byte, base.header.RAMSize)
	}
	if m.romBanks < 2 {
		m.romBanks = 2
	}
	return m
}

// Read returns the value from the cartridges ROM or RAM, depending on the bank
// selected.
func (m *MemoryBankedCartridge1) Read(address uint16) uint8 {
	switch {
	case address < 0x4000:
		var bank int
		if m.mode {
			bank = int(m.bank2<<5) % m.romBanks
		}
		return m.readROM(bank*0x4000 + int(address))
	case address < 0x8000:
		bank := int(m.bank2<<5|m.bank1) % m.romBanks
		return m.readROM(bank*0x4000 + int(address-0x4000))
	case address >= 0xA000 && address < 0xC000:
		if offset, ok := m.ramOffset(address); ok {
			return m.ram[offset]
		}
	}
	return 0xFF
}

// Write attempts to switch the ROM or RAM bank, or writes to
// the selected RAM bank.
func (m *MemoryBankedCartridge1) Write(address uint16, value uint8) {
	switch {
	case address < 0x2000:
		m.ramEnabled = value&0x0F == 0x0A
	case address < 0x4000:
		// ROM bank number (lower 5 bits), 0 selects bank 1
		m.bank1 = value & 0x1F
		if m.bank1 == 0 {
			m.bank1 = 1
		}
	case address < 0x6000:
		m.bank2 = value & 0x03
	case address < 0x8000:
		// ROM/RAM mode select
		m.mode = value&0x01 == 0x01
	case address >= 0xA000 && address < 0xC000:
		if offset, ok := m.ramOffset(address); ok {
			m.ram[offset] = value
		}
	}
}

// ramOffset returns the offset into ram for address, if RAM is
// present and enabled.
func (m *MemoryBankedCartridge1) ramOffset(address uint16) (int, bool) {
	if !m.ramEnabled || len(m.ram) == 0 {
		return 0, false
	}
	var bank int
	if m.mode {
		bank = int(m.bank2)
	}
	return (bank*0x2000 + int(address-0xA000)) % len(m.ram), true
}
