package cartridge

// ROMCartridge represents a ROM cartridge. This cartridge type is the simplest
// cartridge type and has no MBC, it may carry up to 8kB of external RAM.
type ROMCartridge struct {
	baseCartridge
	ram []byte
}

// NewROMCartridge returns a new ROM cartridge.
func NewROMCartridge(base baseCartridge) *ROMCartridge {
	r := &ROMCartridge{baseCartridge: base}
	if base.header.CartridgeType != ROM {
		r.ram = make([]byte, min(base.header.RAMSize, 0x2000))
	}
	return r
}

// Read returns the value at the given address.
func (r *ROMCartridge) Read(address uint16) uint8 {
	if address < 0x8000 {
		return r.readROM(int(address))
	}
	if offset := int(address) - 0xA000; offset >= 0 && offset < len(r.ram) {
		return r.ram[offset]
	}
	return 0xFF
}

// Write writes the value to external RAM, writes to ROM are ignored.
func (r *ROMCartridge) Write(address uint16, value uint8) {
	if offset := int(address) - 0xA000; offset >= 0 && offset < len(r.ram) {
		r.ram[offset] = value
	}
}
