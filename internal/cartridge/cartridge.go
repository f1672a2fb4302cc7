// Package cartridge provides a Cartridge interface for the DMG.
// The cartridge holds the game ROM and any external RAM.
package cartridge

import (
	"github.com/cespare/xxhash"
	"github.com/pkg/errors"
)

var (
	// ErrTooSmall is returned when a ROM is too small to hold
	// a cartridge header.
	ErrTooSmall = errors.New("cartridge: rom too small to contain a header")
	// ErrUnsupportedType is returned when the cartridge type in the
	// header has no implementation.
	ErrUnsupportedType = errors.New("cartridge: unsupported cartridge type")
)

// Cartridge represents a basic game cartridge. It is mapped at
// 0x0000-0x7FFF for ROM, and 0xA000-0xBFFF for external RAM.
type Cartridge interface {
	Read(address uint16) uint8
	Write(address uint16, value uint8)

	Header() Header
	// Fingerprint is a hash of the whole ROM, used to
	// identify the game regardless of its header.
	Fingerprint() uint64
}

type baseCartridge struct {
	rom         []byte
	header      Header
	fingerprint uint64
}

func (c *baseCartridge) Header() Header {
	return c.header
}

func (c *baseCartridge) Fingerprint() uint64 {
	return c.fingerprint
}

// readROM returns the byte at offset of the ROM, or 0xFF if the
// ROM is shorter than its header declares.
func (c *baseCartridge) readROM(offset int) uint8 {
	if offset < len(c.rom) {
		return c.rom[offset]
	}
	return 0xFF
}

// New parses the header of rom and returns the cartridge
// implementation for its type.
func New(rom []byte) (Cartridge, error) {
	if len(rom) < 0x150 {
		return nil, errors.Wrapf(ErrTooSmall, "got %d bytes", len(rom))
	}

	base := baseCartridge{
		rom:         rom,
		header:      parseHeader(rom),
		fingerprint: xxhash.Sum64(rom),
	}

	switch t := base.header.CartridgeType; t {
	case ROM, ROMRAM, ROMRAMBATT:
		return NewROMCartridge(base), nil
	case MBC1, MBC1RAM, MBC1RAMBATT:
		return NewMemoryBankedCartridge1(base), nil
	default:
		return nil, errors.Wrapf(ErrUnsupportedType, "%s", t)
	}
}
