package types

import "fmt"

// HardwareRegisters is a table of hardware registers, which can be
// read and written to. The table is indexed by the address of the
// hardware register ANDed with 0x007F. Each machine owns its own
// table, so that several machines can live in one process.
type HardwareRegisters [0x80]*HardwareRegister

// Read returns the value of the hardware register for the given
// address. If no hardware register is mapped, it returns 0xFF.
func (h *HardwareRegisters) Read(address uint16) uint8 {
	if h[address&0x007F] == nil {
		return 0xFF
	}
	return h[address&0x007F].Read()
}

// Write writes the given value to the hardware register for the
// given address. Writes to unmapped addresses are ignored.
func (h *HardwareRegisters) Write(address uint16, value uint8) {
	if h[address&0x007F] == nil {
		return
	}
	h[address&0x007F].Write(value)
}

// Register maps a hardware register at the given address. Either
// function may be nil, in which case the register reads as 0xFF or
// ignores writes. Registering the same address twice panics, as that
// is always a wiring mistake.
func (h *HardwareRegisters) Register(address HardwareAddress, write func(v uint8), read func() uint8) {
	if address < IOBase || address > 0xFF7F {
		panic(fmt.Sprintf("hardware: address 0x%04X is outside of the I/O page", address))
	}
	if h[address&0x007F] != nil {
		panic(fmt.Sprintf("hardware: address 0x%04X registered twice", address))
	}
	h[address&0x007F] = &HardwareRegister{
		write: write,
		read:  read,
	}
}

// HardwareRegister represents a hardware register of the Game
// Boy. The hardware registers are used to control and read the
// state of the peripherals.
type HardwareRegister struct {
	write func(v uint8)
	read  func() uint8
}

func (h *HardwareRegister) Read() uint8 {
	if h.read == nil {
		return 0xFF
	}
	return h.read()
}

func (h *HardwareRegister) Write(value uint8) {
	if h.write != nil {
		h.write(value)
	}
}
