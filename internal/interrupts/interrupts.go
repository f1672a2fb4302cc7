// Package interrupts provides the interrupt sources of the Game Boy,
// their handler vectors and the IF/IE registers that hold them.
package interrupts

import (
	"github.com/thelolagemann/lr35902/internal/types"
)

const (
	// VBlankFlag is the VBlank interrupt flag (bit 0),
	// which is requested every time the PPU enters
	// VBlank mode.
	VBlankFlag = types.Bit0
	// LCDFlag is the LCD interrupt flag (bit 1), which
	// is requested by the LCD STAT register (types.STAT),
	// when certain conditions are met.
	LCDFlag = types.Bit1
	// TimerFlag is the Timer interrupt flag (bit 2),
	// which is requested when the timer overflows.
	TimerFlag = types.Bit2
	// SerialFlag is the Serial interrupt flag (bit 3),
	// which is requested when a serial transfer is
	// completed.
	SerialFlag = types.Bit3
	// JoypadFlag is the Joypad interrupt Flag (bit 4),
	// which is requested when a button is pressed.
	JoypadFlag = types.Bit4

	// Mask covers the five interrupt sources.
	Mask = 0x1F
)

// Vectors holds the handler address of each interrupt source,
// indexed by the bit position of its flag.
var Vectors = [5]uint16{0x0040, 0x0048, 0x0050, 0x0058, 0x0060}

// Next returns the highest priority interrupt in pending, along with
// its handler vector. Priority follows bit order, so VBlank (bit 0) is
// always serviced before Joypad (bit 4). ok is false if nothing is
// pending.
func Next(pending uint8) (flag uint8, vector uint16, ok bool) {
	for i := uint8(0); i < 5; i++ {
		flag = uint8(1 << i)
		if pending&flag != 0 {
			return flag, Vectors[i], true
		}
	}
	return 0, 0, false
}

// Name returns a readable name for a single interrupt flag.
func Name(flag uint8) string {
	switch flag {
	case VBlankFlag:
		return "VBlank"
	case LCDFlag:
		return "LCD"
	case TimerFlag:
		return "Timer"
	case SerialFlag:
		return "Serial"
	case JoypadFlag:
		return "Joypad"
	}
	return "unknown"
}

// Service is the backing store of the IF and IE registers. The
// MMU maps it at types.IF and types.IE, so the CPU and software
// see it through ordinary bus accesses, and peripherals raise
// their requests through Request.
type Service struct {
	Flag   uint8 // interrupt Flag (types.IF)
	Enable uint8 // interrupt Enable (types.IE)
}

// NewService returns a new Service.
func NewService() *Service {
	return &Service{}
}

// ReadFlag returns the value of the IF register. The
// upper 3 bits are unused and always read as set.
func (s *Service) ReadFlag() uint8 {
	return s.Flag | 0xE0
}

// WriteFlag writes the IF register, only the first 5
// bits are stored.
func (s *Service) WriteFlag(v uint8) {
	s.Flag = v & Mask
}

// ReadEnable returns the value of the IE register.
func (s *Service) ReadEnable() uint8 {
	return s.Enable
}

// WriteEnable writes the IE register. All 8 bits are
// stored, although only the lower 5 select sources.
func (s *Service) WriteEnable(v uint8) {
	s.Enable = v
}

// Request requests the specified interrupt, by setting
// the corresponding bit in the Flag register.
func (s *Service) Request(flag uint8) {
	s.Flag |= flag & Mask
}

// HasInterrupts returns true if there are any interrupts
// that are requested and enabled.
func (s *Service) HasInterrupts() bool {
	return s.Enable&s.Flag&Mask != 0
}

// Reset clears both registers.
func (s *Service) Reset() {
	s.Flag = 0
	s.Enable = 0
}
