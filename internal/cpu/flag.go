package cpu

import "github.com/thelolagemann/lr35902/internal/types"

// Flag is one of the four status bits held in the upper
// nibble of the F register.
type Flag = uint8

const (
	FlagZero      Flag = types.Bit7
	FlagSubtract  Flag = types.Bit6
	FlagHalfCarry Flag = types.Bit5
	FlagCarry     Flag = types.Bit4
)

// isFlagSet returns true if the given flag is set.
func (c *CPU) isFlagSet(flag Flag) bool {
	return c.F&flag != 0
}

// setFlag sets or clears a single flag, leaving the others untouched.
func (c *CPU) setFlag(flag Flag, value bool) {
	if value {
		c.F |= flag
	} else {
		c.F &^= flag
	}
}

// setFlags sets all four flags at once. The lower nibble of F is
// always cleared.
func (c *CPU) setFlags(zero, subtract, halfCarry, carry bool) {
	c.F = 0
	if zero {
		c.F |= FlagZero
	}
	if subtract {
		c.F |= FlagSubtract
	}
	if halfCarry {
		c.F |= FlagHalfCarry
	}
	if carry {
		c.F |= FlagCarry
	}
}

// carry returns the carry flag as 0 or 1.
func (c *CPU) carry() uint8 {
	if c.isFlagSet(FlagCarry) {
		return 1
	}
	return 0
}

// condition evaluates the condition encoded in bits 3-4 of a
// conditional jump, call or return.
//
//	0 = NZ, 1 = Z, 2 = NC, 3 = C
func (c *CPU) condition(cc uint8) bool {
	switch cc & 0x3 {
	case 0:
		return !c.isFlagSet(FlagZero)
	case 1:
		return c.isFlagSet(FlagZero)
	case 2:
		return !c.isFlagSet(FlagCarry)
	default:
		return c.isFlagSet(FlagCarry)
	}
}
