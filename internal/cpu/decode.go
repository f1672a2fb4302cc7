package cpu

import (
	"github.com/thelolagemann/lr35902/internal/types"
	"github.com/thelolagemann/lr35902/pkg/bits"
)

// decode executes the given opcode. Most of the instruction set is
// laid out in a regular grid, so the opcode is split into its bit
// fields rather than looked up:
//
//	x = bits 6-7, y = bits 3-5, z = bits 0-2
//	p = bits 4-5, q = bit 3
func (c *CPU) decode(instr uint8) {
	x := instr >> 6
	y := instr >> 3 & 7
	z := instr & 7
	p := y >> 1
	q := y & 1

	switch x {
	case 0:
		c.decodeBlock0(y, z, p, q)
	case 1:
		if instr == 0x76 {
			c.mode = ModeHalted
			return
		}
		// LD r, r'
		c.store(operand(y), c.load(operand(z)))
	case 2:
		// ALU A, r
		c.alu(y, c.load(operand(z)))
	case 3:
		c.decodeBlock3(instr, y, z, p, q)
	}
}

func (c *CPU) decodeBlock0(y, z, p, q uint8) {
	switch z {
	case 0:
		switch y {
		case 0:
			// NOP
		case 1:
			// LD (a16), SP
			addr := c.readOperand16()
			c.writeByte(addr, types.Low(c.SP))
			c.writeByte(addr+1, types.High(c.SP))
		case 2:
			c.stop()
		case 3:
			// JR e
			c.jumpRelative(true)
		default:
			// JR cc, e
			c.jumpRelative(c.condition(y - 4))
		}
	case 1:
		if q == 0 {
			// LD rr, d16
			c.setRegisterPair(p, c.readOperand16())
		} else {
			// ADD HL, rr
			c.addHL(c.registerPair(p))
			c.tickCycle()
		}
	case 2:
		addr := c.indirectAddress(p)
		if q == 0 {
			c.writeByte(addr, c.A)
		} else {
			c.A = c.readByte(addr)
		}
	case 3:
		// INC rr / DEC rr
		if q == 0 {
			c.setRegisterPair(p, c.registerPair(p)+1)
		} else {
			c.setRegisterPair(p, c.registerPair(p)-1)
		}
		c.tickCycle()
	case 4:
		c.store(operand(y), c.increment(c.load(operand(y))))
	case 5:
		c.store(operand(y), c.decrement(c.load(operand(y))))
	case 6:
		// LD r, d8
		c.store(operand(y), c.readOperand())
	case 7:
		switch y {
		case 0, 1, 2, 3:
			c.rotateAccumulator(y)
		case 4:
			c.daa()
		case 5:
			c.complement()
		case 6:
			c.setCarryFlag()
		case 7:
			c.complementCarryFlag()
		}
	}
}

func (c *CPU) decodeBlock3(instr, y, z, p, q uint8) {
	switch z {
	case 0:
		switch y {
		case 0, 1, 2, 3:
			// RET cc
			c.tickCycle()
			if c.condition(y) {
				c.ret()
			}
		case 4:
			// LDH (a8), A
			c.writeByte(types.IOBase+uint16(c.readOperand()), c.A)
		case 5:
			// ADD SP, e
			c.SP = c.addSPSigned(c.readOperand())
			c.tickCycle()
			c.tickCycle()
		case 6:
			// LDH A, (a8)
			c.A = c.readByte(types.IOBase + uint16(c.readOperand()))
		case 7:
			// LD HL, SP+e
			c.HL.SetUint16(c.addSPSigned(c.readOperand()))
			c.tickCycle()
		}
	case 1:
		if q == 0 {
			// POP rr
			c.setStackPair(p, c.pop())
			return
		}
		switch p {
		case 0:
			c.ret()
		case 1:
			// RETI
			c.ret()
			c.IME = true
		case 2:
			// JP HL
			c.PC = c.HL.Uint16()
		case 3:
			// LD SP, HL
			c.SP = c.HL.Uint16()
			c.tickCycle()
		}
	case 2:
		switch y {
		case 0, 1, 2, 3:
			// JP cc, a16
			c.jumpAbsolute(c.condition(y))
		case 4:
			// LD (C), A
			c.writeByte(types.IOBase+uint16(c.C), c.A)
		case 5:
			// LD (a16), A
			c.writeByte(c.readOperand16(), c.A)
		case 6:
			// LD A, (C)
			c.A = c.readByte(types.IOBase + uint16(c.C))
		case 7:
			// LD A, (a16)
			c.A = c.readByte(c.readOperand16())
		}
	case 3:
		switch y {
		case 0:
			// JP a16
			c.jumpAbsolute(true)
		case 1:
			c.decodeCB(c.readInstruction())
		case 6:
			// DI
			c.IME = false
			c.imePending = false
		case 7:
			// EI
			if c.delayedEI {
				c.imePending = true
			} else {
				c.IME = true
			}
		default:
			c.illegal(instr)
		}
	case 4:
		if y < 4 {
			// CALL cc, a16
			c.call(c.condition(y))
		} else {
			c.illegal(instr)
		}
	case 5:
		if q == 0 {
			// PUSH rr
			c.tickCycle()
			c.push(c.stackPair(p))
		} else if p == 0 {
			// CALL a16
			c.call(true)
		} else {
			c.illegal(instr)
		}
	case 6:
		// ALU A, d8
		c.alu(y, c.readOperand())
	case 7:
		// RST n
		c.tickCycle()
		c.push(c.PC)
		c.PC = uint16(y) * 8
	}
}

// decodeCB executes the given CB prefixed opcode.
//
//	bits 6-7: 0 = rotate/shift, 1 = BIT, 2 = RES, 3 = SET
//	bits 3-5: operation or bit index
//	bits 0-2: operand
func (c *CPU) decodeCB(instr uint8) {
	o := operand(instr & 7)
	y := instr >> 3 & 7

	value := c.load(o)
	switch instr >> 6 {
	case 0:
		c.store(o, c.rotateShift(y, value))
	case 1:
		c.testBit(value, y)
	case 2:
		c.store(o, bits.Reset(value, y))
	case 3:
		c.store(o, bits.Set(value, y))
	}
}

// indirectAddress returns the address used by the accumulator loads
// and stores through a register pair, applying the increment or
// decrement of HL.
//
//	0 = (BC), 1 = (DE), 2 = (HL+), 3 = (HL-)
func (c *CPU) indirectAddress(p uint8) uint16 {
	switch p & 3 {
	case 0:
		return c.BC.Uint16()
	case 1:
		return c.DE.Uint16()
	case 2:
		hl := c.HL.Uint16()
		c.HL.SetUint16(hl + 1)
		return hl
	default:
		hl := c.HL.Uint16()
		c.HL.SetUint16(hl - 1)
		return hl
	}
}

// stop enters the stopped mode. The byte following STOP is skipped
// and the divider is reset.
func (c *CPU) stop() {
	c.PC++
	c.bus.Write(types.DIV, 0)
	c.mode = ModeStopped
}

// illegal handles one of the 11 unused opcodes. They are executed as
// a NOP.
func (c *CPU) illegal(instr uint8) {
	c.log.Debugf("illegal opcode 0x%02X at 0x%04X", instr, c.PC-1)
}
