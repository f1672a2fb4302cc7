package cpu

// operand selects the target of an 8-bit operation, using the
// encoding of the register field of an opcode. All operands but
// operandHL are registers, operandHL reaches memory through the
// address held in HL, at the cost of an extra bus access.
type operand uint8

const (
	operandB operand = iota
	operandC
	operandD
	operandE
	operandH
	operandL
	operandHL
	operandA
)

var operandNames = [8]string{"B", "C", "D", "E", "H", "L", "(HL)", "A"}

func (o operand) String() string {
	return operandNames[o&7]
}

// load returns the value of the given operand.
func (c *CPU) load(o operand) uint8 {
	switch o & 7 {
	case operandB:
		return c.B
	case operandC:
		return c.C
	case operandD:
		return c.D
	case operandE:
		return c.E
	case operandH:
		return c.H
	case operandL:
		return c.L
	case operandHL:
		return c.readByte(c.HL.Uint16())
	default:
		return c.A
	}
}

// store writes value to the given operand.
func (c *CPU) store(o operand, value uint8) {
	switch o & 7 {
	case operandB:
		c.B = value
	case operandC:
		c.C = value
	case operandD:
		c.D = value
	case operandE:
		c.E = value
	case operandH:
		c.H = value
	case operandL:
		c.L = value
	case operandHL:
		c.writeByte(c.HL.Uint16(), value)
	default:
		c.A = value
	}
}

// registerPair returns the value of the register pair encoded in
// bits 4-5 of an opcode, where 3 selects SP.
//
//	0 = BC, 1 = DE, 2 = HL, 3 = SP
func (c *CPU) registerPair(p uint8) uint16 {
	switch p & 0x3 {
	case 0:
		return c.BC.Uint16()
	case 1:
		return c.DE.Uint16()
	case 2:
		return c.HL.Uint16()
	default:
		return c.SP
	}
}

// setRegisterPair sets the register pair encoded in bits 4-5 of an
// opcode, where 3 selects SP.
func (c *CPU) setRegisterPair(p uint8, value uint16) {
	switch p & 0x3 {
	case 0:
		c.BC.SetUint16(value)
	case 1:
		c.DE.SetUint16(value)
	case 2:
		c.HL.SetUint16(value)
	default:
		c.SP = value
	}
}

// stackPair returns the value of the register pair encoded in bits
// 4-5 of a PUSH or POP, where 3 selects AF.
func (c *CPU) stackPair(p uint8) uint16 {
	if p&0x3 == 3 {
		return c.AF.Uint16()
	}
	return c.registerPair(p)
}

// setStackPair sets the register pair encoded in bits 4-5 of a
// PUSH or POP, where 3 selects AF. The lower nibble of F can never
// be set.
func (c *CPU) setStackPair(p uint8, value uint16) {
	if p&0x3 == 3 {
		c.AF.SetUint16(value & 0xFFF0)
		return
	}
	c.setRegisterPair(p, value)
}
