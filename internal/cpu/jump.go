package cpu

// jumpRelative reads a signed offset and adds it to PC when
// condition holds.
//
//	JR e
//	JR cc, e
func (c *CPU) jumpRelative(condition bool) {
	offset := int8(c.readOperand())
	if condition {
		c.PC = uint16(int32(c.PC) + int32(offset))
		c.tickCycle()
	}
}

// jumpAbsolute reads an address and jumps to it when condition holds.
// The operand is always read.
//
//	JP a16
//	JP cc, a16
func (c *CPU) jumpAbsolute(condition bool) {
	addr := c.readOperand16()
	if condition {
		c.PC = addr
		c.tickCycle()
	}
}

// call reads an address, and when condition holds pushes PC onto the
// stack and jumps to it.
//
//	CALL a16
//	CALL cc, a16
func (c *CPU) call(condition bool) {
	addr := c.readOperand16()
	if condition {
		c.tickCycle()
		c.push(c.PC)
		c.PC = addr
	}
}

// ret pops an address off the stack and jumps to it.
//
//	RET
func (c *CPU) ret() {
	c.PC = c.pop()
	c.tickCycle()
}
