package cpu

import (
	"github.com/thelolagemann/lr35902/internal/interrupts"
	"github.com/thelolagemann/lr35902/internal/types"
)

// pendingInterrupts returns the interrupts that are both requested
// and enabled. Reading IF and IE costs no cycles.
func (c *CPU) pendingInterrupts() uint8 {
	return c.bus.Read(types.IE) & c.bus.Read(types.IF) & interrupts.Mask
}

// executeInterrupt services the highest priority pending interrupt,
// if IME is set. Its IF bit is cleared, IME is reset and PC is pushed
// before jumping to the vector, which takes 5 M-cycles.
func (c *CPU) executeInterrupt() {
	if !c.IME || c.mode == ModeStopped {
		return
	}

	requested := c.bus.Read(types.IF)
	flag, vector, ok := interrupts.Next(c.bus.Read(types.IE) & requested)
	if !ok {
		return
	}

	c.bus.Write(types.IF, requested&^flag)
	c.IME = false
	c.imePending = false
	c.mode = ModeRunning

	c.tickCycle()
	c.tickCycle()
	c.push(c.PC)
	c.tickCycle()
	c.PC = vector

	c.log.Debugf("servicing %s interrupt, jumping to 0x%04X", interrupts.Name(flag), vector)
}
