// Package timer provides an implementation of the Game Boy
// timer. It is used to generate interrupts at a specific
// frequency. The frequency can be configured using the
// types.TAC register.
package timer

import (
	"github.com/thelolagemann/lr35902/internal/interrupts"
	"github.com/thelolagemann/lr35902/internal/types"
)

// bits maps the clock select of TAC to the bit of the divider
// whose falling edge increments TIMA.
//
//	00 = 4096Hz   (bit 9)
//	01 = 262144Hz (bit 3)
//	10 = 65536Hz  (bit 5)
//	11 = 16384Hz  (bit 7)
var bits = [4]uint16{1 << 9, 1 << 3, 1 << 5, 1 << 7}

// Controller is a timer controller. It is used to generate
// interrupts at a specific frequency. The frequency can be
// configured using the types.TAC register.
type Controller struct {
	div        uint16
	currentBit uint16

	tima uint8
	tma  uint8
	tac  uint8

	Enabled bool
	// reloading is set for the M-cycle after TIMA overflows, TIMA
	// reads 0 until it is reloaded with TMA.
	reloading bool

	irq *interrupts.Service
}

// NewController returns a new timer controller, with its registers
// mapped into regs.
func NewController(irq *interrupts.Service, regs *types.HardwareRegisters) *Controller {
	c := &Controller{
		irq:        irq,
		currentBit: bits[0],
	}

	regs.Register(types.DIV, func(v uint8) {
		// any write resets the whole divider
		c.setDiv(0)
	}, func() uint8 {
		return uint8(c.div >> 8)
	})
	regs.Register(types.TIMA, func(v uint8) {
		// a write during the reload cycle cancels the reload
		c.tima = v
		c.reloading = false
	}, func() uint8 {
		return c.tima
	})
	regs.Register(types.TMA, func(v uint8) {
		c.tma = v
	}, func() uint8 {
		return c.tma
	})
	regs.Register(types.TAC, func(v uint8) {
		// changing the clock select or disabling the timer may
		// produce a falling edge on its own
		old := c.signal()
		c.tac = v & 0x07
		c.currentBit = bits[v&0b11]
		c.Enabled = v&0x04 == 0x04
		if old && !c.signal() {
			c.increment()
		}
	}, func() uint8 {
		return c.tac | 0b11111000
	})

	return c
}

// Tick advances the timer by the given number of T-cycles, which
// is expected to be a multiple of 4.
func (c *Controller) Tick(cycles uint8) {
	for i := uint8(0); i < cycles; i += 4 {
		c.TickM()
	}
}

// TickM ticks the timer controller by 1 M-Cycle (4 T-Cycles).
func (c *Controller) TickM() {
	if c.reloading {
		c.reloading = false
		c.tima = c.tma
		c.irq.Request(interrupts.TimerFlag)
	}
	c.setDiv(c.div + 4)
}

// Div returns the full 16-bit system divider.
func (c *Controller) Div() uint16 {
	return c.div
}

// Reset returns the timer to its power on state.
func (c *Controller) Reset() {
	c.div = 0
	c.tima, c.tma, c.tac = 0, 0, 0
	c.currentBit = bits[0]
	c.Enabled = false
	c.reloading = false
}

// setDiv updates the divider, incrementing TIMA on a falling
// edge of the selected bit.
func (c *Controller) setDiv(v uint16) {
	old := c.signal()
	c.div = v
	if old && !c.signal() {
		c.increment()
	}
}

// signal returns the input of the TIMA falling edge detector.
func (c *Controller) signal() bool {
	return c.Enabled && c.div&c.currentBit != 0
}

func (c *Controller) increment() {
	c.tima++
	if c.tima == 0 {
		c.reloading = true
	}
}
