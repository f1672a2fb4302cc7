// Package serial provides the serial port of the Game Boy. No link
// partner is emulated: every transfer receives 0xFF, as it would with
// no cable attached, and outgoing bytes can be captured by a sink.
package serial

import (
	"io"

	"github.com/thelolagemann/lr35902/internal/interrupts"
	"github.com/thelolagemann/lr35902/internal/types"
)

const (
	ticksPerBit = 512
	// TransferCycles is the duration of a transfer with the
	// internal clock, in T-cycles.
	TransferCycles = ticksPerBit * 8
)

// Controller is the serial controller. It is responsible for sending
// data out of types.SB and triggering serial interrupts.
type Controller struct {
	data            uint8
	InternalClock   bool // if true, this controller is the master.
	TransferRequest bool // if true, a transfer has been requested.

	// remaining holds the cycles until the current transfer completes.
	remaining int

	sink io.Writer
	irq  *interrupts.Service
}

// NewController creates a new Controller, with SB and SC mapped
// into regs.
func NewController(irq *interrupts.Service, regs *types.HardwareRegisters) *Controller {
	c := &Controller{irq: irq}

	regs.Register(types.SB, func(v uint8) {
		c.data = v
	}, func() uint8 {
		return c.data
	})
	regs.Register(types.SC, func(v uint8) {
		c.InternalClock = v&types.Bit0 == types.Bit0
		c.TransferRequest = v&types.Bit7 == types.Bit7
		// without a link partner, only the master ever shifts
		if c.TransferRequest && c.InternalClock {
			c.remaining = TransferCycles
		}
	}, func() uint8 {
		var v uint8 = 0x7E // bits 1-6 are always set
		if c.TransferRequest {
			v |= types.Bit7
		}
		if c.InternalClock {
			v |= types.Bit0
		}
		return v
	})

	return c
}

// Attach sets the writer that receives every byte sent, a nil
// writer discards them.
func (c *Controller) Attach(sink io.Writer) {
	c.sink = sink
}

// Tick advances the serial port by the given number of T-cycles.
func (c *Controller) Tick(cycles uint8) {
	if !c.TransferRequest || !c.InternalClock {
		return
	}

	c.remaining -= int(cycles)
	if c.remaining > 0 {
		return
	}

	if c.sink != nil {
		// the sink is best effort, a failing writer must not stall
		// the program
		_, _ = c.sink.Write([]byte{c.data})
	}
	c.data = 0xFF
	c.TransferRequest = false
	c.irq.Request(interrupts.SerialFlag)
}

// Reset cancels any transfer in progress.
func (c *Controller) Reset() {
	c.data = 0
	c.InternalClock = false
	c.TransferRequest = false
	c.remaining = 0
}
