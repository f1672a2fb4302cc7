package cpu

import (
	"io"

	"github.com/thelolagemann/lr35902/pkg/log"
)

// Opt is a function that modifies a CPU instance.
type Opt func(c *CPU)

// WithLogger sets the logger used to report illegal opcodes
// and serviced interrupts.
func WithLogger(l log.Logger) Opt {
	return func(c *CPU) {
		c.log = l
	}
}

// WithDelayedEI makes EI take effect after the instruction that
// follows it, as it does on hardware. Without it, EI sets IME
// immediately.
func WithDelayedEI() Opt {
	return func(c *CPU) {
		c.delayedEI = true
	}
}

// WithTrace writes a line per executed instruction to w, holding
// the disassembly and the registers before execution.
func WithTrace(w io.Writer) Opt {
	return func(c *CPU) {
		c.trace = w
	}
}
