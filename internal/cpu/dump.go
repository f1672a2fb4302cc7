package cpu

import (
	"fmt"
	"io"
	"strings"
)

// State is a snapshot of the CPU, as used by debuggers and the
// state dump.
type State struct {
	A, F, B, C, D, E, H, L uint8

	SP, PC uint16
	IME    bool
	Mode   Mode
	Cycles uint64
}

// AF returns the AF register pair of the snapshot.
func (s State) AF() uint16 { return uint16(s.A)<<8 | uint16(s.F) }

// BC returns the BC register pair of the snapshot.
func (s State) BC() uint16 { return uint16(s.B)<<8 | uint16(s.C) }

// DE returns the DE register pair of the snapshot.
func (s State) DE() uint16 { return uint16(s.D)<<8 | uint16(s.E) }

// HL returns the HL register pair of the snapshot.
func (s State) HL() uint16 { return uint16(s.H)<<8 | uint16(s.L) }

// State returns a snapshot of the registers and run state.
func (c *CPU) State() State {
	return State{
		A: c.A, F: c.F, B: c.B, C: c.C, D: c.D, E: c.E, H: c.H, L: c.L,
		SP:     c.SP,
		PC:     c.PC,
		IME:    c.IME,
		Mode:   c.mode,
		Cycles: c.cycles,
	}
}

// Dump writes a human readable form of the CPU state to w. It holds the
// register pairs, the flags, the run state and the instruction at PC,
// followed by the raw bytes of that instruction.
func (c *CPU) Dump(w io.Writer) error {
	s := c.State()
	name, length := c.Disassemble(s.PC)

	raw := make([]string, length)
	for i := range raw {
		raw[i] = fmt.Sprintf("%02x", c.bus.Read(s.PC+uint16(i)))
	}

	b := &strings.Builder{}
	fmt.Fprintf(b, "(AF/BC/DE/HL/SP/PC): %04x %04x %04x %04x %04x %04x\n",
		s.AF(), s.BC(), s.DE(), s.HL(), s.SP, s.PC)
	fmt.Fprintf(b, "flags: %s  IME: %t  mode: %s  cycles: %d\n",
		flagString(s.F), s.IME, s.Mode, s.Cycles)
	fmt.Fprintf(b, "%-20s %s\n", name, strings.Join(raw, " "))
	b.WriteString(strings.Repeat("-", 50) + "\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// flagString renders F as ZNHC, with a dash for every reset flag.
func flagString(f uint8) string {
	out := []byte("----")
	for i, flag := range []Flag{FlagZero, FlagSubtract, FlagHalfCarry, FlagCarry} {
		if f&flag != 0 {
			out[i] = "ZNHC"[i]
		}
	}
	return string(out)
}

// traceInstruction writes the instruction at PC and the registers
// to the trace writer.
func (c *CPU) traceInstruction() {
	name, _ := c.Disassemble(c.PC)
	fmt.Fprintf(c.trace, "%04X  %-20s A:%02X F:%s BC:%04X DE:%04X HL:%04X SP:%04X\n",
		c.PC, name, c.A, flagString(c.F), c.BC.Uint16(), c.DE.Uint16(), c.HL.Uint16(), c.SP)
}
