// Package cpu provides an emulation of the Sharp LR35902, the
// processor of the Game Boy. The CPU is unaware of the rest of the
// machine, every memory access goes through the Bus it was created
// with, including the IF and IE interrupt registers.
package cpu

import (
	"io"

	"github.com/thelolagemann/lr35902/internal/interrupts"
	"github.com/thelolagemann/lr35902/internal/types"
	"github.com/thelolagemann/lr35902/pkg/log"
)

const (
	// ClockSpeed is the clock speed of the CPU.
	ClockSpeed = 4194304
)

// Bus is the interface that the CPU uses to access memory. The CPU
// treats every access as succeeding, resolving unmapped addresses is
// the responsibility of the implementation.
type Bus interface {
	Read(address uint16) uint8
	Write(address uint16, value uint8)
}

// Mode is the run state of the CPU.
type Mode uint8

const (
	// ModeRunning is the normal CPU mode, an instruction is
	// executed every step.
	ModeRunning Mode = iota
	// ModeHalted is entered by HALT. The CPU idles until an
	// interrupt is pending, regardless of IME.
	ModeHalted
	// ModeStopped is entered by STOP. The CPU idles until a
	// joypad interrupt is requested.
	ModeStopped
)

func (m Mode) String() string {
	switch m {
	case ModeRunning:
		return "running"
	case ModeHalted:
		return "halted"
	case ModeStopped:
		return "stopped"
	}
	return "unknown"
}

// CPU represents the Gameboy CPU. It is responsible for executing instructions.
type CPU struct {
	// PC is the program counter, it points to the next instruction to be executed.
	PC uint16
	// SP is the stack pointer, it points to the top of the stack.
	SP uint16
	// Registers contains the 8-bit registers, as well as the 16-bit register pairs.
	types.Registers

	// IME is the interrupt master enable. It is separate from the IE
	// register, which selects the individual interrupt sources.
	IME bool

	bus   Bus
	log   log.Logger
	trace io.Writer

	mode       Mode
	delayedEI  bool
	imePending bool

	cycles      uint64
	currentTick uint8
}

// New creates a new CPU instance with the given Bus, and resets it
// to its power on state.
func New(bus Bus, opts ...Opt) *CPU {
	c := &CPU{
		bus: bus,
		log: log.NewNullLogger(),
	}
	c.Registers.Pair()

	for _, opt := range opts {
		opt(c)
	}
	c.Reset()

	return c
}

// Reset reinitializes the CPU to the state the boot ROM leaves it in
// on a DMG. The cycle counter is not reset, as peripherals synchronise
// against it for the lifetime of the CPU.
func (c *CPU) Reset() {
	c.AF.SetUint16(0x01B0)
	c.BC.SetUint16(0x0013)
	c.DE.SetUint16(0x00D8)
	c.HL.SetUint16(0x014D)
	c.SP = 0xFFFE
	c.PC = 0x0100

	c.IME = false
	c.imePending = false
	c.mode = ModeRunning
}

// Step executes a single instruction, or idles for one M-cycle if the
// CPU is halted or stopped, then services any pending interrupt. It
// returns the number of T-cycles that passed.
func (c *CPU) Step() uint8 {
	return c.Execute() + c.ServiceInterrupts()
}

// Execute is the first half of Step: it executes a single instruction,
// or idles for one M-cycle if the CPU is halted or stopped. Callers
// that advance peripherals do so before ServiceInterrupts, so that an
// interrupt raised during the instruction is serviced before the next
// fetch.
func (c *CPU) Execute() uint8 {
	c.currentTick = 0

	switch c.mode {
	case ModeRunning:
		if c.trace != nil {
			c.traceInstruction()
		}

		// an EI executed during the previous step takes effect
		// once this instruction has completed
		enableIME := c.imePending
		c.decode(c.readInstruction())
		if enableIME && c.imePending {
			c.IME = true
			c.imePending = false
		}
	case ModeHalted:
		c.tickCycle()

		// the halt is released by a pending interrupt, IME only
		// decides whether it is also serviced
		if c.pendingInterrupts() != 0 {
			c.mode = ModeRunning
		}
	case ModeStopped:
		c.tickCycle()

		if c.bus.Read(types.IF)&interrupts.JoypadFlag != 0 {
			c.mode = ModeRunning
		}
	}

	c.cycles += uint64(c.currentTick)
	return c.currentTick
}

// ServiceInterrupts is the second half of Step: if IME is set and an
// enabled interrupt is requested, the highest priority one is
// dispatched. It returns the T-cycles spent, 0 or 20.
func (c *CPU) ServiceInterrupts() uint8 {
	c.currentTick = 0
	c.executeInterrupt()

	c.cycles += uint64(c.currentTick)
	return c.currentTick
}

// Cycles returns the number of T-cycles executed since the CPU
// was created.
func (c *CPU) Cycles() uint64 {
	return c.cycles
}

// Mode returns the current run state of the CPU.
func (c *CPU) Mode() Mode {
	return c.mode
}

// readInstruction reads the next instruction from memory.
func (c *CPU) readInstruction() uint8 {
	c.tickCycle()
	value := c.bus.Read(c.PC)
	c.PC++
	return value
}

// readOperand reads the next operand from memory. The same as
// readInstruction, but will allow future optimizations.
func (c *CPU) readOperand() uint8 {
	c.tickCycle()
	value := c.bus.Read(c.PC)
	c.PC++
	return value
}

// readOperand16 reads the next two operands from memory as a
// little-endian 16-bit value.
func (c *CPU) readOperand16() uint16 {
	low := c.readOperand()
	high := c.readOperand()
	return types.Join(high, low)
}

// readByte reads a byte from memory.
func (c *CPU) readByte(addr uint16) uint8 {
	c.tickCycle()
	return c.bus.Read(addr)
}

// writeByte writes the given value to the given address.
func (c *CPU) writeByte(addr uint16, val uint8) {
	c.tickCycle()
	c.bus.Write(addr, val)
}

// push pushes a 16 bit value onto the stack, high byte first.
func (c *CPU) push(value uint16) {
	c.SP--
	c.writeByte(c.SP, types.High(value))
	c.SP--
	c.writeByte(c.SP, types.Low(value))
}

// pop pops a 16 bit value off the stack, low byte first.
func (c *CPU) pop() uint16 {
	low := c.readByte(c.SP)
	c.SP++
	high := c.readByte(c.SP)
	c.SP++
	return types.Join(high, low)
}

// tickCycle accounts for a single M-cycle (4 T-cycles), spent on
// a bus access or an internal operation.
func (c *CPU) tickCycle() {
	c.currentTick += 4
}
