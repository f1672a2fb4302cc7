// Package joypad provides an implementation of the Game Boy
// joypad. The joypad is used to read the state of the buttons
// and the direction keys.
package joypad

import (
	"github.com/thelolagemann/lr35902/internal/interrupts"
	"github.com/thelolagemann/lr35902/internal/types"
	"github.com/thelolagemann/lr35902/pkg/bits"
)

// Button represents a physical button on the Game Boy.
type Button = uint8

const (
	// ButtonA is the A button.
	ButtonA Button = iota
	// ButtonB is the B button.
	ButtonB
	// ButtonSelect is the Select button.
	ButtonSelect
	// ButtonStart is the Start button.
	ButtonStart
	// ButtonRight is the Right button.
	ButtonRight
	// ButtonLeft is the Left button.
	ButtonLeft
	// ButtonUp is the Up button.
	ButtonUp
	// ButtonDown is the Down button.
	ButtonDown
)

// State represents the state of the joypad. Select either
// action or direction buttons by writing to the register,
// and then read out bits 0-3 to get the state of the buttons.
//
//	Bit 7 - Not used
//	Bit 6 - Not used
//	Bit 5 - P15 Select Button Keys      (0=Select)
//	Bit 4 - P14 Select Direction Keys   (0=Select)
//	Bit 3 - P13 Input Down  or Start    (0=Pressed) (Read Only)
//	Bit 2 - P12 Input Up    or Select   (0=Pressed) (Read Only)
//	Bit 1 - P11 Input Left  or Button B (0=Pressed) (Read Only)
//	Bit 0 - P10 Input Right or Button A (0=Pressed) (Read Only)
type State struct {
	// State is the current state of the joypad. The lower 4 bits
	// hold the action buttons, and the upper 4 bits the direction
	// buttons. A 1 in a bit indicates that the button is pressed.
	State uint8
	// selected holds the select bits (4 and 5) last written to P1.
	selected uint8

	irq *interrupts.Service
}

// New returns a new joypad state, with P1 mapped into regs.
func New(irq *interrupts.Service, regs *types.HardwareRegisters) *State {
	s := &State{
		irq:      irq,
		selected: 0x30,
	}
	regs.Register(types.P1, func(v uint8) {
		s.selected = v & 0x30
	}, s.read)

	return s
}

func (s *State) read() uint8 {
	var pressed uint8
	if s.selected&types.Bit4 == 0 {
		pressed |= s.State >> 4 & 0xF
	}
	if s.selected&types.Bit5 == 0 {
		pressed |= s.State & 0xF
	}

	return 0xC0 | s.selected | ^pressed&0xF
}

// Press presses a button. The joypad interrupt is requested when
// this pulls a selected input line low, that is when the button was
// not already held and its group is selected in P1.
func (s *State) Press(button Button) {
	if bits.Test(s.State, button) {
		return
	}
	s.State = bits.Set(s.State, button)
	if s.isSelected(button) {
		s.irq.Request(interrupts.JoypadFlag)
	}
}

// isSelected reports whether the group of button is selected, action
// buttons by bit 5 and direction buttons by bit 4.
func (s *State) isSelected(button Button) bool {
	if button >= ButtonRight {
		return s.selected&types.Bit4 == 0
	}
	return s.selected&types.Bit5 == 0
}

// Release releases a button.
func (s *State) Release(button Button) {
	s.State = bits.Reset(s.State, button)
}

// Reset releases every button and deselects both groups.
func (s *State) Reset() {
	s.State = 0
	s.selected = 0x30
}
