package types

// Register represents a GB Register which is used to hold an 8-bit value.
// The CPU has 8 registers: A, B, C, D, E, H, L, and F. The F register is
// special in that it is used to hold the flags, and only its upper 4 bits
// are ever set.
type Register = uint8

// RegisterPair represents a pair of GB Registers which is used to hold a 16-bit
// value. The CPU has 4 register pairs: AF, BC, DE, and HL. Each half stays
// addressable on its own, writing one half never disturbs the other.
type RegisterPair struct {
	High *Register
	Low  *Register
}

// Uint16 returns the value of the RegisterPair as an uint16.
func (r *RegisterPair) Uint16() uint16 {
	return uint16(*r.High)<<8 | uint16(*r.Low)
}

// SetUint16 sets the value of the RegisterPair to the given value.
func (r *RegisterPair) SetUint16(value uint16) {
	*r.High = uint8(value >> 8)
	*r.Low = uint8(value)
}

// Registers represents the GB CPU registers.
type Registers struct {
	A Register
	B Register
	C Register
	D Register
	E Register
	F Register
	H Register
	L Register

	BC *RegisterPair
	DE *RegisterPair
	HL *RegisterPair
	AF *RegisterPair
}

// Pair wires the register pairs of r to its own 8-bit registers. It must be
// called once r has its final address, as the pairs hold pointers into r.
func (r *Registers) Pair() {
	r.BC = &RegisterPair{&r.B, &r.C}
	r.DE = &RegisterPair{&r.D, &r.E}
	r.HL = &RegisterPair{&r.H, &r.L}
	r.AF = &RegisterPair{&r.A, &r.F}
}

// High returns the upper 8 bits of a 16-bit register such as SP or PC.
func High(v uint16) uint8 {
	return uint8(v >> 8)
}

// Low returns the lower 8 bits of a 16-bit register such as SP or PC.
func Low(v uint16) uint8 {
	return uint8(v)
}

// Join creates a 16-bit value from its high and low halves.
func Join(high, low uint8) uint16 {
	return uint16(high)<<8 | uint16(low)
}
