package types

// Peripheral is a device that shares the clock with the CPU, such as
// the PPU, the timer or the serial port. After every instruction it is
// advanced by the number of T-cycles that instruction took.
type Peripheral interface {
	Tick(cycles uint8)
}

// Resettable is an interface that allows an object to be reset.
type Resettable interface {
	Reset() // Reset the state of the object
}
