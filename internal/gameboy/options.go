package gameboy

import (
	"io"

	"github.com/thelolagemann/lr35902/internal/cpu"
	"github.com/thelolagemann/lr35902/internal/ppu"
	"github.com/thelolagemann/lr35902/pkg/log"
)

// Opt is a function that modifies a GameBoy
// instance.
type Opt func(gb *GameBoy)

// WithLogger sets the logger of the GameBoy and every
// component that logs.
func WithLogger(l log.Logger) Opt {
	return func(gb *GameBoy) {
		gb.Logger = l
		gb.MMU.Log = l
		cpu.WithLogger(l)(gb.CPU)
	}
}

// WithRenderer attaches r to the PPU, it is handed a frame
// every time the PPU enters VBlank.
func WithRenderer(r ppu.Renderer) Opt {
	return func(gb *GameBoy) {
		gb.PPU.SetRenderer(r)
	}
}

// Speed sets the speed multiplier used by Run. 1 runs in real
// time, 2 twice as fast. A speed of 0 or less disables pacing.
func Speed(speed float64) Opt {
	return func(gb *GameBoy) {
		gb.speed = speed
	}
}

// SerialOutput writes every byte sent over the serial port to w.
func SerialOutput(w io.Writer) Opt {
	return func(gb *GameBoy) {
		gb.Serial.Attach(w)
	}
}

// DelayedEI makes EI take effect one instruction late.
func DelayedEI() Opt {
	return func(gb *GameBoy) {
		cpu.WithDelayedEI()(gb.CPU)
	}
}

// Trace writes a line to w for every instruction executed.
func Trace(w io.Writer) Opt {
	return func(gb *GameBoy) {
		cpu.WithTrace(w)(gb.CPU)
	}
}
