// Package gameboy provides an emulation of a Nintendo Game Boy (DMG).
//
// A GameBoy wires the CPU to the memory bus and the peripherals that
// share it, and drives them either one instruction at a time with Step,
// or in real time with Run.
package gameboy

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/thelolagemann/lr35902/internal/cartridge"
	"github.com/thelolagemann/lr35902/internal/cpu"
	"github.com/thelolagemann/lr35902/internal/interrupts"
	"github.com/thelolagemann/lr35902/internal/joypad"
	"github.com/thelolagemann/lr35902/internal/mmu"
	"github.com/thelolagemann/lr35902/internal/ppu"
	"github.com/thelolagemann/lr35902/internal/serial"
	"github.com/thelolagemann/lr35902/internal/timer"
	"github.com/thelolagemann/lr35902/internal/types"
	"github.com/thelolagemann/lr35902/pkg/log"
	"github.com/thelolagemann/lr35902/pkg/utils"
)

const (
	// ClockSpeed is the clock speed of the Game Boy.
	ClockSpeed = cpu.ClockSpeed // 4.194304 MHz
	// CycleDuration is the real time taken by a single clock cycle,
	// rounded down to the nanosecond.
	CycleDuration = time.Second / ClockSpeed
	// CyclesPerFrame is the number of clock cycles per frame.
	CyclesPerFrame = ppu.FrameCycles

	// pacingCycles is how many cycles Run executes between comparing
	// emulated time against the wall clock, roughly a millisecond.
	pacingCycles = 4096
)

// GameBoy represents a Game Boy. It contains all the components of the Game Boy.
// It is the main entry point for the emulator.
//
// The components are owned by whichever goroutine is stepping the
// machine. Other goroutines should only use the methods of GameBoy,
// which are synchronised with the stepping loop.
type GameBoy struct {
	CPU        *cpu.CPU
	MMU        *mmu.MMU
	PPU        *ppu.PPU
	Joypad     *joypad.State
	Interrupts *interrupts.Service
	Timer      *timer.Controller
	Serial     *serial.Controller

	log.Logger

	mu          sync.Mutex
	speed       float64
	peripherals []types.Peripheral
	components  []types.Resettable
}

// New returns a new GameBoy without a cartridge inserted, so reads
// from the ROM area return 0xFF until one is loaded.
func New(opts ...Opt) *GameBoy {
	regs := &types.HardwareRegisters{}
	irq := interrupts.NewService()
	l := log.NewNullLogger()

	video := ppu.New(irq, regs)
	memBus := mmu.NewMMU(irq, regs, video, l)

	g := &GameBoy{
		CPU:        cpu.New(memBus, cpu.WithLogger(l)),
		MMU:        memBus,
		PPU:        video,
		Joypad:     joypad.New(irq, regs),
		Interrupts: irq,
		Timer:      timer.NewController(irq, regs),
		Serial:     serial.NewController(irq, regs),

		Logger: l,
		speed:  1,
	}

	g.peripherals = []types.Peripheral{g.PPU, g.Timer, g.Serial}
	g.components = []types.Resettable{
		g.Interrupts, g.MMU, g.CPU, g.PPU, g.Timer, g.Serial, g.Joypad,
	}

	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Step executes n instructions and returns the number of cycles
// they took. After every instruction the PPU, timer and serial port
// are advanced by the cycles that instruction consumed, and only then
// are interrupts serviced, so a request raised by a peripheral during
// an instruction is dispatched before the next one.
func (g *GameBoy) Step(n int) uint64 {
	var cycles uint64
	for i := 0; i < n; i++ {
		g.mu.Lock()
		cycles += uint64(g.step())
		g.mu.Unlock()
	}
	return cycles
}

func (g *GameBoy) step() uint8 {
	cycles := g.CPU.Execute()
	g.tick(cycles)

	if dispatch := g.CPU.ServiceInterrupts(); dispatch > 0 {
		g.tick(dispatch)
		cycles += dispatch
	}
	return cycles
}

func (g *GameBoy) tick(cycles uint8) {
	for _, p := range g.peripherals {
		p.Tick(cycles)
	}
}

// Run steps the GameBoy until ctx is cancelled, keeping emulated time
// in line with real time at the configured speed. Whenever the
// emulation gets ahead of the wall clock it sleeps for the difference,
// when it falls behind it simply carries on. Run returns ctx.Err().
func (g *GameBoy) Run(ctx context.Context) error {
	g.Infof("starting emulation at %.2fx speed", g.speed)

	var (
		start      = time.Now()
		cycles     uint64
		checkpoint uint64
	)
	for {
		cycles += g.Step(1)
		if cycles-checkpoint < pacingCycles {
			continue
		}
		checkpoint = cycles

		if err := ctx.Err(); err != nil {
			g.Infof("stopping emulation after %d cycles", cycles)
			return err
		}
		if g.speed <= 0 {
			continue
		}

		ahead := g.emulatedTime(cycles) - time.Since(start)
		if ahead <= 0 {
			continue
		}

		t := time.NewTimer(ahead)
		select {
		case <-ctx.Done():
			t.Stop()
			g.Infof("stopping emulation after %d cycles", cycles)
			return ctx.Err()
		case <-t.C:
		}
	}
}

// emulatedTime returns how long cycles take on hardware at the
// configured speed. CycleDuration is truncated, so this is computed
// from the clock speed directly.
func (g *GameBoy) emulatedTime(cycles uint64) time.Duration {
	return time.Duration(float64(cycles) * float64(time.Second) / (ClockSpeed * g.speed))
}

// RunConcurrently starts Run on a new goroutine. The returned channel
// receives the error Run returned, and is then closed.
func (g *GameBoy) RunConcurrently(ctx context.Context) <-chan error {
	errs := make(chan error, 1)
	go func() {
		defer close(errs)
		errs <- g.Run(ctx)
	}()
	return errs
}

// Snapshot returns the current state of the CPU. It is safe to call
// while the GameBoy is running on another goroutine.
func (g *GameBoy) Snapshot() cpu.State {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.CPU.State()
}

// Reset returns every component to its power on state, leaving the
// inserted cartridge in place.
func (g *GameBoy) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.reset()
	g.Infof("reset")
}

func (g *GameBoy) reset() {
	for _, c := range g.components {
		c.Reset()
	}
}

// LoadCartridge reads a ROM image from r, inserts it and resets the
// GameBoy. If the image cannot be read or is not a supported cartridge,
// an error is returned and the GameBoy is left as it was.
func (g *GameBoy) LoadCartridge(r io.Reader) error {
	rom, err := io.ReadAll(r)
	if err != nil {
		return errors.Wrap(err, "reading cartridge")
	}
	return errors.Wrap(g.load(rom), "loading cartridge")
}

// LoadCartridgeFile loads the ROM at path, which may also be a gzip,
// zip or 7z archive holding the ROM. See LoadCartridge.
func (g *GameBoy) LoadCartridgeFile(path string) error {
	rom, err := utils.LoadFile(path)
	if err != nil {
		return errors.Wrapf(err, "reading cartridge %s", path)
	}
	return errors.Wrapf(g.load(rom), "loading cartridge %s", path)
}

func (g *GameBoy) load(rom []byte) error {
	cart, err := cartridge.New(rom)
	if err != nil {
		return err
	}

	header := cart.Header()
	g.Infof("loaded %s | fingerprint %016x", header.String(), cart.Fingerprint())
	if header.GameboyColor() {
		g.Infof("%q targets the Game Boy Color, running it as a DMG", header.Title)
	}
	if !header.ChecksumValid {
		g.Errorf("header checksum mismatch for %q: header says 0x%02X", header.Title, header.HeaderChecksum)
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	g.MMU.Cart = cart
	g.reset()

	return nil
}

// Cartridge returns the inserted cartridge, or nil.
func (g *GameBoy) Cartridge() cartridge.Cartridge {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.MMU.Cart
}

// SetRenderer attaches r to the PPU, replacing the current renderer.
// A nil renderer detaches it.
func (g *GameBoy) SetRenderer(r ppu.Renderer) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.PPU.SetRenderer(r)
}

// Press presses the given button.
func (g *GameBoy) Press(button joypad.Button) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.Joypad.Press(button)
}

// Release releases the given button.
func (g *GameBoy) Release(button joypad.Button) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.Joypad.Release(button)
}

// Dump writes the CPU state to w.
func (g *GameBoy) Dump(w io.Writer) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.CPU.Dump(w)
}
