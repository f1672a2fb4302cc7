// Package ppu provides the pixel processing unit of the DMG. It steps
// through the scanline modes of the LCD, raises the VBlank and STAT
// interrupts and renders the background layer into a Frame.
package ppu

import (
	"github.com/thelolagemann/lr35902/internal/interrupts"
	"github.com/thelolagemann/lr35902/internal/ppu/lcd"
	"github.com/thelolagemann/lr35902/internal/types"
)

const (
	// ScreenWidth is the width of the screen in pixels.
	ScreenWidth = 160
	// ScreenHeight is the height of the screen in pixels.
	ScreenHeight = 144

	// ScanLines is the number of lines per frame, VBlank included.
	ScanLines = 154
	// FrameCycles is the duration of a frame in T-cycles.
	FrameCycles = ScanLines * lcd.LineCycles
)

// Frame holds the shade (0-3) of every pixel of the screen, after
// palette mapping. 0 is the lightest shade.
type Frame [ScreenHeight][ScreenWidth]uint8

// Renderer receives a complete frame at the start of every VBlank.
// The frame is only valid for the duration of the call.
type Renderer interface {
	Render(frame *Frame)
}

// RendererFunc adapts a function to the Renderer interface.
type RendererFunc func(frame *Frame)

// Render calls f(frame).
func (f RendererFunc) Render(frame *Frame) { f(frame) }

// PPU implements the Game Boy's (P)ixel (P)rocessing (U)nit.
//
// References:
//   - [Pan Docs](https://gbdev.io/pandocs/Graphics.html)
//   - [Hacktix GBEDG](https://hacktix.github.io/GBEDG/ppu/)
type PPU struct {
	*lcd.Controller
	*lcd.Status

	ly, lyc  uint8
	scy, scx uint8
	wy, wx   uint8
	bgp      uint8
	obp      [2]uint8

	// dot is the position within the current line, in T-cycles
	dot uint16
	// statLine is the STAT interrupt line, an interrupt is raised on
	// its rising edge only
	statLine bool

	vRAM [0x2000]uint8
	oam  [0xA0]uint8

	frame    Frame
	renderer Renderer

	irq *interrupts.Service
}

// New returns a new PPU, with its registers mapped into regs.
func New(irq *interrupts.Service, regs *types.HardwareRegisters) *PPU {
	p := &PPU{
		Controller: lcd.NewController(),
		Status:     lcd.NewStatus(),
		irq:        irq,
	}
	p.Reset()

	regs.Register(types.LCDC, func(v uint8) {
		wasEnabled := p.Enabled
		p.Controller.Write(v)
		switch {
		case wasEnabled && !p.Enabled:
			// LY is held at 0 in HBlank while the LCD is off
			p.ly, p.dot = 0, 0
			p.Mode = lcd.HBlank
			p.statLine = false
		case !wasEnabled && p.Enabled:
			p.ly, p.dot = 0, 0
			p.setMode(lcd.OAM)
		}
	}, p.Controller.Read)
	regs.Register(types.STAT, func(v uint8) {
		p.Status.Write(v)
		p.updateStatLine()
	}, p.Status.Read)
	regs.Register(types.SCY, func(v uint8) { p.scy = v }, func() uint8 { return p.scy })
	regs.Register(types.SCX, func(v uint8) { p.scx = v }, func() uint8 { return p.scx })
	regs.Register(types.LY, nil, func() uint8 { return p.ly })
	regs.Register(types.LYC, func(v uint8) {
		p.lyc = v
		p.compareLY()
	}, func() uint8 { return p.lyc })
	regs.Register(types.BGP, func(v uint8) { p.bgp = v }, func() uint8 { return p.bgp })
	regs.Register(types.OBP0, func(v uint8) { p.obp[0] = v }, func() uint8 { return p.obp[0] })
	regs.Register(types.OBP1, func(v uint8) { p.obp[1] = v }, func() uint8 { return p.obp[1] })
	regs.Register(types.WY, func(v uint8) { p.wy = v }, func() uint8 { return p.wy })
	regs.Register(types.WX, func(v uint8) { p.wx = v }, func() uint8 { return p.wx })

	return p
}

// Reset returns the PPU to the state the boot ROM leaves it in.
// VRAM and OAM are cleared.
func (p *PPU) Reset() {
	p.Controller.Write(0x91)
	p.Status.Write(0)
	p.ly, p.lyc, p.dot = 0, 0, 0
	p.scy, p.scx, p.wy, p.wx = 0, 0, 0, 0
	p.bgp = 0xFC
	p.obp = [2]uint8{0xFF, 0xFF}
	p.statLine = false
	p.vRAM = [0x2000]uint8{}
	p.oam = [0xA0]uint8{}
	p.frame = Frame{}
	p.Mode = lcd.OAM
	p.compareLY()
}

// SetRenderer attaches the Renderer that receives every frame, a nil
// Renderer discards them.
func (p *PPU) SetRenderer(r Renderer) {
	p.renderer = r
}

// LY returns the current scanline.
func (p *PPU) LY() uint8 {
	return p.ly
}

// Frame returns the frame being drawn. Lines below LY hold the
// previous frame.
func (p *PPU) Frame() *Frame {
	return &p.frame
}

// Read reads from VRAM (0x8000-0x9FFF) or OAM (0xFE00-0xFE9F).
func (p *PPU) Read(address uint16) uint8 {
	switch {
	case address >= 0x8000 && address < 0xA000:
		return p.vRAM[address-0x8000]
	case address >= 0xFE00 && address < 0xFEA0:
		return p.oam[address-0xFE00]
	}
	return 0xFF
}

// Write writes to VRAM (0x8000-0x9FFF) or OAM (0xFE00-0xFE9F).
func (p *PPU) Write(address uint16, value uint8) {
	switch {
	case address >= 0x8000 && address < 0xA000:
		p.vRAM[address-0x8000] = value
	case address >= 0xFE00 && address < 0xFEA0:
		p.oam[address-0xFE00] = value
	}
}

// Tick advances the PPU by the given number of T-cycles.
func (p *PPU) Tick(cycles uint8) {
	if !p.Enabled {
		return
	}
	for i := uint8(0); i < cycles; i++ {
		p.tick()
	}
}

func (p *PPU) tick() {
	p.dot++

	if p.ly < ScreenHeight {
		switch p.dot {
		case lcd.OAMCycles:
			p.setMode(lcd.VRAM)
		case lcd.OAMCycles + lcd.VRAMCycles:
			p.renderScanline()
			p.setMode(lcd.HBlank)
		}
	}

	if p.dot < lcd.LineCycles {
		return
	}

	// next line
	p.dot = 0
	p.ly++
	switch {
	case p.ly == ScanLines:
		p.ly = 0
		p.compareLY()
		p.setMode(lcd.OAM)
	case p.ly == ScreenHeight:
		p.compareLY()
		p.setMode(lcd.VBlank)
		p.irq.Request(interrupts.VBlankFlag)
		if p.renderer != nil {
			p.renderer.Render(&p.frame)
		}
	case p.ly > ScreenHeight:
		p.compareLY()
	default:
		p.compareLY()
		p.setMode(lcd.OAM)
	}
}

func (p *PPU) setMode(mode lcd.Mode) {
	p.Mode = mode
	p.updateStatLine()
}

func (p *PPU) compareLY() {
	p.Coincidence = p.ly == p.lyc
	p.updateStatLine()
}

// updateStatLine requests the STAT interrupt on a rising edge of
// the STAT interrupt line.
func (p *PPU) updateStatLine() {
	line := p.Enabled && p.Status.Interrupt()
	if line && !p.statLine {
		p.irq.Request(interrupts.LCDFlag)
	}
	p.statLine = line
}

// renderScanline renders line LY of the background into the frame.
func (p *PPU) renderScanline() {
	line := &p.frame[p.ly]
	if !p.BackgroundEnabled {
		*line = [ScreenWidth]uint8{}
		return
	}

	y := p.ly + p.scy
	tileMap := p.BackgroundTileMapAddress - 0x8000 + uint16(y/8)*32
	for x := 0; x < ScreenWidth; x++ {
		px := uint8(x) + p.scx
		addr := p.tileAddress(p.vRAM[tileMap+uint16(px/8)]) + uint16(y%8)*2
		low, high := p.vRAM[addr], p.vRAM[addr+1]

		bit := 7 - px%8
		colour := (high>>bit&1)<<1 | low>>bit&1
		line[x] = p.bgp >> (colour * 2) & 0x03
	}
}

// tileAddress returns the offset into VRAM of the given tile. In the
// signed addressing mode, tile 0 is at 0x9000.
func (p *PPU) tileAddress(tile uint8) uint16 {
	if p.UsingSignedTileData() {
		return uint16(0x1000 + int(int8(tile))*16)
	}
	return uint16(tile) * 16
}
