package ppu

import (
	"testing"

	"github.com/thelolagemann/lr35902/internal/interrupts"
	"github.com/thelolagemann/lr35902/internal/ppu/lcd"
	"github.com/thelolagemann/lr35902/internal/types"
)

func newTestPPU() (*PPU, *interrupts.Service, *types.HardwareRegisters) {
	irq := interrupts.NewService()
	regs := &types.HardwareRegisters{}
	return New(irq, regs), irq, regs
}

// tickN advances p by n T-cycles, in M-cycle steps.
func tickN(p *PPU, n int) {
	for i := 0; i < n; i += 4 {
		p.Tick(4)
	}
}

func TestPPU_Modes(t *testing.T) {
	p, _, regs := newTestPPU()

	if p.Mode != lcd.OAM {
		t.Errorf("expected to start in OAM mode, got %d", p.Mode)
	}
	tickN(p, lcd.OAMCycles)
	if p.Mode != lcd.VRAM {
		t.Errorf("expected VRAM mode after 80 cycles, got %d", p.Mode)
	}
	tickN(p, lcd.VRAMCycles)
	if p.Mode != lcd.HBlank {
		t.Errorf("expected HBlank mode after 252 cycles, got %d", p.Mode)
	}
	if regs.Read(types.STAT)&0x03 != 0 {
		t.Errorf("expected STAT to report mode 0, got 0x%02X", regs.Read(types.STAT))
	}
	tickN(p, lcd.HBlankCycles)
	if p.LY() != 1 || p.Mode != lcd.OAM {
		t.Errorf("expected line 1 in OAM mode, got line %d mode %d", p.LY(), p.Mode)
	}
	if regs.Read(types.LY) != 1 {
		t.Errorf("expected LY to read 1, got %d", regs.Read(types.LY))
	}
}

func TestPPU_VBlank(t *testing.T) {
	p, irq, _ := newTestPPU()
	frames := 0
	p.SetRenderer(RendererFunc(func(frame *Frame) {
		frames++
	}))

	tickN(p, ScreenHeight*lcd.LineCycles-4)
	if irq.Flag&interrupts.VBlankFlag != 0 {
		t.Errorf("expected no VBlank interrupt before line 144")
	}

	tickN(p, 4)
	if p.LY() != ScreenHeight || p.Mode != lcd.VBlank {
		t.Errorf("expected line 144 in VBlank, got line %d mode %d", p.LY(), p.Mode)
	}
	if irq.Flag&interrupts.VBlankFlag == 0 {
		t.Errorf("expected a VBlank interrupt at line 144")
	}
	if frames != 1 {
		t.Errorf("expected 1 frame to be rendered, got %d", frames)
	}

	tickN(p, (ScanLines-ScreenHeight)*lcd.LineCycles)
	if p.LY() != 0 || p.Mode != lcd.OAM {
		t.Errorf("expected the next frame to start, got line %d mode %d", p.LY(), p.Mode)
	}

	p.SetRenderer(nil)
	tickN(p, FrameCycles)
	if frames != 1 {
		t.Errorf("expected a detached renderer to receive nothing, got %d frames", frames)
	}
}

func TestPPU_Coincidence(t *testing.T) {
	p, irq, regs := newTestPPU()
	regs.Write(types.LYC, 2)
	regs.Write(types.STAT, 0x40)

	tickN(p, lcd.LineCycles)
	if irq.Flag&interrupts.LCDFlag != 0 {
		t.Errorf("expected no STAT interrupt on line 1")
	}
	tickN(p, lcd.LineCycles)
	if irq.Flag&interrupts.LCDFlag == 0 {
		t.Errorf("expected a STAT interrupt when LY=LYC")
	}
	if regs.Read(types.STAT)&0x04 == 0 {
		t.Errorf("expected the coincidence flag to be set")
	}
}

func TestPPU_HBlankInterrupt(t *testing.T) {
	p, irq, regs := newTestPPU()
	regs.Write(types.STAT, 0x08)

	tickN(p, lcd.OAMCycles+lcd.VRAMCycles)
	if irq.Flag&interrupts.LCDFlag == 0 {
		t.Errorf("expected a STAT interrupt on entering HBlank")
	}
}

func TestPPU_Disabled(t *testing.T) {
	p, irq, regs := newTestPPU()
	tickN(p, 10*lcd.LineCycles)

	regs.Write(types.LCDC, 0x11)
	if p.LY() != 0 || p.Mode != lcd.HBlank {
		t.Errorf("expected LY 0 in HBlank while off, got line %d mode %d", p.LY(), p.Mode)
	}
	tickN(p, FrameCycles)
	if p.LY() != 0 || irq.Flag&interrupts.VBlankFlag != 0 {
		t.Errorf("expected the PPU to stand still while off")
	}
	if regs.Read(types.LCDC) != 0x11 {
		t.Errorf("expected LCDC to read back 0x11, got 0x%02X", regs.Read(types.LCDC))
	}

	regs.Write(types.LCDC, 0x91)
	if p.Mode != lcd.OAM {
		t.Errorf("expected the PPU to restart in OAM mode, got %d", p.Mode)
	}
}

func TestPPU_RenderBackground(t *testing.T) {
	p, _, regs := newTestPPU()
	regs.Write(types.BGP, 0xE4)

	// tile 1: every row has colour 1 on the left half and colour 2 on the right
	for row := uint16(0); row < 8; row++ {
		p.Write(0x8010+row*2, 0xF0)
		p.Write(0x8010+row*2+1, 0x0F)
	}
	// place tile 1 in the second column of the map
	p.Write(0x9801, 0x01)

	var got Frame
	p.SetRenderer(RendererFunc(func(frame *Frame) {
		got = *frame
	}))
	tickN(p, ScreenHeight*lcd.LineCycles)

	for x := 0; x < 16; x++ {
		expected := uint8(0)
		switch {
		case x >= 8 && x < 12:
			expected = 1
		case x >= 12:
			expected = 2
		}
		if got[0][x] != expected {
			t.Errorf("pixel (%d, 0): expected shade %d, got %d", x, expected, got[0][x])
		}
	}
	if got[8][8] != 0 {
		t.Errorf("expected the second tile row to be blank, got %d", got[8][8])
	}

	// scrolling by 4 pixels moves the tile left
	regs.Write(types.SCX, 4)
	tickN(p, FrameCycles)
	if got[0][4] != 1 || got[0][8] != 2 {
		t.Errorf("expected scrolled pixels 1 and 2, got %d and %d", got[0][4], got[0][8])
	}
}

func TestPPU_SignedTileData(t *testing.T) {
	p, _, regs := newTestPPU()
	regs.Write(types.BGP, 0xE4)
	regs.Write(types.LCDC, 0x81)

	// tile 0 in the signed mode lives at 0x9000
	for row := uint16(0); row < 8; row++ {
		p.Write(0x9000+row*2, 0xFF)
		p.Write(0x9000+row*2+1, 0xFF)
	}

	var got Frame
	p.SetRenderer(RendererFunc(func(frame *Frame) { got = *frame }))
	tickN(p, ScreenHeight*lcd.LineCycles)

	if got[0][0] != 3 || got[143][159] != 3 {
		t.Errorf("expected every pixel to be shade 3, got %d and %d", got[0][0], got[143][159])
	}
}

func TestPPU_Memory(t *testing.T) {
	p, _, _ := newTestPPU()
	p.Write(0x8000, 0x12)
	p.Write(0x9FFF, 0x34)
	p.Write(0xFE9F, 0x56)

	if p.Read(0x8000) != 0x12 || p.Read(0x9FFF) != 0x34 || p.Read(0xFE9F) != 0x56 {
		t.Errorf("expected VRAM and OAM to hold their values")
	}
	if p.Read(0xFEA0) != 0xFF {
		t.Errorf("expected addresses beyond OAM to read 0xFF")
	}
}
