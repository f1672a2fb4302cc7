package capture

import (
	"bytes"
	"image/color"
	"path/filepath"
	"testing"

	"github.com/thelolagemann/lr35902/internal/ppu"
	"github.com/thelolagemann/lr35902/internal/ppu/palette"
	"golang.org/x/image/bmp"
)

func TestCapture_Frames(t *testing.T) {
	c := New(palette.Get(palette.Greyscale))
	frame := &ppu.Frame{}

	c.Render(frame)
	c.Render(frame)
	first := c.Hash()

	frame[10][20] = 3
	c.Render(frame)

	total, changed := c.Frames()
	if total != 3 {
		t.Errorf("expected 3 frames, got %d", total)
	}
	if changed != 2 {
		t.Errorf("expected 2 changed frames, got %d", changed)
	}
	if c.Hash() == first {
		t.Errorf("expected hash to change with the frame")
	}
}

func TestCapture_Image(t *testing.T) {
	c := New(palette.Get(palette.Greyscale))
	frame := &ppu.Frame{}
	frame[0][0] = 3
	frame[143][159] = 1
	c.Render(frame)

	img := c.Image()
	if got := img.RGBAAt(0, 0); got != (color.RGBA{A: 0xFF}) {
		t.Errorf("expected black at 0,0, got %v", got)
	}
	if got := img.RGBAAt(159, 143); got != (color.RGBA{R: 0xCC, G: 0xCC, B: 0xCC, A: 0xFF}) {
		t.Errorf("expected light grey at 159,143, got %v", got)
	}
	if got := img.RGBAAt(1, 0); got != (color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}) {
		t.Errorf("expected white at 1,0, got %v", got)
	}

	// the frame is copied, later changes by the PPU don't leak in
	frame[0][0] = 0
	if got := c.Image().RGBAAt(0, 0); got != (color.RGBA{A: 0xFF}) {
		t.Errorf("expected captured frame to be unaffected, got %v", got)
	}
}

func TestCapture_WriteBMP(t *testing.T) {
	c := New(palette.Get(palette.Green))
	c.Render(&ppu.Frame{})

	b := &bytes.Buffer{}
	if err := c.WriteBMP(b); err != nil {
		t.Fatal(err)
	}
	img, err := bmp.Decode(b)
	if err != nil {
		t.Fatal(err)
	}
	if size := img.Bounds().Size(); size.X != ppu.ScreenWidth || size.Y != ppu.ScreenHeight {
		t.Errorf("expected %dx%d image, got %v", ppu.ScreenWidth, ppu.ScreenHeight, size)
	}
	r, g, bl, _ := img.At(0, 0).RGBA()
	if r>>8 != 0x9B || g>>8 != 0xBC || bl>>8 != 0x0F {
		t.Errorf("expected green palette colour, got %02x%02x%02x", r>>8, g>>8, bl>>8)
	}
}

func TestCapture_SaveBMP(t *testing.T) {
	c := New(palette.Get(palette.Greyscale))
	if err := c.SaveBMP(filepath.Join(t.TempDir(), "missing", "shot.bmp")); err == nil {
		t.Errorf("expected an error saving into a missing directory")
	}
	if err := c.SaveBMP(filepath.Join(t.TempDir(), "shot.bmp")); err != nil {
		t.Error(err)
	}
}
