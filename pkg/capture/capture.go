// Package capture provides a ppu.Renderer that keeps hold of the most
// recent frame, so it can be inspected or saved as a BMP image.
package capture

import (
	"image"
	"image/color"
	"io"
	"os"
	"sync"

	"github.com/cespare/xxhash"
	"github.com/pkg/errors"
	"github.com/thelolagemann/lr35902/internal/ppu"
	"github.com/thelolagemann/lr35902/internal/ppu/palette"
	"golang.org/x/image/bmp"
)

// Capture stores the latest frame handed to it by the PPU. Frames
// are hashed as they arrive, so that identical consecutive frames
// can be told apart from new ones. It is safe for concurrent use.
type Capture struct {
	mu      sync.Mutex
	palette palette.Palette

	frame ppu.Frame
	hash  uint64

	frames  uint64
	changes uint64
}

// New returns a Capture that colours frames with p.
func New(p palette.Palette) *Capture {
	return &Capture{palette: p}
}

// Render implements ppu.Renderer.
func (c *Capture) Render(frame *ppu.Frame) {
	h := hashFrame(frame)

	c.mu.Lock()
	defer c.mu.Unlock()

	c.frames++
	if c.frames > 1 && h == c.hash {
		return
	}
	c.changes++
	c.hash = h
	c.frame = *frame
}

// Frames returns the number of frames rendered, and how many of
// them differed from the frame before.
func (c *Capture) Frames() (total, changed uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.frames, c.changes
}

// Hash returns the xxhash of the latest frame.
func (c *Capture) Hash() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hash
}

// Image returns the latest frame as an image.
func (c *Capture) Image() *image.RGBA {
	c.mu.Lock()
	defer c.mu.Unlock()

	img := image.NewRGBA(image.Rect(0, 0, ppu.ScreenWidth, ppu.ScreenHeight))
	for y := 0; y < ppu.ScreenHeight; y++ {
		for x := 0; x < ppu.ScreenWidth; x++ {
			rgb := c.palette.Colour(c.frame[y][x])
			img.SetRGBA(x, y, color.RGBA{R: rgb[0], G: rgb[1], B: rgb[2], A: 0xFF})
		}
	}
	return img
}

// WriteBMP encodes the latest frame to w as a BMP image.
func (c *Capture) WriteBMP(w io.Writer) error {
	return errors.Wrap(bmp.Encode(w, c.Image()), "encoding bmp")
}

// SaveBMP writes the latest frame to the file at path.
func (c *Capture) SaveBMP(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "creating screenshot")
	}
	if err := c.WriteBMP(f); err != nil {
		f.Close()
		return errors.Wrapf(err, "writing %s", path)
	}
	return errors.Wrapf(f.Close(), "writing %s", path)
}

func hashFrame(frame *ppu.Frame) uint64 {
	d := xxhash.New()
	for y := range frame {
		_, _ = d.Write(frame[y][:])
	}
	return d.Sum64()
}
