// Package fbdev sends tiles to a Linux framebuffer device such as /dev/fb0.
//
// The framebuffer must be configured for 16 bits per pixel (RGB 5-6-5). Each
// tile row becomes a single positioned write, so the device can be any
// io.WriterAt: the opened device file, a memory mapping, or a buffer in tests.
package fbdev

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/flavioheleno/nanoengine/canvas"
)

// Opts describes the framebuffer geometry.
type Opts struct {
	W int // Visible width in pixels
	H int // Visible height in pixels

	// Stride is the length of a framebuffer line in bytes. Zero means W*2.
	Stride int
}

// Dev is a framebuffer display sink.
type Dev struct {
	w      io.WriterAt
	c      io.Closer
	width  int
	height int
	stride int
	row    []byte
}

// New returns a sink writing into w.
func New(w io.WriterAt, opts Opts) (*Dev, error) {
	if opts.W <= 0 || opts.H <= 0 {
		return nil, fmt.Errorf("fbdev: invalid size %dx%d", opts.W, opts.H)
	}
	if opts.Stride == 0 {
		opts.Stride = opts.W * 2
	}
	if opts.Stride < opts.W*2 {
		return nil, fmt.Errorf("fbdev: stride %d shorter than a %d pixel line", opts.Stride, opts.W)
	}
	return &Dev{w: w, width: opts.W, height: opts.H, stride: opts.Stride}, nil
}

// Open opens the framebuffer device at path for writing.
func Open(path string, opts Opts) (*Dev, error) {
	f, err := os.OpenFile(path, os.O_WRONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("fbdev: %w", err)
	}
	d, err := New(f, opts)
	if err != nil {
		f.Close()
		return nil, err
	}
	d.c = f
	return d, nil
}

// Close closes the device opened by Open.
func (d *Dev) Close() error {
	if d.c == nil {
		return nil
	}
	return d.c.Close()
}

// Width returns the display width in pixels.
func (d *Dev) Width() int { return d.width }

// Height returns the display height in pixels.
func (d *Dev) Height() int { return d.height }

// DrawCanvas writes the tile c with its top-left corner at (x, y), dropping
// whatever falls outside the screen.
func (d *Dev) DrawCanvas(x, y int, c canvas.Canvas) error {
	x1, y1 := max(x, 0), max(y, 0)
	x2, y2 := min(x+c.Width(), d.width), min(y+c.Height(), d.height)
	if x1 >= x2 || y1 >= y2 {
		return nil
	}
	n := (x2 - x1) * 2
	if cap(d.row) < n {
		d.row = make([]byte, n)
	}
	row := d.row[:n]
	off := c.Offset()
	bpp := c.BitsPerPixel()

	for sy := y1; sy < y2; sy++ {
		for sx := x1; sx < x2; sx++ {
			v := c.Pixel(off.X+sx-x, off.Y+sy-y)
			binary.LittleEndian.PutUint16(row[(sx-x1)*2:], to565(bpp, v))
		}
		if _, err := d.w.WriteAt(row, int64(sy*d.stride+x1*2)); err != nil {
			return fmt.Errorf("fbdev: write line %d: %w", sy, err)
		}
	}
	return nil
}

func to565(bpp int, v uint16) uint16 {
	switch bpp {
	case 16:
		return v
	case 8:
		return canvas.RGB8To16(uint8(v))
	}
	r, g, b, _ := canvas.ColorOf(bpp, v).RGBA()
	return canvas.RGB16(uint8(r>>8), uint8(g>>8), uint8(b>>8))
}
