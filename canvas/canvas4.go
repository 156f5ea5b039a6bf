package canvas

import (
	"image"

	"github.com/flavioheleno/nanoengine/image4bit"
)

// Canvas4 is a 16-level grayscale canvas using the horizontal nibble layout
// of package image4bit: two pixels per byte, even columns in the high nibble.
// Only the low 4 bits of the color are used.
type Canvas4 struct {
	ops
	stride int
}

// Size4 returns the buffer size required by a w x h grayscale canvas.
func Size4(w, h int) int {
	return image4bit.Stride(w) * h
}

// New4 returns a grayscale canvas drawing into buf.
func New4(w, h int, buf []byte) (*Canvas4, error) {
	o, err := newOps(w, h, buf, Size4(w, h))
	if err != nil {
		return nil, err
	}
	return &Canvas4{ops: o, stride: image4bit.Stride(w)}, nil
}

// BitsPerPixel returns 4.
func (c *Canvas4) BitsPerPixel() int { return 4 }

// Stride returns the number of bytes per row.
func (c *Canvas4) Stride() int { return c.stride }

// Pixel returns the raw value of the pixel at (x, y), or 0 outside the canvas.
func (c *Canvas4) Pixel(x, y int) uint16 {
	x, y = c.local(x, y)
	if !c.inside(x, y) {
		return 0
	}
	return uint16(c.buf[y*c.stride+x/2]>>image4bit.NibbleShift(x)) & 0x0F
}

func (c *Canvas4) setLocal(x, y int, color uint16) {
	i := y*c.stride + x/2
	c.buf[i] = image4bit.SetNibble(c.buf[i], image4bit.NibbleShift(x), uint8(color))
}

func (c *Canvas4) from332(v uint8) uint16 {
	return uint16(image4bit.Level(expand332(v)))
}

func (c *Canvas4) from565(v uint16) uint16 {
	return uint16(image4bit.Level(expand565(v)))
}

// PutPixel sets the pixel at (x, y) to the drawing color.
func (c *Canvas4) PutPixel(x, y int) {
	x, y = c.local(x, y)
	if c.inside(x, y) {
		c.setLocal(x, y, c.color)
	}
}

func (c *Canvas4) fill(x1, y1, x2, y2 int) {
	v := uint8(c.color & 0x0F)
	both := v<<4 | v
	for y := y1; y <= y2; y++ {
		row := c.buf[y*c.stride : (y+1)*c.stride]
		x := x1
		if x&1 == 1 {
			row[x/2] = image4bit.SetNibble(row[x/2], 0, v)
			x++
		}
		for ; x+1 <= x2; x += 2 {
			row[x/2] = both
		}
		if x == x2 {
			row[x/2] = image4bit.SetNibble(row[x/2], 4, v)
		}
	}
}

// DrawHLine draws a horizontal line from x1 to x2.
func (c *Canvas4) DrawHLine(x1, y, x2 int) {
	if lx1, ly, lx2, _, ok := c.clipRect(x1, y, x2, y); ok {
		c.fill(lx1, ly, lx2, ly)
	}
}

// DrawVLine draws a vertical line from y1 to y2.
func (c *Canvas4) DrawVLine(x, y1, y2 int) {
	if lx, ly1, _, ly2, ok := c.clipRect(x, y1, x, y2); ok {
		c.fill(lx, ly1, lx, ly2)
	}
}

// FillRect fills the rectangle with the drawing color.
func (c *Canvas4) FillRect(x1, y1, x2, y2 int) {
	if lx1, ly1, lx2, ly2, ok := c.clipRect(x1, y1, x2, y2); ok {
		c.fill(lx1, ly1, lx2, ly2)
	}
}

// DrawLine draws a line between both points, included.
func (c *Canvas4) DrawLine(x1, y1, x2, y2 int) { drawLine(c, x1, y1, x2, y2) }

// DrawRect draws the outline of a rectangle.
func (c *Canvas4) DrawRect(x1, y1, x2, y2 int) { drawRect(c, x1, y1, x2, y2) }

// DrawBitmap1 draws a bank-packed monochrome bitmap.
func (c *Canvas4) DrawBitmap1(x, y, w, h int, bitmap []byte) {
	drawBitmap1Pixels(c, &c.ops, x, y, w, h, bitmap)
}

// DrawXBitmap1 draws a row-major monochrome bitmap, LSB first.
func (c *Canvas4) DrawXBitmap1(x, y, w, h int, bitmap []byte) {
	drawXBitmap1Pixels(c, &c.ops, x, y, w, h, bitmap)
}

// DrawBitmap8 draws a bitmap of 3-3-2 pixels.
func (c *Canvas4) DrawBitmap8(x, y, w, h int, bitmap []byte) {
	drawBitmap8Pixels(c, &c.ops, x, y, w, h, bitmap)
}

// DrawBitmap16 draws a bitmap of 5-6-5 pixels.
func (c *Canvas4) DrawBitmap16(x, y, w, h int, bitmap []byte) {
	drawBitmap16Pixels(c, &c.ops, x, y, w, h, bitmap)
}

// Gray returns an image view of the canvas buffer.
func (c *Canvas4) Gray() *image4bit.HorizontalNibble {
	return &image4bit.HorizontalNibble{Pix: c.buf, Stride: c.stride, Rect: image.Rect(0, 0, c.w, c.h)}
}

// WriteChar draws ch at the cursor and advances it, handling '\n' and '\r'.
func (c *Canvas4) WriteChar(ch byte) bool { return writeChar(c, &c.ops, ch) }

// Write draws p as text at the cursor. It never fails.
func (c *Canvas4) Write(p []byte) (int, error) { return write(c, &c.ops, p) }

// PrintChar draws ch at the cursor, without control characters, wrapping as the mode asks.
func (c *Canvas4) PrintChar(ch byte) bool { return printChar(c, &c.ops, ch) }

// PrintFixed draws s with its top-left corner at (x, y).
func (c *Canvas4) PrintFixed(x, y int, s string, style FontStyle) {
	printFixed(c, &c.ops, x, y, s, style)
}
