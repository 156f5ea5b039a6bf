package canvas

// Canvas8 is an RGB 3-3-2 canvas, one byte per pixel in row-major order.
type Canvas8 struct {
	ops
}

// Size8 returns the buffer size required by a w x h 8-bit canvas.
func Size8(w, h int) int { return w * h }

// New8 returns an 8-bit color canvas drawing into buf.
func New8(w, h int, buf []byte) (*Canvas8, error) {
	o, err := newOps(w, h, buf, Size8(w, h))
	if err != nil {
		return nil, err
	}
	return &Canvas8{ops: o}, nil
}

// BitsPerPixel returns 8.
func (c *Canvas8) BitsPerPixel() int { return 8 }

// Pixel returns the raw value of the pixel at (x, y), or 0 outside the canvas.
func (c *Canvas8) Pixel(x, y int) uint16 {
	x, y = c.local(x, y)
	if !c.inside(x, y) {
		return 0
	}
	return uint16(c.buf[y*c.w+x])
}

func (c *Canvas8) setLocal(x, y int, color uint16) {
	c.buf[y*c.w+x] = uint8(color)
}

func (c *Canvas8) from332(v uint8) uint16  { return uint16(v) }
func (c *Canvas8) from565(v uint16) uint16 { return uint16(RGB16To8(v)) }

// PutPixel sets the pixel at (x, y) to the drawing color.
func (c *Canvas8) PutPixel(x, y int) {
	x, y = c.local(x, y)
	if c.inside(x, y) {
		c.setLocal(x, y, c.color)
	}
}

func (c *Canvas8) fill(x1, y1, x2, y2 int) {
	v := uint8(c.color)
	for y := y1; y <= y2; y++ {
		row := c.buf[y*c.w+x1 : y*c.w+x2+1]
		for i := range row {
			row[i] = v
		}
	}
}

// DrawHLine draws a horizontal line from x1 to x2.
func (c *Canvas8) DrawHLine(x1, y, x2 int) {
	if lx1, ly, lx2, _, ok := c.clipRect(x1, y, x2, y); ok {
		c.fill(lx1, ly, lx2, ly)
	}
}

// DrawVLine draws a vertical line from y1 to y2.
func (c *Canvas8) DrawVLine(x, y1, y2 int) {
	if lx, ly1, _, ly2, ok := c.clipRect(x, y1, x, y2); ok {
		c.fill(lx, ly1, lx, ly2)
	}
}

// FillRect fills the rectangle with the drawing color.
func (c *Canvas8) FillRect(x1, y1, x2, y2 int) {
	if lx1, ly1, lx2, ly2, ok := c.clipRect(x1, y1, x2, y2); ok {
		c.fill(lx1, ly1, lx2, ly2)
	}
}

// DrawLine draws a line between both points, included.
func (c *Canvas8) DrawLine(x1, y1, x2, y2 int) { drawLine(c, x1, y1, x2, y2) }

// DrawRect draws the outline of a rectangle.
func (c *Canvas8) DrawRect(x1, y1, x2, y2 int) { drawRect(c, x1, y1, x2, y2) }

// DrawBitmap1 draws a bank-packed monochrome bitmap.
func (c *Canvas8) DrawBitmap1(x, y, w, h int, bitmap []byte) {
	drawBitmap1Pixels(c, &c.ops, x, y, w, h, bitmap)
}

// DrawXBitmap1 draws a row-major monochrome bitmap, LSB first.
func (c *Canvas8) DrawXBitmap1(x, y, w, h int, bitmap []byte) {
	drawXBitmap1Pixels(c, &c.ops, x, y, w, h, bitmap)
}

// DrawBitmap8 copies RGB 3-3-2 rows as they are. In Transparent mode, zero
// source bytes are skipped.
func (c *Canvas8) DrawBitmap8(x, y, w, h int, bitmap []byte) {
	s, ok := c.clipSource(x, y, w, h)
	if !ok {
		return
	}
	if c.transparent() {
		drawBitmap8Pixels(c, &c.ops, x, y, w, h, bitmap)
		return
	}
	for row := 0; row < s.h; row++ {
		src := (s.sy+row)*w + s.sx
		if src >= len(bitmap) {
			return
		}
		dst := (s.dy+row)*c.w + s.dx
		copy(c.buf[dst:dst+s.w], bitmap[src:min(src+s.w, len(bitmap))])
	}
}

// DrawBitmap16 draws a bitmap of 5-6-5 pixels.
func (c *Canvas8) DrawBitmap16(x, y, w, h int, bitmap []byte) {
	drawBitmap16Pixels(c, &c.ops, x, y, w, h, bitmap)
}

// WriteChar draws ch at the cursor and advances it, handling '\n' and '\r'.
func (c *Canvas8) WriteChar(ch byte) bool { return writeChar(c, &c.ops, ch) }

// Write draws p as text at the cursor. It never fails.
func (c *Canvas8) Write(p []byte) (int, error) { return write(c, &c.ops, p) }

// PrintChar draws ch at the cursor, without control characters, wrapping as the mode asks.
func (c *Canvas8) PrintChar(ch byte) bool { return printChar(c, &c.ops, ch) }

// PrintFixed draws s with its top-left corner at (x, y).
func (c *Canvas8) PrintFixed(x, y int, s string, style FontStyle) {
	printFixed(c, &c.ops, x, y, s, style)
}
