package canvas

// Canvas16 is an RGB 5-6-5 canvas, two bytes per pixel with the high byte
// first, in row-major order.
type Canvas16 struct {
	ops
}

// Size16 returns the buffer size required by a w x h 16-bit canvas.
func Size16(w, h int) int { return w * h * 2 }

// New16 returns a 16-bit color canvas drawing into buf.
func New16(w, h int, buf []byte) (*Canvas16, error) {
	o, err := newOps(w, h, buf, Size16(w, h))
	if err != nil {
		return nil, err
	}
	return &Canvas16{ops: o}, nil
}

// BitsPerPixel returns 16.
func (c *Canvas16) BitsPerPixel() int { return 16 }

// Pixel returns the raw value of the pixel at (x, y), or 0 outside the canvas.
func (c *Canvas16) Pixel(x, y int) uint16 {
	x, y = c.local(x, y)
	if !c.inside(x, y) {
		return 0
	}
	i := (y*c.w + x) * 2
	return uint16(c.buf[i])<<8 | uint16(c.buf[i+1])
}

func (c *Canvas16) setLocal(x, y int, color uint16) {
	i := (y*c.w + x) * 2
	c.buf[i] = uint8(color >> 8)
	c.buf[i+1] = uint8(color)
}

func (c *Canvas16) from332(v uint8) uint16  { return RGB8To16(v) }
func (c *Canvas16) from565(v uint16) uint16 { return v }

// PutPixel sets the pixel at (x, y) to the drawing color.
func (c *Canvas16) PutPixel(x, y int) {
	x, y = c.local(x, y)
	if c.inside(x, y) {
		c.setLocal(x, y, c.color)
	}
}

func (c *Canvas16) fill(x1, y1, x2, y2 int) {
	hi, lo := uint8(c.color>>8), uint8(c.color)
	for y := y1; y <= y2; y++ {
		row := c.buf[(y*c.w+x1)*2 : (y*c.w+x2+1)*2]
		for i := 0; i < len(row); i += 2 {
			row[i] = hi
			row[i+1] = lo
		}
	}
}

// DrawHLine draws a horizontal line from x1 to x2.
func (c *Canvas16) DrawHLine(x1, y, x2 int) {
	if lx1, ly, lx2, _, ok := c.clipRect(x1, y, x2, y); ok {
		c.fill(lx1, ly, lx2, ly)
	}
}

// DrawVLine draws a vertical line from y1 to y2.
func (c *Canvas16) DrawVLine(x, y1, y2 int) {
	if lx, ly1, _, ly2, ok := c.clipRect(x, y1, x, y2); ok {
		c.fill(lx, ly1, lx, ly2)
	}
}

// FillRect fills the rectangle with the drawing color.
func (c *Canvas16) FillRect(x1, y1, x2, y2 int) {
	if lx1, ly1, lx2, ly2, ok := c.clipRect(x1, y1, x2, y2); ok {
		c.fill(lx1, ly1, lx2, ly2)
	}
}

// DrawLine draws a line between both points, included.
func (c *Canvas16) DrawLine(x1, y1, x2, y2 int) { drawLine(c, x1, y1, x2, y2) }

// DrawRect draws the outline of a rectangle.
func (c *Canvas16) DrawRect(x1, y1, x2, y2 int) { drawRect(c, x1, y1, x2, y2) }

// DrawBitmap1 draws a bank-packed monochrome bitmap.
func (c *Canvas16) DrawBitmap1(x, y, w, h int, bitmap []byte) {
	drawBitmap1Pixels(c, &c.ops, x, y, w, h, bitmap)
}

// DrawXBitmap1 draws a row-major monochrome bitmap, LSB first.
func (c *Canvas16) DrawXBitmap1(x, y, w, h int, bitmap []byte) {
	drawXBitmap1Pixels(c, &c.ops, x, y, w, h, bitmap)
}

// DrawBitmap8 draws a bitmap of 3-3-2 pixels.
func (c *Canvas16) DrawBitmap8(x, y, w, h int, bitmap []byte) {
	drawBitmap8Pixels(c, &c.ops, x, y, w, h, bitmap)
}

// DrawBitmap16 copies RGB 5-6-5 rows as they are. In Transparent mode, zero
// source pixels are skipped.
func (c *Canvas16) DrawBitmap16(x, y, w, h int, bitmap []byte) {
	s, ok := c.clipSource(x, y, w, h)
	if !ok {
		return
	}
	if c.transparent() {
		drawBitmap16Pixels(c, &c.ops, x, y, w, h, bitmap)
		return
	}
	for row := 0; row < s.h; row++ {
		src := ((s.sy+row)*w + s.sx) * 2
		if src >= len(bitmap) {
			return
		}
		dst := ((s.dy+row)*c.w + s.dx) * 2
		copy(c.buf[dst:dst+s.w*2], bitmap[src:min(src+s.w*2, len(bitmap))])
	}
}

// WriteChar draws ch at the cursor and advances it, handling '\n' and '\r'.
func (c *Canvas16) WriteChar(ch byte) bool { return writeChar(c, &c.ops, ch) }

// Write draws p as text at the cursor. It never fails.
func (c *Canvas16) Write(p []byte) (int, error) { return write(c, &c.ops, p) }

// PrintChar draws ch at the cursor, without control characters, wrapping as the mode asks.
func (c *Canvas16) PrintChar(ch byte) bool { return printChar(c, &c.ops, ch) }

// PrintFixed draws s with its top-left corner at (x, y).
func (c *Canvas16) PrintFixed(x, y int, s string, style FontStyle) {
	printFixed(c, &c.ops, x, y, s, style)
}
