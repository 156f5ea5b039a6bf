package canvas

// Canvas1 is a monochrome canvas. Pixels are stored in 8-row banks: byte
// (y/8)*width+x holds column x of rows y&^7 to y|7, bit y%8 being row y.
// This is the native page layout of SSD1306-class controllers.
//
// Any non-zero color sets pixels, zero clears them.
type Canvas1 struct {
	ops
}

// Size1 returns the buffer size required by a w x h monochrome canvas.
func Size1(w, h int) int {
	return w * ((h + 7) / 8)
}

// New1 returns a monochrome canvas drawing into buf.
func New1(w, h int, buf []byte) (*Canvas1, error) {
	o, err := newOps(w, h, buf, Size1(w, h))
	if err != nil {
		return nil, err
	}
	return &Canvas1{ops: o}, nil
}

// bankAddr locates a row inside the banked layout.
type bankAddr struct {
	bank int
	bit  uint
}

func bankOf(y int) bankAddr {
	return bankAddr{bank: y >> 3, bit: uint(y & 7)}
}

// rowMask returns the bits of bank covering rows y1 to y2.
func rowMask(bank, y1, y2 int) byte {
	mask := byte(0xFF)
	if a := bankOf(y1); a.bank == bank {
		mask &= 0xFF << a.bit
	}
	if a := bankOf(y2); a.bank == bank {
		mask &= 0xFF >> (7 - a.bit)
	}
	return mask
}

// BitsPerPixel returns 1.
func (c *Canvas1) BitsPerPixel() int { return 1 }

// Pixel returns the raw value of the pixel at (x, y), or 0 outside the canvas.
func (c *Canvas1) Pixel(x, y int) uint16 {
	x, y = c.local(x, y)
	if !c.inside(x, y) {
		return 0
	}
	a := bankOf(y)
	return uint16(c.buf[a.bank*c.w+x]>>a.bit) & 1
}

func (c *Canvas1) setLocal(x, y int, color uint16) {
	a := bankOf(y)
	if color != 0 {
		c.buf[a.bank*c.w+x] |= 1 << a.bit
	} else {
		c.buf[a.bank*c.w+x] &^= 1 << a.bit
	}
}

func (c *Canvas1) from332(v uint8) uint16  { return uint16(v) }
func (c *Canvas1) from565(v uint16) uint16 { return v }

// PutPixel sets the pixel at (x, y) to the drawing color.
func (c *Canvas1) PutPixel(x, y int) {
	x, y = c.local(x, y)
	if c.inside(x, y) {
		c.setLocal(x, y, c.color)
	}
}

func (c *Canvas1) fill(x1, y1, x2, y2 int) {
	for bank := y1 >> 3; bank <= y2>>3; bank++ {
		mask := rowMask(bank, y1, y2)
		row := c.buf[bank*c.w : (bank+1)*c.w]
		for x := x1; x <= x2; x++ {
			if c.color != 0 {
				row[x] |= mask
			} else {
				row[x] &^= mask
			}
		}
	}
}

// DrawHLine draws a horizontal line from x1 to x2.
func (c *Canvas1) DrawHLine(x1, y, x2 int) {
	if lx1, ly, lx2, _, ok := c.clipRect(x1, y, x2, y); ok {
		c.fill(lx1, ly, lx2, ly)
	}
}

// DrawVLine draws a vertical line from y1 to y2.
func (c *Canvas1) DrawVLine(x, y1, y2 int) {
	if lx, ly1, _, ly2, ok := c.clipRect(x, y1, x, y2); ok {
		c.fill(lx, ly1, lx, ly2)
	}
}

// FillRect fills the rectangle with the drawing color.
func (c *Canvas1) FillRect(x1, y1, x2, y2 int) {
	if lx1, ly1, lx2, ly2, ok := c.clipRect(x1, y1, x2, y2); ok {
		c.fill(lx1, ly1, lx2, ly2)
	}
}

// DrawLine draws a line between both points, included.
func (c *Canvas1) DrawLine(x1, y1, x2, y2 int) { drawLine(c, x1, y1, x2, y2) }

// DrawRect draws the outline of a rectangle.
func (c *Canvas1) DrawRect(x1, y1, x2, y2 int) { drawRect(c, x1, y1, x2, y2) }

// bankSplit describes how one destination bank is fed from a banked source
// bitmap whose top row lands at an arbitrary y.
type bankSplit struct {
	page  int  // source bank holding the destination's bit 0
	shift uint // source bit offset of the destination's bit 0
	mask  byte // destination bits to write
}

// splitBank computes the split for destination bank, for a source of height
// h whose row 0 is at y, restricted to destination rows y1 to y2.
func splitBank(bank, y, h, y1, y2 int) bankSplit {
	srow := bank*8 - y
	page := srow >> 3
	s := bankSplit{page: page, shift: uint(srow - page*8), mask: rowMask(bank, y1, y2)}
	if lo := -srow; lo > 0 {
		s.mask &= 0xFF << uint(lo)
	}
	if hi := h - 1 - srow; hi < 7 {
		s.mask &= 0xFF >> uint(7-hi)
	}
	return s
}

// DrawBitmap1 copies whole source banks into destination banks, splitting
// each column byte across two banks when y is not a multiple of 8.
func (c *Canvas1) DrawBitmap1(x, y, w, h int, bitmap []byte) {
	s, ok := c.clipSource(x, y, w, h)
	if !ok {
		return
	}
	lx, ly := c.local(x, y)
	y1, y2 := s.dy, s.dy+s.h-1
	src := func(page, col int) byte {
		i := page*w + col
		if page < 0 || i >= len(bitmap) {
			return 0
		}
		return bitmap[i]
	}
	transparent := c.transparent()
	invert := c.color == 0
	for bank := y1 >> 3; bank <= y2>>3; bank++ {
		sp := splitBank(bank, ly, h, y1, y2)
		if sp.mask == 0 {
			continue
		}
		row := c.buf[bank*c.w : (bank+1)*c.w]
		for col := s.dx; col < s.dx+s.w; col++ {
			sx := col - lx
			data := src(sp.page, sx) >> sp.shift
			if sp.shift != 0 {
				data |= src(sp.page+1, sx) << (8 - sp.shift)
			}
			switch {
			case !transparent:
				if invert {
					data = ^data
				}
				row[col] = row[col]&^sp.mask | data&sp.mask
			case invert:
				row[col] &^= data & sp.mask
			default:
				row[col] |= data & sp.mask
			}
		}
	}
}

// DrawXBitmap1 draws a row-major monochrome bitmap, LSB first.
func (c *Canvas1) DrawXBitmap1(x, y, w, h int, bitmap []byte) {
	drawXBitmap1Pixels(c, &c.ops, x, y, w, h, bitmap)
}

// DrawBitmap8 draws a bitmap of 3-3-2 pixels.
func (c *Canvas1) DrawBitmap8(x, y, w, h int, bitmap []byte) {
	drawBitmap8Pixels(c, &c.ops, x, y, w, h, bitmap)
}

// DrawBitmap16 draws a bitmap of 5-6-5 pixels.
func (c *Canvas1) DrawBitmap16(x, y, w, h int, bitmap []byte) {
	drawBitmap16Pixels(c, &c.ops, x, y, w, h, bitmap)
}

// WriteChar draws ch at the cursor and advances it, handling '\n' and '\r'.
func (c *Canvas1) WriteChar(ch byte) bool { return writeChar(c, &c.ops, ch) }

// Write draws p as text at the cursor. It never fails.
func (c *Canvas1) Write(p []byte) (int, error) { return write(c, &c.ops, p) }

// PrintChar draws ch at the cursor, without control characters, wrapping as the mode asks.
func (c *Canvas1) PrintChar(ch byte) bool { return printChar(c, &c.ops, ch) }

// PrintFixed draws s with its top-left corner at (x, y).
func (c *Canvas1) PrintFixed(x, y int, s string, style FontStyle) {
	printFixed(c, &c.ops, x, y, s, style)
}
