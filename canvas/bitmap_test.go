package canvas

import "testing"

func TestDrawXBitmap1(t *testing.T) {
	// 3x2 XBM: row 0 = X.X, row 1 = .X.
	xbm := []byte{0x05, 0x02}
	for name, c := range newCanvases(t, 4, 4) {
		t.Run(name, func(t *testing.T) {
			col := colorFor(c)
			c.SetColor(col)
			c.DrawXBitmap1(1, 1, 3, 2, xbm)
			want := map[[2]int]bool{{1, 1}: true, {3, 1}: true, {2, 2}: true}
			for y := 0; y < 4; y++ {
				for x := 0; x < 4; x++ {
					exp := uint16(0)
					if want[[2]int{x, y}] {
						exp = col
					}
					if got := c.Pixel(x, y); got != exp {
						t.Errorf("Pixel(%d,%d) = %#x, want %#x", x, y, got, exp)
					}
				}
			}
		})
	}
}

func TestDrawBitmap1OnColorCanvasOpaque(t *testing.T) {
	c, _ := New8(2, 8, make([]byte, 16))
	c.SetColor(0xFF)
	c.FillRect(0, 0, 1, 7)
	c.SetColor(0x1C)
	c.DrawBitmap1(0, 0, 1, 8, []byte{0x01})
	if c.Pixel(0, 0) != 0x1C || c.Pixel(0, 1) != 0 {
		t.Errorf("opaque draw = %#x %#x", c.Pixel(0, 0), c.Pixel(0, 1))
	}
	c.SetColor(0xE0)
	c.SetMode(Transparent)
	c.DrawBitmap1(1, 0, 1, 8, []byte{0x02})
	if c.Pixel(1, 0) != 0xFF || c.Pixel(1, 1) != 0xE0 {
		t.Errorf("transparent draw = %#x %#x", c.Pixel(1, 0), c.Pixel(1, 1))
	}
}

func TestDrawBitmap8(t *testing.T) {
	src := []byte{
		0xE0, 0x00, 0x1C,
		0x03, 0xFF, 0x00,
	}
	t.Run("8bpp copy with clipping", func(t *testing.T) {
		c, _ := New8(2, 2, make([]byte, 4))
		c.DrawBitmap8(-1, 0, 3, 2, src)
		if got := c.Buffer(); got[0] != 0x00 || got[1] != 0x1C || got[2] != 0xFF || got[3] != 0x00 {
			t.Errorf("buffer = % x", got)
		}
	})
	t.Run("8bpp transparent", func(t *testing.T) {
		c, _ := New8(3, 2, []byte{9, 9, 9, 9, 9, 9})
		c.SetMode(Transparent)
		c.DrawBitmap8(0, 0, 3, 2, src)
		if got := c.Buffer(); got[1] != 9 || got[5] != 9 || got[0] != 0xE0 {
			t.Errorf("buffer = % x", got)
		}
	})
	t.Run("16bpp widens", func(t *testing.T) {
		c, _ := New16(3, 2, make([]byte, 12))
		c.DrawBitmap8(0, 0, 3, 2, src)
		if got := c.Pixel(0, 0); got != RGB8To16(0xE0) {
			t.Errorf("Pixel(0,0) = %#x", got)
		}
		if got := c.Pixel(1, 1); got != RGB8To16(0xFF) {
			t.Errorf("Pixel(1,1) = %#x", got)
		}
	})
	t.Run("4bpp grays", func(t *testing.T) {
		c, _ := New4(3, 2, make([]byte, Size4(3, 2)))
		c.DrawBitmap8(0, 0, 3, 2, src)
		if got := c.Pixel(1, 1); got != 0x0F {
			t.Errorf("white = %#x", got)
		}
		if got := c.Pixel(1, 0); got != 0 {
			t.Errorf("black = %#x", got)
		}
	})
}

func TestDrawBitmap16(t *testing.T) {
	src := []byte{0xF8, 0x00, 0x00, 0x00, 0x07, 0xE0, 0xFF, 0xFF}
	t.Run("16bpp copy keeps byte order", func(t *testing.T) {
		c, _ := New16(2, 2, make([]byte, 8))
		c.DrawBitmap16(0, 0, 2, 2, src)
		if c.Pixel(0, 0) != 0xF800 || c.Pixel(0, 1) != 0x07E0 || c.Pixel(1, 1) != 0xFFFF {
			t.Errorf("buffer = % x", c.Buffer())
		}
	})
	t.Run("16bpp transparent", func(t *testing.T) {
		c, _ := New16(2, 2, make([]byte, 8))
		c.SetColor(0x1234)
		c.FillRect(0, 0, 1, 1)
		c.SetMode(Transparent)
		c.DrawBitmap16(0, 0, 2, 2, src)
		if c.Pixel(1, 0) != 0x1234 || c.Pixel(0, 0) != 0xF800 {
			t.Errorf("buffer = % x", c.Buffer())
		}
	})
	t.Run("8bpp narrows", func(t *testing.T) {
		c, _ := New8(2, 2, make([]byte, 4))
		c.DrawBitmap16(0, 0, 2, 2, src)
		if c.Pixel(0, 0) != 0xE0 || c.Pixel(0, 1) != 0x1C || c.Pixel(1, 1) != 0xFF {
			t.Errorf("buffer = % x", c.Buffer())
		}
	})
	t.Run("1bpp thresholds non-zero", func(t *testing.T) {
		c, _ := New1(2, 2, make([]byte, Size1(2, 2)))
		c.DrawBitmap16(0, 0, 2, 2, src)
		if c.Pixel(0, 0) != 1 || c.Pixel(1, 0) != 0 || c.Pixel(1, 1) != 1 {
			t.Errorf("buffer = % x", c.Buffer())
		}
	})
}

func TestCanvas4Layout(t *testing.T) {
	c, _ := New4(6, 2, make([]byte, Size4(6, 2)))
	c.SetColor(0x0A)
	c.PutPixel(0, 0)
	c.SetColor(0x05)
	c.PutPixel(1, 0)
	c.SetColor(0x0F)
	c.DrawHLine(1, 1, 4)
	want := []byte{0xA5, 0x00, 0x00, 0x0F, 0xFF, 0xF0}
	for i, b := range c.Buffer() {
		if b != want[i] {
			t.Fatalf("buffer = % x, want % x", c.Buffer(), want)
		}
	}
}

func TestCanvas16ByteOrder(t *testing.T) {
	c, _ := New16(2, 1, make([]byte, 4))
	c.SetColor(0x1234)
	c.PutPixel(1, 0)
	if b := c.Buffer(); b[2] != 0x12 || b[3] != 0x34 {
		t.Errorf("buffer = % x, want high byte first", b)
	}
}
