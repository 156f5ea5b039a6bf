package canvas

import (
	"bytes"
	"testing"

	"github.com/flavioheleno/nanoengine/geom"
)

// testFont has two 3x8 glyphs, 'A' and 'B'.
func testFont() *Font {
	return &Font{
		Width:       3,
		Height:      8,
		ASCIIOffset: 'A',
		Data: []byte{
			0xFF, 0x81, 0xFF, // A
			0x01, 0x02, 0x04, // B
		},
	}
}

func TestFontGlyph(t *testing.T) {
	f := testFont()
	if f.Pages() != 1 {
		t.Errorf("Pages = %d, want 1", f.Pages())
	}
	if g, ok := f.Glyph('B'); !ok || !bytes.Equal(g, []byte{0x01, 0x02, 0x04}) {
		t.Errorf("Glyph('B') = % x, %v", g, ok)
	}
	for _, c := range []byte{'@', 'C', 0} {
		if _, ok := f.Glyph(c); ok {
			t.Errorf("Glyph(%q) reported present", c)
		}
	}
	if w, h := f.TextSize("ABAB"); w != 12 || h != 8 {
		t.Errorf("TextSize = %d,%d", w, h)
	}
}

func newTextCanvas(t *testing.T, w, h int) *Canvas1 {
	t.Helper()
	c, err := New1(w, h, make([]byte, Size1(w, h)))
	if err != nil {
		t.Fatal(err)
	}
	c.SetFont(testFont())
	c.SetColor(1)
	return c
}

func TestPrintFixed(t *testing.T) {
	c := newTextCanvas(t, 8, 8)
	c.PrintFixed(0, 0, "AB", StyleNormal)
	if want := []byte{0xFF, 0x81, 0xFF, 0x01, 0x02, 0x04, 0, 0}; !bytes.Equal(c.Buffer(), want) {
		t.Errorf("buffer = % x, want % x", c.Buffer(), want)
	}
	if got := c.Cursor(); got != geom.Pt(6, 0) {
		t.Errorf("cursor = %v, want (6,0)", got)
	}
}

func TestPrintFixedBold(t *testing.T) {
	c := newTextCanvas(t, 8, 8)
	c.PrintFixed(0, 0, "B", StyleBold)
	if want := []byte{0x01, 0x03, 0x06, 0x04, 0, 0, 0, 0}; !bytes.Equal(c.Buffer(), want) {
		t.Errorf("buffer = % x, want % x", c.Buffer(), want)
	}
	if c.Mode() != ModeBasic {
		t.Errorf("mode = %v after bold print, want restored", c.Mode())
	}
}

func TestPrintCharUnknown(t *testing.T) {
	c := newTextCanvas(t, 8, 8)
	if c.PrintChar('z') {
		t.Error("PrintChar of a missing glyph returned true")
	}
	if c.Cursor() != (geom.Point{}) {
		t.Error("cursor moved for a missing glyph")
	}
	c.SetFont(nil)
	if c.PrintChar('A') {
		t.Error("PrintChar without a font returned true")
	}
}

func TestWriteControlChars(t *testing.T) {
	c := newTextCanvas(t, 16, 16)
	n, err := c.Write([]byte("A\r\nB"))
	if err != nil || n != 4 {
		t.Fatalf("Write = %d, %v", n, err)
	}
	if got := c.Cursor(); got != geom.Pt(3, 8) {
		t.Errorf("cursor = %v, want (3,8)", got)
	}
	if c.Pixel(0, 8) != 1 || c.Pixel(3, 8) != 0 {
		t.Error("'B' not printed on the second line")
	}
}

func TestTextWrap(t *testing.T) {
	tests := []struct {
		name        string
		mode        Mode
		screenWidth int
		text        string
		want        geom.Point
	}{
		{"no wrap", ModeBasic, 0, "AAA", geom.Pt(9, 0)},
		{"local wrap", TextWrapLocal, 0, "AAA", geom.Pt(3, 8)},
		{"local wrap returns to top", TextWrapLocal, 0, "AAAA", geom.Pt(0, 0)},
		{"screen wider than canvas", TextWrap, 100, "AAA", geom.Pt(9, 0)},
		{"screen wrap", TextWrap, 9, "AAA", geom.Pt(0, 8)},
		{"screen wrap keeps going down", TextWrap, 9, "AAAAAA", geom.Pt(0, 16)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTextCanvas(t, 8, 16)
			c.SetMode(tt.mode)
			if tt.screenWidth > 0 {
				c.SetScreenWidth(tt.screenWidth)
			}
			c.Write([]byte(tt.text))
			if got := c.Cursor(); got != tt.want {
				t.Errorf("cursor = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTextOnColorCanvas(t *testing.T) {
	c, _ := New16(8, 8, make([]byte, 8*8*2))
	c.SetFont(testFont())
	c.SetColor(0xF800)
	c.PrintFixed(0, 0, "A", StyleNormal)
	if c.Pixel(1, 0) != 0xF800 || c.Pixel(1, 3) != 0 || c.Pixel(1, 7) != 0xF800 {
		t.Error("glyph 'A' not rendered on the 16-bit canvas")
	}
}
