package fonts

import (
	"errors"
	"testing"

	"golang.org/x/image/font/basicfont"

	"github.com/flavioheleno/nanoengine/canvas"
)

func TestBasic7x13(t *testing.T) {
	f := Basic7x13
	if f.Width != 7 || f.Height != 13 || f.Pages() != 2 {
		t.Fatalf("size = %dx%d (%d pages), want 7x13 (2 pages)", f.Width, f.Height, f.Pages())
	}
	if len(f.Data) != 95*14 {
		t.Fatalf("len(Data) = %d, want %d", len(f.Data), 95*14)
	}
	space, ok := f.Glyph(' ')
	if !ok {
		t.Fatal("space missing")
	}
	for _, b := range space {
		if b != 0 {
			t.Fatalf("space glyph = % x, want blank", space)
		}
	}
	if _, ok := f.Glyph(0x7F); ok {
		t.Error("DEL should be outside the range")
	}
}

func TestGlyphRendersOnCanvas(t *testing.T) {
	c, err := canvas.New1(8, 16, make([]byte, canvas.Size1(8, 16)))
	if err != nil {
		t.Fatal(err)
	}
	c.SetFont(Basic7x13)
	c.SetColor(1)
	if !c.PrintChar('|') {
		t.Fatal("PrintChar('|') = false")
	}
	// '|' is a single vertical bar.
	best := 0
	for x := 0; x < 7; x++ {
		n := 0
		for y := 0; y < 13; y++ {
			if c.Pixel(x, y) != 0 {
				n++
			}
		}
		best = max(best, n)
	}
	if best < 8 {
		t.Errorf("tallest column has %d pixels, want a bar", best)
	}
	if c.Cursor().X != 7 {
		t.Errorf("cursor x = %d, want 7", c.Cursor().X)
	}
}

func TestFromFaceRange(t *testing.T) {
	if _, err := FromFace(basicfont.Face7x13, 'z', 'a'); !errors.Is(err, ErrRange) {
		t.Errorf("err = %v, want ErrRange", err)
	}
	f, err := FromFace(basicfont.Face7x13, '0', '9')
	if err != nil {
		t.Fatal(err)
	}
	if f.ASCIIOffset != '0' || len(f.Data) != 10*f.Pages()*f.Width {
		t.Errorf("offset %q, %d bytes", f.ASCIIOffset, len(f.Data))
	}
}

func TestGoMono(t *testing.T) {
	f, err := GoMono(12)
	if err != nil {
		t.Fatal(err)
	}
	if f.Width < 5 || f.Height < 10 {
		t.Errorf("size = %dx%d", f.Width, f.Height)
	}
	g, _ := f.Glyph('W')
	blank := true
	for _, b := range g {
		if b != 0 {
			blank = false
		}
	}
	if blank {
		t.Error("'W' rendered blank")
	}
}
