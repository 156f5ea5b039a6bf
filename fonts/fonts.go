// Package fonts converts golang.org/x/image font faces into the fixed-width
// banked bitmap fonts printed by package canvas.
package fonts

import (
	"errors"
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/flavioheleno/nanoengine/canvas"
)

// ErrRange is returned for an empty character range.
var ErrRange = errors.New("fonts: invalid character range")

// Basic7x13 is the printable ASCII range of basicfont.Face7x13: 7 pixels
// wide, 13 pixels high, two banks per glyph.
var Basic7x13 = mustFromFace(basicfont.Face7x13, ' ', '~')

func mustFromFace(face font.Face, first, last byte) *canvas.Font {
	f, err := FromFace(face, first, last)
	if err != nil {
		panic(err)
	}
	return f
}

// FromFace rasterizes characters first to last of face. The cell width is
// the widest advance in the range and the height is ascent plus descent.
// A pixel is set when the glyph mask is at least half opaque.
func FromFace(face font.Face, first, last byte) (*canvas.Font, error) {
	if last < first {
		return nil, fmt.Errorf("%w: %q-%q", ErrRange, first, last)
	}
	m := face.Metrics()
	ascent := m.Ascent.Ceil()
	height := ascent + m.Descent.Ceil()
	width := 0
	for c := int(first); c <= int(last); c++ {
		if adv, ok := face.GlyphAdvance(rune(c)); ok && adv.Ceil() > width {
			width = adv.Ceil()
		}
	}
	if width == 0 || height <= 0 {
		return nil, fmt.Errorf("%w: face has no glyphs in %q-%q", ErrRange, first, last)
	}

	f := &canvas.Font{Width: width, Height: height, ASCIIOffset: first}
	size := f.Pages() * width
	f.Data = make([]byte, (int(last)-int(first)+1)*size)
	for c := int(first); c <= int(last); c++ {
		glyph := f.Data[(c-int(first))*size:][:size]
		dr, mask, maskp, _, ok := face.Glyph(fixed.P(0, ascent), rune(c))
		if !ok {
			continue
		}
		for y := max(dr.Min.Y, 0); y < min(dr.Max.Y, height); y++ {
			for x := max(dr.Min.X, 0); x < min(dr.Max.X, width); x++ {
				_, _, _, a := mask.At(maskp.X+x-dr.Min.X, maskp.Y+y-dr.Min.Y).RGBA()
				if a >= 0x8000 {
					glyph[(y/8)*width+x] |= 1 << uint(y%8)
				}
			}
		}
	}
	return f, nil
}

// GoMono rasterizes the printable ASCII range of the Go Mono typeface at
// size points and 72 DPI.
func GoMono(size float64) (*canvas.Font, error) {
	ttf, err := opentype.Parse(gomono.TTF)
	if err != nil {
		return nil, fmt.Errorf("fonts: parse gomono: %w", err)
	}
	face, err := opentype.NewFace(ttf, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("fonts: gomono face: %w", err)
	}
	defer face.Close()
	return FromFace(face, ' ', '~')
}
