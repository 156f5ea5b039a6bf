package canvas

// FontStyle selects how PrintFixed renders glyphs.
type FontStyle uint8

const (
	StyleNormal FontStyle = iota
	StyleBold
	StyleItalic
)

// Font is a fixed-width bitmap font. Glyphs are stored in the same banked
// layout DrawBitmap1 reads: Pages() rows of Width bytes per glyph, one after
// the other starting with ASCIIOffset.
type Font struct {
	Width       int
	Height      int
	Spacing     int
	ASCIIOffset byte
	Data        []byte
}

// Pages returns the number of 8-pixel banks per glyph.
func (f *Font) Pages() int {
	return (f.Height + 7) / 8
}

// Glyph returns the bitmap of c, or false when c is not part of the font.
func (f *Font) Glyph(c byte) ([]byte, bool) {
	if c < f.ASCIIOffset {
		return nil, false
	}
	size := f.Pages() * f.Width
	start := int(c-f.ASCIIOffset) * size
	if size == 0 || start+size > len(f.Data) {
		return nil, false
	}
	return f.Data[start : start+size], true
}

// TextSize returns the width and height of s printed on a single line.
func (f *Font) TextSize(s string) (w, h int) {
	return len(s) * (f.Width + f.Spacing), f.Height
}

// printChar draws c at the cursor and advances it, applying the wrap policy
// of the current mode.
func printChar(c Canvas, o *ops, ch byte) bool {
	f := o.font
	if f == nil {
		return false
	}
	glyph, ok := f.Glyph(ch)
	if !ok {
		return false
	}
	mode := o.mode
	c.DrawBitmap1(o.cursor.X, o.cursor.Y, f.Width, f.Height, glyph)
	if o.style == StyleBold {
		o.mode |= Transparent
		c.DrawBitmap1(o.cursor.X+1, o.cursor.Y, f.Width, f.Height, glyph)
		o.mode = mode
	}
	o.cursor.X += f.Width + f.Spacing
	wrapLocal := mode&TextWrapLocal != 0 && o.cursor.X > o.w-f.Width
	wrapScreen := mode&TextWrap != 0 && o.cursor.X > o.screenW-f.Width
	if wrapLocal || wrapScreen {
		o.cursor.Y += f.Height
		o.cursor.X = 0
		if mode&TextWrapLocal != 0 && o.cursor.Y > o.h-f.Height {
			o.cursor.Y = 0
		}
	}
	return true
}

func writeChar(c Canvas, o *ops, ch byte) bool {
	switch ch {
	case '\n':
		if o.font != nil {
			o.cursor.Y += o.font.Height
		}
		o.cursor.X = 0
		return true
	case '\r':
		return true
	}
	return printChar(c, o, ch)
}

func write(c Canvas, o *ops, p []byte) (int, error) {
	for _, ch := range p {
		writeChar(c, o, ch)
	}
	return len(p), nil
}

func printFixed(c Canvas, o *ops, x, y int, s string, style FontStyle) {
	saved := o.style
	o.style = style
	o.cursor.X, o.cursor.Y = x, y
	for i := 0; i < len(s); i++ {
		writeChar(c, o, s[i])
	}
	o.style = saved
}
