// Package canvas draws into caller-supplied pixel buffers of 1, 4, 8 or 16
// bits per pixel.
//
// A canvas never owns its buffer and never allocates after construction.
// Every draw call takes coordinates in the canvas's translated frame: the
// canvas subtracts its offset before touching the buffer, so a tile canvas
// whose offset is the tile's world position accepts world coordinates.
//
// Drawing never fails. Anything that falls outside [0,width)x[0,height)
// after translation is clipped, and a call that is entirely outside draws
// nothing. Configuration problems, such as a buffer too small for the
// declared size, are reported by the constructors instead.
package canvas

import (
	"errors"
	"fmt"

	"github.com/flavioheleno/nanoengine/geom"
)

// ErrBufferTooSmall is returned when a buffer cannot hold the declared canvas size.
var ErrBufferTooSmall = errors.New("canvas: buffer too small for canvas size")

// Mode is a set of drawing flags.
type Mode uint8

const (
	// ModeBasic draws bitmaps opaque and never wraps text.
	ModeBasic Mode = 0
	// TextWrap moves the text cursor to a new line when the screen width is reached.
	TextWrap Mode = 1 << 0
	// Transparent keeps destination pixels under zero source pixels.
	Transparent Mode = 1 << 1
	// TextWrapLocal moves the text cursor to a new line when the canvas width is reached.
	TextWrapLocal Mode = 1 << 2
)

// Canvas is the drawing surface shared by every bit depth.
type Canvas interface {
	Width() int
	Height() int
	BitsPerPixel() int
	// Buffer returns the borrowed pixel buffer, trimmed to the canvas size.
	Buffer() []byte

	Offset() geom.Point
	SetOffset(x, y int)
	Color() uint16
	SetColor(c uint16)
	Mode() Mode
	SetMode(m Mode)
	Font() *Font
	SetFont(f *Font)
	Cursor() geom.Point
	SetCursor(x, y int)
	// SetScreenWidth sets the width used by the TextWrap policy.
	SetScreenWidth(w int)

	// Clear zeroes the buffer. Offset and state are kept.
	Clear()
	// Pixel returns the raw pixel value at (x, y), or 0 outside the canvas.
	Pixel(x, y int) uint16

	PutPixel(x, y int)
	DrawHLine(x1, y, x2 int)
	DrawVLine(x, y1, y2 int)
	DrawLine(x1, y1, x2, y2 int)
	DrawRect(x1, y1, x2, y2 int)
	FillRect(x1, y1, x2, y2 int)

	// DrawBitmap1 draws a monochrome bitmap stored as 8 vertical pixels per
	// byte, w bytes per bank row.
	DrawBitmap1(x, y, w, h int, bitmap []byte)
	// DrawXBitmap1 draws a monochrome bitmap in XBM layout: rows of
	// (w+7)/8 bytes, least significant bit leftmost.
	DrawXBitmap1(x, y, w, h int, bitmap []byte)
	// DrawBitmap8 draws an RGB 3-3-2 bitmap, one byte per pixel.
	DrawBitmap8(x, y, w, h int, bitmap []byte)
	// DrawBitmap16 draws an RGB 5-6-5 bitmap, two bytes per pixel, high byte first.
	DrawBitmap16(x, y, w, h int, bitmap []byte)

	// WriteChar prints c at the cursor, handling '\n' and '\r'.
	WriteChar(c byte) bool
	// Write prints p at the cursor. It always consumes all of p.
	Write(p []byte) (int, error)
	PrintChar(c byte) bool
	PrintFixed(x, y int, s string, style FontStyle)
}

var (
	_ Canvas = (*Canvas1)(nil)
	_ Canvas = (*Canvas4)(nil)
	_ Canvas = (*Canvas8)(nil)
	_ Canvas = (*Canvas16)(nil)
)

// ops holds the state common to every canvas flavour.
type ops struct {
	w, h    int
	buf     []byte
	offset  geom.Point
	color   uint16
	mode    Mode
	font    *Font
	style   FontStyle
	cursor  geom.Point
	screenW int
}

func newOps(w, h int, buf []byte, size int) (ops, error) {
	if w <= 0 || h <= 0 {
		return ops{}, fmt.Errorf("canvas: invalid size %dx%d", w, h)
	}
	if len(buf) < size {
		return ops{}, fmt.Errorf("%w: %dx%d needs %d bytes, got %d", ErrBufferTooSmall, w, h, size, len(buf))
	}
	return ops{w: w, h: h, buf: buf[:size], color: 0xFFFF, screenW: w}, nil
}

// Width returns the canvas width in pixels.
func (o *ops) Width() int { return o.w }

// Height returns the canvas height in pixels.
func (o *ops) Height() int { return o.h }

// Buffer returns the pixel buffer the canvas draws into.
func (o *ops) Buffer() []byte { return o.buf }

// Offset returns the world position of the canvas top-left pixel.
func (o *ops) Offset() geom.Point { return o.offset }

// SetOffset moves the canvas to (x, y) in world coordinates.
func (o *ops) SetOffset(x, y int) { o.offset = geom.Point{X: x, Y: y} }

// Color returns the drawing color.
func (o *ops) Color() uint16 { return o.color }

// SetColor sets the drawing color, in the canvas pixel format.
func (o *ops) SetColor(c uint16) { o.color = c }

// Mode returns the drawing flags.
func (o *ops) Mode() Mode { return o.mode }

// SetMode sets the drawing flags.
func (o *ops) SetMode(m Mode) { o.mode = m }

// Font returns the font used by the text functions.
func (o *ops) Font() *Font { return o.font }

// SetFont sets the font used by the text functions.
func (o *ops) SetFont(f *Font) { o.font = f }

// Cursor returns the text cursor position.
func (o *ops) Cursor() geom.Point { return o.cursor }

// SetCursor moves the text cursor.
func (o *ops) SetCursor(x, y int) { o.cursor = geom.Point{X: x, Y: y} }

// SetScreenWidth sets the width at which TextWrap breaks lines.
func (o *ops) SetScreenWidth(w int) { o.screenW = w }

func (o *ops) transparent() bool { return o.mode&Transparent != 0 }
func (o *ops) inside(x, y int) bool { return x >= 0 && y >= 0 && x < o.w && y < o.h }
func (o *ops) local(x, y int) (int, int) { return x - o.offset.X, y - o.offset.Y }

// Clear sets every pixel of the buffer to zero.
func (o *ops) Clear() {
	clear(o.buf)
}

// clipRect orders the corners, translates them into buffer space and clips
// them to the canvas. ok is false when nothing is left to draw.
func (o *ops) clipRect(x1, y1, x2, y2 int) (lx1, ly1, lx2, ly2 int, ok bool) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	x1, y1 = o.local(x1, y1)
	x2, y2 = o.local(x2, y2)
	if x2 < 0 || x1 >= o.w || y2 < 0 || y1 >= o.h {
		return 0, 0, 0, 0, false
	}
	return max(x1, 0), max(y1, 0), min(x2, o.w-1), min(y2, o.h-1), true
}

// span is the visible part of a w x h source placed at a translated position.
type span struct {
	dx, dy int // first destination pixel, buffer space
	sx, sy int // matching source pixel
	w, h   int // visible size
}

func (o *ops) clipSource(x, y, w, h int) (span, bool) {
	if w <= 0 || h <= 0 {
		return span{}, false
	}
	x, y = o.local(x, y)
	x1, y1 := max(x, 0), max(y, 0)
	x2, y2 := min(x+w-1, o.w-1), min(y+h-1, o.h-1)
	if x1 > x2 || y1 > y2 {
		return span{}, false
	}
	return span{dx: x1, dy: y1, sx: x1 - x, sy: y1 - y, w: x2 - x1 + 1, h: y2 - y1 + 1}, true
}

// format is implemented by every canvas flavour so the shared bitmap code can
// write converted pixels in buffer space.
type format interface {
	setLocal(x, y int, c uint16)
	from332(v uint8) uint16
	from565(v uint16) uint16
}

func drawBitmap1Pixels(f format, o *ops, x, y, w, h int, bitmap []byte) {
	s, ok := o.clipSource(x, y, w, h)
	if !ok {
		return
	}
	transparent := o.transparent()
	for row := 0; row < s.h; row++ {
		sy := s.sy + row
		base := (sy >> 3) * w
		bit := uint(sy & 7)
		for col := 0; col < s.w; col++ {
			i := base + s.sx + col
			on := i < len(bitmap) && bitmap[i]&(1<<bit) != 0
			switch {
			case on:
				f.setLocal(s.dx+col, s.dy+row, o.color)
			case !transparent:
				f.setLocal(s.dx+col, s.dy+row, 0)
			}
		}
	}
}

func drawXBitmap1Pixels(f format, o *ops, x, y, w, h int, bitmap []byte) {
	s, ok := o.clipSource(x, y, w, h)
	if !ok {
		return
	}
	stride := (w + 7) / 8
	transparent := o.transparent()
	for row := 0; row < s.h; row++ {
		base := (s.sy + row) * stride
		for col := 0; col < s.w; col++ {
			sx := s.sx + col
			i := base + sx>>3
			on := i < len(bitmap) && bitmap[i]&(1<<uint(sx&7)) != 0
			switch {
			case on:
				f.setLocal(s.dx+col, s.dy+row, o.color)
			case !transparent:
				f.setLocal(s.dx+col, s.dy+row, 0)
			}
		}
	}
}

func drawBitmap8Pixels(f format, o *ops, x, y, w, h int, bitmap []byte) {
	s, ok := o.clipSource(x, y, w, h)
	if !ok {
		return
	}
	transparent := o.transparent()
	for row := 0; row < s.h; row++ {
		base := (s.sy+row)*w + s.sx
		for col := 0; col < s.w; col++ {
			if base+col >= len(bitmap) {
				return
			}
			v := bitmap[base+col]
			if v != 0 || !transparent {
				f.setLocal(s.dx+col, s.dy+row, f.from332(v))
			}
		}
	}
}

func drawBitmap16Pixels(f format, o *ops, x, y, w, h int, bitmap []byte) {
	s, ok := o.clipSource(x, y, w, h)
	if !ok {
		return
	}
	transparent := o.transparent()
	for row := 0; row < s.h; row++ {
		base := ((s.sy+row)*w + s.sx) * 2
		for col := 0; col < s.w; col++ {
			i := base + col*2
			if i+1 >= len(bitmap) {
				return
			}
			v := uint16(bitmap[i])<<8 | uint16(bitmap[i+1])
			if v != 0 || !transparent {
				f.setLocal(s.dx+col, s.dy+row, f.from565(v))
			}
		}
	}
}

// drawLine rasterizes a segment with Bresenham's algorithm through PutPixel.
// Both end points are drawn.
func drawLine(c Canvas, x1, y1, x2, y2 int) {
	dx, dy := abs(x2-x1), -abs(y2-y1)
	sx, sy := 1, 1
	if x1 > x2 {
		sx = -1
	}
	if y1 > y2 {
		sy = -1
	}
	err := dx + dy
	for {
		c.PutPixel(x1, y1)
		if x1 == x2 && y1 == y2 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x1 += sx
		}
		if e2 <= dx {
			err += dx
			y1 += sy
		}
	}
}

func drawRect(c Canvas, x1, y1, x2, y2 int) {
	c.DrawHLine(x1, y1, x2)
	c.DrawHLine(x1, y2, x2)
	c.DrawVLine(x1, y1, y2)
	c.DrawVLine(x2, y1, y2)
}

// DrawRectangle outlines r on c.
func DrawRectangle(c Canvas, r geom.Rect) {
	c.DrawRect(r.P1.X, r.P1.Y, r.P2.X, r.P2.Y)
}

// FillRectangle fills r on c.
func FillRectangle(c Canvas, r geom.Rect) {
	c.FillRect(r.P1.X, r.P1.Y, r.P2.X, r.P2.Y)
}

// Bounds returns the area covered by c in its translated frame.
func Bounds(c Canvas) geom.Rect {
	return geom.RectAt(c.Offset(), geom.Point{X: c.Width(), Y: c.Height()})
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
