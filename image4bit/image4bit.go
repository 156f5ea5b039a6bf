// Package image4bit provides the 4-bit grayscale pixel format shared by 4bpp
// canvases and the SSD1322 display sink.
//
// Pixels are stored in horizontal nibble packing where each byte contains 2 pixels.
// High nibble represents the left (even x) pixel, low nibble the right (odd x) pixel.
// Rows are padded to a whole byte, so odd widths are allowed.
package image4bit

import (
	"errors"
	"image"
	"image/color"
)

// ErrShortBuffer is returned by Wrap when the pixel slice cannot hold the bounds.
var ErrShortBuffer = errors.New("image4bit: buffer too small for bounds")

// Gray4 represents a 4-bit grayscale color (0-15 intensity levels).
// Only the lower 4 bits of Y are used.
type Gray4 struct {
	Y uint8
}

// RGBA converts the Gray4 color to standard RGBA.
func (c Gray4) RGBA() (r, g, b, a uint32) {
	// 0xF * 0x1111 = 0xFFFF
	y := uint32(c.Y&0x0F) * 0x1111
	return y, y, y, 0xFFFF
}

// Level converts 8-bit RGB components to a 4-bit gray level using the
// 0.299R + 0.587G + 0.114B luma weights.
func Level(r, g, b uint8) uint8 {
	y := (299*uint32(r) + 587*uint32(g) + 114*uint32(b) + 500) / 1000
	return uint8(y >> 4)
}

func toGray4(c color.Color) color.Color {
	if g, ok := c.(Gray4); ok {
		return g
	}
	r, g, b, _ := c.RGBA()
	return Gray4{Y: Level(uint8(r>>8), uint8(g>>8), uint8(b>>8))}
}

// Gray4Model converts colors to Gray4.
var Gray4Model = color.ModelFunc(toGray4)

// Stride returns the number of bytes used by one row of w pixels.
func Stride(w int) int {
	return (w + 1) / 2
}

// HorizontalNibble is a 4-bit grayscale image where pixels are stored in horizontal nibble packing.
type HorizontalNibble struct {
	Pix    []byte          // Pixel data (2 pixels per byte)
	Stride int             // Bytes per row
	Rect   image.Rectangle // Image bounds
}

// NewHorizontalNibble allocates a HorizontalNibble image with the specified bounds.
func NewHorizontalNibble(r image.Rectangle) *HorizontalNibble {
	w, h := r.Dx(), r.Dy()
	if w <= 0 || h <= 0 {
		return &HorizontalNibble{Rect: r}
	}
	stride := Stride(w)
	return &HorizontalNibble{
		Pix:    make([]byte, stride*h),
		Stride: stride,
		Rect:   r,
	}
}

// Wrap returns a HorizontalNibble image backed by pix without copying it.
// The caller keeps ownership of pix; writes through the image modify it.
func Wrap(r image.Rectangle, pix []byte) (*HorizontalNibble, error) {
	stride := Stride(r.Dx())
	if r.Dx() < 0 || r.Dy() < 0 || len(pix) < stride*r.Dy() {
		return nil, ErrShortBuffer
	}
	return &HorizontalNibble{Pix: pix, Stride: stride, Rect: r}, nil
}

// ColorModel returns the color model of the image.
func (p *HorizontalNibble) ColorModel() color.Model {
	return Gray4Model
}

// Bounds returns the image bounds.
func (p *HorizontalNibble) Bounds() image.Rectangle {
	return p.Rect
}

// At returns the color of the pixel at (x, y).
func (p *HorizontalNibble) At(x, y int) color.Color {
	return p.Gray4At(x, y)
}

// Gray4At returns the Gray4 color of the pixel at (x, y).
func (p *HorizontalNibble) Gray4At(x, y int) Gray4 {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return Gray4{}
	}
	offset, shift := p.PixOffset(x, y)
	return Gray4{Y: (p.Pix[offset] >> shift) & 0x0F}
}

// Set sets the color of the pixel at (x, y).
func (p *HorizontalNibble) Set(x, y int, c color.Color) {
	p.SetGray4(x, y, Gray4Model.Convert(c).(Gray4))
}

// SetGray4 sets the Gray4 color of the pixel at (x, y) without color conversion.
func (p *HorizontalNibble) SetGray4(x, y int, c Gray4) {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return
	}
	offset, shift := p.PixOffset(x, y)
	p.Pix[offset] = SetNibble(p.Pix[offset], shift, c.Y)
}

// Fill sets every pixel of the image to c.
func (p *HorizontalNibble) Fill(c Gray4) {
	v := (c.Y&0x0F)<<4 | c.Y&0x0F
	for i := range p.Pix[:p.Stride*p.Rect.Dy()] {
		p.Pix[i] = v
	}
}

// PixOffset returns the byte offset and bit shift for the pixel at (x, y).
// Even x uses the high nibble (shift 4), odd x the low nibble (shift 0).
func (p *HorizontalNibble) PixOffset(x, y int) (offset int, shift uint) {
	offset = (y-p.Rect.Min.Y)*p.Stride + (x-p.Rect.Min.X)/2
	shift = NibbleShift(x - p.Rect.Min.X)
	return
}

// NibbleShift returns the bit shift of column x within its byte.
func NibbleShift(x int) uint {
	return uint(4 * (1 - (x & 1)))
}

// SetNibble returns b with the nibble at shift replaced by the low 4 bits of v.
func SetNibble(b byte, shift uint, v uint8) byte {
	return (b &^ (0x0F << shift)) | ((v & 0x0F) << shift)
}
