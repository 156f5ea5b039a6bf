package canvas

import (
	"image"
	"image/color"
)

// Image exposes c as a read-only image.Image in buffer space, so bounds
// start at (0,0) whatever the canvas offset is.
func Image(c Canvas) image.Image {
	return canvasImage{c}
}

type canvasImage struct {
	c Canvas
}

// ColorModel implements image.Image.
func (m canvasImage) ColorModel() color.Model {
	return color.RGBAModel
}

// Bounds implements image.Image.
func (m canvasImage) Bounds() image.Rectangle {
	return image.Rect(0, 0, m.c.Width(), m.c.Height())
}

// At implements image.Image.
func (m canvasImage) At(x, y int) color.Color {
	off := m.c.Offset()
	return ColorOf(m.c.BitsPerPixel(), m.c.Pixel(x+off.X, y+off.Y))
}
