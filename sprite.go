package nanoengine

import (
	"github.com/flavioheleno/nanoengine/canvas"
	"github.com/flavioheleno/nanoengine/geom"
)

// Sprite is a monochrome bitmap object in the banked layout DrawBitmap1
// reads. Set bits are drawn with Color, which defaults to white.
type Sprite struct {
	Node
	Color  uint16
	bitmap []byte
}

// NewSprite returns a sprite of the given size at pos.
func NewSprite(pos, size geom.Point, bitmap []byte) *Sprite {
	return &Sprite{Node: NewNode(pos, size), Color: 0xFFFF, bitmap: bitmap}
}

// Draw implements Object.
func (s *Sprite) Draw(c canvas.Canvas) {
	c.SetColor(s.Color)
	c.DrawBitmap1(s.rect.P1.X, s.rect.P1.Y, s.rect.Width(), s.rect.Height(), s.bitmap)
}

// SetBitmap replaces the sprite image and schedules a redraw.
func (s *Sprite) SetBitmap(bitmap []byte) {
	s.bitmap = bitmap
	s.Refresh()
}

// Bitmap returns the sprite image.
func (s *Sprite) Bitmap() []byte { return s.bitmap }

// Top returns the middle of the top edge.
func (s *Sprite) Top() geom.Point {
	return geom.Pt((s.rect.P1.X+s.rect.P2.X)/2, s.rect.P1.Y)
}

// Bottom returns the middle of the bottom edge.
func (s *Sprite) Bottom() geom.Point {
	return geom.Pt((s.rect.P1.X+s.rect.P2.X)/2, s.rect.P2.Y)
}

// Left returns the middle of the left edge.
func (s *Sprite) Left() geom.Point {
	return geom.Pt(s.rect.P1.X, (s.rect.P1.Y+s.rect.P2.Y)/2)
}

// Right returns the middle of the right edge.
func (s *Sprite) Right() geom.Point {
	return geom.Pt(s.rect.P2.X, (s.rect.P1.Y+s.rect.P2.Y)/2)
}

// Center returns the middle of the sprite.
func (s *Sprite) Center() geom.Point {
	return geom.Pt((s.rect.P1.X+s.rect.P2.X)/2, (s.rect.P1.Y+s.rect.P2.Y)/2)
}

// Box is a rectangle object, outlined or filled with its own color.
type Box struct {
	Node
	Color  uint16
	Filled bool
}

// NewBox returns a box of the given size at pos.
func NewBox(pos, size geom.Point, color uint16, filled bool) *Box {
	return &Box{Node: NewNode(pos, size), Color: color, Filled: filled}
}

// Draw implements Object.
func (b *Box) Draw(c canvas.Canvas) {
	c.SetColor(b.Color)
	if b.Filled {
		canvas.FillRectangle(c, b.rect)
		return
	}
	canvas.DrawRectangle(c, b.rect)
}
