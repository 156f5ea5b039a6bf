// Package geom provides the integer 2D primitives used by the canvas and the
// tile engine.
//
// A Rect uses inclusive corners: P1 is the top-left pixel and P2 the
// bottom-right pixel, so a 16x16 area starting at the origin is
// Rect{P1: Point{0, 0}, P2: Point{15, 15}}. Callers must keep
// P1.X <= P2.X and P1.Y <= P2.Y; Crop and Contains assume it.
package geom

import (
	"fmt"
	"image"
)

// Point is a position in pixels.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns p+q.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Sub returns p-q.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Div returns p with both coordinates divided by d.
// Division truncates toward zero, d must not be zero.
func (p Point) Div(d int) Point {
	return Point{p.X / d, p.Y / d}
}

// Shr shifts both coordinates right by bits (arithmetic shift).
func (p Point) Shr(bits uint) Point {
	return Point{p.X >> bits, p.Y >> bits}
}

// Shl shifts both coordinates left by bits.
func (p Point) Shl(bits uint) Point {
	return Point{p.X << bits, p.Y << bits}
}

// String returns a readable form of the point.
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Rect is an area described by its inclusive top-left and bottom-right
// corners.
type Rect struct {
	P1, P2 Point
}

// R returns the rectangle with inclusive corners (x1,y1) and (x2,y2).
func R(x1, y1, x2, y2 int) Rect {
	return Rect{Point{x1, y1}, Point{x2, y2}}
}

// RectAt returns the rectangle with top-left corner pos and the given size.
func RectAt(pos, size Point) Rect {
	return Rect{pos, Point{pos.X + size.X - 1, pos.Y + size.Y - 1}}
}

// Width returns P2.X-P1.X+1.
func (r Rect) Width() int {
	return r.P2.X - r.P1.X + 1
}

// Height returns P2.Y-P1.Y+1.
func (r Rect) Height() int {
	return r.P2.Y - r.P1.Y + 1
}

// Size returns the width and height as a point.
func (r Rect) Size() Point {
	return Point{r.Width(), r.Height()}
}

// Move returns r shifted by (dx, dy).
func (r Rect) Move(dx, dy int) Rect {
	return Rect{Point{r.P1.X + dx, r.P1.Y + dy}, Point{r.P2.X + dx, r.P2.Y + dy}}
}

// Add returns r shifted by p.
func (r Rect) Add(p Point) Rect {
	return r.Move(p.X, p.Y)
}

// Sub returns r shifted by -p.
func (r Rect) Sub(p Point) Rect {
	return r.Move(-p.X, -p.Y)
}

// Shr shifts both corners right by bits.
func (r Rect) Shr(bits uint) Rect {
	return Rect{r.P1.Shr(bits), r.P2.Shr(bits)}
}

// Shl shifts both corners left by bits.
func (r Rect) Shl(bits uint) Rect {
	return Rect{r.P1.Shl(bits), r.P2.Shl(bits)}
}

// Crop returns r limited to the area of bounds. The result may be inverted
// (P1 past P2) when the rectangles do not overlap; check with Empty.
func (r Rect) Crop(bounds Rect) Rect {
	if r.P1.X < bounds.P1.X {
		r.P1.X = bounds.P1.X
	}
	if r.P1.Y < bounds.P1.Y {
		r.P1.Y = bounds.P1.Y
	}
	if r.P2.X > bounds.P2.X {
		r.P2.X = bounds.P2.X
	}
	if r.P2.Y > bounds.P2.Y {
		r.P2.Y = bounds.P2.Y
	}
	return r
}

// Empty reports whether r covers no pixel.
func (r Rect) Empty() bool {
	return r.P1.X > r.P2.X || r.P1.Y > r.P2.Y
}

// CollisionX reports whether x lies between the left and right borders.
func (r Rect) CollisionX(x int) bool {
	return x >= r.P1.X && x <= r.P2.X
}

// CollisionY reports whether y lies between the top and bottom borders.
func (r Rect) CollisionY(y int) bool {
	return y >= r.P1.Y && y <= r.P2.Y
}

// Contains reports whether p is inside r.
func (r Rect) Contains(p Point) bool {
	return r.CollisionX(p.X) && r.CollisionY(p.Y)
}

// ContainsRect reports whether both corners of o are inside r.
func (r Rect) ContainsRect(o Rect) bool {
	return r.Contains(o.P1) && r.Contains(o.P2)
}

// ContainsPartOf reports whether either corner of o is inside r.
func (r Rect) ContainsPartOf(o Rect) bool {
	return r.Contains(o.P1) || r.Contains(o.P2)
}

// Overlaps reports whether r and o share at least one pixel.
func (r Rect) Overlaps(o Rect) bool {
	return r.P1.X <= o.P2.X && o.P1.X <= r.P2.X &&
		r.P1.Y <= o.P2.Y && o.P1.Y <= r.P2.Y
}

// Above reports whether p is above r.
func (r Rect) Above(p Point) bool {
	return p.Y < r.P1.Y
}

// Below reports whether p is below r.
func (r Rect) Below(p Point) bool {
	return p.Y > r.P2.Y
}

// Rectangle converts r to the half-open image.Rectangle form.
func (r Rect) Rectangle() image.Rectangle {
	return image.Rect(r.P1.X, r.P1.Y, r.P2.X+1, r.P2.Y+1)
}

// FromRectangle converts a half-open image.Rectangle to a Rect.
func FromRectangle(r image.Rectangle) Rect {
	return Rect{Point{r.Min.X, r.Min.Y}, Point{r.Max.X - 1, r.Max.Y - 1}}
}

// String returns a readable form of the rect.
func (r Rect) String() string {
	return fmt.Sprintf("[%v-%v]", r.P1, r.P2)
}
