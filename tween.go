package nanoengine

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/flavioheleno/nanoengine/geom"
)

// Tween moves a node towards a target position over time. Call Update once
// per frame; the node is moved with MoveTo, so both the old and the new area
// are redrawn, and only when its pixel position actually changes.
type Tween struct {
	x, y   *gween.Tween
	target *Node
	Done   bool
}

// TweenPosition creates a tween moving n from its current position to "to"
// over duration seconds using fn.
func TweenPosition(n *Node, to geom.Point, duration float32, fn ease.TweenFunc) *Tween {
	from := n.Pos()
	return &Tween{
		x:      gween.New(float32(from.X), float32(to.X), duration, fn),
		y:      gween.New(float32(from.Y), float32(to.Y), duration, fn),
		target: n,
	}
}

// Update advances the tween by dt seconds.
func (t *Tween) Update(dt float32) {
	if t.Done {
		return
	}
	x, doneX := t.x.Update(dt)
	y, doneY := t.y.Update(dt)
	p := geom.Pt(round(x), round(y))
	if p != t.target.Pos() {
		t.target.MoveTo(p)
	}
	t.Done = doneX && doneY
}

// Reset restarts the tween from its original position.
func (t *Tween) Reset() {
	t.x.Reset()
	t.y.Reset()
	t.Done = false
}

func round(v float32) int {
	return int(math.Round(float64(v)))
}
