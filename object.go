package nanoengine

import (
	"github.com/flavioheleno/nanoengine/canvas"
	"github.com/flavioheleno/nanoengine/geom"
)

// Object is anything that can be placed in a scene. Implementations embed
// Node, which provides position bookkeeping and dirty tile marking.
type Object interface {
	// Draw renders the object. The canvas is in world coordinates.
	Draw(c canvas.Canvas)
	// Update advances the object's state by one frame.
	Update()
	// Refresh marks the tiles under the object as dirty.
	Refresh()
	// Rect returns the area covered by the object, in world coordinates.
	Rect() geom.Rect

	node() *Node
	setTiler(t *Tiler)
}

// Node holds the state shared by every scene object. A Node belongs to at
// most one ObjectList at a time.
type Node struct {
	rect    geom.Rect
	focused bool
	tiler   *Tiler
	owner   *ObjectList
}

// NewNode returns a node covering size pixels at pos.
func NewNode(pos, size geom.Point) Node {
	return Node{rect: geom.RectAt(pos, size)}
}

func (n *Node) node() *Node {
	return n
}

func (n *Node) setTiler(t *Tiler) {
	n.tiler = t
}

// Update does nothing. Objects with per-frame behaviour override it.
func (n *Node) Update() {}

// Refresh marks the tiles under the node as dirty. It does nothing while the
// node is not attached to a tiler.
func (n *Node) Refresh() {
	if n.tiler != nil {
		n.tiler.RefreshWorld(n.rect)
	}
}

// Rect returns the area covered by the node.
func (n *Node) Rect() geom.Rect { return n.rect }

// Pos returns the top-left corner.
func (n *Node) Pos() geom.Point { return n.rect.P1 }

// Width returns the node width in pixels.
func (n *Node) Width() int { return n.rect.Width() }

// Height returns the node height in pixels.
func (n *Node) Height() int { return n.rect.Height() }

// Tiler returns the tiler the node is attached to, if any.
func (n *Node) Tiler() *Tiler { return n.tiler }

// Attached reports whether the node is owned by a list.
func (n *Node) Attached() bool { return n.owner != nil }

// MoveTo moves the node to p, marking both the old and the new area dirty.
func (n *Node) MoveTo(p geom.Point) {
	n.Refresh()
	n.SetPos(p)
	n.Refresh()
}

// MoveBy moves the node by d, marking both the old and the new area dirty.
func (n *Node) MoveBy(d geom.Point) {
	n.MoveTo(n.rect.P1.Add(d))
}

// SetPos moves the node without marking anything dirty.
func (n *Node) SetPos(p geom.Point) {
	n.rect = geom.RectAt(p, n.rect.Size())
}

// SetSize resizes the node without marking anything dirty.
func (n *Node) SetSize(size geom.Point) {
	n.rect = geom.RectAt(n.rect.P1, size)
}

// SetRect replaces the node area without marking anything dirty.
func (n *Node) SetRect(r geom.Rect) {
	n.rect = r
}

// Resize changes the node size, marking both the old and the new area dirty.
func (n *Node) Resize(size geom.Point) {
	n.Refresh()
	n.SetSize(size)
	n.Refresh()
}

// Focus marks the node as focused and schedules a redraw.
func (n *Node) Focus() {
	n.focused = true
	n.Refresh()
}

// Defocus clears the focus flag and schedules a redraw.
func (n *Node) Defocus() {
	n.focused = false
	n.Refresh()
}

// IsFocused reports whether the node has the focus.
func (n *Node) IsFocused() bool { return n.focused }
