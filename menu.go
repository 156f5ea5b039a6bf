package nanoengine

import (
	"github.com/flavioheleno/nanoengine/canvas"
	"github.com/flavioheleno/nanoengine/fonts"
	"github.com/flavioheleno/nanoengine/geom"
)

// Menu is a list of items with exactly one focused item whenever it is not
// empty. Items are laid out from top to bottom every time one is added.
type Menu struct {
	ObjectList
	selected Object
	layout   func()
}

// Add appends item to the menu. The first item added gets the focus.
func (m *Menu) Add(item Object) error {
	added, err := m.put(item, false)
	if added {
		m.added(item)
	}
	return err
}

// Insert prepends item to the menu. The first item added gets the focus.
func (m *Menu) Insert(item Object) error {
	added, err := m.put(item, true)
	if added {
		m.added(item)
	}
	return err
}

func (m *Menu) added(item Object) {
	item.Update()
	m.relayout()
	if m.selected == nil {
		m.selected = item
		item.node().Focus()
	} else {
		item.node().Defocus()
	}
}

// Remove detaches item. When item was selected, the focus moves to the next
// item, or to the first one.
func (m *Menu) Remove(item Object) bool {
	next := m.Next(item)
	if !m.ObjectList.Remove(item) {
		return false
	}
	if item == m.selected {
		item.node().focused = false
		m.selected = nil
		if next == nil {
			next = m.First()
		}
		if next != nil {
			m.selected = next
			next.node().Focus()
		}
	}
	m.relayout()
	return true
}

// Refresh marks the menu frame and every item as dirty.
func (m *Menu) Refresh() {
	m.Node.Refresh()
	m.ObjectList.Refresh()
}

func (m *Menu) setTiler(t *Tiler) {
	m.ObjectList.setTiler(t)
	if t == nil {
		return
	}
	for _, item := range m.items {
		item.Update()
	}
	m.relayout()
}

func (m *Menu) relayout() {
	m.Node.Refresh()
	if m.layout != nil {
		m.layout()
	}
	m.Refresh()
}

// Selected returns the focused item, or nil for an empty menu.
func (m *Menu) Selected() Object { return m.selected }

// Selection returns the index of the focused item, or -1.
func (m *Menu) Selection() int {
	if m.selected == nil {
		return -1
	}
	return m.index(m.selected)
}

// Down moves the focus to the next item, wrapping to the first.
func (m *Menu) Down() {
	m.move(m.Next, m.First)
}

// Up moves the focus to the previous item, wrapping to the last.
func (m *Menu) Up() {
	m.move(m.Prev, m.Last)
}

func (m *Menu) move(step func(Object) Object, wrap func() Object) {
	if m.selected == nil {
		return
	}
	m.selected.node().Defocus()
	next := step(m.selected)
	if next == nil {
		next = wrap()
	}
	m.selected = next
	next.node().Focus()
}

// Draw outlines the menu and draws its items.
func (m *Menu) Draw(c canvas.Canvas) {
	c.SetColor(0xFFFF)
	canvas.DrawRectangle(c, geom.Rect{
		P1: m.rect.P1.Add(geom.Pt(2, 2)),
		P2: m.rect.P2.Sub(geom.Pt(2, 2)),
	})
	m.ObjectList.Draw(c)
}

// ListMenu sizes itself to its items: the full display width and as tall as
// the stacked items.
type ListMenu struct {
	Menu
}

// NewListMenu returns an empty list menu with its top-left corner at pos.
func NewListMenu(pos geom.Point) *ListMenu {
	m := &ListMenu{}
	m.rect = geom.RectAt(pos, geom.Pt(1, 1))
	m.layout = m.layoutItems
	return m
}

func (m *ListMenu) layoutItems() {
	y := m.rect.P1.Y + 4
	widest := 0
	for _, item := range m.items {
		n := item.node()
		n.SetPos(geom.Pt(m.rect.P1.X+4, y))
		y += n.Height() + 1
		widest = max(widest, n.Width())
	}
	m.rect.P2.Y = y + 7
	if m.tiler != nil {
		m.rect.P2.X = m.tiler.Display().Width()
	} else {
		m.rect.P2.X = m.rect.P1.X + widest + 7
	}
}

// FixedWidthMenu keeps the size it was created with and stretches every
// item to its inner width.
type FixedWidthMenu struct {
	Menu
}

// NewFixedWidthMenu returns an empty menu covering size pixels at pos.
func NewFixedWidthMenu(pos, size geom.Point) *FixedWidthMenu {
	m := &FixedWidthMenu{}
	m.rect = geom.RectAt(pos, size)
	m.layout = m.layoutItems
	return m
}

func (m *FixedWidthMenu) layoutItems() {
	y := m.rect.P1.Y + 4
	for _, item := range m.items {
		n := item.node()
		n.SetPos(geom.Pt(m.rect.P1.X+4, y))
		n.SetSize(geom.Pt(m.rect.Width()-8, n.Height()))
		y += n.Height() + 1
	}
}

// MenuItem is a plain menu entry drawn as a box, filled when focused.
type MenuItem struct {
	Node
}

// NewMenuItem returns an item of the given size.
func NewMenuItem(size geom.Point) *MenuItem {
	return &MenuItem{Node: NewNode(geom.Point{}, size)}
}

// Draw implements Object.
func (i *MenuItem) Draw(c canvas.Canvas) {
	if i.focused {
		c.SetColor(0xFFFF)
		canvas.FillRectangle(c, i.rect)
		return
	}
	c.SetColor(0)
	canvas.FillRectangle(c, i.rect)
	c.SetColor(0xFFFF)
	canvas.DrawRectangle(c, i.rect)
}

// TextMenuItem is a menu entry showing a line of text, inverted when
// focused. It sizes itself to the text unless given a width.
type TextMenuItem struct {
	Node
	name string
}

// NewTextMenuItem returns an item labelled name.
func NewTextMenuItem(name string) *TextMenuItem {
	return &TextMenuItem{Node: NewNode(geom.Point{}, geom.Pt(1, 1)), name: name}
}

// Name returns the item label.
func (i *TextMenuItem) Name() string { return i.name }

func (i *TextMenuItem) font() *canvas.Font {
	if i.tiler != nil {
		if f := i.tiler.Canvas().Font(); f != nil {
			return f
		}
	}
	return fonts.Basic7x13
}

// Update sizes the item to its text while it has no explicit width.
func (i *TextMenuItem) Update() {
	if i.rect.Width() <= 1 {
		w, h := i.font().TextSize(i.name)
		i.SetSize(geom.Pt(w, h))
	}
}

// Draw implements Object.
func (i *TextMenuItem) Draw(c canvas.Canvas) {
	if i.focused {
		c.SetMode(canvas.Transparent)
		c.SetColor(0xFFFF)
		canvas.FillRectangle(c, i.rect)
		c.SetColor(0)
	} else {
		c.SetMode(canvas.ModeBasic)
		c.SetColor(0xFFFF)
	}
	c.PrintFixed(i.rect.P1.X, i.rect.P1.Y, i.name, canvas.StyleNormal)
	c.SetMode(canvas.ModeBasic)
}
