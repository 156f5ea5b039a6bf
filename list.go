package nanoengine

import (
	"errors"
	"slices"

	"github.com/flavioheleno/nanoengine/canvas"
)

var (
	// ErrAttached is returned when inserting an object that already belongs to another list.
	ErrAttached = errors.New("nanoengine: object already belongs to a list")
	// ErrSelf is returned when inserting a list into itself.
	ErrSelf = errors.New("nanoengine: list cannot contain itself")
)

// ObjectList is an ordered group of objects that is itself an object.
// Objects are drawn and updated in list order.
type ObjectList struct {
	Node
	items []Object
}

// Draw draws every object of the list.
func (l *ObjectList) Draw(c canvas.Canvas) {
	for _, o := range l.items {
		o.Draw(c)
	}
}

// Update updates every object of the list.
func (l *ObjectList) Update() {
	for _, o := range l.items {
		o.Update()
	}
}

// Refresh marks every object of the list as dirty. The list's own rect is
// left alone; lists drawing something of their own override Refresh.
func (l *ObjectList) Refresh() {
	for _, o := range l.items {
		o.Refresh()
	}
}

func (l *ObjectList) setTiler(t *Tiler) {
	l.Node.setTiler(t)
	for _, o := range l.items {
		o.setTiler(t)
	}
}

func (l *ObjectList) attach(o Object) (bool, error) {
	n := o.node()
	switch {
	case n == &l.Node:
		return false, ErrSelf
	case n.owner == l:
		return false, nil
	case n.owner != nil:
		return false, ErrAttached
	}
	n.owner = l
	o.setTiler(l.tiler)
	return true, nil
}

// Insert puts o at the head of the list and marks it dirty. Inserting an
// object that is already in l does nothing.
func (l *ObjectList) Insert(o Object) error {
	_, err := l.put(o, true)
	return err
}

// Add puts o at the tail of the list and marks it dirty. Adding an object
// that is already in l does nothing.
func (l *ObjectList) Add(o Object) error {
	_, err := l.put(o, false)
	return err
}

func (l *ObjectList) put(o Object, head bool) (bool, error) {
	added, err := l.attach(o)
	if !added {
		return false, err
	}
	if head {
		l.items = slices.Insert(l.items, 0, o)
	} else {
		l.items = append(l.items, o)
	}
	o.Refresh()
	return true, nil
}

// Remove marks o dirty and detaches it from the list. It reports whether o
// was part of the list.
func (l *ObjectList) Remove(o Object) bool {
	i := l.index(o)
	if i < 0 {
		return false
	}
	o.Refresh()
	l.items = slices.Delete(l.items, i, i+1)
	o.node().owner = nil
	o.setTiler(nil)
	return true
}

func (l *ObjectList) index(o Object) int {
	if o == nil || o.node().owner != l {
		return -1
	}
	return slices.Index(l.items, o)
}

// Len returns the number of objects in the list.
func (l *ObjectList) Len() int { return len(l.items) }

// First returns the head of the list, or nil.
func (l *ObjectList) First() Object {
	if len(l.items) == 0 {
		return nil
	}
	return l.items[0]
}

// Last returns the tail of the list, or nil.
func (l *ObjectList) Last() Object {
	if len(l.items) == 0 {
		return nil
	}
	return l.items[len(l.items)-1]
}

// Next returns the object following o, or the head of the list when o is
// nil. It returns nil after the last object or when o is not in the list.
func (l *ObjectList) Next(o Object) Object {
	if o == nil {
		return l.First()
	}
	i := l.index(o)
	if i < 0 || i+1 >= len(l.items) {
		return nil
	}
	return l.items[i+1]
}

// Prev returns the object preceding o, or the tail of the list when o is
// nil. It returns nil before the first object or when o is not in the list.
func (l *ObjectList) Prev(o Object) Object {
	if o == nil {
		return l.Last()
	}
	i := l.index(o)
	if i <= 0 {
		return nil
	}
	return l.items[i-1]
}

// Each calls fn for every object in order until fn returns false.
func (l *ObjectList) Each(fn func(Object) bool) {
	for _, o := range l.items {
		if !fn(o) {
			return
		}
	}
}
