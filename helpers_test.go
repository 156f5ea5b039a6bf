package nanoengine

import (
	"io"
	"log/slog"
	"testing"

	"github.com/flavioheleno/nanoengine/canvas"
	"github.com/flavioheleno/nanoengine/geom"
)

// blit is one tile received by recordingDisplay.
type blit struct {
	x, y int
	pix  [][]uint16 // [row][col], buffer space
}

func (b blit) at(x, y int) uint16 { return b.pix[y][x] }

// recordingDisplay keeps a copy of every tile it receives.
type recordingDisplay struct {
	w, h   int
	blits  []blit
	failAt map[geom.Point]error
	onBlit func()
}

func (d *recordingDisplay) Width() int  { return d.w }
func (d *recordingDisplay) Height() int { return d.h }

func (d *recordingDisplay) DrawCanvas(x, y int, c canvas.Canvas) error {
	off := c.Offset()
	b := blit{x: x, y: y, pix: make([][]uint16, c.Height())}
	for row := range b.pix {
		b.pix[row] = make([]uint16, c.Width())
		for col := range b.pix[row] {
			b.pix[row][col] = c.Pixel(off.X+col, off.Y+row)
		}
	}
	d.blits = append(d.blits, b)
	if d.onBlit != nil {
		d.onBlit()
	}
	return d.failAt[geom.Pt(x, y)]
}

func (d *recordingDisplay) positions() []geom.Point {
	var ps []geom.Point
	for _, b := range d.blits {
		ps = append(ps, geom.Pt(b.x, b.y))
	}
	return ps
}

func (d *recordingDisplay) reset() { d.blits = nil }

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestTiler returns a tiler for a w x h monochrome display with 16x16
// tiles, with the initial full refresh already flushed.
func newTestTiler(t *testing.T, w, h int, opts *TilerOpts) (*Tiler, *recordingDisplay) {
	t.Helper()
	d := &recordingDisplay{w: w, h: h}
	c, err := canvas.New1(16, 16, make([]byte, canvas.Size1(16, 16)))
	if err != nil {
		t.Fatal(err)
	}
	if opts == nil {
		opts = &TilerOpts{}
	}
	if opts.Logger == nil {
		opts.Logger = quietLogger()
	}
	tl, err := NewTiler(d, c, opts)
	if err != nil {
		t.Fatal(err)
	}
	if err := tl.DisplayBuffer(); err != nil {
		t.Fatal(err)
	}
	d.reset()
	return tl, d
}

// dirtyTiles lists the dirty tiles row by row.
func dirtyTiles(tl *Tiler) []geom.Point {
	var ps []geom.Point
	cols, rows := tl.Tiles()
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			if tl.Dirty(col, row) {
				ps = append(ps, geom.Pt(col, row))
			}
		}
	}
	return ps
}

// square is a filled test object counting its draw and update calls.
type square struct {
	Node
	draws   int
	updates int
}

func newSquare(pos geom.Point, size int) *square {
	return &square{Node: NewNode(pos, geom.Pt(size, size))}
}

func (s *square) Draw(c canvas.Canvas) {
	s.draws++
	c.SetColor(1)
	canvas.FillRectangle(c, s.rect)
}

func (s *square) Update() { s.updates++ }

// manualClock is a Clock advanced by hand.
type manualClock struct {
	now uint32
}

func (c *manualClock) Millis() uint32 { return c.now }

func (c *manualClock) advance(ms uint32) { c.now += ms }
