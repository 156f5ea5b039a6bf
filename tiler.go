package nanoengine

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/flavioheleno/nanoengine/canvas"
	"github.com/flavioheleno/nanoengine/geom"
)

// MaxTiles is the capacity of the dirty grid along each axis.
const MaxTiles = 16

// ErrTooManyTiles is returned when the display needs more than MaxTiles
// tiles along an axis.
var ErrTooManyTiles = errors.New("nanoengine: display needs more than 16 tiles per axis")

var (
	errNoDisplay = errors.New("nanoengine: display is required")
	errNoCanvas  = errors.New("nanoengine: canvas is required")
)

// DrawFunc is called for every dirty tile before the objects are drawn,
// with the canvas offset set to the tile's world position. Returning false
// skips the objects and the blit for that tile.
type DrawFunc func() bool

// TilerOpts configures a Tiler. A nil *TilerOpts uses the defaults.
type TilerOpts struct {
	// Tile size in pixels. Zero uses the canvas size.
	TileWidth  int
	TileHeight int

	// OnDraw replaces the automatic tile clear. See DrawFunc.
	OnDraw DrawFunc

	// Logger receives blit failures. Defaults to slog.Default().
	Logger *slog.Logger
}

// Tiler renders scene objects one tile at a time into a shared canvas and
// sends the dirty tiles to a Display.
//
// A Tiler is not safe for concurrent use.
type Tiler struct {
	display Display
	canvas  canvas.Canvas
	log     *slog.Logger
	onDraw  DrawFunc

	tileW, tileH int
	cols, rows   int
	dirty        [MaxTiles]uint16

	offset  geom.Point // world position of the screen's top-left pixel
	local   bool       // canvas is in screen coordinates
	objects ObjectList
}

// NewTiler returns a tiler drawing into c and sending tiles to d. All tiles
// start dirty.
func NewTiler(d Display, c canvas.Canvas, opts *TilerOpts) (*Tiler, error) {
	if d == nil {
		return nil, errNoDisplay
	}
	if c == nil {
		return nil, errNoCanvas
	}
	if opts == nil {
		opts = &TilerOpts{}
	}
	t := &Tiler{
		display: d,
		canvas:  c,
		log:     opts.Logger,
		onDraw:  opts.OnDraw,
		tileW:   opts.TileWidth,
		tileH:   opts.TileHeight,
	}
	if t.log == nil {
		t.log = slog.Default()
	}
	if t.tileW == 0 {
		t.tileW = c.Width()
	}
	if t.tileH == 0 {
		t.tileH = c.Height()
	}
	if t.tileW <= 0 || t.tileH <= 0 || t.tileW > c.Width() || t.tileH > c.Height() {
		return nil, fmt.Errorf("nanoengine: tile %dx%d does not fit canvas %dx%d", t.tileW, t.tileH, c.Width(), c.Height())
	}
	t.cols = (d.Width() + t.tileW - 1) / t.tileW
	t.rows = (d.Height() + t.tileH - 1) / t.tileH
	if t.cols > MaxTiles || t.rows > MaxTiles {
		return nil, fmt.Errorf("%w: %dx%d tiles of %dx%d for a %dx%d display",
			ErrTooManyTiles, t.cols, t.rows, t.tileW, t.tileH, d.Width(), d.Height())
	}
	c.SetScreenWidth(d.Width())
	t.objects.tiler = t
	t.Refresh()
	return t, nil
}

// Canvas returns the shared tile canvas.
func (t *Tiler) Canvas() canvas.Canvas { return t.canvas }

// Display returns the display receiving the tiles.
func (t *Tiler) Display() Display { return t.display }

// TileSize returns the tile width and height in pixels.
func (t *Tiler) TileSize() (w, h int) { return t.tileW, t.tileH }

// Tiles returns the grid size in tiles.
func (t *Tiler) Tiles() (cols, rows int) { return t.cols, t.rows }

// SetDrawCallback replaces the per-tile draw callback. nil restores the
// automatic tile clear.
func (t *Tiler) SetDrawCallback(fn DrawFunc) { t.onDraw = fn }

// Objects returns the root list of the scene.
func (t *Tiler) Objects() *ObjectList { return &t.objects }

// Insert puts o at the head of the scene.
func (t *Tiler) Insert(o Object) error { return t.objects.Insert(o) }

// Add puts o at the tail of the scene.
func (t *Tiler) Add(o Object) error { return t.objects.Add(o) }

// Remove detaches o from the scene.
func (t *Tiler) Remove(o Object) bool { return t.objects.Remove(o) }

// Update updates every object in the scene.
func (t *Tiler) Update() { t.objects.Update() }

// Refresh marks every tile dirty.
func (t *Tiler) Refresh() {
	all := uint16(1<<uint(t.cols) - 1)
	for row := 0; row < t.rows; row++ {
		t.dirty[row] = all
	}
}

// RefreshRect marks the tiles overlapping r, in screen coordinates, dirty.
func (t *Tiler) RefreshRect(r geom.Rect) {
	if r.P2.X < 0 || r.P2.Y < 0 {
		return
	}
	x1 := max(r.P1.X, 0) / t.tileW
	y1 := max(r.P1.Y, 0) / t.tileH
	x2 := min(r.P2.X/t.tileW, t.cols-1)
	y2 := min(r.P2.Y/t.tileH, t.rows-1)
	for row := y1; row <= y2; row++ {
		for col := x1; col <= x2; col++ {
			t.dirty[row] |= 1 << uint(col)
		}
	}
}

// RefreshPoint marks the tile under p, in screen coordinates, dirty.
func (t *Tiler) RefreshPoint(p geom.Point) {
	if p.X < 0 || p.Y < 0 {
		return
	}
	t.RefreshTile(p.X/t.tileW, p.Y/t.tileH)
}

// RefreshTile marks a single tile dirty. Tiles outside the grid are ignored.
func (t *Tiler) RefreshTile(col, row int) {
	if col < 0 || row < 0 || col >= t.cols || row >= t.rows {
		return
	}
	t.dirty[row] |= 1 << uint(col)
}

// RefreshWorld marks the tiles overlapping r, in world coordinates, dirty.
func (t *Tiler) RefreshWorld(r geom.Rect) {
	t.RefreshRect(r.Sub(t.offset))
}

// RefreshWorldPoint marks the tile under p, in world coordinates, dirty.
func (t *Tiler) RefreshWorldPoint(p geom.Point) {
	t.RefreshPoint(p.Sub(t.offset))
}

// Dirty reports whether a tile is waiting to be drawn.
func (t *Tiler) Dirty(col, row int) bool {
	if col < 0 || row < 0 || col >= t.cols || row >= t.rows {
		return false
	}
	return t.dirty[row]&(1<<uint(col)) != 0
}

// MoveTo pans the viewport so that world position p is the screen's
// top-left pixel. Nothing is marked dirty.
func (t *Tiler) MoveTo(p geom.Point) { t.offset = p }

// MoveToAndRefresh pans the viewport and marks every tile dirty.
func (t *Tiler) MoveToAndRefresh(p geom.Point) {
	t.MoveTo(p)
	t.Refresh()
}

// Position returns the viewport position in world coordinates.
func (t *Tiler) Position() geom.Point { return t.offset }

// Collision reports whether p lies inside r.
func (t *Tiler) Collision(p geom.Point, r geom.Rect) bool { return r.Contains(p) }

// LocalCoordinates switches the canvas to screen coordinates and returns the
// function restoring world coordinates. Calling it while the canvas is
// already in screen coordinates changes nothing and returns a no-op.
//
//	defer t.LocalCoordinates()()
func (t *Tiler) LocalCoordinates() (restore func()) {
	if t.local {
		return func() {}
	}
	t.setLocal(true)
	return func() { t.setLocal(false) }
}

// WorldCoordinates switches the canvas to world coordinates and returns the
// function restoring screen coordinates. Calling it while the canvas is
// already in world coordinates changes nothing and returns a no-op.
func (t *Tiler) WorldCoordinates() (restore func()) {
	if !t.local {
		return func() {}
	}
	t.setLocal(false)
	return func() { t.setLocal(true) }
}

func (t *Tiler) setLocal(local bool) {
	o := t.canvas.Offset()
	if local {
		o = o.Sub(t.offset)
	} else {
		o = o.Add(t.offset)
	}
	t.canvas.SetOffset(o.X, o.Y)
	t.local = local
}

// DisplayBuffer draws and sends every dirty tile, clearing its flag. Every
// tile is processed even when the display fails; the failures are logged
// and returned joined.
func (t *Tiler) DisplayBuffer() error {
	return t.render(nil)
}

// DisplayPopup draws a framed message over the middle of the screen on top
// of the scene. The tiles under the popup are not marked dirty afterwards:
// call Refresh once the popup should disappear.
func (t *Tiler) DisplayPopup(msg string) error {
	w, h := t.display.Width(), t.display.Height()
	p := &popup{msg: msg, rect: geom.R(8, h/2-8, w-8, h/2+8)}
	p.text = geom.Pt(w/2, h/2)
	if f := t.canvas.Font(); f != nil {
		tw, th := f.TextSize(msg)
		p.text = geom.Pt((w-tw)/2, h/2-th/2)
	}
	t.RefreshRect(p.rect)
	return t.render(p)
}

type popup struct {
	msg  string
	rect geom.Rect
	text geom.Point
}

func (t *Tiler) render(p *popup) error {
	var errs []error
	for row := 0; row < t.rows; row++ {
		flags := t.dirty[row]
		t.dirty[row] = 0
		for col := 0; flags != 0 && col < t.cols; col, flags = col+1, flags>>1 {
			if flags&1 == 0 {
				continue
			}
			x, y := col*t.tileW, row*t.tileH
			if err := t.drawTile(x, y, p); err != nil {
				t.log.Warn("tile blit failed", "x", x, "y", y, "err", err)
				errs = append(errs, err)
			}
		}
	}
	return errors.Join(errs...)
}

func (t *Tiler) drawTile(x, y int, p *popup) error {
	c := t.canvas
	c.SetOffset(x+t.offset.X, y+t.offset.Y)
	t.local = false
	if t.onDraw == nil {
		c.Clear()
	} else if !t.onDraw() && p == nil {
		return nil
	}
	t.objects.Draw(c)
	// The whole canvas is sent, which may be larger than the tile.
	if p != nil && p.rect.Overlaps(geom.RectAt(geom.Pt(x, y), geom.Pt(c.Width(), c.Height()))) {
		c.SetOffset(x, y)
		t.local = true
		mode, color := c.Mode(), c.Color()
		c.SetMode(canvas.ModeBasic)
		c.SetColor(0)
		canvas.FillRectangle(c, p.rect)
		c.SetColor(0xFFFF)
		canvas.DrawRectangle(c, p.rect)
		c.PrintFixed(p.text.X, p.text.Y, p.msg, canvas.StyleNormal)
		c.SetMode(mode)
		c.SetColor(color)
	}
	return t.display.DrawCanvas(x, y, c)
}
