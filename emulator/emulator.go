// Package emulator runs nanoengine scenes on a desktop. Screen is a Display
// keeping an RGBA copy of everything it receives; Window shows that copy in
// an ebiten window and drives the frame loop; Keyboard maps keys to buttons.
package emulator

import (
	"image"
	"image/draw"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/flavioheleno/nanoengine"
	"github.com/flavioheleno/nanoengine/canvas"
)

// Screen is an in-memory display.
type Screen struct {
	img   *image.RGBA
	blits int
}

// NewScreen returns a black w x h screen.
func NewScreen(w, h int) *Screen {
	return &Screen{img: image.NewRGBA(image.Rect(0, 0, w, h))}
}

// Width returns the display width in pixels.
func (s *Screen) Width() int { return s.img.Rect.Dx() }

// Height returns the display height in pixels.
func (s *Screen) Height() int { return s.img.Rect.Dy() }

// DrawCanvas copies the tile c to (x, y), clipped to the screen.
func (s *Screen) DrawCanvas(x, y int, c canvas.Canvas) error {
	r := image.Rect(x, y, x+c.Width(), y+c.Height())
	draw.Draw(s.img, r, canvas.Image(c), image.Point{}, draw.Src)
	s.blits++
	return nil
}

// Image returns the composed screen.
func (s *Screen) Image() *image.RGBA { return s.img }

// Blits returns the number of tiles received so far.
func (s *Screen) Blits() int { return s.blits }

// Opts configures a Window.
type Opts struct {
	Scale int    // Window pixels per screen pixel. Defaults to 4.
	Title string // Defaults to "nanoengine".
	TPS   int    // Update calls per second. Defaults to 60.
}

// Window shows a Screen and calls a frame function on every tick.
type Window struct {
	screen *Screen
	frame  func() error
	opts   Opts
	tex    *ebiten.Image
}

// NewWindow returns a window for s. frame runs once per tick, typically
// polling Engine.NextFrame.
func NewWindow(s *Screen, frame func() error, opts *Opts) *Window {
	o := Opts{}
	if opts != nil {
		o = *opts
	}
	if o.Scale <= 0 {
		o.Scale = 4
	}
	if o.Title == "" {
		o.Title = "nanoengine"
	}
	if o.TPS <= 0 {
		o.TPS = 60
	}
	return &Window{screen: s, frame: frame, opts: o}
}

// Run opens the window and blocks until it is closed, Escape is pressed or
// the frame function fails.
func (w *Window) Run() error {
	ebiten.SetWindowSize(w.screen.Width()*w.opts.Scale, w.screen.Height()*w.opts.Scale)
	ebiten.SetWindowTitle(w.opts.Title)
	ebiten.SetTPS(w.opts.TPS)
	return ebiten.RunGame(w)
}

// Update implements ebiten.Game.
func (w *Window) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	return w.frame()
}

// Draw implements ebiten.Game.
func (w *Window) Draw(dst *ebiten.Image) {
	if w.tex == nil {
		w.tex = ebiten.NewImage(w.screen.Width(), w.screen.Height())
	}
	w.tex.WritePixels(w.screen.img.Pix)
	op := &ebiten.DrawImageOptions{Filter: ebiten.FilterNearest}
	op.GeoM.Scale(float64(w.opts.Scale), float64(w.opts.Scale))
	dst.DrawImage(w.tex, op)
}

// Layout implements ebiten.Game.
func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	return w.screen.Width() * w.opts.Scale, w.screen.Height() * w.opts.Scale
}

var keymap = []struct {
	key ebiten.Key
	b   nanoengine.Buttons
}{
	{ebiten.KeyArrowDown, nanoengine.ButtonDown},
	{ebiten.KeyArrowLeft, nanoengine.ButtonLeft},
	{ebiten.KeyArrowRight, nanoengine.ButtonRight},
	{ebiten.KeyArrowUp, nanoengine.ButtonUp},
	{ebiten.KeyZ, nanoengine.ButtonA},
	{ebiten.KeyX, nanoengine.ButtonB},
}

// Keys returns the buttons whose keys pressed reports as held. Arrows are
// the directions, Z is A and X is B.
func Keys(pressed func(ebiten.Key) bool) nanoengine.Buttons {
	var b nanoengine.Buttons
	for _, k := range keymap {
		if pressed(k.key) {
			b |= k.b
		}
	}
	return b
}

// Keyboard reads the window keyboard. Pass it to Engine.ConnectCustomKeys.
func Keyboard() nanoengine.Buttons {
	return Keys(ebiten.IsKeyPressed)
}
