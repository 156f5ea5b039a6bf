package nanoengine

import (
	"log/slog"

	"github.com/flavioheleno/nanoengine/canvas"
)

// EngineOpts configures an Engine. A nil *EngineOpts uses the defaults.
type EngineOpts struct {
	// FPS is the target frame rate. Defaults to DefaultFPS.
	FPS int
	// Clock times frames. Defaults to a SystemClock.
	Clock Clock
	// Tiler configures the tile grid. Its Logger defaults to Logger.
	Tiler *TilerOpts
	// Logger defaults to slog.Default().
	Logger *slog.Logger
}

// Engine bundles the frame pacer, the key inputs and the tiler.
type Engine struct {
	Core
	Inputs
	*Tiler

	log *slog.Logger
}

// NewEngine returns an engine rendering through c into d.
func NewEngine(d Display, c canvas.Canvas, opts *EngineOpts) (*Engine, error) {
	if opts == nil {
		opts = &EngineOpts{}
	}
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	core, err := newCore(opts.Clock, opts.FPS)
	if err != nil {
		return nil, err
	}
	topts := TilerOpts{Logger: log}
	if opts.Tiler != nil {
		topts = *opts.Tiler
		if topts.Logger == nil {
			topts.Logger = log
		}
	}
	t, err := NewTiler(d, c, &topts)
	if err != nil {
		return nil, err
	}
	cols, rows := t.Tiles()
	log.Debug("engine ready", "fps", core.FrameRate(), "cols", cols, "rows", rows, "bpp", c.BitsPerPixel())
	return &Engine{Core: core, Tiler: t, log: log}, nil
}

// Begin starts the frame timer and marks the whole screen dirty.
func (e *Engine) Begin() {
	e.Core.Begin()
	e.Tiler.Refresh()
}

// Refresh marks every tile dirty.
func (e *Engine) Refresh() { e.Tiler.Refresh() }

// Update updates every object of the scene.
func (e *Engine) Update() { e.Tiler.Update() }

// Display renders the dirty tiles and measures the CPU load of the frame.
func (e *Engine) Display() error {
	done := e.startFrame()
	err := e.DisplayBuffer()
	done()
	return err
}

// DisplayPopup renders the dirty tiles with msg on top, timing the frame
// like Display.
func (e *Engine) DisplayPopup(msg string) error {
	done := e.startFrame()
	err := e.Tiler.DisplayPopup(msg)
	done()
	return err
}

// Notify shows msg in a popup and keeps it on screen until the next Display.
func (e *Engine) Notify(msg string) error {
	err := e.DisplayPopup(msg)
	e.Tiler.Refresh()
	return err
}
