package nanoengine

import (
	"fmt"
	"time"
)

// DefaultFPS is the frame rate used when none is configured.
const DefaultFPS = 30

// Clock is a monotonic millisecond counter. It may wrap around.
type Clock interface {
	Millis() uint32
}

// ClockFunc adapts a function to Clock.
type ClockFunc func() uint32

// Millis returns the elapsed milliseconds.
func (f ClockFunc) Millis() uint32 { return f() }

// SystemClock counts milliseconds since its creation.
type SystemClock struct {
	start time.Time
}

// NewSystemClock returns a clock starting at zero now.
func NewSystemClock() *SystemClock {
	return &SystemClock{start: time.Now()}
}

// Millis returns the elapsed milliseconds.
func (c *SystemClock) Millis() uint32 {
	return uint32(time.Since(c.start).Milliseconds())
}

// Core paces frames against a Clock.
type Core struct {
	clock     Clock
	fps       int
	frameMs   uint32
	lastFrame uint32
	cpuLoad   int
	loop      func()
}

func newCore(clock Clock, fps int) (Core, error) {
	c := Core{clock: clock}
	if c.clock == nil {
		c.clock = NewSystemClock()
	}
	if fps == 0 {
		fps = DefaultFPS
	}
	if err := c.SetFrameRate(fps); err != nil {
		return Core{}, err
	}
	return c, nil
}

// Begin starts the frame timer.
func (c *Core) Begin() {
	c.lastFrame = c.clock.Millis()
}

// SetFrameRate sets the target number of frames per second, from 1 to 1000.
func (c *Core) SetFrameRate(fps int) error {
	if fps <= 0 || fps > 1000 {
		return fmt.Errorf("nanoengine: frame rate %d out of range 1-1000", fps)
	}
	c.fps = fps
	c.frameMs = uint32(1000 / fps)
	return nil
}

// FrameRate returns the target frame rate.
func (c *Core) FrameRate() int { return c.fps }

// CPULoad returns the time spent in the last Display call as a percentage
// of the frame duration. It exceeds 100 when frames overrun.
func (c *Core) CPULoad() int { return c.cpuLoad }

// SetLoop sets a function called by NextFrame whenever a frame is due.
func (c *Core) SetLoop(fn func()) { c.loop = fn }

// NextFrame reports whether a frame duration has elapsed since the last
// frame started, calling the loop function if so. It never blocks.
func (c *Core) NextFrame() bool {
	due := c.clock.Millis()-c.lastFrame >= c.frameMs
	if due && c.loop != nil {
		c.loop()
	}
	return due
}

// startFrame records the frame start and returns a function that updates
// the CPU load when the frame work is done.
func (c *Core) startFrame() (done func()) {
	c.lastFrame = c.clock.Millis()
	return func() {
		elapsed := c.clock.Millis() - c.lastFrame
		c.cpuLoad = int(elapsed * 100 / c.frameMs)
	}
}
