// Package nanoengine renders small displays tile by tile, re-drawing and
// sending only the parts of the screen that changed.
//
// The engine owns a single tile-sized canvas and a grid of dirty flags, one
// per tile of the display. Scene objects mark the tiles they cover as dirty
// whenever they move, resize or change appearance. Each frame the engine
// walks the grid and, for every dirty tile, points the canvas at that tile,
// asks every object to draw itself and hands the finished tile to the
// Display. Clean tiles cost nothing, so hardware traffic scales with the
// amount of change instead of the display size.
//
// # Displays
//
// Anything that accepts a finished tile at a screen position implements
// Display. The module ships with three sinks:
//
//   - ssd1322.Dev, a 4-bit grayscale SSD1322 OLED on SPI via periph.io
//   - fbdev.Dev, a Linux framebuffer in RGB 5-6-5
//   - emulator.Screen, an in-memory RGBA image shown in an ebiten window
//
// # Basic Usage
//
//	buf := make([]byte, canvas.Size4(16, 16))
//	tile, _ := canvas.New4(16, 16, buf)
//	tile.SetFont(fonts.Basic7x13)
//
//	eng, _ := nanoengine.NewEngine(dev, tile, nil)
//	eng.Insert(nanoengine.NewSprite(geom.Pt(16, 16), geom.Pt(8, 8), heart))
//	eng.Begin()
//	for {
//		if !eng.NextFrame() {
//			continue
//		}
//		eng.Update()
//		eng.Display()
//	}
//
// # Coordinates
//
// Objects live in world coordinates. The engine keeps a world offset (the
// viewport position, set with MoveTo) and during the render pass the canvas
// offset is the current tile's world position, so objects draw with their
// own coordinates and the canvas clips. LocalCoordinates switches the
// canvas to screen coordinates for static overlays and returns the function
// that switches back:
//
//	restore := eng.LocalCoordinates()
//	tile.PrintFixed(0, 0, "score", canvas.StyleNormal)
//	restore()
//
// # Limits
//
// The dirty grid holds at most 16x16 tiles. Tiler construction fails with
// ErrTooManyTiles when the display needs more; pick a larger tile.
package nanoengine
