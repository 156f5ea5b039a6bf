package nanoengine

import "github.com/flavioheleno/nanoengine/canvas"

// Display is the hardware collaborator receiving rendered tiles.
//
// DrawCanvas copies c's buffer to the screen with its top-left pixel at
// (x, y). Tiles on the right and bottom edges may extend past Width and
// Height; implementations must clip them.
type Display interface {
	Width() int
	Height() int
	DrawCanvas(x, y int, c canvas.Canvas) error
}
