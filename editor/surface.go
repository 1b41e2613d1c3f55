package editor

import "github.com/milk9111/px8edit/cart"

// Surface is the raster and cartridge storage the editor draws to and edits.
// Rectangle corners passed to Rect and Rectfill are inclusive.
type Surface interface {
	Cls()
	Pset(x, y, c int)
	Pget(x, y int) int
	Rect(x1, y1, x2, y2, c int)
	Rectfill(x1, y1, x2, y2, c int)
	Print(str string, x, y, c int)
	Spr(n, x, y, w, h int, flipX, flipY bool)
	Sspr(sx, sy, sw, sh, dx, dy, dw, dh int, flipX, flipY bool)

	Sget(x, y int) int
	Sset(x, y, c int)
	Fget(n, bit int) bool
	Fset(n, bit int, v bool)

	Mget(x, y int) int
	// MsetBatch writes map cells as one unit: either all cells are stored or
	// an error is returned and none are.
	MsetBatch(cells []cart.TileWrite) error

	Mode(w, h int, aspect float64)
	ModeWidth() int
	ModeHeight() int
}

// Config is the host configuration the editor touches at start up.
type Config interface {
	ToggleMouse(visible bool)
}
