package editor

// Rect is an integer rectangle in screen pixels covering [X1,X2) x [Y1,Y2).
// Every hit test in the editor uses this half-open rule.
type Rect struct {
	X1, Y1, X2, Y2 int
}

// RectAt returns the rectangle of size w x h with its top-left corner at (x, y).
func RectAt(x, y, w, h int) Rect {
	return Rect{X1: x, Y1: y, X2: x + w, Y2: y + h}
}

func (r Rect) Contains(x, y int) bool {
	return r.X1 <= x && x < r.X2 && r.Y1 <= y && y < r.Y2
}

func (r Rect) Width() int  { return r.X2 - r.X1 }
func (r Rect) Height() int { return r.Y2 - r.Y1 }
