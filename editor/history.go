package editor

import "github.com/milk9111/px8edit/cart"

// MaxHistory bounds the number of edits kept for undo.
const MaxHistory = 100

// PixelChange records the colour a sheet pixel had before an edit.
type PixelChange struct {
	X, Y int
	Prev int
}

// Edit is one undoable operation. Tiles hold the previous sprite of every
// map cell the operation wrote.
type Edit struct {
	Pixels []PixelChange
	Tiles  []cart.TileWrite
}

func (e Edit) Empty() bool { return len(e.Pixels) == 0 && len(e.Tiles) == 0 }

// History is a bounded stack of edits. The oldest edit is dropped once the
// stack is full.
type History struct {
	edits []Edit
}

func (h *History) Push(e Edit) {
	if e.Empty() {
		return
	}
	if len(h.edits) == MaxHistory {
		copy(h.edits, h.edits[1:])
		h.edits = h.edits[:MaxHistory-1]
	}
	h.edits = append(h.edits, e)
}

// Pop removes and returns the most recent edit.
func (h *History) Pop() (Edit, bool) {
	if len(h.edits) == 0 {
		return Edit{}, false
	}
	e := h.edits[len(h.edits)-1]
	h.edits = h.edits[:len(h.edits)-1]
	return e, true
}

func (h *History) Len() int { return len(h.edits) }

func (h *History) Clear() { h.edits = h.edits[:0] }

// setPixel writes c at (x, y) of the sheet and returns the change to record,
// if the sheet actually changed.
func setPixel(s Surface, x, y, c int) (PixelChange, bool) {
	prev := s.Sget(x, y)
	if prev == c {
		return PixelChange{}, false
	}
	s.Sset(x, y, c)
	if s.Sget(x, y) != c {
		return PixelChange{}, false
	}
	return PixelChange{X: x, Y: y, Prev: prev}, true
}
