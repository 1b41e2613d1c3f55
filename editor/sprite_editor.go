package editor

import "github.com/milk9111/px8edit/cart"

var spriteZooms = [...]int{1, 2, 4}

// SpriteEditor shows the active sprite block magnified over the canvas and
// owns the sprite zoom. The A button cycles the zoom and the directional
// buttons rotate the block by one pixel.
type SpriteEditor struct {
	Picker    PalettePicker
	zoomIndex int
}

func (e *SpriteEditor) Update(st *State, s Surface) {
	e.Picker.Update(st, s)

	in := &st.Input
	if in.Pushed(BtnA) {
		e.zoomIndex = (e.zoomIndex + 1) % len(spriteZooms)
		st.SpriteZoom = spriteZooms[e.zoomIndex]
	}

	switch {
	case in.Pushed(BtnLeft):
		e.Shift(st, s, -1, 0)
	case in.Pushed(BtnRight):
		e.Shift(st, s, 1, 0)
	case in.Pushed(BtnUp):
		e.Shift(st, s, 0, -1)
	case in.Pushed(BtnDown):
		e.Shift(st, s, 0, 1)
	}
}

// blockRect returns the active sprite block in sheet pixels, clipped to the
// sheet.
func blockRect(st *State) Rect {
	ox, oy := SpriteOrigin(st.Sprite)
	n := st.SpriteBlock()
	return Rect{X1: ox, Y1: oy, X2: min(ox+n, cart.SheetSize), Y2: min(oy+n, cart.SheetSize)}
}

// Shift rotates the active block by (dx, dy) pixels, wrapping at its edges.
func (e *SpriteEditor) Shift(st *State, s Surface, dx, dy int) {
	r := blockRect(st)
	w, h := r.Width(), r.Height()
	if w <= 0 || h <= 0 {
		return
	}
	buf := make([]int, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			buf[y*w+x] = s.Sget(r.X1+x, r.Y1+y)
		}
	}

	var edit Edit
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			srcX := ((x-dx)%w + w) % w
			srcY := ((y-dy)%h + h) % h
			if change, ok := setPixel(s, r.X1+x, r.Y1+y, buf[srcY*w+srcX]); ok {
				edit.Pixels = append(edit.Pixels, change)
			}
		}
	}
	st.History.Push(edit)
}

// Zoom returns the current sprite zoom.
func (e *SpriteEditor) Zoom() int { return spriteZooms[e.zoomIndex] }

func (e *SpriteEditor) Draw(st *State, s Surface) {
	e.Picker.Draw(s)

	ox, oy := SpriteOrigin(st.Sprite)
	n := st.SpriteBlock()
	s.Sspr(ox, oy, n, n, canvasX, canvasY, canvasSize, canvasSize, false, false)
}
