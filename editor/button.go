package editor

// Button is a filled rectangle with a one character label, used for the bank
// select strip.
type Button struct {
	Rect    Rect
	Color   int
	Label   string
	Clicked bool
}

func NewButton(r Rect, color int, label string, clicked bool) *Button {
	return &Button{Rect: r, Color: color, Label: label, Clicked: clicked}
}

// UpdateHit sets Clicked to whether (x, y) lies inside the button.
func (b *Button) UpdateHit(x, y int) {
	b.Clicked = b.Rect.Contains(x, y)
}

func (b *Button) Draw(s Surface) {
	s.Rectfill(b.Rect.X1, b.Rect.Y1, b.Rect.X2-1, b.Rect.Y2-1, b.Color)
	label := 3
	if b.Clicked {
		label = 1
	}
	s.Print(b.Label, b.Rect.X1+1, b.Rect.Y1, label)
}

// Widget is a fixed pixel glyph acting as a mode switch. Clicked is recomputed
// every frame from the mouse edge; Active stays set while the widget's mode is
// current.
type Widget struct {
	Mode    Mode
	Rect    Rect
	Pixels  []int
	Clicked bool
	Active  bool
	// Dim maps glyph colours when the widget is not active.
	Dim [16]int
}

func NewWidget(mode Mode, x, y, w, h int, pixels []int) *Widget {
	wd := &Widget{Mode: mode, Rect: RectAt(x, y, w, h), Pixels: pixels}
	for i := range wd.Dim {
		wd.Dim[i] = i
	}
	wd.Dim[11] = 3
	return wd
}

// Update recomputes Clicked: true only on the frame the left button went
// down inside the glyph.
func (w *Widget) Update(in *FrameInput) {
	w.Clicked = in.Clicked(MouseLeft) && w.Rect.Contains(in.MouseX, in.MouseY)
}

func (w *Widget) Draw(s Surface) {
	width := w.Rect.Width()
	for i, c := range w.Pixels {
		if !w.Active {
			c = w.Dim[c&0x0f]
		}
		s.Pset(w.Rect.X1+i%width, w.Rect.Y1+i/width, c)
	}
}

var spritesGlyph = []int{
	6, 11, 11, 11, 11, 11, 11, 6,
	11, 6, 6, 6, 6, 6, 6, 11,
	11, 6, 11, 11, 11, 11, 6, 11,
	11, 6, 11, 11, 11, 11, 6, 11,
	11, 6, 6, 6, 6, 6, 6, 11,
	6, 11, 11, 11, 11, 11, 11, 6,
}

var mapGlyph = []int{
	11, 11, 11, 11, 11, 11, 11, 11,
	11, 6, 6, 6, 6, 6, 6, 11,
	11, 6, 11, 11, 11, 11, 6, 11,
	11, 6, 11, 11, 11, 11, 6, 11,
	11, 6, 6, 6, 6, 6, 6, 11,
	11, 11, 11, 11, 11, 11, 11, 11,
}
