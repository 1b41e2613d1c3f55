package editor

import "testing"

func TestPalettePickerSelectsSwatch(t *testing.T) {
	e, s, _ := newTestEditor(t)
	tests := []struct {
		name string
		x, y int
		want int
	}{
		{"first", paletteX, paletteY, 0},
		{"col1_row2", paletteX + swatchSize + 3, paletteY + 2*swatchSize + 7, 9},
		{"last", paletteX + 4*swatchSize - 1, paletteY + 4*swatchSize - 1, 15},
		{"outside_keeps_colour", paletteX + 4*swatchSize, paletteY, 15},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			step(t, e, s, press(tc.x, tc.y), idle())
			p := e.Sprites.Picker
			if p.Color != tc.want {
				t.Fatalf("Color = %d, want %d", p.Color, tc.want)
			}
			if p.SelX != tc.want%4 || p.SelY != tc.want/4 {
				t.Errorf("selection = (%d,%d), want (%d,%d)", p.SelX, p.SelY, tc.want%4, tc.want/4)
			}
		})
	}
}

func TestPaintIsEdgeTriggered(t *testing.T) {
	e, s, c := newTestEditor(t)
	step(t, e, s, press(paletteX+swatchSize, paletteY+2*swatchSize), idle())

	x, y := canvasX+16*3+5, canvasY+16*2
	step(t, e, s, press(x, y))
	if got := c.Pixel(3, 2); got != 9 {
		t.Fatalf("Pixel(3,2) = %d after click, want 9", got)
	}

	// Clear the pixel behind the editor's back: holding the button must not
	// paint it again.
	c.SetPixel(3, 2, 0)
	step(t, e, s, hold(x, y), hold(x, y), hold(x, y))
	if got := c.Pixel(3, 2); got != 0 {
		t.Fatalf("held button repainted the pixel: %d", got)
	}
	if e.State.History.Len() != 1 {
		t.Fatalf("history length = %d, want 1", e.State.History.Len())
	}
}

func TestPaintHonoursSpriteZoomAndOrigin(t *testing.T) {
	e, s, c := newTestEditor(t)
	e.Sprites.Picker.Select(7)
	e.State.SelectSprite(17) // origin (8,8)
	e.State.SpriteZoom = 2

	// At zoom 2 each sheet pixel covers 8 canvas pixels.
	step(t, e, s, press(canvasX+8*13+1, canvasY+8*4))
	if got := c.Pixel(8+13, 8+4); got != 7 {
		t.Fatalf("Pixel(21,12) = %d, want 7", got)
	}
}
