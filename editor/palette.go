package editor

import "github.com/milk9111/px8edit/cart"

// PalettePicker selects the drawing colour and paints single pixels of the
// active sprite block through the zoomed canvas.
type PalettePicker struct {
	Color      int
	SelX, SelY int
}

func (p *PalettePicker) canvas() Rect { return RectAt(canvasX, canvasY, canvasSize, canvasSize) }

func (p *PalettePicker) swatches() Rect {
	return RectAt(paletteX, paletteY, paletteColumn*swatchSize, paletteColumn*swatchSize)
}

// Update acts on the frame the left button goes down only, so holding the
// button over the canvas paints one pixel.
func (p *PalettePicker) Update(st *State, s Surface) {
	in := &st.Input
	if !in.Clicked(MouseLeft) {
		return
	}
	mx, my := in.MouseX, in.MouseY

	if p.canvas().Contains(mx, my) {
		px := (mx - canvasX) * st.SpriteZoom / 16
		py := (my - canvasY) * st.SpriteZoom / 16
		ox, oy := SpriteOrigin(st.Sprite)
		if change, ok := setPixel(s, ox+px, oy+py, p.Color); ok {
			st.History.Push(Edit{Pixels: []PixelChange{change}})
		}
	} else if p.swatches().Contains(mx, my) {
		col := (mx - paletteX) / swatchSize
		row := (my - paletteY) / swatchSize
		p.Select(col + row*paletteColumn)
	}
}

// Select makes colour c current and moves the selection cursor to it.
func (p *PalettePicker) Select(c int) {
	if c < 0 || c >= len(cart.Palette) {
		return
	}
	p.Color = c
	p.SelX = c % paletteColumn
	p.SelY = c / paletteColumn
}

func (p *PalettePicker) Draw(s Surface) {
	for i := 0; i < len(cart.Palette); i++ {
		x := paletteX + swatchSize*(i%paletteColumn)
		y := paletteY + swatchSize*(i/paletteColumn)
		s.Rectfill(x, y, x+swatchSize-1, y+swatchSize-1, i)
	}
	x := paletteX + swatchSize*p.SelX - 1
	y := paletteY + swatchSize*p.SelY - 1
	s.Rect(x, y, x+swatchSize+1, y+swatchSize+1, 7)
}
