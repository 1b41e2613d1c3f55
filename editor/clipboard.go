package editor

import (
	"image"

	"github.com/milk9111/px8edit/cart"
)

// CopyBlock returns the active sprite block as an image in the console
// palette.
func (e *Editor) CopyBlock(s Surface) *image.Paletted {
	r := blockRect(e.State)
	img := image.NewPaletted(image.Rect(0, 0, r.Width(), r.Height()), cart.Palette)
	for y := 0; y < r.Height(); y++ {
		for x := 0; x < r.Width(); x++ {
			img.SetColorIndex(x, y, uint8(s.Sget(r.X1+x, r.Y1+y)))
		}
	}
	return img
}

// PasteBlock writes img into the active sprite block, mapping each colour to
// the nearest palette entry. Pixels past the block are dropped. The paste is
// one undoable edit.
func (e *Editor) PasteBlock(s Surface, img image.Image) {
	r := blockRect(e.State)
	b := img.Bounds()
	w := min(r.Width(), b.Dx())
	h := min(r.Height(), b.Dy())

	var edit Edit
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := cart.ColorIndex(img.At(b.Min.X+x, b.Min.Y+y))
			if change, ok := setPixel(s, r.X1+x, r.Y1+y, c); ok {
				edit.Pixels = append(edit.Pixels, change)
			}
		}
	}
	e.State.History.Push(edit)
}
