package main

import (
	"image/color"

	"github.com/gdamore/tcell/v2"
	"github.com/milk9111/px8edit/cart"
	"github.com/milk9111/px8edit/gfx"
)

// halfBlock draws two console pixels per terminal cell: the top one as the
// foreground of '▀' and the bottom one as the background.
const halfBlock = '▀'

var termColors = func() [16]tcell.Color {
	var out [16]tcell.Color
	for i, c := range cart.Palette {
		rgba := c.(color.RGBA)
		out[i] = tcell.NewRGBColor(int32(rgba.R), int32(rgba.G), int32(rgba.B))
	}
	return out
}()

// render copies the framebuffer rows starting at viewY into the terminal.
func render(ts tcell.Screen, s *gfx.Screen, viewY int) {
	w, h := ts.Size()
	fb := s.Frame()
	fw, fh := s.ModeWidth(), s.ModeHeight()
	for cy := 0; cy < h; cy++ {
		top := viewY + cy*2
		for cx := 0; cx < w; cx++ {
			if cx >= fw || top >= fh {
				ts.SetContent(cx, cy, ' ', nil, tcell.StyleDefault)
				continue
			}
			fg := termColors[fb.ColorIndexAt(cx, top)&0x0f]
			bg := tcell.ColorBlack
			if top+1 < fh {
				bg = termColors[fb.ColorIndexAt(cx, top+1)&0x0f]
			}
			ts.SetContent(cx, cy, halfBlock, nil, tcell.StyleDefault.Foreground(fg).Background(bg))
		}
	}
}
