package gfx

import (
	"image"
	"image/color"
	"strings"

	"github.com/milk9111/px8edit/cart"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/f64"
	"golang.org/x/image/math/fixed"
)

const (
	defaultWidth  = 128
	defaultHeight = 128
)

// Screen is a software raster over a cartridge: a paletted framebuffer plus
// access to the cartridge's sprite sheet, flags and map.
type Screen struct {
	cart   *cart.Cartridge
	fb     *image.Paletted
	aspect float64
	colors [16]*image.Uniform
}

func NewScreen(c *cart.Cartridge) *Screen {
	s := &Screen{cart: c, aspect: 1}
	for i := range s.colors {
		s.colors[i] = image.NewUniform(cart.Palette[i])
	}
	s.Mode(defaultWidth, defaultHeight, 1)
	return s
}

// Cartridge returns the cartridge backing the screen.
func (s *Screen) Cartridge() *cart.Cartridge { return s.cart }

// Frame returns the framebuffer. Pix holds one palette index per pixel.
func (s *Screen) Frame() *image.Paletted { return s.fb }

// Mode sets the display resolution. The framebuffer is reallocated only when
// the size changes.
func (s *Screen) Mode(w, h int, aspect float64) {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	s.aspect = aspect
	if s.fb != nil && s.fb.Rect.Dx() == w && s.fb.Rect.Dy() == h {
		return
	}
	s.fb = image.NewPaletted(image.Rect(0, 0, w, h), cart.Palette)
}

func (s *Screen) ModeWidth() int  { return s.fb.Rect.Dx() }
func (s *Screen) ModeHeight() int { return s.fb.Rect.Dy() }
func (s *Screen) Aspect() float64 { return s.aspect }

func (s *Screen) Cls() {
	clear(s.fb.Pix)
}

func (s *Screen) Pset(x, y, c int) {
	if !image.Pt(x, y).In(s.fb.Rect) {
		return
	}
	s.fb.SetColorIndex(x, y, uint8(c&0x0f))
}

func (s *Screen) Pget(x, y int) int {
	if !image.Pt(x, y).In(s.fb.Rect) {
		return 0
	}
	return int(s.fb.ColorIndexAt(x, y))
}

// Rectfill fills the rectangle with corners (x1,y1) and (x2,y2), both
// inclusive.
func (s *Screen) Rectfill(x1, y1, x2, y2, c int) {
	r := inclusiveRect(x1, y1, x2, y2).Intersect(s.fb.Rect)
	v := uint8(c & 0x0f)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		row := s.fb.Pix[y*s.fb.Stride+r.Min.X : y*s.fb.Stride+r.Max.X]
		for i := range row {
			row[i] = v
		}
	}
}

// Rect outlines the rectangle with corners (x1,y1) and (x2,y2), both
// inclusive.
func (s *Screen) Rect(x1, y1, x2, y2, c int) {
	r := inclusiveRect(x1, y1, x2, y2)
	left, top, right, bottom := r.Min.X, r.Min.Y, r.Max.X-1, r.Max.Y-1
	for x := left; x <= right; x++ {
		s.Pset(x, top, c)
		s.Pset(x, bottom, c)
	}
	for y := top + 1; y < bottom; y++ {
		s.Pset(left, y, c)
		s.Pset(right, y, c)
	}
}

// Print draws str with its top-left corner at (x, y).
func (s *Screen) Print(str string, x, y, c int) {
	d := font.Drawer{
		Dst:  s.fb,
		Src:  s.colors[c&0x0f],
		Face: consoleFace,
		Dot:  fixed.P(x, y+glyphHeight),
	}
	d.DrawString(strings.ToUpper(str))
}

// Spr draws sprite n, covering w x h sprites, at (x, y).
func (s *Screen) Spr(n, x, y, w, h int, flipX, flipY bool) {
	if n < 0 || n >= cart.SpriteCount {
		return
	}
	sx := (n % cart.SheetColumns) * cart.SpriteSize
	sy := (n / cart.SheetColumns) * cart.SpriteSize
	sw, sh := w*cart.SpriteSize, h*cart.SpriteSize
	s.Sspr(sx, sy, sw, sh, x, y, sw, sh, flipX, flipY)
}

// Sspr stretches the sheet rectangle (sx,sy,sw,sh) onto the screen rectangle
// (dx,dy,dw,dh). Colour 0 is transparent. Source pixels outside the sheet are
// skipped without changing the scale.
func (s *Screen) Sspr(sx, sy, sw, sh, dx, dy, dw, dh int, flipX, flipY bool) {
	if sw <= 0 || sh <= 0 || dw <= 0 || dh <= 0 {
		return
	}
	sheet := s.cart.Sheet
	sr := image.Rect(sx, sy, sx+sw, sy+sh).Intersect(sheet.Rect)
	if sr.Empty() {
		return
	}

	// Transform's translate-only fast path offsets y by sr.Min.X, so 1:1 blits
	// are copied directly.
	if dw == sw && dh == sh && !flipX && !flipY {
		xdraw.Copy(s.fb, image.Pt(dx+sr.Min.X-sx, dy+sr.Min.Y-sy), sheet, sr, xdraw.Over, nil)
		return
	}

	kx := float64(dw) / float64(sw)
	ky := float64(dh) / float64(sh)
	a, c := kx, float64(dx)-kx*float64(sx)
	if flipX {
		a, c = -kx, float64(dx)+kx*float64(sx+sw)
	}
	e, f := ky, float64(dy)-ky*float64(sy)
	if flipY {
		e, f = -ky, float64(dy)+ky*float64(sy+sh)
	}
	s2d := f64.Aff3{a, 0, c, 0, e, f}
	xdraw.NearestNeighbor.Transform(s.fb, s2d, sheet, sr, xdraw.Over, nil)
}

func (s *Screen) Sget(x, y int) int { return s.cart.Pixel(x, y) }

func (s *Screen) Sset(x, y, c int) { s.cart.SetPixel(x, y, c) }

func (s *Screen) Fget(n, bit int) bool { return s.cart.Flag(n, bit) }

func (s *Screen) Fset(n, bit int, v bool) { s.cart.SetFlag(n, bit, v) }

func (s *Screen) Mget(x, y int) int { return s.cart.Tile(x, y) }

func (s *Screen) MsetBatch(cells []cart.TileWrite) error { return s.cart.SetTiles(cells) }

// WriteRGBA fills pix, which must hold 4*w*h bytes, with the framebuffer in
// RGBA order.
func (s *Screen) WriteRGBA(pix []byte) {
	for i, v := range s.fb.Pix {
		c := cart.Palette[v&0x0f].(color.RGBA)
		pix[i*4] = c.R
		pix[i*4+1] = c.G
		pix[i*4+2] = c.B
		pix[i*4+3] = 0xff
	}
}

func inclusiveRect(x1, y1, x2, y2 int) image.Rectangle {
	return image.Rect(min(x1, x2), min(y1, y2), max(x1, x2)+1, max(y1, y2)+1)
}
