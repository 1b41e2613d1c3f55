package cart

import (
	"fmt"
	"image"
	"image/png"
	"io"

	xdraw "golang.org/x/image/draw"
)

// SheetImage returns the sprite sheet with the opaque console palette.
func (c *Cartridge) SheetImage() *image.Paletted {
	img := image.NewPaletted(c.Sheet.Rect, Palette)
	copy(img.Pix, c.Sheet.Pix)
	return img
}

// ExportSheet writes the sprite sheet as a PNG, scaled up by scale with
// nearest-neighbour sampling.
func (c *Cartridge) ExportSheet(w io.Writer, scale int) error {
	if scale < 1 {
		scale = 1
	}
	src := c.SheetImage()
	dst := image.NewRGBA(image.Rect(0, 0, SheetSize*scale, SheetSize*scale))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	if err := png.Encode(w, dst); err != nil {
		return fmt.Errorf("cart: export sheet: %w", err)
	}
	return nil
}
