package cart

import "image/color"

// Palette is the fixed 16-colour console palette.
var Palette = color.Palette{
	color.RGBA{0, 0, 0, 255},       // 0 black
	color.RGBA{29, 43, 83, 255},    // 1 dark blue
	color.RGBA{126, 37, 83, 255},   // 2 dark purple
	color.RGBA{0, 135, 81, 255},    // 3 dark green
	color.RGBA{171, 82, 54, 255},   // 4 brown
	color.RGBA{95, 87, 79, 255},    // 5 dark grey
	color.RGBA{194, 195, 199, 255}, // 6 light grey
	color.RGBA{255, 241, 232, 255}, // 7 white
	color.RGBA{255, 0, 77, 255},    // 8 red
	color.RGBA{255, 163, 0, 255},   // 9 orange
	color.RGBA{255, 236, 39, 255},  // 10 yellow
	color.RGBA{0, 228, 54, 255},    // 11 green
	color.RGBA{41, 173, 255, 255},  // 12 blue
	color.RGBA{131, 118, 156, 255}, // 13 indigo
	color.RGBA{255, 119, 168, 255}, // 14 pink
	color.RGBA{255, 204, 170, 255}, // 15 peach
}

// SheetPalette is Palette with colour 0 transparent. The sprite sheet uses
// it so blits skip background pixels.
var SheetPalette = func() color.Palette {
	p := make(color.Palette, len(Palette))
	copy(p, Palette)
	p[0] = color.RGBA{}
	return p
}()

// ColorIndex maps any colour to the nearest palette entry. Fully transparent
// colours map to 0.
func ColorIndex(c color.Color) int {
	if _, _, _, a := c.RGBA(); a == 0 {
		return 0
	}
	return Palette.Index(c)
}
