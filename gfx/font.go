package gfx

import (
	"image"
	"strings"

	"golang.org/x/image/font/basicfont"
)

const (
	glyphWidth   = 3
	glyphHeight  = 5
	glyphAdvance = 4
	glyphLow     = ' '
	glyphHigh    = '_' + 1
)

// glyphs holds 3x5 bitmaps, five rows of three cells each, for the printable
// range ' '..'_'. Lower case text is upper-cased before drawing.
var glyphs = map[rune]string{
	'!': ".#. .#. .#. ... .#.",
	'"': "#.# #.# ... ... ...",
	'#': "#.# ### #.# ### #.#",
	'%': "#.. ..# .#. #.. ..#",
	'\'': ".#. .#. ... ... ...",
	'(': ".#. #.. #.. #.. .#.",
	')': ".#. ..# ..# ..# .#.",
	'*': "... #.# .#. #.# ...",
	'+': "... .#. ### .#. ...",
	',': "... ... ... .#. #..",
	'-': "... ... ### ... ...",
	'.': "... ... ... ... .#.",
	'/': "..# ..# .#. #.. #..",
	'0': "### #.# #.# #.# ###",
	'1': "##. .#. .#. .#. ###",
	'2': "### ..# ### #.. ###",
	'3': "### ..# .## ..# ###",
	'4': "#.# #.# ### ..# ..#",
	'5': "### #.. ### ..# ###",
	'6': "#.. #.. ### #.# ###",
	'7': "### ..# ..# ..# ..#",
	'8': "### #.# ### #.# ###",
	'9': "### #.# ### ..# ..#",
	':': "... .#. ... .#. ...",
	';': "... .#. ... .#. #..",
	'<': "..# .#. #.. .#. ..#",
	'=': "... ### ... ### ...",
	'>': "#.. .#. ..# .#. #..",
	'?': "### ..# .## ... .#.",
	'A': "### #.# ### #.# #.#",
	'B': "### #.# ##. #.# ###",
	'C': ".## #.. #.. #.. .##",
	'D': "##. #.# #.# #.# ##.",
	'E': "### #.. ##. #.. ###",
	'F': "### #.. ##. #.. #..",
	'G': ".## #.. #.# #.# ###",
	'H': "#.# #.# ### #.# #.#",
	'I': "### .#. .#. .#. ###",
	'J': "### .#. .#. .#. ##.",
	'K': "#.# #.# ##. #.# #.#",
	'L': "#.. #.. #.. #.. ###",
	'M': "### ### #.# #.# #.#",
	'N': "##. #.# #.# #.# #.#",
	'O': ".## #.# #.# #.# ##.",
	'P': "### #.# ### #.. #..",
	'Q': ".#. #.# #.# ##. .##",
	'R': "### #.# ##. #.# #.#",
	'S': ".## #.. ### ..# ##.",
	'T': "### .#. .#. .#. .#.",
	'U': "#.# #.# #.# #.# .##",
	'V': "#.# #.# #.# ### .#.",
	'W': "#.# #.# #.# ### ###",
	'X': "#.# #.# .#. #.# #.#",
	'Y': "#.# #.# ### ..# ###",
	'Z': "### ..# .#. #.. ###",
	'[': "##. #.. #.. #.. ##.",
	'\\': "#.. #.. .#. ..# ..#",
	']': ".## ..# ..# ..# .##",
	'^': ".#. #.# ... ... ...",
	'_': "... ... ... ... ###",
}

// consoleFace is the console's pixel font. Each glyph occupies a
// glyphWidth x (ascent+descent) slot of the mask, stacked vertically in rune
// order as basicfont.Face expects.
var consoleFace = newConsoleFace()

func newConsoleFace() *basicfont.Face {
	const slot = glyphHeight + 1
	n := int(glyphHigh - glyphLow)
	mask := image.NewAlpha(image.Rect(0, 0, glyphWidth, n*slot))
	for r, rows := range glyphs {
		top := int(r-glyphLow) * slot
		for y, row := range strings.Fields(rows) {
			for x, cell := range row {
				if cell == '#' {
					mask.Pix[(top+y)*mask.Stride+x] = 0xff
				}
			}
		}
	}
	return &basicfont.Face{
		Advance: glyphAdvance,
		Width:   glyphWidth,
		Height:  slot,
		Ascent:  glyphHeight,
		Descent: 1,
		Mask:    mask,
		Ranges: []basicfont.Range{
			{Low: glyphLow, High: glyphHigh, Offset: 0},
		},
	}
}

// TextWidth returns the width in pixels of str in the console font.
func TextWidth(str string) int {
	return len([]rune(str)) * glyphAdvance
}
