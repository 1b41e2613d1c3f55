package editor

// Screen layout of the editor, in pixels of the 240x236 display mode.
const (
	ScreenWidth  = 240
	ScreenHeight = 236

	// sprite editing canvas
	canvasX    = 10
	canvasY    = 10
	canvasSize = 128

	// palette swatch grid
	paletteX      = 192
	paletteY      = 16
	swatchSize    = 8
	paletteColumn = 4

	// sprite thumbnails
	DefaultBatchY  = 200
	thumbColumns   = 16
	thumbRows      = 4
	thumbCell      = 8
	spriteIndexX   = 64
	spriteIndexY   = 191
	spriteIndexCol = 7

	// flag toggles
	flagX      = 128
	flagY      = 193
	flagStride = 6
	flagSize   = 2

	// bank select strip
	bankButtonY1 = 191
	bankButtonY2 = 200

	// map canvas
	mapOriginY   = 9
	mapColumns   = 24
	mapRows      = 16
	mapCoordX    = 80
	mapCoordY    = 193
	mapCanvasX1  = 0
	mapCanvasY1  = 8
	mapCanvasX2  = 240
	mapCanvasY2  = 190
	mapPanStride = 8

	// mode widgets
	spritesWidgetX = 222
	mapWidgetX     = 231
	widgetY        = 1
	widgetW        = 8
	widgetH        = 6
)

// bankButtonX holds the [x1,x2) extent of each bank button.
var bankButtonX = [4][2]int{{208, 213}, {213, 218}, {218, 223}, {223, 229}}
