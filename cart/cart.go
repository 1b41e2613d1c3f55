package cart

import (
	"errors"
	"image"
)

const (
	// SheetSize is the width and height of the sprite sheet in pixels.
	SheetSize = 128
	// SpriteSize is the width and height of one sprite in pixels.
	SpriteSize = 8
	// SheetColumns is the number of sprites per sheet row.
	SheetColumns = SheetSize / SpriteSize
	// SpriteCount is the number of addressable sprites.
	SpriteCount = SheetColumns * SheetColumns

	BankSize  = 64
	BankCount = SpriteCount / BankSize

	MapWidth  = 128
	MapHeight = 32

	FlagBits = 8
)

var (
	ErrOutOfRange = errors.New("cart: cell out of range")
	ErrLocked     = errors.New("cart: cartridge is read-only")
)

// TileWrite is one map cell assignment.
type TileWrite struct {
	X, Y   int
	Sprite int
}

// Cartridge holds the editable data of a cartridge: the sprite sheet, the
// per-sprite flag bits and the tile map.
type Cartridge struct {
	Sheet *image.Paletted
	Flags [SpriteCount]uint8
	Map   [MapHeight][MapWidth]uint8

	locked bool
	dirty  bool
}

func New() *Cartridge {
	return &Cartridge{
		Sheet: image.NewPaletted(image.Rect(0, 0, SheetSize, SheetSize), SheetPalette),
	}
}

// Lock makes the cartridge read-only. Pixel and flag writes are ignored and
// map writes fail with ErrLocked.
func (c *Cartridge) Lock() { c.locked = true }

func (c *Cartridge) Locked() bool { return c.locked }

// Dirty reports whether the cartridge changed since it was loaded or saved.
func (c *Cartridge) Dirty() bool { return c.dirty }

func (c *Cartridge) MarkClean() { c.dirty = false }

func (c *Cartridge) markDirty() { c.dirty = true }

func inSheet(x, y int) bool {
	return x >= 0 && y >= 0 && x < SheetSize && y < SheetSize
}

func inMap(x, y int) bool {
	return x >= 0 && y >= 0 && x < MapWidth && y < MapHeight
}

func validSprite(n int) bool { return n >= 0 && n < SpriteCount }

func validFlag(n, bit int) bool { return validSprite(n) && bit >= 0 && bit < FlagBits }

// Pixel returns the colour index at (x, y) of the sprite sheet, or 0 outside it.
func (c *Cartridge) Pixel(x, y int) int {
	if !inSheet(x, y) {
		return 0
	}
	return int(c.Sheet.ColorIndexAt(x, y))
}

// SetPixel writes a colour index into the sprite sheet. It reports whether
// the sheet changed.
func (c *Cartridge) SetPixel(x, y, col int) bool {
	if c.locked || !inSheet(x, y) {
		return false
	}
	v := uint8(col & 0x0f)
	if c.Sheet.ColorIndexAt(x, y) == v {
		return false
	}
	c.Sheet.SetColorIndex(x, y, v)
	c.markDirty()
	return true
}

func (c *Cartridge) Flag(n, bit int) bool {
	if !validFlag(n, bit) {
		return false
	}
	return c.Flags[n]&(1<<uint(bit)) != 0
}

func (c *Cartridge) SetFlag(n, bit int, v bool) {
	if c.locked || !validFlag(n, bit) {
		return
	}
	mask := uint8(1 << uint(bit))
	before := c.Flags[n]
	if v {
		c.Flags[n] |= mask
	} else {
		c.Flags[n] &^= mask
	}
	if c.Flags[n] != before {
		c.markDirty()
	}
}

// Tile returns the sprite index stored at map cell (x, y), or 0 outside the map.
func (c *Cartridge) Tile(x, y int) int {
	if !inMap(x, y) {
		return 0
	}
	return int(c.Map[y][x])
}

// SetTiles applies a batch of map writes. The batch is validated as a whole
// first, so either every cell is written or none is.
func (c *Cartridge) SetTiles(cells []TileWrite) error {
	if c.locked {
		return ErrLocked
	}
	for _, w := range cells {
		if !inMap(w.X, w.Y) || !validSprite(w.Sprite) {
			return ErrOutOfRange
		}
	}
	for _, w := range cells {
		c.Map[w.Y][w.X] = uint8(w.Sprite)
	}
	if len(cells) > 0 {
		c.markDirty()
	}
	return nil
}

// CopyFrom replaces the contents of c with those of other, keeping the lock
// state of c. Used when a cartridge file is reloaded from disk.
func (c *Cartridge) CopyFrom(other *Cartridge) {
	copy(c.Sheet.Pix, other.Sheet.Pix)
	c.Flags = other.Flags
	c.Map = other.Map
	c.dirty = false
}
