package editor

import (
	"fmt"
	"math"

	"github.com/milk9111/px8edit/cart"
)

var mapZooms = [...]float64{1, 0.5, 0.25}

// MapEditor edits the tile map through a pannable, zoomable viewport. It keeps
// a cache of the map for drawing, reloaded by Init and only written after the
// matching storage write succeeded.
type MapEditor struct {
	OffsetX, OffsetY int
	zoomIndex        int

	cache [cart.MapHeight][cart.MapWidth]int

	// selection highlight in screen pixels and the cell under it
	selX, selY   int
	cellX, cellY int
}

func NewMapEditor() *MapEditor {
	return &MapEditor{selY: mapOriginY}
}

// Init reloads the whole cache from storage.
func (m *MapEditor) Init(s Surface) {
	for y := 0; y < cart.MapHeight; y++ {
		for x := 0; x < cart.MapWidth; x++ {
			m.cache[y][x] = s.Mget(x, y)
		}
	}
}

func (m *MapEditor) Zoom() float64 { return mapZooms[m.zoomIndex] }

// CellSize is the on-screen size of one map cell.
func (m *MapEditor) CellSize() int { return int(math.Floor(cart.SpriteSize * m.Zoom())) }

// Visible returns the number of columns and rows shown at the current zoom.
func (m *MapEditor) Visible() (cols, rows int) {
	z := m.Zoom()
	cols = min(int(math.Ceil(mapColumns/z)), cart.MapWidth)
	rows = min(int(math.Ceil(mapRows/z)), cart.MapHeight)
	return cols, rows
}

// Cached returns the cached sprite of cell (x, y).
func (m *MapEditor) Cached(x, y int) int {
	if x < 0 || y < 0 || x >= cart.MapWidth || y >= cart.MapHeight {
		return 0
	}
	return m.cache[y][x]
}

// Cell returns the map cell under the selection highlight.
func (m *MapEditor) Cell() (x, y int) { return m.cellX, m.cellY }

func (m *MapEditor) clamp() {
	cols, rows := m.Visible()
	m.OffsetX = max(0, min(m.OffsetX, cart.MapWidth-cols))
	m.OffsetY = max(0, min(m.OffsetY, cart.MapHeight-rows))
}

// realign moves the selection onto its cell at the current cell size,
// clamping the cell into the viewport.
func (m *MapEditor) realign() {
	cols, rows := m.Visible()
	size := m.CellSize()
	m.cellX = max(m.OffsetX, min(m.cellX, m.OffsetX+cols-1))
	m.cellY = max(m.OffsetY, min(m.cellY, m.OffsetY+rows-1))
	m.selX = (m.cellX - m.OffsetX) * size
	m.selY = mapOriginY + (m.cellY-m.OffsetY)*size
}

// canvas is the part of the screen covered by visible cells.
func (m *MapEditor) canvas() Rect {
	cols, rows := m.Visible()
	size := m.CellSize()
	return RectAt(0, mapOriginY, cols*size, rows*size)
}

// Update pans and zooms the viewport and paints the active sprite block into
// the map while the left button is held. A failed storage write is returned
// and leaves the cache untouched.
func (m *MapEditor) Update(st *State, s Surface) error {
	in := &st.Input
	if in.Pushed(BtnLeft) {
		m.OffsetX -= mapPanStride
	}
	if in.Pushed(BtnRight) {
		m.OffsetX += mapPanStride
	}
	if in.Pushed(BtnUp) {
		m.OffsetY -= mapPanStride
	}
	if in.Pushed(BtnDown) {
		m.OffsetY += mapPanStride
	}
	zoomed := in.Pushed(BtnA)
	if zoomed {
		m.zoomIndex = (m.zoomIndex + 1) % len(mapZooms)
	}
	m.clamp()
	if zoomed {
		m.realign()
	}

	mx, my := in.MouseX, in.MouseY
	if !m.canvas().Contains(mx, my) {
		return nil
	}
	size := m.CellSize()
	m.selX = mx - mx%size
	m.selY = mapOriginY + (my-mapOriginY)/size*size
	m.cellX = m.OffsetX + m.selX/size
	m.cellY = m.OffsetY + (m.selY-mapOriginY)/size

	if !in.Down(MouseLeft) {
		return nil
	}
	return m.paint(st, s, m.cellX, m.cellY)
}

// paint writes the sprite block starting at the active sprite into the map
// with its top-left corner at cell (cx, cy). Cells outside the map, sprites
// past the end of the sheet and cells already holding their sprite are
// skipped.
func (m *MapEditor) paint(st *State, s Surface, cx, cy int) error {
	var writes, prev []cart.TileWrite
	for dy := 0; dy < st.SpriteZoom; dy++ {
		for dx := 0; dx < st.SpriteZoom; dx++ {
			x, y := cx+dx, cy+dy
			sprite := st.Sprite + dx + dy*cart.SheetColumns
			if x >= cart.MapWidth || y >= cart.MapHeight || x < 0 || y < 0 {
				continue
			}
			if sprite >= cart.SpriteCount || m.cache[y][x] == sprite {
				continue
			}
			writes = append(writes, cart.TileWrite{X: x, Y: y, Sprite: sprite})
			prev = append(prev, cart.TileWrite{X: x, Y: y, Sprite: m.cache[y][x]})
		}
	}
	if len(writes) == 0 {
		return nil
	}
	if err := m.apply(s, writes); err != nil {
		return fmt.Errorf("editor: map paint at %d,%d: %w", cx, cy, err)
	}
	st.History.Push(Edit{Tiles: prev})
	return nil
}

// apply stores a batch and mirrors it into the cache once storage accepted it.
func (m *MapEditor) apply(s Surface, writes []cart.TileWrite) error {
	if err := s.MsetBatch(writes); err != nil {
		return err
	}
	for _, w := range writes {
		m.cache[w.Y][w.X] = w.Sprite
	}
	return nil
}

func (m *MapEditor) Draw(st *State, s Surface) {
	s.Rectfill(mapCanvasX1, mapCanvasY1, mapCanvasX2, mapCanvasY2, 0)

	cols, rows := m.Visible()
	size := m.CellSize()
	for iy := 0; iy < rows; iy++ {
		for ix := 0; ix < cols; ix++ {
			sprite := m.Cached(m.OffsetX+ix, m.OffsetY+iy)
			if sprite == 0 {
				continue
			}
			sx, sy := SpriteOrigin(sprite)
			s.Sspr(sx, sy, cart.SpriteSize, cart.SpriteSize, ix*size, mapOriginY+iy*size, size, size, false, false)
		}
	}

	ext := int(math.Floor(cart.SpriteSize * m.Zoom() * float64(st.SpriteZoom)))
	s.Rect(m.selX, m.selY, m.selX+ext, m.selY+ext, 7)
	s.Print(fmt.Sprintf("%d %d", m.cellX, m.cellY), mapCoordX, mapCoordY, 7)
}
