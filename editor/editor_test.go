package editor

import (
	"testing"

	"github.com/milk9111/px8edit/cart"
	"github.com/milk9111/px8edit/gfx"
)

// fakeInput is one frame of scripted input.
type fakeInput struct {
	x, y   int
	level  MouseButtons
	edge   MouseButtons
	held   [8]bool
	pushed [8]bool
}

func (f fakeInput) MouseState() MouseButtons      { return f.level }
func (f fakeInput) MouseStateQuick() MouseButtons { return f.edge }
func (f fakeInput) MouseX() int                   { return f.x }
func (f fakeInput) MouseY() int                   { return f.y }

func (f fakeInput) Btn(player, i int) bool  { return player == 0 && f.held[i] }
func (f fakeInput) Btnp(player, i int) bool { return player == 0 && f.pushed[i] }

// press is the frame the left button goes down at (x, y).
func press(x, y int) fakeInput {
	return fakeInput{x: x, y: y, level: MouseLeft, edge: MouseLeft}
}

// hold is a frame with the left button still down at (x, y).
func hold(x, y int) fakeInput {
	return fakeInput{x: x, y: y, level: MouseLeft}
}

// idle parks the mouse in the bottom-right corner, away from every widget.
func idle() fakeInput {
	return fakeInput{x: ScreenWidth - 1, y: ScreenHeight - 1}
}

func button(b int) fakeInput {
	in := idle()
	in.held[b] = true
	in.pushed[b] = true
	return in
}

type fakeConfig struct{ mouse bool }

func (c *fakeConfig) ToggleMouse(v bool) { c.mouse = v }

// countingSurface counts map reads so tests can observe cache reloads.
type countingSurface struct {
	*gfx.Screen
	mgets int
}

func (c *countingSurface) Mget(x, y int) int {
	c.mgets++
	return c.Screen.Mget(x, y)
}

func newTestEditor(t *testing.T) (*Editor, *countingSurface, *cart.Cartridge) {
	t.Helper()
	c := cart.New()
	s := &countingSurface{Screen: gfx.NewScreen(c)}
	e := New()
	cfg := &fakeConfig{}
	e.Init(cfg, s)
	if !cfg.mouse {
		t.Fatalf("Init should show the mouse cursor")
	}
	return e, s, c
}

func step(t *testing.T, e *Editor, s Surface, frames ...fakeInput) {
	t.Helper()
	for i, in := range frames {
		if _, err := e.Draw(in, s); err != nil {
			t.Fatalf("frame %d: Draw: %v", i, err)
		}
	}
}

func TestInitSetsDisplayMode(t *testing.T) {
	_, s, _ := newTestEditor(t)
	if s.ModeWidth() != ScreenWidth || s.ModeHeight() != ScreenHeight {
		t.Fatalf("mode = %dx%d, want %dx%d", s.ModeWidth(), s.ModeHeight(), ScreenWidth, ScreenHeight)
	}
}

func TestBankOfAndSpriteOrigin(t *testing.T) {
	for i := 0; i < cart.SpriteCount; i++ {
		if got := BankOf(i); got != i/64 {
			t.Fatalf("BankOf(%d) = %d", i, got)
		}
		x, y := SpriteOrigin(i)
		if x != (i%16)*8 || y != (i/16)*8 {
			t.Fatalf("SpriteOrigin(%d) = (%d,%d)", i, x, y)
		}
	}
	if x, y := SpriteOrigin(147); x != 24 || y != 72 {
		t.Fatalf("SpriteOrigin(147) = (%d,%d), want (24,72)", x, y)
	}
}

func TestFrameDrawsChromeAndWidgets(t *testing.T) {
	e, s, _ := newTestEditor(t)
	elapsed, err := e.Draw(idle(), s)
	if err != nil {
		t.Fatalf("Draw: %v", err)
	}
	if elapsed < 0 {
		t.Fatalf("elapsed = %v", elapsed)
	}

	tests := []struct {
		name string
		x, y int
		want int
	}{
		{"top_bar", 100, 4, 11},
		{"bottom_bar", 100, ScreenHeight - 1, 11},
		{"left_border", 4, 100, 5},
		{"right_panel", 180, 100, 5},
		{"sprites_widget_active", spritesWidgetX + 1, widgetY, 11},
		{"map_widget_dimmed", mapWidgetX, widgetY, 3},
		{"map_widget_inner", mapWidgetX + 1, widgetY + 1, 6},
		{"palette_swatch_8", paletteX + 1, paletteY + 2*swatchSize + 1, 8},
		{"bank_button", 209, 198, 2},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := s.Pget(tc.x, tc.y); got != tc.want {
				t.Errorf("Pget(%d,%d) = %d, want %d", tc.x, tc.y, got, tc.want)
			}
		})
	}
}

func TestModeSwitchReloadsMapOnce(t *testing.T) {
	e, s, _ := newTestEditor(t)
	full := cart.MapWidth * cart.MapHeight

	step(t, e, s, press(mapWidgetX+2, widgetY+2))
	if e.Mode() != ModeMap {
		t.Fatalf("mode = %v after clicking MAP, want map", e.Mode())
	}
	if s.mgets != full {
		t.Fatalf("map reads after entering map mode = %d, want %d", s.mgets, full)
	}
	if !e.Widgets[1].Active || e.Widgets[0].Active {
		t.Fatalf("MAP widget should be the active one")
	}

	// Holding the button and clicking MAP again keep the cache as it is.
	step(t, e, s, hold(mapWidgetX+2, widgetY+2), idle(), press(mapWidgetX+2, widgetY+2), idle())
	if s.mgets != full {
		t.Fatalf("map reads = %d, want %d", s.mgets, full)
	}

	step(t, e, s, press(spritesWidgetX+2, widgetY+2))
	if e.Mode() != ModeSprite {
		t.Fatalf("mode = %v after clicking SPRITES, want sprites", e.Mode())
	}
	if s.mgets != full {
		t.Fatalf("returning to sprites read the map: %d reads", s.mgets)
	}

	step(t, e, s, idle(), press(mapWidgetX, widgetY))
	if s.mgets != 2*full {
		t.Fatalf("re-entering map mode: %d reads, want %d", s.mgets, 2*full)
	}
}

func TestUndoRevertsPixelAndMapEdits(t *testing.T) {
	e, s, c := newTestEditor(t)
	e.Sprites.Picker.Select(12)
	step(t, e, s, press(canvasX, canvasY), idle())
	if c.Pixel(0, 0) != 12 {
		t.Fatalf("paint did not reach the sheet")
	}

	e.SetMode(ModeMap, s)
	e.State.SelectSprite(3)
	step(t, e, s, press(4, mapOriginY+4), idle())
	if c.Tile(0, 0) != 3 {
		t.Fatalf("Tile(0,0) = %d, want 3", c.Tile(0, 0))
	}
	if e.State.History.Len() != 2 {
		t.Fatalf("history length = %d, want 2", e.State.History.Len())
	}

	if err := e.Undo(s); err != nil {
		t.Fatalf("Undo map: %v", err)
	}
	if c.Tile(0, 0) != 0 || e.Map.Cached(0, 0) != 0 {
		t.Fatalf("map undo left tile %d cache %d", c.Tile(0, 0), e.Map.Cached(0, 0))
	}
	if err := e.Undo(s); err != nil {
		t.Fatalf("Undo pixel: %v", err)
	}
	if c.Pixel(0, 0) != 0 {
		t.Fatalf("pixel undo left colour %d", c.Pixel(0, 0))
	}
	if err := e.Undo(s); err != nil {
		t.Fatalf("Undo on empty history: %v", err)
	}
}

func TestReloadPicksUpReplacedCartridge(t *testing.T) {
	e, s, c := newTestEditor(t)
	e.SetMode(ModeMap, s)
	e.State.History.Push(Edit{Pixels: []PixelChange{{X: 1, Y: 1, Prev: 0}}})

	other := cart.New()
	if err := other.SetTiles([]cart.TileWrite{{X: 7, Y: 3, Sprite: 42}}); err != nil {
		t.Fatalf("SetTiles: %v", err)
	}
	c.CopyFrom(other)
	if e.Map.Cached(7, 3) != 0 {
		t.Fatalf("cache changed before Reload")
	}

	e.Reload(s)
	if e.Map.Cached(7, 3) != 42 {
		t.Fatalf("Cached(7,3) = %d after Reload, want 42", e.Map.Cached(7, 3))
	}
	if e.State.History.Len() != 0 {
		t.Fatalf("Reload should drop the history")
	}
}

func TestHistoryIsBounded(t *testing.T) {
	var h History
	h.Push(Edit{})
	if h.Len() != 0 {
		t.Fatalf("empty edits should not be recorded")
	}
	for i := 0; i < MaxHistory+50; i++ {
		h.Push(Edit{Pixels: []PixelChange{{X: i}}})
	}
	if h.Len() != MaxHistory {
		t.Fatalf("Len = %d, want %d", h.Len(), MaxHistory)
	}
	e, ok := h.Pop()
	if !ok || e.Pixels[0].X != MaxHistory+49 {
		t.Fatalf("Pop = %+v, %v; want the newest edit", e, ok)
	}
}

func TestRectContainsIsHalfOpen(t *testing.T) {
	r := RectAt(10, 20, 5, 3)
	tests := []struct {
		name string
		x, y int
		want bool
	}{
		{"top_left", 10, 20, true},
		{"inside", 12, 21, true},
		{"last_column", 14, 22, true},
		{"right_edge", 15, 21, false},
		{"bottom_edge", 12, 23, false},
		{"left_of", 9, 21, false},
		{"above", 12, 19, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.want {
				t.Errorf("Contains(%d,%d) = %v, want %v", tc.x, tc.y, got, tc.want)
			}
		})
	}
}
