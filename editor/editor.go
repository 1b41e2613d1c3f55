package editor

import (
	"fmt"
	"log"
	"time"
)

// Mode is the active editing mode.
type Mode int

const (
	ModeSprite Mode = iota
	ModeMap
)

func (m Mode) String() string {
	switch m {
	case ModeSprite:
		return "sprites"
	case ModeMap:
		return "map"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// Editor runs the editor one frame at a time. It owns the shared State, the
// sprite bank, both editors and the two mode widgets.
type Editor struct {
	State   *State
	Bank    *SpriteBank
	Sprites *SpriteEditor
	Map     *MapEditor
	Widgets [2]*Widget

	mode Mode
}

func New() *Editor {
	e := &Editor{
		State:   NewState(),
		Bank:    NewSpriteBank(),
		Sprites: &SpriteEditor{},
		Map:     NewMapEditor(),
		Widgets: [2]*Widget{
			NewWidget(ModeSprite, spritesWidgetX, widgetY, widgetW, widgetH, spritesGlyph),
			NewWidget(ModeMap, mapWidgetX, widgetY, widgetW, widgetH, mapGlyph),
		},
	}
	e.Widgets[0].Active = true
	return e
}

// Mode returns the active editing mode.
func (e *Editor) Mode() Mode { return e.mode }

// Init shows the mouse cursor and switches the display to the editor's
// resolution.
func (e *Editor) Init(cfg Config, s Surface) {
	log.Println("editor: init")
	cfg.ToggleMouse(true)
	s.Mode(ScreenWidth, ScreenHeight, 1)
}

// Draw runs one frame: it refreshes the input snapshot, updates the sprite
// bank, the active editor and the mode widgets, then draws everything. It
// returns the time spent in seconds. A failed map write is returned after the
// frame has been drawn.
func (e *Editor) Draw(in Input, s Surface) (float64, error) {
	start := time.Now()
	st := e.State

	s.Cls()
	st.Input.Refresh(in)
	e.Bank.Update(st, s)

	var err error
	switch e.mode {
	case ModeSprite:
		e.Sprites.Update(st, s)
	case ModeMap:
		err = e.Map.Update(st, s)
	}

	for _, w := range e.Widgets {
		w.Update(&st.Input)
	}
	for _, w := range e.Widgets {
		if w.Clicked {
			e.SetMode(w.Mode, s)
		}
	}

	drawChrome(s)
	e.Bank.Draw(st, s)
	switch e.mode {
	case ModeSprite:
		e.Sprites.Draw(st, s)
	case ModeMap:
		e.Map.Draw(st, s)
	}
	for _, w := range e.Widgets {
		w.Draw(s)
	}

	return time.Since(start).Seconds(), err
}

// SetMode switches the editing mode. Entering ModeMap reloads the map cache;
// selecting the current mode again does nothing.
func (e *Editor) SetMode(m Mode, s Surface) {
	if m == e.mode {
		return
	}
	e.mode = m
	for _, w := range e.Widgets {
		w.Active = w.Mode == m
	}
	if m == ModeMap {
		e.Map.Init(s)
	}
}

func drawChrome(s Surface) {
	w, h := s.ModeWidth(), s.ModeHeight()
	s.Rectfill(0, 0, w, 8, 11)
	s.Rectfill(0, h-4, w, h, 11)
	s.Rectfill(0, 139, w, 199, 5)
	s.Rectfill(0, 9, 8, 189, 5)
	s.Rectfill(140, 9, w, 190, 5)
}

// Undo reverts the most recent edit. If storage rejects a map revert the
// edit stays on the history.
func (e *Editor) Undo(s Surface) error {
	edit, ok := e.State.History.Pop()
	if !ok {
		return nil
	}
	if len(edit.Tiles) > 0 {
		if err := e.Map.apply(s, edit.Tiles); err != nil {
			e.State.History.Push(edit)
			return fmt.Errorf("editor: undo: %w", err)
		}
	}
	for i := len(edit.Pixels) - 1; i >= 0; i-- {
		p := edit.Pixels[i]
		s.Sset(p.X, p.Y, p.Prev)
	}
	return nil
}

// Reload resynchronises the editor with storage after the cartridge was
// replaced underneath it. The map cache is reloaded and the history dropped.
func (e *Editor) Reload(s Surface) {
	e.Map.Init(s)
	e.State.History.Clear()
}
