package main

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/px8edit/config"
	"github.com/milk9111/px8edit/editor"
)

// ebitenInput samples ebiten's input state once per tick for the editor.
type ebitenInput struct {
	scale   int
	buttons [8]ebiten.Key

	level, edge editor.MouseButtons
	x, y        int
	held        [8]bool
	pushed      [8]bool
}

var mouseButtons = [...]struct {
	ebiten ebiten.MouseButton
	editor editor.MouseButtons
}{
	{ebiten.MouseButtonLeft, editor.MouseLeft},
	{ebiten.MouseButtonRight, editor.MouseRight},
	{ebiten.MouseButtonMiddle, editor.MouseMiddle},
}

func newEbitenInput(keys config.Keys, scale int) (*ebitenInput, error) {
	in := &ebitenInput{scale: scale}
	for i, name := range keys.Buttons() {
		k, err := parseKey(name)
		if err != nil {
			return nil, err
		}
		in.buttons[i] = k
	}
	return in, nil
}

func parseKey(name string) (ebiten.Key, error) {
	var k ebiten.Key
	if err := k.UnmarshalText([]byte(name)); err != nil {
		return 0, fmt.Errorf("key %q: %w", name, err)
	}
	return k, nil
}

// poll samples the current state. Cursor coordinates are converted from
// window pixels to console pixels.
func (in *ebitenInput) poll() {
	in.level, in.edge = 0, 0
	for _, b := range mouseButtons {
		if ebiten.IsMouseButtonPressed(b.ebiten) {
			in.level |= b.editor
		}
		if inpututil.IsMouseButtonJustPressed(b.ebiten) {
			in.edge |= b.editor
		}
	}
	cx, cy := ebiten.CursorPosition()
	in.x, in.y = cx/in.scale, cy/in.scale

	for i, k := range in.buttons {
		in.held[i] = ebiten.IsKeyPressed(k)
		in.pushed[i] = inpututil.IsKeyJustPressed(k)
	}
}

func (in *ebitenInput) MouseState() editor.MouseButtons      { return in.level }
func (in *ebitenInput) MouseStateQuick() editor.MouseButtons { return in.edge }
func (in *ebitenInput) MouseX() int                          { return in.x }
func (in *ebitenInput) MouseY() int                          { return in.y }

// Only player one has keys bound.
func (in *ebitenInput) Btn(player, i int) bool {
	return player == 0 && i >= 0 && i < len(in.held) && in.held[i]
}

func (in *ebitenInput) Btnp(player, i int) bool {
	return player == 0 && i >= 0 && i < len(in.pushed) && in.pushed[i]
}

type ebitenConfig struct{}

func (ebitenConfig) ToggleMouse(visible bool) {
	if visible {
		ebiten.SetCursorMode(ebiten.CursorModeVisible)
		return
	}
	ebiten.SetCursorMode(ebiten.CursorModeHidden)
}
