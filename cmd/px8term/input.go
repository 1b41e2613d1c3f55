package main

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
	"github.com/milk9111/px8edit/editor"
)

// termKey is a key binding: either a special key or a rune.
type termKey struct {
	key tcell.Key
	r   rune
}

var namedKeys = map[string]tcell.Key{
	"arrowleft":  tcell.KeyLeft,
	"arrowright": tcell.KeyRight,
	"arrowup":    tcell.KeyUp,
	"arrowdown":  tcell.KeyDown,
	"enter":      tcell.KeyEnter,
	"tab":        tcell.KeyTab,
	"escape":     tcell.KeyEscape,
	"backspace":  tcell.KeyBackspace2,
	"delete":     tcell.KeyDelete,
}

func parseTermKey(name string) (termKey, error) {
	if k, ok := namedKeys[strings.ToLower(name)]; ok {
		return termKey{key: k}, nil
	}
	if strings.EqualFold(name, "space") {
		return termKey{key: tcell.KeyRune, r: ' '}, nil
	}
	if utf8.RuneCountInString(name) == 1 {
		r, _ := utf8.DecodeRuneInString(name)
		return termKey{key: tcell.KeyRune, r: unicode.ToLower(r)}, nil
	}
	return termKey{}, fmt.Errorf("unknown key %q", name)
}

func (k termKey) matches(ev *tcell.EventKey) bool {
	if ev.Key() != k.key {
		return false
	}
	return k.key != tcell.KeyRune || unicode.ToLower(ev.Rune()) == k.r
}

// ctrlLetter returns the letter of a control chord such as Ctrl+S.
// Enter and Tab share codes with Ctrl+M and Ctrl+I, so the modifier is
// required.
func ctrlLetter(ev *tcell.EventKey) (rune, bool) {
	if ev.Modifiers()&tcell.ModCtrl == 0 {
		return 0, false
	}
	k := ev.Key()
	if k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
		return 'a' + rune(k-tcell.KeyCtrlA), true
	}
	if k == tcell.KeyRune {
		return unicode.ToLower(ev.Rune()), true
	}
	return 0, false
}

// termInput turns terminal events into the editor's per-frame input.
// Terminals report no key releases, so a key counts as held and pushed only
// on the frame its event arrived.
type termInput struct {
	buttons [8]termKey
	// console row shown on the first terminal line
	viewY int

	level, edge editor.MouseButtons
	x, y        int
	held        [8]bool
	pushed      [8]bool
}

func (in *termInput) handleMouse(ev *tcell.EventMouse) {
	cx, cy := ev.Position()
	in.x, in.y = cx, in.viewY+cy*2

	var now editor.MouseButtons
	b := ev.Buttons()
	if b&tcell.Button1 != 0 {
		now |= editor.MouseLeft
	}
	if b&tcell.Button2 != 0 {
		now |= editor.MouseRight
	}
	if b&tcell.Button3 != 0 {
		now |= editor.MouseMiddle
	}
	in.edge |= now &^ in.level
	in.level = now
}

// handleKey records a console button press and reports whether the key was
// bound to one.
func (in *termInput) handleKey(ev *tcell.EventKey) bool {
	for i, k := range in.buttons {
		if k.matches(ev) {
			in.held[i] = true
			in.pushed[i] = true
			return true
		}
	}
	return false
}

// endFrame clears the one-frame state after the editor consumed it.
func (in *termInput) endFrame() {
	in.edge = 0
	in.held = [8]bool{}
	in.pushed = [8]bool{}
}

// MouseState includes this frame's presses, so a click released before the
// frame ran still reads as held once.
func (in *termInput) MouseState() editor.MouseButtons { return in.level | in.edge }

func (in *termInput) MouseStateQuick() editor.MouseButtons { return in.edge }
func (in *termInput) MouseX() int                          { return in.x }
func (in *termInput) MouseY() int                          { return in.y }

func (in *termInput) Btn(player, i int) bool {
	return player == 0 && i >= 0 && i < len(in.held) && in.held[i]
}

func (in *termInput) Btnp(player, i int) bool {
	return player == 0 && i >= 0 && i < len(in.pushed) && in.pushed[i]
}
