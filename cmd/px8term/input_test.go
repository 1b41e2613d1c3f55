package main

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/milk9111/px8edit/editor"
)

func TestParseTermKey(t *testing.T) {
	tests := []struct {
		name    string
		want    termKey
		wantErr bool
	}{
		{"ArrowLeft", termKey{key: tcell.KeyLeft}, false},
		{"enter", termKey{key: tcell.KeyEnter}, false},
		{"X", termKey{key: tcell.KeyRune, r: 'x'}, false},
		{"Space", termKey{key: tcell.KeyRune, r: ' '}, false},
		{"F13", termKey{}, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := parseTermKey(tc.name)
			if (err != nil) != tc.wantErr {
				t.Fatalf("parseTermKey(%q) error = %v", tc.name, err)
			}
			if got != tc.want {
				t.Errorf("parseTermKey(%q) = %+v, want %+v", tc.name, got, tc.want)
			}
		})
	}
}

func TestMouseEdgesFromButtonMask(t *testing.T) {
	in := &termInput{viewY: 10}

	in.handleMouse(tcell.NewEventMouse(5, 3, tcell.Button1, tcell.ModNone))
	if in.MouseX() != 5 || in.MouseY() != 16 {
		t.Fatalf("mouse = (%d,%d), want (5,16)", in.MouseX(), in.MouseY())
	}
	if in.MouseState() != editor.MouseLeft || in.MouseStateQuick() != editor.MouseLeft {
		t.Fatalf("press: level %v edge %v", in.MouseState(), in.MouseStateQuick())
	}
	in.endFrame()

	// dragging keeps the level without a new edge
	in.handleMouse(tcell.NewEventMouse(6, 3, tcell.Button1, tcell.ModNone))
	if in.MouseState() != editor.MouseLeft || in.MouseStateQuick() != 0 {
		t.Fatalf("drag: level %v edge %v", in.MouseState(), in.MouseStateQuick())
	}
	in.endFrame()

	in.handleMouse(tcell.NewEventMouse(6, 3, tcell.ButtonNone, tcell.ModNone))
	if in.MouseState() != 0 {
		t.Fatalf("release: level %v", in.MouseState())
	}
}

func TestQuickClickIsHeldForOneFrame(t *testing.T) {
	in := &termInput{}

	// press and release both arrive before the frame runs
	in.handleMouse(tcell.NewEventMouse(4, 2, tcell.Button1, tcell.ModNone))
	in.handleMouse(tcell.NewEventMouse(4, 2, tcell.ButtonNone, tcell.ModNone))
	if in.MouseState() != editor.MouseLeft || in.MouseStateQuick() != editor.MouseLeft {
		t.Fatalf("quick click: level %v edge %v", in.MouseState(), in.MouseStateQuick())
	}
	in.endFrame()
	if in.MouseState() != 0 || in.MouseStateQuick() != 0 {
		t.Fatalf("after frame: level %v edge %v", in.MouseState(), in.MouseStateQuick())
	}
}

func TestKeysArePushedForOneFrame(t *testing.T) {
	in := &termInput{}
	k, err := parseTermKey("X")
	if err != nil {
		t.Fatalf("parseTermKey: %v", err)
	}
	in.buttons[editor.BtnA] = k

	if !in.handleKey(tcell.NewEventKey(tcell.KeyRune, 'X', tcell.ModNone)) {
		t.Fatalf("X should be bound")
	}
	if !in.Btn(0, editor.BtnA) || !in.Btnp(0, editor.BtnA) || in.Btnp(1, editor.BtnA) {
		t.Fatalf("button state after key: held %v pushed %v", in.held, in.pushed)
	}
	in.endFrame()
	if in.Btnp(0, editor.BtnA) {
		t.Fatalf("push survived endFrame")
	}
}

func TestCtrlLetter(t *testing.T) {
	if r, ok := ctrlLetter(tcell.NewEventKey(tcell.KeyCtrlS, 0, tcell.ModCtrl)); !ok || r != 's' {
		t.Fatalf("Ctrl+S = %q, %v", r, ok)
	}
	if _, ok := ctrlLetter(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone)); ok {
		t.Fatalf("Enter must not count as Ctrl+M")
	}
}
