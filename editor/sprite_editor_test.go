package editor

import (
	"image"
	"testing"
)

func TestSpriteZoomCycles(t *testing.T) {
	e, s, _ := newTestEditor(t)
	want := []int{2, 4, 1, 2, 4, 1, 2}
	for i, w := range want {
		step(t, e, s, button(BtnA))
		if e.State.SpriteZoom != w {
			t.Fatalf("press %d: zoom = %d, want %d", i, e.State.SpriteZoom, w)
		}
		if e.Sprites.Zoom() != w {
			t.Fatalf("press %d: editor zoom = %d, want %d", i, e.Sprites.Zoom(), w)
		}
	}
}

func TestSpriteCanvasShowsZoomedBlock(t *testing.T) {
	e, s, c := newTestEditor(t)
	c.SetPixel(1, 0, 8)
	step(t, e, s, idle())
	// zoom 1: each sheet pixel is 16x16 on the canvas
	if got := s.Pget(canvasX+16, canvasY); got != 8 {
		t.Fatalf("canvas pixel = %d, want 8", got)
	}

	step(t, e, s, button(BtnA))
	// zoom 2: 8x8 per sheet pixel
	if got := s.Pget(canvasX+8, canvasY); got != 8 {
		t.Fatalf("canvas pixel at zoom 2 = %d, want 8", got)
	}
}

func TestShiftWrapsWithinBlock(t *testing.T) {
	e, s, c := newTestEditor(t)
	c.SetPixel(0, 0, 7)

	step(t, e, s, button(BtnRight))
	if c.Pixel(0, 0) != 0 || c.Pixel(1, 0) != 7 {
		t.Fatalf("shift right: (0,0)=%d (1,0)=%d", c.Pixel(0, 0), c.Pixel(1, 0))
	}

	step(t, e, s, button(BtnLeft), button(BtnLeft))
	if c.Pixel(7, 0) != 7 {
		t.Fatalf("shift left did not wrap: (7,0)=%d", c.Pixel(7, 0))
	}
	if c.Pixel(8, 0) != 0 {
		t.Fatalf("shift leaked into the next sprite")
	}

	step(t, e, s, button(BtnUp))
	if c.Pixel(7, 7) != 7 {
		t.Fatalf("shift up did not wrap: (7,7)=%d", c.Pixel(7, 7))
	}

	if err := e.Undo(s); err != nil {
		t.Fatalf("Undo: %v", err)
	}
	if c.Pixel(7, 0) != 7 || c.Pixel(7, 7) != 0 {
		t.Fatalf("undo of shift up: (7,0)=%d (7,7)=%d", c.Pixel(7, 0), c.Pixel(7, 7))
	}
}

func TestCopyPasteBlock(t *testing.T) {
	e, s, c := newTestEditor(t)
	e.State.SelectSprite(1)
	c.SetPixel(8, 0, 9)
	c.SetPixel(15, 7, 12)

	img := e.CopyBlock(s)
	if img.Bounds() != image.Rect(0, 0, 8, 8) {
		t.Fatalf("copied bounds = %v", img.Bounds())
	}
	if img.ColorIndexAt(0, 0) != 9 || img.ColorIndexAt(7, 7) != 12 {
		t.Fatalf("copied block does not match the sheet")
	}

	e.State.SelectSprite(18) // origin (16,8)
	e.PasteBlock(s, img)
	if c.Pixel(16, 8) != 9 || c.Pixel(23, 15) != 12 {
		t.Fatalf("paste: (16,8)=%d (23,15)=%d", c.Pixel(16, 8), c.Pixel(23, 15))
	}

	if err := e.Undo(s); err != nil {
		t.Fatalf("Undo: %v", err)
	}
	if c.Pixel(16, 8) != 0 || c.Pixel(23, 15) != 0 {
		t.Fatalf("undo of paste left pixels behind")
	}
}

func TestPasteIntoLockedCartridgeRecordsNothing(t *testing.T) {
	e, s, c := newTestEditor(t)
	img := e.CopyBlock(s)
	img.SetColorIndex(2, 2, 5)

	c.Lock()
	e.PasteBlock(s, img)
	if c.Pixel(2, 2) != 0 {
		t.Fatalf("locked cartridge was written")
	}
	if e.State.History.Len() != 0 {
		t.Fatalf("history length = %d, want 0", e.State.History.Len())
	}
}
