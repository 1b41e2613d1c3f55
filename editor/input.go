package editor

// MouseButtons is a bit set of mouse buttons.
type MouseButtons uint32

const (
	MouseLeft MouseButtons = 1 << iota
	MouseRight
	MouseMiddle
)

// Logical console buttons, per player.
const (
	BtnLeft = iota
	BtnRight
	BtnUp
	BtnDown
	BtnA
	BtnB
	BtnStart
	BtnPause

	buttonCount
)

// Input is the platform input provider polled once per frame.
type Input interface {
	// MouseState returns the buttons currently held.
	MouseState() MouseButtons
	// MouseStateQuick returns the buttons that went down this frame.
	MouseStateQuick() MouseButtons
	MouseX() int
	MouseY() int
	Btn(player, index int) bool
	Btnp(player, index int) bool
}

// FrameInput is the input snapshot for one frame. Every component reads the
// same snapshot; only the Editor refreshes it.
type FrameInput struct {
	MouseX, MouseY int
	// Buttons holds the mouse buttons held this frame (level).
	Buttons MouseButtons
	// Pressed holds the mouse buttons that went down this frame (edge).
	Pressed MouseButtons

	held   [buttonCount]bool
	pushed [buttonCount]bool
}

// Refresh copies the current state of in. It is called once per frame before
// any component reads the snapshot.
func (f *FrameInput) Refresh(in Input) {
	f.Buttons = in.MouseState()
	f.Pressed = in.MouseStateQuick()
	f.MouseX = in.MouseX()
	f.MouseY = in.MouseY()
	for i := 0; i < buttonCount; i++ {
		f.held[i] = in.Btn(0, i)
		f.pushed[i] = in.Btnp(0, i)
	}
}

// Down reports whether b is held this frame.
func (f *FrameInput) Down(b MouseButtons) bool { return f.Buttons&b != 0 }

// Clicked reports whether b went down this frame.
func (f *FrameInput) Clicked(b MouseButtons) bool { return f.Pressed&b != 0 }

// Held reports whether player one's button is held.
func (f *FrameInput) Held(button int) bool {
	return button >= 0 && button < buttonCount && f.held[button]
}

// Pushed reports whether player one's button went down this frame.
func (f *FrameInput) Pushed(button int) bool {
	return button >= 0 && button < buttonCount && f.pushed[button]
}
