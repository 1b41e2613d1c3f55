package editor

import "github.com/milk9111/px8edit/cart"

// flagColors holds the indicator colour for a clear and a set flag.
var flagColors = [2]int{8, 11}

// FlagPanel shows and toggles the eight flag bits of the active sprite.
//
// Toggling is level triggered: a bit flips on every frame the left button is
// held over it, unlike painting which fires once per click.
type FlagPanel struct {
	colors [cart.FlagBits]int
}

func flagRect(bit int) Rect {
	return RectAt(flagX+flagStride*bit, flagY, flagSize, flagSize)
}

func (f *FlagPanel) Update(st *State, s Surface) {
	in := &st.Input
	for bit := 0; bit < cart.FlagBits; bit++ {
		set := s.Fget(st.Sprite, bit)
		if in.Down(MouseLeft) && flagRect(bit).Contains(in.MouseX, in.MouseY) {
			s.Fset(st.Sprite, bit, !set)
			set = s.Fget(st.Sprite, bit)
		}
		f.colors[bit] = flagColors[0]
		if set {
			f.colors[bit] = flagColors[1]
		}
	}
}

func (f *FlagPanel) Draw(s Surface) {
	for bit, c := range f.colors {
		x := flagX + flagStride*bit
		s.Rectfill(x, flagY, x+flagSize, flagY+flagSize, c)
	}
}
