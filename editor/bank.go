package editor

import (
	"strconv"

	"github.com/milk9111/px8edit/cart"
)

// SpriteBank browses the sprite sheet one bank of 64 sprites at a time and
// selects the active sprite. It owns the bank buttons and the FlagPanel.
type SpriteBank struct {
	Buttons [cart.BankCount]*Button
	Flags   FlagPanel
}

func NewSpriteBank() *SpriteBank {
	b := &SpriteBank{}
	for i, x := range bankButtonX {
		r := Rect{X1: x[0], Y1: bankButtonY1, X2: x[1], Y2: bankButtonY2}
		b.Buttons[i] = NewButton(r, 2, strconv.Itoa(i+1), i == 0)
	}
	return b
}

func (b *SpriteBank) strip() Rect {
	return Rect{X1: bankButtonX[0][0], Y1: bankButtonY1, X2: bankButtonX[len(bankButtonX)-1][1], Y2: bankButtonY2}
}

func thumbnails(st *State) Rect {
	return RectAt(0, st.BatchY, thumbColumns*thumbCell, thumbRows*thumbCell)
}

func (b *SpriteBank) Update(st *State, s Surface) {
	in := &st.Input
	if in.Down(MouseLeft) {
		mx, my := in.MouseX, in.MouseY
		if b.strip().Contains(mx, my) {
			for i, btn := range b.Buttons {
				btn.UpdateHit(mx, my)
				if btn.Clicked {
					st.Bank = i
					st.Sprite = cart.BankSize * i
				}
			}
		}
		if thumbnails(st).Contains(mx, my) {
			x := mx / thumbCell
			y := (my - st.BatchY) / thumbCell
			st.Sprite = x + y*thumbColumns + cart.BankSize*st.Bank
		}
	}
	for i, btn := range b.Buttons {
		btn.Clicked = i == st.Bank
	}

	b.Flags.Update(st, s)
}

func (b *SpriteBank) Draw(st *State, s Surface) {
	first := cart.BankSize * st.Bank
	for i := 0; i < cart.BankSize; i++ {
		x := (i % thumbColumns) * thumbCell
		y := st.BatchY + (i/thumbColumns)*thumbCell
		s.Spr(first+i, x, y, 1, 1, false, false)
	}

	if BankOf(st.Sprite) == st.Bank {
		i := st.Sprite - first
		x := (i%thumbColumns)*thumbCell - 1
		y := st.BatchY + (i/thumbColumns)*thumbCell
		ext := thumbCell * st.SpriteZoom
		s.Rect(x, y, x+ext, y+ext, 7)
		s.Rect(x-1, y-1, x+1+ext, y+1+ext, 0)
	}

	b.Flags.Draw(s)
	for _, btn := range b.Buttons {
		btn.Draw(s)
	}
	s.Print(strconv.Itoa(st.Sprite), spriteIndexX, spriteIndexY, spriteIndexCol)
}
