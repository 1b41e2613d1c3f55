package editor

import "github.com/milk9111/px8edit/cart"

// State is the editor context shared by every component for one frame. The
// Editor owns it and passes it down by pointer; no component keeps a copy.
type State struct {
	Input FrameInput

	Bank   int
	Sprite int
	// SpriteZoom is the number of sprites per side treated as one unit. Only
	// the SpriteEditor changes it.
	SpriteZoom int
	BatchY     int

	History History
}

func NewState() *State {
	return &State{SpriteZoom: 1, BatchY: DefaultBatchY}
}

// BankOf returns the bank holding sprite n.
func BankOf(n int) int { return n / cart.BankSize }

// SpriteOrigin returns the top-left pixel of sprite n in the sprite sheet.
func SpriteOrigin(n int) (x, y int) {
	return (n % cart.SheetColumns) * cart.SpriteSize, (n / cart.SheetColumns) * cart.SpriteSize
}

// SpriteBlock returns the size in pixels of the active zoomed block.
func (s *State) SpriteBlock() int { return cart.SpriteSize * s.SpriteZoom }

// SelectSprite makes n the active sprite when it is in range.
func (s *State) SelectSprite(n int) {
	if n < 0 || n >= cart.SpriteCount {
		return
	}
	s.Sprite = n
	s.Bank = BankOf(n)
}
