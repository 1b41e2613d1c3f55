package cart

import (
	"bytes"
	_ "embed"
	"fmt"
)

//go:embed default.json
var defaultCart []byte

// Default returns a fresh copy of the cartridge shipped with the editor.
func Default() (*Cartridge, error) {
	c, err := Decode(bytes.NewReader(defaultCart))
	if err != nil {
		return nil, fmt.Errorf("cart: default cartridge: %w", err)
	}
	return c, nil
}
