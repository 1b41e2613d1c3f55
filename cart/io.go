package cart

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

const fileVersion = 1

// file is the on-disk JSON form of a cartridge. Sheet rows hold one hex
// digit per pixel, map rows two hex digits per cell.
type file struct {
	Version int      `json:"version"`
	Gfx     []string `json:"gfx"`
	Flags   string   `json:"flags"`
	Map     []string `json:"map"`
}

// Decode reads a cartridge from its JSON form.
func Decode(r io.Reader) (*Cartridge, error) {
	var f file
	if err := json.NewDecoder(r).Decode(&f); err != nil {
		return nil, fmt.Errorf("cart: decode: %w", err)
	}
	if f.Version > fileVersion {
		return nil, fmt.Errorf("cart: unsupported version %d", f.Version)
	}

	c := New()
	if len(f.Gfx) > SheetSize {
		return nil, fmt.Errorf("cart: gfx has %d rows, want at most %d", len(f.Gfx), SheetSize)
	}
	for y, row := range f.Gfx {
		if len(row) > SheetSize {
			return nil, fmt.Errorf("cart: gfx row %d has %d pixels", y, len(row))
		}
		for x, ch := range row {
			v, err := hexDigit(ch)
			if err != nil {
				return nil, fmt.Errorf("cart: gfx row %d col %d: %w", y, x, err)
			}
			c.Sheet.SetColorIndex(x, y, v)
		}
	}

	flags, err := hex.DecodeString(strings.TrimSpace(f.Flags))
	if err != nil {
		return nil, fmt.Errorf("cart: flags: %w", err)
	}
	if len(flags) > SpriteCount {
		return nil, fmt.Errorf("cart: %d flag bytes, want at most %d", len(flags), SpriteCount)
	}
	copy(c.Flags[:], flags)

	if len(f.Map) > MapHeight {
		return nil, fmt.Errorf("cart: map has %d rows, want at most %d", len(f.Map), MapHeight)
	}
	for y, row := range f.Map {
		cells, err := hex.DecodeString(row)
		if err != nil {
			return nil, fmt.Errorf("cart: map row %d: %w", y, err)
		}
		if len(cells) > MapWidth {
			return nil, fmt.Errorf("cart: map row %d has %d cells", y, len(cells))
		}
		copy(c.Map[y][:], cells)
	}
	return c, nil
}

// Encode writes the cartridge in its JSON form.
func (c *Cartridge) Encode(w io.Writer) error {
	f := file{
		Version: fileVersion,
		Gfx:     make([]string, SheetSize),
		Flags:   hex.EncodeToString(c.Flags[:]),
		Map:     make([]string, MapHeight),
	}
	var sb strings.Builder
	for y := 0; y < SheetSize; y++ {
		sb.Reset()
		for x := 0; x < SheetSize; x++ {
			sb.WriteByte("0123456789abcdef"[c.Sheet.ColorIndexAt(x, y)&0x0f])
		}
		f.Gfx[y] = sb.String()
	}
	for y := 0; y < MapHeight; y++ {
		f.Map[y] = hex.EncodeToString(c.Map[y][:])
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(f)
}

// Load reads a cartridge file from disk.
func Load(path string) (*Cartridge, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cart: open %s: %w", path, err)
	}
	defer fh.Close()
	c, err := Decode(fh)
	if err != nil {
		return nil, fmt.Errorf("cart: load %s: %w", path, err)
	}
	return c, nil
}

// LoadOrDefault loads path, falling back to the embedded default cartridge
// when path is empty or does not exist yet.
func LoadOrDefault(path string) (*Cartridge, error) {
	if path == "" {
		return Default()
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default()
	}
	return Load(path)
}

// Save writes the cartridge to path through a temporary file in the same
// directory, so a failed save never leaves a truncated cartridge behind.
func (c *Cartridge) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("cart: save %s: %w", path, err)
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("cart: save %s: %w", path, err)
	}
	defer os.Remove(tmp.Name())

	if err := c.Encode(tmp); err != nil {
		tmp.Close()
		return fmt.Errorf("cart: save %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("cart: save %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("cart: save %s: %w", path, err)
	}
	c.MarkClean()
	return nil
}

func hexDigit(r rune) (uint8, error) {
	switch {
	case r >= '0' && r <= '9':
		return uint8(r - '0'), nil
	case r >= 'a' && r <= 'f':
		return uint8(r-'a') + 10, nil
	case r >= 'A' && r <= 'F':
		return uint8(r-'A') + 10, nil
	}
	return 0, fmt.Errorf("invalid hex digit %q", r)
}
