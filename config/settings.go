package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed settings.yaml
var defaultSettings []byte

// Keys names the keyboard key bound to each editor action. Names are host
// neutral ("ArrowLeft", "X", "Enter"); each host maps them to its own key
// codes. Undo, copy, paste and save are combined with the control key.
type Keys struct {
	Left  string `yaml:"left"`
	Right string `yaml:"right"`
	Up    string `yaml:"up"`
	Down  string `yaml:"down"`
	A     string `yaml:"a"`
	B     string `yaml:"b"`
	Start string `yaml:"start"`
	Pause string `yaml:"pause"`

	Undo  string `yaml:"undo"`
	Copy  string `yaml:"copy"`
	Paste string `yaml:"paste"`
	Save  string `yaml:"save"`
}

// Buttons returns the keys of the eight console buttons in button order.
func (k Keys) Buttons() [8]string {
	return [8]string{k.Left, k.Right, k.Up, k.Down, k.A, k.B, k.Start, k.Pause}
}

type Settings struct {
	// Scale is the window scale factor of the graphical host.
	Scale     int    `yaml:"scale"`
	Cartridge string `yaml:"cartridge"`
	// AutosaveSeconds saves a dirty cartridge periodically; 0 disables it.
	AutosaveSeconds int  `yaml:"autosave_seconds"`
	ReadOnly        bool `yaml:"read_only"`
	ExportScale     int  `yaml:"export_scale"`
	// BatchY is the screen row of the sprite bank thumbnails.
	BatchY int  `yaml:"batch_y"`
	Keys   Keys `yaml:"keys"`
}

// Default returns the settings shipped with the editor.
func Default() (*Settings, error) {
	var s Settings
	if err := yaml.Unmarshal(defaultSettings, &s); err != nil {
		return nil, fmt.Errorf("config: unmarshal default settings: %w", err)
	}
	return &s, nil
}

// Load reads settings from path on top of the defaults, so a file only needs
// the fields it changes. A missing file yields the defaults.
func Load(path string) (*Settings, error) {
	s, err := Default()
	if err != nil {
		return nil, err
	}
	if path == "" {
		return s, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("config: load %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("config: unmarshal %s: %w", path, err)
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return s, nil
}

// Validate checks ranges and that no key is bound twice.
func (s *Settings) Validate() error {
	if s.Scale < 1 || s.Scale > 16 {
		return fmt.Errorf("scale %d out of range [1,16]", s.Scale)
	}
	if s.AutosaveSeconds < 0 {
		return fmt.Errorf("autosave_seconds %d is negative", s.AutosaveSeconds)
	}
	if s.ExportScale < 1 || s.ExportScale > 32 {
		return fmt.Errorf("export_scale %d out of range [1,32]", s.ExportScale)
	}
	// four rows of 8px thumbnails must fit on the 236px screen
	if s.BatchY < 0 || s.BatchY > 204 {
		return fmt.Errorf("batch_y %d out of range [0,204]", s.BatchY)
	}

	k := s.Keys
	bound := map[string]string{}
	for _, b := range []struct{ action, key string }{
		{"left", k.Left}, {"right", k.Right}, {"up", k.Up}, {"down", k.Down},
		{"a", k.A}, {"b", k.B}, {"start", k.Start}, {"pause", k.Pause},
	} {
		if b.key == "" {
			return fmt.Errorf("key %s is not bound", b.action)
		}
		name := strings.ToLower(b.key)
		if other, ok := bound[name]; ok {
			return fmt.Errorf("key %q bound to both %s and %s", b.key, other, b.action)
		}
		bound[name] = b.action
	}
	return nil
}
