package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	s, err := Default()
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	if err := s.Validate(); err != nil {
		t.Fatalf("default settings invalid: %v", err)
	}
	if s.Scale != 3 || s.Cartridge != "cart.json" || s.BatchY != 200 || s.Keys.A != "X" {
		t.Fatalf("unexpected defaults: %+v", s)
	}
	if got := s.Keys.Buttons(); got[4] != "X" || got[0] != "ArrowLeft" {
		t.Fatalf("Buttons() = %v", got)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "px8edit.yaml")
	data := "scale: 2\nread_only: true\nbatch_y: 150\nkeys:\n  a: Q\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.Scale != 2 || !s.ReadOnly || s.BatchY != 150 || s.Keys.A != "Q" {
		t.Fatalf("overrides not applied: %+v", s)
	}
	if s.Keys.B != "Z" || s.ExportScale != 4 {
		t.Fatalf("defaults lost: %+v", s)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.Scale != 3 {
		t.Fatalf("Scale = %d, want 3", s.Scale)
	}
}

func TestLoadRejectsBadSettings(t *testing.T) {
	cases := []struct {
		name string
		data string
		want string
	}{
		{"scale", "scale: 0\n", "scale"},
		{"autosave", "autosave_seconds: -1\n", "autosave_seconds"},
		{"batch_y", "batch_y: 205\n", "batch_y"},
		{"duplicate_key", "keys:\n  a: z\n", "bound to both"},
		{"unbound", "keys:\n  start: \"\"\n", "not bound"},
		{"syntax", "scale: [\n", "unmarshal"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "settings.yaml")
			if err := os.WriteFile(path, []byte(c.data), 0o644); err != nil {
				t.Fatalf("write: %v", err)
			}
			_, err := Load(path)
			if err == nil || !strings.Contains(err.Error(), c.want) {
				t.Fatalf("Load error = %v, want it to mention %q", err, c.want)
			}
		})
	}
}
