package main

import (
	"image"
	"testing"
)

func TestFrameRects(t *testing.T) {
	tests := []struct {
		name               string
		first, count, size int
		want               []image.Rectangle
	}{
		{"single_sprites", 1, 3, 1, []image.Rectangle{
			image.Rect(8, 0, 16, 8), image.Rect(16, 0, 24, 8), image.Rect(24, 0, 32, 8),
		}},
		{"double_sprites", 16, 2, 2, []image.Rectangle{
			image.Rect(0, 8, 16, 24), image.Rect(16, 8, 32, 24),
		}},
		{"wraps_to_next_block_row", 14, 2, 2, []image.Rectangle{
			image.Rect(112, 0, 128, 16), image.Rect(0, 16, 16, 32),
		}},
		{"misaligned_block", 15, 3, 2, nil},
		{"stops_at_sheet_end", 255, 2, 1, []image.Rectangle{
			image.Rect(120, 120, 128, 128),
		}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := frameRects(tc.first, tc.count, tc.size)
			if len(got) != len(tc.want) {
				t.Fatalf("frameRects = %v, want %v", got, tc.want)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Errorf("frame %d = %v, want %v", i, got[i], tc.want[i])
				}
			}
		})
	}
}
