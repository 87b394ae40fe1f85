package lineage

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestSanitizeLabel(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", "unlabeled"},
		{"   ", "unlabeled"},
		{"after-toggle", "after-toggle"},
		{"zoom 2x/left", "zoom_2x_left"},
		{"v1.2", "v1.2"},
		{"ünïcode", "_n_code"},
	}
	for _, tt := range tests {
		if got := sanitizeLabel(tt.in); got != tt.want {
			t.Errorf("sanitizeLabel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestWritePNG(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.Set(1, 1, color.NRGBA{R: 0x4A, G: 0x90, B: 0xE2, A: 0xFF})

	path := filepath.Join(t.TempDir(), "shot.png")
	if err := writePNG(path, img); err != nil {
		t.Fatalf("writePNG: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	got, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	r, g, b, _ := got.At(1, 1).RGBA()
	if r>>8 != 0x4A || g>>8 != 0x90 || b>>8 != 0xE2 {
		t.Errorf("pixel = %02X%02X%02X", r>>8, g>>8, b>>8)
	}
}

func TestWritePNGBadPath(t *testing.T) {
	err := writePNG(filepath.Join(t.TempDir(), "missing", "shot.png"), image.NewNRGBA(image.Rect(0, 0, 1, 1)))
	if err == nil {
		t.Error("writePNG into a missing directory succeeded")
	}
}
