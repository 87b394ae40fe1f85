package lineage

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func approxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}

func assertNear(t *testing.T, name string, got, want float64) {
	t.Helper()
	if !approxEqual(got, want, 1e-6) {
		t.Errorf("%s = %f, want %f", name, got, want)
	}
}

func TestRGBRoundTrip(t *testing.T) {
	tests := []struct {
		hex  uint32
		want Color
	}{
		{0x000000, Color{0, 0, 0, 1}},
		{0xFFFFFF, Color{1, 1, 1, 1}},
		{0x4A90E2, Color{R: 0x4A / 255.0, G: 0x90 / 255.0, B: 0xE2 / 255.0, A: 1}},
	}
	for _, tt := range tests {
		c := RGB(tt.hex)
		if !approxEqual(c.R, tt.want.R, epsilon) || !approxEqual(c.G, tt.want.G, epsilon) ||
			!approxEqual(c.B, tt.want.B, epsilon) || c.A != 1 {
			t.Errorf("RGB(%06X) = %+v, want %+v", tt.hex, c, tt.want)
		}
		if got := c.Hex(); got != tt.hex {
			t.Errorf("RGB(%06X).Hex() = %06X", tt.hex, got)
		}
	}
}

func TestPaletteValues(t *testing.T) {
	tests := []struct {
		name string
		c    Color
		hex  uint32
	}{
		{"male", ColorMale, 0x4A90E2},
		{"female", ColorFemale, 0xE91E63},
		{"unknown", ColorUnknown, 0x9E9E9E},
		{"link", ColorLink, 0x999999},
		{"label", ColorLabel, 0x000000},
	}
	for _, tt := range tests {
		if got := tt.c.Hex(); got != tt.hex {
			t.Errorf("%s = %06X, want %06X", tt.name, got, tt.hex)
		}
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 20, Width: 30, Height: 40}
	tests := []struct {
		x, y float64
		want bool
	}{
		{10, 20, true},
		{40, 60, true},
		{25, 30, true},
		{9.9, 30, false},
		{25, 60.1, false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.x, tt.y); got != tt.want {
			t.Errorf("Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}
