package lineage

import (
	"math"
	"testing"

	"pgregory.net/rapid"
)

func TestViewTransformApplyInvert(t *testing.T) {
	tr := ViewTransform{X: 100, Y: -50, K: 1.5}
	sx, sy := tr.Apply(10, 20)
	assertNear(t, "sx", sx, 115)
	assertNear(t, "sy", sy, -20)

	wx, wy := tr.Invert(sx, sy)
	assertNear(t, "wx", wx, 10)
	assertNear(t, "wy", wy, 20)
}

func TestViewTransformTranslate(t *testing.T) {
	tr := ViewTransform{X: 1, Y: 2, K: 0.5}.Translate(10, -4)
	if tr != (ViewTransform{X: 11, Y: -2, K: 0.5}) {
		t.Errorf("Translate = %+v", tr)
	}
}

func TestViewTransformScaleAtKeepsPointFixed(t *testing.T) {
	tr := ViewTransform{X: 30, Y: 40, K: 1}
	wx, wy := tr.Invert(200, 150)

	zoomed := tr.ScaleAt(200, 150, 1.5, DefaultScaleExtent)
	assertNear(t, "K", zoomed.K, 1.5)
	sx, sy := zoomed.Apply(wx, wy)
	assertNear(t, "sx", sx, 200)
	assertNear(t, "sy", sy, 150)
}

func TestViewTransformScaleAtClamps(t *testing.T) {
	tests := []struct {
		name   string
		k      float64
		factor float64
		want   float64
	}{
		{"zoom in past max", 1.5, 4, MaxScale},
		{"zoom out past min", 0.5, 0.1, MinScale},
		{"within range", 1, 0.5, 0.5},
		{"at max", MaxScale, 1.2, MaxScale},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ViewTransform{K: tt.k}.ScaleAt(0, 0, tt.factor, DefaultScaleExtent)
			assertNear(t, "K", got.K, tt.want)
		})
	}
}

func TestScaleExtentClamp(t *testing.T) {
	e := DefaultScaleExtent
	tests := []struct {
		in, want float64
	}{
		{0, MinScale},
		{-3, MinScale},
		{math.NaN(), MinScale},
		{math.Inf(1), MaxScale},
		{0.2, 0.2},
		{1.3, 1.3},
		{2, 2},
		{10, MaxScale},
	}
	for _, tt := range tests {
		if got := e.Clamp(tt.in); got != tt.want {
			t.Errorf("Clamp(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestScaleAlwaysClamped(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		tr := Identity
		steps := rapid.IntRange(1, 30).Draw(t, "steps")
		for i := 0; i < steps; i++ {
			sx := rapid.Float64Range(-2000, 2000).Draw(t, "sx")
			sy := rapid.Float64Range(-2000, 2000).Draw(t, "sy")
			factor := rapid.Float64Range(0.01, 50).Draw(t, "factor")
			tr = tr.ScaleAt(sx, sy, factor, DefaultScaleExtent)
			if tr.K < MinScale || tr.K > MaxScale {
				t.Fatalf("K = %v after step %d", tr.K, i)
			}
		}
	})
}

func TestAffineHelpers(t *testing.T) {
	m := [6]float64{2, 0, 0, 2, 5, 7}
	x, y := transformPoint(m, 1, 1)
	assertNear(t, "x", x, 7)
	assertNear(t, "y", y, 9)
	assertNear(t, "scale", affineScale(m), 2)

	both := multiplyAffine([6]float64{1, 0, 0, 1, 10, 20}, [6]float64{3, 0, 0, 3, 0, 0})
	x, y = transformPoint(both, 1, 2)
	assertNear(t, "composed x", x, 13)
	assertNear(t, "composed y", y, 26)

	if got := multiplyAffine(identityAffine, m); got != m {
		t.Errorf("identity * m = %v, want %v", got, m)
	}
}
