package lineage

import "math"

// ViewTransform is the pan/zoom state: screen = world*K + (X, Y).
type ViewTransform struct {
	X, Y float64
	K    float64
}

// Identity is the transform used for the first paint after every fetch.
var Identity = ViewTransform{K: 1}

// Apply maps a world point to screen coordinates.
func (t ViewTransform) Apply(x, y float64) (float64, float64) {
	return x*t.K + t.X, y*t.K + t.Y
}

// Invert maps a screen point back to world coordinates.
func (t ViewTransform) Invert(sx, sy float64) (float64, float64) {
	return (sx - t.X) / t.K, (sy - t.Y) / t.K
}

// Translate returns t panned by (dx, dy) screen pixels.
func (t ViewTransform) Translate(dx, dy float64) ViewTransform {
	return ViewTransform{X: t.X + dx, Y: t.Y + dy, K: t.K}
}

// ScaleAt returns t zoomed by factor around the screen point (sx, sy), which
// stays fixed on screen. The resulting scale is clamped to extent.
func (t ViewTransform) ScaleAt(sx, sy, factor float64, extent ScaleExtent) ViewTransform {
	k := extent.Clamp(t.K * factor)
	wx, wy := t.Invert(sx, sy)
	return ViewTransform{X: sx - wx*k, Y: sy - wy*k, K: k}
}

// ScaleExtent bounds the zoom factor.
type ScaleExtent struct {
	Min, Max float64
}

// DefaultScaleExtent is the allowed zoom range, [0.2, 2].
var DefaultScaleExtent = ScaleExtent{Min: MinScale, Max: MaxScale}

// Clamp restricts k to the extent. NaN clamps to Min.
func (e ScaleExtent) Clamp(k float64) float64 {
	if math.IsNaN(k) || k < e.Min {
		return e.Min
	}
	if k > e.Max {
		return e.Max
	}
	return k
}

// ClampTransform returns t with its scale clamped to e.
func (e ScaleExtent) ClampTransform(t ViewTransform) ViewTransform {
	t.K = e.Clamp(t.K)
	return t
}

// identityAffine is the identity affine matrix.
var identityAffine = [6]float64{1, 0, 0, 1, 0, 0}

// multiplyAffine multiplies two 2D affine matrices: result = parent * child.
//
//	Matrix layout: [a, b, c, d, tx, ty]
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
func multiplyAffine(p, c [6]float64) [6]float64 {
	return [6]float64{
		p[0]*c[0] + p[2]*c[1],
		p[1]*c[0] + p[3]*c[1],
		p[0]*c[2] + p[2]*c[3],
		p[1]*c[2] + p[3]*c[3],
		p[0]*c[4] + p[2]*c[5] + p[4],
		p[1]*c[4] + p[3]*c[5] + p[5],
	}
}

// transformPoint applies an affine matrix to a point.
func transformPoint(m [6]float64, x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}

// affineScale returns the uniform scale factor of m, used for radii and
// stroke widths. Non-uniform matrices report the geometric mean.
func affineScale(m [6]float64) float64 {
	return math.Sqrt(math.Abs(m[0]*m[3] - m[2]*m[1]))
}
