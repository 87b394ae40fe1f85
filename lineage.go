package lineage

import "image/color"

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at submission time.
type Color struct {
	R, G, B, A float64
}

// RGB returns an opaque Color from a 0xRRGGBB value.
func RGB(hex uint32) Color {
	return Color{
		R: float64(hex>>16&0xff) / 255,
		G: float64(hex>>8&0xff) / 255,
		B: float64(hex&0xff) / 255,
		A: 1,
	}
}

// Hex returns the color as a 0xRRGGBB value, ignoring alpha.
func (c Color) Hex() uint32 {
	return uint32(clamp01(c.R)*255+0.5)<<16 |
		uint32(clamp01(c.G)*255+0.5)<<8 |
		uint32(clamp01(c.B)*255+0.5)
}

// toRGBA converts a Color to a premultiplied color.RGBA.
func (c Color) toRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Palette. Values match the web viewer the backend was built for.
var (
	ColorMale       = RGB(0x4A90E2)
	ColorFemale     = RGB(0xE91E63)
	ColorUnknown    = RGB(0x9E9E9E)
	ColorLink       = RGB(0x999999)
	ColorLabel      = RGB(0x000000)
	ColorBackground = RGB(0xFFFFFF)
)

// Vec2 is a 2D vector used for positions, offsets and sizes.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Fixed drawing constants for the tree.
const (
	NodeSpacing    = 80.0  // horizontal distance between adjacent siblings
	LevelSpacing   = 180.0 // vertical distance between generations
	NodeRadius     = 14.0
	LinkWidth      = 2.0
	LabelSize      = 12.0
	LabelOffsetY   = 20.0 // label baseline sits this far above the node center
	MinScale       = 0.2
	MaxScale       = 2.0
	dragDeadZone   = 4.0  // pixels
	wheelZoomRate  = 0.2  // zoom doubles every 5 wheel units
	moreStubLength = 12.0 // truncation stub below a node with unsent children
	moreDotRadius  = 3.0
)
