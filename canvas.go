package lineage

import (
	"math"
)

// Canvas is the immediate-mode drawing surface the renderer paints into. It
// mirrors a 2D canvas context: Save and Restore push and pop the current
// transform, and all coordinates passed to the drawing methods are mapped
// through that transform.
type Canvas interface {
	// Size returns the surface size in pixels.
	Size() (w, h float64)
	Save()
	Restore()
	// ClearRect resets the rectangle to the background color.
	ClearRect(x, y, w, h float64)
	Translate(x, y float64)
	Scale(k float64)
	StrokeLine(x0, y0, x1, y1, width float64, c Color)
	FillCircle(cx, cy, r float64, c Color)
	// FillText draws s with its baseline at y, aligned on x.
	FillText(s string, x, y, size float64, align TextAlign, c Color)
}

// TextAlign controls horizontal text alignment.
type TextAlign uint8

const (
	TextAlignLeft   TextAlign = iota // x is the left edge
	TextAlignCenter                  // x is the center
	TextAlignRight                   // x is the right edge
)

// CommandType identifies the kind of render command.
type CommandType uint8

const (
	CommandClear  CommandType = iota // fill a rectangle with the background
	CommandLine                      // stroked line segment
	CommandCircle                    // filled circle
	CommandText                      // text run
)

// RenderCommand is a single draw instruction recorded by a CommandBuffer.
// Geometry is in the coordinates passed to the Canvas call; Transform is the
// canvas transform that was current at that moment.
type RenderCommand struct {
	Type      CommandType
	Transform [6]float64

	Rect   Rect    // CommandClear
	P0, P1 Vec2    // line endpoints; P0 is the circle center or text anchor
	Radius float64 // CommandCircle
	Width  float64 // CommandLine stroke width
	Size   float64 // CommandText font size
	Text   string
	Align  TextAlign
	Color  Color
}

// ScreenP0 returns P0 mapped through the command's transform.
func (c *RenderCommand) ScreenP0() Vec2 {
	x, y := transformPoint(c.Transform, c.P0.X, c.P0.Y)
	return Vec2{X: x, Y: y}
}

// ScreenP1 returns P1 mapped through the command's transform.
func (c *RenderCommand) ScreenP1() Vec2 {
	x, y := transformPoint(c.Transform, c.P1.X, c.P1.Y)
	return Vec2{X: x, Y: y}
}

// ScreenScale returns the factor the transform applies to lengths.
func (c *RenderCommand) ScreenScale() float64 {
	return affineScale(c.Transform)
}

// screenRect returns the axis-aligned screen bounds of a clear command.
func (c *RenderCommand) screenRect() Rect {
	r := c.Rect
	x0, y0 := transformPoint(c.Transform, r.X, r.Y)
	x1, y1 := transformPoint(c.Transform, r.X+r.Width, r.Y)
	x2, y2 := transformPoint(c.Transform, r.X+r.Width, r.Y+r.Height)
	x3, y3 := transformPoint(c.Transform, r.X, r.Y+r.Height)

	minX := math.Min(math.Min(x0, x1), math.Min(x2, x3))
	minY := math.Min(math.Min(y0, y1), math.Min(y2, y3))
	maxX := math.Max(math.Max(x0, x1), math.Max(x2, x3))
	maxY := math.Max(math.Max(y0, y1), math.Max(y2, y3))
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

const defaultCommandCap = 256

// CommandBuffer is a Canvas that records RenderCommands. The recorded list is
// replayed onto an Ebitengine image by Submit.
type CommandBuffer struct {
	width, height float64
	commands      []RenderCommand
	transform     [6]float64
	stack         [][6]float64
}

// NewCommandBuffer returns an empty buffer for a w x h surface.
func NewCommandBuffer(w, h float64) *CommandBuffer {
	return &CommandBuffer{
		width:     w,
		height:    h,
		commands:  make([]RenderCommand, 0, defaultCommandCap),
		transform: identityAffine,
	}
}

// Size implements Canvas.
func (b *CommandBuffer) Size() (float64, float64) {
	return b.width, b.height
}

// Resize changes the surface size reported by Size.
func (b *CommandBuffer) Resize(w, h float64) {
	b.width, b.height = w, h
}

// Reset drops recorded commands. The transform state is kept.
func (b *CommandBuffer) Reset() {
	b.commands = b.commands[:0]
}

// Commands returns the recorded commands. The returned slice MUST NOT be
// mutated by the caller.
func (b *CommandBuffer) Commands() []RenderCommand {
	return b.commands
}

// Count returns how many recorded commands have type t.
func (b *CommandBuffer) Count(t CommandType) int {
	n := 0
	for i := range b.commands {
		if b.commands[i].Type == t {
			n++
		}
	}
	return n
}

// Depth returns the number of unmatched Save calls.
func (b *CommandBuffer) Depth() int {
	return len(b.stack)
}

// Save implements Canvas.
func (b *CommandBuffer) Save() {
	b.stack = append(b.stack, b.transform)
}

// Restore implements Canvas. Restoring with nothing saved is a no-op.
func (b *CommandBuffer) Restore() {
	if len(b.stack) == 0 {
		return
	}
	b.transform = b.stack[len(b.stack)-1]
	b.stack = b.stack[:len(b.stack)-1]
}

// Translate implements Canvas.
func (b *CommandBuffer) Translate(x, y float64) {
	b.transform = multiplyAffine(b.transform, [6]float64{1, 0, 0, 1, x, y})
}

// Scale implements Canvas.
func (b *CommandBuffer) Scale(k float64) {
	b.transform = multiplyAffine(b.transform, [6]float64{k, 0, 0, k, 0, 0})
}

// ClearRect implements Canvas.
func (b *CommandBuffer) ClearRect(x, y, w, h float64) {
	b.commands = append(b.commands, RenderCommand{
		Type:      CommandClear,
		Transform: b.transform,
		Rect:      Rect{X: x, Y: y, Width: w, Height: h},
		Color:     ColorBackground,
	})
}

// StrokeLine implements Canvas.
func (b *CommandBuffer) StrokeLine(x0, y0, x1, y1, width float64, c Color) {
	b.commands = append(b.commands, RenderCommand{
		Type:      CommandLine,
		Transform: b.transform,
		P0:        Vec2{X: x0, Y: y0},
		P1:        Vec2{X: x1, Y: y1},
		Width:     width,
		Color:     c,
	})
}

// FillCircle implements Canvas.
func (b *CommandBuffer) FillCircle(cx, cy, r float64, c Color) {
	b.commands = append(b.commands, RenderCommand{
		Type:      CommandCircle,
		Transform: b.transform,
		P0:        Vec2{X: cx, Y: cy},
		Radius:    r,
		Color:     c,
	})
}

// FillText implements Canvas.
func (b *CommandBuffer) FillText(s string, x, y, size float64, align TextAlign, c Color) {
	b.commands = append(b.commands, RenderCommand{
		Type:      CommandText,
		Transform: b.transform,
		P0:        Vec2{X: x, Y: y},
		Size:      size,
		Text:      s,
		Align:     align,
		Color:     c,
	})
}
