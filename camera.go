package lineage

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// focusAnim holds active tweens for the camera translation.
type focusAnim struct {
	tweenX *gween.Tween
	tweenY *gween.Tween
	doneX  bool
	doneY  bool
}

// Camera owns the view transform and turns gestures into new transforms.
// Every transform it hands out has its scale clamped to Extent.
type Camera struct {
	// Viewport is the screen-space rectangle the tree is drawn into.
	Viewport Rect
	// Extent bounds the zoom factor.
	Extent ScaleExtent

	transform ViewTransform
	focus     *focusAnim
}

// NewCamera creates a camera with the identity transform.
func NewCamera(viewport Rect) *Camera {
	return &Camera{
		Viewport:  viewport,
		Extent:    DefaultScaleExtent,
		transform: Identity,
	}
}

// Transform returns the current view transform.
func (c *Camera) Transform() ViewTransform {
	return c.transform
}

// SetTransform replaces the transform, clamping its scale, and returns the
// value actually stored.
func (c *Camera) SetTransform(t ViewTransform) ViewTransform {
	c.transform = c.Extent.ClampTransform(t)
	return c.transform
}

// Reset returns to the identity transform and stops any focus animation.
func (c *Camera) Reset() ViewTransform {
	c.StopFocus()
	return c.SetTransform(Identity)
}

// Pan returns the transform moved by (dx, dy) screen pixels. The camera is not
// modified; feed the result through the controller's gesture handler.
func (c *Camera) Pan(dx, dy float64) ViewTransform {
	return c.transform.Translate(dx, dy)
}

// ZoomAt returns the transform zoomed by factor around the screen point
// (sx, sy). The camera is not modified.
func (c *Camera) ZoomAt(sx, sy, factor float64) ViewTransform {
	return c.transform.ScaleAt(sx, sy, factor, c.Extent)
}

// FocusOn animates the translation so that world point (wx, wy) ends up at the
// viewport center after duration seconds. The scale is kept.
func (c *Camera) FocusOn(wx, wy float64, duration float32, easeFn ease.TweenFunc) {
	cx := c.Viewport.X + c.Viewport.Width/2
	cy := c.Viewport.Y + c.Viewport.Height/2
	tx := cx - wx*c.transform.K
	ty := cy - wy*c.transform.K
	if easeFn == nil {
		easeFn = ease.OutCubic
	}
	c.focus = &focusAnim{
		tweenX: gween.New(float32(c.transform.X), float32(tx), duration, easeFn),
		tweenY: gween.New(float32(c.transform.Y), float32(ty), duration, easeFn),
	}
}

// StopFocus abandons a focus animation in progress, keeping the current
// transform.
func (c *Camera) StopFocus() {
	c.focus = nil
}

// Animating reports whether a focus animation is in progress.
func (c *Camera) Animating() bool {
	return c.focus != nil
}

// update advances the focus animation by dt seconds. It returns the next
// transform and true when the animation produced a new one; the camera itself
// is not modified so the caller can route the result through the gesture path.
func (c *Camera) update(dt float32) (ViewTransform, bool) {
	if c.focus == nil {
		return c.transform, false
	}
	next := c.transform
	if !c.focus.doneX {
		val, done := c.focus.tweenX.Update(dt)
		next.X = float64(val)
		c.focus.doneX = done
	}
	if !c.focus.doneY {
		val, done := c.focus.tweenY.Update(dt)
		next.Y = float64(val)
		c.focus.doneY = done
	}
	if c.focus.doneX && c.focus.doneY {
		c.focus = nil
	}
	return next, next != c.transform
}

// ScreenToWorld converts screen coordinates to world coordinates.
func (c *Camera) ScreenToWorld(sx, sy float64) (float64, float64) {
	return c.transform.Invert(sx, sy)
}

// WorldToScreen converts world coordinates to screen coordinates.
func (c *Camera) WorldToScreen(wx, wy float64) (float64, float64) {
	return c.transform.Apply(wx, wy)
}
