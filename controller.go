package lineage

import (
	"context"
	"log/slog"

	"github.com/tanema/gween/ease"
)

// focusDuration is how long a click-to-focus pan takes, in seconds.
const focusDuration = 0.4

// Fetcher issues background tree fetches. *Loader implements it.
type Fetcher interface {
	Fetch(ctx context.Context, showDeceased bool) uint64
	Latest() uint64
}

// Controller routes events to the loader and renderer. It has three entry
// points, HandleGesture, HandleToggle and HandleFetchResult, and must only be
// used from the game loop goroutine.
type Controller struct {
	ctx      context.Context
	state    *State
	fetcher  Fetcher
	renderer *Renderer
	camera   *Camera
	logger   *slog.Logger

	showDeceased bool

	// pending is the transform for the next repaint; nil means none requested.
	pending *ViewTransform

	checkbox    Rect
	pointer     pointerState
	pinch       pinchState
	injectQueue []InputFrame
}

// NewController wires the interaction handlers. ctx bounds every fetch the
// controller issues.
func NewController(ctx context.Context, state *State, fetcher Fetcher, renderer *Renderer, camera *Camera, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.Default()
	}
	return &Controller{
		ctx:          ctx,
		state:        state,
		fetcher:      fetcher,
		renderer:     renderer,
		camera:       camera,
		logger:       logger,
		showDeceased: DefaultShowDeceased,
	}
}

// ShowDeceased returns the current checkbox state.
func (c *Controller) ShowDeceased() bool {
	return c.showDeceased
}

// Camera returns the controller's camera.
func (c *Controller) Camera() *Camera {
	return c.camera
}

// SetCheckboxBounds sets the screen rectangle that toggles deceased visibility
// when clicked.
func (c *Controller) SetCheckboxBounds(r Rect) {
	c.checkbox = r
}

// Start issues the initial fetch with the given visibility.
func (c *Controller) Start(showDeceased bool) uint64 {
	c.showDeceased = showDeceased
	return c.fetcher.Fetch(c.ctx, showDeceased)
}

// HandleGesture applies a new view transform and schedules a repaint with it.
// A focus animation in progress is abandoned so the gesture sticks. It never
// fetches.
func (c *Controller) HandleGesture(t ViewTransform) {
	c.camera.StopFocus()
	c.applyTransform(t)
}

// applyTransform stores t and schedules a repaint without touching a focus
// animation.
func (c *Controller) applyTransform(t ViewTransform) {
	stored := c.camera.SetTransform(t)
	c.pending = &stored
}

// HandleToggle records the checkbox state and fetches the tree with it. The
// current pan and zoom are discarded once the new tree arrives.
func (c *Controller) HandleToggle(checked bool) {
	c.showDeceased = checked
	gen := c.fetcher.Fetch(c.ctx, checked)
	c.logger.Info("deceased visibility toggled",
		slog.Bool("show_deceased", checked), slog.Uint64("generation", gen))
}

// HandleFetchResult publishes a successful fetch and repaints with the
// identity transform. Failures are logged and leave the live tree and the
// canvas alone. Results older than the newest issued fetch are dropped.
func (c *Controller) HandleFetchResult(r FetchResult) {
	if r.Err != nil {
		c.logger.Error("error fetching tree data",
			slog.Uint64("generation", r.Generation), slog.Any("error", r.Err))
		return
	}
	if latest := c.fetcher.Latest(); r.Generation < latest {
		c.logger.Debug("stale tree response ignored",
			slog.Uint64("generation", r.Generation), slog.Uint64("latest", latest))
		return
	}
	if r.Hierarchy == nil {
		return
	}
	c.state.Publish(r.Hierarchy)
	debugCheckHierarchy(c.logger, r.Hierarchy)
	t := c.camera.Reset()
	c.pending = &t
}

// RequestRedraw schedules a repaint with the current transform, e.g. after
// the surface was resized.
func (c *Controller) RequestRedraw() {
	t := c.camera.Transform()
	c.pending = &t
}

// RedrawPending reports whether a repaint is scheduled.
func (c *Controller) RedrawPending() bool {
	return c.pending != nil
}

// Draw performs the scheduled repaint, if any, into canvas. It returns true
// when something was painted.
func (c *Controller) Draw(canvas Canvas) bool {
	if c.pending == nil {
		return false
	}
	t := *c.pending
	c.pending = nil
	return c.renderer.Draw(canvas, t)
}

// Update advances camera animations by dt seconds.
func (c *Controller) Update(dt float32) {
	if t, ok := c.camera.update(dt); ok {
		c.applyTransform(t)
	}
}

// ProcessInput runs the gesture recognizer over one frame of input. Injected
// frames, when queued, replace live input.
func (c *Controller) ProcessInput(live InputFrame) {
	f := c.nextFrame(live)

	if f.ToggleKey {
		c.HandleToggle(!c.showDeceased)
	}
	if f.ResetKey {
		c.HandleGesture(Identity)
	}
	if f.Wheel != 0 {
		c.HandleGesture(c.camera.ZoomAt(f.Cursor.X, f.Cursor.Y, wheelFactor(f.Wheel)))
	}

	if len(f.Touches) >= 2 {
		c.processPinch(f.Touches[0], f.Touches[1])
		return
	}
	if c.pinch.active {
		c.pinch = pinchState{lifting: true}
	}
	// Fingers left over from a pinch neither pan nor click.
	if c.pinch.lifting {
		if len(f.Touches) > 0 {
			return
		}
		c.pinch.lifting = false
	}
	c.processPointer(f.Cursor, f.Pressed)
}

// processPointer runs the press/drag/click state machine for the primary pointer.
func (c *Controller) processPointer(pos Vec2, pressed bool) {
	ps := &c.pointer
	switch {
	case pressed && !ps.down:
		ps.down = true
		ps.dragging = false
		ps.start = pos
		ps.last = pos
	case pressed && ps.down:
		if pos == ps.last {
			return
		}
		if !ps.dragging {
			dx, dy := pos.X-ps.start.X, pos.Y-ps.start.Y
			if dx*dx+dy*dy > dragDeadZone*dragDeadZone {
				ps.dragging = true
				// Pan from the press point so the dead zone is not lost.
				ps.last = ps.start
			}
		}
		if ps.dragging {
			c.HandleGesture(c.camera.Pan(pos.X-ps.last.X, pos.Y-ps.last.Y))
			ps.last = pos
		}
	case !pressed && ps.down:
		if !ps.dragging {
			c.click(ps.last)
		}
		ps.down = false
		ps.dragging = false
	}
}

// click handles a press and release without a drag in between.
func (c *Controller) click(pos Vec2) {
	if c.checkbox.Width > 0 && c.checkbox.Contains(pos.X, pos.Y) {
		c.HandleToggle(!c.showDeceased)
		return
	}
	if p := c.renderer.HitTest(c.camera.Transform(), pos.X, pos.Y); p != nil {
		c.logger.Debug("focus person", slog.String("id", string(p.ID)), slog.String("name", p.Name))
		c.camera.FocusOn(p.X, p.Y, focusDuration, ease.OutCubic)
	}
}

// processPinch zooms around the midpoint of two touches and pans with it.
func (c *Controller) processPinch(a, b Vec2) {
	// A pinch cancels any single-pointer interaction.
	c.pointer.down = false
	c.pointer.dragging = false

	center := Vec2{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
	dist := distance(a, b)

	if !c.pinch.active {
		c.pinch = pinchState{active: true, prevDist: dist, prevCenter: center}
		return
	}
	factor := 1.0
	if c.pinch.prevDist > 0 && dist > 0 {
		factor = dist / c.pinch.prevDist
	}
	t := c.camera.Transform().
		Translate(center.X-c.pinch.prevCenter.X, center.Y-c.pinch.prevCenter.Y).
		ScaleAt(center.X, center.Y, factor, c.camera.Extent)
	c.HandleGesture(t)

	c.pinch.prevDist = dist
	c.pinch.prevCenter = center
}
