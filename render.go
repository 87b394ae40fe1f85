package lineage

import (
	"log/slog"
	"time"
)

// Renderer lays out the live hierarchy and paints it into a Canvas.
type Renderer struct {
	state  *State
	layout TreeLayout
	logger *slog.Logger
	debug  bool

	stats drawStats

	// laidOut is the hierarchy the person coordinates currently belong to.
	laidOut *Hierarchy
}

// NewRenderer returns a renderer for the hierarchy held by state.
func NewRenderer(state *State, logger *slog.Logger) *Renderer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Renderer{
		state:  state,
		layout: NewTreeLayout(),
		logger: logger,
	}
}

// SetDebug enables per-pass timing and command statistics at debug level.
func (r *Renderer) SetDebug(enabled bool) {
	r.debug = enabled
}

// Draw repaints the whole canvas for transform t. It returns false without
// touching the canvas when no hierarchy has been loaded.
//
// The canvas transform is saved before and restored after the pass. Links are
// drawn before any node, then each node's circle and label in breadth-first
// order. People whose subtree was cut off by the backend get a short stub
// below their circle.
func (r *Renderer) Draw(c Canvas, t ViewTransform) bool {
	h := r.state.Hierarchy()
	if h == nil || h.Root() == nil {
		return false
	}

	var t0 time.Time
	if r.debug {
		t0 = time.Now()
	}

	w, ht := c.Size()
	c.Save()
	c.ClearRect(0, 0, w, ht)
	c.Translate(t.X, t.Y)
	c.Scale(t.K)

	r.layout.Apply(h)
	r.laidOut = h
	if r.debug {
		r.stats.layoutTime = time.Since(t0)
	}

	for _, l := range h.Links() {
		c.StrokeLine(l.Source.X, l.Source.Y, l.Target.X, l.Target.Y, LinkWidth, ColorLink)
	}

	for _, p := range h.Descendants() {
		if p.HasMore {
			drawMoreMarker(c, p)
		}
		c.FillCircle(p.X, p.Y, NodeRadius, FillColor(p.Gender))
		c.FillText(p.Name, p.X, p.Y-LabelOffsetY, LabelSize, TextAlignCenter, ColorLabel)
	}

	c.Restore()

	if r.debug {
		r.stats.totalTime = time.Since(t0)
		r.stats.nodes = h.Len()
		r.stats.links = len(h.Links())
		r.stats.transform = t
		r.debugLog()
	}
	return true
}

// drawMoreMarker draws a stub ending in a dot under p, marking descendants
// the backend did not send.
func drawMoreMarker(c Canvas, p *Person) {
	y0 := p.Y + NodeRadius
	y1 := y0 + moreStubLength
	c.StrokeLine(p.X, y0, p.X, y1, LinkWidth, ColorLink)
	c.FillCircle(p.X, y1, moreDotRadius, ColorLink)
}

// HitTest returns the person whose circle contains the screen point (sx, sy)
// under transform t. A hierarchy published since the last draw is laid out
// first. Later nodes win, matching paint order.
func (r *Renderer) HitTest(t ViewTransform, sx, sy float64) *Person {
	h := r.state.Hierarchy()
	if h == nil || h.Root() == nil {
		return nil
	}
	if r.laidOut != h {
		r.layout.Apply(h)
		r.laidOut = h
	}
	wx, wy := t.Invert(sx, sy)
	hit := HitCircle{Radius: NodeRadius}
	nodes := h.Descendants()
	for i := len(nodes) - 1; i >= 0; i-- {
		p := nodes[i]
		if hit.Contains(wx-p.X, wy-p.Y) {
			return p
		}
	}
	return nil
}

// HitCircle is a circular hit area in local coordinates.
type HitCircle struct {
	CenterX, CenterY, Radius float64
}

// Contains reports whether (x, y) lies inside or on the circle.
func (c HitCircle) Contains(x, y float64) bool {
	dx := x - c.CenterX
	dy := y - c.CenterY
	return dx*dx+dy*dy <= c.Radius*c.Radius
}
