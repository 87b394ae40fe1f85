package lineage

// InjectPress queues a primary-button press at the given screen coordinates.
// Queued frames are consumed one per ProcessInput call, in place of live input.
func (c *Controller) InjectPress(x, y float64) {
	c.injectQueue = append(c.injectQueue, InputFrame{Cursor: Vec2{X: x, Y: y}, Pressed: true})
}

// InjectMove queues a pointer move with the button held down. Use this
// between InjectPress and InjectRelease to simulate a drag.
func (c *Controller) InjectMove(x, y float64) {
	c.injectQueue = append(c.injectQueue, InputFrame{Cursor: Vec2{X: x, Y: y}, Pressed: true})
}

// InjectRelease queues a button release at the given screen coordinates.
func (c *Controller) InjectRelease(x, y float64) {
	c.injectQueue = append(c.injectQueue, InputFrame{Cursor: Vec2{X: x, Y: y}})
}

// InjectClick queues a press followed by a release at the same screen
// coordinates. Consumes two frames.
func (c *Controller) InjectClick(x, y float64) {
	c.InjectPress(x, y)
	c.InjectRelease(x, y)
}

// InjectDrag queues a full drag sequence: press at (fromX, fromY), linearly
// interpolated moves over frames-2 intermediate frames, and release at
// (toX, toY). Minimum frames is 2.
func (c *Controller) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	c.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		c.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	// The release frame still carries the final position as a held move so
	// the last segment of the drag is applied.
	c.InjectMove(toX, toY)
	c.InjectRelease(toX, toY)
}

// InjectWheel queues a wheel step at the given screen coordinates.
func (c *Controller) InjectWheel(x, y, delta float64) {
	c.injectQueue = append(c.injectQueue, InputFrame{Cursor: Vec2{X: x, Y: y}, Wheel: delta})
}

// InjectPinch queues a two-finger gesture from (a0, b0) to (a1, b1) over the
// given number of frames (minimum 2), followed by a lift.
func (c *Controller) InjectPinch(a0, b0, a1, b1 Vec2, frames int) {
	if frames < 2 {
		frames = 2
	}
	for i := 0; i < frames; i++ {
		t := float64(i) / float64(frames-1)
		a := Vec2{X: a0.X + (a1.X-a0.X)*t, Y: a0.Y + (a1.Y-a0.Y)*t}
		b := Vec2{X: b0.X + (b1.X-b0.X)*t, Y: b0.Y + (b1.Y-b0.Y)*t}
		c.InjectTouches(a, b)
	}
	c.InjectTouches()
}

// InjectTouches queues one frame with the given touch points. A single touch
// also drives the primary pointer, as live touch input does.
func (c *Controller) InjectTouches(points ...Vec2) {
	f := InputFrame{Touches: append([]Vec2(nil), points...)}
	if len(points) == 1 {
		f.Cursor = points[0]
		f.Pressed = true
	}
	c.injectQueue = append(c.injectQueue, f)
}

// InjectToggleKey queues the deceased-visibility keyboard shortcut.
func (c *Controller) InjectToggleKey() {
	c.injectQueue = append(c.injectQueue, InputFrame{ToggleKey: true})
}

// InjectResetKey queues the reset-view keyboard shortcut.
func (c *Controller) InjectResetKey() {
	c.injectQueue = append(c.injectQueue, InputFrame{ResetKey: true})
}

// PendingInjections returns the number of queued frames.
func (c *Controller) PendingInjections() int {
	return len(c.injectQueue)
}

// nextFrame pops one injected frame, or returns live when none is queued.
func (c *Controller) nextFrame(live InputFrame) InputFrame {
	if len(c.injectQueue) == 0 {
		return live
	}
	f := c.injectQueue[0]
	copy(c.injectQueue, c.injectQueue[1:])
	c.injectQueue[len(c.injectQueue)-1] = InputFrame{}
	c.injectQueue = c.injectQueue[:len(c.injectQueue)-1]
	return f
}
