package lineage

import (
	"fmt"

	"github.com/goccy/go-json"
)

// scriptStep is a single action in an input script.
type scriptStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	Delta  float64 `json:"delta,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

// inputScript is the top-level JSON structure for an input script.
type inputScript struct {
	Steps []scriptStep `json:"steps"`
}

// TestRunner sequences injected input and screenshots across frames for
// automated visual checks of the viewer.
type TestRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadTestScript parses a JSON input script.
//
//	{"steps": [
//	  {"action": "wait", "frames": 30},
//	  {"action": "wheel", "x": 400, "y": 300, "delta": 2},
//	  {"action": "drag", "fromX": 400, "fromY": 300, "toX": 500, "toY": 350, "frames": 10},
//	  {"action": "toggle"},
//	  {"action": "screenshot", "label": "after-toggle"}
//	]}
func LoadTestScript(data []byte) (*TestRunner, error) {
	var script inputScript
	if err := json.Unmarshal(data, &script); err != nil {
		return nil, fmt.Errorf("lineage: parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("lineage: parse test script: no steps")
	}
	for i, st := range script.Steps {
		switch st.Action {
		case "click", "drag", "wheel", "toggle", "reset", "wait", "screenshot":
		default:
			return nil, fmt.Errorf("lineage: parse test script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

// Done reports whether all steps have been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// step advances the runner by one frame. Injected input is consumed by the
// controller's next ProcessInput call; shoot is called for screenshot steps.
func (r *TestRunner) step(c *Controller, shoot func(label string)) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if c.PendingInjections() > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "screenshot":
		shoot(st.Label)
	case "click":
		c.InjectClick(st.X, st.Y)
	case "drag":
		c.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case "wheel":
		c.InjectWheel(st.X, st.Y, st.Delta)
	case "toggle":
		c.InjectToggleKey()
	case "reset":
		c.InjectResetKey()
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && c.PendingInjections() == 0 {
		r.done = true
	}
}
