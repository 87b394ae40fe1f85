package lineage

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputFrame is one tick of pointer and keyboard input in screen coordinates.
type InputFrame struct {
	Cursor  Vec2
	Pressed bool    // primary button or single touch held
	Wheel   float64 // vertical wheel delta; positive zooms in
	Touches []Vec2  // active touch points

	ToggleKey bool // deceased-visibility shortcut pressed this frame
	ResetKey  bool // reset-view shortcut pressed this frame
}

// pointerState tracks the primary pointer between frames.
type pointerState struct {
	down     bool
	dragging bool
	start    Vec2
	last     Vec2
}

// pinchState tracks a two-finger gesture between frames.
type pinchState struct {
	active     bool
	lifting    bool // pinch ended, touches still down
	prevDist   float64
	prevCenter Vec2
}

// wheelFactor converts a wheel delta into a multiplicative zoom factor.
func wheelFactor(delta float64) float64 {
	return math.Pow(2, delta*wheelZoomRate)
}

func distance(a, b Vec2) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// inputPoller reads live input from Ebitengine. It reuses its touch buffer
// between frames.
type inputPoller struct {
	touchIDs []ebiten.TouchID
}

// poll reads the current mouse, wheel, touch and keyboard state. A single
// touch is reported as the primary pointer.
func (p *inputPoller) poll() InputFrame {
	mx, my := ebiten.CursorPosition()
	_, wy := ebiten.Wheel()
	f := InputFrame{
		Cursor:    Vec2{X: float64(mx), Y: float64(my)},
		Pressed:   ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		Wheel:     wy,
		ToggleKey: inpututil.IsKeyJustPressed(ebiten.KeyD),
		ResetKey:  inpututil.IsKeyJustPressed(ebiten.Key0) || inpututil.IsKeyJustPressed(ebiten.KeyHome),
	}

	p.touchIDs = ebiten.AppendTouchIDs(p.touchIDs[:0])
	for _, id := range p.touchIDs {
		tx, ty := ebiten.TouchPosition(id)
		f.Touches = append(f.Touches, Vec2{X: float64(tx), Y: float64(ty)})
	}
	if len(f.Touches) == 1 && !f.Pressed {
		f.Cursor = f.Touches[0]
		f.Pressed = true
	}
	return f
}
