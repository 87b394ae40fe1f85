package lineage

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// fpsInterval is how often the FPS readout refreshes, in seconds.
const fpsInterval = 0.5

// fpsWidget shows the current FPS and TPS in the bottom-left corner when the
// viewer runs in debug mode. The text is refreshed about every half second.
type fpsWidget struct {
	elapsed float64
	label   string

	// sample reads the current rates; nil means Ebitengine's actual FPS and TPS.
	sample func() (fps, tps float64)
}

func (w *fpsWidget) update(dt float64) {
	w.elapsed += dt
	if w.label != "" && w.elapsed < fpsInterval {
		return
	}
	w.elapsed = 0

	sample := w.sample
	if sample == nil {
		sample = func() (float64, float64) { return ebiten.ActualFPS(), ebiten.ActualTPS() }
	}
	fps, tps := sample()
	w.label = fmt.Sprintf("FPS: %.1f  TPS: %.1f", fps, tps)
}

// Draw paints the readout over a cleared strip at the bottom of the canvas.
func (w *fpsWidget) Draw(c Canvas) {
	if w.label == "" {
		return
	}
	_, h := c.Size()
	c.Save()
	c.ClearRect(0, h-22, 180, 22)
	c.FillText(w.label, 6, h-7, 11, TextAlignLeft, ColorLabel)
	c.Restore()
}
