package lineage

import "testing"

func TestFPSWidgetRefreshInterval(t *testing.T) {
	calls := 0
	w := &fpsWidget{sample: func() (float64, float64) {
		calls++
		return 59.5, 60
	}}

	w.update(0.1)
	if calls != 1 || w.label != "FPS: 59.5  TPS: 60.0" {
		t.Fatalf("calls = %d, label = %q", calls, w.label)
	}
	w.update(0.2)
	w.update(0.2)
	if calls != 1 {
		t.Errorf("refreshed after %d calls inside the interval", calls)
	}
	w.update(0.2)
	if calls != 2 {
		t.Errorf("calls = %d after the interval, want 2", calls)
	}
}

func TestFPSWidgetDraw(t *testing.T) {
	b := NewCommandBuffer(800, 600)
	w := &fpsWidget{}
	w.Draw(b)
	if len(b.Commands()) != 0 {
		t.Error("drew before the first sample")
	}

	w.sample = func() (float64, float64) { return 60, 60 }
	w.update(0)
	w.Draw(b)
	if b.Count(CommandClear) != 1 || b.Count(CommandText) != 1 || b.Depth() != 0 {
		t.Errorf("commands = %+v", b.Commands())
	}
	if y := b.Commands()[1].P0.Y; y <= 578 || y >= 600 {
		t.Errorf("label y = %v, want inside the bottom strip", y)
	}
}
