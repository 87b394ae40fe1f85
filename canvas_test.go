package lineage

import "testing"

func TestCommandBufferSaveRestore(t *testing.T) {
	b := NewCommandBuffer(100, 100)
	b.Save()
	b.Translate(10, 20)
	b.Save()
	b.Scale(2)
	if b.Depth() != 2 {
		t.Fatalf("Depth = %d, want 2", b.Depth())
	}
	b.FillCircle(1, 1, 3, ColorMale)
	b.Restore()
	b.FillCircle(1, 1, 3, ColorMale)
	b.Restore()
	b.FillCircle(1, 1, 3, ColorMale)

	if b.Depth() != 0 {
		t.Errorf("Depth = %d, want 0", b.Depth())
	}

	want := []Vec2{{12, 22}, {11, 21}, {1, 1}}
	wantScale := []float64{6, 3, 3}
	for i, cmd := range b.Commands() {
		p := cmd.ScreenP0()
		assertNear(t, "x", p.X, want[i].X)
		assertNear(t, "y", p.Y, want[i].Y)
		assertNear(t, "radius on screen", cmd.Radius*cmd.ScreenScale(), wantScale[i])
	}
}

func TestCommandBufferRestoreEmptyIsNoop(t *testing.T) {
	b := NewCommandBuffer(10, 10)
	b.Translate(5, 5)
	b.Restore()
	b.StrokeLine(0, 0, 1, 0, 1, ColorLink)
	p := b.Commands()[0].ScreenP0()
	if p != (Vec2{5, 5}) {
		t.Errorf("P0 = %+v, want {5 5}", p)
	}
}

func TestCommandBufferRecords(t *testing.T) {
	b := NewCommandBuffer(320, 240)
	b.ClearRect(0, 0, 320, 240)
	b.StrokeLine(0, 0, 10, 10, 2, ColorLink)
	b.FillCircle(5, 5, 14, ColorFemale)
	b.FillText("Ada", 5, -15, 12, TextAlignCenter, ColorLabel)

	tests := []struct {
		typ  CommandType
		want int
	}{
		{CommandClear, 1},
		{CommandLine, 1},
		{CommandCircle, 1},
		{CommandText, 1},
	}
	for _, tt := range tests {
		if got := b.Count(tt.typ); got != tt.want {
			t.Errorf("Count(%d) = %d, want %d", tt.typ, got, tt.want)
		}
	}

	cmds := b.Commands()
	if cmds[0].Color != ColorBackground || cmds[0].Rect != (Rect{Width: 320, Height: 240}) {
		t.Errorf("clear = %+v", cmds[0])
	}
	if cmds[3].Text != "Ada" || cmds[3].Align != TextAlignCenter || cmds[3].Size != 12 {
		t.Errorf("text = %+v", cmds[3])
	}

	b.Reset()
	if len(b.Commands()) != 0 {
		t.Errorf("len(Commands) after Reset = %d", len(b.Commands()))
	}
}

func TestCommandBufferResize(t *testing.T) {
	b := NewCommandBuffer(10, 20)
	b.Resize(30, 40)
	w, h := b.Size()
	if w != 30 || h != 40 {
		t.Errorf("Size = %v x %v, want 30 x 40", w, h)
	}
}

func TestScreenRectUnderTransform(t *testing.T) {
	b := NewCommandBuffer(100, 100)
	b.Translate(10, 10)
	b.Scale(2)
	b.ClearRect(1, 2, 3, 4)
	r := b.Commands()[0].screenRect()
	if r != (Rect{X: 12, Y: 14, Width: 6, Height: 8}) {
		t.Errorf("screenRect = %+v", r)
	}
}
