package lineage

import (
	"bytes"
	"fmt"
	"image"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	fontOnce   sync.Once
	fontSource *text.GoTextFaceSource
	fontErr    error
)

// labelFontSource returns the shared Go Regular face source, parsed once.
func labelFontSource() (*text.GoTextFaceSource, error) {
	fontOnce.Do(func() {
		fontSource, fontErr = text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
		if fontErr != nil {
			fontErr = fmt.Errorf("lineage: failed to parse label font: %w", fontErr)
		}
	})
	return fontSource, fontErr
}

// MeasureText returns the width and height of s at the given pixel size.
func MeasureText(s string, size float64) (float64, float64, error) {
	src, err := labelFontSource()
	if err != nil {
		return 0, 0, err
	}
	face := &text.GoTextFace{Source: src, Size: size}
	m := face.Metrics()
	w, h := text.Measure(s, face, m.HAscent+m.HDescent+m.HLineGap)
	return w, h, nil
}

// Submit replays the recorded commands onto target in order.
func (b *CommandBuffer) Submit(target *ebiten.Image) error {
	for i := range b.commands {
		cmd := &b.commands[i]
		switch cmd.Type {
		case CommandClear:
			submitClear(target, cmd)
		case CommandLine:
			submitLine(target, cmd)
		case CommandCircle:
			submitCircle(target, cmd)
		case CommandText:
			if err := submitText(target, cmd); err != nil {
				return err
			}
		}
	}
	return nil
}

func submitClear(target *ebiten.Image, cmd *RenderCommand) {
	r := cmd.screenRect()
	rect := image.Rect(int(r.X), int(r.Y), int(r.X+r.Width+0.5), int(r.Y+r.Height+0.5)).
		Intersect(target.Bounds())
	if rect.Empty() {
		return
	}
	target.SubImage(rect).(*ebiten.Image).Fill(cmd.Color.toRGBA())
}

func submitLine(target *ebiten.Image, cmd *RenderCommand) {
	p0, p1 := cmd.ScreenP0(), cmd.ScreenP1()
	w := cmd.Width * cmd.ScreenScale()
	vector.StrokeLine(target,
		float32(p0.X), float32(p0.Y), float32(p1.X), float32(p1.Y),
		float32(w), cmd.Color.toRGBA(), true)
}

func submitCircle(target *ebiten.Image, cmd *RenderCommand) {
	c := cmd.ScreenP0()
	r := cmd.Radius * cmd.ScreenScale()
	vector.DrawFilledCircle(target, float32(c.X), float32(c.Y), float32(r), cmd.Color.toRGBA(), true)
}

func submitText(target *ebiten.Image, cmd *RenderCommand) error {
	if cmd.Text == "" {
		return nil
	}
	src, err := labelFontSource()
	if err != nil {
		return err
	}
	scale := cmd.ScreenScale()
	face := &text.GoTextFace{Source: src, Size: cmd.Size * scale}
	anchor := cmd.ScreenP0()

	op := &text.DrawOptions{}
	// Canvas text is anchored on the baseline; text/v2 on the line top.
	op.GeoM.Translate(anchor.X, anchor.Y-face.Metrics().HAscent)
	op.ColorScale.ScaleWithColor(cmd.Color.toRGBA())
	switch cmd.Align {
	case TextAlignCenter:
		op.PrimaryAlign = text.AlignCenter
	case TextAlignRight:
		op.PrimaryAlign = text.AlignEnd
	default:
		op.PrimaryAlign = text.AlignStart
	}
	text.Draw(target, cmd.Text, face, op)
	return nil
}
