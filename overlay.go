package lineage

// Checkbox is the "show deceased" control drawn in a corner of the window.
type Checkbox struct {
	Bounds Rect // clickable box, screen space
	Label  string

	labelWidth float64
}

// Layout of the checkbox panel.
const (
	checkboxMargin  = 12.0
	checkboxSize    = 16.0
	checkboxGap     = 8.0
	checkboxLabelSz = 13.0

	// fallbackPanelW is used when the label font cannot be measured.
	fallbackPanelW = 150.0
)

// NewCheckbox places the checkbox in the top-left corner and sizes its panel
// to the label.
func NewCheckbox(label string) Checkbox {
	cb := Checkbox{
		Bounds: Rect{X: checkboxMargin, Y: checkboxMargin, Width: checkboxSize, Height: checkboxSize},
		Label:  label,
	}
	if w, _, err := MeasureText(label, checkboxLabelSz); err == nil {
		cb.labelWidth = w
	} else {
		cb.labelWidth = fallbackPanelW - checkboxSize - 2*checkboxGap
	}
	return cb
}

// Panel returns the screen area the checkbox paints, label included.
func (cb Checkbox) Panel() Rect {
	return Rect{
		X:      cb.Bounds.X - checkboxGap/2,
		Y:      cb.Bounds.Y - checkboxGap/2,
		Width:  checkboxGap/2 + cb.Bounds.Width + checkboxGap + cb.labelWidth + checkboxGap,
		Height: cb.Bounds.Height + checkboxGap,
	}
}

// Draw paints the panel background, the box, a check mark when checked and
// the label. The canvas transform is left as it was.
func (cb Checkbox) Draw(c Canvas, checked bool) {
	c.Save()
	p := cb.Panel()
	c.ClearRect(p.X, p.Y, p.Width, p.Height)

	b := cb.Bounds
	x0, y0 := b.X, b.Y
	x1, y1 := b.X+b.Width, b.Y+b.Height
	c.StrokeLine(x0, y0, x1, y0, 1.5, ColorLabel)
	c.StrokeLine(x1, y0, x1, y1, 1.5, ColorLabel)
	c.StrokeLine(x1, y1, x0, y1, 1.5, ColorLabel)
	c.StrokeLine(x0, y1, x0, y0, 1.5, ColorLabel)

	if checked {
		c.StrokeLine(x0+3, y0+b.Height/2, x0+b.Width*0.42, y1-3, 2, ColorMale)
		c.StrokeLine(x0+b.Width*0.42, y1-3, x1-3, y0+3, 2, ColorMale)
	}

	c.FillText(cb.Label, x1+checkboxGap, y1-3, checkboxLabelSz, TextAlignLeft, ColorLabel)
	c.Restore()
}
