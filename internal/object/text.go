package object

import "image/color"

// Text is a simple drawable label in logical coordinates.
type Text struct {
	X     float64
	Y     float64
	Value string
	Color color.RGBA
}

// Draw renders the label at its position.
func (t Text) Draw(s Surface) {
	if t.Value == "" {
		return
	}
	s.DrawText(t.Value, t.X, t.Y, t.Color)
}

// CenteredText builds a label horizontally centered on a surface of the given width.
func CenteredText(s Surface, value string, width, y float64, c color.RGBA) Text {
	w, _ := s.MeasureText(value)
	return Text{
		X:     width/2 - w/2,
		Y:     y,
		Value: value,
		Color: c,
	}
}
