package window

import (
	"image/color"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/tomz197/aimtrainer/internal/object"
)

// textScale enlarges the 7x13 bitmap font to a readable size.
const textScale = 2

var _ object.Surface = (*Surface)(nil)

// Surface draws onto the Ebitengine screen image of the current frame.
type Surface struct {
	dst *ebiten.Image
}

// Clear fills the whole frame with c.
func (s *Surface) Clear(c color.RGBA) {
	if s.dst == nil {
		return
	}
	s.dst.Fill(c)
}

// FillCircle draws an anti-aliased filled circle.
func (s *Surface) FillCircle(x, y, r float64, c color.RGBA) {
	if s.dst == nil || r <= 0 {
		return
	}
	vector.DrawFilledCircle(s.dst, float32(x), float32(y), float32(r), c, true)
}

// FillRect draws a filled rectangle.
func (s *Surface) FillRect(x, y, w, h float64, c color.RGBA) {
	if s.dst == nil {
		return
	}
	vector.DrawFilledRect(s.dst, float32(x), float32(y), float32(w), float32(h), c, false)
}

// MeasureText returns the scaled size of s in the bitmap font.
func (s *Surface) MeasureText(str string) (w, h float64) {
	return measure(str)
}

// DrawText renders str with its top-left corner at (x, y).
func (s *Surface) DrawText(str string, x, y float64, c color.RGBA) {
	if s.dst == nil || str == "" {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(textScale, textScale)
	ox, oy := textOrigin(x, y)
	op.GeoM.Translate(ox, oy)
	op.ColorScale.ScaleWithColor(c)
	text.DrawWithOptions(s.dst, str, basicfont.Face7x13, op)
}

// Present is a no-op: Ebitengine shows the screen image after Draw returns.
func (s *Surface) Present() error {
	return nil
}

// measure returns the scaled advance width and line height of str.
func measure(str string) (w, h float64) {
	face := basicfont.Face7x13
	return float64(utf8.RuneCountInString(str)*face.Advance) * textScale, float64(face.Height) * textScale
}

// textOrigin converts a top-left label position to the baseline origin the
// font renderer expects.
func textOrigin(x, y float64) (float64, float64) {
	return x, y + float64(basicfont.Face7x13.Ascent)*textScale
}
