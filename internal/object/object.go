package object

import "image/color"

// Surface is the drawing contract every renderer provides. Coordinates are
// logical pixels of the play surface; renderers scale as needed.
type Surface interface {
	// Clear fills the whole frame with c.
	Clear(c color.RGBA)
	// FillCircle draws a filled circle centered at (x, y).
	FillCircle(x, y, r float64, c color.RGBA)
	// FillRect draws a filled axis-aligned rectangle.
	FillRect(x, y, w, h float64, c color.RGBA)
	// MeasureText returns the size a rendered string occupies.
	MeasureText(s string) (w, h float64)
	// DrawText renders s with its top-left corner at (x, y).
	DrawText(s string, x, y float64, c color.RGBA)
	// Present shows the finished frame.
	Present() error
}

// PlayArea is the region targets may spawn in: the full screen minus the
// status bar strip at the top.
type PlayArea struct {
	Width  int
	Height int
	Top    int // Height of the reserved status bar
}

// Palette colors.
var (
	ColorBackground = color.RGBA{R: 0, G: 25, B: 40, A: 255}
	ColorPrimary    = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	ColorSecondary  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	ColorBar        = color.RGBA{R: 190, G: 190, B: 190, A: 255}
	ColorBarText    = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	ColorText       = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)
