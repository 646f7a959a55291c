// Package draw renders the game to an ANSI terminal using colored half-block cells.
package draw

import (
	"image/color"
	"io"
	"math"
	"strconv"
	"strings"
)

// Canvas is a color drawing buffer with 2x vertical resolution using half-block
// characters. It scales from logical coordinates to actual terminal pixels.
type Canvas struct {
	termWidth      int          // Actual terminal columns
	termHeight     int          // Actual terminal rows
	subPixelHeight int          // termHeight * 2
	pixels         []color.RGBA // Flat slice: [y * termWidth + x]

	// Scaling from logical to pixel coordinates
	logicalWidth  float64
	logicalHeight float64
	scaleX        float64 // termWidth / logicalWidth
	scaleY        float64 // (termHeight*2) / logicalHeight

	// Offset for centering the render area inside a larger terminal.
	// These are 0-based terminal offsets (columns/rows to skip).
	offsetCol int
	offsetRow int

	renderBuf strings.Builder
	numBuf    [20]byte // Scratch buffer for allocation-free integer formatting
}

// NewScaledCanvas creates a canvas that scales from logical coordinates to terminal pixels.
// logicalWidth/Height define the coordinate space used by game objects.
// termWidth/Height are the terminal dimensions the canvas occupies.
func NewScaledCanvas(termWidth, termHeight int, logicalWidth, logicalHeight float64) *Canvas {
	c := &Canvas{
		logicalWidth:  logicalWidth,
		logicalHeight: logicalHeight,
	}
	c.Resize(termWidth, termHeight)
	return c
}

// Resize updates the canvas for new terminal dimensions while keeping logical size.
func (c *Canvas) Resize(termWidth, termHeight int) {
	termWidth = max(termWidth, 1)
	termHeight = max(termHeight, 1)
	subPixelHeight := termHeight * 2

	if termWidth != c.termWidth || termHeight != c.termHeight {
		c.pixels = make([]color.RGBA, subPixelHeight*termWidth)
		c.termWidth = termWidth
		c.termHeight = termHeight
		c.subPixelHeight = subPixelHeight
	}

	c.scaleX = float64(termWidth) / c.logicalWidth
	c.scaleY = float64(subPixelHeight) / c.logicalHeight
}

// SetOffset sets the column and row offset for centering the canvas.
// Offsets are 0-based terminal positions: the canvas starts at (offsetCol+1, offsetRow+1).
func (c *Canvas) SetOffset(col, row int) {
	c.offsetCol = col
	c.offsetRow = row
}

// OffsetCol returns the column offset used for centering.
func (c *Canvas) OffsetCol() int {
	return c.offsetCol
}

// OffsetRow returns the row offset used for centering.
func (c *Canvas) OffsetRow() int {
	return c.offsetRow
}

// Clear fills every pixel with bg.
func (c *Canvas) Clear(bg color.RGBA) {
	for i := range c.pixels {
		c.pixels[i] = bg
	}
}

// setPixel sets a pixel at actual terminal coordinates (no scaling).
func (c *Canvas) setPixel(x, y int, col color.RGBA) {
	if x >= 0 && x < c.termWidth && y >= 0 && y < c.subPixelHeight {
		c.pixels[y*c.termWidth+x] = col
	}
}

// At returns the color at logical coordinates. Points outside the canvas
// return the zero color.
func (c *Canvas) At(x, y float64) color.RGBA {
	px := int(math.Floor(x * c.scaleX))
	py := int(math.Floor(y * c.scaleY))
	if px < 0 || px >= c.termWidth || py < 0 || py >= c.subPixelHeight {
		return color.RGBA{}
	}
	return c.pixels[py*c.termWidth+px]
}

// cellBackground returns the lower pixel of a 1-based canvas cell, which is
// what the half-block shows as its background.
func (c *Canvas) cellBackground(col, row int) color.RGBA {
	px := col - 1
	py := (row-1)*2 + 1
	if px < 0 || px >= c.termWidth || py < 0 || py >= c.subPixelHeight {
		return color.RGBA{}
	}
	return c.pixels[py*c.termWidth+px]
}

// FillCircle fills a circle given in logical coordinates. A pixel is set when
// its center lies inside the circle; a positive radius always sets at least the
// center pixel so tiny targets stay visible.
func (c *Canvas) FillCircle(cx, cy, r float64, col color.RGBA) {
	if r <= 0 {
		return
	}
	c.setPixel(int(math.Floor(cx*c.scaleX)), int(math.Floor(cy*c.scaleY)), col)

	yStart := int(math.Floor((cy - r) * c.scaleY))
	yEnd := int(math.Ceil((cy + r) * c.scaleY))
	for py := yStart; py <= yEnd; py++ {
		dy := (float64(py)+0.5)/c.scaleY - cy
		if dy*dy > r*r {
			continue
		}
		half := math.Sqrt(r*r - dy*dy)
		xStart := int(math.Ceil((cx-half)*c.scaleX - 0.5))
		xEnd := int(math.Floor((cx+half)*c.scaleX - 0.5))
		for px := xStart; px <= xEnd; px++ {
			c.setPixel(px, py, col)
		}
	}
}

// FillRect fills an axis-aligned rectangle given in logical coordinates.
func (c *Canvas) FillRect(x, y, w, h float64, col color.RGBA) {
	if w <= 0 || h <= 0 {
		return
	}
	xStart := int(math.Ceil(x*c.scaleX - 0.5))
	xEnd := int(math.Ceil((x+w)*c.scaleX - 0.5))
	yStart := int(math.Ceil(y*c.scaleY - 0.5))
	yEnd := int(math.Ceil((y+h)*c.scaleY - 0.5))
	for py := yStart; py < yEnd; py++ {
		for px := xStart; px < xEnd; px++ {
			c.setPixel(px, py, col)
		}
	}
}

// Render outputs the canvas to the writer. Each terminal cell is an upper
// half-block whose foreground is the top pixel and background the bottom one.
// Color escapes are only emitted when they change along a row.
func (c *Canvas) Render(w io.Writer) error {
	c.renderBuf.Reset()
	c.renderBuf.Grow(c.termWidth * c.termHeight * 8)

	for row := 0; row < c.termHeight; row++ {
		c.writeCursor(row+1+c.offsetRow, 1+c.offsetCol)

		topOffset := row * 2 * c.termWidth
		bottomOffset := topOffset + c.termWidth
		var fg, bg color.RGBA
		first := true
		for col := 0; col < c.termWidth; col++ {
			top := c.pixels[topOffset+col]
			bottom := c.pixels[bottomOffset+col]
			if first || top != fg {
				c.writeColor(38, top)
				fg = top
			}
			if first || bottom != bg {
				c.writeColor(48, bottom)
				bg = bottom
			}
			first = false
			c.renderBuf.WriteRune(BlockUpperHalf)
		}
	}
	c.renderBuf.WriteString(ResetStyle)

	_, err := io.WriteString(w, c.renderBuf.String())
	return err
}

// writeCursor appends an absolute cursor move (1-based row, col).
func (c *Canvas) writeCursor(row, col int) {
	c.renderBuf.WriteString("\033[")
	c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(row), 10))
	c.renderBuf.WriteByte(';')
	c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(col), 10))
	c.renderBuf.WriteByte('H')
}

// writeColor appends a truecolor SGR sequence; layer is 38 (fg) or 48 (bg).
func (c *Canvas) writeColor(layer int, col color.RGBA) {
	c.renderBuf.WriteString("\033[")
	c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(layer), 10))
	c.renderBuf.WriteString(";2;")
	c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(col.R), 10))
	c.renderBuf.WriteByte(';')
	c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(col.G), 10))
	c.renderBuf.WriteByte(';')
	c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(col.B), 10))
	c.renderBuf.WriteByte('m')
}

// LogicalWidth returns the logical width.
func (c *Canvas) LogicalWidth() float64 {
	return c.logicalWidth
}

// LogicalHeight returns the logical height.
func (c *Canvas) LogicalHeight() float64 {
	return c.logicalHeight
}

// TerminalWidth returns the canvas column count.
func (c *Canvas) TerminalWidth() int {
	return c.termWidth
}

// TerminalHeight returns the canvas row count.
func (c *Canvas) TerminalHeight() int {
	return c.termHeight
}

// CellSize returns the logical size of one terminal cell.
func (c *Canvas) CellSize() (w, h float64) {
	return 1 / c.scaleX, 2 / c.scaleY
}

// LogicalToTerminal converts logical coordinates to a 1-based canvas position (col, row).
// This is useful for placing text overlays at positions matching canvas-drawn objects.
func (c *Canvas) LogicalToTerminal(x, y float64) (col, row int) {
	px := int(math.Floor(x * c.scaleX))
	py := int(math.Floor(y * c.scaleY))
	return px + 1, py/2 + 1
}

// TerminalToLogical converts a 0-based absolute terminal cell (as reported by
// mouse events) to the logical coordinates of that cell's center. Cells in the
// letterbox margins map outside the logical area.
func (c *Canvas) TerminalToLogical(col, row int) (x, y float64) {
	px := float64(col-c.offsetCol) + 0.5
	py := float64(row-c.offsetRow)*2 + 1
	return px / c.scaleX, py / c.scaleY
}
