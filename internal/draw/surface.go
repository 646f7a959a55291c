package draw

import (
	"image/color"
	"io"
	"unicode/utf8"
)

// textOp is a label queued for drawing on top of the canvas.
type textOp struct {
	value string
	x, y  float64
	fg    color.RGBA
}

// Terminal is a drawing surface backed by a Canvas and rendered as ANSI
// output. Shapes go to the canvas; text is overlaid after the canvas is
// rendered, using the canvas color under each label as its background.
type Terminal struct {
	canvas   *Canvas
	out      *ChunkWriter
	writer   io.Writer
	sizeFunc TermSizeFunc
	texts    []textOp
	redraw   bool // Full terminal clear pending (first frame or resize)
}

// NewTerminal creates a terminal surface for the given logical size.
func NewTerminal(w io.Writer, sizeFunc TermSizeFunc, logicalWidth, logicalHeight float64) *Terminal {
	if sizeFunc == nil {
		sizeFunc = DefaultTermSizeFunc
	}
	termWidth, termHeight, err := sizeFunc()
	if err != nil {
		termWidth, termHeight = 80, 24
	}
	renderWidth, renderHeight, offsetCol, offsetRow := FitTermSize(termWidth, termHeight, logicalWidth, logicalHeight)
	canvas := NewScaledCanvas(renderWidth, renderHeight, logicalWidth, logicalHeight)
	canvas.SetOffset(offsetCol, offsetRow)

	return &Terminal{
		canvas:   canvas,
		out:      NewChunkWriter(w, offsetCol, offsetRow),
		writer:   w,
		sizeFunc: sizeFunc,
		redraw:   true,
	}
}

// Open prepares the terminal: hides the cursor and enables mouse reporting.
func (t *Terminal) Open() {
	HideCursor(t.writer)
	EnableMouse(t.writer)
	ClearScreen(t.writer)
}

// Close restores the terminal to its normal state.
func (t *Terminal) Close() {
	DisableMouse(t.writer)
	io.WriteString(t.writer, ResetStyle)
	ClearScreen(t.writer)
	ShowCursor(t.writer)
}

// Canvas returns the underlying canvas.
func (t *Terminal) Canvas() *Canvas {
	return t.canvas
}

// UpdateSize re-reads the terminal size and refits the canvas. A size change
// schedules a full clear so stale cells in the margins disappear.
func (t *Terminal) UpdateSize() error {
	termWidth, termHeight, err := t.sizeFunc()
	if err != nil {
		return err
	}
	renderWidth, renderHeight, offsetCol, offsetRow := FitTermSize(termWidth, termHeight, t.canvas.LogicalWidth(), t.canvas.LogicalHeight())

	if renderWidth != t.canvas.TerminalWidth() || renderHeight != t.canvas.TerminalHeight() ||
		offsetCol != t.canvas.OffsetCol() || offsetRow != t.canvas.OffsetRow() {
		t.redraw = true
	}

	t.canvas.Resize(renderWidth, renderHeight)
	t.canvas.SetOffset(offsetCol, offsetRow)
	t.out.SetOffset(offsetCol, offsetRow)
	return nil
}

// PointerToLogical converts a 0-based terminal cell to logical coordinates.
func (t *Terminal) PointerToLogical(col, row int) (x, y int) {
	lx, ly := t.canvas.TerminalToLogical(col, row)
	return int(lx), int(ly)
}

// Clear fills the frame with c and drops queued labels.
func (t *Terminal) Clear(c color.RGBA) {
	t.canvas.Clear(c)
	t.texts = t.texts[:0]
}

// FillCircle draws a filled circle on the canvas.
func (t *Terminal) FillCircle(x, y, r float64, c color.RGBA) {
	t.canvas.FillCircle(x, y, r, c)
}

// FillRect draws a filled rectangle on the canvas.
func (t *Terminal) FillRect(x, y, w, h float64, c color.RGBA) {
	t.canvas.FillRect(x, y, w, h, c)
}

// MeasureText returns the logical size of s rendered one rune per cell.
func (t *Terminal) MeasureText(s string) (w, h float64) {
	cellW, cellH := t.canvas.CellSize()
	return float64(utf8.RuneCountInString(s)) * cellW, cellH
}

// DrawText queues s to be written at (x, y) after the canvas is rendered.
func (t *Terminal) DrawText(s string, x, y float64, c color.RGBA) {
	t.texts = append(t.texts, textOp{value: s, x: x, y: y, fg: c})
}

// Present renders the canvas and labels and flushes them to the terminal.
func (t *Terminal) Present() error {
	if t.redraw {
		t.out.WriteString(ResetStyle + "\033[H\033[2J")
		t.redraw = false
	}
	if err := t.canvas.Render(t.out); err != nil {
		return err
	}
	for _, op := range t.texts {
		t.writeText(op)
	}
	t.out.WriteString(ResetStyle)
	return t.out.Flush()
}

// writeText writes one label, clipped to the canvas width.
func (t *Terminal) writeText(op textOp) {
	col, row := t.canvas.LogicalToTerminal(op.x, op.y)
	if row < 1 || row > t.canvas.TerminalHeight() || col > t.canvas.TerminalWidth() {
		return
	}
	runes := []rune(op.value)
	if col < 1 {
		skip := 1 - col
		if skip >= len(runes) {
			return
		}
		runes = runes[skip:]
		col = 1
	}
	if room := t.canvas.TerminalWidth() - col + 1; len(runes) > room {
		runes = runes[:room]
	}

	t.out.SetColors(op.fg, t.canvas.cellBackground(col, row))
	t.out.WriteAt(col, row, string(runes))
}
