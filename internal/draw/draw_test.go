package draw

import (
	"bytes"
	"errors"
	"image/color"
	"strings"
	"testing"
)

var (
	red   = color.RGBA{R: 255, A: 255}
	white = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	navy  = color.RGBA{B: 40, G: 25, A: 255}
)

// newTestCanvas maps 800x600 logical onto 80x30 cells (80x60 pixels): 10 logical units per pixel.
func newTestCanvas() *Canvas {
	return NewScaledCanvas(80, 30, 800, 600)
}

func TestCanvas_FillCircle(t *testing.T) {
	c := newTestCanvas()
	c.Clear(navy)
	c.FillCircle(400, 300, 50, red)

	if got := c.At(400, 300); got != red {
		t.Errorf("center = %v, want red", got)
	}
	if got := c.At(435, 300); got != red {
		t.Errorf("inside point = %v, want red", got)
	}
	if got := c.At(400, 200); got != navy {
		t.Errorf("outside point = %v, want background", got)
	}
	if got := c.At(450, 350); got != navy {
		t.Errorf("corner of bounding box = %v, want background", got)
	}
}

func TestCanvas_FillCircleTinyStillVisible(t *testing.T) {
	c := newTestCanvas()
	c.Clear(navy)
	c.FillCircle(405, 305, 0.2, red)
	if got := c.At(405, 305); got != red {
		t.Errorf("tiny circle center = %v, want red", got)
	}

	c.Clear(navy)
	c.FillCircle(405, 305, 0, red)
	if got := c.At(405, 305); got != navy {
		t.Errorf("zero radius drew %v", got)
	}
}

func TestCanvas_FillRect(t *testing.T) {
	c := newTestCanvas()
	c.Clear(navy)
	c.FillRect(0, 0, 800, 50, white)

	if got := c.At(5, 5); got != white {
		t.Errorf("bar pixel = %v, want white", got)
	}
	if got := c.At(795, 45); got != white {
		t.Errorf("bar edge pixel = %v, want white", got)
	}
	if got := c.At(400, 60); got != navy {
		t.Errorf("below bar = %v, want background", got)
	}
}

func TestCanvas_AtOutside(t *testing.T) {
	c := newTestCanvas()
	c.Clear(navy)
	if got := c.At(-1, 10); got != (color.RGBA{}) {
		t.Errorf("At outside = %v, want zero", got)
	}
	if got := c.At(10, 600); got != (color.RGBA{}) {
		t.Errorf("At bottom edge = %v, want zero", got)
	}
}

func TestCanvas_Render(t *testing.T) {
	c := NewScaledCanvas(2, 1, 2, 2)
	c.SetOffset(3, 4)
	c.Clear(navy)
	c.FillRect(0, 0, 1, 1, red)

	var buf bytes.Buffer
	if err := c.Render(&buf); err != nil {
		t.Fatalf("Render error: %v", err)
	}
	out := buf.String()

	if !strings.HasPrefix(out, "\033[5;4H") {
		t.Errorf("render should start at offset cell (row 5, col 4), got %q", out)
	}
	if n := strings.Count(out, string(BlockUpperHalf)); n != 2 {
		t.Errorf("rendered %d cells, want 2", n)
	}
	if !strings.Contains(out, "\033[38;2;255;0;0m") {
		t.Error("missing red foreground for top-left pixel")
	}
	if !strings.HasSuffix(out, ResetStyle) {
		t.Error("render should end with a style reset")
	}
}

func TestCanvas_TerminalToLogical(t *testing.T) {
	c := newTestCanvas()
	c.SetOffset(10, 2)

	x, y := c.TerminalToLogical(10, 2)
	if x != 5 || y != 10 {
		t.Errorf("top-left cell center = (%g,%g), want (5,10)", x, y)
	}

	x, y = c.TerminalToLogical(50, 17)
	col, row := c.LogicalToTerminal(x, y)
	if col != 41 || row != 16 {
		t.Errorf("round trip = (%d,%d), want canvas cell (41,16)", col, row)
	}
}

func TestFitTermSize(t *testing.T) {
	tests := []struct {
		name                   string
		termW, termH           int
		wantW, wantH           int
		wantOffCol, wantOffRow int
	}{
		{"exact", 80, 30, 80, 30, 0, 0},
		{"tall terminal", 80, 50, 80, 30, 0, 10},
		{"wide terminal", 200, 30, 80, 30, 60, 0},
		{"tiny", 0, 0, 1, 1, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h, oc, or := FitTermSize(tt.termW, tt.termH, 800, 600)
			if w != tt.wantW || h != tt.wantH || oc != tt.wantOffCol || or != tt.wantOffRow {
				t.Errorf("FitTermSize(%d,%d) = (%d,%d,%d,%d), want (%d,%d,%d,%d)",
					tt.termW, tt.termH, w, h, oc, or, tt.wantW, tt.wantH, tt.wantOffCol, tt.wantOffRow)
			}
		})
	}
}

func TestChunkWriter_Flush(t *testing.T) {
	var buf bytes.Buffer
	cw := NewChunkWriter(&buf, 2, 3)
	cw.WriteAt(1, 1, "hi")
	cw.WriteString(strings.Repeat("x", 3*maxChunkSize))

	if buf.Len() != 0 {
		t.Fatal("nothing should be written before Flush")
	}
	if err := cw.Flush(); err != nil {
		t.Fatalf("Flush error: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "\033[4;3Hhi") {
		t.Errorf("offset cursor not applied: %q", buf.String()[:12])
	}
	if buf.Len() != len("\033[4;3Hhi")+3*maxChunkSize {
		t.Errorf("wrote %d bytes", buf.Len())
	}
	if cw.Len() != 0 {
		t.Error("buffer should be empty after Flush")
	}
}

func fixedSize(w, h int) TermSizeFunc {
	return func() (int, int, error) { return w, h, nil }
}

func TestTerminal_PresentDrawsTextOverCanvas(t *testing.T) {
	var buf bytes.Buffer
	term := NewTerminal(&buf, fixedSize(80, 30), 800, 600)

	term.Clear(navy)
	term.FillRect(0, 0, 800, 50, white)
	term.DrawText("Hits: 3", 450, 5, color.RGBA{A: 255})
	if err := term.Present(); err != nil {
		t.Fatalf("Present error: %v", err)
	}
	out := buf.String()

	if !strings.HasPrefix(out, ResetStyle+"\033[H\033[2J") {
		t.Error("first frame should clear the screen")
	}
	if !strings.Contains(out, "\033[1;46HHits: 3") {
		t.Errorf("label not written at col 46 row 1: %q", out[len(out)-80:])
	}
	// The label background is the bar color underneath.
	if !strings.Contains(out, "\033[48;2;255;255;255m\033[1;46H") {
		t.Error("label background should match the bar")
	}

	buf.Reset()
	term.Clear(navy)
	if err := term.Present(); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(buf.String(), "\033[2J") {
		t.Error("second frame should not clear the screen")
	}
	if strings.Contains(buf.String(), "Hits") {
		t.Error("Clear should drop queued labels")
	}
}

func TestTerminal_TextClipped(t *testing.T) {
	var buf bytes.Buffer
	term := NewTerminal(&buf, fixedSize(80, 30), 800, 600)
	term.Clear(navy)
	term.DrawText("ABCDEFGHIJ", 760, 300, white)
	if err := term.Present(); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "ABCD") || strings.Contains(buf.String(), "ABCDE") {
		t.Errorf("label should be clipped to 4 runes at col 77")
	}
}

func TestTerminal_MeasureText(t *testing.T) {
	term := NewTerminal(&bytes.Buffer{}, fixedSize(80, 30), 800, 600)
	w, h := term.MeasureText("Hits")
	if w != 40 || h != 20 {
		t.Errorf("MeasureText = (%g,%g), want (40,20)", w, h)
	}
}

func TestTerminal_UpdateSize(t *testing.T) {
	width, height := 80, 30
	sizeErr := error(nil)
	size := func() (int, int, error) { return width, height, sizeErr }

	var buf bytes.Buffer
	term := NewTerminal(&buf, size, 800, 600)
	term.Present()
	buf.Reset()

	width, height = 120, 30
	if err := term.UpdateSize(); err != nil {
		t.Fatal(err)
	}
	if term.Canvas().OffsetCol() != 20 {
		t.Errorf("OffsetCol = %d, want 20", term.Canvas().OffsetCol())
	}
	if x, y := term.PointerToLogical(20, 0); x != 5 || y != 10 {
		t.Errorf("PointerToLogical = (%d,%d), want (5,10)", x, y)
	}
	term.Present()
	if !strings.Contains(buf.String(), "\033[2J") {
		t.Error("resize should force a full clear")
	}

	sizeErr = errors.New("no tty")
	if err := term.UpdateSize(); err == nil {
		t.Error("expected size error to propagate")
	}
}
