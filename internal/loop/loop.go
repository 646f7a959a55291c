// Package loop provides the game session and the frame loop that drives it.
package loop

import (
	"bufio"
	"fmt"
	"io"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/aimtrainer/internal/config"
	"github.com/tomz197/aimtrainer/internal/draw"
	"github.com/tomz197/aimtrainer/internal/input"
	"github.com/tomz197/aimtrainer/internal/object"
)

var _ object.Surface = (*draw.Terminal)(nil)

// Clock is the time source of the frame loop.
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

type realClock struct{}

func (realClock) Now() time.Time        { return time.Now() }
func (realClock) Sleep(d time.Duration) { time.Sleep(d) }

// EventSource supplies the inputs of each frame. Pointer positions are in
// logical coordinates.
type EventSource interface {
	PollEvents() []input.Event
	Pointer() (x, y int)
}

// Resizer is implemented by surfaces whose output size can change between
// frames.
type Resizer interface {
	UpdateSize() error
}

// RunLoop drives a session with the Input → Update → Draw cycle until it
// asks to terminate. The end screen keeps being drawn while it waits for a
// key. Quitting returns without drawing another frame.
func RunLoop(s *Session, src EventSource, surf object.Surface, clk Clock) error {
	if clk == nil {
		clk = realClock{}
	}
	frameTime := s.settings.FrameTime()

	for {
		frameStart := clk.Now()

		// ===== INPUT PHASE =====
		events := src.PollEvents()
		px, py := src.Pointer()

		// ===== UPDATE PHASE =====
		if s.Tick(frameStart, events, px, py) {
			return nil
		}
		if r, ok := surf.(Resizer); ok {
			if err := r.UpdateSize(); err != nil {
				return err
			}
		}

		// ===== DRAW PHASE =====
		if err := s.Draw(surf); err != nil {
			return err
		}

		// ===== FRAME TIMING =====
		elapsed := clk.Now().Sub(frameStart)
		if elapsed < frameTime {
			clk.Sleep(frameTime - elapsed)
		}
	}
}

// Options configures a terminal session.
type Options struct {
	Settings     config.Settings
	TermSizeFunc draw.TermSizeFunc // Defaults to the local terminal size
	Sounds       Sounds
	Logger       *log.Logger
	Clock        Clock
	Rand         *rand.Rand
}

// Run plays one session on a terminal: r carries keys and SGR mouse reports,
// w receives the rendered frames. The terminal is restored before returning.
func Run(r *bufio.Reader, w io.Writer, opts Options) error {
	clk := opts.Clock
	if clk == nil {
		clk = realClock{}
	}
	settings := opts.Settings
	if err := settings.Validate(); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}
	term := draw.NewTerminal(w, opts.TermSizeFunc, float64(settings.Screen.Width), float64(settings.Screen.Height))
	term.Open()
	defer term.Close()

	src := &terminalSource{
		stream: input.StartStream(r),
		term:   term,
	}

	session := NewSession(settings, clk.Now(), SessionOptions{
		Rand:   opts.Rand,
		Sounds: opts.Sounds,
		Logger: opts.Logger,
	})
	session.logger.Info("session started", "lives", session.Lives)

	return RunLoop(session, src, term, clk)
}

// terminalSource adapts a terminal input stream to logical coordinates.
type terminalSource struct {
	stream *input.Stream
	term   *draw.Terminal
}

func (t *terminalSource) PollEvents() []input.Event {
	events := input.ReadEvents(t.stream)
	for i := range events {
		if events[i].Type == input.EventPointerPress {
			events[i].X, events[i].Y = t.term.PointerToLogical(events[i].X, events[i].Y)
		}
	}
	return events
}

func (t *terminalSource) Pointer() (x, y int) {
	col, row := t.stream.Pointer()
	return t.term.PointerToLogical(col, row)
}
