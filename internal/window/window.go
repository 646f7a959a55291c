// Package window runs a session in a desktop window using Ebitengine.
package window

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/tomz197/aimtrainer/internal/config"
	"github.com/tomz197/aimtrainer/internal/input"
	"github.com/tomz197/aimtrainer/internal/loop"
	"github.com/tomz197/aimtrainer/internal/object"
)

const title = "Aim Trainer"

// Options configures the window front-end.
type Options struct {
	Settings config.Settings
	Sounds   loop.Sounds
	Logger   *log.Logger
}

// Game adapts a session to Ebitengine's callback model. Ebitengine paces
// Update at the configured TPS, so it takes the place of the frame limiter.
type Game struct {
	session *loop.Session
	surface *Surface
	now     func() time.Time
	logger  *log.Logger
}

// NewGame creates a game around a fresh session.
func NewGame(opts Options) *Game {
	now := time.Now
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Game{
		session: loop.NewSession(opts.Settings, now(), loop.SessionOptions{
			Sounds: opts.Sounds,
			Logger: opts.Logger,
		}),
		surface: &Surface{},
		now:     now,
		logger:  logger,
	}
}

// Session returns the session being played.
func (g *Game) Session() *loop.Session {
	return g.session
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	events := pollEvents()
	x, y := ebiten.CursorPosition()
	if g.session.Tick(g.now(), events, x, y) {
		return ebiten.Termination
	}
	return nil
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	g.surface.dst = screen
	g.drawFrame(g.surface)
}

// drawFrame renders the session onto surf. Ebitengine's Draw cannot return an
// error, so a failed frame is logged and the next one is attempted.
func (g *Game) drawFrame(surf object.Surface) {
	if err := g.session.Draw(surf); err != nil {
		g.logger.Error("draw frame", "err", err)
	}
}

// Layout implements ebiten.Game. The logical size is fixed; Ebitengine scales
// it to the window and reports the cursor in logical coordinates.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	screen := g.session.Settings().Screen
	return screen.Width, screen.Height
}

// Run opens the window and blocks until the session terminates.
func Run(opts Options) error {
	if err := opts.Settings.Validate(); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}
	screen := opts.Settings.Screen

	ebiten.SetWindowSize(screen.Width, screen.Height)
	ebiten.SetWindowTitle(title)
	ebiten.SetTPS(opts.Settings.Game.FPS)
	ebiten.SetWindowClosingHandled(true)

	if opts.Logger != nil {
		opts.Logger.Info("window opened", "width", screen.Width, "height", screen.Height)
	}
	if err := ebiten.RunGame(NewGame(opts)); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}

// pollEvents collects this frame's input in a fixed order: window close,
// keys, then the pointer.
func pollEvents() []input.Event {
	var events []input.Event
	if ebiten.IsWindowBeingClosed() {
		events = append(events, input.Event{Type: input.EventQuit})
	}
	for _, k := range inpututil.AppendJustPressedKeys(nil) {
		events = append(events, keyEvent(k))
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		events = append(events, input.Event{Type: input.EventPointerPress, X: x, Y: y})
	}
	return events
}

// keyEvent maps a key to a queue event. Q quits; letters and digits carry
// their ASCII code, other keys carry none.
func keyEvent(k ebiten.Key) input.Event {
	switch {
	case k == ebiten.KeyQ:
		return input.Event{Type: input.EventQuit}
	case k >= ebiten.KeyA && k <= ebiten.KeyZ:
		return input.Event{Type: input.EventKeyPress, Key: byte('a' + (k - ebiten.KeyA))}
	case k >= ebiten.KeyDigit0 && k <= ebiten.KeyDigit9:
		return input.Event{Type: input.EventKeyPress, Key: byte('0' + (k - ebiten.KeyDigit0))}
	case k == ebiten.KeySpace:
		return input.Event{Type: input.EventKeyPress, Key: ' '}
	case k == ebiten.KeyEnter:
		return input.Event{Type: input.EventKeyPress, Key: '\r'}
	case k == ebiten.KeyEscape:
		return input.Event{Type: input.EventKeyPress, Key: 0x1b}
	default:
		return input.Event{Type: input.EventKeyPress}
	}
}
