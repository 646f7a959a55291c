package loop

import (
	"io"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/aimtrainer/internal/config"
	"github.com/tomz197/aimtrainer/internal/object"
)

// Phase is the current stage of a session.
type Phase int

const (
	PhasePlaying Phase = iota // Targets spawn and animate
	PhaseEnded                // Lives exhausted, end screen shown
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// Sounds receives hit and miss notifications. A nil Sounds plays nothing.
type Sounds interface {
	Hit()
	Miss()
}

// Session holds everything that belongs to one playthrough. It is not safe
// for concurrent use: a single loop polls, simulates and renders it.
type Session struct {
	Targets []*object.Target // Active targets in spawn order
	Hits    int
	Clicks  int // Pointer presses while playing, hit or not
	Misses  int // Expired targets, never above Lives
	Lives   int
	Start   time.Time
	Elapsed time.Duration // Frozen once the session ends
	Phase   Phase

	settings config.Settings
	area     object.PlayArea
	timer    *object.SpawnTimer
	rng      *rand.Rand
	sounds   Sounds
	logger   *log.Logger
}

// SessionOptions configures the optional collaborators of a session.
type SessionOptions struct {
	Rand   *rand.Rand  // Spawn position source; seeded from the clock if nil
	Sounds Sounds      // Feedback sounds; silent if nil
	Logger *log.Logger // Session log; discarded if nil
}

// NewSession starts a fresh playthrough at now.
func NewSession(settings config.Settings, now time.Time, opts SessionOptions) *Session {
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewPCG(uint64(now.UnixNano()), uint64(now.Unix())))
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return &Session{
		Targets:  []*object.Target{},
		Lives:    settings.Game.Lives,
		Start:    now,
		Phase:    PhasePlaying,
		settings: settings,
		area: object.PlayArea{
			Width:  settings.Screen.Width,
			Height: settings.Screen.Height,
			Top:    settings.Screen.BarHeight,
		},
		timer:  object.NewSpawnTimer(settings.Targets.SpawnInterval, now),
		rng:    rng,
		sounds: opts.Sounds,
		logger: logger,
	}
}

// Settings returns the settings the session was created with.
func (s *Session) Settings() config.Settings {
	return s.settings
}

// LivesLeft returns the remaining allowance, never below zero.
func (s *Session) LivesLeft() int {
	return max(s.Lives-s.Misses, 0)
}

// Ended reports whether the lives allowance has been used up.
func (s *Session) Ended() bool {
	return s.Phase == PhaseEnded
}

// spawn adds a new target at a random position inside the play area.
func (s *Session) spawn() {
	x, y := object.RandomPosition(s.rng, s.area, s.settings.Targets.Padding)
	s.Targets = append(s.Targets, object.NewTarget(x, y, s.settings.Targets.MaxRadius, s.settings.Targets.GrowthRate))
	s.logger.Debug("target spawned", "x", x, "y", y, "active", len(s.Targets))
}

// hit credits a destroyed target.
func (s *Session) hit(t *object.Target) {
	s.Hits++
	s.logger.Debug("target hit", "x", t.X, "y", t.Y, "radius", t.Radius, "hits", s.Hits)
	if s.sounds != nil {
		s.sounds.Hit()
	}
}

// miss charges an expired target against the lives allowance.
func (s *Session) miss(t *object.Target) {
	if s.Misses < s.Lives {
		s.Misses++
	}
	s.logger.Debug("target missed", "x", t.X, "y", t.Y, "misses", s.Misses)
	if s.sounds != nil {
		s.sounds.Miss()
	}
}

// end freezes the clock and switches to the end screen.
func (s *Session) end(now time.Time) {
	s.Elapsed = now.Sub(s.Start)
	s.Phase = PhaseEnded
	s.logger.Info("session ended",
		"elapsed", FormatTime(s.Elapsed.Seconds()),
		"hits", s.Hits,
		"clicks", s.Clicks,
		"accuracy", FormatAccuracy(s.Hits, s.Clicks))
}
