package loop

import (
	"time"

	"github.com/tomz197/aimtrainer/internal/input"
)

// Tick advances the session by one frame. events are the inputs polled this
// frame in arrival order and (px, py) is the current pointer position in
// logical coordinates. Tick returns true when the session should terminate.
func (s *Session) Tick(now time.Time, events []input.Event, px, py int) bool {
	if s.Phase == PhaseEnded {
		return s.tickEnded(events)
	}

	s.Elapsed = now.Sub(s.Start)
	events = s.timer.Fire(now, events)

	clicked := false
	for _, ev := range events {
		switch ev.Type {
		case input.EventQuit:
			s.logger.Info("session quit", "elapsed", FormatTime(s.Elapsed.Seconds()), "hits", s.Hits)
			return true
		case input.EventSpawn:
			s.spawn()
		case input.EventPointerPress:
			clicked = true
			s.Clicks++
		}
	}

	s.updateTargets(clicked, px, py)

	if s.Misses >= s.Lives {
		s.end(now)
	}
	return false
}

// updateTargets advances every target in spawn order and removes the expired
// and the hit ones after the pass. A click credits at most one target, the
// earliest spawned one under the pointer.
func (s *Session) updateTargets(clicked bool, px, py int) {
	kept := s.Targets[:0] // reuse backing array
	for _, t := range s.Targets {
		t.Update()
		if t.Expired() {
			s.miss(t)
			continue
		}
		if clicked && t.Collide(px, py) {
			s.hit(t)
			clicked = false
			continue
		}
		kept = append(kept, t)
	}
	clear(s.Targets[len(kept):])
	s.Targets = kept
}

// tickEnded waits on the end screen for quit or any key.
func (s *Session) tickEnded(events []input.Event) bool {
	for _, ev := range events {
		if ev.Type == input.EventQuit || ev.Type == input.EventKeyPress {
			return true
		}
	}
	return false
}
