package object

import (
	"math/rand/v2"
	"time"

	"github.com/tomz197/aimtrainer/internal/input"
)

// SpawnTimer injects spawn events at a fixed interval. It polls a monotonic
// clock instead of relying on a platform timer, so it works the same for every
// front-end.
type SpawnTimer struct {
	interval time.Duration
	last     time.Time
}

// NewSpawnTimer creates a timer whose first tick is one interval after start.
func NewSpawnTimer(interval time.Duration, start time.Time) *SpawnTimer {
	return &SpawnTimer{
		interval: interval,
		last:     start,
	}
}

// Fire appends one spawn event for every interval that has elapsed since the
// previous tick and returns the extended slice.
func (s *SpawnTimer) Fire(now time.Time, events []input.Event) []input.Event {
	if s.interval <= 0 {
		return events
	}
	for now.Sub(s.last) >= s.interval {
		s.last = s.last.Add(s.interval)
		events = append(events, input.Event{Type: input.EventSpawn})
	}
	return events
}

// RandomPosition picks a uniformly random spawn center such that the target's
// full footprint plus padding stays inside the play area. Both bounds are
// inclusive: padding <= x <= width-padding, top+padding <= y <= height-padding.
func RandomPosition(rng *rand.Rand, area PlayArea, padding int) (x, y int) {
	x = randRange(rng, padding, area.Width-padding)
	y = randRange(rng, area.Top+padding, area.Height-padding)
	return x, y
}

// randRange returns an int in [lo, hi]; hi < lo collapses to lo.
func randRange(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.IntN(hi-lo+1)
}
