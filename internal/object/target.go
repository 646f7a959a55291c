// Package object holds the game entities and the drawing contract they render through.
package object

import (
	"github.com/tomz197/aimtrainer/internal/physics"
)

// Ring fractions of the target glyph, outermost first. Even rings use the
// primary color, odd rings the secondary one.
var ringScales = [...]float64{1.0, 0.8, 0.6, 0.4}

// Target is a clickable circle that grows to its maximum radius and then
// shrinks until it vanishes.
type Target struct {
	X, Y       int     // Center, fixed at creation
	Radius     float64 // Current radius, always in [0, maxRadius]
	Growing    bool    // False once the maximum radius has been reached
	maxRadius  float64
	growthRate float64
}

// NewTarget creates a zero-radius growing target at (x, y).
func NewTarget(x, y int, maxRadius, growthRate float64) *Target {
	return &Target{
		X:          x,
		Y:          y,
		Growing:    true,
		maxRadius:  maxRadius,
		growthRate: growthRate,
	}
}

// Update advances the radius by one frame. Reaching the maximum flips the
// target into its shrinking phase for good.
func (t *Target) Update() {
	if t.Growing {
		t.Radius += t.growthRate
		if t.Radius >= t.maxRadius {
			t.Radius = t.maxRadius
			t.Growing = false
		}
		return
	}
	t.Radius = physics.Clamp(t.Radius-t.growthRate, 0, t.maxRadius)
}

// Expired reports whether the target has shrunk away.
func (t *Target) Expired() bool {
	return !t.Growing && t.Radius <= 0
}

// Collide reports whether the point (x, y) lies within the current radius.
func (t *Target) Collide(x, y int) bool {
	return physics.PointInCircle(float64(x), float64(y), float64(t.X), float64(t.Y), t.Radius)
}

// MaxRadius returns the radius at which the target stops growing.
func (t *Target) MaxRadius() float64 {
	return t.maxRadius
}

// Draw renders the target as concentric alternating rings.
func (t *Target) Draw(s Surface) {
	if t.Radius <= 0 {
		return
	}
	cx, cy := float64(t.X), float64(t.Y)
	for i, scale := range ringScales {
		c := ColorPrimary
		if i%2 == 1 {
			c = ColorSecondary
		}
		s.FillCircle(cx, cy, t.Radius*scale, c)
	}
}
