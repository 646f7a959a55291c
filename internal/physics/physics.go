// Package physics provides collision detection and distance utilities.
package physics

import "math"

// DistanceSquared calculates the squared distance between two points.
// Use this when comparing distances to avoid the sqrt cost.
func DistanceSquared(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return dx*dx + dy*dy
}

// PointInCircle checks if a point is within radius of a center position.
// Points exactly on the edge count as inside. A negative radius never matches.
func PointInCircle(px, py, cx, cy, radius float64) bool {
	if radius < 0 {
		return false
	}
	return DistanceSquared(px, py, cx, cy) <= radius*radius
}

// Clamp limits v to the range [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
