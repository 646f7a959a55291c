package loop

import (
	"fmt"
	"math"
	"time"
)

// FormatTime renders a duration in seconds as MM:SS.d. Seconds are rounded
// to one decimal before truncation, so 5.97 shows as 06; minutes and
// deciseconds are truncated.
func FormatTime(secs float64) string {
	if secs < 0 || math.IsNaN(secs) {
		secs = 0
	}
	minutes := int(secs / 60)
	seconds := int(math.Round(math.Mod(secs, 60)*10) / 10)
	deciseconds := int(math.Mod(secs*1000, 1000)) / 100
	return fmt.Sprintf("%02d:%02d.%d", minutes, seconds, deciseconds)
}

// FormatSpeed renders hits per second with one decimal, or "0" before any
// time has passed.
func FormatSpeed(hits int, elapsed time.Duration) string {
	if elapsed <= 0 {
		return "0"
	}
	return fmt.Sprintf("%.1f", float64(hits)/elapsed.Seconds())
}

// FormatAccuracy renders hits per click as a percentage with one decimal, or
// "0%" when nothing was clicked.
func FormatAccuracy(hits, clicks int) string {
	if clicks == 0 {
		return "0%"
	}
	return fmt.Sprintf("%.1f%%", float64(hits)/float64(clicks)*100)
}
