package loop

import (
	"fmt"

	"github.com/tomz197/aimtrainer/internal/object"
)

// Draw renders the current frame for the session's phase and presents it.
func (s *Session) Draw(surf object.Surface) error {
	surf.Clear(object.ColorBackground)

	switch s.Phase {
	case PhasePlaying:
		s.drawPlaying(surf)
	case PhaseEnded:
		s.drawEnd(surf)
	}

	return surf.Present()
}

// drawPlaying draws every target followed by the status bar on top.
func (s *Session) drawPlaying(surf object.Surface) {
	for _, t := range s.Targets {
		t.Draw(surf)
	}

	surf.FillRect(0, 0, float64(s.settings.Screen.Width), float64(s.settings.Screen.BarHeight), object.ColorBar)

	labels := [...]string{
		"Time: " + FormatTime(s.Elapsed.Seconds()),
		"Speed: " + FormatSpeed(s.Hits, s.Elapsed) + " t/s",
		fmt.Sprintf("Hits: %d", s.Hits),
		fmt.Sprintf("Lives: %d", s.LivesLeft()),
	}
	for i, value := range labels {
		object.Text{
			X:     statusLabelX[i],
			Y:     statusLabelY,
			Value: value,
			Color: object.ColorBarText,
		}.Draw(surf)
	}
}

// drawEnd draws the final statistics, horizontally centered.
func (s *Session) drawEnd(surf object.Surface) {
	labels := [...]string{
		"Time: " + FormatTime(s.Elapsed.Seconds()),
		"Speed: " + FormatSpeed(s.Hits, s.Elapsed) + " t/s",
		fmt.Sprintf("Hits: %d", s.Hits),
		"Accuracy: " + FormatAccuracy(s.Hits, s.Clicks),
	}
	width := float64(s.settings.Screen.Width)
	for i, value := range labels {
		object.CenteredText(surf, value, width, endLabelY[i], object.ColorText).Draw(surf)
	}
}
