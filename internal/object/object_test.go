package object

import (
	"image/color"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/tomz197/aimtrainer/internal/input"
)

// circleCall records a FillCircle invocation.
type circleCall struct {
	x, y, r float64
	c       color.RGBA
}

// recordingSurface is a Surface that remembers what was drawn.
type recordingSurface struct {
	circles []circleCall
	texts   []Text
}

func (r *recordingSurface) Clear(color.RGBA) {}
func (r *recordingSurface) FillCircle(x, y, rad float64, c color.RGBA) {
	r.circles = append(r.circles, circleCall{x, y, rad, c})
}
func (r *recordingSurface) FillRect(x, y, w, h float64, c color.RGBA) {}
func (r *recordingSurface) MeasureText(s string) (float64, float64) {
	return float64(len(s) * 10), 20
}
func (r *recordingSurface) DrawText(s string, x, y float64, c color.RGBA) {
	r.texts = append(r.texts, Text{X: x, Y: y, Value: s, Color: c})
}
func (r *recordingSurface) Present() error { return nil }

func TestTarget_RadiusLifecycle(t *testing.T) {
	target := NewTarget(100, 100, 30, 0.2)
	if target.Radius != 0 || !target.Growing {
		t.Fatalf("new target = %+v, want radius 0 and growing", target)
	}
	if target.Expired() {
		t.Fatal("fresh target should not be expired")
	}

	prev := target.Radius
	peaked := false
	frames := 0
	for !target.Expired() {
		target.Update()
		frames++
		if frames > 1000 {
			t.Fatal("target never expired")
		}
		if target.Radius < 0 || target.Radius > target.MaxRadius() {
			t.Fatalf("frame %d: radius %g outside [0, %g]", frames, target.Radius, target.MaxRadius())
		}
		if !peaked {
			if target.Radius < prev {
				t.Fatalf("frame %d: radius decreased before peak (%g -> %g)", frames, prev, target.Radius)
			}
			if target.Radius == target.MaxRadius() {
				peaked = true
				if target.Growing {
					t.Fatalf("frame %d: still growing at max radius", frames)
				}
			}
		} else {
			if target.Radius > prev {
				t.Fatalf("frame %d: radius grew after peak (%g -> %g)", frames, prev, target.Radius)
			}
			if target.Growing {
				t.Fatalf("frame %d: growth resumed after peak", frames)
			}
		}
		prev = target.Radius
	}

	if !peaked {
		t.Error("target expired without reaching max radius")
	}
	// 150 frames up, 150 frames down, give or take float rounding.
	if frames < 299 || frames > 302 {
		t.Errorf("lifetime = %d frames, want about 300", frames)
	}
}

func TestTarget_Collide(t *testing.T) {
	target := NewTarget(100, 100, 30, 0.2)
	target.Radius = 10

	if !target.Collide(100, 100) {
		t.Error("center should collide")
	}
	if !target.Collide(110, 100) {
		t.Error("point at exactly radius should collide")
	}
	if !target.Collide(106, 108) {
		t.Error("point at distance 10 on the diagonal should collide")
	}
	if target.Collide(111, 100) {
		t.Error("point beyond radius should not collide")
	}

	target.Radius = 10.5
	if target.Collide(111, 100) {
		t.Error("point at radius+0.5 should not collide")
	}
}

func TestTarget_DrawRings(t *testing.T) {
	target := NewTarget(50, 60, 30, 0.2)
	target.Radius = 20

	surf := &recordingSurface{}
	target.Draw(surf)

	wantRadii := []float64{20, 16, 12, 8}
	if len(surf.circles) != len(wantRadii) {
		t.Fatalf("drew %d circles, want %d", len(surf.circles), len(wantRadii))
	}
	for i, c := range surf.circles {
		if c.x != 50 || c.y != 60 {
			t.Errorf("ring %d centered at (%g,%g), want (50,60)", i, c.x, c.y)
		}
		if diff := c.r - wantRadii[i]; diff > 1e-9 || diff < -1e-9 {
			t.Errorf("ring %d radius = %g, want %g", i, c.r, wantRadii[i])
		}
		want := ColorPrimary
		if i%2 == 1 {
			want = ColorSecondary
		}
		if c.c != want {
			t.Errorf("ring %d color = %v, want %v", i, c.c, want)
		}
	}
}

func TestTarget_DrawSkipsEmpty(t *testing.T) {
	surf := &recordingSurface{}
	NewTarget(1, 1, 30, 0.2).Draw(surf)
	if len(surf.circles) != 0 {
		t.Errorf("zero-radius target drew %d circles", len(surf.circles))
	}
}

func TestRandomPosition_Bounds(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	area := PlayArea{Width: 800, Height: 600, Top: 50}
	const padding = 30

	for i := 0; i < 10000; i++ {
		x, y := RandomPosition(rng, area, padding)
		if x < padding || x > area.Width-padding {
			t.Fatalf("x = %d outside [%d, %d]", x, padding, area.Width-padding)
		}
		if y < padding+area.Top || y > area.Height-padding {
			t.Fatalf("y = %d outside [%d, %d]", y, padding+area.Top, area.Height-padding)
		}
	}
}

func TestRandomPosition_DegenerateArea(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	x, y := RandomPosition(rng, PlayArea{Width: 60, Height: 110, Top: 50}, 30)
	if x != 30 || y != 80 {
		t.Errorf("RandomPosition = (%d,%d), want (30,80)", x, y)
	}
}

func TestSpawnTimer_Fire(t *testing.T) {
	start := time.Unix(1000, 0)
	timer := NewSpawnTimer(400*time.Millisecond, start)

	if got := timer.Fire(start.Add(399*time.Millisecond), nil); len(got) != 0 {
		t.Errorf("fired %d events before the interval elapsed", len(got))
	}

	got := timer.Fire(start.Add(400*time.Millisecond), nil)
	if len(got) != 1 || got[0].Type != input.EventSpawn {
		t.Fatalf("events = %+v, want one spawn", got)
	}

	// Catch-up: two more intervals elapsed at once.
	existing := []input.Event{{Type: input.EventPointerPress}}
	got = timer.Fire(start.Add(1250*time.Millisecond), existing)
	if len(got) != 3 {
		t.Fatalf("got %d events, want pointer + 2 spawns", len(got))
	}
	if got[0].Type != input.EventPointerPress {
		t.Errorf("existing events must keep their order, got %+v", got[0])
	}

	// Phase is kept: the next tick is due at 1600ms, not 1650ms.
	if got := timer.Fire(start.Add(1600*time.Millisecond), nil); len(got) != 1 {
		t.Errorf("got %d events at 1600ms, want 1", len(got))
	}
}

func TestCenteredText(t *testing.T) {
	surf := &recordingSurface{}
	label := CenteredText(surf, "Hits: 12", 800, 300, ColorText)

	if label.X != 360 {
		t.Errorf("X = %g, want 360", label.X)
	}
	label.Draw(surf)
	if len(surf.texts) != 1 || surf.texts[0].Value != "Hits: 12" || surf.texts[0].Y != 300 {
		t.Errorf("drawn texts = %+v", surf.texts)
	}

	Text{}.Draw(surf)
	if len(surf.texts) != 1 {
		t.Error("empty label should not draw")
	}
}
