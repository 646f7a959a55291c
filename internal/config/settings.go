package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

// Settings holds every tunable game parameter. Zero values are never used
// directly: start from Defaults and overlay a file with Load.
type Settings struct {
	Screen  ScreenSettings  `toml:"screen"`
	Targets TargetSettings  `toml:"targets"`
	Game    SessionSettings `toml:"game"`
}

// ScreenSettings describes the logical play surface.
type ScreenSettings struct {
	Width     int `toml:"width"`
	Height    int `toml:"height"`
	BarHeight int `toml:"bar_height"` // Status bar strip reserved at the top
}

// TargetSettings controls target spawning and animation.
type TargetSettings struct {
	MaxRadius     float64       `toml:"max_radius"`
	GrowthRate    float64       `toml:"growth_rate"` // Radius change per frame
	Padding       int           `toml:"padding"`     // Minimum distance from the play area edges
	SpawnInterval time.Duration `toml:"spawn_interval"`
}

// SessionSettings controls the playthrough itself.
type SessionSettings struct {
	Lives int `toml:"lives"`
	FPS   int `toml:"fps"`
}

// Defaults returns the stock settings.
func Defaults() Settings {
	return Settings{
		Screen: ScreenSettings{
			Width:     800,
			Height:    600,
			BarHeight: 50,
		},
		Targets: TargetSettings{
			MaxRadius:     30,
			GrowthRate:    0.2,
			Padding:       30,
			SpawnInterval: 400 * time.Millisecond,
		},
		Game: SessionSettings{
			Lives: 3,
			FPS:   60,
		},
	}
}

// Load reads a TOML file over the defaults. An empty path returns the defaults.
func Load(path string) (Settings, error) {
	cfg := Defaults()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// FrameTime returns the frame budget for the configured FPS.
func (s Settings) FrameTime() time.Duration {
	return time.Second / time.Duration(s.Game.FPS)
}

// Validate rejects settings that cannot produce a playable area.
func (s Settings) Validate() error {
	var errs []error
	if s.Screen.Width <= 0 || s.Screen.Height <= 0 {
		errs = append(errs, fmt.Errorf("screen size %dx%d must be positive", s.Screen.Width, s.Screen.Height))
	}
	if s.Screen.BarHeight < 0 {
		errs = append(errs, fmt.Errorf("bar_height %d is negative", s.Screen.BarHeight))
	}
	if s.Targets.MaxRadius <= 0 {
		errs = append(errs, fmt.Errorf("max_radius %g must be positive", s.Targets.MaxRadius))
	}
	if s.Targets.GrowthRate <= 0 {
		errs = append(errs, fmt.Errorf("growth_rate %g must be positive", s.Targets.GrowthRate))
	}
	if s.Targets.Padding < 0 {
		errs = append(errs, fmt.Errorf("padding %d is negative", s.Targets.Padding))
	}
	if s.Targets.SpawnInterval <= 0 {
		errs = append(errs, fmt.Errorf("spawn_interval %s must be positive", s.Targets.SpawnInterval))
	}
	if s.Game.Lives <= 0 {
		errs = append(errs, fmt.Errorf("lives %d must be positive", s.Game.Lives))
	}
	if s.Game.FPS <= 0 {
		errs = append(errs, fmt.Errorf("fps %d must be positive", s.Game.FPS))
	}
	if 2*s.Targets.Padding > s.Screen.Width ||
		s.Targets.Padding*2+s.Screen.BarHeight > s.Screen.Height {
		errs = append(errs, errors.New("padding leaves no room to spawn targets"))
	}
	return errors.Join(errs...)
}
