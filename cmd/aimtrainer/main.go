package main

import (
	"os"

	"github.com/charmbracelet/log"

	"github.com/tomz197/aimtrainer/internal/config"
	"github.com/tomz197/aimtrainer/internal/sound"
	"github.com/tomz197/aimtrainer/internal/window"
)

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "aimtrainer",
	})
	if config.GetEnvBool("AIMTRAINER_DEBUG", false) {
		logger.SetLevel(log.DebugLevel)
	}

	settings, err := config.Load(config.GetEnv("AIMTRAINER_CONFIG", ""))
	if err != nil {
		logger.Fatal("failed to load config", "err", err)
	}

	opts := window.Options{
		Settings: settings,
		Logger:   logger,
	}
	if config.GetEnvBool("AIMTRAINER_SOUND", true) {
		player := sound.NewPlayer()
		if err := player.Initialize(); err != nil {
			logger.Warn("sound disabled", "err", err)
		} else {
			defer player.Close()
			opts.Sounds = player
		}
	}

	if err := window.Run(opts); err != nil {
		logger.Error("game error", "err", err)
		os.Exit(1)
	}
}
