package main

import (
	"bufio"
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/tomz197/aimtrainer/internal/config"
	"github.com/tomz197/aimtrainer/internal/loop"
	"github.com/tomz197/aimtrainer/internal/sound"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	logger, logFile, err := setupLogging(
		config.GetEnv("AIMTRAINER_LOG", ""),
		config.GetEnvBool("AIMTRAINER_DEBUG", false),
	)
	if err != nil {
		return err
	}
	if logFile != nil {
		defer logFile.Close()
	}

	settings, err := config.Load(config.GetEnv("AIMTRAINER_CONFIG", ""))
	if err != nil {
		return err
	}

	opts := loop.Options{
		Settings: settings,
		Logger:   logger,
	}
	if config.GetEnvBool("AIMTRAINER_SOUND", false) {
		player := sound.NewPlayer()
		if err := player.Initialize(); err != nil {
			logger.Warn("sound disabled", "err", err)
		} else {
			defer player.Close()
			opts.Sounds = player
		}
	}

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("failed to enable raw mode: %w", err)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	reader := bufio.NewReader(os.Stdin)
	return loop.Run(reader, os.Stdout, opts)
}
