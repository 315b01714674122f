package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/square-invaders/internal/config"
	"github.com/vovakirdan/square-invaders/internal/core"
	"github.com/vovakirdan/square-invaders/internal/game"
	"github.com/vovakirdan/square-invaders/internal/platform/audio"
	"github.com/vovakirdan/square-invaders/internal/platform/tui"
)

func runPlay(_ *cobra.Command, _ []string) {
	fileCfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	game.SetTheme(game.Theme{
		PlayerAlive: core.ColorByName(fileCfg.Theme.PlayerAlive),
		PlayerDead:  core.ColorByName(fileCfg.Theme.PlayerDead),
		Entity:      core.ColorByName(fileCfg.Theme.Entity),
	})

	// Terminal size; fall back to defaults when not a terminal
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	tickRate := fileCfg.TickRate
	if flagFPS > 0 {
		tickRate = flagFPS
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: tickRate,
		Seed:     flagSeed,
	}

	// Sound is best-effort: a headless box without a sound device
	// should still be playable
	var sound tui.FireSounder
	if fileCfg.Audio.Enabled {
		player := audio.NewPlayer()
		if audioErr := player.Init(); audioErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: audio unavailable: %v\n", audioErr)
		} else {
			sound = player
			defer player.Close()
		}
	}

	if runErr := tui.Run(game.New(), cfg, sound); runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
