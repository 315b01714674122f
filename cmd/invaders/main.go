// invaders is a terminal rendition of the classic fixed-shooter: dodge the
// invaders' bullets and clear all 24 of them from the sky.
//
// Usage:
//
//	invaders               - Play in the current terminal
//	invaders serve         - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>     - Set tick rate (overrides config)
//	--seed <value>   - Set RNG seed for reproducible gameplay
//	--config <path>  - Path to custom config YAML
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagConfig string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "invaders",
	Short: "Square Invaders - a fixed-shooter in your terminal",
	Long: `Square Invaders is a terminal fixed-shooter. A grid of invaders
patrols overhead and rains bullets; shoot them all down before one
of their shots finds you.

Controls:
  A/Left     - Move left
  D/Right    - Move right
  Space      - Fire
  P/Esc      - Pause
  R          - Restart
  Q/Ctrl+C   - Quit

Examples:
  invaders
  invaders --fps 30
  invaders --seed 42
  invaders --config ./my-config.yaml
  invaders serve --ssh :2222`,
	Run: runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (frames per second, 0 = use config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")

	rootCmd.AddCommand(serveCmd)
}
