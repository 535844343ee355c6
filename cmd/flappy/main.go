// flappy is a terminal Flappy Bird: flap through an endless field of pipes.
//
// Usage:
//
//	flappy                   - Play with default tuning
//	flappy --fps 120         - Set tick rate
//	flappy --seed 42         - Set RNG seed for reproducible runs
//	flappy --config my.yaml  - Use custom tuning
package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
)

var (
	flagFPS    int
	flagSeed   int64
	flagConfig string
)

var rootCmd = &cobra.Command{
	Use:   "flappy",
	Short: "Flappy Bird in your terminal",
	Long: `A terminal Flappy Bird. The bird falls under gravity; flap to stay
airborne and thread the gaps between pipes. Touching a pipe or the
ground ends the run; flap again to restart.

Controls:
  Space/Up/W - Flap (restarts after a crash)
  Ctrl+S     - Screenshot
  Q/Ctrl+C   - Quit`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	rootCmd.Flags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom tuning YAML")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runPlay(cmd *cobra.Command, args []string) error {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "flappy",
	})

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	// Probe terminal size; fall back to a conservative default
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	} else {
		logger.Warn("could not read terminal size, using defaults", "error", termErr)
	}

	rt := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	game := flappy.New(cfg)

	if err := tui.Run(game, rt); err != nil {
		logger.Error("game exited with error", "error", err)
		return err
	}
	return nil
}
