package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-scramble/internal/core"
	"github.com/vovakirdan/tui-scramble/internal/games/scramble"
	"github.com/vovakirdan/tui-scramble/internal/logging"
	"github.com/vovakirdan/tui-scramble/internal/platform/tui"
)

var flagCount string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game in this terminal.

Controls:
  0-9, Enter      - Type the tile count and start a round
  Mouse click     - Click a tile
  Tab/Arrows      - Move between tiles
  Space/Enter     - Click the focused tile
  R               - Play again with the same count
  N/Esc           - Change the tile count
  Ctrl+S          - Save a screenshot
  Q/Ctrl+C        - Quit

Difficulty options:
  easy   - Longer memorization pause and slower scramble
  normal - Default timings
  hard   - Shorter pause and faster scramble

Examples:
  scramble play
  scramble play -n 6
  scramble play --difficulty easy
  scramble play --config ./my-scramble.yaml --log-file ./scramble.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVarP(&flagCount, "count", "n", "", "Pre-fill the tile count field")
}

func runPlay(_ *cobra.Command, _ []string) {
	gameCfg, err := loadGameConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// The terminal belongs to the TUI, so logs only go to a file.
	w, closeLog, err := logging.OpenFile(flagLogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger, err := logging.New(w, "scramble", flagLogLevel)
	if err != nil {
		closeLog()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Get terminal size early so the first frame fits
	width, height := 80, 24 // Defaults
	if tw, th, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = tw
		height = th
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	game := scramble.New(gameCfg, logger)
	logger.Info("starting", "seed", cfg.Seed, "fps", cfg.TickRate, "tiles", fmt.Sprintf("%d-%d", gameCfg.Tiles.Min, gameCfg.Tiles.Max))

	runErr := tui.Run(game, cfg, tui.ModelOptions{Count: flagCount, Logger: logger})

	stats := game.Stats()
	logger.Info("finished", "rounds", stats.Rounds, "wins", stats.Wins, "best_streak", stats.BestStreak)
	//nolint:errcheck // Best-effort close, nothing left to log to
	closeLog()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
