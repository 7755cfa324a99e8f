// scramble is a terminal memory game: numbered tiles are shown, scrambled
// with their labels hidden, and must be clicked back in ascending order.
//
// Usage:
//
//	scramble                 - Play in this terminal (same as "play")
//	scramble play [-n 5]     - Play in this terminal
//	scramble serve           - Start SSH server for remote play
//	scramble config          - Print the default configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible rounds
//	--config <path>       - Use a custom YAML config
//	--difficulty <name>   - Timing preset: easy, normal, hard
//	--log-file <path>     - Write logs to a file (play)
//	--log-level <level>   - debug, info, warn, error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-scramble/internal/config"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "scramble",
	Short: "Scramble - a memory game for your terminal",
	Long: `Scramble shows a row of colored, numbered tiles. After a short pause the
numbers disappear and the tiles jump around the board, once per tile.
Click them back in ascending order to win.

Available commands:
  play     - Play in this terminal (default)
  serve    - Start SSH server for remote play
  config   - Print the default configuration

Examples:
  scramble
  scramble play -n 5
  scramble --difficulty hard
  scramble serve --ssh :2222`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Timing preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.Flags().StringVarP(&flagCount, "count", "n", "", "Pre-fill the tile count field")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// loadGameConfig resolves the config file and applies the difficulty preset.
func loadGameConfig() (config.ScrambleConfig, error) {
	preset, err := config.ParseDifficulty(flagDifficulty)
	if err != nil {
		return config.ScrambleConfig{}, err
	}
	cfg, err := config.LoadScramble(flagConfig)
	if err != nil {
		return config.ScrambleConfig{}, err
	}
	config.ApplyScramblePreset(&cfg, preset)
	return cfg, nil
}
