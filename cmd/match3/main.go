// match3 is a terminal match-3 game.
//
// Usage:
//
//	match3 list              - List game modes and builtin layouts
//	match3 play [mode]       - Play in the terminal
//	match3 sim [mode]        - Autoplay a session without a terminal
//	match3 serve             - Start SSH server for remote play
//	match3 scores [mode]     - Show high scores and recent sessions
//	match3 config            - Print the default configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 30)
//	--seed <value>        - Set RNG seed for reproducible boards
//	--db <path>           - Set database path (default: ~/.match3/match3.db)
//	--config <path>       - Load a custom match3.yaml
//	--difficulty <name>   - Apply a preset: easy, normal, hard
//	--log-level <level>   - debug, info, warn, error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-match3/internal/config"
	"github.com/vovakirdan/tui-match3/internal/games/match3"
	"github.com/vovakirdan/tui-match3/internal/storage"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
)

var logger = log.New(io.Discard)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "match3",
	Short: "Match-3 - Swap tiles and clear rows in your terminal",
	Long: `Match-3 is a terminal puzzle game. Swap two neighbouring tiles to line
up three or more of the same color; matched tiles vanish, the ones above
fall down and new tiles drop in from the top.

Available commands:
  list     - Show game modes and builtin layouts
  play     - Play in the terminal
  sim      - Autoplay a session and print the result
  serve    - Start SSH server for remote play
  scores   - View high scores and recent sessions
  config   - Print the default configuration

Examples:
  match3 play
  match3 play match3_moves --difficulty hard
  match3 sim --moves 50 --seed 42 --check
  match3 serve --ssh :2222
  match3 scores --tui`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom match3.yaml")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// setup validates the global flags and hands them to the game package.
func setup(_ *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	if _, err := config.ParsePreset(flagDifficulty); err != nil {
		return err
	}

	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "match3",
		Level:           level,
	})

	match3.SetConfigPath(flagConfig)
	match3.SetDifficultyPreset(flagDifficulty)
	match3.SetLogger(logger)
	return nil
}

// gameID returns the mode named in args, or the endless mode.
func gameID(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return "match3"
}
