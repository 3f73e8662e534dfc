package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-match3/internal/core"
	"github.com/vovakirdan/tui-match3/internal/games/match3"
	"github.com/vovakirdan/tui-match3/internal/platform/tui"
	"github.com/vovakirdan/tui-match3/internal/registry"
	"github.com/vovakirdan/tui-match3/internal/storage"
)

var (
	flagLayout  string
	flagTheme   string
	flagLogFile string
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play in the terminal",
	Long: `Start a match-3 session. The mode defaults to "match3" (endless);
"match3_moves" ends after the configured move limit.

Controls:
  Arrows/hjkl  - Move the cursor
  Enter/Space  - Pick a tile, then a neighbour to swap with
  Esc          - Drop the picked tile
  ?            - Show a hint
  P            - Pause
  R            - Restart (after game over)
  Ctrl+S       - Save a text screenshot
  Q/Ctrl+C     - Quit

Examples:
  match3 play
  match3 play match3_moves --difficulty easy
  match3 play --layout quiet --seed 7
  match3 play --config ./my-match3.yaml --theme neon`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLayout, "layout", "", "Builtin layout ID or layout YAML file")
	playCmd.Flags().StringVar(&flagTheme, "theme", "default", "Color theme: default, neon, mono")
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file while playing")
}

func runPlay(_ *cobra.Command, args []string) error {
	id := gameID(args)
	if !registry.Exists(id) {
		return fmt.Errorf("unknown game mode %q, run 'match3 list' to see available modes", id)
	}

	// The board owns the terminal; logs go to a file or nowhere.
	playLogger, closeLog, err := fileLogger(flagLogFile)
	if err != nil {
		return err
	}
	defer closeLog()
	match3.SetLogger(playLogger)
	match3.SetLayout(flagLayout)

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	game, err := registry.Create(id)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database, scores will not be saved", "path", flagDBPath, "err", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	return tui.Run(game, cfg, tui.Options{
		Store:  store,
		Theme:  tui.ThemeByName(flagTheme),
		Logger: playLogger,
	})
}

// fileLogger returns a logger writing to path, or a discarding logger when
// path is empty.
func fileLogger(path string) (*log.Logger, func(), error) {
	if path == "" {
		return log.New(io.Discard), func() {}, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("creating log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}
	l := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "match3",
		Level:           logger.GetLevel(),
	})
	return l, func() { f.Close() }, nil
}
