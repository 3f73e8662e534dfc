package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-match3/internal/platform/tui"
	"github.com/vovakirdan/tui-match3/internal/registry"
	"github.com/vovakirdan/tui-match3/internal/storage"
)

var (
	flagScoresTUI   bool
	flagScoresLimit int
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores and recent sessions",
	Long: `Display the top scores and the most recent sessions for a game mode.
With --tui, opens an interactive scoreboard instead.

Examples:
  match3 scores
  match3 scores match3_moves --limit 5
  match3 scores --tui`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Browse scores interactively")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of rows per table")
}

func runScores(_ *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagScoresTUI {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		return tui.RunScoreboard(store, width, height)
	}

	id := gameID(args)
	game, err := registry.Create(id)
	if err != nil {
		return fmt.Errorf("unknown game mode %q, run 'match3 list' to see available modes", id)
	}

	scores, err := store.TopScores(id, flagScoresLimit)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n", game.Title())
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'match3 play %s' to set the first high score!\n", id)
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	sessions, err := store.RecentSessions(id, flagScoresLimit)
	if err != nil {
		return err
	}
	if len(sessions) > 0 {
		fmt.Println()
		fmt.Println("Recent sessions:")
		fmt.Println()
		fmt.Printf("  %-16s  %-7s  %-5s  %-8s  %-8s  %s\n", "Date", "Score", "Moves", "Cascades", "Shuffles", "Duration")
		for _, s := range sessions {
			fmt.Printf("  %-16s  %-7d  %-5d  %-8d  %-8d  %s\n",
				s.CreatedAt.Format("2006-01-02 15:04"), s.Score, s.Moves, s.Cascades, s.Shuffles, s.Duration.Round(time.Second))
		}
	}
	return nil
}
