package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-match3/internal/games/match3/layouts"
	"github.com/vovakirdan/tui-match3/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List game modes and builtin layouts",
	Long:  `Shows the registered game modes and the layouts bundled with the binary.`,
	RunE:  runList,
}

func runList(_ *cobra.Command, _ []string) error {
	games := registry.List()

	fmt.Println("Game modes:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")
	for _, g := range games {
		fmt.Printf("  %-*s  %s\n", maxIDLen, g.ID, g.Title)
	}

	all, err := layouts.Builtin().LoadAll()
	if err != nil {
		return fmt.Errorf("loading builtin layouts: %w", err)
	}

	fmt.Println()
	fmt.Println("Builtin layouts:")
	fmt.Println()
	for _, l := range all {
		fmt.Printf("  %-10s  %dx%d  %s\n", l.ID, l.Rows(), l.Columns(), l.Name)
	}

	fmt.Println()
	fmt.Println("Run 'match3 play <id>' to play, or add '--layout <layout>' to start from a fixed board.")
	return nil
}
