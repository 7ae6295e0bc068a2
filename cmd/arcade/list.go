package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/canvas-arcade/internal/registry"
	"github.com/vovakirdan/canvas-arcade/internal/storage"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available games",
	Long:  `Shows a list of all games registered in the arcade.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No games available.")
		return
	}

	fmt.Println("Available games:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
	}

	// Stats are optional; a missing database just leaves the columns empty.
	var stats map[string]*storage.GameStats
	if store, err := storage.Open(flagDBPath); err == nil {
		stats, _ = store.GetAllGamesStats()
		store.Close()
	}

	// Print header
	fmt.Printf("  %-*s  %-12s  %-6s  %s\n", maxIDLen, "ID", "Title", "Plays", "Best")
	fmt.Printf("  %-*s  %-12s  %-6s  %s\n", maxIDLen, "--", "-----", "-----", "----")

	// Print games
	for _, g := range games {
		plays, best := "-", "-"
		if st, ok := stats[g.ID]; ok {
			plays = fmt.Sprint(st.GamesCount)
			best = fmt.Sprint(st.HighScore)
		}
		fmt.Printf("  %-*s  %-12s  %-6s  %s\n", maxIDLen, g.ID, g.Title, plays, best)
	}

	fmt.Println()
	fmt.Println("Run 'arcade play <id>' to play a game.")
	fmt.Println("Run 'arcade config <id>' to see a game's tunable settings.")
}
