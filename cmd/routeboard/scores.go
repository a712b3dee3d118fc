package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/routeboard/internal/registry"
	"github.com/vovakirdan/routeboard/internal/storage"
)

var flagScoresLimit int

var scoresCmd = &cobra.Command{
	Use:   "scores <board>",
	Short: "Show best runs for a board",
	Long: `Display the best finished runs for the specified board.
Lower scores are better: score = turns + 2 x eaten.

Examples:
  routeboard scores routeboard
  routeboard scores routeboard_challenge --limit 20`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
}

func runScores(_ *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown board %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'routeboard list' to see available boards.")
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating board: %v\n", err)
		os.Exit(1)
	}
	title := game.Title()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	runs, err := store.BestRuns(gameID, flagScoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		return
	}

	fmt.Printf("Best Runs - %s\n", title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'routeboard play %s' and clear the board to set the first record!\n", gameID)
		return
	}

	fmt.Printf("  %-4s  %-6s  %-6s  %-6s  %-10s  %s\n", "Rank", "Score", "Turns", "Eaten", "Seed", "Date")
	fmt.Printf("  %-4s  %-6s  %-6s  %-6s  %-10s  %s\n", "----", "-----", "-----", "-----", "----", "----")

	for i, r := range runs {
		dateStr := r.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-6d  %-6d  %-6d  %-10d  %s\n", i+1, r.Score, r.Turns, r.Eaten, r.Seed, dateStr)
	}

	stats, err := store.GetGameStats(gameID)
	if err == nil && stats != nil {
		fmt.Println()
		fmt.Printf("Runs: %d  Best: %d  Average: %.1f  Pieces eaten: %d\n",
			stats.RunsCount, stats.BestScore, stats.AvgScore, stats.TotalEaten)
	}
}
