package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/t2048/internal/platform/tui"
	"github.com/vovakirdan/t2048/internal/storage"
)

var flagPlain bool

var resultsCmd = &cobra.Command{
	Use:   "results",
	Short: "Browse past game results",
	Long: `Display the recorded games, newest first.

By default an interactive browser opens. Use --plain for a plain-text
table suitable for piping.

Examples:
  t2048 results
  t2048 results --plain`,
	Run: runResults,
}

func init() {
	resultsCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print results as plain text instead of the browser")
}

func runResults(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening results database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagPlain {
		printResults(store)
		return
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	if err := tui.RunHistory(store, width, height); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// printResults writes the recent games as a plain table.
func printResults(store *storage.Store) {
	results, err := store.RecentResults(10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving results: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Recent Games - 2048")
	fmt.Println()

	if len(results) == 0 {
		fmt.Println("No games recorded yet.")
		fmt.Println()
		fmt.Println("Play 't2048 play' to record the first one!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-7s  %-10s  %-6s  %s\n", "Rank", "Board", "Max Tile", "Result", "Date")
	fmt.Printf("  %-4s  %-7s  %-10s  %-6s  %s\n", "----", "-----", "--------", "------", "----")

	// Print results
	for i, entry := range results {
		outcome := "lost"
		if entry.Won {
			outcome = "won"
		}
		board := fmt.Sprintf("%dx%d", entry.BoardWidth, entry.BoardHeight)
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-7s  %-10d  %-6s  %s\n", i+1, board, entry.MaxTile, outcome, dateStr)
	}

	// Show the best tile ever
	fmt.Println()
	best, err := store.BestTile()
	if err == nil {
		fmt.Printf("Best tile: %d\n", best)
	}
}
