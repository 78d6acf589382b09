// t2048 is a terminal sliding-tile merge puzzle.
//
// Usage:
//
//	t2048 play               - Play in the current terminal
//	t2048 results            - Browse past game results
//	t2048 serve              - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.t2048/results.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "t2048",
	Short: "t2048 - A sliding-tile merge puzzle for your terminal",
	Long: `t2048 is a terminal rendition of the classic sliding-tile merge
puzzle. Slide tiles in four directions, merge equal pairs, and chase
the 2048 tile.

Available commands:
  play     - Play in the current terminal
  results  - Browse past game results
  serve    - Start SSH server for remote play

Examples:
  t2048 play
  t2048 play --width 5 --height 3 --theme red
  t2048 results
  t2048 serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.t2048/results.db", "Path to results database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(resultsCmd)
	rootCmd.AddCommand(serveCmd)
}
