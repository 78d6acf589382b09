package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/t2048/internal/config"
	"github.com/vovakirdan/t2048/internal/core"
	"github.com/vovakirdan/t2048/internal/game"
	"github.com/vovakirdan/t2048/internal/platform/tui"
	"github.com/vovakirdan/t2048/internal/storage"
)

var (
	flagConfig string
	flagWidth  int
	flagHeight int
	flagTheme  string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the puzzle",
	Long: `Start a game in the current terminal.

Controls:
  Arrows/WASD - Slide tiles
  R           - Restart (after game over)
  Q/Ctrl+C    - Quit
  Ctrl+S      - Save screenshot

On the win screen:
  Q - Keep playing
  W - Restart
  E - Exit

Examples:
  t2048 play
  t2048 play --width 5 --height 3
  t2048 play --theme green
  t2048 play --config ./my-game.yaml`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().IntVar(&flagWidth, "width", 0, "Board width (overrides config)")
	playCmd.Flags().IntVar(&flagHeight, "height", 0, "Board height (overrides config)")
	playCmd.Flags().StringVar(&flagTheme, "theme", "", "Color theme: blue, red, green (skips the picker)")
}

func runPlay(cmd *cobra.Command, args []string) {
	// Load game configuration
	gameCfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Flag overrides
	if flagWidth > 0 {
		gameCfg.Board.Width = flagWidth
	}
	if flagHeight > 0 {
		gameCfg.Board.Height = flagHeight
	}
	// Get terminal size early for the theme picker
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Create runtime config
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Resolve the theme: the --theme flag skips the interactive picker
	if flagTheme != "" {
		theme, ok := tui.ThemeByName(flagTheme)
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: unknown theme %q (available: blue, red, green)\n", flagTheme)
			os.Exit(1)
		}
		tui.SetTheme(theme)
	} else {
		theme, selErr := tui.RunThemeSelector(cfg, gameCfg.UI.Theme)
		if selErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", selErr)
			os.Exit(1)
		}
		// User quit the picker
		if theme == nil {
			return
		}
		tui.SetTheme(*theme)
	}

	// Create game instance
	g, err := game.New(game.Rules{
		Width:      gameCfg.Board.Width,
		Height:     gameCfg.Board.Height,
		Spawn4Prob: gameCfg.Spawn.FourProb,
		WinTarget:  gameCfg.Rules.WinTarget,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open result storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open results database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	// Run the game
	runErr := tui.Run(g, store, cfg)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
