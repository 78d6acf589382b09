package game

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/t2048/internal/core"
)

// Phase represents the whole-game state machine.
type Phase int

const (
	PhasePlaying  Phase = iota
	PhaseWin            // win overlay showing; dismissible (continue/restart/exit)
	PhaseGameOver       // terminal
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseWin:
		return "win"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Rules holds the construction parameters for a game.
type Rules struct {
	Width      int
	Height     int
	Spawn4Prob float64
	WinTarget  int
}

// DefaultRules returns the classic 4x4 setup.
func DefaultRules() Rules {
	return Rules{
		Width:      4,
		Height:     4,
		Spawn4Prob: DefaultSpawn4Prob,
		WinTarget:  DefaultWinTarget,
	}
}

// Game wraps a Board with the input-driven lifecycle the platform runs:
// reset, step-per-tick, render, status.
type Game struct {
	rules Rules
	rng   *rand.Rand
	tick  uint64

	board *Board

	// Screen dimensions
	screenW int
	screenH int

	// Game state flags
	phase         Phase
	winShown      bool // Win overlay already dismissed once this game
	tooSmall      bool
	moveProcessed bool // Prevent multiple moves per tick
}

// New creates a game with the given rules. Dimensions must be positive.
func New(rules Rules) (*Game, error) {
	if rules.Width <= 0 || rules.Height <= 0 {
		return nil, fmt.Errorf("game: board dimensions must be positive, got %dx%d", rules.Width, rules.Height)
	}
	if rules.Spawn4Prob < 0 || rules.Spawn4Prob > 1 {
		return nil, fmt.Errorf("game: spawn four-probability must be in [0, 1], got %v", rules.Spawn4Prob)
	}
	if rules.WinTarget <= 0 {
		rules.WinTarget = DefaultWinTarget
	}
	return &Game{rules: rules}, nil
}

// ID returns the game identifier used for storage and logging.
func (g *Game) ID() string {
	return "t2048"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "2048"
}

// Board exposes the underlying board for rendering and tests.
func (g *Game) Board() *Board {
	return g.board
}

// Phase returns the current whole-game phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Reset initializes/restarts the game with a fresh board and two spawns.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.phase = PhasePlaying
	g.winShown = false
	g.moveProcessed = false

	// Rules were validated in New, so this cannot fail.
	board, err := NewBoard(g.rules.Width, g.rules.Height, g.rng)
	if err != nil {
		panic(fmt.Sprintf("game: reset with invalid rules: %v", err))
	}
	board.SetSpawn4Prob(g.rules.Spawn4Prob)
	board.SetWinTarget(g.rules.WinTarget)
	g.board = board

	g.board.Spawn()
	g.board.Spawn()

	g.checkScreenSize()
}

// checkScreenSize checks if the screen is large enough for the board
// plus the HUD.
func (g *Game) checkScreenSize() {
	minW := g.rules.Width*cellWidth + 1 + 2
	minH := g.rules.Height*cellHeight + 1 + hudHeight + 2
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	g.moveProcessed = false

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	switch g.phase {
	case PhaseWin:
		// Restart and exit are handled by the platform; Continue
		// dismisses the overlay once and for all for this game.
		if in.Has(core.ActionContinue) {
			g.winShown = true
			g.phase = PhasePlaying
		}
		return core.StepResult{State: g.State()}

	case PhaseGameOver:
		return core.StepResult{State: g.State()}
	}

	var dir Direction
	moved := false

	switch {
	case in.Has(core.ActionUp):
		dir = DirUp
		moved = true
	case in.Has(core.ActionDown):
		dir = DirDown
		moved = true
	case in.Has(core.ActionLeft):
		dir = DirLeft
		moved = true
	case in.Has(core.ActionRight):
		dir = DirRight
		moved = true
	}

	if moved && !g.moveProcessed {
		g.processMove(dir)
		g.moveProcessed = true
	}

	return core.StepResult{State: g.State()}
}

// processMove applies a move and updates the phase.
func (g *Game) processMove(dir Direction) {
	g.board.Move(dir)

	if !g.winShown && g.board.Won() {
		g.phase = PhaseWin
		return
	}

	if g.board.GameOver() {
		g.phase = PhaseGameOver
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		MaxTile:    g.board.MaxTile(),
		BoardW:     g.rules.Width,
		BoardH:     g.rules.Height,
		Won:        g.winShown || g.phase == PhaseWin,
		WinPending: g.phase == PhaseWin,
		GameOver:   g.phase == PhaseGameOver,
		Paused:     g.tooSmall,
	}
}
