package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState communicates game status to the platform.
// Returned by Game.State() after each step.
type GameState struct {
	MaxTile    int  // Highest tile currently on the board
	BoardW     int  // Board width in cells
	BoardH     int  // Board height in cells
	Won        bool // The win target was reached at some point this game
	WinPending bool // The win overlay is showing, awaiting dismissal
	GameOver   bool // No moves remain; the game has ended
	Paused     bool // The game is not accepting moves (e.g. window too small)
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
