package game

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	Tick    uint64
	Width   int
	Height  int
	Cells   [][]int // Indexed [x][y]; 0 means empty
	MaxTile int
	Phase   string
	Won     bool
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	cells := make([][]int, g.rules.Width)
	for x := range cells {
		cells[x] = make([]int, g.rules.Height)
		for y := range cells[x] {
			if v, ok := g.board.Value(x, y); ok {
				cells[x][y] = v
			}
		}
	}

	return Snapshot{
		Tick:    g.tick,
		Width:   g.rules.Width,
		Height:  g.rules.Height,
		Cells:   cells,
		MaxTile: g.board.MaxTile(),
		Phase:   g.phase.String(),
		Won:     g.winShown || g.phase == PhaseWin,
	}
}

// Equal reports whether two snapshots describe identical boards and
// phases, ignoring the tick counter.
func (s Snapshot) Equal(other Snapshot) bool {
	if s.Width != other.Width || s.Height != other.Height {
		return false
	}
	if s.Phase != other.Phase || s.Won != other.Won {
		return false
	}
	for x := range s.Cells {
		for y := range s.Cells[x] {
			if s.Cells[x][y] != other.Cells[x][y] {
				return false
			}
		}
	}
	return true
}
