package game

// Tile holds a single power-of-two value. A tile's value only changes
// when an equal tile merges into it; the board owns every tile it
// contains and clears the losing cell after a merge.
type Tile struct {
	value int
}

// NewTile creates a tile with the given value.
func NewTile(value int) *Tile {
	return &Tile{value: value}
}

// Value returns the tile's current value.
func (t *Tile) Value() int {
	return t.value
}

// Merge merges other into t. If both values are equal, t doubles and the
// caller must clear other's cell. Returns false with no side effects when
// the values differ.
func (t *Tile) Merge(other *Tile) bool {
	if other == nil || t.value != other.value {
		return false
	}
	t.value *= 2
	return true
}
