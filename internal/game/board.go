// Package game implements the sliding-tile merge puzzle: a fixed-size
// grid of optional tiles with a compact/merge/compact move pipeline,
// random tile spawning, and win/game-over detection.
package game

import (
	"fmt"
	"math/rand"
)

// Direction is one of the four orthogonal move directions.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "invalid"
	}
}

// Vector returns the unit step for the direction. The y axis grows
// downward, matching screen coordinates. Invalid directions map to the
// zero vector, which every board operation treats as a no-op.
func (d Direction) Vector() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	default:
		return 0, 0
	}
}

// Default rule parameters.
const (
	DefaultWinTarget  = 2048
	DefaultSpawn4Prob = 0.1
)

// position is a cell coordinate on the board.
type position struct {
	x, y int
}

// Board is a width×height grid of optional tiles indexed [x][y].
// It owns all tiles it contains; tiles never outlive their cell.
type Board struct {
	width      int
	height     int
	cells      [][]*Tile
	rng        *rand.Rand
	spawn4Prob float64
	winTarget  int
}

// NewBoard creates an empty board. Both dimensions must be positive.
// The rng drives spawn placement and value selection; inject a seeded
// source for deterministic play.
func NewBoard(width, height int, rng *rand.Rand) (*Board, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("game: board dimensions must be positive, got %dx%d", width, height)
	}

	cells := make([][]*Tile, width)
	for x := range cells {
		cells[x] = make([]*Tile, height)
	}

	return &Board{
		width:      width,
		height:     height,
		cells:      cells,
		rng:        rng,
		spawn4Prob: DefaultSpawn4Prob,
		winTarget:  DefaultWinTarget,
	}, nil
}

// SetSpawn4Prob overrides the probability of spawning a 4 instead of a 2.
// Values outside [0, 1] are clamped.
func (b *Board) SetSpawn4Prob(p float64) {
	if p < 0 {
		p = 0
	}
	if p > 1 {
		p = 1
	}
	b.spawn4Prob = p
}

// SetWinTarget overrides the tile value that counts as a win.
func (b *Board) SetWinTarget(target int) {
	if target > 0 {
		b.winTarget = target
	}
}

// Width returns the board width in cells.
func (b *Board) Width() int {
	return b.width
}

// Height returns the board height in cells.
func (b *Board) Height() int {
	return b.height
}

// Value returns the tile value at (x, y). The second result is false when
// the cell is empty or out of bounds.
func (b *Board) Value(x, y int) (int, bool) {
	if !b.inBounds(x, y) || b.cells[x][y] == nil {
		return 0, false
	}
	return b.cells[x][y].Value(), true
}

// TileCount returns the number of occupied cells.
func (b *Board) TileCount() int {
	n := 0
	for x := range b.cells {
		for y := range b.cells[x] {
			if b.cells[x][y] != nil {
				n++
			}
		}
	}
	return n
}

// MaxTile returns the highest tile value on the board, or 0 when empty.
func (b *Board) MaxTile() int {
	maxVal := 0
	for x := range b.cells {
		for y := range b.cells[x] {
			if t := b.cells[x][y]; t != nil && t.Value() > maxVal {
				maxVal = t.Value()
			}
		}
	}
	return maxVal
}

func (b *Board) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// emptyCells returns the coordinates of all empty cells in scan order.
func (b *Board) emptyCells() []position {
	var cells []position
	for x := 0; x < b.width; x++ {
		for y := 0; y < b.height; y++ {
			if b.cells[x][y] == nil {
				cells = append(cells, position{x, y})
			}
		}
	}
	return cells
}

// Spawn places a new tile on a uniformly random empty cell: a 4 with
// probability spawn4Prob, otherwise a 2. Returns false without touching
// the grid when no empty cell exists.
func (b *Board) Spawn() bool {
	empty := b.emptyCells()
	if len(empty) == 0 {
		return false
	}

	p := empty[b.rng.Intn(len(empty))]
	value := 2
	if b.rng.Float64() < b.spawn4Prob {
		value = 4
	}
	b.cells[p.x][p.y] = NewTile(value)
	return true
}

// Move slides all tiles toward d, merges equal adjacent pairs once per
// tile, closes the gaps, and spawns one tile if anything changed.
// Returns whether the board changed; an ineffective move leaves the grid
// untouched and spawns nothing.
func (b *Board) Move(d Direction) bool {
	dx, dy := d.Vector()
	if dx == 0 && dy == 0 {
		return false
	}

	changed := b.compact(d)
	changed = b.mergePass(d) || changed
	changed = b.compact(d) || changed

	if changed {
		b.Spawn()
	}
	return changed
}

// compact slides every tile as far as possible toward d. A single scan
// can move a tile at most one slot when a chain of tiles must shift
// together, so the scan repeats up to max(width, height) times to reach
// the fixed point. Returns whether any tile moved.
func (b *Board) compact(d Direction) bool {
	dx, dy := d.Vector()
	changed := false

	passes := b.width
	if b.height > passes {
		passes = b.height
	}

	for i := 0; i < passes; i++ {
		for x := 0; x < b.width; x++ {
			for y := 0; y < b.height; y++ {
				if b.cells[x][y] == nil {
					continue
				}

				cx, cy := x, y
				for {
					nx, ny := cx+dx, cy+dy
					if !b.inBounds(nx, ny) || b.cells[nx][ny] != nil {
						break
					}
					b.cells[nx][ny] = b.cells[cx][cy]
					b.cells[cx][cy] = nil
					cx, cy = nx, ny
					changed = true
				}
			}
		}
	}

	return changed
}

// starts returns the merge-walk start cells for a move toward d: the line
// of cells on the edge tiles settle against. The walk then proceeds in
// the inverse direction so merge results stay on the settling side and a
// just-merged tile is never compared again within the same pass.
func (b *Board) starts(d Direction) []position {
	dx, dy := d.Vector()

	ex, ey := 0, 0
	if dx > 0 {
		ex = b.width - 1
	}
	if dy > 0 {
		ey = b.height - 1
	}

	var cells []position
	if dx == 0 {
		for x := 0; x < b.width; x++ {
			cells = append(cells, position{x, ey})
		}
	} else {
		for y := 0; y < b.height; y++ {
			cells = append(cells, position{ex, y})
		}
	}
	return cells
}

// mergePass walks each line once from the settling edge, merging equal
// adjacent pairs. After a merge the walk advances past the emptied cell,
// which is what limits every tile to one merge per move.
func (b *Board) mergePass(d Direction) bool {
	dx, dy := d.Vector()
	changed := false

	for _, start := range b.starts(d) {
		cx, cy := start.x, start.y
		nx, ny := cx-dx, cy-dy

		for b.inBounds(nx, ny) {
			curr := b.cells[cx][cy]
			next := b.cells[nx][ny]

			if curr != nil && next != nil && curr.Merge(next) {
				b.cells[nx][ny] = nil
				changed = true
			}

			cx, cy = nx, ny
			nx, ny = cx-dx, cy-dy
		}
	}

	return changed
}

// GameOver reports whether no move can change the board: every cell is
// occupied and no tile has an orthogonal neighbor of equal value.
func (b *Board) GameOver() bool {
	dirs := []Direction{DirUp, DirDown, DirLeft, DirRight}

	for x := 0; x < b.width; x++ {
		for y := 0; y < b.height; y++ {
			t := b.cells[x][y]
			if t == nil {
				return false
			}

			for _, d := range dirs {
				dx, dy := d.Vector()
				nx, ny := x+dx, y+dy
				if !b.inBounds(nx, ny) {
					continue
				}
				if n := b.cells[nx][ny]; n == nil || n.Value() == t.Value() {
					return false
				}
			}
		}
	}
	return true
}

// Won reports whether any tile has reached the win target. Merge
// arithmetic only produces exact powers of two, so >= and == are
// equivalent for the default target of 2048.
func (b *Board) Won() bool {
	for x := range b.cells {
		for y := range b.cells[x] {
			if t := b.cells[x][y]; t != nil && t.Value() >= b.winTarget {
				return true
			}
		}
	}
	return false
}
