package game

import (
	"math/rand"
	"testing"
)

// newTestBoard builds a board from row literals indexed [y][x], so the
// literal reads like the rendered grid. Zero means empty.
func newTestBoard(t *testing.T, rows [][]int) *Board {
	t.Helper()

	height := len(rows)
	width := len(rows[0])

	b, err := NewBoard(width, height, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("NewBoard(%d, %d) failed: %v", width, height, err)
	}

	for y, row := range rows {
		for x, v := range row {
			if v != 0 {
				b.cells[x][y] = NewTile(v)
			}
		}
	}
	return b
}

// grid dumps the board as row literals indexed [y][x].
func grid(b *Board) [][]int {
	rows := make([][]int, b.height)
	for y := range rows {
		rows[y] = make([]int, b.width)
		for x := range rows[y] {
			if v, ok := b.Value(x, y); ok {
				rows[y][x] = v
			}
		}
	}
	return rows
}

func gridsEqual(a, b [][]int) bool {
	if len(a) != len(b) {
		return false
	}
	for y := range a {
		if len(a[y]) != len(b[y]) {
			return false
		}
		for x := range a[y] {
			if a[y][x] != b[y][x] {
				return false
			}
		}
	}
	return true
}

func valueSum(b *Board) int {
	sum := 0
	for x := 0; x < b.width; x++ {
		for y := 0; y < b.height; y++ {
			if v, ok := b.Value(x, y); ok {
				sum += v
			}
		}
	}
	return sum
}

func TestNewBoardRejectsInvalidDims(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for _, dims := range [][2]int{{0, 4}, {4, 0}, {-1, 4}, {4, -1}, {0, 0}} {
		if _, err := NewBoard(dims[0], dims[1], rng); err == nil {
			t.Errorf("NewBoard(%d, %d) should fail", dims[0], dims[1])
		}
	}

	if _, err := NewBoard(4, 4, rng); err != nil {
		t.Errorf("NewBoard(4, 4) failed: %v", err)
	}
}

func TestDirectionVector(t *testing.T) {
	tests := []struct {
		dir    Direction
		dx, dy int
	}{
		{DirUp, 0, -1},
		{DirDown, 0, 1},
		{DirLeft, -1, 0},
		{DirRight, 1, 0},
		{Direction(42), 0, 0},
	}

	for _, tc := range tests {
		dx, dy := tc.dir.Vector()
		if dx != tc.dx || dy != tc.dy {
			t.Errorf("%v.Vector() = (%d, %d), want (%d, %d)", tc.dir, dx, dy, tc.dx, tc.dy)
		}
	}
}

func TestStarts(t *testing.T) {
	// 4 wide, 3 tall: start cells sit on the edge tiles settle against.
	b := newTestBoard(t, [][]int{
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})

	tests := []struct {
		dir  Direction
		want []position
	}{
		{DirLeft, []position{{0, 0}, {0, 1}, {0, 2}}},
		{DirRight, []position{{3, 0}, {3, 1}, {3, 2}}},
		{DirUp, []position{{0, 0}, {1, 0}, {2, 0}, {3, 0}}},
		{DirDown, []position{{0, 2}, {1, 2}, {2, 2}, {3, 2}}},
	}

	for _, tc := range tests {
		t.Run(tc.dir.String(), func(t *testing.T) {
			got := b.starts(tc.dir)
			if len(got) != len(tc.want) {
				t.Fatalf("starts(%v) = %v, want %v", tc.dir, got, tc.want)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Errorf("starts(%v)[%d] = %v, want %v", tc.dir, i, got[i], tc.want[i])
				}
			}
		})
	}
}

func TestCompactChain(t *testing.T) {
	// A full chain must shift together; a single scan moves each tile at
	// most one slot, so this exercises the fixed-point iteration.
	b := newTestBoard(t, [][]int{
		{0, 2, 4, 8},
		{0, 0, 0, 0},
	})

	if !b.compact(DirLeft) {
		t.Fatal("compact should report movement")
	}

	want := [][]int{
		{2, 4, 8, 0},
		{0, 0, 0, 0},
	}
	if !gridsEqual(grid(b), want) {
		t.Errorf("compact left = %v, want %v", grid(b), want)
	}
}

func TestCompactVertical(t *testing.T) {
	b := newTestBoard(t, [][]int{
		{2, 0},
		{0, 0},
		{4, 0},
		{0, 8},
	})

	b.compact(DirDown)

	want := [][]int{
		{0, 0},
		{0, 0},
		{2, 0},
		{4, 8},
	}
	if !gridsEqual(grid(b), want) {
		t.Errorf("compact down = %v, want %v", grid(b), want)
	}
}

func TestMergePassSettleEdge(t *testing.T) {
	// Three equal tiles moving left: the pair nearest the settling edge
	// merges, the third survives. [2,2,2] -> [4,2], never [2,4].
	b := newTestBoard(t, [][]int{
		{2, 2, 2, 0},
	})

	b.compact(DirLeft)
	if !b.mergePass(DirLeft) {
		t.Fatal("mergePass should merge the leading pair")
	}
	b.compact(DirLeft)

	want := [][]int{
		{4, 2, 0, 0},
	}
	if !gridsEqual(grid(b), want) {
		t.Errorf("[2,2,2] moved left = %v, want %v", grid(b), want)
	}
}

func TestSingleMergePerTilePerMove(t *testing.T) {
	// [2,2,2,2] moved left yields [4,4], not [8]: a just-merged tile is
	// never compared again within the same pass.
	b := newTestBoard(t, [][]int{
		{2, 2, 2, 2},
	})

	b.compact(DirLeft)
	b.mergePass(DirLeft)
	b.compact(DirLeft)

	want := [][]int{
		{4, 4, 0, 0},
	}
	if !gridsEqual(grid(b), want) {
		t.Errorf("[2,2,2,2] moved left = %v, want %v", grid(b), want)
	}
}

func TestMergePassAllDirections(t *testing.T) {
	tests := []struct {
		name  string
		dir   Direction
		start [][]int
		want  [][]int
	}{
		{
			name: "right",
			dir:  DirRight,
			start: [][]int{
				{0, 2, 2, 4},
			},
			want: [][]int{
				{0, 0, 4, 4},
			},
		},
		{
			name: "up",
			dir:  DirUp,
			start: [][]int{
				{2, 4},
				{2, 0},
				{0, 4},
				{0, 0},
			},
			want: [][]int{
				{4, 8},
				{0, 0},
				{0, 0},
				{0, 0},
			},
		},
		{
			name: "down",
			dir:  DirDown,
			start: [][]int{
				{2, 8},
				{2, 0},
				{4, 8},
				{0, 2},
			},
			want: [][]int{
				{0, 0},
				{0, 0},
				{4, 16},
				{4, 2},
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := newTestBoard(t, tc.start)
			b.compact(tc.dir)
			b.mergePass(tc.dir)
			b.compact(tc.dir)

			if !gridsEqual(grid(b), tc.want) {
				t.Errorf("move %s = %v, want %v", tc.name, grid(b), tc.want)
			}
		})
	}
}

func TestMoveScenario(t *testing.T) {
	// 4x4 board, row y=0 = [2,2,4,_]: moving left merges the pair and
	// slides the 4, then spawns exactly one fresh tile somewhere empty.
	b := newTestBoard(t, [][]int{
		{2, 2, 4, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})

	if !b.Move(DirLeft) {
		t.Fatal("Move(left) should report a change")
	}

	if v, ok := b.Value(0, 0); !ok || v != 4 {
		t.Errorf("cell (0,0) = %d, want 4", v)
	}
	if v, ok := b.Value(1, 0); !ok || v != 4 {
		t.Errorf("cell (1,0) = %d, want 4", v)
	}

	// Two survivors plus exactly one spawn.
	if n := b.TileCount(); n != 3 {
		t.Errorf("tile count after move = %d, want 3", n)
	}

	// The spawned tile is a 2 or a 4 on a previously empty cell.
	for x := 0; x < 4; x++ {
		for y := 0; y < 4; y++ {
			if x <= 1 && y == 0 {
				continue
			}
			if v, ok := b.Value(x, y); ok && v != 2 && v != 4 {
				t.Errorf("spawned tile at (%d,%d) has value %d", x, y, v)
			}
		}
	}
}

func TestMoveNoopDoesNotSpawn(t *testing.T) {
	start := [][]int{
		{4, 2, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}
	b := newTestBoard(t, start)

	// Already compacted left with no merges available: byte-for-byte no-op.
	if b.Move(DirLeft) {
		t.Fatal("ineffective move must report no change")
	}
	if !gridsEqual(grid(b), start) {
		t.Errorf("ineffective move mutated the grid: %v", grid(b))
	}
	if n := b.TileCount(); n != 2 {
		t.Errorf("ineffective move spawned a tile, count = %d", n)
	}

	// Second application is also a no-op.
	if b.Move(DirLeft) {
		t.Error("repeated ineffective move must still be a no-op")
	}
	if !gridsEqual(grid(b), start) {
		t.Errorf("second no-op mutated the grid: %v", grid(b))
	}
}

func TestMoveInvalidDirection(t *testing.T) {
	start := [][]int{
		{0, 2, 0, 4},
		{0, 0, 0, 0},
	}
	b := newTestBoard(t, start)

	if b.Move(Direction(42)) {
		t.Error("invalid direction must be a no-op")
	}
	if !gridsEqual(grid(b), start) {
		t.Errorf("invalid direction mutated the grid: %v", grid(b))
	}
}

func TestSpawnBounds(t *testing.T) {
	b := newTestBoard(t, [][]int{
		{2, 4},
		{4, 2},
	})

	if b.Spawn() {
		t.Error("Spawn on a full board must return false")
	}
	if n := b.TileCount(); n != 4 {
		t.Errorf("Spawn on full board changed tile count to %d", n)
	}

	// One empty cell: the spawn must land exactly there.
	b.cells[1][1] = nil
	if !b.Spawn() {
		t.Fatal("Spawn with an empty cell should succeed")
	}
	if v, ok := b.Value(1, 1); !ok || (v != 2 && v != 4) {
		t.Errorf("spawn landed wrong: cell (1,1) = %d, %v", v, ok)
	}
	if v, _ := b.Value(0, 0); v != 2 {
		t.Errorf("Spawn overwrote an occupied cell: (0,0) = %d", v)
	}
}

func TestSpawnValues(t *testing.T) {
	b := newTestBoard(t, [][]int{
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})

	for i := 0; i < 16; i++ {
		if !b.Spawn() {
			t.Fatalf("spawn %d failed on a non-full board", i)
		}
	}

	for x := 0; x < 4; x++ {
		for y := 0; y < 4; y++ {
			v, ok := b.Value(x, y)
			if !ok {
				t.Fatalf("cell (%d,%d) empty after filling spawns", x, y)
			}
			if v != 2 && v != 4 {
				t.Errorf("spawned value at (%d,%d) = %d, want 2 or 4", x, y, v)
			}
		}
	}
}

func TestGameOverDetection(t *testing.T) {
	full := [][]int{
		{2, 4, 8, 16},
		{16, 8, 4, 2},
		{2, 4, 8, 16},
		{16, 8, 4, 2},
	}

	b := newTestBoard(t, full)
	if !b.GameOver() {
		t.Error("full board with no adjacent equal pair should be game over")
	}

	// Any single empty cell disqualifies game over.
	b.cells[2][1] = nil
	if b.GameOver() {
		t.Error("board with an empty cell is not game over")
	}

	// Any adjacent equal pair disqualifies game over.
	withPair := [][]int{
		{2, 2, 8, 16},
		{16, 8, 4, 2},
		{2, 4, 8, 16},
		{16, 8, 4, 2},
	}
	if newTestBoard(t, withPair).GameOver() {
		t.Error("board with a mergeable pair is not game over")
	}
}

func TestWinDetection(t *testing.T) {
	b := newTestBoard(t, [][]int{
		{1024, 512, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})
	if b.Won() {
		t.Error("max tile 1024 should not win")
	}

	// Two 1024 tiles merging produce the win tile.
	b2 := newTestBoard(t, [][]int{
		{1024, 1024, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})
	b2.Move(DirLeft)
	if !b2.Won() {
		t.Error("merging two 1024 tiles should win")
	}
	if v, _ := b2.Value(0, 0); v != 2048 {
		t.Errorf("cell (0,0) = %d, want 2048", v)
	}
}

func TestCustomWinTarget(t *testing.T) {
	b := newTestBoard(t, [][]int{
		{64, 0},
		{0, 0},
	})
	b.SetWinTarget(64)
	if !b.Won() {
		t.Error("custom win target of 64 should be reached")
	}
}

func TestMoveConservation(t *testing.T) {
	// Play a deterministic random game and check the conservation
	// invariants on every move: the tile count grows by at most the
	// single post-move spawn and the value sum never decreases.
	rng := rand.New(rand.NewSource(7))
	b, err := NewBoard(4, 4, rng)
	if err != nil {
		t.Fatalf("NewBoard failed: %v", err)
	}
	b.Spawn()
	b.Spawn()

	dirs := []Direction{DirLeft, DirDown, DirRight, DirUp}
	for i := 0; i < 500; i++ {
		if b.GameOver() {
			break
		}

		before := grid(b)
		countBefore := b.TileCount()
		sumBefore := valueSum(b)

		changed := b.Move(dirs[i%len(dirs)])

		if changed {
			if n := b.TileCount(); n > countBefore+1 {
				t.Fatalf("move %d: tile count %d -> %d, grew by more than the spawn", i, countBefore, n)
			}
			if s := valueSum(b); s < sumBefore {
				t.Fatalf("move %d: value sum decreased %d -> %d", i, sumBefore, s)
			}
		} else {
			if !gridsEqual(grid(b), before) {
				t.Fatalf("move %d: no-op move mutated the grid", i)
			}
		}
	}
}
