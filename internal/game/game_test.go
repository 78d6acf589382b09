package game

import (
	"strings"
	"testing"

	"github.com/vovakirdan/t2048/internal/core"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()

	g, err := New(DefaultRules())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	cfg := core.DefaultConfig()
	cfg.Seed = 1
	g.Reset(cfg)
	return g
}

// setBoard replaces the board contents with row literals indexed [y][x].
func setBoard(t *testing.T, g *Game, rows [][]int) {
	t.Helper()

	b := g.Board()
	if len(rows) != b.height || len(rows[0]) != b.width {
		t.Fatalf("setBoard: %dx%d literal on a %dx%d board", len(rows[0]), len(rows), b.width, b.height)
	}
	for x := 0; x < b.width; x++ {
		for y := 0; y < b.height; y++ {
			b.cells[x][y] = nil
			if rows[y][x] != 0 {
				b.cells[x][y] = NewTile(rows[y][x])
			}
		}
	}
}

func frame(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func TestNewValidation(t *testing.T) {
	if _, err := New(Rules{Width: 0, Height: 4}); err == nil {
		t.Error("zero width should be rejected")
	}
	if _, err := New(Rules{Width: 4, Height: -1}); err == nil {
		t.Error("negative height should be rejected")
	}
	if _, err := New(Rules{Width: 4, Height: 4, Spawn4Prob: 1.5}); err == nil {
		t.Error("out-of-range spawn probability should be rejected")
	}

	g, err := New(Rules{Width: 4, Height: 4})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if g.rules.WinTarget != DefaultWinTarget {
		t.Errorf("zero win target should default to %d, got %d", DefaultWinTarget, g.rules.WinTarget)
	}
}

func TestResetDeterministic(t *testing.T) {
	cfg := core.DefaultConfig()
	cfg.Seed = 42

	g1, _ := New(DefaultRules())
	g2, _ := New(DefaultRules())
	g1.Reset(cfg)
	g2.Reset(cfg)

	if !g1.Snapshot().Equal(g2.Snapshot()) {
		t.Error("same seed must produce identical initial boards")
	}

	// The same seed stays in lockstep through identical inputs.
	moves := []core.Action{core.ActionLeft, core.ActionUp, core.ActionRight, core.ActionDown}
	for i, a := range moves {
		g1.Step(frame(a))
		g2.Step(frame(a))
		if !g1.Snapshot().Equal(g2.Snapshot()) {
			t.Fatalf("boards diverged after move %d", i)
		}
	}
}

func TestResetStartsWithTwoTiles(t *testing.T) {
	g := newTestGame(t)

	if n := g.Board().TileCount(); n != 2 {
		t.Errorf("fresh game has %d tiles, want 2", n)
	}
	if g.Phase() != PhasePlaying {
		t.Errorf("fresh game phase = %v, want playing", g.Phase())
	}

	st := g.State()
	if st.Won || st.GameOver || st.WinPending {
		t.Errorf("fresh game state should be clean: %+v", st)
	}
	if st.BoardW != 4 || st.BoardH != 4 {
		t.Errorf("state reports %dx%d board, want 4x4", st.BoardW, st.BoardH)
	}
}

func TestStepMove(t *testing.T) {
	g := newTestGame(t)
	setBoard(t, g, [][]int{
		{2, 2, 4, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})

	res := g.Step(frame(core.ActionLeft))

	b := g.Board()
	if v, _ := b.Value(0, 0); v != 4 {
		t.Errorf("cell (0,0) = %d, want 4", v)
	}
	if v, _ := b.Value(1, 0); v != 4 {
		t.Errorf("cell (1,0) = %d, want 4", v)
	}
	if res.State.MaxTile != 4 {
		t.Errorf("MaxTile = %d, want 4", res.State.MaxTile)
	}
}

func TestStepIgnoresSecondDirection(t *testing.T) {
	g := newTestGame(t)
	setBoard(t, g, [][]int{
		{2, 2, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})

	// Two directions in one frame: only one move applies.
	g.Step(frame(core.ActionUp, core.ActionLeft))

	if n := g.Board().TileCount(); n > 3 {
		t.Errorf("tile count %d suggests more than one move per tick", n)
	}
}

func TestWinFlow(t *testing.T) {
	g := newTestGame(t)
	setBoard(t, g, [][]int{
		{1024, 1024, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})

	res := g.Step(frame(core.ActionLeft))
	if g.Phase() != PhaseWin {
		t.Fatalf("phase = %v, want win", g.Phase())
	}
	if !res.State.Won || !res.State.WinPending {
		t.Errorf("win state not reported: %+v", res.State)
	}

	// Moves are frozen while the overlay is showing.
	before := g.Snapshot()
	g.Step(frame(core.ActionUp))
	if !g.Snapshot().Equal(before) {
		t.Error("board changed while win overlay was showing")
	}

	// Continue dismisses the overlay and resumes play.
	res = g.Step(frame(core.ActionContinue))
	if g.Phase() != PhasePlaying {
		t.Errorf("phase after continue = %v, want playing", g.Phase())
	}
	if !res.State.Won {
		t.Error("Won must stay set after dismissing the overlay")
	}
	if res.State.WinPending {
		t.Error("WinPending must clear after dismissing the overlay")
	}

	// The overlay never reappears this game even if another win tile forms.
	setBoard(t, g, [][]int{
		{2048, 2048, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})
	g.Step(frame(core.ActionLeft))
	if g.Phase() == PhaseWin {
		t.Error("win overlay must show at most once per game")
	}
}

func TestGameOverFlow(t *testing.T) {
	g := newTestGame(t)
	// Only row y=0 can change on a left move; the spawn fills the last
	// empty cell and leaves no adjacent equal pair whether it is a 2 or
	// a 4.
	setBoard(t, g, [][]int{
		{2, 2, 64, 128},
		{256, 512, 8, 16},
		{32, 128, 64, 256},
		{8, 64, 16, 32},
	})

	res := g.Step(frame(core.ActionLeft))

	if g.Phase() != PhaseGameOver {
		t.Fatalf("phase = %v, want game over", g.Phase())
	}
	if !res.State.GameOver {
		t.Error("state must report game over")
	}

	// The dead game ignores further moves.
	before := g.Snapshot()
	g.Step(frame(core.ActionRight))
	if !g.Snapshot().Equal(before) {
		t.Error("board changed after game over")
	}
}

func TestTooSmallScreenPausesGame(t *testing.T) {
	g, err := New(DefaultRules())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	g.Reset(core.RuntimeConfig{ScreenW: 10, ScreenH: 5, TickRate: 60, Seed: 1})

	res := g.Step(frame(core.ActionLeft))
	if !res.State.Paused {
		t.Error("undersized screen must report Paused")
	}
	if n := g.Board().TileCount(); n != 2 {
		t.Errorf("paused game accepted a move, tile count = %d", n)
	}

	// A roomy reset clears the pause.
	g.Reset(core.DefaultConfig())
	if g.State().Paused {
		t.Error("default screen size must not pause a 4x4 board")
	}
}

func TestRenderShowsBoard(t *testing.T) {
	g := newTestGame(t)
	setBoard(t, g, [][]int{
		{2, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 1024, 0},
	})

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()

	if !strings.Contains(out, "2048") {
		t.Error("render output missing the title")
	}
	if !strings.Contains(out, "1024") {
		t.Error("render output missing the max tile value")
	}
	if !strings.Contains(out, "Max: 1024") {
		t.Error("render output missing the HUD max readout")
	}
}

func TestRenderWinOverlay(t *testing.T) {
	g := newTestGame(t)
	setBoard(t, g, [][]int{
		{1024, 1024, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})
	g.Step(frame(core.ActionLeft))

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()

	if !strings.Contains(out, "YOU WIN!") {
		t.Error("win overlay text missing")
	}
	if !strings.Contains(out, "Q: Continue") {
		t.Error("win overlay key hints missing")
	}
}

func TestRenderGameOverOverlay(t *testing.T) {
	g := newTestGame(t)
	setBoard(t, g, [][]int{
		{2, 2, 64, 128},
		{256, 512, 8, 16},
		{32, 128, 64, 256},
		{8, 64, 16, 32},
	})
	g.Step(frame(core.ActionLeft))

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()

	if !strings.Contains(out, "GAME OVER") {
		t.Error("game over overlay text missing")
	}
	if !strings.Contains(out, "R: Restart") {
		t.Error("game over key hints missing")
	}
}
