package game

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/t2048/internal/core"
)

const (
	cellWidth  = 7 // Width of each cell (including left border)
	cellHeight = 2 // Height of each cell (including top border)
	hudHeight  = 3
)

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	boardW := g.rules.Width*cellWidth + 1   // +1 for right border
	boardH := g.rules.Height*cellHeight + 1 // +1 for bottom border

	boardX := (g.screenW - boardW) / 2
	boardY := hudHeight + 1

	g.renderHUD(dst, boardX, boardW)
	g.renderBoard(dst, boardX, boardY)
	g.renderOverlays(dst, boardX, boardY, boardW, boardH)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	msg := "Window too small"
	x := (g.screenW - len(msg)) / 2
	y := g.screenH / 2
	dst.DrawText(x, y, msg)

	hint := "Please resize terminal"
	hintX := (g.screenW - len(hint)) / 2
	dst.DrawText(hintX, y+1, hint)
}

// renderHUD draws the title and board info.
func (g *Game) renderHUD(dst *core.Screen, boardX, boardW int) {
	title := "2048"
	titleX := boardX + (boardW-len(title))/2
	dst.DrawText(titleX, 0, title)

	sizeStr := fmt.Sprintf("Board: %dx%d", g.rules.Width, g.rules.Height)
	dst.DrawTextColor(boardX, 1, sizeStr, core.ColorGray)

	maxStr := fmt.Sprintf("Max: %d", g.board.MaxTile())
	maxX := boardX + boardW - len(maxStr)
	if maxX < boardX {
		maxX = boardX
	}
	dst.DrawText(maxX, 1, maxStr)
}

// renderBoard draws the grid with tiles.
func (g *Game) renderBoard(dst *core.Screen, boardX, boardY int) {
	w, h := g.rules.Width, g.rules.Height

	// Draw grid borders
	for y := 0; y <= h; y++ {
		for x := 0; x <= w; x++ {
			px := boardX + x*cellWidth
			py := boardY + y*cellHeight

			// Draw corner/intersection
			var corner rune
			switch {
			case y == 0 && x == 0:
				corner = '┌'
			case y == 0 && x == w:
				corner = '┐'
			case y == h && x == 0:
				corner = '└'
			case y == h && x == w:
				corner = '┘'
			case y == 0:
				corner = '┬'
			case y == h:
				corner = '┴'
			case x == 0:
				corner = '├'
			case x == w:
				corner = '┤'
			default:
				corner = '┼'
			}
			dst.SetCell(px, py, corner, core.ColorGray)

			// Draw horizontal line to the right
			if x < w {
				for i := 1; i < cellWidth; i++ {
					dst.SetCell(px+i, py, '─', core.ColorGray)
				}
			}

			// Draw vertical line down
			if y < h {
				for i := 1; i < cellHeight; i++ {
					dst.SetCell(px, py+i, '│', core.ColorGray)
				}
			}
		}
	}

	// Draw tiles, shaded by value
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			val, ok := g.board.Value(x, y)
			if !ok {
				continue
			}

			cellX := boardX + x*cellWidth + 1
			cellY := boardY + y*cellHeight + 1

			valStr := strconv.Itoa(val)
			padLeft := (cellWidth - 1 - len(valStr)) / 2
			if padLeft < 0 {
				padLeft = 0
			}

			dst.DrawTextColor(cellX+padLeft, cellY, valStr, core.ShadeForValue(val))
		}
	}
}

// renderOverlays draws the win and game-over overlays.
func (g *Game) renderOverlays(dst *core.Screen, boardX, boardY, boardW, boardH int) {
	centerX := boardX + boardW/2
	centerY := boardY + boardH/2

	switch g.phase {
	case PhaseWin:
		g.drawOverlay(dst, centerX, centerY,
			"YOU WIN!",
			"Q: Continue  W: Restart  E: Exit")

	case PhaseGameOver:
		maxStr := fmt.Sprintf("Max tile: %d", g.board.MaxTile())
		g.drawOverlay(dst, centerX, centerY,
			"GAME OVER",
			maxStr,
			"R: Restart  Q: Quit")
	}
}

// drawOverlay draws a centered boxed text overlay.
func (g *Game) drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		if len(line) > maxLen {
			maxLen = len(line)
		}
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	boxX := centerX - boxW/2
	boxY := centerY - boxH/2

	// Clear area behind overlay
	for y := boxY; y < boxY+boxH; y++ {
		for x := boxX; x < boxX+boxW; x++ {
			dst.Set(x, y, ' ')
		}
	}

	dst.DrawBox(core.Rect{X: boxX, Y: boxY, W: boxW, H: boxH})

	for i, line := range lines {
		x := centerX - len(line)/2
		dst.DrawText(x, boxY+1+i, line)
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrow keys/WASD: Move | R: Restart | Q: Quit"
}
