package tetris

import (
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/grid"
)

// Board returns a copy of the settled board.
func (g *Game) Board() grid.Board {
	return g.board
}

// Stone returns a copy of the falling stone.
func (g *Game) Stone() grid.Piece {
	return g.stone.Clone()
}

// Next returns a copy of the upcoming stone.
func (g *Game) Next() grid.Piece {
	return g.next.Clone()
}

// Position returns the top-left corner of the falling stone.
func (g *Game) Position() (x, y int) {
	return g.x, g.y
}

// RotateStone turns the stone clockwise unless the turned stone would
// collide where it is.
func (g *Game) RotateStone() {
	if g.gameOver {
		return
	}
	rotated := grid.RotateClockwise(g.stone)
	if !grid.Collides(g.board, rotated, g.x, g.y) {
		g.stone = rotated
	}
}

// Move shifts the stone horizontally by dx columns.
func (g *Game) Move(dx int) {
	g.MoveTo(g.x + dx)
}

// MoveTo places the stone at column x, clamped to the board. A move whose
// target collides is rejected and the stone stays put.
func (g *Game) MoveTo(x int) {
	if g.gameOver {
		return
	}
	nx := core.Clamp(x, 0, grid.MaxXOffset(g.stone))
	if !grid.Collides(g.board, g.stone, nx, g.y) {
		g.x = nx
	}
}

// HardDrop drops the stone until it lands.
func (g *Game) HardDrop() {
	for !g.drop() {
	}
}

// drop moves the stone down one row, landing it when the row below is
// blocked. It reports true once the stone has landed or the game is over.
func (g *Game) drop() bool {
	if g.gameOver {
		return true
	}
	if grid.Collides(g.board, g.stone, g.x, g.y+1) {
		g.land()
		return true
	}
	g.y++
	return false
}

// land merges the stone, clears at most one full row and spawns the next
// stone.
func (g *Game) land() {
	g.board = grid.Merge(g.board, g.stone, g.x, g.y)

	board, cleared := grid.ClearFirstFullRow(g.board)
	g.board = board
	g.lines += cleared
	g.score += g.cfg.LineScore(cleared)
	g.pieces++
	g.stepCleared += cleared
	g.stepLanded = true

	g.spawn()
}

// spawn brings the next stone in at the top centre. A stone that collides
// on arrival ends the game.
func (g *Game) spawn() {
	g.stone = g.next
	g.next = g.randomStone()
	g.x = grid.Cols/2 - g.stone.Width()/2
	g.y = 0
	g.fallTicks = 0

	if grid.Collides(g.board, g.stone, g.x, g.y) {
		g.gameOver = true
		return
	}
	g.plan = g.autopilot
}

func (g *Game) randomStone() grid.Piece {
	return grid.Tetrominoes[g.rng.Intn(len(grid.Tetrominoes))].Clone()
}

// ghostRow returns the row the stone would land at if dropped now.
func (g *Game) ghostRow() int {
	y := g.y
	for !grid.Collides(g.board, g.stone, g.x, y+1) {
		y++
	}
	return y
}
