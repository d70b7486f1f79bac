package tetris

import (
	"fmt"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/grid"
)

// Visual characters for rendering
const (
	blockChar = '█'
	ghostChar = '░'
	dotChar   = '·'
)

// Layout of the playfield and side panel, in screen cells.
const (
	cellW      = 2                   // Screen columns per board column
	wellW      = grid.Cols*cellW + 2 // Board plus borders
	wellH      = grid.Rows + 2
	panelW     = 20
	minScreenW = wellW + panelW
	minScreenH = wellH
)

// stoneColors maps stone tags to screen colors.
var stoneColors = map[grid.Cell]core.Color{
	1: core.ColorMagenta, // T
	2: core.ColorGreen,   // S
	3: core.ColorRed,     // Z
	4: core.ColorBlue,    // J
	5: core.ColorOrange,  // L
	6: core.ColorCyan,    // I
	7: core.ColorYellow,  // O
}

func cellColor(c grid.Cell) core.Color {
	if col, ok := stoneColors[c]; ok {
		return col
	}
	return core.ColorWhite
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < minScreenW || dst.Height() < minScreenH {
		dst.DrawTextCentered(dst.Height()/2-1, "Terminal too small")
		dst.DrawTextCentered(dst.Height()/2, fmt.Sprintf("need %dx%d", minScreenW, minScreenH))
		return
	}

	ox := (dst.Width() - minScreenW) / 2
	oy := (dst.Height() - minScreenH) / 2

	g.renderWell(dst, ox, oy)
	g.renderPanel(dst, ox+wellW+2, oy)

	if g.paused {
		renderOverlay(dst, "PAUSED", "Press P to resume")
	}
	if g.gameOver {
		renderOverlay(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", g.score))
	}
}

// renderWell draws the border, the settled stack, the ghost and the
// falling stone.
func (g *Game) renderWell(dst *core.Screen, ox, oy int) {
	dst.DrawBox(core.NewRect(ox, oy, wellW, wellH), core.ColorGray)

	for y := range grid.Rows {
		for x := range grid.Cols {
			if c := g.board[y][x]; c != grid.Empty {
				drawCell(dst, ox, oy, x, y, blockChar, cellColor(c))
			} else {
				drawCell(dst, ox, oy, x, y, dotChar, core.ColorGray)
			}
		}
	}

	if g.gameOver {
		return
	}

	ghost := g.ghostRow()
	color := cellColor(g.stone.Color())
	for cy, row := range g.stone {
		for cx, c := range row {
			if c == grid.Empty {
				continue
			}
			if ghost != g.y {
				drawCell(dst, ox, oy, g.x+cx, ghost+cy, ghostChar, color)
			}
			drawCell(dst, ox, oy, g.x+cx, g.y+cy, blockChar, color)
		}
	}
}

// drawCell paints board cell (x, y) as a cellW-wide run of r.
func drawCell(dst *core.Screen, ox, oy, x, y int, r rune, c core.Color) {
	sx := ox + 1 + x*cellW
	sy := oy + 1 + y
	for i := range cellW {
		dst.SetColor(sx+i, sy, r, c)
	}
}

// renderPanel draws the next stone preview and the HUD.
func (g *Game) renderPanel(dst *core.Screen, px, py int) {
	dst.DrawTextColor(px, py, g.Title(), core.ColorWhite)

	dst.DrawText(px, py+2, "Next: "+grid.TetrominoName(g.next.Color()))
	color := cellColor(g.next.Color())
	for cy, row := range g.next {
		for cx, c := range row {
			if c != grid.Empty {
				dst.SetColor(px+cx*cellW, py+3+cy, blockChar, color)
				dst.SetColor(px+cx*cellW+1, py+3+cy, blockChar, color)
			}
		}
	}

	dst.DrawText(px, py+7, fmt.Sprintf("Score:  %d", g.score))
	dst.DrawText(px, py+8, fmt.Sprintf("Lines:  %d", g.lines))
	dst.DrawText(px, py+9, fmt.Sprintf("Pieces: %d", g.pieces))
	speed := fmt.Sprintf("Speed:  %d", g.fallInterval())
	if !g.difficulty.IsEnabled() {
		speed += " (fixed)"
	}
	dst.DrawText(px, py+10, speed)

	if g.autopilot {
		dst.DrawTextColor(px, py+12, "AUTOPILOT", core.ColorGreen)
		if d := g.LastDecision(); d.Candidates > 0 {
			dst.DrawText(px, py+13, fmt.Sprintf("rot %d  col %d", d.Rotation, d.X))
			dst.DrawText(px, py+14, fmt.Sprintf("eval %.2f", d.Score))
		}
	} else {
		dst.DrawTextColor(px, py+12, "MANUAL", core.ColorGray)
	}

	help := []string{
		"←/→  move",
		"↑    rotate",
		"↓    soft drop",
		"spc  hard drop",
		"a    autopilot",
		"p    pause",
		"q    quit",
	}
	for i, line := range help {
		dst.DrawTextColor(px, py+wellH-len(help)+i, line, core.ColorGray)
	}
}

// renderOverlay draws a centered boxed message.
func renderOverlay(dst *core.Screen, line1, line2 string) {
	w := max(len(line1), len(line2)) + 4
	h := 5
	r := core.NewRect((dst.Width()-w)/2, (dst.Height()-h)/2, w, h)

	dst.DrawRect(r, ' ')
	dst.DrawBox(r, core.ColorWhite)
	dst.DrawTextCentered(r.Y+1, line1)
	dst.DrawTextCentered(r.Y+3, line2)
}
