package tetris

import "github.com/vovakirdan/tui-tetris/internal/grid"

// Snapshot contains the complete game state for replay and determinism checks.
type Snapshot struct {
	Tick      int
	Score     int
	Lines     int
	Pieces    int
	StoneX    int
	StoneY    int
	Stone     string // Piece.String encoding
	Next      string
	Board     string // Board.String encoding
	GameOver  bool
	Autopilot bool
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:      g.tick,
		Score:     g.score,
		Lines:     g.lines,
		Pieces:    g.pieces,
		StoneX:    g.x,
		StoneY:    g.y,
		Stone:     g.stone.String(),
		Next:      g.next.String(),
		Board:     g.board.String(),
		GameOver:  g.gameOver,
		Autopilot: g.autopilot,
	}
}

// Restore loads a board and falling stone, e.g. to replay a position.
func (g *Game) Restore(b grid.Board, stone grid.Piece, x, y int) {
	g.board = b
	g.stone = stone.Clone()
	g.x, g.y = x, y
	g.gameOver = grid.Collides(g.board, g.stone, g.x, g.y)
	g.plan = g.autopilot && !g.gameOver
}

// Hash returns a hash of the snapshot for quick comparison.
func (s Snapshot) Hash() uint64 {
	h := uint64(s.Tick)         //#nosec G115 -- hash computation
	h = h*31 + uint64(s.Score)  //#nosec G115 -- hash computation
	h = h*31 + uint64(s.Lines)  //#nosec G115 -- hash computation
	h = h*31 + uint64(s.Pieces) //#nosec G115 -- hash computation
	h = h*31 + uint64(s.StoneX) //#nosec G115 -- hash computation
	h = h*31 + uint64(s.StoneY) //#nosec G115 -- hash computation
	for _, str := range []string{s.Stone, s.Next, s.Board} {
		for i := 0; i < len(str); i++ {
			h = h*31 + uint64(str[i])
		}
	}
	if s.GameOver {
		h = h*31 + 1
	}
	if s.Autopilot {
		h = h*31 + 2
	}
	return h
}
