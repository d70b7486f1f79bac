package ai

import (
	"errors"
	"reflect"
	"testing"

	"github.com/vovakirdan/tui-tetris/internal/grid"
)

var zeroHeuristic = Heuristic{
	{Name: "zero", Feature: func(grid.Board) float64 { return 0 }, Value: 1},
}

func TestDecideDeterministic(t *testing.T) {
	b := mustBoard(t, `
..........
.22.......
22..5.44..
1111555.4.
`)
	e := NewEngine(nil)
	for _, name := range grid.TetrominoNames {
		p := mustPiece(t, name)
		first, err := e.Decide(b, p)
		if err != nil {
			t.Fatalf("Decide(%s) error = %v", name, err)
		}
		second, err := e.Decide(b, p)
		if err != nil {
			t.Fatalf("Decide(%s) error = %v", name, err)
		}
		if first.Rotation != second.Rotation || first.X != second.X || first.Score != second.Score {
			t.Errorf("Decide(%s) not deterministic: %+v vs %+v", name, first.Placement, second.Placement)
		}
	}
}

func TestDecideFirstMaximumWins(t *testing.T) {
	e := NewEngine(zeroHeuristic)
	d, err := e.Decide(grid.NewBoard(), mustPiece(t, "T"))
	if err != nil {
		t.Fatalf("Decide() error = %v", err)
	}
	if d.Rotation != 0 || d.X != 0 {
		t.Errorf("Decide() = rotation %d x %d, want rotation 0 x 0", d.Rotation, d.X)
	}
	if d.Candidates != 34 {
		t.Errorf("Candidates = %d, want 34", d.Candidates)
	}
}

func TestDecideMatchesRank(t *testing.T) {
	b := mustBoard(t, `
.....1....
..3.11....
.33.1.....
`)
	e := NewEngine(nil)
	p := mustPiece(t, "L")

	ranked := e.Rank(b, p)
	best := 0
	for i := range ranked {
		if ranked[i].Score > ranked[best].Score {
			best = i
		}
	}

	d, err := e.Decide(b, p)
	if err != nil {
		t.Fatalf("Decide() error = %v", err)
	}
	if d.Rotation != ranked[best].Rotation || d.X != ranked[best].X {
		t.Errorf("Decide() = (%d, %d), want (%d, %d)", d.Rotation, d.X, ranked[best].Rotation, ranked[best].X)
	}
}

func TestDecideAvoidsTallColumn(t *testing.T) {
	b := mustBoard(t, `
1.........
1.........
1.........
1.........
1.........
`)
	e := NewEngine(Heuristic{
		{Name: FeatureHoles, Feature: Holes, Value: -10},
		{Name: FeatureMaxHeight, Feature: MaxHeight, Value: -1},
	})

	d, err := e.Decide(b, mustPiece(t, "I"))
	if err != nil {
		t.Fatalf("Decide() error = %v", err)
	}
	if d.Rotation != 0 || d.X != 1 {
		t.Errorf("Decide() = rotation %d x %d, want rotation 0 x 1", d.Rotation, d.X)
	}
	if h := grid.ColumnHeights(d.Board)[0]; h != 5 {
		t.Errorf("column 0 height = %d, want 5", h)
	}
}

func TestDecideSingleReachable(t *testing.T) {
	b := grid.NewBoard()
	for y := range grid.Rows {
		for x := 2; x < grid.Cols; x++ {
			b[y][x] = 3
		}
	}

	for _, h := range []Heuristic{nil, zeroHeuristic} {
		d, err := NewEngine(h).Decide(b, mustPiece(t, "O"))
		if err != nil {
			t.Fatalf("Decide() error = %v", err)
		}
		if d.X != 0 || d.Rotation != 0 {
			t.Errorf("Decide() = rotation %d x %d, want rotation 0 x 0", d.Rotation, d.X)
		}
	}
}

func TestDecideNoMove(t *testing.T) {
	b := grid.NewBoard()
	for y := range grid.Rows {
		for x := range grid.Cols {
			b[y][x] = 1
		}
	}

	e := NewEngine(nil)
	_, err := e.Decide(b, mustPiece(t, "O"))
	if !errors.Is(err, ErrNoMove) {
		t.Errorf("Decide() error = %v, want ErrNoMove", err)
	}
	if e.State() != StateAwaitingPiece {
		t.Errorf("State() = %v, want %v", e.State(), StateAwaitingPiece)
	}

	if _, err := e.Decide(grid.NewBoard(), nil); !errors.Is(err, ErrNoMove) {
		t.Errorf("Decide(nil piece) error = %v, want ErrNoMove", err)
	}
}

func TestDecisionCommands(t *testing.T) {
	d := Decision{ScoredPlacement: ScoredPlacement{Placement: Placement{Rotation: 2, X: 5}}}

	want := []Command{
		{Kind: CommandRotate},
		{Kind: CommandRotate},
		{Kind: CommandMoveTo, X: 5},
	}
	if got := d.Commands(); !reflect.DeepEqual(got, want) {
		t.Errorf("Commands() = %v, want %v", got, want)
	}
}

type fakeController struct {
	board   grid.Board
	stone   grid.Piece
	x       int
	rotates int
	moves   []int
}

func (f *fakeController) Board() grid.Board { return f.board }
func (f *fakeController) Stone() grid.Piece { return f.stone }

func (f *fakeController) RotateStone() {
	f.stone = grid.RotateClockwise(f.stone)
	f.rotates++
}

func (f *fakeController) MoveTo(x int) {
	f.x = x
	f.moves = append(f.moves, x)
}

func TestDecideLeavesSelectedState(t *testing.T) {
	e := NewEngine(nil)
	if _, err := e.Decide(grid.NewBoard(), mustPiece(t, "T")); err != nil {
		t.Fatalf("Decide() error = %v", err)
	}
	if e.State() != StateSelected {
		t.Errorf("State() after Decide = %v, want %v", e.State(), StateSelected)
	}
}

func TestDecideAndApply(t *testing.T) {
	b := mustBoard(t, `
..........
1.........
11......1.
111.11.11.
`)
	start := mustPiece(t, "J")
	c := &fakeController{board: b, stone: start, x: 3}

	var states []State
	e := NewEngine(nil, WithStateHook(func(s State) { states = append(states, s) }))

	want, err := e.Decide(b, start)
	if err != nil {
		t.Fatalf("Decide() error = %v", err)
	}
	states = nil

	if err := e.DecideAndApply(c); err != nil {
		t.Fatalf("DecideAndApply() error = %v", err)
	}

	if c.rotates != want.Rotation {
		t.Errorf("rotations = %d, want %d", c.rotates, want.Rotation)
	}
	if len(c.moves) != 1 || c.x != want.X {
		t.Errorf("moves = %v, want [%d]", c.moves, want.X)
	}
	if !c.stone.Equal(grid.Orientations(start)[want.Rotation]) {
		t.Errorf("stone = %s, want orientation %d", c.stone, want.Rotation)
	}

	wantStates := []State{StateEnumerating, StateScoring, StateSelected, StateApplied, StateAwaitingPiece}
	if !reflect.DeepEqual(states, wantStates) {
		t.Errorf("states = %v, want %v", states, wantStates)
	}
}

func TestDecideAndApplyNoMove(t *testing.T) {
	b := grid.NewBoard()
	for x := range grid.Cols {
		b[0][x] = 2
	}
	c := &fakeController{board: b, stone: mustPiece(t, "I")}

	err := NewEngine(nil).DecideAndApply(c)
	if !errors.Is(err, ErrNoMove) {
		t.Errorf("DecideAndApply() error = %v, want ErrNoMove", err)
	}
	if c.rotates != 0 || len(c.moves) != 0 {
		t.Errorf("commands issued after ErrNoMove: rotates=%d moves=%v", c.rotates, c.moves)
	}
}

func TestStateString(t *testing.T) {
	if StateScoring.String() != "scoring" {
		t.Errorf("String() = %q, want %q", StateScoring.String(), "scoring")
	}
	if State(42).String() != "state(42)" {
		t.Errorf("String() = %q", State(42).String())
	}
}
