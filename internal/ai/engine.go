package ai

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/grid"
)

// ErrNoMove is returned when the stone has no reachable placement.
var ErrNoMove = errors.New("ai: no valid placement")

// State is the engine's position in the decision cycle.
type State int

const (
	StateAwaitingPiece State = iota
	StateEnumerating
	StateScoring
	StateSelected
	StateApplied
)

func (s State) String() string {
	switch s {
	case StateAwaitingPiece:
		return "awaiting_piece"
	case StateEnumerating:
		return "enumerating"
	case StateScoring:
		return "scoring"
	case StateSelected:
		return "selected"
	case StateApplied:
		return "applied"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// CommandKind identifies a primitive stone command.
type CommandKind int

const (
	CommandRotate CommandKind = iota
	CommandMoveTo
)

// Command is one instruction issued to the game.
type Command struct {
	Kind CommandKind
	X    int // Target column for CommandMoveTo
}

func (c Command) String() string {
	if c.Kind == CommandMoveTo {
		return fmt.Sprintf("move_to(%d)", c.X)
	}
	return "rotate"
}

// ScoredPlacement is a placement together with its heuristic score.
type ScoredPlacement struct {
	Placement
	Score float64
}

// Decision is the placement chosen for a stone.
type Decision struct {
	ScoredPlacement
	Candidates int // Number of placements considered
}

// Commands returns the command sequence that realizes the decision: one
// rotation per quarter turn, then a single horizontal move.
func (d Decision) Commands() []Command {
	cmds := make([]Command, 0, d.Rotation+1)
	for range d.Rotation {
		cmds = append(cmds, Command{Kind: CommandRotate})
	}
	return append(cmds, Command{Kind: CommandMoveTo, X: d.X})
}

// Controller is the part of the game the engine drives.
type Controller interface {
	Board() grid.Board
	Stone() grid.Piece
	RotateStone()
	MoveTo(x int)
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger used for decision traces.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithStateHook registers a callback invoked on every state transition.
func WithStateHook(fn func(State)) Option {
	return func(e *Engine) {
		e.onState = fn
	}
}

// Engine picks placements for stones using a fixed heuristic. An Engine is
// not safe for concurrent use.
type Engine struct {
	heuristic Heuristic
	logger    *log.Logger
	onState   func(State)
	state     State
	last      Decision
}

// NewEngine creates an engine scoring with h. An empty table falls back to
// DefaultHeuristic.
func NewEngine(h Heuristic, opts ...Option) *Engine {
	if len(h) == 0 {
		h = DefaultHeuristic()
	}
	e := &Engine{
		heuristic: h,
		logger:    log.New(io.Discard),
		state:     StateAwaitingPiece,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Heuristic returns the engine's weight table.
func (e *Engine) Heuristic() Heuristic {
	return e.heuristic
}

// Last returns the most recent successful decision.
func (e *Engine) Last() Decision {
	return e.last
}

// State returns the current state. A bare Decide leaves the engine in
// StateSelected; only DecideAndApply moves on to StateAwaitingPiece.
func (e *Engine) State() State {
	return e.state
}

func (e *Engine) setState(s State) {
	e.state = s
	if e.onState != nil {
		e.onState(s)
	}
}

// Rank scores every placement of p on b, in enumeration order.
func (e *Engine) Rank(b grid.Board, p grid.Piece) []ScoredPlacement {
	placements := Enumerate(b, p)
	scored := make([]ScoredPlacement, len(placements))
	for i, pl := range placements {
		scored[i] = ScoredPlacement{Placement: pl, Score: e.heuristic.Score(pl.Board)}
	}
	return scored
}

// Decide selects the highest scoring placement of p on b. Ties go to the
// first placement in enumeration order.
func (e *Engine) Decide(b grid.Board, p grid.Piece) (Decision, error) {
	e.setState(StateEnumerating)
	placements := Enumerate(b, p)
	if len(placements) == 0 {
		e.setState(StateAwaitingPiece)
		return Decision{}, ErrNoMove
	}

	e.setState(StateScoring)
	best := Decision{Candidates: len(placements)}
	for i, pl := range placements {
		score := e.heuristic.Score(pl.Board)
		if i == 0 || score > best.Score {
			best.ScoredPlacement = ScoredPlacement{Placement: pl, Score: score}
		}
	}

	e.setState(StateSelected)
	e.last = best
	e.logger.Debug("placement selected",
		"stone", grid.TetrominoName(p.Color()),
		"rotation", best.Rotation,
		"x", best.X,
		"y", best.Y,
		"score", best.Score,
		"candidates", best.Candidates,
	)
	return best, nil
}

// DecideAndApply decides a placement for the controller's current stone and
// issues the commands that realize it.
func (e *Engine) DecideAndApply(c Controller) error {
	d, err := e.Decide(c.Board(), c.Stone())
	if err != nil {
		return err
	}
	Apply(c, d.Commands())
	e.setState(StateApplied)
	e.setState(StateAwaitingPiece)
	return nil
}

// Apply issues cmds to c in order.
func Apply(c Controller, cmds []Command) {
	for _, cmd := range cmds {
		switch cmd.Kind {
		case CommandRotate:
			c.RotateStone()
		case CommandMoveTo:
			c.MoveTo(cmd.X)
		}
	}
}
