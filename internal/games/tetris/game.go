// Package tetris implements the falling-block game and its autopilot mode.
// Stones spawn at the top, fall under gravity and land on the stack; the
// autopilot steers every new stone with an ai.Engine.
package tetris

import (
	"errors"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/ai"
	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/grid"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

// Mode selects how a game starts.
type Mode string

const (
	ModeManual Mode = "tetris"      // Player steers, autopilot can be toggled on
	ModeAuto   Mode = "tetris_auto" // Autopilot steers from the first stone
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown values are ignored.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil {
		p = ""
	}
	difficultyPreset = p
}

// Game implements the falling-block game.
type Game struct {
	mode Mode

	// Configuration
	runtime    core.RuntimeConfig
	cfg        config.TetrisConfig
	fixedCfg   bool // cfg was supplied by the caller and is not reloaded
	difficulty *config.DifficultyManager
	engine     *ai.Engine
	logger     *log.Logger

	rng   *rand.Rand
	board grid.Board
	stone grid.Piece
	next  grid.Piece
	x, y  int // Top-left corner of the falling stone

	// Game state
	tick      int
	fallTicks int // Ticks since the stone last fell
	score     int
	lines     int
	pieces    int
	autopilot bool
	plan      bool // Autopilot still has to place the current stone
	gameOver  bool
	paused    bool

	// Per-step results
	stepCleared int
	stepLanded  bool
}

// New creates a manually controlled game.
func New() *Game {
	return &Game{mode: ModeManual, logger: log.New(io.Discard)}
}

// NewAuto creates a game steered by the autopilot.
func NewAuto() *Game {
	return &Game{mode: ModeAuto, logger: log.New(io.Discard)}
}

// NewWithConfig creates a game that uses cfg instead of loading
// configuration files. The autopilot weights are validated up front.
func NewWithConfig(mode Mode, cfg config.TetrisConfig, logger *log.Logger) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if _, err := ai.ParseHeuristic(cfg.Autopilot.Weights); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Game{mode: mode, cfg: cfg, fixedCfg: true, logger: logger}, nil
}

func init() {
	registry.Register(string(ModeManual), func() registry.Game {
		return New()
	})
	registry.Register(string(ModeAuto), func() registry.Game {
		return NewAuto()
	})
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return string(g.mode)
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.mode == ModeAuto {
		return "Tetris (Autopilot)"
	}
	return "Tetris"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	if !g.fixedCfg {
		cfg, err := config.LoadTetris(configPath)
		if err != nil {
			g.logger.Warn("falling back to default config", "error", err)
			cfg = config.DefaultTetrisConfig()
		}
		if difficultyPreset != "" {
			config.ApplyTetrisPreset(&cfg, difficultyPreset)
		}
		g.cfg = cfg
	}

	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)

	h, err := ai.ParseHeuristic(g.cfg.Autopilot.Weights)
	if err != nil {
		g.logger.Warn("using default autopilot weights", "error", err)
		h = nil
	}
	g.engine = ai.NewEngine(h, ai.WithLogger(g.logger))

	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.board = grid.NewBoard()
	g.tick = 0
	g.fallTicks = 0
	g.score = 0
	g.lines = 0
	g.pieces = 0
	g.gameOver = false
	g.paused = false
	g.plan = false
	g.autopilot = g.mode == ModeAuto || g.cfg.Autopilot.Enabled

	g.next = g.randomStone()
	g.spawn()
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.stepCleared = 0
	g.stepLanded = false

	if g.gameOver {
		if in.Has(core.ActionRestart) {
			rt := g.runtime
			rt.Seed = g.rng.Int63()
			g.Reset(rt)
		}
		return g.result()
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return g.result()
	}

	if in.Has(core.ActionAutopilot) {
		g.autopilot = !g.autopilot
		g.plan = g.autopilot
	}

	g.tick++

	if g.autopilot {
		g.steer()
	} else {
		g.processInput(in)
	}
	if g.gameOver || g.stepLanded {
		return g.result()
	}

	g.fallTicks++
	if g.fallTicks >= g.fallInterval() {
		g.fallTicks = 0
		g.drop()
	}

	return g.result()
}

// steer lets the engine place the current stone once.
func (g *Game) steer() {
	if !g.plan {
		return
	}
	g.plan = false

	if err := g.engine.DecideAndApply(g); err != nil {
		if !errors.Is(err, ai.ErrNoMove) {
			g.logger.Error("autopilot failed", "error", err)
		}
		g.gameOver = true
		return
	}
	if g.cfg.Autopilot.HardDrop {
		g.HardDrop()
	}
}

// processInput applies player actions to the falling stone.
func (g *Game) processInput(in core.InputFrame) {
	if in.Has(core.ActionLeft) {
		g.Move(-1)
	}
	if in.Has(core.ActionRight) {
		g.Move(1)
	}
	if in.Has(core.ActionRotate) {
		g.RotateStone()
	}
	if in.Has(core.ActionSoftDrop) {
		g.fallTicks = 0
		g.drop()
	}
	if in.Has(core.ActionHardDrop) && !g.stepLanded {
		g.HardDrop()
	}
}

// fallInterval returns the current number of ticks per row.
func (g *Game) fallInterval() int {
	return g.difficulty.FallInterval(
		g.cfg.Gravity.IntervalTicks,
		g.cfg.Gravity.MinIntervalTicks,
		g.score,
		g.tick,
	)
}

func (g *Game) result() core.StepResult {
	return core.StepResult{
		State:   g.State(),
		Cleared: g.stepCleared,
		Landed:  g.stepLanded,
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:     g.score,
		Lines:     g.lines,
		Pieces:    g.pieces,
		GameOver:  g.gameOver,
		Paused:    g.paused,
		Autopilot: g.autopilot,
	}
}

// Heuristic returns the weight table the autopilot scores with.
func (g *Game) Heuristic() ai.Heuristic {
	return g.engine.Heuristic()
}

// LastDecision returns the autopilot's most recent placement.
func (g *Game) LastDecision() ai.Decision {
	return g.engine.Last()
}
