package tui

import (
	"io"
	"maps"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// stubGame records the inputs it is stepped with.
type stubGame struct {
	state  core.GameState
	inputs []core.InputFrame
}

func (g *stubGame) ID() string { return "stub" }
func (g *stubGame) Title() string { return "Stub" }
func (g *stubGame) Reset(core.RuntimeConfig) { g.state = core.GameState{} }
func (g *stubGame) Render(dst *core.Screen) { dst.DrawTextColor(0, 0, "stub", core.ColorRed) }
func (g *stubGame) State() core.GameState { return g.state }
func (g *stubGame) Step(in core.InputFrame) core.StepResult {
	// The model clears its frame after each tick.
	g.inputs = append(g.inputs, core.InputFrame{Actions: maps.Clone(in.Actions)})
	if in.Has(core.ActionPause) {
		g.state.Paused = !g.state.Paused
	}
	return core.StepResult{State: g.state}
}

func newTestGameModel(g *stubGame) GameModel {
	cfg := core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 60, Seed: 1}
	return NewGameModel(g, nil, cfg, log.New(io.Discard))
}

func TestGameModelForwardsActions(t *testing.T) {
	g := &stubGame{}
	m := newTestGameModel(g)

	next, _ := m.Update(runeKey('a'))
	m = next.(GameModel)
	next, _ = m.Update(TickMsg{})
	m = next.(GameModel)

	if len(g.inputs) != 1 || !g.inputs[0].Has(core.ActionAutopilot) {
		t.Fatalf("game stepped with %v, want autopilot action", g.inputs)
	}

	next, _ = m.Update(TickMsg{})
	m = next.(GameModel)
	if g.inputs[1].Has(core.ActionAutopilot) {
		t.Error("input frame not cleared between ticks")
	}
}

func TestGameModelBackPausesThenLeaves(t *testing.T) {
	g := &stubGame{}
	m := newTestGameModel(g)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(GameModel)
	if m.BackToMenu() {
		t.Fatal("esc during play should pause, not leave")
	}
	next, _ = m.Update(TickMsg{})
	m = next.(GameModel)
	if !g.state.Paused {
		t.Fatal("esc should pause the game")
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(GameModel)
	if !m.BackToMenu() {
		t.Error("esc while paused should return to the menu")
	}
}

func TestGameModelQuit(t *testing.T) {
	m := newTestGameModel(&stubGame{})
	next, cmd := m.Update(runeKey('q'))
	if !next.(GameModel).IsQuitting() || cmd == nil {
		t.Error("q should quit")
	}
}

func TestRenderScreen(t *testing.T) {
	s := core.NewScreen(10, 2)
	s.DrawTextColor(0, 0, "abc", core.ColorCyan)
	s.DrawText(0, 1, "xyz")

	out := RenderScreen(s)
	if !strings.Contains(out, "abc") || !strings.Contains(out, "xyz") {
		t.Errorf("RenderScreen() lost text: %q", out)
	}
	if got := strings.Count(out, "\n"); got != 1 {
		t.Errorf("RenderScreen() has %d newlines, want 1", got)
	}
}
