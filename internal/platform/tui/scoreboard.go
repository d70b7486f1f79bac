package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"

	"github.com/vovakirdan/tui-tetris/internal/registry"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

const (
	boardRows     = 100 // rows loaded per tab
	runsTabTitle  = "Autopilot runs"
	boardChrome   = 10 // title, tabs, summary, help and borders
	minTableLines = 3
)

// boardTab is one page of the scoreboard: a game mode's scores, or the
// recorded bench runs.
type boardTab struct {
	id    string
	title string
	runs  bool
}

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Scroll key.Binding
	Next   key.Binding
	Prev   key.Binding
	Back   key.Binding
	Quit   key.Binding
}

// ShortHelp implements help.KeyMap.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Scroll, k.Next, k.Prev, k.Back, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Scroll: key.NewBinding(key.WithKeys("up", "k", "down", "j"), key.WithHelp("↑/↓", "scroll")),
		Next:   key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab", "next page")),
		Prev:   key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("S-tab", "prev page")),
		Back:   key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "back")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ScoreboardModel shows the best scores per mode and the history of
// autopilot bench runs.
type ScoreboardModel struct {
	tabs    []boardTab
	current int
	store   *storage.Store
	table   table.Model
	summary string
	help    help.Model
	keys    ScoreboardKeyMap
	width   int
	height  int

	quitting  bool
	goingBack bool
}

// NewScoreboardModel creates a scoreboard opened on the first mode.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	tabs := lo.Map(registry.List(), func(g registry.GameInfo, _ int) boardTab {
		return boardTab{id: g.ID, title: g.Title}
	})
	tabs = append(tabs, boardTab{title: runsTabTitle, runs: true})

	m := ScoreboardModel{
		tabs:   tabs,
		store:  store,
		keys:   DefaultScoreboardKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.load()
	return m
}

// load rebuilds the table and summary for the current tab.
func (m *ScoreboardModel) load() {
	tab := m.tabs[m.current]
	var (
		cols []table.Column
		rows []table.Row
	)
	if tab.runs {
		cols, rows, m.summary = m.runRows()
	} else {
		cols, rows, m.summary = m.scoreRows(tab.id)
	}

	height := m.height - boardChrome
	if height < minTableLines {
		height = minTableLines
	}
	t := table.New(
		table.WithColumns(cols),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(height),
	)
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)
	m.table = t
}

func (m *ScoreboardModel) scoreRows(gameID string) ([]table.Column, []table.Row, string) {
	cols := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Score", Width: 8},
		{Title: "Lines", Width: 6},
		{Title: "Pts/line", Width: 8},
		{Title: "Played", Width: 12},
	}
	if m.store == nil {
		return cols, nil, "no score database"
	}

	scores, err := m.store.TopScores(gameID, boardRows)
	if err != nil {
		return cols, nil, "error: " + err.Error()
	}
	rows := lo.Map(scores, func(s storage.ScoreEntry, i int) table.Row {
		perLine := "-"
		if s.Lines > 0 {
			perLine = fmt.Sprintf("%.1f", float64(s.Score)/float64(s.Lines))
		}
		return table.Row{
			fmt.Sprint(i + 1),
			fmt.Sprint(s.Score),
			fmt.Sprint(s.Lines),
			perLine,
			s.CreatedAt.Format("Jan 02 15:04"),
		}
	})

	stats, err := m.store.GetGameStats(gameID)
	if err != nil || stats.GamesCount == 0 {
		return cols, rows, "no games played yet"
	}
	return cols, rows, fmt.Sprintf("%d games  best %d  avg %.0f  %d lines cleared",
		stats.GamesCount, stats.HighScore, stats.AvgScore, stats.TotalLines)
}

func (m *ScoreboardModel) runRows() ([]table.Column, []table.Row, string) {
	cols := []table.Column{
		{Title: "Seed", Width: 12},
		{Title: "Score", Width: 8},
		{Title: "Lines", Width: 6},
		{Title: "Pieces", Width: 7},
		{Title: "End", Width: 8},
		{Title: "Ran", Width: 12},
	}
	if m.store == nil {
		return cols, nil, "no score database"
	}

	runs, err := m.store.RecentRuns("", boardRows)
	if err != nil {
		return cols, nil, "error: " + err.Error()
	}
	if len(runs) == 0 {
		return cols, nil, "no runs saved; try tetris bench --save"
	}
	rows := lo.Map(runs, func(r storage.Run, _ int) table.Row {
		end := "limit"
		if r.ToppedOut {
			end = "top out"
		}
		return table.Row{
			fmt.Sprint(r.Seed),
			fmt.Sprint(r.Score),
			fmt.Sprint(r.Lines),
			fmt.Sprint(r.Pieces),
			end,
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	})
	mean := float64(lo.SumBy(runs, func(r storage.Run) int { return r.Score })) / float64(len(runs))
	toppedOut := lo.CountBy(runs, func(r storage.Run) bool { return r.ToppedOut })
	return cols, rows, fmt.Sprintf("%d runs  mean score %.0f  %d topped out", len(runs), mean, toppedOut)
}

func (m *ScoreboardModel) move(delta int) {
	n := len(m.tabs)
	m.current = ((m.current+delta)%n + n) % n
	m.load()
}

// Init implements tea.Model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			m.move(1)
			return m, nil
		case key.Matches(msg, m.keys.Prev):
			m.move(-1)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.load()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	title := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	active := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")).Padding(0, 1)
	box := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)

	var b strings.Builder
	b.WriteString(centerText(title.Render("HIGH SCORES"), m.width))
	b.WriteString("\n\n")

	tabs := lo.Map(m.tabs, func(t boardTab, i int) string {
		if i == m.current {
			return active.Render(t.title)
		}
		return dim.Render(" " + t.title + " ")
	})
	line := strings.Join(tabs, " ")
	if lipgloss.Width(line) > m.width-2 {
		line = active.Render("< " + m.tabs[m.current].title + " >")
	}
	b.WriteString(centerText(line, m.width))
	b.WriteString("\n\n")

	b.WriteString(centerText(dim.Render(m.summary), m.width))
	b.WriteString("\n")
	if len(m.table.Rows()) == 0 {
		b.WriteString(centerText(box.Render(dim.Italic(true).Render("Nothing here yet.")), m.width))
	} else {
		b.WriteString(centerText(box.Render(m.table.View()), m.width))
	}
	b.WriteString("\n")
	b.WriteString(dim.Render(m.help.View(m.keys)))
	return b.String()
}

// IsGoingBack reports whether the user asked to return to the menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting reports whether the user asked to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(NewScoreboardModel(store, width, height), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(ScoreboardModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
