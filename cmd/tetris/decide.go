package main

import (
	"cmp"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/ai"
	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/grid"
)

var (
	flagDecideBoard   string
	flagDecidePiece   string
	flagDecideTop     int
	flagDecideExplain bool
)

var decideCmd = &cobra.Command{
	Use:   "decide",
	Short: "Rank the autopilot's placements for one board and stone",
	Long: `Read a board from a text file and print how the autopilot scores every
placement of the given stone, best first, followed by the chosen command
sequence and the resulting board.

Board format: one line per row, bottom-aligned, '.' or '0' for empty cells,
'1'-'8' or '#' for filled cells. Use --board - to read from stdin.

Examples:
  tetris decide --board board.txt --piece T
  tetris decide --board - --piece I --top 5 --explain < board.txt`,
	Run: runDecide,
}

func init() {
	decideCmd.Flags().StringVar(&flagDecideBoard, "board", "", "Board file ('-' for stdin)")
	decideCmd.Flags().StringVar(&flagDecidePiece, "piece", "", "Stone: "+strings.Join(grid.TetrominoNames, ", "))
	decideCmd.Flags().IntVar(&flagDecideTop, "top", 10, "Number of ranked placements to print")
	decideCmd.Flags().BoolVar(&flagDecideExplain, "explain", false, "Print the feature breakdown of the chosen board")
	//nolint:errcheck // Flags are registered above
	decideCmd.MarkFlagRequired("piece")
}

func runDecide(_ *cobra.Command, _ []string) {
	board, err := readBoard(flagDecideBoard)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	stone, ok := grid.TetrominoByName(flagDecidePiece)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown stone %q (want one of %s)\n",
			flagDecidePiece, strings.Join(grid.TetrominoNames, ", "))
		os.Exit(1)
	}

	cfg, err := config.LoadTetris(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	h, err := ai.ParseHeuristic(cfg.Autopilot.Weights)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger := newLogger("decide")
	engine := ai.NewEngine(h,
		ai.WithLogger(logger),
		ai.WithStateHook(func(st ai.State) {
			logger.Debug("engine state", "state", st)
		}),
	)
	d, err := engine.Decide(board, stone)
	if errors.Is(err, ai.ErrNoMove) {
		fmt.Println("No reachable placement: the game is over.")
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	ranked := slices.Clone(engine.Rank(board, stone))
	slices.SortStableFunc(ranked, func(a, b ai.ScoredPlacement) int {
		return cmp.Compare(b.Score, a.Score)
	})
	if flagDecideTop > 0 {
		ranked = lo.Subset(ranked, 0, uint(flagDecideTop))
	}

	fmt.Printf("Stone %s (%d orientations), %d placements, weights: %s\n\n",
		grid.TetrominoName(stone.Color()), grid.DistinctRotations(stone), d.Candidates, h)
	fmt.Printf("  %-4s  %-3s  %-3s  %-3s  %s\n", "Rank", "Rot", "X", "Y", "Score")
	for i, sp := range ranked {
		marker := ""
		if sp.Rotation == d.Rotation && sp.X == d.X {
			marker = "  <- chosen"
		}
		fmt.Printf("  %-4d  %-3d  %-3d  %-3d  %.3f%s\n", i+1, sp.Rotation, sp.X, sp.Y, sp.Score, marker)
	}

	cmds := lo.Map(d.Commands(), func(c ai.Command, _ int) string { return c.String() })
	fmt.Printf("\nCommands: %s\n\n", strings.Join(cmds, ", "))
	fmt.Println(d.Board.String())

	if flagDecideExplain {
		breakdown := h.Breakdown(d.Board)
		fmt.Println()
		for _, name := range h.Names() {
			fmt.Printf("  %-16s %8.3f\n", name, breakdown[name])
		}
	}
}

// readBoard parses a board from path, or from stdin when path is "-".
func readBoard(path string) (grid.Board, error) {
	var data []byte
	var err error
	switch path {
	case "":
		return grid.Board{}, errors.New("--board is required")
	case "-":
		data, err = io.ReadAll(os.Stdin)
	default:
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return grid.Board{}, fmt.Errorf("cannot read board: %w", err)
	}
	return grid.ParseBoard(string(data))
}
