package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/ai"
	"github.com/vovakirdan/tui-tetris/internal/bench"
	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

var (
	flagBenchGames     int
	flagBenchMaxPieces int
	flagBenchSave      bool
	flagBenchHistogram bool
	flagBenchBins      int
	flagBenchHistory   int
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Benchmark the autopilot on headless games",
	Long: `Play games without a terminal, letting the autopilot hard-drop every stone,
and report score statistics for the configured weight table.

Game i uses seed --seed + i, so runs with the same seed and config are
reproducible.

Examples:
  tetris bench --games 50 --seed 1
  tetris bench --games 20 --max-pieces 500 --histogram
  tetris bench --config ./weights.yaml --save --history 10`,
	Run: runBench,
}

func init() {
	benchCmd.Flags().IntVar(&flagBenchGames, "games", 10, "Number of games to play")
	benchCmd.Flags().IntVar(&flagBenchMaxPieces, "max-pieces", 1000, "Stop each game after this many stones (0 = until top-out)")
	benchCmd.Flags().BoolVar(&flagBenchSave, "save", false, "Record every run in the scores database")
	benchCmd.Flags().BoolVar(&flagBenchHistogram, "histogram", false, "Print a score histogram")
	benchCmd.Flags().IntVar(&flagBenchBins, "bins", 10, "Histogram bins")
	benchCmd.Flags().IntVar(&flagBenchHistory, "history", 0, "Show this many earlier saved runs with the same weights")
}

func runBench(_ *cobra.Command, _ []string) {
	logger := newLogger("bench")

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

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger.Info("starting benchmark", "games", flagBenchGames, "seed", seed, "weights", h.String())
	start := time.Now()
	results, err := bench.Play(ctx, bench.Options{
		Games:     flagBenchGames,
		Seed:      seed,
		MaxPieces: flagBenchMaxPieces,
		Config:    cfg,
		Logger:    logger,
	})
	if err != nil {
		logger.Warn("benchmark stopped early", "error", err, "completed", len(results))
	}
	if len(results) == 0 {
		fmt.Fprintln(os.Stderr, "Error: no games completed")
		os.Exit(1)
	}

	s := bench.Summarize(results)
	fmt.Println()
	fmt.Printf("Weights:     %s\n", h)
	fmt.Printf("Games:       %d (%d topped out) in %s\n", s.Games, s.ToppedOut, time.Since(start).Round(time.Millisecond))
	fmt.Printf("Score:       mean %.1f ± %.1f  sd %.1f\n", s.MeanScore, s.CI95, s.StdDevScore)
	fmt.Printf("             min %.0f  median %.0f  p90 %.0f  max %.0f\n", s.MinScore, s.MedianScore, s.P90Score, s.MaxScore)
	fmt.Printf("Lines:       mean %.1f\n", s.MeanLines)
	fmt.Printf("Stones:      mean %.1f\n", s.MeanPieces)

	if flagBenchHistogram {
		fmt.Println()
		if err := bench.FprintHistogram(os.Stdout, results, flagBenchBins); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
	}

	if !flagBenchSave && flagBenchHistory <= 0 {
		return
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	// Earlier runs are read before this batch is written.
	if flagBenchHistory > 0 {
		printRunHistory(store, h.String(), flagBenchHistory)
	}

	if flagBenchSave {
		for _, r := range results {
			if _, err := store.SaveRun(storage.Run{
				Seed:      r.Seed,
				Heuristic: h.String(),
				Score:     r.Score,
				Lines:     r.Lines,
				Pieces:    r.Pieces,
				ToppedOut: r.ToppedOut,
			}); err != nil {
				logger.Error("could not save run", "seed", r.Seed, "error", err)
			}
		}
		logger.Info("runs saved", "count", len(results), "db", flagDBPath)
	}
}

func printRunHistory(store *storage.Store, heuristic string, limit int) {
	runs, err := store.RecentRuns(heuristic, limit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		return
	}

	fmt.Println()
	if len(runs) == 0 {
		fmt.Println("No earlier runs with these weights.")
		return
	}

	fmt.Println("Earlier runs with these weights:")
	fmt.Printf("  %-20s  %-8s  %-6s  %-7s  %s\n", "Seed", "Score", "Lines", "Stones", "Date")
	for _, r := range runs {
		status := ""
		if !r.ToppedOut {
			status = " (limit)"
		}
		fmt.Printf("  %-20d  %-8d  %-6d  %-7d  %s%s\n",
			r.Seed, r.Score, r.Lines, r.Pieces, r.CreatedAt.Format("2006-01-02 15:04"), status)
	}
}
