// Package bench plays headless autopilot games and summarizes how the
// weight table performed across them.
package bench

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"slices"

	"github.com/aybabtme/uniplot/histogram"
	"github.com/charmbracelet/log"
	"github.com/samber/lo"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
)

// ErrNoGames is returned when a benchmark is asked to play nothing.
var ErrNoGames = errors.New("bench: no games requested")

// Options configures a benchmark.
type Options struct {
	Games     int
	Seed      int64 // Game i is seeded with Seed+i
	MaxPieces int   // Stop a game after this many stones; 0 plays until top-out
	Config    config.TetrisConfig
	Logger    *log.Logger
}

// Result is the outcome of one headless game.
type Result struct {
	Seed      int64
	Score     int
	Lines     int
	Pieces    int
	ToppedOut bool
}

// Play runs opts.Games games one after another. It stops early with the
// results so far when ctx is cancelled.
func Play(ctx context.Context, opts Options) ([]Result, error) {
	if opts.Games <= 0 {
		return nil, ErrNoGames
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	results := make([]Result, 0, opts.Games)
	for i := range opts.Games {
		seed := opts.Seed + int64(i)
		r, err := PlayOne(ctx, opts.Config, seed, opts.MaxPieces, logger)
		if err != nil {
			return results, err
		}
		logger.Info("game finished",
			"game", i+1,
			"seed", seed,
			"score", r.Score,
			"lines", r.Lines,
			"pieces", r.Pieces,
			"topped_out", r.ToppedOut,
		)
		results = append(results, r)
	}
	return results, nil
}

// PlayOne plays a single autopilot game with hard drops, so every step
// places one stone.
func PlayOne(ctx context.Context, cfg config.TetrisConfig, seed int64, maxPieces int, logger *log.Logger) (Result, error) {
	cfg.Autopilot.Enabled = true
	cfg.Autopilot.HardDrop = true

	g, err := tetris.NewWithConfig(tetris.ModeAuto, cfg, logger)
	if err != nil {
		return Result{}, fmt.Errorf("bench: %w", err)
	}
	rt := core.DefaultConfig()
	rt.Seed = seed
	g.Reset(rt)

	frame := core.NewInputFrame()
	st := g.State()
	for !st.GameOver && (maxPieces <= 0 || st.Pieces < maxPieces) {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		st = g.Step(frame).State
	}

	return Result{
		Seed:      seed,
		Score:     st.Score,
		Lines:     st.Lines,
		Pieces:    st.Pieces,
		ToppedOut: st.GameOver,
	}, nil
}

// Summary aggregates a set of results.
type Summary struct {
	Games       int
	ToppedOut   int
	MeanScore   float64
	StdDevScore float64
	MinScore    float64
	MedianScore float64
	P90Score    float64
	MaxScore    float64
	MeanLines   float64
	MeanPieces  float64
	// CI95 is the half-width of the 95% confidence interval around MeanScore.
	CI95 float64
}

// Summarize computes summary statistics over results.
func Summarize(results []Result) Summary {
	if len(results) == 0 {
		return Summary{}
	}

	scores := lo.Map(results, func(r Result, _ int) float64 { return float64(r.Score) })
	lines := lo.Map(results, func(r Result, _ int) float64 { return float64(r.Lines) })
	pieces := lo.Map(results, func(r Result, _ int) float64 { return float64(r.Pieces) })

	sorted := slices.Clone(scores)
	slices.Sort(sorted)

	s := Summary{
		Games:       len(results),
		ToppedOut:   lo.CountBy(results, func(r Result) bool { return r.ToppedOut }),
		MinScore:    sorted[0],
		MaxScore:    sorted[len(sorted)-1],
		MedianScore: stat.Quantile(0.5, stat.Empirical, sorted, nil),
		P90Score:    stat.Quantile(0.9, stat.Empirical, sorted, nil),
		MeanLines:   stat.Mean(lines, nil),
		MeanPieces:  stat.Mean(pieces, nil),
	}

	if len(scores) < 2 {
		s.MeanScore = scores[0]
		return s
	}
	s.MeanScore, s.StdDevScore = stat.MeanStdDev(scores, nil)
	s.CI95 = zValue(95) * s.StdDevScore / math.Sqrt(float64(len(scores)))
	return s
}

// zValue returns the two-tailed z-value for a confidence level in percent.
func zValue(confidence float64) float64 {
	dist := distuv.Normal{Mu: 0, Sigma: 1}
	return dist.Quantile((1 + confidence/100) / 2)
}

// FprintHistogram writes a text histogram of the scores in results.
func FprintHistogram(w io.Writer, results []Result, bins int) error {
	if len(results) == 0 {
		return nil
	}
	scores := lo.Map(results, func(r Result, _ int) float64 { return float64(r.Score) })
	if lo.Min(scores) == lo.Max(scores) {
		_, err := fmt.Fprintf(w, "all %d games scored %.0f\n", len(scores), scores[0])
		return err
	}
	if bins <= 0 {
		bins = 10
	}
	return histogram.Fprint(w, histogram.Hist(bins, scores), histogram.Linear(40))
}
