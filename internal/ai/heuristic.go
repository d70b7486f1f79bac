package ai

import (
	"errors"
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/grid"
)

// ErrUnknownFeature is returned when a weight names a feature that is not in
// the Features catalogue.
var ErrUnknownFeature = errors.New("ai: unknown feature")

// Weight pairs a board feature with the coefficient applied to it.
type Weight struct {
	Name    string
	Feature FeatureFunc
	Value   float64
}

// Heuristic is an ordered weight table. Score sums in table order so results
// are reproducible bit for bit.
type Heuristic []Weight

// Score returns the weighted sum of every feature measured on b.
func (h Heuristic) Score(b grid.Board) float64 {
	var total float64
	for _, w := range h {
		total += w.Feature(b) * w.Value
	}
	return total
}

// Breakdown returns each weighted term of Score, keyed by feature name.
func (h Heuristic) Breakdown(b grid.Board) map[string]float64 {
	return lo.SliceToMap(h, func(w Weight) (string, float64) {
		return w.Name, w.Feature(b) * w.Value
	})
}

// Names lists the feature names in table order.
func (h Heuristic) Names() []string {
	return lo.Map(h, func(w Weight, _ int) string { return w.Name })
}

// String renders the table as "name=weight" pairs.
func (h Heuristic) String() string {
	parts := lo.Map(h, func(w Weight, _ int) string {
		return fmt.Sprintf("%s=%g", w.Name, w.Value)
	})
	return strings.Join(parts, " ")
}

// ParseHeuristic resolves configured weights against the Features catalogue,
// keeping their order.
func ParseHeuristic(weights []config.WeightConfig) (Heuristic, error) {
	h := make(Heuristic, 0, len(weights))
	for _, wc := range weights {
		name := strings.ToLower(strings.TrimSpace(wc.Feature))
		fn, ok := Features[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownFeature, wc.Feature)
		}
		h = append(h, Weight{Name: name, Feature: fn, Value: wc.Weight})
	}
	return h, nil
}

// DefaultHeuristic returns the weight table used when none is configured.
func DefaultHeuristic() Heuristic {
	h, err := ParseHeuristic(config.DefaultTetrisConfig().Autopilot.Weights)
	if err != nil {
		panic(err) // built-in table only names catalogue features
	}
	return h
}
