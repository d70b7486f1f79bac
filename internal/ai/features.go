package ai

import (
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/grid"
)

// FeatureFunc measures one property of a board. Feature functions must be
// pure and total.
type FeatureFunc func(b grid.Board) float64

// Built-in feature names, as used in configuration files.
const (
	FeatureHoles          = "holes"
	FeatureBlockades      = "blockades"
	FeatureBumpiness      = "bumpiness"
	FeatureMaxHeight      = "max_height"
	FeatureAvgHeight      = "avg_height"
	FeatureFilledCells    = "filled_cells"
	FeatureCompleteLines  = "complete_lines"
	FeatureRowTransitions = "row_transitions"
	FeatureColTransitions = "col_transitions"
	FeatureWells          = "wells"
)

// Features maps every built-in feature name to its function.
var Features = map[string]FeatureFunc{
	FeatureHoles:          Holes,
	FeatureBlockades:      Blockades,
	FeatureBumpiness:      Bumpiness,
	FeatureMaxHeight:      MaxHeight,
	FeatureAvgHeight:      AvgHeight,
	FeatureFilledCells:    FilledCells,
	FeatureCompleteLines:  CompleteLines,
	FeatureRowTransitions: RowTransitions,
	FeatureColTransitions: ColTransitions,
	FeatureWells:          Wells,
}

// Holes counts empty cells that have a filled cell somewhere above them.
func Holes(b grid.Board) float64 {
	var n int
	for x := range grid.Cols {
		covered := false
		for y := range grid.Rows {
			switch {
			case b[y][x] != grid.Empty:
				covered = true
			case covered:
				n++
			}
		}
	}
	return float64(n)
}

// Blockades counts filled cells sitting above at least one hole in their
// column.
func Blockades(b grid.Board) float64 {
	var n int
	for x := range grid.Cols {
		run := 0 // filled cells seen since the last counted hole
		for y := range grid.Rows {
			if b[y][x] != grid.Empty {
				run++
				continue
			}
			n += run
			run = 0
		}
	}
	return float64(n)
}

// Bumpiness sums the absolute height difference of neighbouring columns.
func Bumpiness(b grid.Board) float64 {
	h := grid.ColumnHeights(b)
	var n int
	for x := 0; x < grid.Cols-1; x++ {
		n += core.Abs(h[x] - h[x+1])
	}
	return float64(n)
}

// MaxHeight is the height of the tallest column.
func MaxHeight(b grid.Board) float64 {
	var top int
	for _, h := range grid.ColumnHeights(b) {
		top = core.Max(top, h)
	}
	return float64(top)
}

// AvgHeight is the mean column height.
func AvgHeight(b grid.Board) float64 {
	var sum int
	for _, h := range grid.ColumnHeights(b) {
		sum += h
	}
	return float64(sum) / grid.Cols
}

// FilledCells counts filled cells in the playfield.
func FilledCells(b grid.Board) float64 {
	var n int
	for y := range grid.Rows {
		for x := range grid.Cols {
			if b[y][x] != grid.Empty {
				n++
			}
		}
	}
	return float64(n)
}

// CompleteLines counts rows that are full and would clear.
func CompleteLines(b grid.Board) float64 {
	var n int
	for y := range grid.Rows {
		if grid.RowFull(b, y) {
			n++
		}
	}
	return float64(n)
}

// RowTransitions counts horizontally adjacent filled/empty pairs. Walls count
// as filled, so an empty row contributes two.
func RowTransitions(b grid.Board) float64 {
	var n int
	for y := range grid.Rows {
		prev := true
		for x := range grid.Cols {
			filled := b[y][x] != grid.Empty
			if filled != prev {
				n++
			}
			prev = filled
		}
		if !prev {
			n++
		}
	}
	return float64(n)
}

// ColTransitions counts vertically adjacent filled/empty pairs, including the
// step onto the floor.
func ColTransitions(b grid.Board) float64 {
	var n int
	for x := range grid.Cols {
		prev := false
		for y := 0; y <= grid.Rows; y++ {
			filled := b[y][x] != grid.Empty
			if filled != prev {
				n++
			}
			prev = filled
		}
	}
	return float64(n)
}

// Wells sums how far each column sits below the lower of its two neighbours.
// Walls count as full height.
func Wells(b grid.Board) float64 {
	h := grid.ColumnHeights(b)
	var n int
	for x := range grid.Cols {
		left, right := grid.Rows, grid.Rows
		if x > 0 {
			left = h[x-1]
		}
		if x < grid.Cols-1 {
			right = h[x+1]
		}
		if depth := core.Min(left, right) - h[x]; depth > 0 {
			n += depth
		}
	}
	return float64(n)
}
