// Package ai implements the autopilot: it enumerates every placement of the
// current stone, scores the resulting boards with a weighted heuristic and
// steers the live stone to the best one.
package ai

import "github.com/vovakirdan/tui-tetris/internal/grid"

// Placement is one candidate landing spot for the current stone.
type Placement struct {
	Rotation int        // Clockwise quarter turns applied to the spawn orientation
	X        int        // Left column of the rotated stone
	Y        int        // Top row the stone rests at
	Board    grid.Board // Board after the stone is merged, before any row clears
}

// RestingRow drops p straight down in column x from the top of the board and
// returns the row it comes to rest at. It reports false when the stone
// already collides at row 0, i.e. there is no room to place it there.
func RestingRow(b grid.Board, p grid.Piece, x int) (int, bool) {
	y := 0
	// The floor row guarantees a collision by y == grid.Rows.
	for y <= grid.Rows && !grid.Collides(b, p, x, y) {
		y++
	}
	if y == 0 {
		return 0, false
	}
	return y - 1, true
}

// Enumerate lists every reachable placement of p on b. Rotations are visited
// in ascending order and, within a rotation, columns from left to right;
// callers rely on this order for tie-breaking. Malformed stones produce no
// placements.
func Enumerate(b grid.Board, p grid.Piece) []Placement {
	orientations := grid.Orientations(p)
	if len(orientations) == 0 {
		return nil
	}

	placements := make([]Placement, 0, len(orientations)*grid.Cols)
	for r, stone := range orientations {
		maxX := grid.MaxXOffset(stone)
		for x := 0; x <= maxX; x++ {
			y, ok := RestingRow(b, stone, x)
			if !ok {
				continue
			}
			placements = append(placements, Placement{
				Rotation: r,
				X:        x,
				Y:        y,
				Board:    grid.Merge(b, stone, x, y),
			})
		}
	}
	return placements
}
