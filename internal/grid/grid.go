// Package grid models the tetris playfield and stones as plain values.
// Boards are fixed-size arrays, so assigning one or passing it to a function
// copies it: speculative boards never alias the live one.
package grid

import "strings"

// Playfield dimensions.
const (
	Cols = 10 // Board width in cells
	Rows = 22 // Playable rows, not counting the floor
)

// Cell is a single board or stone cell. Zero is empty, 1..7 are stone colors.
type Cell uint8

const (
	Empty     Cell = 0
	FloorCell Cell = 8 // Sentinel row below the playfield, also used for generic filled cells
)

// Board holds Rows playable rows plus one permanently filled floor row at
// index Rows. Row 0 is the top of the playfield.
type Board [Rows + 1][Cols]Cell

// NewBoard returns an empty board with its floor row in place.
func NewBoard() Board {
	var b Board
	for x := range Cols {
		b[Rows][x] = FloorCell
	}
	return b
}

// Piece is a small rectangular stone grid indexed as p[y][x].
type Piece [][]Cell

// Width returns the number of columns in the piece.
func (p Piece) Width() int {
	if len(p) == 0 {
		return 0
	}
	return len(p[0])
}

// Height returns the number of rows in the piece.
func (p Piece) Height() int {
	return len(p)
}

// Valid reports whether the piece is non-empty, rectangular and at most 4x4.
func (p Piece) Valid() bool {
	w := p.Width()
	if w == 0 || w > 4 || len(p) > 4 {
		return false
	}
	for _, row := range p {
		if len(row) != w {
			return false
		}
	}
	return true
}

// Equal compares two pieces cell by cell.
func (p Piece) Equal(o Piece) bool {
	if len(p) != len(o) {
		return false
	}
	for y := range p {
		if len(p[y]) != len(o[y]) {
			return false
		}
		for x := range p[y] {
			if p[y][x] != o[y][x] {
				return false
			}
		}
	}
	return true
}

// Clone returns a deep copy of the piece.
func (p Piece) Clone() Piece {
	out := make(Piece, len(p))
	for y, row := range p {
		out[y] = append([]Cell(nil), row...)
	}
	return out
}

// Color returns the tag carried by the piece's occupied cells.
func (p Piece) Color() Cell {
	for _, row := range p {
		for _, c := range row {
			if c != Empty {
				return c
			}
		}
	}
	return Empty
}

// String renders the piece on one line, rows separated by '/'.
func (p Piece) String() string {
	rows := make([]string, len(p))
	for y, row := range p {
		var sb strings.Builder
		for _, c := range row {
			sb.WriteByte(cellChar(c))
		}
		rows[y] = sb.String()
	}
	return strings.Join(rows, "/")
}
