package grid

import "strings"

// Tetromino names in spawn-table order.
var TetrominoNames = []string{"T", "S", "Z", "J", "L", "I", "O"}

// Tetrominoes holds the spawn orientation of each stone, colored 1..7.
var Tetrominoes = []Piece{
	{
		{1, 1, 1},
		{0, 1, 0},
	},
	{
		{0, 2, 2},
		{2, 2, 0},
	},
	{
		{3, 3, 0},
		{0, 3, 3},
	},
	{
		{4, 0, 0},
		{4, 4, 4},
	},
	{
		{0, 0, 5},
		{5, 5, 5},
	},
	{
		{6, 6, 6, 6},
	},
	{
		{7, 7},
		{7, 7},
	},
}

// TetrominoByName returns a copy of the named stone (case-insensitive).
func TetrominoByName(name string) (Piece, bool) {
	for i, n := range TetrominoNames {
		if strings.EqualFold(n, name) {
			return Tetrominoes[i].Clone(), true
		}
	}
	return nil, false
}

// TetrominoName returns the letter for a stone color, or "?" if unknown.
func TetrominoName(c Cell) string {
	if c == Empty || int(c) > len(TetrominoNames) {
		return "?"
	}
	return TetrominoNames[c-1]
}
