package grid

// Collides reports whether any occupied cell of p placed with its top-left
// corner at (x, y) overlaps a filled board cell. Cells falling outside the
// board array count as collisions.
func Collides(b Board, p Piece, x, y int) bool {
	for cy, row := range p {
		for cx, cell := range row {
			if cell == Empty {
				continue
			}
			bx, by := x+cx, y+cy
			if bx < 0 || bx >= Cols || by < 0 || by > Rows {
				return true
			}
			if b[by][bx] != Empty {
				return true
			}
		}
	}
	return false
}

// Merge adds the cells of p into a copy of b at (x, y) and returns the copy.
// Cells outside the playfield are dropped.
func Merge(b Board, p Piece, x, y int) Board {
	for cy, row := range p {
		for cx, cell := range row {
			if cell == Empty {
				continue
			}
			bx, by := x+cx, y+cy
			if bx < 0 || bx >= Cols || by < 0 || by >= Rows {
				continue
			}
			b[by][bx] += cell
		}
	}
	return b
}

// DropRow removes the given playable row and shifts everything above it down
// by one, leaving a fresh empty row at the top. The floor is never removed.
func DropRow(b Board, row int) Board {
	if row < 0 || row >= Rows {
		return b
	}
	for y := row; y > 0; y-- {
		b[y] = b[y-1]
	}
	b[0] = [Cols]Cell{}
	return b
}

// RowFull reports whether every cell of the given playable row is filled.
func RowFull(b Board, row int) bool {
	if row < 0 || row >= Rows {
		return false
	}
	for _, c := range b[row] {
		if c == Empty {
			return false
		}
	}
	return true
}

// ClearFirstFullRow drops the topmost full row, if any, and reports how many
// rows were cleared. At most one row goes per call even when several are full.
func ClearFirstFullRow(b Board) (Board, int) {
	for y := range Rows {
		if RowFull(b, y) {
			return DropRow(b, y), 1
		}
	}
	return b, 0
}

// ColumnHeights returns, per column, the distance from the floor to the
// highest filled cell. Empty columns have height 0.
func ColumnHeights(b Board) [Cols]int {
	var heights [Cols]int
	for x := range Cols {
		for y := range Rows {
			if b[y][x] != Empty {
				heights[x] = Rows - y
				break
			}
		}
	}
	return heights
}
