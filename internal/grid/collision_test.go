package grid

import "testing"

func TestNewBoardFloor(t *testing.T) {
	b := NewBoard()
	for x := range Cols {
		if b[Rows][x] == Empty {
			t.Errorf("floor cell %d is empty", x)
		}
	}
	for y := range Rows {
		for x := range Cols {
			if b[y][x] != Empty {
				t.Fatalf("cell (%d, %d) = %d, want empty", x, y, b[y][x])
			}
		}
	}
}

func TestCollidesTerminatesAtFloor(t *testing.T) {
	// Every stone in every orientation at every offset must hit something
	// no later than the floor row.
	b := NewBoard()
	for i, p := range Tetrominoes {
		for _, o := range Orientations(p) {
			for x := 0; x <= MaxXOffset(o); x++ {
				hit := false
				for y := 0; y <= Rows; y++ {
					if Collides(b, o, x, y) {
						hit = true
						break
					}
				}
				if !hit {
					t.Errorf("%s at x=%d never collides", TetrominoNames[i], x)
				}
			}
		}
	}
}

func TestCollides(t *testing.T) {
	b := NewBoard()
	b[10][3] = 2
	o := Tetrominoes[6]

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"free space", 0, 0, false},
		{"overlaps filled cell", 2, 9, true},
		{"just above filled cell", 3, 8, false},
		{"resting on floor", 0, Rows - 2, false},
		{"into floor", 0, Rows - 1, true},
		{"negative x", -1, 0, true},
		{"past right edge", Cols - 1, 0, true},
		{"negative y", 0, -1, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Collides(b, o, tc.x, tc.y); got != tc.expected {
				t.Errorf("Collides(x=%d, y=%d) = %v, want %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestCollidesIgnoresEmptyPieceCells(t *testing.T) {
	b := NewBoard()
	b[1][0] = 5
	// The T stone's bottom-left cell is empty, so it may sit over (0, 1)
	if Collides(b, Tetrominoes[0], 0, 0) {
		t.Error("Collides() should ignore the piece's empty cells")
	}
}

func TestMergeCopies(t *testing.T) {
	live := NewBoard()
	merged := Merge(live, Tetrominoes[6], 4, 20)

	if live[20][4] != Empty {
		t.Error("Merge() modified the caller's board")
	}
	for _, c := range [][2]int{{4, 20}, {5, 20}, {4, 21}, {5, 21}} {
		if merged[c[1]][c[0]] != 7 {
			t.Errorf("merged cell (%d, %d) = %d, want 7", c[0], c[1], merged[c[1]][c[0]])
		}
	}
}

func TestMergeIsAdditive(t *testing.T) {
	b := NewBoard()
	b[0][0] = 1
	merged := Merge(b, Piece{{2}}, 0, 0)
	if merged[0][0] != 3 {
		t.Errorf("Merge() cell = %d, want 3", merged[0][0])
	}
}

func TestDropRow(t *testing.T) {
	b := NewBoard()
	b[0][0] = 1
	b[5][5] = 2
	b[6][6] = 3

	got := DropRow(b, 6)
	if got[0][0] != Empty {
		t.Error("top row should be fresh after DropRow")
	}
	if got[1][0] != 1 {
		t.Errorf("row 0 should move to row 1, got %d", got[1][0])
	}
	if got[6][5] != 2 {
		t.Errorf("row 5 should move to row 6, got %d", got[6][5])
	}
	if got[6][6] != Empty {
		t.Error("dropped row content should be gone")
	}
	if got[Rows] != b[Rows] {
		t.Error("floor must not move")
	}
}

func TestDropRowOutOfRange(t *testing.T) {
	b := NewBoard()
	b[3][3] = 4
	for _, row := range []int{-1, Rows, Rows + 1} {
		if got := DropRow(b, row); got != b {
			t.Errorf("DropRow(%d) changed the board", row)
		}
	}
}

// Only the first full row goes per landing even if more are full
// (single-row-clear-per-landing).
func TestClearFirstFullRowSingleRowClearPerLanding(t *testing.T) {
	b := NewBoard()
	for x := range Cols {
		b[Rows-1][x] = 1
		b[Rows-2][x] = 2
	}
	b[Rows-3][0] = 3

	got, cleared := ClearFirstFullRow(b)
	if cleared != 1 {
		t.Fatalf("cleared = %d, want 1", cleared)
	}
	if !RowFull(got, Rows-1) {
		t.Error("the second full row should remain after one landing")
	}
	if got[Rows-2][0] != 3 {
		t.Errorf("rows above the cleared one should shift down, got %d", got[Rows-2][0])
	}

	got, cleared = ClearFirstFullRow(got)
	if cleared != 1 {
		t.Fatalf("second clear = %d, want 1", cleared)
	}
	got, cleared = ClearFirstFullRow(got)
	if cleared != 0 {
		t.Errorf("third clear = %d, want 0", cleared)
	}
	if got[Rows-1][0] != 3 {
		t.Errorf("remaining cell should reach the bottom row, got %d", got[Rows-1][0])
	}
}

func TestColumnHeights(t *testing.T) {
	b := NewBoard()
	b[Rows-1][0] = 1
	b[Rows-5][2] = 1
	b[0][9] = 1

	h := ColumnHeights(b)
	expected := [Cols]int{1, 0, 5, 0, 0, 0, 0, 0, 0, Rows}
	if h != expected {
		t.Errorf("ColumnHeights() = %v, want %v", h, expected)
	}
}
