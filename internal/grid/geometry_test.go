package grid

import "testing"

func TestRotateClockwise(t *testing.T) {
	p := Piece{
		{4, 0, 0},
		{4, 4, 4},
	}
	want := Piece{
		{4, 4},
		{4, 0},
		{4, 0},
	}

	got := RotateClockwise(p)
	if !got.Equal(want) {
		t.Errorf("RotateClockwise() = %v, want %v", got, want)
	}
	// The input must not be modified
	if !p.Equal(Piece{{4, 0, 0}, {4, 4, 4}}) {
		t.Errorf("RotateClockwise() mutated its input: %v", p)
	}
}

func TestDistinctRotations(t *testing.T) {
	tests := []struct {
		name     string
		expected int
	}{
		{"T", 4},
		{"S", 2},
		{"Z", 2},
		{"J", 4},
		{"L", 4},
		{"I", 2},
		{"O", 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p, ok := TetrominoByName(tc.name)
			if !ok {
				t.Fatalf("TetrominoByName(%q) not found", tc.name)
			}
			if got := DistinctRotations(p); got != tc.expected {
				t.Errorf("DistinctRotations(%s) = %d, want %d", tc.name, got, tc.expected)
			}
		})
	}
}

func TestRotationCycleReturnsToStart(t *testing.T) {
	for i, p := range Tetrominoes {
		n := DistinctRotations(p)
		if n != 1 && n != 2 && n != 4 {
			t.Errorf("%s: DistinctRotations() = %d, want 1, 2 or 4", TetrominoNames[i], n)
			continue
		}

		cur := p
		for range n {
			cur = RotateClockwise(cur)
		}
		if !cur.Equal(p) {
			t.Errorf("%s: rotating %d times gave %v, want %v", TetrominoNames[i], n, cur, p)
		}
	}
}

func TestDistinctRotationsMalformed(t *testing.T) {
	tests := []struct {
		name  string
		piece Piece
	}{
		{"nil", nil},
		{"empty row", Piece{{}}},
		{"ragged", Piece{{1, 1}, {1}}},
		{"too wide", Piece{{1, 1, 1, 1, 1}}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := DistinctRotations(tc.piece); got != 0 {
				t.Errorf("DistinctRotations() = %d, want 0", got)
			}
		})
	}
}

func TestOrientationsCapped(t *testing.T) {
	// No symmetry, so every quarter turn is distinct
	p := Piece{
		{1, 1, 1},
		{0, 0, 1},
		{0, 0, 0},
	}
	o := Orientations(p)
	if len(o) != 4 {
		t.Fatalf("Orientations() returned %d entries, want 4", len(o))
	}
	if !o[0].Equal(p) {
		t.Errorf("first orientation = %v, want the input piece", o[0])
	}
}

func TestMaxXOffset(t *testing.T) {
	tests := []struct {
		name     string
		piece    Piece
		expected int
	}{
		{"O", Tetrominoes[6], 8},
		{"I horizontal", Tetrominoes[5], 6},
		{"I vertical", RotateClockwise(Tetrominoes[5]), 9},
		{"T", Tetrominoes[0], 7},
		{"empty", Piece{}, -1},
		{"ragged", Piece{{1, 1}, {1}}, -1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := MaxXOffset(tc.piece); got != tc.expected {
				t.Errorf("MaxXOffset() = %d, want %d", got, tc.expected)
			}
		})
	}
}
