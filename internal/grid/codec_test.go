package grid

import (
	"strings"
	"testing"
)

func TestParseBoardRoundTrip(t *testing.T) {
	b := NewBoard()
	b[Rows-1] = [Cols]Cell{1, 2, 3, 0, 0, 0, 4, 5, 6, 7}
	b[Rows-2][4] = 6

	parsed, err := ParseBoard(b.String())
	if err != nil {
		t.Fatalf("ParseBoard() error: %v", err)
	}
	if parsed != b {
		t.Errorf("ParseBoard(String()) mismatch:\n%s\nwant\n%s", parsed, b)
	}
}

func TestParseBoardBottomAligned(t *testing.T) {
	b, err := ParseBoard(`
		#.........
		##########
	`)
	if err != nil {
		t.Fatalf("ParseBoard() error: %v", err)
	}
	if b[Rows-2][0] == Empty || b[Rows-2][1] != Empty {
		t.Errorf("second-to-last row parsed wrong: %v", b[Rows-2])
	}
	if !RowFull(b, Rows-1) {
		t.Error("last row should be full")
	}
	if b[Rows][0] != FloorCell {
		t.Error("floor must be present")
	}
}

func TestParseBoardErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"short row", "....."},
		{"bad character", "....x....."},
		{"too many rows", strings.Repeat("..........\n", Rows+1)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ParseBoard(tc.input); err == nil {
				t.Errorf("ParseBoard(%q) expected error", tc.name)
			}
		})
	}
}

func TestPieceString(t *testing.T) {
	if got := Tetrominoes[0].String(); got != "111/.1." {
		t.Errorf("String() = %q, want %q", got, "111/.1.")
	}
}
