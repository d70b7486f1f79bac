package grid

// maxOrientations bounds rotation cycle detection. Four quarter turns always
// return a rectangular grid to its starting orientation.
const maxOrientations = 4

// RotateClockwise returns a new piece turned 90 degrees clockwise.
func RotateClockwise(p Piece) Piece {
	h, w := p.Height(), p.Width()
	out := make(Piece, w)
	for i := range w {
		out[i] = make([]Cell, h)
		for j := range h {
			out[i][j] = p[h-1-j][i]
		}
	}
	return out
}

// MaxXOffset returns the furthest left-aligned column the piece can occupy.
// Valid offsets are [0, MaxXOffset]. Malformed or over-wide pieces yield -1.
func MaxXOffset(p Piece) int {
	if !p.Valid() || p.Width() > Cols {
		return -1
	}
	return Cols - p.Width()
}

// Orientations returns the distinct orientations of p, starting with p itself
// and following clockwise rotation. The result never exceeds four entries.
func Orientations(p Piece) []Piece {
	if !p.Valid() {
		return nil
	}
	seen := []Piece{p}
	cur := p
	for len(seen) < maxOrientations {
		cur = RotateClockwise(cur)
		if containsPiece(seen, cur) {
			break
		}
		seen = append(seen, cur)
	}
	return seen
}

// DistinctRotations returns how many visually different orientations p has:
// 1, 2 or 4 for any well-formed stone, 0 for a malformed one.
func DistinctRotations(p Piece) int {
	return len(Orientations(p))
}

func containsPiece(list []Piece, p Piece) bool {
	for _, q := range list {
		if q.Equal(p) {
			return true
		}
	}
	return false
}
