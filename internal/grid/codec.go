package grid

import (
	"fmt"
	"strings"
)

// String renders the playable rows, one line each, '.' for empty cells.
// The floor row is omitted.
func (b Board) String() string {
	var sb strings.Builder
	sb.Grow((Cols + 1) * Rows)
	for y := range Rows {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := range Cols {
			sb.WriteByte(cellChar(b[y][x]))
		}
	}
	return sb.String()
}

func cellChar(c Cell) byte {
	switch {
	case c == Empty:
		return '.'
	case c <= 9:
		return '0' + byte(c)
	default:
		return '#'
	}
}

// ParseBoard reads a board in the String format. Fewer than Rows lines are
// aligned to the bottom of the playfield. Blank lines are ignored. Digits set
// that color, '#' marks a generic filled cell and '.' or '0' is empty.
func ParseBoard(s string) (Board, error) {
	b := NewBoard()

	var lines []string
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) > Rows {
		return b, fmt.Errorf("grid: board has %d rows, max %d", len(lines), Rows)
	}

	top := Rows - len(lines)
	for i, line := range lines {
		if len(line) != Cols {
			return b, fmt.Errorf("grid: row %d has %d columns, want %d", i+1, len(line), Cols)
		}
		for x := range Cols {
			ch := line[x]
			switch {
			case ch == '.' || ch == '0':
			case ch == '#':
				b[top+i][x] = FloorCell
			case ch >= '1' && ch <= '9':
				b[top+i][x] = Cell(ch - '0')
			default:
				return b, fmt.Errorf("grid: row %d: unexpected character %q", i+1, ch)
			}
		}
	}
	return b, nil
}
