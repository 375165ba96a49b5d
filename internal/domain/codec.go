package domain

import (
	"errors"
	"fmt"
)

// EmptyRune is the boundary encoding of an empty cell.
const EmptyRune = '.'

// ErrBadGrid reports input that does not decode to a 9x9 grid.
var ErrBadGrid = errors.New("malformed grid")

// ParseRows decodes the canonical boundary encoding: nine strings of nine
// cells each, digits '1'..'9' or '.' for empty.
func ParseRows(rows []string) (Grid, error) {
	var g Grid
	if len(rows) != 9 {
		return g, fmt.Errorf("%w: want 9 rows, got %d", ErrBadGrid, len(rows))
	}
	for r, row := range rows {
		if len(row) != 9 {
			return Grid{}, fmt.Errorf("%w: row %d has %d cells, want 9", ErrBadGrid, r+1, len(row))
		}
		for c := 0; c < 9; c++ {
			switch ch := row[c]; {
			case ch == EmptyRune:
				g[r][c] = Empty
			case ch >= '1' && ch <= '9':
				g[r][c] = ch - '0'
			default:
				return Grid{}, fmt.Errorf("%w: row %d col %d: %q", ErrBadGrid, r+1, c+1, ch)
			}
		}
	}
	return g, nil
}

// Rows encodes the grid as nine dot-encoded strings.
func (g *Grid) Rows() []string {
	out := make([]string, 9)
	var buf [9]byte
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if g[r][c] == Empty {
				buf[c] = EmptyRune
			} else {
				buf[c] = '0' + g[r][c]
			}
		}
		out[r] = string(buf[:])
	}
	return out
}
