package validator

import (
	"fmt"

	"github.com/gridden/sudoku/internal/domain"
)

// Messages reported by Validate and CompleteAndValid.
const (
	MsgValid      = "board is valid"
	MsgIncomplete = "board contains empty slots"
)

// Validate scans the grid row-major and reports the first uniqueness
// violation. Empty cells are skipped: a partial grid is valid as long as
// its filled cells do not conflict. The message names the offending unit
// (1-indexed) and value; on success it is MsgValid. For a given cell the
// row check runs before the column check before the box check.
func Validate(g *domain.Grid) (bool, string) {
	var rows, cols, boxes [9]uint16
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			v := g[r][c]
			if v == domain.Empty {
				continue
			}
			bit := uint16(1) << v
			b := (r/3)*3 + c/3
			if rows[r]&bit != 0 {
				return false, fmt.Sprintf("duplicate value %d in row %d", v, r+1)
			}
			if cols[c]&bit != 0 {
				return false, fmt.Sprintf("duplicate value %d in column %d", v, c+1)
			}
			if boxes[b]&bit != 0 {
				return false, fmt.Sprintf("duplicate value %d in box %d", v, b+1)
			}
			rows[r] |= bit
			cols[c] |= bit
			boxes[b] |= bit
		}
	}
	return true, MsgValid
}

// LegalPlacement reports whether v can be placed at (row, col) without
// duplicating a value in its row, column, or 3x3 box. Pure predicate: it
// inspects the 27 related cells and nothing else.
func LegalPlacement(g *domain.Grid, row, col int, v uint8) bool {
	for i := 0; i < 9; i++ {
		if g[row][i] == v || g[i][col] == v {
			return false
		}
	}
	br, bc := (row/3)*3, (col/3)*3
	for dr := 0; dr < 3; dr++ {
		for dc := 0; dc < 3; dc++ {
			if g[br+dr][bc+dc] == v {
				return false
			}
		}
	}
	return true
}

// CompleteAndValid reports whether the grid is fully filled and violates
// no rule. Incomplete grids short-circuit without running the full scan.
func CompleteAndValid(g *domain.Grid) (bool, string) {
	if !g.IsFull() {
		return false, MsgIncomplete
	}
	return Validate(g)
}

// Rules adapts the package functions to ports.Validator.
type Rules struct{}

func New() *Rules { return &Rules{} }

func (Rules) Validate(g *domain.Grid) (bool, string) { return Validate(g) }

func (Rules) LegalPlacement(g *domain.Grid, row, col int, v uint8) bool {
	return LegalPlacement(g, row, col, v)
}

func (Rules) CompleteAndValid(g *domain.Grid) (bool, string) { return CompleteAndValid(g) }
