package domain

// Empty marks a cell holding no digit.
const Empty uint8 = 0

// Grid is the 9x9 puzzle state. Cells hold digits 1..9 or Empty.
// Grid is an array type: assigning or passing one copies all 81 cells,
// so grids never alias across a component boundary.
type Grid [9][9]uint8

// NewGrid returns a cleared grid.
func NewGrid() Grid { return Grid{} }

// Clone returns a deep copy, for pointer call sites.
func (g *Grid) Clone() Grid { return *g }

// IsFull reports whether no cell is Empty.
func (g *Grid) IsFull() bool {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if g[r][c] == Empty {
				return false
			}
		}
	}
	return true
}

// CountFilled returns the number of non-empty cells.
func (g *Grid) CountFilled() int {
	n := 0
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if g[r][c] != Empty {
				n++
			}
		}
	}
	return n
}

// CellCoord identifies a cell on the grid, 0-indexed.
type CellCoord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// HintResult describes one suggested digit. Row and Col are 1-indexed by
// the application-boundary convention. When Found is false, Status holds
// the validation diagnostic or completion message instead.
type HintResult struct {
	Found  bool   `json:"found"`
	Row    int    `json:"row,omitempty"`
	Col    int    `json:"col,omitempty"`
	Value  uint8  `json:"value,omitempty"`
	Status string `json:"status,omitempty"`
}
