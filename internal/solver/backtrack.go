package solver

import (
	"time"

	"github.com/gridden/sudoku/internal/domain"
)

// DefaultBudget bounds a single solve's wall-clock time.
const DefaultBudget = 3000 * time.Millisecond

// Backtracker is a recursive depth-first solver with a wall-clock budget.
type Backtracker struct {
	// Budget caps one Solve call. Zero means DefaultBudget.
	Budget time.Duration
}

func NewBacktracker() *Backtracker { return &Backtracker{Budget: DefaultBudget} }

func findEmpty(g *domain.Grid) (int, int, bool) {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if g[r][c] == domain.Empty {
				return r, c, true
			}
		}
	}
	return 0, 0, false
}
