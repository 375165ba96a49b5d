package ports

import (
	"context"
	"time"

	"github.com/gridden/sudoku/internal/domain"
)

// Stats captures performance characteristics of an operation.
type Stats struct {
	Nodes    int
	Duration time.Duration
}

// Solver fills a grid in place within a wall-clock budget.
type Solver interface {
	Solve(ctx context.Context, g *domain.Grid) (domain.Outcome, Stats)
}

// Generator produces a playable puzzle together with its full solution.
type Generator interface {
	Generate(ctx context.Context) (puzzle, solution domain.Grid, stats Stats, err error)
}

// Validator performs row/column/box uniqueness checks.
type Validator interface {
	Validate(g *domain.Grid) (bool, string)
	LegalPlacement(g *domain.Grid, row, col int, v uint8) bool
	CompleteAndValid(g *domain.Grid) (bool, string)
}

// Hinter selects one revealable cell from a remaining grid.
type Hinter interface {
	Pick(remaining *domain.Grid) (domain.CellCoord, uint8, bool)
}
