package solver

import (
	"context"
	"time"

	"github.com/gridden/sudoku/internal/domain"
	"github.com/gridden/sudoku/internal/ports"
	"github.com/gridden/sudoku/internal/validator"
)

// Solve fills g in place. Grids that already violate a rule are refused
// as Unsolvable without searching.
//
// The search visits empty cells in row-major order and tries digits 1..9
// ascending, recursing on each legal placement. The budget (and ctx) is
// checked each time a cell exhausts all nine candidates; once exceeded, a
// TimedOut result unwinds every pending frame with no further candidate
// exploration. On any outcome other than Solved the grid may be left
// partially mutated, so callers keep a copy when the input matters.
//
// A grid with a unique solution solves deterministically; with several
// solutions the first one in scan/candidate order wins.
func (s *Backtracker) Solve(ctx context.Context, g *domain.Grid) (domain.Outcome, ports.Stats) {
	start := time.Now()
	st := ports.Stats{}
	if ok, _ := validator.Validate(g); !ok {
		st.Duration = time.Since(start)
		return domain.Unsolvable, st
	}
	budget := s.Budget
	if budget <= 0 {
		budget = DefaultBudget
	}
	out := s.search(ctx, g, start.Add(budget), &st.Nodes)
	st.Duration = time.Since(start)
	return out, st
}

func (s *Backtracker) search(ctx context.Context, g *domain.Grid, deadline time.Time, nodes *int) domain.Outcome {
	r, c, ok := findEmpty(g)
	if !ok {
		return domain.Solved
	}
	for v := uint8(1); v <= 9; v++ {
		*nodes++
		if !validator.LegalPlacement(g, r, c, v) {
			continue
		}
		g[r][c] = v
		switch out := s.search(ctx, g, deadline, nodes); out {
		case domain.Solved, domain.TimedOut:
			return out
		}
		g[r][c] = domain.Empty
	}
	// All nine candidates exhausted: the cooperative cancellation point.
	if ctx.Err() != nil || time.Now().After(deadline) {
		return domain.TimedOut
	}
	return domain.Unsolvable
}
